package glsl

import (
	"fmt"
	"strings"

	"glslfront/internal/ir"
)

type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// ParseStage accepts the full stage name or its file-extension form.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(s) {
	case "vertex", "vert":
		return StageVertex, nil
	case "fragment", "frag":
		return StageFragment, nil
	case "compute", "comp":
		return StageCompute, nil
	}
	return 0, fmt.Errorf("unknown shader stage %q (expected vertex|fragment|compute)", s)
}

type Profile uint8

const (
	ProfileCore Profile = iota
)

func (p Profile) String() string {
	if p == ProfileCore {
		return "core"
	}
	return fmt.Sprintf("Profile(%d)", p)
}

const builtinPositionName = "gl_Position"

// Program accumulates the translation of one shader.
type Program struct {
	Module  *ir.Module
	Stage   Stage
	Version uint16
	Profile Profile

	globals   map[string]ir.Handle[ir.GlobalVariable]
	types     map[string]ir.Handle[ir.Type]
	functions map[string]ir.Handle[ir.Function]

	ctx Context
}

func NewProgram(stage Stage) *Program {
	return &Program{
		Module:    ir.NewModule(),
		Stage:     stage,
		globals:   make(map[string]ir.Handle[ir.GlobalVariable]),
		types:     make(map[string]ir.Handle[ir.Type]),
		functions: make(map[string]ir.Handle[ir.Function]),
	}
}

func (p *Program) LookupGlobal(name string) (ir.Handle[ir.GlobalVariable], bool) {
	h, ok := p.globals[name]
	return h, ok
}

func (p *Program) LookupFunction(name string) (ir.Handle[ir.Function], bool) {
	h, ok := p.functions[name]
	return h, ok
}

// Global returns the global variable behind h.
func (p *Program) Global(h ir.Handle[ir.GlobalVariable]) *ir.GlobalVariable {
	return p.Module.Globals.Get(h)
}

// Function returns the function named name, or nil.
func (p *Program) Function(name string) *ir.Function {
	h, ok := p.functions[name]
	if !ok {
		return nil
	}
	return p.Module.Functions.Get(h)
}

// LookupType resolves a named type. Built-in types are unnamed, so only
// declared aggregates end up here.
func (p *Program) LookupType(name string) (ir.Handle[ir.Type], bool) {
	h, ok := p.types[name]
	return h, ok
}

// internType interns ty and records it under its name, if it has one.
func (p *Program) internType(ty ir.Type) ir.Handle[ir.Type] {
	h := p.Module.Types.FetchOrAppend(ty)
	if ty.Name != "" {
		p.types[ty.Name] = h
	}
	return h
}

// internTypeName maps a built-in type name through InternType and registers
// the result by name.
func (p *Program) internTypeName(name string) (ir.Handle[ir.Type], error) {
	h, err := InternType(&p.Module.Types, name)
	if err != nil || h == 0 {
		return h, err
	}
	return p.internType(*p.Module.Types.Get(h)), nil
}

func (p *Program) internScalar(kind ir.ScalarKind, width uint8) ir.Handle[ir.Type] {
	return p.Module.Types.FetchOrAppend(ir.Type{Inner: ir.ScalarInner(kind, width)})
}

// builtinPosition returns the clip-space position global, declaring it on
// first use for the current stage.
func (p *Program) builtinPosition() (h ir.Handle[ir.GlobalVariable], created bool) {
	if h, ok := p.globals[builtinPositionName]; ok {
		return h, false
	}
	class := ir.StorageInput
	if p.Stage == StageVertex {
		class = ir.StorageOutput
	}
	ty := p.Module.Types.FetchOrAppend(ir.Type{Inner: ir.VectorInner(4, ir.ScalarFloat, 4)})
	h = p.Module.Globals.FetchOrAppend(ir.GlobalVariable{
		Name:    builtinPositionName,
		Class:   class,
		Binding: ir.BuiltInBinding(ir.BuiltInPosition),
		Ty:      ty,
	})
	p.globals[builtinPositionName] = h
	return h, true
}

// declareGlobal registers a file-scope variable. With validate set, a name
// already bound to a different global is rejected; an identical redeclaration
// resolves to the existing handle.
func (p *Program) declareGlobal(gv ir.GlobalVariable, validate bool) (ir.Handle[ir.GlobalVariable], bool) {
	if prev, ok := p.globals[gv.Name]; ok && validate {
		if *p.Module.Globals.Get(prev) != gv {
			return prev, false
		}
	}
	h := p.Module.Globals.FetchOrAppend(gv)
	p.globals[gv.Name] = h
	return h, true
}
