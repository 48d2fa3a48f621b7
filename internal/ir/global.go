package ir

import "fmt"

type StorageClass uint8

const (
	StorageConstant StorageClass = iota
	StorageInput
	StorageOutput
	StorageUniform
)

func (c StorageClass) String() string {
	switch c {
	case StorageConstant:
		return "constant"
	case StorageInput:
		return "input"
	case StorageOutput:
		return "output"
	case StorageUniform:
		return "uniform"
	}
	return fmt.Sprintf("StorageClass(%d)", c)
}

type BuiltIn uint8

const (
	BuiltInPosition BuiltIn = iota + 1
)

func (b BuiltIn) String() string {
	if b == BuiltInPosition {
		return "position"
	}
	return fmt.Sprintf("BuiltIn(%d)", b)
}

type BindingKind uint8

const (
	BindingNone BindingKind = iota
	BindingLocation
	BindingBuiltIn
)

// Binding is optional; Kind == BindingNone means absent.
type Binding struct {
	Kind     BindingKind
	Location uint32
	BuiltIn  BuiltIn
}

func LocationBinding(loc uint32) Binding { return Binding{Kind: BindingLocation, Location: loc} }
func BuiltInBinding(b BuiltIn) Binding   { return Binding{Kind: BindingBuiltIn, BuiltIn: b} }

func (b Binding) String() string {
	switch b.Kind {
	case BindingLocation:
		return fmt.Sprintf("location(%d)", b.Location)
	case BindingBuiltIn:
		return "builtin(" + b.BuiltIn.String() + ")"
	}
	return "none"
}

type Interpolation uint8

const (
	InterpolationNone Interpolation = iota
	InterpolationPerspective
	InterpolationLinear
	InterpolationFlat
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationNone:
		return "none"
	case InterpolationPerspective:
		return "perspective"
	case InterpolationLinear:
		return "linear"
	case InterpolationFlat:
		return "flat"
	}
	return fmt.Sprintf("Interpolation(%d)", i)
}

type GlobalVariable struct {
	Name          string
	Class         StorageClass
	Binding       Binding
	Ty            Handle[Type]
	Interpolation Interpolation
}

// LocalVariable belongs to exactly one Function's local arena.
type LocalVariable struct {
	Name string
	Ty   Handle[Type]
	Init Handle[Expression]
}
