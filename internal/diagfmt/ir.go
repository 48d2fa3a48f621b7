package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"glslfront/internal/ir"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(label string) *treeNode {
	child := &treeNode{label: label}
	n.children = append(n.children, child)
	return child
}

func writeTree(w io.Writer, n *treeNode, prefix string) error {
	for i, child := range n.children {
		branch, indent := "├─ ", "│  "
		if i == len(n.children)-1 {
			branch, indent = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label); err != nil {
			return err
		}
		if err := writeTree(w, child, prefix+indent); err != nil {
			return err
		}
	}
	return nil
}

// FormatModulePretty prints m as a box-drawn tree: the module arenas first,
// then every function with its locals, expressions, usage and body.
func FormatModulePretty(w io.Writer, m *ir.Module) error {
	root := &treeNode{label: "Module"}

	types := root.add(fmt.Sprintf("Types (%d)", m.Types.Len()))
	for _, h := range m.Types.Handles() {
		types.add(fmt.Sprintf("[%d] %s", h, typeLabel(m, h)))
	}
	consts := root.add(fmt.Sprintf("Constants (%d)", m.Constants.Len()))
	for _, h := range m.Constants.Handles() {
		c := m.Constants.Get(h)
		consts.add(fmt.Sprintf("[%d] %s: %s", h, c.Value, typeLabel(m, c.Ty)))
	}
	globals := root.add(fmt.Sprintf("Globals (%d)", m.Globals.Len()))
	for _, h := range m.Globals.Handles() {
		g := m.Globals.Get(h)
		globals.add(fmt.Sprintf("[%d] %s %s: %s binding=%s interpolation=%s",
			h, g.Class, g.Name, typeLabel(m, g.Ty), g.Binding, g.Interpolation))
	}
	funcs := root.add(fmt.Sprintf("Functions (%d)", m.Functions.Len()))
	for _, h := range m.Functions.Handles() {
		functionNode(funcs, m, h)
	}

	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeTree(w, root, "")
}

func functionNode(parent *treeNode, m *ir.Module, h ir.Handle[ir.Function]) {
	fn := m.Functions.Get(h)
	ret := "void"
	if fn.Return.IsValid() {
		ret = typeLabel(m, fn.Return)
	}
	node := parent.add(fmt.Sprintf("[%d] %s() -> %s", h, fn.Name, ret))

	locals := node.add(fmt.Sprintf("Locals (%d)", fn.Locals.Len()))
	for _, lh := range fn.Locals.Handles() {
		l := fn.Locals.Get(lh)
		label := fmt.Sprintf("[%d] %s: %s", lh, l.Name, typeLabel(m, l.Ty))
		if l.Init.IsValid() {
			label += fmt.Sprintf(" = e%d", l.Init)
		}
		locals.add(label)
	}
	exprs := node.add(fmt.Sprintf("Expressions (%d)", fn.Expressions.Len()))
	for _, eh := range fn.Expressions.Handles() {
		exprs.add(fmt.Sprintf("e%d = %s", eh, exprLabel(m, fn, fn.Expressions.Get(eh))))
	}
	usage := node.add(fmt.Sprintf("GlobalUsage (%d)", len(fn.GlobalUsage)))
	for _, u := range fn.GlobalUsage {
		usage.add(fmt.Sprintf("%s: %s", m.Globals.Get(u.Global).Name, u.Use))
	}
	body := node.add("Body")
	for i := range fn.Body {
		stmtNode(body, &fn.Body[i])
	}
}

func stmtNode(parent *treeNode, st *ir.Statement) {
	switch st.Kind {
	case ir.StmtStore:
		parent.add(fmt.Sprintf("Store e%d <- e%d", st.Pointer, st.Value))
	case ir.StmtBlock:
		block := parent.add("Block")
		for i := range st.Block {
			stmtNode(block, &st.Block[i])
		}
	default:
		parent.add(st.Kind.String())
	}
}

func typeLabel(m *ir.Module, h ir.Handle[ir.Type]) string {
	t := m.Types.Get(h)
	if t == nil {
		return "<invalid type>"
	}
	if t.Name != "" {
		return t.Name
	}
	return t.Inner.String()
}

func exprLabel(m *ir.Module, fn *ir.Function, e *ir.Expression) string {
	switch e.Kind {
	case ir.ExprConstant:
		return fmt.Sprintf("Constant c%d (%s)", e.Constant, m.Constants.Get(e.Constant).Value)
	case ir.ExprGlobalVariable:
		return fmt.Sprintf("Global g%d (%s)", e.Global, m.Globals.Get(e.Global).Name)
	case ir.ExprLocalVariable:
		return fmt.Sprintf("Local l%d (%s)", e.Local, fn.Locals.Get(e.Local).Name)
	case ir.ExprUnary:
		return fmt.Sprintf("Unary %s e%d", e.UnaryOp, e.Left)
	case ir.ExprBinary:
		return fmt.Sprintf("Binary %s e%d e%d", e.Op, e.Left, e.Right)
	case ir.ExprCompose:
		parts := make([]string, len(e.Components))
		for i, c := range e.Components {
			parts[i] = fmt.Sprintf("e%d", c)
		}
		return fmt.Sprintf("Compose %s (%s)", typeLabel(m, e.Ty), strings.Join(parts, ", "))
	}
	return e.Kind.String()
}

// ModuleJSON is the JSON form of an ir.Module. Handles are kept as the 1-based
// numbers used inside the module.
type ModuleJSON struct {
	Types     []TypeJSON     `json:"types"`
	Constants []ConstantJSON `json:"constants"`
	Globals   []GlobalJSON   `json:"globals"`
	Functions []FunctionJSON `json:"functions"`
}

type TypeJSON struct {
	Handle uint32 `json:"handle"`
	Name   string `json:"name,omitempty"`
	Inner  string `json:"inner"`
}

type ConstantJSON struct {
	Handle uint32 `json:"handle"`
	Type   uint32 `json:"type"`
	Kind   string `json:"kind"`
	Value  any    `json:"value"`
}

type GlobalJSON struct {
	Handle        uint32 `json:"handle"`
	Name          string `json:"name"`
	Class         string `json:"class"`
	Binding       string `json:"binding"`
	Type          uint32 `json:"type"`
	Interpolation string `json:"interpolation"`
}

type LocalJSON struct {
	Handle uint32 `json:"handle"`
	Name   string `json:"name"`
	Type   uint32 `json:"type"`
	Init   uint32 `json:"init,omitempty"`
}

type ExpressionJSON struct {
	Handle   uint32   `json:"handle"`
	Kind     string   `json:"kind"`
	Constant uint32   `json:"constant,omitempty"`
	Global   uint32   `json:"global,omitempty"`
	Local    uint32   `json:"local,omitempty"`
	Op       string   `json:"op,omitempty"`
	Type     uint32   `json:"type,omitempty"`
	Operands []uint32 `json:"operands,omitempty"`
}

type StatementJSON struct {
	Kind    string          `json:"kind"`
	Block   []StatementJSON `json:"block,omitempty"`
	Pointer uint32          `json:"pointer,omitempty"`
	Value   uint32          `json:"value,omitempty"`
}

type UsageJSON struct {
	Global uint32 `json:"global"`
	Use    string `json:"use"`
}

type FunctionJSON struct {
	Handle      uint32           `json:"handle"`
	Name        string           `json:"name"`
	Return      uint32           `json:"return,omitempty"`
	Locals      []LocalJSON      `json:"locals"`
	Expressions []ExpressionJSON `json:"expressions"`
	GlobalUsage []UsageJSON      `json:"global_usage"`
	Body        []StatementJSON  `json:"body"`
}

// BuildModuleJSON converts m without serializing it.
func BuildModuleJSON(m *ir.Module) ModuleJSON {
	out := ModuleJSON{
		Types:     make([]TypeJSON, 0, m.Types.Len()),
		Constants: make([]ConstantJSON, 0, m.Constants.Len()),
		Globals:   make([]GlobalJSON, 0, m.Globals.Len()),
		Functions: make([]FunctionJSON, 0, m.Functions.Len()),
	}
	for _, h := range m.Types.Handles() {
		t := m.Types.Get(h)
		out.Types = append(out.Types, TypeJSON{Handle: uint32(h), Name: t.Name, Inner: t.Inner.String()})
	}
	for _, h := range m.Constants.Handles() {
		c := m.Constants.Get(h)
		out.Constants = append(out.Constants, ConstantJSON{
			Handle: uint32(h), Type: uint32(c.Ty), Kind: c.Value.Kind.String(), Value: constantValue(c.Value),
		})
	}
	for _, h := range m.Globals.Handles() {
		g := m.Globals.Get(h)
		out.Globals = append(out.Globals, GlobalJSON{
			Handle:        uint32(h),
			Name:          g.Name,
			Class:         g.Class.String(),
			Binding:       g.Binding.String(),
			Type:          uint32(g.Ty),
			Interpolation: g.Interpolation.String(),
		})
	}
	for _, h := range m.Functions.Handles() {
		out.Functions = append(out.Functions, functionJSON(h, m.Functions.Get(h)))
	}
	return out
}

func functionJSON(h ir.Handle[ir.Function], fn *ir.Function) FunctionJSON {
	out := FunctionJSON{
		Handle:      uint32(h),
		Name:        fn.Name,
		Return:      uint32(fn.Return),
		Locals:      make([]LocalJSON, 0, fn.Locals.Len()),
		Expressions: make([]ExpressionJSON, 0, fn.Expressions.Len()),
		GlobalUsage: make([]UsageJSON, 0, len(fn.GlobalUsage)),
		Body:        statementsJSON(fn.Body),
	}
	for _, lh := range fn.Locals.Handles() {
		l := fn.Locals.Get(lh)
		out.Locals = append(out.Locals, LocalJSON{Handle: uint32(lh), Name: l.Name, Type: uint32(l.Ty), Init: uint32(l.Init)})
	}
	for _, eh := range fn.Expressions.Handles() {
		e := fn.Expressions.Get(eh)
		ej := ExpressionJSON{
			Handle:   uint32(eh),
			Kind:     e.Kind.String(),
			Constant: uint32(e.Constant),
			Global:   uint32(e.Global),
			Local:    uint32(e.Local),
		}
		switch e.Kind {
		case ir.ExprUnary:
			ej.Op = e.UnaryOp.String()
		case ir.ExprBinary:
			ej.Op = e.Op.String()
		case ir.ExprCompose:
			ej.Type = uint32(e.Ty)
		}
		for _, c := range e.Children() {
			ej.Operands = append(ej.Operands, uint32(c))
		}
		out.Expressions = append(out.Expressions, ej)
	}
	for _, u := range fn.GlobalUsage {
		out.GlobalUsage = append(out.GlobalUsage, UsageJSON{Global: uint32(u.Global), Use: u.Use.String()})
	}
	return out
}

func statementsJSON(stmts []ir.Statement) []StatementJSON {
	out := make([]StatementJSON, 0, len(stmts))
	for _, st := range stmts {
		sj := StatementJSON{Kind: st.Kind.String()}
		switch st.Kind {
		case ir.StmtBlock:
			sj.Block = statementsJSON(st.Block)
		case ir.StmtStore:
			sj.Pointer, sj.Value = uint32(st.Pointer), uint32(st.Value)
		}
		out = append(out, sj)
	}
	return out
}

func constantValue(v ir.ConstantValue) any {
	switch v.Kind {
	case ir.ScalarSint:
		return v.Sint
	case ir.ScalarUint:
		return v.Uint
	case ir.ScalarFloat:
		// JSON has no infinities; out-of-range float literals produce them.
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return v.String()
		}
		return v.Float
	default:
		return v.Bool
	}
}

// FormatModuleJSON writes m as an indented JSON document.
func FormatModuleJSON(w io.Writer, m *ir.Module) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildModuleJSON(m))
}
