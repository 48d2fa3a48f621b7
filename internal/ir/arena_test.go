package ir

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestArenaAppendNeverDedups(t *testing.T) {
	a := NewArena[Expression](0)
	e := ConstantExpr(1)
	h1 := a.Append(e)
	h2 := a.Append(e)
	if h1 == h2 {
		t.Fatalf("Append reused handle %d", h1)
	}
	if h1 != 1 || h2 != 2 {
		t.Errorf("handles = %d, %d; want 1, 2", h1, h2)
	}
	if a.Get(0) != nil || a.Get(3) != nil {
		t.Error("Get must return nil for the zero handle and out of range handles")
	}
}

func TestUniqueArenaInterning(t *testing.T) {
	types := NewUniqueArena[Type]()
	f32 := types.FetchOrAppend(Type{Inner: ScalarInner(ScalarFloat, 4)})
	again := types.FetchOrAppend(Type{Inner: ScalarInner(ScalarFloat, 4)})
	if f32 != again {
		t.Fatalf("equal types got handles %d and %d", f32, again)
	}

	distinct := []Type{
		{Inner: ScalarInner(ScalarFloat, 8)},
		{Inner: ScalarInner(ScalarSint, 4)},
		{Inner: VectorInner(4, ScalarFloat, 4)},
		{Name: "named", Inner: ScalarInner(ScalarFloat, 4)},
	}
	seen := map[Handle[Type]]bool{f32: true}
	for _, ty := range distinct {
		h := types.FetchOrAppend(ty)
		if seen[h] {
			t.Errorf("%+v collided with an existing handle %d", ty, h)
		}
		seen[h] = true
	}
	if types.Len() != 5 {
		t.Errorf("Len = %d, want 5", types.Len())
	}
	if h, ok := types.Lookup(Type{Inner: VectorInner(4, ScalarFloat, 4)}); !ok || h != 4 {
		t.Errorf("Lookup = %d, %v", h, ok)
	}
}

func TestModuleMsgpackRoundTrip(t *testing.T) {
	m := NewModule()
	f32 := m.Types.FetchOrAppend(Type{Inner: ScalarInner(ScalarFloat, 4)})
	vec4 := m.Types.FetchOrAppend(Type{Inner: VectorInner(4, ScalarFloat, 4)})
	c := m.Constants.FetchOrAppend(Constant{Ty: f32, Value: FloatValue(1.5)})
	g := m.Globals.FetchOrAppend(GlobalVariable{
		Name:    "gl_Position",
		Class:   StorageOutput,
		Binding: BuiltInBinding(BuiltInPosition),
		Ty:      vec4,
	})

	var fn Function
	fn.Name = "main"
	ce := fn.Expressions.Append(ConstantExpr(c))
	comp := fn.Expressions.Append(ComposeExpr(vec4, []Handle[Expression]{ce, ce, ce, ce}))
	ge := fn.Expressions.Append(GlobalExpr(g))
	fn.Body = []Statement{StoreStmt(ge, comp)}
	fn.Finalize()
	m.Functions.Append(fn)

	data, err := msgpack.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Module
	if err := msgpack.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.Types.Len() != 2 || back.Constants.Len() != 1 || back.Globals.Len() != 1 {
		t.Fatalf("arena sizes: types=%d consts=%d globals=%d",
			back.Types.Len(), back.Constants.Len(), back.Globals.Len())
	}
	if h := back.Types.FetchOrAppend(Type{Inner: VectorInner(4, ScalarFloat, 4)}); h != vec4 {
		t.Errorf("decoded arena lost its index: got %d, want %d", h, vec4)
	}
	_, f := back.FunctionByName("main")
	if f == nil {
		t.Fatal("function main lost")
	}
	if got := f.Expressions.Get(comp); got == nil || got.Kind != ExprCompose || len(got.Components) != 4 {
		t.Errorf("compose = %+v", got)
	}
	if f.Usage(g) != GlobalUseWrite {
		t.Errorf("usage = %s, want write", f.Usage(g))
	}
}
