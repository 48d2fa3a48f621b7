package ir

import "testing"

func TestScanGlobalUsage(t *testing.T) {
	const g1, g2, g3 Handle[GlobalVariable] = 1, 2, 3

	var fn Function
	r := fn.Expressions.Append(GlobalExpr(g1))
	w := fn.Expressions.Append(GlobalExpr(g2))
	neg := fn.Expressions.Append(UnaryExpr(UnaryNegate, r))
	fn.Body = []Statement{
		BlockStmt([]Statement{StoreStmt(w, neg)}),
	}
	fn.Finalize()

	want := []GlobalUsage{{Global: g1, Use: GlobalUseRead}, {Global: g2, Use: GlobalUseWrite}}
	if len(fn.GlobalUsage) != len(want) {
		t.Fatalf("usage = %+v, want %+v", fn.GlobalUsage, want)
	}
	for i := range want {
		if fn.GlobalUsage[i] != want[i] {
			t.Errorf("usage[%d] = %+v, want %+v", i, fn.GlobalUsage[i], want[i])
		}
	}
	if fn.Usage(g3) != 0 {
		t.Errorf("untouched global reports %s", fn.Usage(g3))
	}
}

func TestScanGlobalUsageEmpty(t *testing.T) {
	var fn Function
	c := fn.Expressions.Append(ConstantExpr(1))
	l := fn.Locals.Append(LocalVariable{Name: "x", Ty: 1, Init: c})
	lx := fn.Expressions.Append(LocalExpr(l))
	fn.Body = []Statement{StoreStmt(lx, c), EmptyStmt()}
	fn.Finalize()
	if len(fn.GlobalUsage) != 0 {
		t.Fatalf("usage = %+v, want empty", fn.GlobalUsage)
	}
}

func TestScanGlobalUsageReadAndWrite(t *testing.T) {
	const g Handle[GlobalVariable] = 7

	var fn Function
	ge := fn.Expressions.Append(GlobalExpr(g))
	one := fn.Expressions.Append(ConstantExpr(1))
	sum := fn.Expressions.Append(BinaryExpr(BinaryAdd, ge, one))
	fn.Body = []Statement{StoreStmt(ge, sum)}
	fn.Finalize()
	if fn.Usage(g) != GlobalUseRead|GlobalUseWrite {
		t.Fatalf("usage = %s, want read|write", fn.Usage(g))
	}
}

func TestScanGlobalUsageLocalInitializer(t *testing.T) {
	const g Handle[GlobalVariable] = 2

	var fn Function
	ge := fn.Expressions.Append(GlobalExpr(g))
	fn.Locals.Append(LocalVariable{Name: "tmp", Ty: 1, Init: ge})
	fn.Finalize()
	if fn.Usage(g) != GlobalUseRead {
		t.Fatalf("usage = %s, want read", fn.Usage(g))
	}
}

func TestFlatten(t *testing.T) {
	a := StoreStmt(1, 2)
	b := StoreStmt(3, 4)
	if got := Flatten(nil); got.Kind != StmtEmpty {
		t.Errorf("Flatten(nil) = %s", got.Kind)
	}
	if got := Flatten([]Statement{a}); got.Kind != StmtStore || got.Pointer != 1 {
		t.Errorf("Flatten(one) = %+v", got)
	}
	got := Flatten([]Statement{a, b})
	if got.Kind != StmtBlock || len(got.Block) != 2 || got.Block[0].Pointer != 1 || got.Block[1].Pointer != 3 {
		t.Errorf("Flatten(two) = %+v", got)
	}
}
