package glsl

import (
	"testing"

	"glslfront/internal/diag"
	"glslfront/internal/ir"
	"glslfront/internal/lexer"
	"glslfront/internal/source"
)

// translate lexes src and runs the translator on it.
func translate(t *testing.T, src string, opts Options) (*Program, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.glsl", []byte(src))
	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	prog, err := Translate(lx, opts)
	if bag.HasErrors() {
		t.Fatalf("lexer diagnostics: %+v", bag.Items())
	}
	return prog, err
}

func mustTranslate(t *testing.T, src string, opts Options) *Program {
	t.Helper()
	prog, err := translate(t, src, opts)
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	return prog
}

func wantErr(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got success", kind)
	}
	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if gerr.Kind != kind {
		t.Fatalf("expected %s, got %s (%v)", kind, gerr.Kind, err)
	}
	return gerr
}

func mainOf(t *testing.T, prog *Program) *ir.Function {
	t.Helper()
	fn := prog.Function("main")
	if fn == nil {
		t.Fatal("main not found")
	}
	return fn
}

// local resolves a LocalVariable expression to its variable.
func local(t *testing.T, fn *ir.Function, h ir.Handle[ir.Expression]) *ir.LocalVariable {
	t.Helper()
	e := fn.Expressions.Get(h)
	if e == nil || e.Kind != ir.ExprLocalVariable {
		t.Fatalf("expression %d is %+v, want a local", h, e)
	}
	return fn.Locals.Get(e.Local)
}

func vertex() Options { return Options{Stage: StageVertex} }
