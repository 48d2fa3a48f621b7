package lexer

import (
	"testing"

	"glslfront/internal/diag"
	"glslfront/internal/source"
	"glslfront/internal/token"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vert", []byte(content))
	return fs.Get(id)
}

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	lx := New(createFile(src), Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx.All(), bag
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"version", "#version 450 core", []token.Kind{token.Version, token.IntLit, token.Ident, token.EOF}},
		{"declaration", "out vec4 color;", []token.Kind{token.KwOut, token.TypeName, token.Ident, token.Semicolon, token.EOF}},
		{"layout", "layout(location=0)", []token.Kind{token.KwLayout, token.LParen, token.Ident, token.Assign, token.IntLit, token.RParen, token.EOF}},
		{"compound ops", "a <<= b >>= c += d", []token.Kind{
			token.Ident, token.ShlAssign, token.Ident, token.ShrAssign,
			token.Ident, token.PlusAssign, token.Ident, token.EOF,
		}},
		{"logical", "a && b || c ^^ d", []token.Kind{
			token.Ident, token.AndAnd, token.Ident, token.OrOr,
			token.Ident, token.XorXor, token.Ident, token.EOF,
		}},
		{"bools", "true false", []token.Kind{token.BoolLit, token.BoolLit, token.EOF}},
		{"void main", "void main() {}", []token.Kind{
			token.KwVoid, token.Ident, token.LParen, token.RParen, token.LBrace, token.RBrace, token.EOF,
		}},
		{"textures", "texture2D itexture2DArray sampler2DShadow", []token.Kind{token.TypeName, token.TypeName, token.TypeName, token.EOF}},
		{"extension", "#extension GL_foo : enable", []token.Kind{token.Directive, token.Ident, token.Colon, token.Ident, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lexAll(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %+v", bag.Items())
			}
			got := kindsOf(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"0x2A", token.IntLit},
		{"052", token.IntLit},
		{"7u", token.UintLit},
		{"0xFFu", token.UintLit},
		{"1.0", token.FloatLit},
		{".5", token.FloatLit},
		{"1.", token.FloatLit},
		{"1e3", token.FloatLit},
		{"1.5e-3", token.FloatLit},
		{"2.5f", token.FloatLit},
		{"1.0lf", token.DoubleLit},
	}
	for _, tt := range tests {
		toks, bag := lexAll(t, tt.src)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics %+v", tt.src, bag.Items())
			continue
		}
		if toks[0].Kind != tt.kind || toks[0].Text != tt.src {
			t.Errorf("%q: got %s %q, want %s", tt.src, toks[0].Kind, toks[0].Text, tt.kind)
		}
	}
}

func TestLexBadNumbers(t *testing.T) {
	for _, src := range []string{"12abc", "0x", "1e+"} {
		toks, bag := lexAll(t, src)
		if toks[0].Kind != token.Invalid {
			t.Errorf("%q: got %s, want Invalid", src, toks[0].Kind)
		}
		if bag.Len() != 1 || bag.Items()[0].Code != diag.LexBadNumber {
			t.Errorf("%q: diagnostics %+v", src, bag.Items())
		}
	}
}

func TestLexTrivia(t *testing.T) {
	toks, bag := lexAll(t, "// header\n/* block */ x")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	x := toks[0]
	if x.Kind != token.Ident || x.Text != "x" {
		t.Fatalf("got %s %q", x.Kind, x.Text)
	}
	want := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment, token.TriviaSpace}
	if len(x.Leading) != len(want) {
		t.Fatalf("leading = %+v", x.Leading)
	}
	for i, tr := range x.Leading {
		if tr.Kind != want[i] {
			t.Errorf("trivia %d: got %s, want %s", i, tr.Kind, want[i])
		}
	}
}

func TestLexUnterminatedComment(t *testing.T) {
	toks, bag := lexAll(t, "x /* never closed")
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected EOF, got %s", toks[len(toks)-1].Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("diagnostics %+v", bag.Items())
	}
}

func TestLexUnknownChars(t *testing.T) {
	toks, bag := lexAll(t, "a @ é")
	got := kindsOf(toks)
	want := []token.Kind{token.Ident, token.Invalid, token.Invalid, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if bag.Len() != 2 {
		t.Fatalf("diagnostics %+v", bag.Items())
	}
	if toks[2].Text != "é" {
		t.Errorf("multi-byte char text = %q", toks[2].Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := New(createFile("a b"), Options{})
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("Next = %q", n.Text)
	}
	for range 3 {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("after end got %s", n.Kind)
		}
	}
}

func TestSpans(t *testing.T) {
	toks, _ := lexAll(t, "  vec4 v;")
	if toks[0].Span.Start != 2 || toks[0].Span.End != 6 {
		t.Errorf("vec4 span = %v", toks[0].Span)
	}
	if toks[1].Span.Start != 7 || toks[1].Span.End != 8 {
		t.Errorf("v span = %v", toks[1].Span)
	}
}
