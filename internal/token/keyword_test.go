package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"void":    KwVoid,
		"in":      KwIn,
		"out":     KwOut,
		"layout":  KwLayout,
		"flat":    KwFlat,
		"return":  KwReturn,
		"true":    BoolLit,
		"false":   BoolLit,
		"uniform": KwUniform,
	}
	for word, want := range cases {
		got, ok := LookupKeyword(word)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v,%v; want %v,true", word, got, ok, want)
		}
	}
	for _, word := range []string{"Void", "main", "gl_Position", "vec3"} {
		if k, ok := LookupKeyword(word); ok {
			t.Errorf("LookupKeyword(%q) unexpectedly = %v", word, k)
		}
	}
}

func TestIsTypeName(t *testing.T) {
	for _, name := range []string{"float", "dvec4", "bvec2", "mat3", "mat2x4", "dmat4x3", "texture2D", "utexture2DMSArray", "samplerShadow", "image2D"} {
		if !IsTypeName(name) {
			t.Errorf("IsTypeName(%q) = false", name)
		}
	}
	for _, name := range []string{"vec5", "mat5", "main", "Texture2D", "ftexture2D"} {
		if IsTypeName(name) {
			t.Errorf("IsTypeName(%q) = true", name)
		}
	}
}

func TestKindString(t *testing.T) {
	if EOF.String() != "EOF" || XorXor.String() != "XorXor" || RBracket.String() != "RBracket" {
		t.Fatalf("unexpected kind names: %s %s %s", EOF, XorXor, RBracket)
	}
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: DoubleLit}).IsLiteral() || (Token{Kind: Ident}).IsLiteral() {
		t.Error("IsLiteral mismatch")
	}
	if !(Token{Kind: XorXor}).IsPunctOrOp() || (Token{Kind: KwIf}).IsPunctOrOp() {
		t.Error("IsPunctOrOp mismatch")
	}
	if !(Token{Kind: KwDiscard}).IsKeyword() || (Token{Kind: TypeName}).IsKeyword() {
		t.Error("IsKeyword mismatch")
	}
	if !(Token{Kind: KwVoid}).IsTypeSpecifier() || (Token{Kind: Ident}).IsTypeSpecifier() {
		t.Error("IsTypeSpecifier mismatch")
	}
}
