package glsl

import (
	"fmt"
	"testing"

	"glslfront/internal/diag"
	"glslfront/internal/source"
	"glslfront/internal/token"
	"glslfront/internal/trace"
)

func TestErrorKindCodes(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		id   string
	}{
		{ErrUnexpectedToken, "SYN2001"},
		{ErrUnexpectedEOF, "SYN2002"},
		{ErrResourceExhaustion, "SYN2004"},
		{ErrInvalidVersion, "SEM3010"},
		{ErrInvalidProfile, "SEM3011"},
		{ErrUnknownIdentifier, "SEM3005"},
		{ErrUnrecognizedType, "SEM3020"},
		{ErrUnsupportedOperator, "SEM3021"},
		{ErrSemantic, "SEM3001"},
		{ErrDuplicateDeclaration, "SEM3002"},
		{ErrUnimplementedType, "FUT7001"},
		{ErrUnimplementedFeature, "FUT7002"},
	}
	for _, tt := range tests {
		if got := tt.kind.Code().ID(); got != tt.id {
			t.Errorf("%s: code %s, want %s", tt.kind, got, tt.id)
		}
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("shader.vert: %w", &Error{Kind: ErrSemantic})
	if KindOf(err) != ErrSemantic {
		t.Fatalf("KindOf = %s", KindOf(err))
	}
	if KindOf(fmt.Errorf("plain")) != 0 {
		t.Fatal("non-translator error must have no kind")
	}
}

func TestErrorMessages(t *testing.T) {
	tok := token.Token{Kind: token.Ident, Text: "x"}
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: ErrInvalidVersion, Value: 330}, "invalid version 330 (expected 440, 450 or 460)"},
		{&Error{Kind: ErrInvalidVersion, Name: "99999999999999999999"}, "invalid version 99999999999999999999 (expected 440, 450 or 460)"},
		{errAt(ErrUnknownIdentifier, tok, "x"), `unknown identifier "x"`},
		{unimplemented(tok, "logical xor"), "logical xor is not implemented"},
		{semantic(tok, "missing storage class"), "semantic error: missing storage class"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	d := unimplemented(tok, "struct").Diagnostic()
	if d.Severity != diag.SevError || d.Code != diag.FutUnimplementedFeature {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestSliceSourceEOFPosition(t *testing.T) {
	sp := func(s, e uint32) source.Span { return source.Span{File: 1, Start: s, End: e} }
	toks := []token.Token{
		{Kind: token.Version, Text: "#version", Span: sp(0, 8)},
		{Kind: token.IntLit, Text: "450", Span: sp(9, 12)},
	}
	_, err := TranslateTokens(toks, vertex())
	e := wantErr(t, err, ErrUnexpectedEOF)
	if got, _ := e.Span(); got != sp(12, 12) {
		t.Fatalf("EOF span = %v", got)
	}
}

func TestTranslateTracePoints(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	src := "#version 450\nout float o;\nvoid main() { gl_Position = vec4(o); }"
	mustTranslate(t, src, Options{Stage: StageVertex, Tracer: ring})

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindPoint || ev.Kind == trace.KindSpanBegin {
			names = append(names, ev.Name)
		}
	}
	want := []string{"translation_unit", "builtin", "function"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Fatalf("events = %v, want %v", names, want)
	}
}
