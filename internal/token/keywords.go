package token

var keywords = map[string]Kind{
	"void":          KwVoid,
	"const":         KwConst,
	"in":            KwIn,
	"out":           KwOut,
	"inout":         KwInout,
	"uniform":       KwUniform,
	"buffer":        KwBuffer,
	"shared":        KwShared,
	"layout":        KwLayout,
	"flat":          KwFlat,
	"smooth":        KwSmooth,
	"noperspective": KwNoperspective,
	"centroid":      KwCentroid,
	"invariant":     KwInvariant,
	"precise":       KwPrecise,
	"precision":     KwPrecision,
	"highp":         KwHighp,
	"mediump":       KwMediump,
	"lowp":          KwLowp,
	"struct":        KwStruct,
	"if":            KwIf,
	"else":          KwElse,
	"for":           KwFor,
	"while":         KwWhile,
	"do":            KwDo,
	"switch":        KwSwitch,
	"case":          KwCase,
	"default":       KwDefault,
	"break":         KwBreak,
	"continue":      KwContinue,
	"return":        KwReturn,
	"discard":       KwDiscard,
	"true":          BoolLit,
	"false":         BoolLit,
}

// typeNames holds every built-in type spelling the lexer turns into TypeName.
var typeNames = buildTypeNames()

func buildTypeNames() map[string]struct{} {
	names := map[string]struct{}{}
	add := func(s string) { names[s] = struct{}{} }

	for _, s := range []string{"bool", "int", "uint", "float", "double", "sampler", "samplerShadow"} {
		add(s)
	}
	for _, n := range []string{"2", "3", "4"} {
		for _, p := range []string{"", "d", "b", "i", "u"} {
			add(p + "vec" + n)
		}
		add("mat" + n)
		add("dmat" + n)
		for _, r := range []string{"2", "3", "4"} {
			add("mat" + n + "x" + r)
			add("dmat" + n + "x" + r)
		}
	}
	dims := []string{"1D", "2D", "3D", "1DArray", "2DArray", "3DArray", "2DMS", "2DMSArray", "Cube", "CubeArray", "2DRect", "Buffer"}
	for _, p := range []string{"", "i", "u"} {
		for _, d := range dims {
			add(p + "texture" + d)
			add(p + "sampler" + d)
			add(p + "image" + d)
		}
	}
	for _, s := range []string{"sampler1DShadow", "sampler2DShadow", "samplerCubeShadow", "sampler1DArrayShadow", "sampler2DArrayShadow", "samplerCubeArrayShadow", "sampler2DRectShadow"} {
		add(s)
	}
	return names
}

// LookupKeyword reports the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsTypeName reports whether ident spells a built-in type.
func IsTypeName(ident string) bool {
	_, ok := typeNames[ident]
	return ok
}
