package lexer

import (
	"glslfront/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and classifies it as keyword,
// built-in type name or identifier. GLSL identifiers are ASCII only.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	if token.IsTypeName(text) {
		return token.Token{Kind: token.TypeName, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
