package lexer

import (
	"glslfront/internal/diag"
	"glslfront/internal/token"
)

// scanDirective scans '#' followed by optional blanks and a directive name.
// "#version" becomes Version; its operands are lexed as ordinary tokens.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	nameStart := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	name := string(lx.file.Content[nameStart:lx.cursor.Off])

	switch name {
	case "version":
		return token.Token{Kind: token.Version, Span: sp, Text: text}
	case "":
		lx.errLex(diag.LexBadDirective, sp, "expected directive name after '#'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	default:
		return token.Token{Kind: token.Directive, Span: sp, Text: text}
	}
}
