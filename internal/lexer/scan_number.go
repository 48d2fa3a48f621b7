package lexer

import (
	"glslfront/internal/diag"
	"glslfront/internal/token"
)

// Supported forms: 42, 052 (octal), 0x2A, with an optional u/U suffix for integers;
// 1.0, .5, 1., 1e3, 1.5e-3 with an optional f/F or lf/LF suffix for floats.
// Malformed literals are reported and returned as Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected hex digit after '0x'")
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == 'u' || lx.cursor.Peek() == 'U' {
			lx.cursor.Bump()
			kind = token.UintLit
		}
		return lx.finishNumber(start, kind)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after exponent")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	switch b := lx.cursor.Peek(); {
	case kind == token.IntLit && (b == 'u' || b == 'U'):
		lx.cursor.Bump()
		kind = token.UintLit
	case kind == token.FloatLit && (b == 'f' || b == 'F'):
		lx.cursor.Bump()
	case kind == token.FloatLit && (b == 'l' || b == 'L'):
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == 'f' || b1 == 'F') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.DoubleLit
		}
	}
	return lx.finishNumber(start, kind)
}

// finishNumber rejects identifier characters glued to the literal ("12abc").
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "invalid suffix on numeric literal")
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
