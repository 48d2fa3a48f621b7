package token

import (
	"glslfront/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, UintLit, FloatLit, DoubleLit, BoolLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is an operator or punctuation.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RBracket
}

// IsKeyword reports whether the token is a reserved word other than a type name.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwVoid && t.Kind <= KwDiscard
}

// IsTypeSpecifier reports whether the token can start a type specifier.
func (t Token) IsTypeSpecifier() bool {
	return t.Kind == TypeName || t.Kind == KwVoid
}

func (t Token) IsIdent() bool { return t.Kind == Ident }
