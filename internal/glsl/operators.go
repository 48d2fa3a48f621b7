package glsl

import (
	"glslfront/internal/ir"
	"glslfront/internal/token"
)

var binaryOps = map[token.Kind]ir.BinaryOperator{
	token.OrOr:    ir.BinaryLogicalOr,
	token.AndAnd:  ir.BinaryLogicalAnd,
	token.Pipe:    ir.BinaryInclusiveOr,
	token.Caret:   ir.BinaryExclusiveOr,
	token.Amp:     ir.BinaryAnd,
	token.EqEq:    ir.BinaryEqual,
	token.BangEq:  ir.BinaryNotEqual,
	token.Lt:      ir.BinaryLess,
	token.Gt:      ir.BinaryGreater,
	token.LtEq:    ir.BinaryLessEqual,
	token.GtEq:    ir.BinaryGreaterEqual,
	token.Shl:     ir.BinaryShiftLeftLogical,
	token.Shr:     ir.BinaryShiftRightArithmetic,
	token.Plus:    ir.BinaryAdd,
	token.Minus:   ir.BinarySubtract,
	token.Star:    ir.BinaryMultiply,
	token.Slash:   ir.BinaryDivide,
	token.Percent: ir.BinaryModulo,
}

var unaryOps = map[token.Kind]ir.UnaryOperator{
	token.Minus: ir.UnaryNegate,
	token.Bang:  ir.UnaryNot,
}

var compoundOps = map[token.Kind]ir.BinaryOperator{
	token.PlusAssign:    ir.BinaryAdd,
	token.MinusAssign:   ir.BinarySubtract,
	token.StarAssign:    ir.BinaryMultiply,
	token.SlashAssign:   ir.BinaryDivide,
	token.PercentAssign: ir.BinaryModulo,
	token.ShlAssign:     ir.BinaryShiftLeftLogical,
	token.ShrAssign:     ir.BinaryShiftRightArithmetic,
	token.AmpAssign:     ir.BinaryAnd,
	token.CaretAssign:   ir.BinaryExclusiveOr,
	token.PipeAssign:    ir.BinaryInclusiveOr,
}

// BinaryOp maps a binary operator token. Logical xor has no IR operator.
func BinaryOp(tok token.Token) (ir.BinaryOperator, error) {
	if op, ok := binaryOps[tok.Kind]; ok {
		return op, nil
	}
	return 0, errAt(ErrUnsupportedOperator, tok, tok.Text)
}

// UnaryOp maps a prefix operator token. Increment, decrement, unary plus and
// complement are rejected.
func UnaryOp(tok token.Token) (ir.UnaryOperator, error) {
	if op, ok := unaryOps[tok.Kind]; ok {
		return op, nil
	}
	return 0, errAt(ErrUnsupportedOperator, tok, tok.Text)
}

// CompoundOp maps a compound assignment token to the operator it applies.
func CompoundOp(kind token.Kind) (ir.BinaryOperator, bool) {
	op, ok := compoundOps[kind]
	return op, ok
}

func isAssignOp(kind token.Kind) bool {
	_, ok := compoundOps[kind]
	return ok || kind == token.Assign
}
