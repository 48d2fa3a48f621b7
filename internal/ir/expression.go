package ir

import "fmt"

type BinaryOperator uint8

const (
	BinaryAdd BinaryOperator = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryEqual
	BinaryNotEqual
	BinaryLess
	BinaryLessEqual
	BinaryGreater
	BinaryGreaterEqual
	BinaryAnd
	BinaryExclusiveOr
	BinaryInclusiveOr
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryShiftLeftLogical
	BinaryShiftRightArithmetic
)

var binaryNames = [...]string{
	BinaryAdd:                  "add",
	BinarySubtract:             "sub",
	BinaryMultiply:             "mul",
	BinaryDivide:               "div",
	BinaryModulo:               "mod",
	BinaryEqual:                "eq",
	BinaryNotEqual:             "ne",
	BinaryLess:                 "lt",
	BinaryLessEqual:            "le",
	BinaryGreater:              "gt",
	BinaryGreaterEqual:         "ge",
	BinaryAnd:                  "and",
	BinaryExclusiveOr:          "xor",
	BinaryInclusiveOr:          "or",
	BinaryLogicalAnd:           "logical_and",
	BinaryLogicalOr:            "logical_or",
	BinaryShiftLeftLogical:     "shl",
	BinaryShiftRightArithmetic: "sra",
}

func (op BinaryOperator) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return fmt.Sprintf("BinaryOperator(%d)", op)
}

type UnaryOperator uint8

const (
	UnaryNegate UnaryOperator = iota
	UnaryNot
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryNegate:
		return "neg"
	case UnaryNot:
		return "not"
	}
	return fmt.Sprintf("UnaryOperator(%d)", op)
}

type ExprKind uint8

const (
	ExprConstant ExprKind = iota
	ExprGlobalVariable
	ExprLocalVariable
	ExprUnary
	ExprBinary
	ExprCompose
)

func (k ExprKind) String() string {
	switch k {
	case ExprConstant:
		return "Constant"
	case ExprGlobalVariable:
		return "GlobalVariable"
	case ExprLocalVariable:
		return "LocalVariable"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	case ExprCompose:
		return "Compose"
	}
	return fmt.Sprintf("ExprKind(%d)", k)
}

// Expression is a node of a function-local arena. Children are handles into the
// same arena. Fields used per Kind:
//
//	Constant:       Constant
//	GlobalVariable: Global
//	LocalVariable:  Local
//	Unary:          UnaryOp, Left
//	Binary:         Op, Left, Right
//	Compose:        Ty, Components
type Expression struct {
	Kind       ExprKind
	Constant   Handle[Constant]
	Global     Handle[GlobalVariable]
	Local      Handle[LocalVariable]
	Op         BinaryOperator
	UnaryOp    UnaryOperator
	Left       Handle[Expression]
	Right      Handle[Expression]
	Ty         Handle[Type]
	Components []Handle[Expression]
}

func ConstantExpr(h Handle[Constant]) Expression {
	return Expression{Kind: ExprConstant, Constant: h}
}

func GlobalExpr(h Handle[GlobalVariable]) Expression {
	return Expression{Kind: ExprGlobalVariable, Global: h}
}

func LocalExpr(h Handle[LocalVariable]) Expression {
	return Expression{Kind: ExprLocalVariable, Local: h}
}

func UnaryExpr(op UnaryOperator, expr Handle[Expression]) Expression {
	return Expression{Kind: ExprUnary, UnaryOp: op, Left: expr}
}

func BinaryExpr(op BinaryOperator, left, right Handle[Expression]) Expression {
	return Expression{Kind: ExprBinary, Op: op, Left: left, Right: right}
}

func ComposeExpr(ty Handle[Type], components []Handle[Expression]) Expression {
	return Expression{Kind: ExprCompose, Ty: ty, Components: components}
}

// Children returns the expression handles e refers to, in evaluation order.
func (e *Expression) Children() []Handle[Expression] {
	switch e.Kind {
	case ExprUnary:
		return []Handle[Expression]{e.Left}
	case ExprBinary:
		return []Handle[Expression]{e.Left, e.Right}
	case ExprCompose:
		return e.Components
	default:
		return nil
	}
}
