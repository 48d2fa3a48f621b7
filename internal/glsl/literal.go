package glsl

import (
	"errors"
	"strconv"
	"strings"

	"glslfront/internal/ir"
	"glslfront/internal/token"
)

// parseLiteral interns the literal's type and value as a Constant.
func (p *Parser) parseLiteral(tok token.Token) (ExprRule, error) {
	var (
		value ir.ConstantValue
		ty    ir.Handle[ir.Type]
		err   error
	)
	switch tok.Kind {
	case token.IntLit:
		var v int64
		v, err = strconv.ParseInt(tok.Text, 0, 64)
		value, ty = ir.SintValue(v), p.prog.internScalar(ir.ScalarSint, 4)
	case token.UintLit:
		var v uint64
		v, err = strconv.ParseUint(strings.TrimRight(tok.Text, "uU"), 0, 64)
		value, ty = ir.UintValue(v), p.prog.internScalar(ir.ScalarUint, 4)
	case token.FloatLit:
		var v float64
		v, err = strconv.ParseFloat(strings.TrimRight(tok.Text, "fF"), 32)
		value, ty = ir.FloatValue(v), p.prog.internScalar(ir.ScalarFloat, 4)
	case token.DoubleLit:
		var v float64
		v, err = strconv.ParseFloat(strings.TrimRight(tok.Text, "lLfF"), 64)
		value, ty = ir.FloatValue(v), p.prog.internScalar(ir.ScalarFloat, 8)
	case token.BoolLit:
		value, ty = ir.BoolValue(tok.Text == "true"), p.prog.internScalar(ir.ScalarBool, ir.BoolWidth)
	default:
		return ExprRule{}, &Error{Kind: ErrParserFailure, Token: tok, HasToken: true, Message: "literal production on a non-literal token"}
	}
	// An out-of-range float becomes an infinity of its width, like a
	// float cast would.
	if err != nil && !(isFloatLit(tok.Kind) && errors.Is(err, strconv.ErrRange)) {
		return ExprRule{}, semantic(tok, "malformed literal "+tok.Text)
	}
	c := p.prog.Module.Constants.FetchOrAppend(ir.Constant{Ty: ty, Value: value})
	return pure(p.ctx().appendExpr(ir.ConstantExpr(c))), nil
}

func isFloatLit(k token.Kind) bool {
	return k == token.FloatLit || k == token.DoubleLit
}
