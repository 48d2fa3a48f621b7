package glsl

import (
	"slices"

	"glslfront/internal/ir"
	"glslfront/internal/token"
	"glslfront/internal/trace"
)

// ExprRule is the result of every expression production: the value and the
// statements that must execute before it, in order.
type ExprRule struct {
	Value ir.Handle[ir.Expression]
	Stmts []ir.Statement
}

func pure(h ir.Handle[ir.Expression]) ExprRule {
	return ExprRule{Value: h}
}

func concat(a, b []ir.Statement) []ir.Statement {
	if len(b) == 0 {
		return a
	}
	out := make([]ir.Statement, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

// parseExpression: assignment {',' assignment}. The left side's statements run
// first and the right value is kept.
func (p *Parser) parseExpression() (ExprRule, error) {
	left, err := p.parseAssignment()
	if err != nil {
		return ExprRule{}, err
	}
	for p.eat(token.Comma) {
		right, err := p.parseAssignment()
		if err != nil {
			return ExprRule{}, err
		}
		left = ExprRule{Value: right.Value, Stmts: concat(left.Stmts, right.Stmts)}
	}
	return left, nil
}

// parseAssignment: unary assign-op assignment | conditional. The assignment
// yields its target as value and appends the Store after the value's statements.
func (p *Parser) parseAssignment() (ExprRule, error) {
	if err := p.enter(); err != nil {
		return ExprRule{}, err
	}
	defer p.leave()

	target, err := p.parseUnary()
	if err != nil {
		return ExprRule{}, err
	}
	if opTok := p.peek(); isAssignOp(opTok.Kind) {
		p.advance()
		value, err := p.parseAssignment()
		if err != nil {
			return ExprRule{}, err
		}
		stored := value.Value
		if op, ok := CompoundOp(opTok.Kind); ok {
			stored = p.ctx().appendExpr(ir.BinaryExpr(op, target.Value, value.Value))
		}
		stmts := make([]ir.Statement, 0, len(target.Stmts)+len(value.Stmts)+1)
		stmts = append(stmts, target.Stmts...)
		stmts = append(stmts, value.Stmts...)
		stmts = append(stmts, ir.StoreStmt(target.Value, stored))
		return ExprRule{Value: target.Value, Stmts: stmts}, nil
	}

	cond, err := p.parseBinaryLevel(0, &target)
	if err != nil {
		return ExprRule{}, err
	}
	if tok := p.peek(); tok.Kind == token.Question {
		return ExprRule{}, unimplemented(tok, "ternary expression")
	}
	return cond, nil
}

// parseBinaryLevel parses level lvl of binaryLevels. seed, when set, is an
// already parsed leftmost unary operand.
func (p *Parser) parseBinaryLevel(lvl int, seed *ExprRule) (ExprRule, error) {
	if lvl == len(binaryLevels) {
		if seed != nil {
			return *seed, nil
		}
		return p.parseUnary()
	}
	left, err := p.parseBinaryLevel(lvl+1, seed)
	if err != nil {
		return ExprRule{}, err
	}
	for {
		opTok := p.peek()
		if !slices.Contains(binaryLevels[lvl], opTok.Kind) {
			return left, nil
		}
		if opTok.Kind == token.XorXor {
			return ExprRule{}, unimplemented(opTok, "logical xor")
		}
		op, err := BinaryOp(opTok)
		if err != nil {
			return ExprRule{}, err
		}
		p.advance()
		right, err := p.parseBinaryLevel(lvl+1, nil)
		if err != nil {
			return ExprRule{}, err
		}
		h := p.ctx().appendExpr(ir.BinaryExpr(op, left.Value, right.Value))
		left = ExprRule{Value: h, Stmts: concat(left.Stmts, right.Stmts)}
	}
}

func (p *Parser) parseUnary() (ExprRule, error) {
	if err := p.enter(); err != nil {
		return ExprRule{}, err
	}
	defer p.leave()

	tok := p.peek()
	switch tok.Kind {
	case token.Inc:
		return ExprRule{}, unimplemented(tok, "prefix increment")
	case token.Dec:
		return ExprRule{}, unimplemented(tok, "prefix decrement")
	case token.Plus, token.Minus, token.Bang, token.Tilde:
		op, err := UnaryOp(tok)
		if err != nil {
			return ExprRule{}, err
		}
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return ExprRule{}, err
		}
		h := p.ctx().appendExpr(ir.UnaryExpr(op, operand.Value))
		return ExprRule{Value: h, Stmts: operand.Stmts}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ExprRule, error) {
	rule, err := p.parsePrimary()
	if err != nil {
		return ExprRule{}, err
	}
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.LBracket:
			return ExprRule{}, unimplemented(tok, "array indexing")
		case token.Dot:
			return ExprRule{}, unimplemented(tok, "field selection")
		case token.Inc:
			return ExprRule{}, unimplemented(tok, "postfix increment")
		case token.Dec:
			return ExprRule{}, unimplemented(tok, "postfix decrement")
		case token.LParen:
			if _, err := p.parseCallArgs(); err != nil {
				return ExprRule{}, err
			}
			return ExprRule{}, unimplemented(tok, "function call")
		default:
			return rule, nil
		}
	}
}

func (p *Parser) parsePrimary() (ExprRule, error) {
	tok := p.peek()
	switch {
	case tok.Kind == token.TypeName, tok.Kind == token.KwVoid:
		return p.parseConstructor()
	case tok.Kind == token.Ident:
		if p.peekAt(1).Kind == token.LParen {
			p.advance()
			if _, err := p.parseCallArgs(); err != nil {
				return ExprRule{}, err
			}
			return ExprRule{}, unimplemented(tok, "function call")
		}
		p.advance()
		return p.resolveIdentifier(tok)
	case tok.IsLiteral():
		p.advance()
		return p.parseLiteral(tok)
	case tok.Kind == token.LParen:
		p.advance()
		rule, err := p.parseExpression()
		if err != nil {
			return ExprRule{}, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return ExprRule{}, err
		}
		return rule, nil
	}
	return ExprRule{}, p.unexpected("expression")
}

// parseConstructor turns "type(args)" into one Compose over the argument values.
func (p *Parser) parseConstructor() (ExprRule, error) {
	spec, err := p.parseTypeSpecifier()
	if err != nil {
		return ExprRule{}, err
	}
	if spec.void {
		return ExprRule{}, unimplemented(spec.tok, "void constructor")
	}
	if !p.at(token.LParen) {
		return ExprRule{}, p.unexpected("'(' after type constructor")
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return ExprRule{}, err
	}
	components := make([]ir.Handle[ir.Expression], 0, len(args))
	var stmts []ir.Statement
	for _, a := range args {
		components = append(components, a.Value)
		stmts = concat(stmts, a.Stmts)
	}
	h := p.ctx().appendExpr(ir.ComposeExpr(spec.ty, components))
	return ExprRule{Value: h, Stmts: stmts}, nil
}

// parseCallArgs: '(' [void | assignment {',' assignment}] ')'.
func (p *Parser) parseCallArgs() ([]ExprRule, error) {
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	if p.at(token.KwVoid) && p.peekAt(1).Kind == token.RParen {
		p.advance()
	}
	var args []ExprRule
	if !p.at(token.RParen) {
		for {
			a, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen, "')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

// resolveIdentifier looks the name up innermost scope first, then globals.
// gl_Position in vertex and fragment shaders is declared on first use.
func (p *Parser) resolveIdentifier(tok token.Token) (ExprRule, error) {
	ctx := p.ctx()
	if tok.Text == builtinPositionName && (p.prog.Stage == StageVertex || p.prog.Stage == StageFragment) {
		h, created := p.prog.builtinPosition()
		if created {
			trace.Point(p.opts.Tracer, trace.ScopeNode, "builtin", tok.Text+" "+p.prog.Stage.String(), 0)
		}
		return pure(ctx.appendExpr(ir.GlobalExpr(h))), nil
	}
	if h, ok := ctx.LookupLocal(tok.Text); ok {
		return pure(ctx.appendExpr(ir.LocalExpr(h))), nil
	}
	if h, ok := p.prog.LookupGlobal(tok.Text); ok {
		return pure(ctx.appendExpr(ir.GlobalExpr(h))), nil
	}
	return ExprRule{}, errAt(ErrUnknownIdentifier, tok, tok.Text)
}
