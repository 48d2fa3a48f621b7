package glsl

import (
	"glslfront/internal/ir"
	"glslfront/internal/token"
)

// parseStatementList parses statements up to and including the closing '}'.
func (p *Parser) parseStatementList() ([]ir.Statement, error) {
	var stmts []ir.Statement
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return nil, p.unexpected("'}'")
		}
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	p.advance()
	return stmts, nil
}

func (p *Parser) parseStatement() (ir.Statement, error) {
	if err := p.enter(); err != nil {
		return ir.Statement{}, err
	}
	defer p.leave()

	tok := p.peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseCompoundStatement()
	case token.Semicolon:
		p.advance()
		return ir.EmptyStmt(), nil
	case token.KwIf, token.KwElse, token.KwFor, token.KwWhile, token.KwDo,
		token.KwSwitch, token.KwCase, token.KwDefault, token.KwBreak,
		token.KwContinue, token.KwReturn, token.KwDiscard:
		return ir.Statement{}, unimplemented(tok, tok.Text+" statement")
	case token.Directive:
		return ir.Statement{}, unimplemented(tok, "preprocessor directive "+tok.Text)
	}
	if p.startsDeclaration() {
		return p.parseLocalDeclaration()
	}
	return p.parseExpressionStatement()
}

// parseCompoundStatement parses a nested block in its own scope.
func (p *Parser) parseCompoundStatement() (ir.Statement, error) {
	p.advance() // {
	ctx := p.ctx()
	ctx.PushScope()
	body, err := p.parseStatementList()
	if err != nil {
		return ir.Statement{}, err
	}
	ctx.PopScope()
	if body == nil {
		body = []ir.Statement{}
	}
	return ir.BlockStmt(body), nil
}

func (p *Parser) parseExpressionStatement() (ir.Statement, error) {
	rule, err := p.parseExpression()
	if err != nil {
		return ir.Statement{}, err
	}
	if _, err := p.expect(token.Semicolon, "';' after expression"); err != nil {
		return ir.Statement{}, err
	}
	return ir.Flatten(rule.Stmts), nil
}

// startsDeclaration decides between a declaration and an expression statement.
// A type followed by '(' is a constructor call. Identifiers never name a type
// since struct declarations are rejected.
func (p *Parser) startsDeclaration() bool {
	tok := p.peek()
	switch {
	case isQualifier(tok.Kind), tok.Kind == token.KwStruct, tok.Kind == token.KwVoid:
		return true
	case tok.Kind == token.TypeName:
		return p.peekAt(1).Kind != token.LParen
	}
	return false
}
