package glsl

import (
	"strconv"

	"fortio.org/safecast"

	"glslfront/internal/ir"
	"glslfront/internal/token"
	"glslfront/internal/trace"
)

// qualifiers keeps the first storage class and interpolation seen and the last
// layout binding.
type qualifiers struct {
	class         ir.StorageClass
	hasClass      bool
	binding       ir.Binding
	interpolation ir.Interpolation
	hasInterp     bool
	first         token.Token
	any           bool
}

type typeSpec struct {
	ty   ir.Handle[ir.Type]
	void bool
	tok  token.Token
}

func isQualifier(k token.Kind) bool {
	switch k {
	case token.KwConst, token.KwIn, token.KwOut, token.KwInout, token.KwUniform,
		token.KwBuffer, token.KwShared, token.KwLayout, token.KwFlat, token.KwSmooth,
		token.KwNoperspective, token.KwCentroid, token.KwInvariant, token.KwPrecise,
		token.KwHighp, token.KwMediump, token.KwLowp:
		return true
	}
	return false
}

func (p *Parser) parseQualifiers() (qualifiers, error) {
	var q qualifiers
	for isQualifier(p.peek().Kind) {
		tok := p.peek()
		if !q.any {
			q.first, q.any = tok, true
		}
		switch tok.Kind {
		case token.KwConst, token.KwIn, token.KwOut, token.KwUniform:
			p.advance()
			if !q.hasClass {
				q.class, q.hasClass = storageClassOf(tok.Kind), true
			}
		case token.KwFlat, token.KwSmooth, token.KwNoperspective:
			p.advance()
			if !q.hasInterp {
				q.interpolation, q.hasInterp = interpolationOf(tok.Kind), true
			}
		case token.KwLayout:
			b, err := p.parseLayout()
			if err != nil {
				return q, err
			}
			if b.Kind != ir.BindingNone {
				q.binding = b
			}
		default:
			return q, unimplemented(tok, tok.Text+" qualifier")
		}
	}
	return q, nil
}

func storageClassOf(k token.Kind) ir.StorageClass {
	switch k {
	case token.KwIn:
		return ir.StorageInput
	case token.KwOut:
		return ir.StorageOutput
	case token.KwUniform:
		return ir.StorageUniform
	default:
		return ir.StorageConstant
	}
}

func interpolationOf(k token.Kind) ir.Interpolation {
	switch k {
	case token.KwFlat:
		return ir.InterpolationFlat
	case token.KwNoperspective:
		return ir.InterpolationLinear
	default:
		return ir.InterpolationPerspective
	}
}

// parseLayout: layout ( location = N {, location = N} ). The last entry wins.
func (p *Parser) parseLayout() (ir.Binding, error) {
	p.advance() // layout
	if _, err := p.expect(token.LParen, "'(' after layout"); err != nil {
		return ir.Binding{}, err
	}
	var b ir.Binding
	for {
		id, err := p.expect(token.Ident, "layout qualifier")
		if err != nil {
			return b, err
		}
		if id.Text != "location" {
			return b, unimplemented(id, "non location layout qualifier")
		}
		if _, err := p.expect(token.Assign, "'=' after location"); err != nil {
			return b, err
		}
		num, err := p.expect(token.IntLit, "location index")
		if err != nil {
			return b, err
		}
		v, perr := strconv.ParseInt(num.Text, 0, 64)
		loc, cerr := safecast.Conv[uint32](v)
		if perr != nil || cerr != nil {
			return b, semantic(num, "location "+num.Text+" is out of range")
		}
		b = ir.LocationBinding(loc)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen, "')' after layout qualifiers"); err != nil {
		return b, err
	}
	return b, nil
}

// parseTypeSpecifier accepts void or a built-in type name.
func (p *Parser) parseTypeSpecifier() (typeSpec, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwVoid:
		p.advance()
		return typeSpec{void: true, tok: tok}, nil
	case token.TypeName:
		p.advance()
		h, err := p.prog.internTypeName(tok.Text)
		if err != nil {
			if gerr, ok := err.(*Error); ok {
				gerr.Token, gerr.HasToken = tok, true
			}
			return typeSpec{}, err
		}
		spec := typeSpec{ty: h, tok: tok}
		return spec, p.rejectArraySuffix()
	case token.KwStruct:
		return typeSpec{}, unimplemented(tok, "struct")
	}
	return typeSpec{}, p.unexpected("type")
}

func (p *Parser) rejectArraySuffix() error {
	if tok := p.peek(); tok.Kind == token.LBracket {
		return unimplemented(tok, "array type")
	}
	return nil
}

// declarator is one "name [= initializer]" of a declaration.
type declarator func(name token.Token, init *ExprRule) error

// parseDeclarators parses the init-declarator list after a type and the final
// ';'. Each declarator is handed to declare before the next one is parsed, so
// later initializers see earlier names.
func (p *Parser) parseDeclarators(spec typeSpec, allowInit bool, declare declarator) error {
	if p.eat(token.Semicolon) {
		return nil
	}
	for {
		name, err := p.expect(token.Ident, "identifier")
		if err != nil {
			return err
		}
		if tok := p.peek(); tok.Kind == token.LBracket {
			return unimplemented(tok, "array declarator")
		}
		var init *ExprRule
		if tok := p.peek(); tok.Kind == token.Assign {
			if !allowInit {
				return unimplemented(tok, "global initializer")
			}
			p.advance()
			rule, err := p.parseAssignment()
			if err != nil {
				return err
			}
			init = &rule
		}
		if err := declare(name, init); err != nil {
			return err
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	_, err := p.expect(token.Semicolon, "';' after declaration")
	return err
}

// parseExternalDeclaration handles one file-scope function or declaration.
func (p *Parser) parseExternalDeclaration() error {
	tok := p.peek()
	switch tok.Kind {
	case token.Semicolon:
		p.advance()
		return nil
	case token.Directive:
		return unimplemented(tok, "preprocessor directive "+tok.Text)
	case token.KwPrecision:
		return unimplemented(tok, "precision statement")
	}

	quals, err := p.parseQualifiers()
	if err != nil {
		return err
	}
	spec, err := p.parseTypeSpecifier()
	if err != nil {
		return err
	}
	if p.peek().Kind == token.Ident && p.peekAt(1).Kind == token.LParen {
		return p.parseFunctionDefinition(spec)
	}
	if spec.void {
		return semantic(spec.tok, "empty type for declaration")
	}
	return p.parseGlobalDeclaration(quals, spec)
}

func (p *Parser) parseGlobalDeclaration(quals qualifiers, spec typeSpec) error {
	if !quals.hasClass {
		return semantic(spec.tok, "missing storage class for global variable")
	}
	interp := quals.interpolation
	if !quals.hasInterp && (quals.class == ir.StorageInput || quals.class == ir.StorageOutput) {
		interp = ir.InterpolationPerspective
	}
	return p.parseDeclarators(spec, false, func(name token.Token, _ *ExprRule) error {
		gv := ir.GlobalVariable{
			Name:          name.Text,
			Class:         quals.class,
			Binding:       quals.binding,
			Ty:            spec.ty,
			Interpolation: interp,
		}
		if _, ok := p.prog.declareGlobal(gv, p.opts.Validate); !ok {
			return errAt(ErrDuplicateDeclaration, name, name.Text)
		}
		return nil
	})
}

// parseLocalDeclaration declares locals in the current scope and returns the
// flattened initializer statements.
func (p *Parser) parseLocalDeclaration() (ir.Statement, error) {
	quals, err := p.parseQualifiers()
	if err != nil {
		return ir.Statement{}, err
	}
	if quals.hasClass && quals.class != ir.StorageConstant {
		return ir.Statement{}, semantic(quals.first, "storage qualifier "+quals.first.Text+" on a local variable")
	}
	spec, err := p.parseTypeSpecifier()
	if err != nil {
		return ir.Statement{}, err
	}
	if spec.void {
		return ir.Statement{}, semantic(spec.tok, "empty type for declaration")
	}
	ctx := p.ctx()
	var stmts []ir.Statement
	err = p.parseDeclarators(spec, true, func(name token.Token, init *ExprRule) error {
		if p.opts.Validate {
			if _, dup := ctx.LookupLocalCurrentScope(name.Text); dup {
				return errAt(ErrDuplicateDeclaration, name, name.Text)
			}
		}
		local := ir.LocalVariable{Name: name.Text, Ty: spec.ty}
		if init != nil {
			local.Init = init.Value
			stmts = append(stmts, init.Stmts...)
		}
		ctx.AddLocal(name.Text, ctx.Locals.Append(local))
		return nil
	})
	if err != nil {
		return ir.Statement{}, err
	}
	return ir.Flatten(stmts), nil
}

// parseFunctionDefinition parses "name ( [void] ) { body }" after the return
// type, moves the context arenas into a new function and registers it.
func (p *Parser) parseFunctionDefinition(ret typeSpec) error {
	name := p.advance()
	p.advance() // (
	if p.at(token.KwVoid) && p.peekAt(1).Kind == token.RParen {
		p.advance()
	}
	if tok := p.peek(); tok.Kind != token.RParen {
		if tok.Kind == token.EOF {
			return p.unexpected("')'")
		}
		return unimplemented(tok, "function parameters")
	}
	p.advance()
	if tok := p.peek(); tok.Kind == token.Semicolon {
		return unimplemented(tok, "function prototype")
	}
	if _, err := p.expect(token.LBrace, "function body"); err != nil {
		return err
	}
	if p.opts.Validate {
		if _, dup := p.prog.LookupFunction(name.Text); dup {
			return errAt(ErrDuplicateDeclaration, name, name.Text)
		}
	}

	ctx := p.ctx()
	ctx.PushScope()
	body, err := p.parseStatementList()
	if err != nil {
		return err
	}
	exprs, locals := ctx.take()

	fn := ir.Function{
		Name:        name.Text,
		Return:      ret.ty,
		Expressions: exprs,
		Locals:      locals,
		Body:        body,
	}
	fn.Finalize()
	h := p.prog.Module.Functions.Append(fn)
	p.prog.functions[name.Text] = h
	trace.Point(p.opts.Tracer, trace.ScopeNode, "function", name.Text, 0)
	return nil
}
