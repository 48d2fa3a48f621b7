package glsl

import (
	"slices"

	"glslfront/internal/source"
	"glslfront/internal/token"
	"glslfront/internal/trace"
)

// DefaultMaxDepth bounds statement and expression nesting.
const DefaultMaxDepth = 256

type Options struct {
	Stage    Stage
	Validate bool // reject duplicate declarations
	MaxDepth int  // 0 means DefaultMaxDepth
	Tracer   trace.Tracer
}

// TokenSource yields tokens; after EOF it must keep yielding EOF.
// *lexer.Lexer satisfies it.
type TokenSource interface {
	Next() token.Token
}

// SliceSource replays a fixed token list.
type SliceSource struct {
	Tokens []token.Token
	pos    int
}

func (s *SliceSource) Next() token.Token {
	if s.pos >= len(s.Tokens) {
		var sp source.Span
		if n := len(s.Tokens); n > 0 {
			end := s.Tokens[n-1].Span.End
			sp = source.Span{File: s.Tokens[n-1].Span.File, Start: end, End: end}
		}
		return token.Token{Kind: token.EOF, Span: sp}
	}
	tok := s.Tokens[s.pos]
	s.pos++
	return tok
}

// Parser is the per-shader translation state.
type Parser struct {
	src      TokenSource
	ahead    []token.Token
	prog     *Program
	opts     Options
	depth    int
	lastSpan source.Span // span of the last consumed token
}

// Translate consumes src and returns the finished program, or the first error.
func Translate(src TokenSource, opts Options) (*Program, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	p := &Parser{
		src:  src,
		prog: NewProgram(opts.Stage),
		opts: opts,
	}
	if err := p.parseRoot(); err != nil {
		return nil, err
	}
	return p.prog, nil
}

// TranslateTokens is Translate over a token slice.
func TranslateTokens(toks []token.Token, opts Options) (*Program, error) {
	return Translate(&SliceSource{Tokens: toks}, opts)
}

func (p *Parser) peekAt(n int) token.Token {
	for len(p.ahead) <= n {
		p.ahead = append(p.ahead, p.src.Next())
	}
	return p.ahead[n]
}

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.ahead = p.ahead[1:]
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(what)
}

// unexpected reports the next token as a syntax error. At EOF the error points
// just past the last consumed token.
func (p *Parser) unexpected(what string) *Error {
	tok := p.peek()
	if tok.Kind == token.EOF {
		if tok.Span.Empty() && tok.Span.Start == 0 && p.lastSpan.End > 0 {
			tok.Span = source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		}
		return &Error{Kind: ErrUnexpectedEOF, Token: tok, HasToken: true, Message: "expected " + what}
	}
	return &Error{Kind: ErrUnexpectedToken, Token: tok, HasToken: true, Message: "expected " + what}
}

// enter guards recursion; pair every successful call with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		e := &Error{Kind: ErrResourceExhaustion, Token: p.peek(), HasToken: true}
		e.Message = "nesting is too deep"
		return e
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) ctx() *Context {
	return &p.prog.ctx
}

// parseRoot: version header, then at least one external declaration.
func (p *Parser) parseRoot() error {
	span := trace.Begin(p.opts.Tracer, trace.ScopeNode, "translation_unit", 0)
	defer span.End("")

	if err := p.parseVersion(); err != nil {
		return err
	}
	if p.at(token.EOF) {
		return p.unexpected("declaration")
	}
	for !p.at(token.EOF) {
		if err := p.parseExternalDeclaration(); err != nil {
			return err
		}
	}
	if p.ctx().ScopeDepth() != 0 {
		return &Error{Kind: ErrParserFailure, Message: "scope stack not empty after translation unit"}
	}
	return nil
}
