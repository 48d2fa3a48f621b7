package glsl

import (
	"strconv"

	"glslfront/internal/token"
)

var supportedVersions = map[int64]bool{440: true, 450: true, 460: true}

// parseVersion handles "#version N [profile]". The profile must be on the same
// line as the directive.
func (p *Parser) parseVersion() error {
	if _, err := p.expect(token.Version, "#version directive"); err != nil {
		return err
	}
	numTok, err := p.expect(token.IntLit, "version number")
	if err != nil {
		return err
	}
	v, perr := strconv.ParseInt(numTok.Text, 0, 64)
	if perr != nil {
		// too large for any version; keep the digits for the message
		return errAt(ErrInvalidVersion, numTok, numTok.Text)
	}
	if !supportedVersions[v] {
		e := errAt(ErrInvalidVersion, numTok, "")
		e.Value = v
		return e
	}
	p.prog.Version = uint16(v)
	p.prog.Profile = ProfileCore

	if tok := p.peek(); tok.Kind == token.Ident && !startsLine(tok) {
		p.advance()
		if tok.Text != "core" {
			return errAt(ErrInvalidProfile, tok, tok.Text)
		}
	}
	return nil
}

func startsLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}
