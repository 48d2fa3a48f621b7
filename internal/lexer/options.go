package lexer

import (
	"glslfront/internal/diag"
	"glslfront/internal/source"
)

type Options struct {
	Reporter diag.Reporter // nil: problems are dropped, lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
