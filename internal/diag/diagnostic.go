package diag

import (
	"glslfront/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// NewError builds an error-severity diagnostic.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Message: msg, Primary: primary}
}

// WithNote returns a copy of d with an extra note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Span: sp, Msg: msg})
	return d
}
