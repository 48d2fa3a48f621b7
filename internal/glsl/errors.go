package glsl

import (
	"errors"
	"fmt"

	"glslfront/internal/diag"
	"glslfront/internal/source"
	"glslfront/internal/token"
)

type ErrorKind uint8

const (
	ErrUnexpectedToken ErrorKind = iota + 1
	ErrUnexpectedEOF
	ErrParserFailure
	ErrResourceExhaustion
	ErrInvalidVersion
	ErrInvalidProfile
	ErrUnknownIdentifier
	ErrUnrecognizedType
	ErrUnimplementedType
	ErrUnsupportedOperator
	ErrUnimplementedFeature
	ErrSemantic
	ErrDuplicateDeclaration
)

var errorKindNames = [...]string{
	ErrUnexpectedToken:      "unexpected token",
	ErrUnexpectedEOF:        "unexpected end of input",
	ErrParserFailure:        "parser failure",
	ErrResourceExhaustion:   "parser resource exhaustion",
	ErrInvalidVersion:       "invalid version",
	ErrInvalidProfile:       "invalid profile",
	ErrUnknownIdentifier:    "unknown identifier",
	ErrUnrecognizedType:     "unrecognized type",
	ErrUnimplementedType:    "unimplemented type",
	ErrUnsupportedOperator:  "unsupported operator",
	ErrUnimplementedFeature: "not implemented",
	ErrSemantic:             "semantic error",
	ErrDuplicateDeclaration: "duplicate declaration",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

var errorKindCodes = [...]diag.Code{
	ErrUnexpectedToken:      diag.SynUnexpectedToken,
	ErrUnexpectedEOF:        diag.SynUnexpectedEOF,
	ErrParserFailure:        diag.SynParserFailure,
	ErrResourceExhaustion:   diag.SynStackOverflow,
	ErrInvalidVersion:       diag.SemaInvalidVersion,
	ErrInvalidProfile:       diag.SemaInvalidProfile,
	ErrUnknownIdentifier:    diag.SemaUnknownIdentifier,
	ErrUnrecognizedType:     diag.SemaUnrecognizedType,
	ErrUnimplementedType:    diag.FutUnimplementedType,
	ErrUnsupportedOperator:  diag.SemaUnsupportedOperator,
	ErrUnimplementedFeature: diag.FutUnimplementedFeature,
	ErrSemantic:             diag.SemaError,
	ErrDuplicateDeclaration: diag.SemaDuplicateDeclaration,
}

// Code is the stable diagnostic code for the kind.
func (k ErrorKind) Code() diag.Code {
	if int(k) < len(errorKindCodes) {
		return errorKindCodes[k]
	}
	return diag.UnknownCode
}

// Error is the single failure a translation run produces.
//
// Name carries the identifier, type name, feature, operator or profile the
// error is about; Value carries the rejected version number. A version too
// large to parse keeps its digits in Name instead.
type Error struct {
	Kind     ErrorKind
	Token    token.Token
	HasToken bool
	Name     string
	Value    int64
	Message  string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case ErrInvalidVersion:
		if e.Name != "" {
			msg = fmt.Sprintf("invalid version %s (expected 440, 450 or 460)", e.Name)
		} else {
			msg = fmt.Sprintf("invalid version %d (expected 440, 450 or 460)", e.Value)
		}
	case ErrInvalidProfile:
		msg = fmt.Sprintf("invalid profile %q (only core is supported)", e.Name)
	case ErrUnknownIdentifier:
		msg = fmt.Sprintf("unknown identifier %q", e.Name)
	case ErrUnrecognizedType:
		msg = fmt.Sprintf("unrecognized type %q", e.Name)
	case ErrUnimplementedType:
		msg = fmt.Sprintf("type %q is not implemented", e.Name)
	case ErrUnsupportedOperator:
		msg = fmt.Sprintf("unsupported operator %q", e.Name)
	case ErrUnimplementedFeature:
		msg = fmt.Sprintf("%s is not implemented", e.Name)
	case ErrDuplicateDeclaration:
		msg = fmt.Sprintf("%q is already declared", e.Name)
	case ErrUnexpectedToken:
		msg = fmt.Sprintf("unexpected %s %q", e.Token.Kind, e.Token.Text)
	default:
		msg = e.Kind.String()
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Span returns the position of the offending token, if any.
func (e *Error) Span() (source.Span, bool) {
	return e.Token.Span, e.HasToken
}

// Diagnostic converts e for rendering through diagfmt.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Kind.Code(), e.Token.Span, e.Error())
}

// KindOf extracts the ErrorKind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return 0
}

func errAt(kind ErrorKind, tok token.Token, name string) *Error {
	return &Error{Kind: kind, Token: tok, HasToken: true, Name: name}
}

func unimplemented(tok token.Token, feature string) *Error {
	return errAt(ErrUnimplementedFeature, tok, feature)
}

func semantic(tok token.Token, msg string) *Error {
	e := errAt(ErrSemantic, tok, "")
	e.Message = msg
	return e
}
