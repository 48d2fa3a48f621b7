package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadDirective             Code = 1006

	// syntax and recognizer failures
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002
	SynParserFailure   Code = 2003
	SynStackOverflow   Code = 2004

	// semantic
	SemaInfo                 Code = 3000
	SemaError                Code = 3001
	SemaDuplicateDeclaration Code = 3002
	SemaUnknownIdentifier    Code = 3005
	SemaInvalidVersion       Code = 3010
	SemaInvalidProfile       Code = 3011
	SemaUnrecognizedType     Code = 3020
	SemaUnsupportedOperator  Code = 3021

	// io
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// recognized but not supported yet
	FutUnimplementedType    Code = 7001
	FutUnimplementedFeature Code = 7002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexBadDirective:             "Malformed preprocessor directive",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedEOF:            "Unexpected end of input",
	SynParserFailure:            "Parser internal failure",
	SynStackOverflow:            "Parser stack exhausted",
	SemaInfo:                    "Semantic information",
	SemaError:                   "Semantic error",
	SemaDuplicateDeclaration:    "Duplicate declaration",
	SemaUnknownIdentifier:       "Unknown identifier",
	SemaInvalidVersion:          "Invalid #version",
	SemaInvalidProfile:          "Invalid #version profile",
	SemaUnrecognizedType:        "Unrecognized type",
	SemaUnsupportedOperator:     "Unsupported operator",
	IOLoadFileError:             "Failed to load file",
	IOCacheError:                "Cache failure",
	FutUnimplementedType:        "Type not implemented",
	FutUnimplementedFeature:     "Feature not implemented",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("FUT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
