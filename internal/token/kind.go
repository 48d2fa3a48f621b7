package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// TypeName represents a built-in type keyword (bool, vec3, mat2x4, texture2D, ...).
	TypeName
	// Version represents the "#version" directive head.
	Version
	// Directive represents any other preprocessor directive head ("#extension", ...).
	Directive

	KwVoid          // void
	KwConst         // const
	KwIn            // in
	KwOut           // out
	KwInout         // inout
	KwUniform       // uniform
	KwBuffer        // buffer
	KwShared        // shared
	KwLayout        // layout
	KwFlat          // flat
	KwSmooth        // smooth
	KwNoperspective // noperspective
	KwCentroid      // centroid
	KwInvariant     // invariant
	KwPrecise       // precise
	KwPrecision     // precision
	KwHighp         // highp
	KwMediump       // mediump
	KwLowp          // lowp
	KwStruct        // struct
	KwIf            // if
	KwElse          // else
	KwFor           // for
	KwWhile         // while
	KwDo            // do
	KwSwitch        // switch
	KwCase          // case
	KwDefault       // default
	KwBreak         // break
	KwContinue      // continue
	KwReturn        // return
	KwDiscard       // discard

	// IntLit represents a signed integer literal (42, 0x2A, 052).
	IntLit
	// UintLit represents an unsigned integer literal (42u).
	UintLit
	// FloatLit represents a single precision literal (1.0, 1e3, 2.5f).
	FloatLit
	// DoubleLit represents a double precision literal (1.0lf).
	DoubleLit
	// BoolLit represents true or false.
	BoolLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	ShlAssign     // <<=
	ShrAssign     // >>=
	AmpAssign     // &=
	CaretAssign   // ^=
	PipeAssign    // |=
	Inc           // ++
	Dec           // --
	EqEq          // ==
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Shl           // <<
	Shr           // >>
	Amp           // &
	Pipe          // |
	Caret         // ^
	AndAnd        // &&
	OrOr          // ||
	XorXor        // ^^
	Bang          // !
	Tilde         // ~
	Question      // ?
	Colon         // :
	Semicolon     // ;
	Comma         // ,
	Dot           // .
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	TypeName:        "TypeName",
	Version:         "Version",
	Directive:       "Directive",
	KwVoid:          "KwVoid",
	KwConst:         "KwConst",
	KwIn:            "KwIn",
	KwOut:           "KwOut",
	KwInout:         "KwInout",
	KwUniform:       "KwUniform",
	KwBuffer:        "KwBuffer",
	KwShared:        "KwShared",
	KwLayout:        "KwLayout",
	KwFlat:          "KwFlat",
	KwSmooth:        "KwSmooth",
	KwNoperspective: "KwNoperspective",
	KwCentroid:      "KwCentroid",
	KwInvariant:     "KwInvariant",
	KwPrecise:       "KwPrecise",
	KwPrecision:     "KwPrecision",
	KwHighp:         "KwHighp",
	KwMediump:       "KwMediump",
	KwLowp:          "KwLowp",
	KwStruct:        "KwStruct",
	KwIf:            "KwIf",
	KwElse:          "KwElse",
	KwFor:           "KwFor",
	KwWhile:         "KwWhile",
	KwDo:            "KwDo",
	KwSwitch:        "KwSwitch",
	KwCase:          "KwCase",
	KwDefault:       "KwDefault",
	KwBreak:         "KwBreak",
	KwContinue:      "KwContinue",
	KwReturn:        "KwReturn",
	KwDiscard:       "KwDiscard",
	IntLit:          "IntLit",
	UintLit:         "UintLit",
	FloatLit:        "FloatLit",
	DoubleLit:       "DoubleLit",
	BoolLit:         "BoolLit",
	Plus:            "Plus",
	Minus:           "Minus",
	Star:            "Star",
	Slash:           "Slash",
	Percent:         "Percent",
	Assign:          "Assign",
	PlusAssign:      "PlusAssign",
	MinusAssign:     "MinusAssign",
	StarAssign:      "StarAssign",
	SlashAssign:     "SlashAssign",
	PercentAssign:   "PercentAssign",
	ShlAssign:       "ShlAssign",
	ShrAssign:       "ShrAssign",
	AmpAssign:       "AmpAssign",
	CaretAssign:     "CaretAssign",
	PipeAssign:      "PipeAssign",
	Inc:             "Inc",
	Dec:             "Dec",
	EqEq:            "EqEq",
	BangEq:          "BangEq",
	Lt:              "Lt",
	LtEq:            "LtEq",
	Gt:              "Gt",
	GtEq:            "GtEq",
	Shl:             "Shl",
	Shr:             "Shr",
	Amp:             "Amp",
	Pipe:            "Pipe",
	Caret:           "Caret",
	AndAnd:          "AndAnd",
	OrOr:            "OrOr",
	XorXor:          "XorXor",
	Bang:            "Bang",
	Tilde:           "Tilde",
	Question:        "Question",
	Colon:           "Colon",
	Semicolon:       "Semicolon",
	Comma:           "Comma",
	Dot:             "Dot",
	LParen:          "LParen",
	RParen:          "RParen",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}
