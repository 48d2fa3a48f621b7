package glsl

import "glslfront/internal/token"

// binaryLevels lists the binary precedence levels from loosest to tightest.
// Every level is left-associative and parses its operands at the next level.
var binaryLevels = [...][]token.Kind{
	{token.OrOr},
	{token.XorXor},
	{token.AndAnd},
	{token.Pipe},
	{token.Caret},
	{token.Amp},
	{token.EqEq, token.BangEq},
	{token.Lt, token.Gt, token.LtEq, token.GtEq},
	{token.Shl, token.Shr},
	{token.Plus, token.Minus},
	{token.Star, token.Slash, token.Percent},
}
