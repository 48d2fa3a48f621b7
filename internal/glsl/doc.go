// Package glsl translates a GLSL token stream straight into an ir.Module.
//
// There is no AST: the recursive-descent recognizer builds IR inside its
// productions, threading one Program (top-level arenas and lookup tables) and
// one Context (the function being built) through every step. Expression rules
// return an ExprRule, the value handle plus the statements that must run before
// it, because assignment and the comma operator are expressions in GLSL while
// Store is a statement in the IR.
//
// Translation stops at the first failure and returns a single *Error. Many
// valid GLSL constructs are recognized but reported as ErrUnimplementedFeature
// instead of being mistranslated.
package glsl
