// Package token defines lexical token kinds and trivia for GLSL sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Every built-in type spelling (float, vec3, mat4x2, texture2D, sampler, ...)
//     is a TypeName token; the type mapper reads the shape off Text.
//   - true/false are BoolLit tokens, never identifiers.
//   - "#version" is a single Version token; other directives are Directive tokens.
package token
