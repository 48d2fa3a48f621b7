// Package fuzztests holds Go fuzz harnesses for the lexer and the GLSL
// translator. They guard against panics and hangs on arbitrary input; the
// translator may reject anything, but it must return instead of crashing.
package fuzztests
