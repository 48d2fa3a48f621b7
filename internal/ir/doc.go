// Package ir is the typed intermediate representation produced by the GLSL
// translator.
//
// Everything lives in arenas and refers to other entries by Handle. Types,
// constants and global variables are interned in UniqueArenas, so equal values
// share one handle. Expressions, locals and functions are positional and use
// plain Arenas. A Function owns its own expression and local arenas; handles
// never cross arenas.
package ir
