// Package diag defines the diagnostic model shared by the lexer, the translator
// and the driver.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form (LEX/SYN/SEM/IO/FUT ranges), a short Message, the Primary
// span and optional Notes.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports limits, sorting and deduplication. Package diag performs no
// formatting or IO; rendering lives in internal/diagfmt.
package diag
