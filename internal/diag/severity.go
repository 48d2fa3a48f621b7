package diag

// Severity orders diagnostics; Bag sorts the worst first.
type Severity uint8

const (
	// SevInfo is reserved for notes a shader author may ignore.
	SevInfo Severity = iota
	// SevWarning marks problems that do not stop translation, such as a
	// cache entry that cannot be read back.
	SevWarning
	// SevError covers lexer errors and the one translator error that ends
	// a file.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Fatal reports whether a diagnostic of this severity fails the file.
func (s Severity) Fatal() bool { return s >= SevError }
