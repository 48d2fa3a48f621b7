package trace

import (
	"fmt"
	"strings"
)

// Level controls how deep tracing goes. Each level admits every scope up to
// and including its deepest one.
type Level uint8

const (
	LevelOff Level = iota
	// LevelError records nothing live; a ring tracer still holds what it saw.
	LevelError
	LevelPhase  // directory runs and lex/translate/cache passes
	LevelDetail // plus one span per shader file
	LevelDebug  // plus translator decisions
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

// deepest scope each level lets through; 0 admits none.
var levelDepth = [...]Scope{
	LevelOff:    0,
	LevelError:  0,
	LevelPhase:  ScopePass,
	LevelDetail: ScopeModule,
	LevelDebug:  ScopeNode,
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelDepth) {
		return false
	}
	return scope != 0 && scope <= levelDepth[l]
}
