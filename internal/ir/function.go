package ir

import (
	"slices"
)

// GlobalUse records how a function touches one global variable.
type GlobalUse uint8

const (
	GlobalUseRead GlobalUse = 1 << iota
	GlobalUseWrite
)

func (u GlobalUse) String() string {
	switch u {
	case GlobalUseRead:
		return "read"
	case GlobalUseWrite:
		return "write"
	case GlobalUseRead | GlobalUseWrite:
		return "read|write"
	}
	return "none"
}

type GlobalUsage struct {
	Global Handle[GlobalVariable]
	Use    GlobalUse
}

type Function struct {
	Name        string
	Parameters  []Handle[Type]
	Return      Handle[Type]
	GlobalUsage []GlobalUsage // sorted by Global
	Locals      Arena[LocalVariable]
	Expressions Arena[Expression]
	Body        []Statement
}

// Usage returns the recorded use of g, or 0 when the function never touches it.
func (f *Function) Usage(g Handle[GlobalVariable]) GlobalUse {
	i, ok := slices.BinarySearchFunc(f.GlobalUsage, g, func(u GlobalUsage, g Handle[GlobalVariable]) int {
		return int(u.Global) - int(g)
	})
	if !ok {
		return 0
	}
	return f.GlobalUsage[i].Use
}
