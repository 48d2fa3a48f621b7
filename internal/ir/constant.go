package ir

import (
	"fmt"
	"strconv"
)

// ConstantValue is a literal tagged by scalar kind; only the field for Kind is set.
type ConstantValue struct {
	Kind  ScalarKind
	Sint  int64
	Uint  uint64
	Float float64
	Bool  bool
}

func SintValue(v int64) ConstantValue    { return ConstantValue{Kind: ScalarSint, Sint: v} }
func UintValue(v uint64) ConstantValue   { return ConstantValue{Kind: ScalarUint, Uint: v} }
func FloatValue(v float64) ConstantValue { return ConstantValue{Kind: ScalarFloat, Float: v} }
func BoolValue(v bool) ConstantValue     { return ConstantValue{Kind: ScalarBool, Bool: v} }

func (v ConstantValue) String() string {
	switch v.Kind {
	case ScalarSint:
		return strconv.FormatInt(v.Sint, 10)
	case ScalarUint:
		return strconv.FormatUint(v.Uint, 10) + "u"
	case ScalarFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ScalarBool:
		return strconv.FormatBool(v.Bool)
	}
	return fmt.Sprintf("ConstantValue(%d)", v.Kind)
}

type Constant struct {
	Name  string
	Ty    Handle[Type]
	Value ConstantValue
}
