package glsl

import (
	"strings"

	"glslfront/internal/ir"
)

// TypeShape is the mapped form of a built-in type name. For images Inner.Base
// is left unset and ImageScalar names the base scalar kind to intern.
type TypeShape struct {
	Void        bool
	Inner       ir.TypeInner
	ImageScalar ir.ScalarKind
}

type imageSuffix struct {
	dim   ir.ImageDimension
	flags ir.ImageFlags
}

var imageSuffixes = map[string]imageSuffix{
	"1D":        {ir.Dim1D, ir.ImageSampled},
	"2D":        {ir.Dim2D, ir.ImageSampled},
	"3D":        {ir.Dim3D, ir.ImageSampled},
	"1DArray":   {ir.Dim1D, ir.ImageSampled | ir.ImageArrayed},
	"2DArray":   {ir.Dim2D, ir.ImageSampled | ir.ImageArrayed},
	"3DArray":   {ir.Dim3D, ir.ImageSampled | ir.ImageArrayed},
	"2DMS":      {ir.Dim2D, ir.ImageSampled | ir.ImageMultisampled},
	"2DMSArray": {ir.Dim2D, ir.ImageSampled | ir.ImageArrayed | ir.ImageMultisampled},
	"Cube":      {ir.DimCube, ir.ImageSampled},
	"CubeArray": {ir.DimCube, ir.ImageSampled | ir.ImageArrayed},
}

var imagePrefixes = map[string]ir.ScalarKind{
	"":  ir.ScalarFloat,
	"i": ir.ScalarSint,
	"u": ir.ScalarUint,
}

// imageScalarWidth is the width of every image base scalar, whatever its kind.
const imageScalarWidth = 4

// MapType maps a built-in type name to its IR shape. Names it knows but cannot
// translate fail ErrUnimplementedType; texture names with an unknown prefix or
// suffix fail ErrUnrecognizedType.
func MapType(name string) (TypeShape, error) {
	if inner, ok := scalarShape(name); ok {
		return TypeShape{Inner: inner}, nil
	}
	if inner, ok := vectorShape(name); ok {
		return TypeShape{Inner: inner}, nil
	}
	if inner, ok := matrixShape(name); ok {
		return TypeShape{Inner: inner}, nil
	}
	if pos := strings.Index(name, "texture"); pos >= 0 {
		kind, ok := imagePrefixes[name[:pos]]
		if !ok {
			return TypeShape{}, &Error{Kind: ErrUnrecognizedType, Name: name, Message: "unknown texture prefix"}
		}
		suffix, ok := imageSuffixes[name[pos+len("texture"):]]
		if !ok {
			return TypeShape{}, &Error{Kind: ErrUnrecognizedType, Name: name, Message: "unknown texture dimension"}
		}
		return TypeShape{Inner: ir.ImageInner(0, suffix.dim, suffix.flags), ImageScalar: kind}, nil
	}
	switch name {
	case "void":
		return TypeShape{Void: true}, nil
	case "sampler":
		return TypeShape{Inner: ir.SamplerInner(false)}, nil
	case "samplerShadow":
		return TypeShape{Inner: ir.SamplerInner(true)}, nil
	}
	return TypeShape{}, &Error{Kind: ErrUnimplementedType, Name: name}
}

// InternType maps name and interns the result. Void yields the zero handle.
func InternType(types *ir.UniqueArena[ir.Type], name string) (ir.Handle[ir.Type], error) {
	shape, err := MapType(name)
	if err != nil || shape.Void {
		return 0, err
	}
	inner := shape.Inner
	if inner.Kind == ir.TypeImage {
		inner.Base = types.FetchOrAppend(ir.Type{Inner: ir.ScalarInner(shape.ImageScalar, imageScalarWidth)})
	}
	return types.FetchOrAppend(ir.Type{Inner: inner}), nil
}

func scalarShape(name string) (ir.TypeInner, bool) {
	switch name {
	case "bool":
		return ir.ScalarInner(ir.ScalarBool, ir.BoolWidth), true
	case "int":
		return ir.ScalarInner(ir.ScalarSint, 4), true
	case "uint":
		return ir.ScalarInner(ir.ScalarUint, 4), true
	case "float":
		return ir.ScalarInner(ir.ScalarFloat, 4), true
	case "double":
		return ir.ScalarInner(ir.ScalarFloat, 8), true
	}
	return ir.TypeInner{}, false
}

// vectorShape handles vecN, dvecN, bvecN, ivecN and uvecN.
func vectorShape(name string) (ir.TypeInner, bool) {
	pos := strings.Index(name, "vec")
	if pos < 0 || pos > 1 || len(name) != pos+4 {
		return ir.TypeInner{}, false
	}
	size, ok := dimension(name[pos+3])
	if !ok {
		return ir.TypeInner{}, false
	}
	switch name[:pos] {
	case "":
		return ir.VectorInner(size, ir.ScalarFloat, 4), true
	case "d":
		return ir.VectorInner(size, ir.ScalarFloat, 8), true
	case "b":
		return ir.VectorInner(size, ir.ScalarBool, ir.BoolWidth), true
	case "i":
		return ir.VectorInner(size, ir.ScalarSint, 4), true
	case "u":
		return ir.VectorInner(size, ir.ScalarUint, 4), true
	}
	return ir.TypeInner{}, false
}

// matrixShape handles matC, matCxR and their dmat forms.
func matrixShape(name string) (ir.TypeInner, bool) {
	width := uint8(4)
	rest, ok := strings.CutPrefix(name, "mat")
	if !ok {
		if rest, ok = strings.CutPrefix(name, "dmat"); !ok {
			return ir.TypeInner{}, false
		}
		width = 8
	}
	switch len(rest) {
	case 1:
		n, ok := dimension(rest[0])
		if !ok {
			return ir.TypeInner{}, false
		}
		return ir.MatrixInner(n, n, ir.ScalarFloat, width), true
	case 3:
		cols, okc := dimension(rest[0])
		rows, okr := dimension(rest[2])
		if !okc || !okr || rest[1] != 'x' {
			return ir.TypeInner{}, false
		}
		return ir.MatrixInner(cols, rows, ir.ScalarFloat, width), true
	}
	return ir.TypeInner{}, false
}

func dimension(b byte) (uint8, bool) {
	if b < '2' || b > '4' {
		return 0, false
	}
	return b - '0', true
}
