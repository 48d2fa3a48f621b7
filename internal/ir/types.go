package ir

import (
	"fmt"
	"strings"
)

type ScalarKind uint8

const (
	ScalarBool ScalarKind = iota
	ScalarSint
	ScalarUint
	ScalarFloat
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarBool:
		return "bool"
	case ScalarSint:
		return "sint"
	case ScalarUint:
		return "uint"
	case ScalarFloat:
		return "float"
	}
	return fmt.Sprintf("ScalarKind(%d)", k)
}

// BoolWidth is the byte width used for every boolean scalar.
const BoolWidth uint8 = 1

type TypeKind uint8

const (
	TypeScalar TypeKind = iota
	TypeVector
	TypeMatrix
	TypeImage
	TypeSampler
)

type ImageDimension uint8

const (
	Dim1D ImageDimension = iota
	Dim2D
	Dim3D
	DimCube
)

func (d ImageDimension) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	case Dim3D:
		return "3D"
	case DimCube:
		return "Cube"
	}
	return fmt.Sprintf("ImageDimension(%d)", d)
}

type ImageFlags uint8

const (
	ImageSampled ImageFlags = 1 << iota
	ImageArrayed
	ImageMultisampled
)

func (f ImageFlags) String() string {
	var parts []string
	if f&ImageSampled != 0 {
		parts = append(parts, "SAMPLED")
	}
	if f&ImageArrayed != 0 {
		parts = append(parts, "ARRAYED")
	}
	if f&ImageMultisampled != 0 {
		parts = append(parts, "MULTISAMPLED")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// TypeInner is the shape of a type. Which fields are meaningful depends on Kind:
//
//	Scalar:  Scalar, Width
//	Vector:  Size, Scalar, Width
//	Matrix:  Columns, Rows, Scalar, Width
//	Image:   Base, Dim, Flags
//	Sampler: Comparison
type TypeInner struct {
	Kind       TypeKind
	Scalar     ScalarKind
	Width      uint8
	Size       uint8
	Columns    uint8
	Rows       uint8
	Base       Handle[Type]
	Dim        ImageDimension
	Flags      ImageFlags
	Comparison bool
}

type Type struct {
	Name  string
	Inner TypeInner
}

func ScalarInner(kind ScalarKind, width uint8) TypeInner {
	return TypeInner{Kind: TypeScalar, Scalar: kind, Width: width}
}

func VectorInner(size uint8, kind ScalarKind, width uint8) TypeInner {
	return TypeInner{Kind: TypeVector, Size: size, Scalar: kind, Width: width}
}

func MatrixInner(columns, rows uint8, kind ScalarKind, width uint8) TypeInner {
	return TypeInner{Kind: TypeMatrix, Columns: columns, Rows: rows, Scalar: kind, Width: width}
}

func ImageInner(base Handle[Type], dim ImageDimension, flags ImageFlags) TypeInner {
	return TypeInner{Kind: TypeImage, Base: base, Dim: dim, Flags: flags}
}

func SamplerInner(comparison bool) TypeInner {
	return TypeInner{Kind: TypeSampler, Comparison: comparison}
}

func (t TypeInner) String() string {
	switch t.Kind {
	case TypeScalar:
		return fmt.Sprintf("%s%d", t.Scalar, t.Width*8)
	case TypeVector:
		return fmt.Sprintf("vec%d<%s%d>", t.Size, t.Scalar, t.Width*8)
	case TypeMatrix:
		return fmt.Sprintf("mat%dx%d<%s%d>", t.Columns, t.Rows, t.Scalar, t.Width*8)
	case TypeImage:
		return fmt.Sprintf("image%s<#%d>[%s]", t.Dim, t.Base, t.Flags)
	case TypeSampler:
		if t.Comparison {
			return "sampler_comparison"
		}
		return "sampler"
	}
	return fmt.Sprintf("TypeKind(%d)", t.Kind)
}
