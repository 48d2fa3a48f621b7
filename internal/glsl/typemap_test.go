package glsl

import (
	"testing"

	"glslfront/internal/ir"
)

func TestMapTypeShapes(t *testing.T) {
	tests := []struct {
		name string
		want ir.TypeInner
	}{
		{"bool", ir.ScalarInner(ir.ScalarBool, ir.BoolWidth)},
		{"int", ir.ScalarInner(ir.ScalarSint, 4)},
		{"uint", ir.ScalarInner(ir.ScalarUint, 4)},
		{"float", ir.ScalarInner(ir.ScalarFloat, 4)},
		{"double", ir.ScalarInner(ir.ScalarFloat, 8)},
		{"vec2", ir.VectorInner(2, ir.ScalarFloat, 4)},
		{"dvec3", ir.VectorInner(3, ir.ScalarFloat, 8)},
		{"bvec4", ir.VectorInner(4, ir.ScalarBool, ir.BoolWidth)},
		{"ivec3", ir.VectorInner(3, ir.ScalarSint, 4)},
		{"uvec2", ir.VectorInner(2, ir.ScalarUint, 4)},
		{"mat3", ir.MatrixInner(3, 3, ir.ScalarFloat, 4)},
		{"mat2x4", ir.MatrixInner(2, 4, ir.ScalarFloat, 4)},
		{"dmat4x3", ir.MatrixInner(4, 3, ir.ScalarFloat, 8)},
		{"dmat2", ir.MatrixInner(2, 2, ir.ScalarFloat, 8)},
		{"sampler", ir.SamplerInner(false)},
		{"samplerShadow", ir.SamplerInner(true)},
		{"texture2D", ir.ImageInner(0, ir.Dim2D, ir.ImageSampled)},
		{"itexture1DArray", ir.ImageInner(0, ir.Dim1D, ir.ImageSampled|ir.ImageArrayed)},
		{"utexture2DMSArray", ir.ImageInner(0, ir.Dim2D, ir.ImageSampled|ir.ImageArrayed|ir.ImageMultisampled)},
		{"textureCube", ir.ImageInner(0, ir.DimCube, ir.ImageSampled)},
		{"textureCubeArray", ir.ImageInner(0, ir.DimCube, ir.ImageSampled|ir.ImageArrayed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := MapType(tt.name)
			if err != nil {
				t.Fatalf("MapType: %v", err)
			}
			if shape.Void || shape.Inner != tt.want {
				t.Fatalf("got %+v, want %+v", shape.Inner, tt.want)
			}
		})
	}
}

func TestMapTypeImageScalar(t *testing.T) {
	for name, want := range map[string]ir.ScalarKind{
		"texture3D":  ir.ScalarFloat,
		"itexture3D": ir.ScalarSint,
		"utexture3D": ir.ScalarUint,
	} {
		shape, err := MapType(name)
		if err != nil || shape.ImageScalar != want {
			t.Errorf("%s: scalar %s, err %v; want %s", name, shape.ImageScalar, err, want)
		}
	}
}

func TestMapTypeFailures(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
	}{
		{"texture2DRect", ErrUnrecognizedType},
		{"textureBuffer", ErrUnrecognizedType},
		{"xtexture2D", ErrUnrecognizedType},
		{"sampler2D", ErrUnimplementedType},
		{"image2D", ErrUnimplementedType},
		{"vec5", ErrUnimplementedType},
		{"mat2x5", ErrUnimplementedType},
	}
	for _, tt := range tests {
		_, err := MapType(tt.name)
		if KindOf(err) != tt.kind {
			t.Errorf("%s: got %v, want %s", tt.name, err, tt.kind)
		}
	}
	if shape, err := MapType("void"); err != nil || !shape.Void {
		t.Errorf("void: %+v, %v", shape, err)
	}
}

func TestInternTypeIdempotent(t *testing.T) {
	types := ir.NewUniqueArena[ir.Type]()
	a, err := InternType(types, "vec4")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := InternType(types, "vec4")
	if a != b {
		t.Fatalf("vec4 interned twice: %d vs %d", a, b)
	}
	c, _ := InternType(types, "ivec4")
	d, _ := InternType(types, "dvec4")
	if c == a || d == a || c == d {
		t.Fatalf("distinct types share handles: %d %d %d", a, c, d)
	}

	img, err := InternType(types, "itexture2D")
	if err != nil {
		t.Fatal(err)
	}
	inner := types.Get(img).Inner
	base := types.Get(inner.Base)
	if base == nil || base.Inner != ir.ScalarInner(ir.ScalarSint, 4) {
		t.Fatalf("image base = %+v", base)
	}
	again, _ := InternType(types, "itexture2D")
	if again != img {
		t.Fatal("image type not interned")
	}
	if h, err := InternType(types, "void"); err != nil || h != 0 {
		t.Fatalf("void = %d, %v", h, err)
	}
}
