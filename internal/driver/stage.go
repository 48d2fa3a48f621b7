package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"glslfront/internal/glsl"
)

// shaderExts lists the extensions TranslateDir picks up without an explicit stage.
var shaderExts = map[string]glsl.Stage{
	".vert": glsl.StageVertex,
	".frag": glsl.StageFragment,
	".comp": glsl.StageCompute,
}

// InferStage derives the shader stage from the file name. "x.vert" and
// "x.vert.glsl" are both vertex shaders.
func InferStage(path string) (glsl.Stage, error) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".glsl" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(name, filepath.Ext(name))))
	}
	if stage, ok := shaderExts[ext]; ok {
		return stage, nil
	}
	return 0, fmt.Errorf("%s: cannot infer shader stage from extension (use --stage)", path)
}

func (o Options) stageFor(path string) (glsl.Stage, error) {
	if o.StageSet {
		return o.Stage, nil
	}
	return InferStage(path)
}

func isShaderFile(path string, explicitStage bool) bool {
	if _, err := InferStage(path); err == nil {
		return true
	}
	return explicitStage && strings.EqualFold(filepath.Ext(path), ".glsl")
}
