// Package driver runs the lexer and the GLSL translator over shader files,
// one at a time or a whole directory in parallel, with an optional disk cache.
package driver

import (
	"glslfront/internal/glsl"
	"glslfront/internal/pipeline"
)

// Options configures a translation run. The zero value translates with stage
// inference, no validation, the default depth limit and no cache.
type Options struct {
	// Stage is used when StageSet is true; otherwise the stage is inferred
	// from the file extension.
	Stage    glsl.Stage
	StageSet bool

	Validate       bool
	MaxDepth       int
	MaxDiagnostics int
	Jobs           int // parallel files in TranslateDir; 0 means GOMAXPROCS

	Cache    *DiskCache
	Progress pipeline.ProgressSink
	Timings  *pipeline.Timings
}

func (o Options) translateOptions(stage glsl.Stage) glsl.Options {
	return glsl.Options{
		Stage:    stage,
		Validate: o.Validate,
		MaxDepth: o.MaxDepth,
	}
}
