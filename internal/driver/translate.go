package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glslfront/internal/diag"
	"glslfront/internal/glsl"
	"glslfront/internal/ir"
	"glslfront/internal/observ"
	"glslfront/internal/pipeline"
	"glslfront/internal/source"
	"glslfront/internal/trace"
)

// Result is the outcome of translating one shader file.
type Result struct {
	Path    string
	FileID  source.FileID
	Stage   glsl.Stage
	Version uint16
	Bag     *diag.Bag
	// Program is set after a fresh translation; Module is set on any success.
	Program *glsl.Program
	Module  *ir.Module
	Cached  bool
	// Err is the translator failure, also present in Bag as a diagnostic.
	Err    error
	Timing *observ.Report
}

// Failed reports whether the file produced no module.
func (r *Result) Failed() bool {
	return r.Module == nil
}

// ErrLexical is returned in Result.Err when the lexer reported errors and the
// translator did not run.
var ErrLexical = errors.New("lexical errors")

// Translate loads path and translates it.
func Translate(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fs, nil, fmt.Errorf("load %s: %w", path, err)
	}
	res, err := TranslateFile(ctx, fs, id, opts)
	return fs, res, err
}

// TranslateFile translates a file already held by fs. The returned error is
// reserved for stage inference failures and cancellation; lexer and translator
// problems land in Result.Bag.
func TranslateFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("file %d not loaded", id)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stage, err := opts.stageFor(file.Path)
	if err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	fileSpan := trace.Begin(tracer, trace.ScopeModule, "file:"+file.Path, trace.CurrentSpan(ctx).SpanID).
		WithExtra("stage", stage.String())
	defer fileSpan.End("")

	timer := observ.NewTimer()
	res := &Result{
		Path:   file.Path,
		FileID: id,
		Stage:  stage,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}
	defer func() {
		rep := timer.Report()
		res.Timing = &rep
	}()

	key := CacheKey(file.Hash, stage, opts)
	if opts.Cache != nil && lookupCache(res, key, opts, tracer, fileSpan.ID(), timer) {
		return res, nil
	}

	emit(opts, file.Path, pipeline.StageLex, pipeline.StatusWorking, nil, 0)
	lexStart := time.Now()
	lexSpan := trace.Begin(tracer, trace.ScopePass, "lex", fileSpan.ID())
	idx := timer.Begin("lex")
	tokens := lexFile(file, res.Bag)
	timer.End(idx, fmt.Sprintf("%d tokens", len(tokens)))
	lexSpan.End("")
	opts.Timings.Add(pipeline.StageLex, time.Since(lexStart))
	if res.Bag.HasErrors() {
		res.Err = ErrLexical
		emit(opts, file.Path, pipeline.StageLex, pipeline.StatusError, ErrLexical, time.Since(lexStart))
		return res, nil
	}

	emit(opts, file.Path, pipeline.StageTranslate, pipeline.StatusWorking, nil, 0)
	trStart := time.Now()
	trSpan := trace.Begin(tracer, trace.ScopePass, "translate", fileSpan.ID())
	idx = timer.Begin("translate")
	gopts := opts.translateOptions(stage)
	gopts.Tracer = tracer
	prog, err := glsl.TranslateTokens(tokens, gopts)
	timer.End(idx, "")
	opts.Timings.Add(pipeline.StageTranslate, time.Since(trStart))
	if err != nil {
		trSpan.End(glsl.KindOf(err).String())
		res.Err = err
		var gerr *glsl.Error
		if errors.As(err, &gerr) {
			res.Bag.Add(gerr.Diagnostic())
		}
		emit(opts, file.Path, pipeline.StageTranslate, pipeline.StatusError, err, time.Since(trStart))
		return res, nil
	}
	trSpan.End("")
	res.Program, res.Module, res.Version = prog, prog.Module, prog.Version

	if opts.Cache != nil {
		storeCache(res, key, opts, tracer, fileSpan.ID(), timer)
	}
	emit(opts, file.Path, pipeline.StageTranslate, pipeline.StatusDone, nil, time.Since(trStart))
	return res, nil
}

func lookupCache(res *Result, key Digest, opts Options, tracer trace.Tracer, parent uint64, timer *observ.Timer) bool {
	emit(opts, res.Path, pipeline.StageCache, pipeline.StatusWorking, nil, 0)
	start := time.Now()
	span := trace.Begin(tracer, trace.ScopePass, "cache", parent)
	idx := timer.Begin("cache")
	payload, ok, err := opts.Cache.Get(key)
	timer.End(idx, "")
	opts.Timings.Add(pipeline.StageCache, time.Since(start))
	if err != nil {
		span.End("error")
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheError,
			Message:  "ignoring unreadable cache entry: " + err.Error(),
		})
		return false
	}
	if !ok {
		span.End("miss")
		return false
	}
	span.End("hit")
	res.Module, res.Version, res.Cached = payload.Module, payload.Version, true
	emit(opts, res.Path, pipeline.StageCache, pipeline.StatusCached, nil, time.Since(start))
	return true
}

func storeCache(res *Result, key Digest, opts Options, tracer trace.Tracer, parent uint64, timer *observ.Timer) {
	span := trace.Begin(tracer, trace.ScopePass, "cache_store", parent)
	idx := timer.Begin("cache_store")
	err := opts.Cache.Put(key, &CachePayload{
		Path:    res.Path,
		Stage:   res.Stage,
		Version: res.Version,
		Module:  res.Module,
	})
	timer.End(idx, "")
	if err != nil {
		span.End("error")
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheError,
			Message:  "cannot write cache entry: " + err.Error(),
		})
		return
	}
	span.End("")
}

func emit(opts Options, path string, stage pipeline.Stage, status pipeline.Status, err error, elapsed time.Duration) {
	pipeline.Emit(opts.Progress, pipeline.Event{
		File:    path,
		Stage:   stage,
		Status:  status,
		Err:     err,
		Elapsed: elapsed,
	})
}
