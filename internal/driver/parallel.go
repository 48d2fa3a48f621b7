package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"glslfront/internal/diag"
	"glslfront/internal/pipeline"
	"glslfront/internal/source"
	"glslfront/internal/trace"
)

// ListShaderFiles returns the sorted shader files under dir. Plain .glsl files
// are included only when the stage is given explicitly.
func ListShaderFiles(dir string, explicitStage bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isShaderFile(path, explicitStage) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TranslateDir translates every shader under dir in parallel. Results follow
// the sorted file order. A file that fails to load gets a result whose Bag
// holds the I/O diagnostic.
func TranslateDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	files, err := ListShaderFiles(dir, opts.StageSet)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "translate_dir", trace.CurrentSpan(ctx).SpanID).
		WithExtra("files", fmt.Sprint(len(files)))
	defer span.End("")
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	// FileSet is not safe for concurrent Add, so everything is loaded up front.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		emit(opts, path, pipeline.StageLoad, pipeline.StatusQueued, nil, 0)
		id, err := fileSet.Load(path)
		if err != nil {
			// An empty placeholder gives the I/O diagnostic a location.
			id = fileSet.AddVirtual(path, nil)
			loadErrors[path] = err
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its index.
	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: fileIDs[path]},
				})
				results[i] = &Result{Path: path, FileID: fileIDs[path], Bag: bag, Err: loadErr}
				emit(opts, path, pipeline.StageLoad, pipeline.StatusError, loadErr, 0)
				return nil
			}
			res, err := TranslateFile(gctx, fileSet, fileIDs[path], opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
