package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"glslfront/internal/config"
	"glslfront/internal/diagfmt"
	"glslfront/internal/driver"
	"glslfront/internal/glsl"
	"glslfront/internal/observ"
	"glslfront/internal/pipeline"
	"glslfront/internal/source"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] <file|directory>",
	Short: "Translate GLSL shaders into IR",
	Long: `Translate runs the lexer and the GLSL translator over a shader file, or over
every .vert/.frag/.comp file in a directory, and prints the resulting IR module.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().String("stage", "", "shader stage (vertex|fragment|compute); inferred from the extension when empty")
	translateCmd.Flags().Bool("validate", false, "reject duplicate local and conflicting global declarations")
	translateCmd.Flags().Int("max-depth", 0, "expression nesting limit (0 = project file or default)")
	translateCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	translateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	translateCmd.Flags().String("emit", "ir", "module output for pretty format (ir|json|none)")
	translateCmd.Flags().Bool("no-cache", false, "disable the translated module cache")
	translateCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	translateCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// translateFlags is the command line as read, before the project file is
// applied.
type translateFlags struct {
	stage          string
	stageSet       bool
	validate       bool
	validateSet    bool
	maxDepth       int
	jobs           int
	format         string
	emit           string
	noCache        bool
	ui             uiMode
	fullPath       bool
	maxDiagnostics int
	quiet          bool
	timings        bool
}

func readTranslateFlags(cmd *cobra.Command) (translateFlags, error) {
	var (
		tf  translateFlags
		err error
	)
	flags := cmd.Flags()
	if tf.stage, err = flags.GetString("stage"); err != nil {
		return tf, fmt.Errorf("failed to get stage flag: %w", err)
	}
	tf.stageSet = tf.stage != ""
	if tf.validate, err = flags.GetBool("validate"); err != nil {
		return tf, fmt.Errorf("failed to get validate flag: %w", err)
	}
	tf.validateSet = flags.Changed("validate")
	if tf.maxDepth, err = flags.GetInt("max-depth"); err != nil {
		return tf, fmt.Errorf("failed to get max-depth flag: %w", err)
	}
	if tf.jobs, err = flags.GetInt("jobs"); err != nil {
		return tf, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if tf.format, err = flags.GetString("format"); err != nil {
		return tf, fmt.Errorf("failed to get format flag: %w", err)
	}
	if tf.emit, err = flags.GetString("emit"); err != nil {
		return tf, fmt.Errorf("failed to get emit flag: %w", err)
	}
	if tf.noCache, err = flags.GetBool("no-cache"); err != nil {
		return tf, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return tf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if tf.ui, err = readUIMode(uiValue); err != nil {
		return tf, err
	}
	if tf.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return tf, fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	root := cmd.Root().PersistentFlags()
	if tf.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return tf, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if tf.quiet, err = root.GetBool("quiet"); err != nil {
		return tf, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if tf.timings, err = root.GetBool("timings"); err != nil {
		return tf, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return tf, nil
}

// resolveOptions merges flags over the project file. A flag given on the
// command line always wins.
func resolveOptions(tf translateFlags, cfg *config.Config) (driver.Options, error) {
	opts := driver.Options{
		Validate:       cfg.Translate.Validate,
		MaxDepth:       cfg.Translate.MaxDepth,
		MaxDiagnostics: tf.maxDiagnostics,
		Jobs:           tf.jobs,
	}
	switch {
	case tf.stageSet:
		st, err := glsl.ParseStage(tf.stage)
		if err != nil {
			return opts, err
		}
		opts.Stage, opts.StageSet = st, true
	default:
		opts.Stage, opts.StageSet = cfg.Stage()
	}
	if tf.validateSet {
		opts.Validate = tf.validate
	}
	if tf.maxDepth < 0 {
		return opts, fmt.Errorf("--max-depth must not be negative")
	}
	if tf.maxDepth > 0 {
		opts.MaxDepth = tf.maxDepth
	}
	switch tf.format {
	case "pretty", "json":
	default:
		return opts, fmt.Errorf("unknown format: %s", tf.format)
	}
	switch tf.emit {
	case "ir", "json", "none":
	default:
		return opts, fmt.Errorf("unknown emit value: %s (expected ir|json|none)", tf.emit)
	}
	return opts, nil
}

func openCache(cfg *config.Config, tf translateFlags) (*driver.DiskCache, error) {
	if tf.noCache || !cfg.Cache.Enabled {
		return nil, nil
	}
	if dir := cfg.CacheDir(); dir != "" {
		return driver.NewDiskCache(dir)
	}
	return driver.OpenDiskCache("glslfront")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	target := args[0]

	tf, err := readTranslateFlags(cmd)
	if err != nil {
		return err
	}
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	cfg, err := config.Discover(target)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(tf, cfg)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	if opts.Cache, err = openCache(cfg, tf); err != nil {
		if !tf.quiet {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
		}
		opts.Cache = nil
	}
	timings := &pipeline.Timings{}
	opts.Timings = timings

	var (
		fs      *source.FileSet
		results []*driver.Result
	)
	if st.IsDir() {
		useTUI := !tf.quiet && tf.format == "pretty" && shouldUseTUI(tf.ui)
		if useTUI {
			files, err := driver.ListShaderFiles(target, opts.StageSet)
			if err != nil {
				return err
			}
			fs, results, err = runTranslateDirWithUI(cmd.Context(), "glslfront translate", target, files, opts)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
		} else {
			fs, results, err = driver.TranslateDir(cmd.Context(), target, opts)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
		}
	} else {
		var res *driver.Result
		fs, res, err = driver.Translate(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		results = []*driver.Result{res}
	}

	if tf.format == "json" {
		if err := renderJSONReport(os.Stdout, fs, results, tf); err != nil {
			return err
		}
	} else {
		if err := renderPrettyReport(cmd, fs, results, tf, st.IsDir()); err != nil {
			return err
		}
	}

	if tf.timings {
		printStageTimings(os.Stderr, timings)
		if !st.IsDir() && results[0].Timing != nil {
			printPhaseReport(os.Stderr, *results[0].Timing)
		}
	}

	for _, r := range results {
		if r.Failed() || r.Bag.HasErrors() {
			if _, err := dumpTraceRing(cmd, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return exitError{code: 1}
		}
	}
	return nil
}

func renderPrettyReport(cmd *cobra.Command, fs *source.FileSet, results []*driver.Result, tf translateFlags, multi bool) error {
	useColor, err := colorFor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   2,
		PathMode:  readPathMode(tf.fullPath),
		ShowNotes: true,
	}

	var failed, cached int
	for idx, r := range results {
		if multi && !tf.quiet {
			if idx > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath(fs, r, tf.fullPath))
		}
		if r.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
		if r.Cached {
			cached++
		}
		if r.Failed() {
			failed++
			continue
		}
		switch tf.emit {
		case "ir":
			err = diagfmt.FormatModulePretty(os.Stdout, r.Module)
		case "json":
			err = diagfmt.FormatModuleJSON(os.Stdout, r.Module)
		}
		if err != nil {
			return err
		}
	}
	if multi && !tf.quiet {
		fmt.Fprintf(os.Stderr, "translated %d file(s), %d cached, %d failed\n", len(results), cached, failed)
	}
	return nil
}

// fileReport is one file in --format json output.
type fileReport struct {
	Path        string                    `json:"path"`
	Stage       string                    `json:"stage,omitempty"`
	Version     uint16                    `json:"version,omitempty"`
	Cached      bool                      `json:"cached,omitempty"`
	Error       string                    `json:"error,omitempty"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
	Module      *diagfmt.ModuleJSON       `json:"module,omitempty"`
	Timing      *observ.Report            `json:"timing,omitempty"`
}

func buildFileReports(fs *source.FileSet, results []*driver.Result, tf translateFlags) []fileReport {
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         readPathMode(tf.fullPath),
		IncludeNotes:     true,
	}
	reports := make([]fileReport, 0, len(results))
	for _, r := range results {
		rep := fileReport{
			Path:        displayPath(fs, r, tf.fullPath),
			Version:     r.Version,
			Cached:      r.Cached,
			Diagnostics: diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts),
		}
		if r.Module != nil || r.Err != nil {
			rep.Stage = r.Stage.String()
		}
		if r.Err != nil {
			rep.Error = r.Err.Error()
		}
		if r.Module != nil && tf.emit != "none" {
			mod := diagfmt.BuildModuleJSON(r.Module)
			rep.Module = &mod
		}
		if tf.timings {
			rep.Timing = r.Timing
		}
		reports = append(reports, rep)
	}
	return reports
}

func renderJSONReport(w io.Writer, fs *source.FileSet, results []*driver.Result, tf translateFlags) error {
	reports := buildFileReports(fs, results, tf)
	if len(reports) == 1 {
		return writeJSON(w, reports[0])
	}
	return writeJSON(w, reports)
}

func displayPath(fs *source.FileSet, r *driver.Result, fullPath bool) string {
	file := fs.Get(r.FileID)
	if file == nil {
		return r.Path
	}
	mode := "auto"
	if fullPath {
		mode = "absolute"
	}
	return file.FormatPath(mode, fs.BaseDir())
}
