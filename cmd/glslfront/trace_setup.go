package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"glslfront/internal/config"
	"glslfront/internal/trace"
)

// setupTracing reads the --trace* flags, falling back to the [trace] section
// of the project file, and attaches the tracer to the command context.
// The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command, cfg *config.Config) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	if !flags.Changed("trace-level") && cfg.IsSet("trace", "level") {
		levelStr = cfg.Trace.Level
	}
	if !flags.Changed("trace") && cfg.IsSet("trace", "output") {
		traceOutput = cfg.Trace.Output
	}
	if !flags.Changed("trace-mode") && cfg.IsSet("trace", "mode") {
		modeStr = cfg.Trace.Mode
	}
	if !flags.Changed("trace-ring-size") && cfg.IsSet("trace", "ring_size") {
		ringSize = cfg.Trace.RingSize
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	if ringSize < 0 {
		return nil, fmt.Errorf("trace ring size must not be negative, got %d", ringSize)
	}
	modeChosen := flags.Changed("trace-mode") || cfg.IsSet("trace", "mode")
	if level == trace.LevelOff && !flags.Changed("trace-level") && !cfg.IsSet("trace", "level") {
		switch {
		case modeChosen && mode != trace.ModeStream:
			// a ring is only useful with per-file spans in it
			level = trace.LevelDetail
		case traceOutput != "":
			// --trace alone means phase-level tracing.
			level = trace.LevelPhase
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}
	if traceOutput == "" {
		traceOutput = "-"
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		Output:     streamWriter(cmd, traceOutput),
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(ctx, tracer))

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}

// streamWriter routes "-" to the command's stderr so a redirected ErrOrStderr
// sees the stream. Files are left to trace.New.
func streamWriter(cmd *cobra.Command, output string) io.Writer {
	if output == "-" {
		return cmd.ErrOrStderr()
	}
	return nil
}

// dumpTraceRing prints what the ring tracer on the command context holds.
// It reports false when tracing is not in ring or both mode.
func dumpTraceRing(cmd *cobra.Command, w io.Writer) (bool, error) {
	ring := trace.RingOf(trace.FromContext(cmd.Context()))
	if ring == nil || ring.Len() == 0 {
		return false, nil
	}
	fmt.Fprintf(w, "trace: last %d event(s) before failure\n", ring.Len())
	if err := ring.Dump(w, trace.FormatText); err != nil {
		return true, fmt.Errorf("trace: dump failed: %w", err)
	}
	return true, nil
}
