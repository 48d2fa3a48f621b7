package main

import (
	"fmt"
	"io"
	"time"

	"glslfront/internal/observ"
	"glslfront/internal/pipeline"
)

func printStageTimings(out io.Writer, timings *pipeline.Timings) {
	if out == nil || timings == nil {
		return
	}
	stages := []struct {
		stage pipeline.Stage
		label string
	}{
		{pipeline.StageCache, "cache"},
		{pipeline.StageLex, "lexed"},
		{pipeline.StageTranslate, "translated"},
	}
	for _, s := range stages {
		if timings.Has(s.stage) {
			fmt.Fprintf(out, "%s %.1f ms\n", s.label, toMillis(timings.Duration(s.stage)))
		}
	}
}

func printPhaseReport(out io.Writer, report observ.Report) {
	for _, p := range report.Phases {
		if p.Note != "" {
			fmt.Fprintf(out, "  %-12s %8.2f ms  (%s)\n", p.Name, p.DurationMS, p.Note)
			continue
		}
		fmt.Fprintf(out, "  %-12s %8.2f ms\n", p.Name, p.DurationMS)
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
