package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"glslfront/internal/driver"
	"glslfront/internal/pipeline"
	"glslfront/internal/source"
	"glslfront/internal/ui"
)

type translateOutcome struct {
	fs      *source.FileSet
	results []*driver.Result
	err     error
}

func runTranslateDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []*driver.Result, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan translateOutcome, 1)

	go func() {
		uiOpts := opts
		uiOpts.Progress = pipeline.ChannelSink{Ch: events}
		fs, results, err := driver.TranslateDir(ctx, dir, uiOpts)
		outcomeCh <- translateOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// The UI may quit early; keep the producer from blocking on a full channel.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
