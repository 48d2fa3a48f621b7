// Package pipeline carries per-file progress events from the driver to
// whatever renders them (the terminal UI or nothing).
package pipeline

import "time"

// Stage is one step of translating a shader file.
type Stage string

const (
	StageLoad      Stage = "load"
	StageCache     Stage = "cache"
	StageLex       Stage = "lex"
	StageTranslate Stage = "translate"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	// StatusCached marks a file whose module came from the disk cache.
	StatusCached Status = "cached"
	StatusDone   Status = "done"
	StatusError  Status = "error"
)

// Event reports progress for a file, or for the whole batch when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Final reports whether no further events follow for the file.
func (e Event) Final() bool {
	return e.Status == StatusDone || e.Status == StatusError || e.Status == StatusCached
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }

// Emit sends evt to sink when one is configured.
func Emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
