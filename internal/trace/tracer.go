package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives trace events. Implementations must be safe for concurrent
// use: TranslateDir traces several files at once.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled is false when Level is LevelOff.
	Enabled() bool
}

// Mode selects where events go.
type Mode uint8

const (
	ModeStream Mode = iota + 1 // written as they happen
	ModeRing                   // kept in memory, printed when a file fails
	ModeBoth
)

var modeNames = map[Mode]string{ModeStream: "stream", ModeRing: "ring", ModeBoth: "both"}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode accepts stream, ring or both; empty means stream.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ModeStream, nil
	}
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid trace mode: %q (expected: stream|ring|both)", s)
}

type Config struct {
	Level  Level
	Mode   Mode
	Format Format
	// Output wins over OutputPath. OutputPath "" or "-" is stderr; a
	// .ndjson suffix switches a text format to NDJSON.
	Output     io.Writer
	OutputPath string
	RingSize   int
}

// New builds the tracer cfg describes. LevelOff always yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	mode := cfg.Mode
	if mode == 0 {
		mode = ModeStream
	}

	var stream Tracer
	if mode == ModeStream || mode == ModeBoth {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		format := cfg.Format
		if format == FormatText && strings.HasSuffix(cfg.OutputPath, ".ndjson") {
			format = FormatNDJSON
		}
		stream = NewStreamTracer(w, cfg.Level, format)
	}

	switch mode {
	case ModeStream:
		return stream, nil
	case ModeRing:
		return NewRingTracer(cfg.RingSize, cfg.Level), nil
	case ModeBoth:
		return Fanout(cfg.Level, stream, NewRingTracer(cfg.RingSize, cfg.Level)), nil
	}
	return nil, fmt.Errorf("unknown trace mode: %v", mode)
}

func openOutput(cfg Config) (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
