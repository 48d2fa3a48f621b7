package trace

import (
	"io"
	"sync"
)

// RingTracer remembers the most recent events of a run so they can be
// printed after a shader fails to translate.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	next  int // slot the next event goes into
	count int
	level Level
}

// DefaultRingSize is used when a ring size of zero or less is requested.
const DefaultRingSize = 4096

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = DefaultRingSize
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf[t.next] = *ev
	t.buf[t.next].Seq = NextSeq()
	t.next = (t.next + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Len is the number of events currently held.
func (t *RingTracer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Snapshot copies the held events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, t.count)
	start := (t.next - t.count + len(t.buf)) % len(t.buf)
	for i := range out {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Dump writes the held events, oldest first.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }
func (t *RingTracer) Close() error { return nil }
func (t *RingTracer) Level() Level { return t.level }

func (t *RingTracer) Enabled() bool {
	return t.level > LevelOff
}
