package trace

import "errors"

// fanout copies each event to several tracers.
type fanout struct {
	tracers []Tracer
	level   Level
}

// Fanout returns a tracer that forwards to all of tracers.
func Fanout(level Level, tracers ...Tracer) Tracer {
	return &fanout{tracers: tracers, level: level}
}

func (f *fanout) Emit(ev *Event) {
	for _, t := range f.tracers {
		cp := *ev
		t.Emit(&cp)
	}
}

func (f *fanout) Flush() error {
	var errs []error
	for _, t := range f.tracers {
		errs = append(errs, t.Flush())
	}
	return errors.Join(errs...)
}

func (f *fanout) Close() error {
	var errs []error
	for _, t := range f.tracers {
		errs = append(errs, t.Close())
	}
	return errors.Join(errs...)
}

func (f *fanout) Level() Level  { return f.level }
func (f *fanout) Enabled() bool { return f.level > LevelOff }

// RingOf finds the ring tracer behind t: t itself or one of its fan-out
// targets. Nil when t keeps no ring.
func RingOf(t Tracer) *RingTracer {
	switch v := t.(type) {
	case *RingTracer:
		return v
	case *fanout:
		for _, inner := range v.tracers {
			if r := RingOf(inner); r != nil {
				return r
			}
		}
	}
	return nil
}
