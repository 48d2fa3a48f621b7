package trace

// nopTracer is a zero-overhead tracer that does nothing.
type nopTracer struct{}

func (nopTracer) Emit(*Event) {}

func (nopTracer) Flush() error { return nil }

func (nopTracer) Close() error { return nil }

func (nopTracer) Level() Level { return LevelOff }

func (nopTracer) Enabled() bool { return false }

// Nop is the shared disabled tracer.
var Nop Tracer = nopTracer{}
