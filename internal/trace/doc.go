// Package trace provides the tracing subsystem of glslfront.
//
// Tracing follows translation from the CLI down to individual IR decisions
// (function finalized, built-in injected) and helps find slow or stuck files
// in large batches.
//
// # Usage
//
//	glslfront translate --trace=- --trace-level=phase shader.vert
//	glslfront translate --trace-mode=ring shaders/   # dump recent events on failure
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory for failure dumps
//   - Fanout: sends each event to several tracers (--trace-mode=both)
//
// # Levels and scopes
//
// LevelPhase emits driver and pass events, LevelDetail adds per-file events,
// LevelDebug adds node events from the translator.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "translate", 0)
//	defer span.End("")
package trace
