package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"glslfront/internal/diag"
	"glslfront/internal/glsl"
	"glslfront/internal/pipeline"
	"glslfront/internal/trace"
)

const vertexShader = `#version 450
layout(location = 0) in vec3 pos;
void main() {
    gl_Position = vec4(pos, 1.0);
}
`

func writeShader(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

type eventLog struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (l *eventLog) OnEvent(ev pipeline.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) statuses(file string) []pipeline.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []pipeline.Status
	for _, ev := range l.events {
		if ev.File == file {
			out = append(out, ev.Status)
		}
	}
	return out
}

func TestTranslateFile(t *testing.T) {
	path := writeShader(t, t.TempDir(), "basic.vert", vertexShader)
	log := &eventLog{}
	ring := trace.NewRingTracer(128, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)

	_, res, err := Translate(ctx, path, Options{Progress: log})
	if err != nil {
		t.Fatal(err)
	}
	if res.Failed() || res.Err != nil || res.Bag.Len() != 0 {
		t.Fatalf("result = %+v, diags %+v", res, res.Bag.Items())
	}
	if res.Stage != glsl.StageVertex || res.Version != 450 || res.Program == nil {
		t.Errorf("stage %s version %d", res.Stage, res.Version)
	}
	if _, fn := res.Module.FunctionByName("main"); fn == nil {
		t.Error("main missing")
	}
	if res.Timing == nil || len(res.Timing.Phases) != 2 {
		t.Errorf("timing = %+v", res.Timing)
	}

	got := log.statuses(path)
	want := []pipeline.Status{pipeline.StatusWorking, pipeline.StatusWorking, pipeline.StatusDone}
	if len(got) != len(want) || got[2] != want[2] {
		t.Errorf("events = %v", got)
	}

	names := map[string]bool{}
	for _, ev := range ring.Snapshot() {
		names[ev.Name] = true
	}
	for _, n := range []string{"file:" + path, "lex", "translate", "translation_unit", "function", "builtin"} {
		if !names[n] {
			t.Errorf("trace event %q missing", n)
		}
	}
}

func TestTranslateLexicalErrorSkipsTranslator(t *testing.T) {
	path := writeShader(t, t.TempDir(), "bad.frag", "#version 450\nvoid main() { @ }\n")
	_, res, err := Translate(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res.Err, ErrLexical) || !res.Failed() {
		t.Fatalf("err = %v", res.Err)
	}
	for _, d := range res.Bag.Items() {
		if d.Code == diag.LexUnknownChar {
			return
		}
	}
	t.Fatalf("diagnostics = %+v", res.Bag.Items())
}

func TestTranslateErrorBecomesDiagnostic(t *testing.T) {
	path := writeShader(t, t.TempDir(), "bad.vert", "#version 330\nvoid main() {}\n")
	_, res, err := Translate(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if glsl.KindOf(res.Err) != glsl.ErrInvalidVersion {
		t.Fatalf("err = %v", res.Err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SemaInvalidVersion || items[0].Primary.Start != 9 {
		t.Fatalf("diagnostics = %+v", items)
	}
}

func TestTranslateStageErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeShader(t, dir, "shader.glsl", vertexShader)
	if _, _, err := Translate(context.Background(), path, Options{}); err == nil {
		t.Fatal("expected stage inference error")
	}
	_, res, err := Translate(context.Background(), path, Options{Stage: glsl.StageCompute, StageSet: true})
	if err != nil {
		t.Fatal(err)
	}
	if glsl.KindOf(res.Err) != glsl.ErrUnknownIdentifier {
		t.Fatalf("compute shaders have no gl_Position: %v", res.Err)
	}
	if _, _, err := Translate(context.Background(), filepath.Join(dir, "missing.vert"), Options{}); err == nil {
		t.Fatal("expected load error")
	}
}

func TestTranslateUsesCache(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := writeShader(t, dir, "basic.vert", vertexShader)
	opts := Options{Cache: cache}

	_, first, err := Translate(context.Background(), path, opts)
	if err != nil || first.Cached {
		t.Fatalf("first run: %v cached=%v", err, first.Cached)
	}
	log := &eventLog{}
	opts.Progress = log
	_, second, err := Translate(context.Background(), path, opts)
	if err != nil || !second.Cached {
		t.Fatalf("second run: %v cached=%v", err, second.Cached)
	}
	if second.Program != nil || second.Version != 450 {
		t.Errorf("cached result = %+v", second)
	}
	if second.Module.Globals.Len() != first.Module.Globals.Len() {
		t.Errorf("globals %d vs %d", second.Module.Globals.Len(), first.Module.Globals.Len())
	}
	if st := log.statuses(path); len(st) != 2 || st[1] != pipeline.StatusCached {
		t.Errorf("events = %v", st)
	}

	opts.Validate = true
	_, third, err := Translate(context.Background(), path, opts)
	if err != nil || third.Cached {
		t.Fatal("validation changes the cache key")
	}
}
