package driver

import (
	"context"
	"path/filepath"
	"testing"

	"glslfront/internal/glsl"
	"glslfront/internal/pipeline"
)

func TestTranslateDir(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "a.vert", vertexShader)
	writeShader(t, dir, "sub/b.frag", "#version 450\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n")
	writeShader(t, dir, "sub/c.comp", "#version 450\nvoid main() { x = 1; }\n")
	writeShader(t, dir, "lib.glsl", vertexShader)
	writeShader(t, dir, "notes.txt", "not a shader")

	log := &eventLog{}
	var timings pipeline.Timings
	fs, results, err := TranslateDir(context.Background(), dir, Options{Jobs: 2, Progress: log, Timings: &timings})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	wantPaths := []string{"a.vert", "sub/b.frag", "sub/c.comp"}
	for i, res := range results {
		if res.Path != filepath.Join(dir, wantPaths[i]) {
			t.Errorf("result %d path %s", i, res.Path)
		}
		if fs.Get(res.FileID).Path != res.Path {
			t.Errorf("file id mismatch for %s", res.Path)
		}
	}
	if results[0].Failed() || results[1].Failed() {
		t.Error("valid shaders failed")
	}
	if glsl.KindOf(results[2].Err) != glsl.ErrUnknownIdentifier {
		t.Errorf("c.comp err = %v", results[2].Err)
	}
	if results[1].Stage != glsl.StageFragment {
		t.Errorf("b.frag stage = %s", results[1].Stage)
	}
	if !timings.Has(pipeline.StageLex) || !timings.Has(pipeline.StageTranslate) {
		t.Error("timings not recorded")
	}
	last := log.statuses(filepath.Join(dir, "sub/c.comp"))
	if len(last) == 0 || last[len(last)-1] != pipeline.StatusError {
		t.Errorf("c.comp events = %v", last)
	}
}

func TestTranslateDirExplicitStage(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "lib.glsl", vertexShader)
	_, results, err := TranslateDir(context.Background(), dir, Options{Stage: glsl.StageVertex, StageSet: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Failed() {
		t.Fatalf("results = %+v", results)
	}
}

func TestTranslateDirEmpty(t *testing.T) {
	_, results, err := TranslateDir(context.Background(), t.TempDir(), Options{})
	if err != nil || results != nil {
		t.Fatalf("results = %v, err = %v", results, err)
	}
}

func TestTranslateDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "a.vert", vertexShader)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := TranslateDir(ctx, dir, Options{}); err == nil {
		t.Fatal("expected cancellation error")
	}
}
