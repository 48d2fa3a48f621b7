package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"glslfront/internal/config"
	"glslfront/internal/trace"
)

func newTracedCmd(t *testing.T, flags map[string]string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "glslfront"}
	registerPersistentFlags(root)
	sub := &cobra.Command{Use: "translate"}
	root.AddCommand(sub)
	for name, value := range flags {
		if err := root.PersistentFlags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	var stderr bytes.Buffer
	sub.SetErr(&stderr)
	return sub, &stderr
}

func TestSetupTracingRingDumpsOnFailure(t *testing.T) {
	cmd, stderr := newTracedCmd(t, map[string]string{"trace-mode": "ring", "trace-ring-size": "2"})
	cleanup, err := setupTracing(cmd, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	tr := trace.FromContext(cmd.Context())
	if tr.Level() != trace.LevelDetail || trace.RingOf(tr) == nil {
		t.Fatalf("tracer = %T at %s", tr, tr.Level())
	}
	trace.Point(tr, trace.ScopePass, "lex", "", 0)
	trace.Begin(tr, trace.ScopeModule, "broken.frag", 0).End("failed")
	if stderr.Len() != 0 {
		t.Fatalf("ring mode streamed %q", stderr.String())
	}

	dumped, err := dumpTraceRing(cmd, stderr)
	if err != nil || !dumped {
		t.Fatalf("dumpTraceRing = %v, %v", dumped, err)
	}
	out := stderr.String()
	if !strings.Contains(out, "last 2 event(s)") || !strings.Contains(out, "broken.frag (failed)") {
		t.Errorf("dump:\n%s", out)
	}
	if strings.Contains(out, "lex") {
		t.Errorf("ring should have dropped the oldest event:\n%s", out)
	}
}

func TestSetupTracingModeFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	body := "[trace]\nmode = \"both\"\nlevel = \"phase\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	cmd, stderr := newTracedCmd(t, nil)
	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	tr := trace.FromContext(cmd.Context())
	trace.Point(tr, trace.ScopePass, "translate", "", 0)
	if trace.RingOf(tr) == nil || !strings.Contains(stderr.String(), "translate") {
		t.Fatalf("both mode: ring %v, stream %q", trace.RingOf(tr), stderr.String())
	}
}

func TestSetupTracingOff(t *testing.T) {
	cmd, stderr := newTracedCmd(t, nil)
	cleanup, err := setupTracing(cmd, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	if trace.FromContext(cmd.Context()) != trace.Nop {
		t.Fatal("tracing should be off by default")
	}
	if dumped, _ := dumpTraceRing(cmd, stderr); dumped || stderr.Len() != 0 {
		t.Errorf("nothing to dump, got %q", stderr.String())
	}
}

func TestSetupTracingErrors(t *testing.T) {
	for name, flags := range map[string]map[string]string{
		"mode":  {"trace-mode": "file"},
		"level": {"trace-level": "loud"},
		"size":  {"trace-mode": "ring", "trace-ring-size": "-1"},
	} {
		t.Run(name, func(t *testing.T) {
			cmd, _ := newTracedCmd(t, flags)
			if _, err := setupTracing(cmd, config.Default()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
