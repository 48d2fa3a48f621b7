package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glslfront/internal/glsl"
	"glslfront/internal/trace"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[translate]
stage = "frag"
validate = true

[cache]
dir = ".cache"

[trace]
level = "phase"
output = "trace.ndjson"
mode = "both"
ring_size = 256
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if st, ok := cfg.Stage(); !ok || st != glsl.StageFragment {
		t.Errorf("stage = %v, %v", st, ok)
	}
	if !cfg.Translate.Validate || cfg.Translate.MaxDepth != glsl.DefaultMaxDepth {
		t.Errorf("translate = %+v", cfg.Translate)
	}
	if !cfg.Cache.Enabled || cfg.CacheDir() != filepath.Join(dir, ".cache") {
		t.Errorf("cache = %+v, dir %s", cfg.Cache, cfg.CacheDir())
	}
	if cfg.TraceLevel() != trace.LevelPhase || cfg.Trace.Output != "trace.ndjson" {
		t.Errorf("trace = %+v", cfg.Trace)
	}
	if cfg.TraceMode() != trace.ModeBoth || cfg.Trace.RingSize != 256 {
		t.Errorf("trace mode = %+v", cfg.Trace)
	}
	if !cfg.IsSet("translate", "validate") || cfg.IsSet("translate", "max_depth") {
		t.Error("IsSet mismatch")
	}
	if cfg.Root() != dir {
		t.Errorf("root = %s", cfg.Root())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[translate\n", "failed to parse TOML"},
		{"stage", "[translate]\nstage = \"geometry\"\n", "[translate].stage"},
		{"depth", "[translate]\nmax_depth = 0\n", "max_depth must be positive"},
		{"level", "[trace]\nlevel = \"loud\"\n", "[trace].level"},
		{"mode", "[trace]\nmode = \"file\"\n", "[trace].mode"},
		{"ring", "[trace]\nring_size = -1\n", "ring_size must not be negative"},
		{"unknown", "[cache]\nsize = 3\n", "unknown keys: cache.size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[translate]\nmax_depth = 32\n")
	nested := filepath.Join(root, "shaders", "post")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	shader := filepath.Join(nested, "blur.frag")
	if err := os.WriteFile(shader, []byte("#version 450\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(shader)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != filepath.Join(root, FileName) || cfg.Translate.MaxDepth != 32 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, ok := cfg.Stage(); ok {
		t.Error("stage should be unset")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IsSet("cache", "enabled") || cfg.Root() != "" || cfg.CacheDir() != "" {
		t.Error("default config has no file")
	}
	if cfg.TraceLevel() != trace.LevelOff || cfg.TraceMode() != trace.ModeStream || !cfg.Cache.Enabled {
		t.Errorf("default = %+v", cfg)
	}
}
