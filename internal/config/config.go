// Package config loads the optional glslfront.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"glslfront/internal/glsl"
	"glslfront/internal/trace"
)

// FileName is the project file looked up by Find.
const FileName = "glslfront.toml"

// Config is the decoded project file. Fields a file leaves out keep the
// values from Default; IsSet tells them apart from explicit ones.
type Config struct {
	Translate TranslateConfig `toml:"translate"`
	Cache     CacheConfig     `toml:"cache"`
	Trace     TraceConfig     `toml:"trace"`

	// Path is the file the config was read from, empty for Default.
	Path string `toml:"-"`
	meta toml.MetaData
}

type TranslateConfig struct {
	Stage    string `toml:"stage"`
	Validate bool   `toml:"validate"`
	MaxDepth int    `toml:"max_depth"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	// Mode is stream, ring or both. Ring keeps RingSize events in memory
	// and prints them when a file fails.
	Mode     string `toml:"mode"`
	RingSize int    `toml:"ring_size"`
}

// Default is the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Translate: TranslateConfig{MaxDepth: glsl.DefaultMaxDepth},
		Cache:     CacheConfig{Enabled: true},
		Trace:     TraceConfig{Level: "off", Output: "-", Mode: "stream"},
	}
}

// Find walks up from start (a file or directory) looking for glslfront.toml.
func Find(start string) (string, bool, error) {
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and validates one project file.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	cfg.meta = meta
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the project file above start. Without one it
// returns Default.
func Discover(start string) (*Config, error) {
	path, ok, err := Find(start)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if c.IsSet("translate", "stage") {
		if _, err := glsl.ParseStage(c.Translate.Stage); err != nil {
			return fmt.Errorf("[translate].stage: %w", err)
		}
	}
	if c.Translate.MaxDepth <= 0 {
		return fmt.Errorf("[translate].max_depth must be positive, got %d", c.Translate.MaxDepth)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if c.Trace.RingSize < 0 {
		return fmt.Errorf("[trace].ring_size must not be negative, got %d", c.Trace.RingSize)
	}
	return nil
}

// IsSet reports whether the file defined the key. Always false for Default.
func (c *Config) IsSet(key ...string) bool {
	if c.Path == "" {
		return false
	}
	return c.meta.IsDefined(key...)
}

// Root is the directory holding the project file.
func (c *Config) Root() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// Stage returns the configured stage, if any.
func (c *Config) Stage() (glsl.Stage, bool) {
	if !c.IsSet("translate", "stage") {
		return 0, false
	}
	st, err := glsl.ParseStage(c.Translate.Stage)
	return st, err == nil
}

// CacheDir resolves [cache].dir against the project root. Empty means the
// user cache directory.
func (c *Config) CacheDir() string {
	dir := c.Cache.Dir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root(), dir)
}

// TraceLevel returns the parsed [trace].level.
func (c *Config) TraceLevel() trace.Level {
	lvl, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.LevelOff
	}
	return lvl
}

// TraceMode returns the parsed [trace].mode.
func (c *Config) TraceMode() trace.Mode {
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return trace.ModeStream
	}
	return mode
}
