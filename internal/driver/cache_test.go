package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"glslfront/internal/glsl"
	"glslfront/internal/ir"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey(sha256.Sum256([]byte("void main() {}")), glsl.StageVertex, Options{})

	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	m := ir.NewModule()
	f32 := m.Types.FetchOrAppend(ir.Type{Inner: ir.ScalarInner(ir.ScalarFloat, 4)})
	m.Globals.FetchOrAppend(ir.GlobalVariable{Name: "o", Class: ir.StorageOutput, Ty: f32})
	if err := cache.Put(key, &CachePayload{Path: "a.vert", Version: 450, Module: m}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Version != 450 || got.Path != "a.vert" || got.Module.Globals.Get(1).Name != "o" {
		t.Fatalf("payload = %+v", got)
	}
	if h, ok := got.Module.Types.Lookup(ir.Type{Inner: ir.ScalarInner(ir.ScalarFloat, 4)}); !ok || h != f32 {
		t.Error("decoded unique arena lost its index")
	}

	entries, _ := os.ReadDir(filepath.Join(cache.Dir(), "modules"))
	if len(entries) != 1 {
		t.Errorf("cache dir has %d entries, temp files left behind?", len(entries))
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.Get(key); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestCacheKeyOptions(t *testing.T) {
	content := sha256.Sum256([]byte("x"))
	base := CacheKey(content, glsl.StageVertex, Options{})
	if base != CacheKey(content, glsl.StageVertex, Options{MaxDepth: glsl.DefaultMaxDepth}) {
		t.Error("default depth must hash like an explicit default")
	}
	for name, other := range map[string]Digest{
		"stage":    CacheKey(content, glsl.StageFragment, Options{}),
		"validate": CacheKey(content, glsl.StageVertex, Options{Validate: true}),
		"depth":    CacheKey(content, glsl.StageVertex, Options{MaxDepth: 16}),
		"content":  CacheKey(sha256.Sum256([]byte("y")), glsl.StageVertex, Options{}),
	} {
		if other == base {
			t.Errorf("%s does not change the key", name)
		}
	}
}

func TestNilCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Digest{}, &CachePayload{}); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(Digest{}); ok || err != nil {
		t.Fatal("nil cache must miss")
	}
}
