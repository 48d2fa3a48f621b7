package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"glslfront/internal/glsl"
	"glslfront/internal/ir"
)

// Bump when CachePayload or the ir encoding changes.
const diskCacheSchemaVersion uint16 = 1

// Digest identifies one cached translation.
type Digest [32]byte

// DiskCache stores translated modules keyed by source hash and translation
// options. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is what a cache entry holds.
type CachePayload struct {
	Schema  uint16
	Path    string
	Stage   glsl.Stage
	Version uint16
	Module  *ir.Module
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "modules", hex.EncodeToString(key[:])+".mp")
}

// CacheKey hashes the source content together with every option that changes
// the translation result.
func CacheKey(content [32]byte, stage glsl.Stage, opts Options) Digest {
	h := sha256.New()
	var hdr [8]byte
	binary.LittleEndian.PutUint16(hdr[0:], diskCacheSchemaVersion)
	hdr[2] = byte(stage)
	if opts.Validate {
		hdr[3] = 1
	}
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = glsl.DefaultMaxDepth
	}
	d, err := safecast.Conv[uint32](depth)
	if err != nil {
		d = ^uint32(0)
	}
	binary.LittleEndian.PutUint32(hdr[4:], d)
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Put writes payload atomically: a temp file in the same directory is renamed
// over the entry.
func (c *DiskCache) Put(key Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the entry for key. A missing entry or one written by another
// schema version is a miss, not an error.
func (c *DiskCache) Get(key Digest) (*CachePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload CachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Module == nil {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
