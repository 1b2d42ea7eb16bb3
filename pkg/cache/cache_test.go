package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get on empty cache should miss")
	}

	value := []byte("<svg/>")
	if err := c.Set(ctx, "k", value, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	value[0] = 'X' // caller mutation must not leak into the cache

	got, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v; want hit", hit, err)
	}
	if string(got) != "<svg/>" {
		t.Errorf("Get = %q, want %q", got, "<svg/>")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "short", []byte("a"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "forever", []byte("b"), 0); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Minute)

	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should not expire")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 after expired entry is dropped", c.Len())
	}
}

func TestMemoryCacheClosed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
	if err := c.Delete(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Delete after Close = %v, want ErrClosed", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := ArtifactKeyOpts{Format: "svg", Width: 800, Height: 600, Grid: true}
	key := k.ArtifactKey("hash123", base)
	if !strings.HasPrefix(key, "artifact:") {
		t.Errorf("ArtifactKey should be prefixed: %s", key)
	}
	if key != k.ArtifactKey("hash123", base) {
		t.Error("ArtifactKey should be deterministic")
	}

	tests := []struct {
		name string
		hash string
		opts ArtifactKeyOpts
	}{
		{"format", "hash123", ArtifactKeyOpts{Format: "png", Width: 800, Height: 600, Grid: true}},
		{"size", "hash123", ArtifactKeyOpts{Format: "svg", Width: 1024, Height: 600, Grid: true}},
		{"grid", "hash123", ArtifactKeyOpts{Format: "svg", Width: 800, Height: 600}},
		{"figure", "hash456", base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k.ArtifactKey(tt.hash, tt.opts) == key {
				t.Errorf("changing %s should change the key", tt.name)
			}
		})
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "session:abc123:")

	opts := ArtifactKeyOpts{Format: "svg"}
	key := scoped.ArtifactKey("hash", opts)
	if key != "session:abc123:"+inner.ArtifactKey("hash", opts) {
		t.Errorf("ScopedKeyer ArtifactKey unexpected: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("hash", ArtifactKeyOpts{})
	if !strings.HasPrefix(key, "prefix:artifact:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}
