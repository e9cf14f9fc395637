package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = %v, %v, want miss", ok, err)
	}

	if err := c.Set(ctx, "key", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, "key")
	if err != nil || !ok {
		t.Fatalf("Get(key) = %v, %v, want hit", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("Get(key) = %q, want %q", data, "payload")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get after Delete = hit, want miss")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("payload"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get after expiry = hit, want miss")
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("NullCache.Get = hit, want miss")
	}
}

func TestConfigKeyStable(t *testing.T) {
	type cfg struct {
		GraphSize int
		Seed      int64
	}

	k1, err := ConfigKey(cfg{GraphSize: 50, Seed: 7})
	if err != nil {
		t.Fatalf("ConfigKey: %v", err)
	}
	k2, err := ConfigKey(cfg{GraphSize: 50, Seed: 7})
	if err != nil {
		t.Fatalf("ConfigKey: %v", err)
	}
	if k1 != k2 {
		t.Errorf("ConfigKey not stable: %q != %q", k1, k2)
	}

	k3, _ := ConfigKey(cfg{GraphSize: 51, Seed: 7})
	if k1 == k3 {
		t.Error("ConfigKey collided for different configs")
	}
}

func TestRetryWithBackoffStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return ErrCacheMiss
	})
	if err != ErrCacheMiss {
		t.Fatalf("RetryWithBackoff error = %v, want ErrCacheMiss", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (non-retryable errors must not retry)", calls)
	}
}
