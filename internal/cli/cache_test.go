package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCacheDir(t *testing.T) {
	dir, err := defaultCacheDir()
	if err != nil {
		t.Fatalf("defaultCacheDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("defaultCacheDir() returned empty string")
	}
	if !strings.HasSuffix(dir, "fakedatagen") {
		t.Errorf("defaultCacheDir() = %q, should end with 'fakedatagen'", dir)
	}
}

func TestDefaultCacheDirStructure(t *testing.T) {
	dir, err := defaultCacheDir()
	if err != nil {
		t.Fatalf("defaultCacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", "fakedatagen")
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		want = filepath.Join(cacheHome, "fakedatagen")
	}
	if dir != want {
		t.Errorf("defaultCacheDir() = %q, want %q", dir, want)
	}
}
