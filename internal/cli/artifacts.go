package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bugra/fakedatagen/pkg/cache"
	"github.com/bugra/fakedatagen/pkg/pipeline"
)

// cacheTTL bounds how long a cached run's rendered artifacts are trusted
// before a fresh run regenerates them.
const cacheTTL = 24 * time.Hour

// writeArtifacts writes out.DOT/Clean/Noisy to stem's three files
// (spec.md §6.4).
func writeArtifacts(stem string, out *pipeline.Artifacts) error {
	files := []struct {
		suffix string
		data   []byte
	}{
		{".gv", out.DOT},
		{".txt", out.Clean},
		{".noisy.txt", out.Noisy},
	}
	for _, f := range files {
		path := stem + f.suffix
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// loadCached fetches and decodes a previously stored Artifacts value, if
// any, from c under key.
func loadCached(ctx context.Context, c cache.Cache, key string) (*pipeline.Artifacts, bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	var out pipeline.Artifacts
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

// storeCached encodes out and saves it in c under key for cacheTTL.
func storeCached(ctx context.Context, c cache.Cache, key string, out *pipeline.Artifacts) error {
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, cacheTTL)
}
