package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fakedatagen.toml")
	contents := `
[Output]
File = "./out"
Samples = 100

[Model]
Pruner = "globalCutoff"

[Generation]
Graphs = 3
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "./out" || cfg.Samples != 100 || cfg.Pruner != "globalCutoff" || cfg.Graphs != 3 {
		t.Fatalf("unexpected merged config: %+v", cfg)
	}
	if cfg.GraphSize != Default().GraphSize {
		t.Errorf("expected untouched field to keep its default, got %d", cfg.GraphSize)
	}
}

func TestLoadFileEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if cfg.Output != want.Output || cfg.Samples != want.Samples || cfg.Graphs != want.Graphs {
		t.Errorf("expected defaults unchanged, got %+v", cfg)
	}
}

func TestResolvePrunerIsCaseInsensitive(t *testing.T) {
	if _, err := ResolvePruner("BIGDELTA"); err != nil {
		t.Errorf("expected case-insensitive match, got %v", err)
	}
	if _, err := ResolvePruner("notapruner"); err == nil {
		t.Error("expected an error for an unknown pruner name")
	}
}

func TestValidateRejectsGraphSizeSmallerThanSeeds(t *testing.T) {
	cfg := Default()
	cfg.Seeds = cfg.GraphSize + 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when graphSize < seeds")
	}
}

func TestValidateRejectsPickRateOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.PickRate = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range pickRate")
	}
}
