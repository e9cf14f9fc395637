package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTestCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{Use: "fakedatagen"}
	registerFlags(cmd, f)
	return cmd
}

func TestResolveConfigAppliesExplicitFlagsOnly(t *testing.T) {
	var f flags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags([]string{"--graphs", "3", "--pickRate", "0.5"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := resolveConfig(cmd, &f)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Graphs != 3 {
		t.Errorf("Graphs = %d, want 3 (explicit flag)", cfg.Graphs)
	}
	if cfg.PickRate != 0.5 {
		t.Errorf("PickRate = %g, want 0.5 (explicit flag)", cfg.PickRate)
	}
	if cfg.GraphSize != 50 {
		t.Errorf("GraphSize = %d, want the untouched default 50", cfg.GraphSize)
	}
	if f.hasSeed {
		t.Error("hasSeed should be false when --seed was never passed")
	}
}

func TestResolveConfigTracksExplicitSeed(t *testing.T) {
	var f flags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags([]string{"--seed", "42"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := resolveConfig(cmd, &f); err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if !f.hasSeed {
		t.Error("hasSeed should be true once --seed is passed")
	}
	if f.seed != 42 {
		t.Errorf("seed = %d, want 42", f.seed)
	}
}

func TestResolveConfigRejectsInvalidPickRate(t *testing.T) {
	var f flags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags([]string{"--pickRate", "1.5"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := resolveConfig(cmd, &f); err == nil {
		t.Error("expected an error for pickRate out of [0,1]")
	}
}
