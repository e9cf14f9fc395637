package pipeline

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/bugra/fakedatagen/pkg/config"
	"github.com/bugra/fakedatagen/pkg/markov"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Graphs = 1
	cfg.GraphSize = 12
	cfg.Seeds = 3
	cfg.Samples = 4
	cfg.PickRate = 1.0
	return cfg
}

func TestRunProducesArtifacts(t *testing.T) {
	opts := Options{Config: smallConfig()}
	out, err := Run(context.Background(), opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.DOT) == 0 || len(out.Clean) == 0 || len(out.Noisy) == 0 {
		t.Fatal("expected non-empty DOT/clean/noisy artifacts")
	}
	if !strings.HasPrefix(string(out.DOT), "digraph{") {
		t.Errorf("expected a digraph wrapper, got: %s", out.DOT[:20])
	}
}

func TestRunWeldsMultipleGraphs(t *testing.T) {
	cfg := smallConfig()
	cfg.Graphs = 2
	opts := Options{Config: cfg}
	out, err := Run(context.Background(), opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(string(out.DOT), "digraph{") != 1 {
		t.Errorf("expected exactly one digraph wrapper across welded graphs, got:\n%s", out.DOT)
	}
}

func TestRunUsesMarkovSampler(t *testing.T) {
	cfg := smallConfig()
	opts := Options{
		Config: cfg,
		Markov: &markov.Config{GraphSize: 12, SourceLow: 2, SourceHigh: 4, InMax: 3, Iterations: 30},
	}
	out, err := Run(context.Background(), opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.DOT) == 0 {
		t.Error("expected a non-empty DOT document from the markov path")
	}
}

func TestRunAssignsLetterAndAtNIdentifiers(t *testing.T) {
	opts := Options{Config: smallConfig()}
	out, err := Run(context.Background(), opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	dot := string(out.DOT)
	if !strings.Contains(dot, `"A"`) {
		t.Errorf("expected seed node \"A\" in DOT output, got:\n%s", dot)
	}
	if !strings.Contains(dot, `@1`) {
		t.Errorf("expected a downstream \"@1\" node in DOT output, got:\n%s", dot)
	}
}

func TestRunRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := Options{Config: smallConfig()}
	if _, err := Run(ctx, opts, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error from a pre-cancelled context")
	}
}

func TestBakeoffProducesOneDocumentPerPruner(t *testing.T) {
	out, err := Bakeoff(context.Background(), smallConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("bakeoff: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 pruner documents, got %d", len(out))
	}
	for name, doc := range out {
		if len(doc) == 0 {
			t.Errorf("expected a non-empty document for pruner %s", name)
		}
	}
}
