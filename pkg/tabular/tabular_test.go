package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	"math/rand"
	"strings"
	"testing"

	"github.com/bugra/fakedatagen/pkg/behavior"
	"github.com/bugra/fakedatagen/pkg/dag"
	"github.com/bugra/fakedatagen/pkg/model"
)

func twoNodeModel(t *testing.T) *model.Model {
	t.Helper()
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "A"})
	_ = g.AddNode(dag.Node{ID: "B"})
	_ = g.AddEdge(dag.Edge{From: "A", To: "B"})
	m, err := model.Assemble(g, behavior.Registry(), 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return m
}

func TestSelectColumnsRateOneKeepsAllShuffled(t *testing.T) {
	m := twoNodeModel(t)
	cols := SelectColumns(m.Nodes, 1.0, rand.New(rand.NewSource(1)))
	if len(cols) != len(m.Nodes) {
		t.Fatalf("expected all %d nodes kept, got %d", len(m.Nodes), len(cols))
	}
}

func TestSelectColumnsRateZeroKeepsNone(t *testing.T) {
	m := twoNodeModel(t)
	cols := SelectColumns(m.Nodes, 0.0, rand.New(rand.NewSource(1)))
	if len(cols) != 0 {
		t.Fatalf("expected no nodes kept, got %d", len(cols))
	}
}

func TestHeaderNoisyIncludesNoiseName(t *testing.T) {
	m := twoNodeModel(t)
	clean := header(m.Nodes, 2, false)
	noisy := header(m.Nodes, 2, true)
	for i := range clean {
		if clean[i] == noisy[i] {
			t.Errorf("expected noisy header to differ from clean at column %d", i)
		}
	}
}

func TestWriteProducesMatchingRowCounts(t *testing.T) {
	m := twoNodeModel(t)
	var clean, noisy bytes.Buffer
	cfg := Config{Samples: 5, ColRate: 1.0, Recursion: 2}
	if err := Write(context.Background(), &clean, &noisy, []*model.Model{m}, cfg, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := csv.NewReader(&clean)
	r.Comma = '\t'
	cr, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read clean: %v", err)
	}
	if len(cr) != cfg.Samples+1 {
		t.Errorf("expected %d rows (+header), got %d", cfg.Samples+1, len(cr))
	}
}

func TestWriteEmptySelectionStillWritesHeader(t *testing.T) {
	m := twoNodeModel(t)
	var clean, noisy bytes.Buffer
	cfg := Config{Samples: 3, ColRate: 0.0, Recursion: 1}
	if err := Write(context.Background(), &clean, &noisy, []*model.Model{m}, cfg, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("write: %v", err)
	}
	if clean.Len() == 0 {
		t.Error("expected a header row even with zero selected columns")
	}
}

func TestWriteWeldsMultipleModelsWithPrefixedHeaders(t *testing.T) {
	m1 := twoNodeModel(t)
	m2 := twoNodeModel(t)
	var clean, noisy bytes.Buffer
	cfg := Config{Samples: 2, ColRate: 1.0, Recursion: 1}
	if err := Write(context.Background(), &clean, &noisy, []*model.Model{m1, m2}, cfg, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := csv.NewReader(&clean)
	r.Comma = '\t'
	header, err := r.Read()
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if len(header) != 4 {
		t.Fatalf("expected 4 welded columns, got %d: %v", len(header), header)
	}
	for _, h := range header {
		if !strings.HasPrefix(h, "a") && !strings.HasPrefix(h, "b") {
			t.Errorf("expected welded header %q to carry an \"a\" or \"b\" graph prefix", h)
		}
	}
}
