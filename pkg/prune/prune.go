// Package prune implements the pluggable edge-pruning strategies that sit
// between triangulate.Build and model.Assemble.
//
// Every strategy here is grounded on the rule table in spec.md §4.3,
// cross-checked against original_source/src/fakeDataGenerator/
// candidate_test_pruners.py. Grouping them behind one interface and a name
// registry follows the teacher's own pattern of small, named, swappable
// strategy implementations (e.g. the teacher's render backends selected by
// name from a registry).
package prune

import (
	"math/rand"
	"sort"

	"github.com/bugra/fakedatagen/pkg/dag"
)

// Pruner shapes a weighted DAG's connectivity without introducing new
// zero-in-degree non-seed nodes. Implementations may mutate and return the
// input graph.
type Pruner interface {
	Name() string
	Prune(g *dag.Graph, rng *rand.Rand) *dag.Graph
}

// Registry returns every pruner this package implements, keyed by the
// lower-case name pkg/config resolves CLI/TOML pruner selection against.
func Registry() map[string]Pruner {
	return map[string]Pruner{
		"null":               nullPruner{},
		"uniformthroughfour": uniformThroughFourPruner{},
		"globalcutoff":       globalCutoffPruner{},
		"minimalistfraction": minimalistFractionPruner{},
		"bigdelta":           bigDeltaPruner{},
	}
}

// inEdgesByNode groups every edge in g by its target, returning them sorted
// ascending by weight so callers can apply "keep the smallest" rules
// directly.
func inEdgesByNode(g *dag.Graph) map[string][]dag.Edge {
	byNode := map[string][]dag.Edge{}
	for _, e := range g.Edges() {
		byNode[e.To] = append(byNode[e.To], e)
	}
	for _, edges := range byNode {
		sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })
	}
	return byNode
}

// nullPruner is the identity strategy: spec.md §4.3's `null`.
type nullPruner struct{}

func (nullPruner) Name() string                            { return "null" }
func (nullPruner) Prune(g *dag.Graph, rng *rand.Rand) *dag.Graph { return g }

// uniformThroughFourPruner keeps a random-length (1-4) ascending-weight
// prefix of each node's in-edges.
type uniformThroughFourPruner struct{}

func (uniformThroughFourPruner) Name() string { return "uniformThroughFour" }

func (uniformThroughFourPruner) Prune(g *dag.Graph, rng *rand.Rand) *dag.Graph {
	byNode := inEdgesByNode(g)
	for _, n := range g.Nodes() {
		edges, ok := byNode[n.ID]
		if !ok {
			continue
		}
		keep := 1 + rng.Intn(4)
		if keep >= len(edges) {
			continue
		}
		for _, e := range edges[keep:] {
			g.RemoveEdge(e.From, n.ID)
		}
	}
	return g
}

// globalCutoffPruner drops every edge heavier than the largest per-node
// minimum in-edge weight.
type globalCutoffPruner struct{}

func (globalCutoffPruner) Name() string { return "globalCutoff" }

func (globalCutoffPruner) Prune(g *dag.Graph, rng *rand.Rand) *dag.Graph {
	byNode := inEdgesByNode(g)

	threshold := 0.0
	for _, edges := range byNode {
		if len(edges) == 0 {
			continue
		}
		if edges[0].Weight > threshold {
			threshold = edges[0].Weight
		}
	}

	for node, edges := range byNode {
		for _, e := range edges {
			if e.Weight > threshold {
				g.RemoveEdge(e.From, node)
			}
		}
	}
	return g
}

// minimalistFractionPruner drops, per node, every in-edge past the first
// whose weight exceeds the 65th-percentile edge weight across the whole
// graph.
type minimalistFractionPruner struct{}

func (minimalistFractionPruner) Name() string { return "minimalistFraction" }

func (minimalistFractionPruner) Prune(g *dag.Graph, rng *rand.Rand) *dag.Graph {
	edges := g.Edges()
	if len(edges) == 0 {
		return g
	}
	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = e.Weight
	}
	sort.Float64s(weights)
	cutoff := weights[percentileIndex(len(weights), 0.65)]

	byNode := inEdgesByNode(g)
	for node, nodeEdges := range byNode {
		for i, e := range nodeEdges {
			if i == 0 {
				continue // never drop the smallest
			}
			if e.Weight > cutoff {
				g.RemoveEdge(e.From, node)
			}
		}
	}
	return g
}

// percentileIndex is a rank-based, zero-indexed percentile lookup: index 0
// is the 0th percentile, index len-1 is the 100th.
func percentileIndex(n int, p float64) int {
	idx := int(p * float64(n-1))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// bigDeltaPruner keeps, per node, the ascending-weight prefix up to (but
// not including) the largest adjacent-weight gap; ties prefer the latest
// gap (keeping more edges).
type bigDeltaPruner struct{}

func (bigDeltaPruner) Name() string { return "bigDelta" }

func (bigDeltaPruner) Prune(g *dag.Graph, rng *rand.Rand) *dag.Graph {
	for node, edges := range inEdgesByNode(g) {
		if len(edges) <= 1 {
			continue
		}
		splitAt := len(edges)
		biggestGap := -1.0
		for i := 1; i < len(edges); i++ {
			gap := edges[i].Weight - edges[i-1].Weight
			if gap >= biggestGap {
				biggestGap = gap
				splitAt = i
			}
		}
		for _, e := range edges[splitAt:] {
			g.RemoveEdge(e.From, node)
		}
	}
	return g
}
