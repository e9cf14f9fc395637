package transform

import "github.com/bugra/fakedatagen/pkg/dag"

// BreakCycles makes g acyclic by removing every back edge found by a DFS
// with the same white/gray/black coloring as [dag.Graph.Validate]. The
// removed set is not guaranteed to be the smallest one that would do. It
// returns the number of edges removed.
//
// This is a defensive safety net: the triangulation builder and the Markov
// sampler are both constructed to never introduce a cycle in the first
// place, but BreakCycles lets callers assert acyclicity unconditionally
// before handing a graph to the model assembler.
func BreakCycles(g *dag.Graph) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		g.RemoveEdge(e[0], e[1])
	}
	return len(backEdges)
}
