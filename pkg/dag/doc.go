// Package dag provides the weighted directed graph shared by every stage of
// the generation pipeline: the triangulation builder produces one, the edge
// pruner and Markov sampler consume and produce one, and the model assembler
// walks one to build the evaluation arena.
//
// Create a new graph with [New], add nodes with [Graph.AddNode], and edges
// with [Graph.AddEdge]:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "A", Meta: dag.Metadata{"color": "red"}})
//	g.AddNode(dag.Node{ID: "@1"})
//	g.AddEdge(dag.Edge{From: "A", To: "@1", Weight: 1.41})
//
// Use [Graph.Validate] to check structural integrity (no dangling edges, no
// cycles) before handing a graph to a later pipeline stage. See the
// [github.com/bugra/fakedatagen/pkg/dag/transform] subpackage for cycle
// breaking and topological ordering.
package dag
