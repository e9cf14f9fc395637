// Package model assembles behaviors onto a DAG's nodes and evaluates the
// resulting computational graph row by row.
//
// Assembly (component F) and evaluation (component G) share one package
// because a Node is simultaneously the assembler's output and the
// evaluator's unit of work — the same split the teacher uses for its own
// node-link graph (one type serving both construction and traversal).
package model

import "github.com/bugra/fakedatagen/pkg/behavior"

// Node is one bound position in an assembled model: a behavior, a noise
// behavior, and the already-assembled parent nodes it reads its arguments
// from.
type Node struct {
	ID       string
	Inputs   []*Node
	Behavior behavior.Behavior
	Noise    behavior.Behavior

	cache map[any]float64
}

// Model is the output of Assemble: every node in creation (topological)
// order, plus the subset with no inputs.
type Model struct {
	Nodes   []*Node
	Sources []*Node
}

// Calculate returns node's canonical value for rowKey, memoizing the
// result so repeated calls (including ones made indirectly by a child
// asking for its parent's value) within the same row agree. rowKey is
// typically the integer row index; it need only be comparable.
func (n *Node) Calculate(rowKey any) float64 {
	if v, ok := n.cache[rowKey]; ok {
		return v
	}
	args := make([]float64, len(n.Inputs))
	for i, p := range n.Inputs {
		args[i] = p.Calculate(rowKey)
	}
	v := n.Behavior.Calculate(args)
	n.cache[rowKey] = v
	return v
}

// ColumnValue computes the node's noisy output for rowKey: its noise
// behavior applied to Calculate's (cached) result. Unlike Calculate, this
// is never cached — every call redraws the noise behavior's randomness, as
// spec.md §4.7 requires.
func (n *Node) ColumnValue(rowKey any) float64 {
	return n.Noise.Calculate([]float64{n.Calculate(rowKey)})
}

// GenerateName renders node's expression, recursively expanding parent
// names up to depth levels before substituting bare node IDs. A zero-arity
// node renders its own generator expression only at the root of the
// expansion (depth == the caller's original value); embedded as someone
// else's parent, it renders as its bare ID, per spec.md §4.8.
func (n *Node) GenerateName(depth int) string {
	return n.generateName(depth, true)
}

func (n *Node) generateName(depth int, isRoot bool) string {
	if len(n.Inputs) == 0 {
		if isRoot {
			return n.Behavior.GenerateName(nil)
		}
		return n.ID
	}
	if depth <= 0 {
		return n.ID
	}
	names := make([]string, len(n.Inputs))
	for i, p := range n.Inputs {
		names[i] = p.generateName(depth-1, false)
	}
	return n.Behavior.GenerateName(names)
}

// resetCache clears node's memoized row values. ResetRow calls it for every
// node, and tabular.Write calls ResetRow between rows, which is the
// constant-memory evaluation strategy spec.md §5 allows (clear between rows)
// instead of letting caches grow across the whole run.
func (n *Node) resetCache() { n.cache = make(map[any]float64) }

// ResetRow clears every node's per-row cache in the model. Call this
// between rows when evaluating with the constant-memory strategy.
func (m *Model) ResetRow() {
	for _, n := range m.Nodes {
		n.resetCache()
	}
}
