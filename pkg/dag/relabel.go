package dag

import "strconv"

// Relabel returns a copy of g with every node ID replaced per spec.md §3's
// identifier scheme: nodes with no incoming edges (the seed ring, in
// practice — triangulate and the Markov sampler never route an edge into a
// seed) get sequential uppercase letters (A, B, C, … wrapping to AA, AB, …);
// every other node gets "@n" with n monotonic from 1. Nodes are visited in
// g's insertion order, matching the original's friendly_rename
// (original_source/src/fakeDataGenerator/pointsToOutwardDigraph.py), which
// bases the letter-vs-@n choice on incoming-edge presence rather than an
// explicit seed flag — so a non-seed node that happens to end up with no
// incoming edges after pruning also receives a letter ID.
func Relabel(g *Graph) *Graph {
	out := New()
	ids := make(map[string]string, g.NodeCount())

	nextLetter := 0
	nextNumber := 1
	for _, n := range g.Nodes() {
		var newID string
		if g.InDegree(n.ID) == 0 {
			newID = letterID(nextLetter)
			nextLetter++
		} else {
			newID = "@" + strconv.Itoa(nextNumber)
			nextNumber++
		}
		ids[n.ID] = newID
		_ = out.AddNode(Node{ID: newID, Meta: n.Meta})
	}

	for _, e := range g.Edges() {
		_ = out.AddEdge(Edge{From: ids[e.From], To: ids[e.To], Weight: e.Weight, Meta: e.Meta})
	}
	return out
}

// letterID returns the n-th identifier in the bijective base-26 sequence
// A, B, …, Z, AA, AB, …, ZZ, AAA, … (n is zero-indexed: letterID(0) == "A").
func letterID(n int) string {
	var digits []byte
	for {
		digits = append(digits, byte('A'+n%26))
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
