// Package markov samples a DAG directly via local edge edits, as an
// alternative graph source to triangulate+prune (spec.md §4.4).
//
// It is grounded on the Ide–Cozman-style Markov chain Monte Carlo sampler
// described in spec.md §4.4; original_source/src/fakeDataGenerator has no
// Markov sampler module to port from. Additions grow reachable sets
// additively, which is always correct. Removals fully rebuild the edited
// node's and its ancestors' reachable sets from scratch, since reachability
// can shrink on removal and a stale, over-approximate set left on an
// ancestor would otherwise never be corrected.
package markov

import (
	"math/rand"
	"strconv"

	"github.com/bugra/fakedatagen/pkg/dag"
)

// Config bounds a single call to Sample.
type Config struct {
	GraphSize  int // total node count
	SourceLow  int // minimum source (zero-in-degree) count
	SourceHigh int // maximum source count
	InMax      int // max in-degree any node may reach
	Iterations int // edit attempts; 0 means GraphSize^2
}

// sampler holds the mutable state of one Markov chain run: the graph being
// edited, the current root set, and each node's reachable set.
type sampler struct {
	g         *dag.Graph
	rng       *rand.Rand
	cfg       Config
	roots     map[string]bool
	reachable map[string]map[string]bool
}

// Sample builds a graph by the initialization and iteration rules of
// spec.md §4.4.
func Sample(cfg Config, rng *rand.Rand) *dag.Graph {
	if cfg.Iterations == 0 {
		cfg.Iterations = cfg.GraphSize * cfg.GraphSize
	}

	s := &sampler{
		g:         dag.New(),
		rng:       rng,
		cfg:       cfg,
		roots:     map[string]bool{},
		reachable: map[string]map[string]bool{},
	}
	s.initialize()

	for i := 0; i < cfg.Iterations; i++ {
		s.attemptRemoval()
		s.attemptAddition()
	}

	return s.g
}

func nodeID(i int) string { return strconv.Itoa(i) }

// initialize builds the path graph, each node i+1 pointing back into node
// i, so the highest-indexed (most recently created) node starts as the
// chain's sole root — spec.md §4.4's "roots initially just the last node
// of the path" — then grows the root set to SourceLow by attaching new
// nodes pointing into random non-root nodes.
func (s *sampler) initialize() {
	pathLen := s.cfg.GraphSize - s.cfg.SourceLow + 1
	if pathLen < 1 {
		pathLen = 1
	}

	for i := 0; i < pathLen; i++ {
		id := nodeID(i)
		_ = s.g.AddNode(dag.Node{ID: id})
		s.reachable[id] = map[string]bool{}
	}
	for i := 0; i < pathLen-1; i++ {
		s.addEdge(nodeID(i+1), nodeID(i))
	}

	last := nodeID(pathLen - 1)
	s.roots[last] = true

	next := pathLen
	for len(s.roots) < s.cfg.SourceLow && next < s.cfg.GraphSize {
		id := nodeID(next)
		_ = s.g.AddNode(dag.Node{ID: id})
		s.reachable[id] = map[string]bool{}
		s.roots[id] = true

		target := s.randomNonRootNode(id)
		if target != "" {
			s.addEdge(id, target)
			delete(s.roots, target)
		}
		next++
	}
}

func (s *sampler) randomNonRootNode(exclude string) string {
	var candidates []string
	for _, n := range s.g.Nodes() {
		if n.ID == exclude || s.roots[n.ID] {
			continue
		}
		candidates = append(candidates, n.ID)
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// addEdge installs src->dst and updates src's (and src's ancestors')
// reachable sets.
func (s *sampler) addEdge(src, dst string) {
	_ = s.g.AddEdge(dag.Edge{From: src, To: dst})
	s.reachable[src][dst] = true
	for k := range s.reachable[dst] {
		s.reachable[src][k] = true
	}
	s.propagateReachability(src)
}

// propagateReachability grows the reachable set of every ancestor of node
// (BFS upward) by node and everything node reaches, matching spec.md §4.4's "propagates the recomputation
// to its ancestors" rule.
func (s *sampler) propagateReachability(node string) {
	queue := []string{node}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, parent := range s.g.Parents(cur) {
			changed := false
			for k := range s.reachable[cur] {
				if !s.reachable[parent][k] {
					s.reachable[parent][k] = true
					changed = true
				}
			}
			if !s.reachable[parent][cur] {
				s.reachable[parent][cur] = true
				changed = true
			}
			if changed {
				queue = append(queue, parent)
			}
		}
	}
}

// recomputeReachable fully rebuilds node's reachable set from scratch,
// needed after an edge removal since reachability can only shrink then.
func (s *sampler) recomputeReachable(node string) {
	visited := map[string]bool{}
	var visit func(string)
	visit = func(n string) {
		for _, child := range s.g.Children(n) {
			if visited[child] {
				continue
			}
			visited[child] = true
			visit(child)
		}
	}
	visit(node)
	s.reachable[node] = visited
}

// recomputeAncestors rebuilds the reachable set of every ancestor of node
// from scratch. Unlike propagateReachability, which only ever grows a
// parent's set, this is required after an edge removal: node's own
// reachable set may have shrunk, and that shrinkage must propagate upward
// instead of leaving ancestors with a stale, over-approximate set.
func (s *sampler) recomputeAncestors(node string) {
	visited := map[string]bool{}
	queue := []string{node}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, parent := range s.g.Parents(cur) {
			if visited[parent] {
				continue
			}
			visited[parent] = true
			s.recomputeReachable(parent)
			queue = append(queue, parent)
		}
	}
}

func (s *sampler) randomDistinctPair() (string, string) {
	nodes := s.g.Nodes()
	if len(nodes) < 2 {
		return "", ""
	}
	i := s.rng.Intn(len(nodes))
	j := s.rng.Intn(len(nodes))
	for j == i {
		j = s.rng.Intn(len(nodes))
	}
	return nodes[i].ID, nodes[j].ID
}

// attemptRemoval implements spec.md §4.4 step (a).
func (s *sampler) attemptRemoval() {
	src, dst := s.randomDistinctPair()
	if src == "" {
		return
	}
	if !s.g.HasEdge(src, dst) {
		return
	}

	allowed := s.g.InDegree(dst) > 1 || len(s.roots) < s.cfg.SourceHigh
	if !allowed {
		return
	}

	s.g.RemoveEdge(src, dst)
	if !s.staysConnected() {
		s.addEdge(src, dst) // undo
		return
	}

	s.recomputeReachable(src)
	s.recomputeAncestors(src)

	if s.g.InDegree(dst) == 0 {
		s.roots[dst] = true
	}
}

// attemptAddition implements spec.md §4.4 step (b).
func (s *sampler) attemptAddition() {
	src, dst := s.randomDistinctPair()
	if src == "" {
		return
	}

	allowed := !s.roots[dst] || len(s.roots) > s.cfg.SourceLow
	if !allowed {
		return
	}
	if s.g.InDegree(dst) >= s.cfg.InMax {
		return
	}
	if s.reachable[dst][src] || dst == src {
		return
	}

	s.addEdge(src, dst)
	if s.roots[dst] {
		delete(s.roots, dst)
	}
}

// staysConnected reports whether the graph, viewed as undirected, is still
// one connected component.
func (s *sampler) staysConnected() bool {
	nodes := s.g.Nodes()
	if len(nodes) == 0 {
		return true
	}
	adj := map[string][]string{}
	for _, e := range s.g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	visited := map[string]bool{nodes[0].ID: true}
	queue := []string{nodes[0].ID}
	count := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}
	return count == len(nodes)
}
