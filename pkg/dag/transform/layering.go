package transform

import "github.com/bugra/fakedatagen/pkg/dag"

// TopologicalOrder returns the node IDs of g in a topological order: every
// node appears after all of its parents. The order is computed via Kahn's
// algorithm (the same queue-of-zero-indegree-nodes approach the teacher's row
// layering used, generalized here to yield a full order instead of row
// numbers).
//
// TopologicalOrder assumes g is acyclic; if g contains a cycle, nodes in the
// cycle never reach zero remaining in-degree and are silently omitted from
// the result. Run [BreakCycles] first to guarantee a complete order.
func TopologicalOrder(g *dag.Graph) []string {
	nodes := g.Nodes()
	remaining := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		remaining[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)

		for _, child := range g.Children(curr) {
			remaining[child]--
			if remaining[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return order
}
