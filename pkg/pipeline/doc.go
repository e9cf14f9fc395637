// Package pipeline orchestrates one fakedatagen run: either the
// geometry/triangulate/prune path or the markov sampler produces nGraphs
// welded DAGs, model.Assemble binds behaviors to every node, and dot/tabular
// render the result. It is the only package internal/cli calls into for
// generation, mirroring the way the teacher's own command layer talks to a
// single orchestrating package rather than wiring each stage itself.
package pipeline
