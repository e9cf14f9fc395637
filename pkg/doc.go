// Package pkg provides the core libraries for the fake data generator.
//
// # Overview
//
// The generator builds a synthetic tabular dataset by assembling a random
// computational graph: a point distribution seeds a spatial layout, a
// Delaunay triangulation turns it into a weighted DAG, an edge pruner (or a
// Markov-chain sampler, as an alternative graph source) shapes its
// connectivity, and the operation catalogue binds arithmetic/stochastic
// behaviors to every node. Evaluating the resulting model row by row produces
// a TSV table; serializing its structure produces a GraphViz DOT document.
//
// # Architecture
//
// The pipeline flow through these packages:
//
//	[geometry] Distribute           (point cloud)
//	       ↓
//	[triangulate] Build              (Delaunay → weighted DAG)
//	       ↓
//	[prune] Pruner.Prune  or  [markov] Sample
//	       ↓
//	[model] Assemble                 (bind [behavior] instances to nodes)
//	       ↓
//	[model] Calculate / ColumnValue  (row evaluation)
//	       ↓
//	[dot] Render   and   [tabular] Write
//
// [config] resolves the TOML configuration file and CLI flags into a single
// run configuration; [cache] memoizes a full run by the SHA-256 hash of that
// configuration; [ferrors] carries structured, code-tagged errors across
// package boundaries; [pipeline] wires every generation stage together.
// [internal/cli] calls [pipeline] for generation and itself resolves the
// configuration, the run cache and the Markov sampler settings.
//
// # Main Packages
//
// [dag] - Generic weighted directed graph shared by the graph-producing and
// graph-consuming stages.
//
// [geometry] - Spiral point distribution (component A).
//
// [triangulate] - Delaunay triangulation and weighted-DAG extraction
// (component B).
//
// [prune] - Pluggable edge-pruning strategies (component C).
//
// [markov] - Markov-chain DAG sampler, an alternative to triangulation+pruning
// (component D).
//
// [behavior] - The operation catalogue: arithmetic, logical, and stochastic
// node behaviors (component E).
//
// [model] - Model assembly and row evaluation (components F and G).
//
// [dot] - GraphViz DOT document construction (component H, graph side).
//
// [tabular] - TSV table writer (component H, tabular side).
//
// [config] - Configuration file and CLI flag resolution.
//
// [cache] - Run-level result caching.
//
// [ferrors] - Structured, code-tagged errors.
//
// [pipeline] - End-to-end orchestration of a (possibly welded) run.
//
// [dag]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/dag
// [geometry]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/geometry
// [triangulate]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/triangulate
// [prune]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/prune
// [markov]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/markov
// [behavior]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/behavior
// [model]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/model
// [dot]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/dot
// [tabular]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/tabular
// [config]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/config
// [cache]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/cache
// [ferrors]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/ferrors
// [pipeline]: https://pkg.go.dev/github.com/bugra/fakedatagen/pkg/pipeline
package pkg
