// Package dot renders an assembled model as a Graphviz DOT document
// (spec.md §4.8).
//
// Rendering hand-builds the text with bytes.Buffer/fmt.Fprintf, the same way
// the teacher's pkg/render/nodelink builds its node-link DOT — a thin text
// constructor, not a graph-object API. goccy/go-graphviz is exercised only as
// a validation round-trip (graphviz.ParseBytes parses the emitted text and
// reports a syntax error if it's malformed); this package never calls
// (*Graphviz).Render and never drives the layout engine.
package dot
