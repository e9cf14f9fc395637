// Package transform provides graph algorithms used to prepare a [dag.Graph]
// for the model assembler: breaking cycles defensively and computing a
// topological node order for the arity-matched node-to-behavior binding pass.
package transform
