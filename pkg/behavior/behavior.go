// Package behavior is the operation catalogue: the set of arithmetic,
// logical, and stochastic node behaviors the model assembler binds to nodes
// by arity.
//
// Every behavior in this package is grounded on one file under
// original_source/src/ModelBehaviors/*.py, ported into the teacher's
// yapsy-free style: instead of dynamic plugin discovery, [Registry] is an
// explicit, compile-time table of constructor closures (spec.md §9's
// re-architecture note #1). Each [Factory] takes the run's shared
// *rand.Rand so the whole pipeline stays deterministic under a fixed seed
// (spec.md §5, "Determinism").
package behavior

import (
	"math/rand"

	"github.com/google/uuid"
)

// Unbounded marks a behavior's MaxArity as unbounded (the source's `max =
// None`).
const Unbounded = -1

// Behavior is a single operation the model assembler can bind to a node.
// An instance is owned by exactly one node; any randomness it closes over
// (a scale factor, a noise stddev) is drawn once at construction and never
// mutates afterward.
type Behavior interface {
	// Name identifies the behavior for diagnostics and DOT/TSV metadata.
	Name() string

	// MinArity and MaxArity bound the number of arguments Calculate accepts.
	// MaxArity is Unbounded for n-ary behaviors with no upper bound.
	MinArity() int
	MaxArity() int

	// IsNoise reports whether this behavior is a 1-ary perturbation suitable
	// for binding as a node's noise behavior.
	IsNoise() bool

	// Calculate applies the behavior to args, which must satisfy
	// MinArity() <= len(args) <= MaxArity() (or MaxArity() == Unbounded).
	Calculate(args []float64) float64

	// GenerateName produces a human-readable expression from the names of
	// the behavior's arguments.
	GenerateName(names []string) string

	// ID returns a random tag minted at construction time that tells two
	// bound instances of the same behavior name apart. It has no effect on
	// Calculate or GenerateName.
	ID() uuid.UUID
}

// Factory constructs a fresh Behavior instance, drawing any per-instance
// randomness from rng. The model assembler calls a Factory once per node
// binding, never reusing an instance across nodes (spec.md §4.6).
type Factory func(rng *rand.Rand) Behavior

// Registry returns the full operation catalogue: every behavior this
// package implements, in a fixed order so that iterating it is
// deterministic under a seeded rng.
func Registry() []Factory {
	return []Factory{
		// 0-arity generators
		NewRandUnifGen,
		NewRandGaussGen,
		NewRandZeroOneGen,

		// 1-ary, non-noise
		NewIntCoerce,
		NewConvertToBase,
		NewScale,
		NewTranslate,
		NewRandFloatTrunc,

		// 1-ary, noise
		NewNegate,
		NewOneMinus,
		NewReciprocal,
		NewLn,
		NewZeroOneTruncate,
		NewBlockyScatter,
		NewMultiplex,
		NewGaussianFuzz,
		NewDiscretize,
		NewSieve,
		NewIdentity,

		// 2-ary
		NewMult,
		NewCmp,
		NewAbsDiff,
		NewSmallRatio,

		// n-ary
		NewAddN,
		NewAvgN,
		NewMinN,
		NewMaxN,
		NewAndValues,
		NewOrValues,
		NewXorValues,
		NewDownregulate,
		NewNotValues,
	}
}

// base implements the bookkeeping fields shared by every behavior: a name,
// an arity range, the noise flag, and a debug ID. Concrete behaviors embed
// base and only implement Calculate and GenerateName.
type base struct {
	id       uuid.UUID
	name     string
	minArity int
	maxArity int
	isNoise  bool
}

// newBase mints a fresh debug ID and fills in the rest of a behavior's
// bookkeeping fields. Every constructor in this package builds its base
// through newBase rather than a bare struct literal.
func newBase(name string, minArity, maxArity int, isNoise bool) base {
	return base{id: uuid.New(), name: name, minArity: minArity, maxArity: maxArity, isNoise: isNoise}
}

func (b base) Name() string     { return b.name }
func (b base) MinArity() int    { return b.minArity }
func (b base) MaxArity() int    { return b.maxArity }
func (b base) IsNoise() bool    { return b.isNoise }
func (b base) ID() uuid.UUID    { return b.id }
