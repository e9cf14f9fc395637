package behavior

import (
	"fmt"
	"math"
	"math/rand"
)

// negate is grounded on negate_1noise.py.
type negate struct{ base }

// NewNegate builds a 1-ary noise behavior that flips the sign of its input.
func NewNegate(rng *rand.Rand) Behavior {
	return &negate{newBase("negate_1noise", 1, 1, true)}
}

func (b *negate) Calculate(args []float64) float64   { return -args[0] }
func (b *negate) GenerateName(names []string) string { return "-" + names[0] }

// oneMinus is grounded on oneminus_1noise.py.
type oneMinus struct{ base }

// NewOneMinus builds a 1-ary noise behavior computing 1-value.
func NewOneMinus(rng *rand.Rand) Behavior {
	return &oneMinus{newBase("oneminus_1noise", 1, 1, true)}
}

func (b *oneMinus) Calculate(args []float64) float64   { return 1.0 - args[0] }
func (b *oneMinus) GenerateName(names []string) string { return "1-" + names[0] }

// reciprocal is grounded on recip_1noise.py: an explicit value==0 guard
// returns 0 rather than propagating an infinity, exactly as the source
// does.
type reciprocal struct{ base }

// NewReciprocal builds a 1-ary noise behavior computing 1/value, or 0 when
// value is exactly 0.
func NewReciprocal(rng *rand.Rand) Behavior {
	return &reciprocal{newBase("recip_1noise", 1, 1, true)}
}

func (b *reciprocal) Calculate(args []float64) float64 {
	if args[0] == 0 {
		return 0
	}
	return 1 / args[0]
}

func (b *reciprocal) GenerateName(names []string) string { return "1/" + names[0] }

// ln is grounded on ln_1noise.py. The source's math.log raises on 0 or
// negative input; Go's math.Log returns -Inf / NaN instead, which already
// satisfies the "never fatal" numerical-warning policy (SPEC_FULL.md §7)
// with no extra guard needed.
type ln struct{ base }

// NewLn builds a 1-ary noise behavior computing the natural log of value.
func NewLn(rng *rand.Rand) Behavior {
	return &ln{newBase("ln_1noise", 1, 1, true)}
}

func (b *ln) Calculate(args []float64) float64   { return math.Log(args[0]) }
func (b *ln) GenerateName(names []string) string { return "ln " + names[0] }

// zeroOneTruncate is grounded on zeroOne_truncate_1noise.py: non-finite
// input passes through unchanged; otherwise the fractional part of |value|
// is returned.
type zeroOneTruncate struct{ base }

// NewZeroOneTruncate builds a 1-ary noise behavior returning the
// fractional part of |value|.
func NewZeroOneTruncate(rng *rand.Rand) Behavior {
	return &zeroOneTruncate{newBase("zeroOne_truncate_1noise", 1, 1, true)}
}

func (b *zeroOneTruncate) Calculate(args []float64) float64 {
	v := args[0]
	if !isFinite(v) {
		return v
	}
	v = abs(v)
	return v - math.Trunc(v)
}

func (b *zeroOneTruncate) GenerateName(names []string) string {
	return names[0] + " ~%~ 1.0"
}

// blockyScatter is grounded on multiplex_1.py's sibling, BlockyScatter: a
// per-instance unit step in [1,20] applied as -unit, 0, or +unit.
type blockyScatter struct {
	base
	rng  *rand.Rand
	unit int
}

// NewBlockyScatter builds a 1-ary noise behavior that nudges value by
// -unit, 0, or +unit, where unit is drawn once per instance from [1,20].
func NewBlockyScatter(rng *rand.Rand) Behavior {
	return &blockyScatter{
		base: newBase("blockyScatter_1noise", 1, 1, true),
		rng:  rng,
		unit: 1 + rng.Intn(20),
	}
}

func (b *blockyScatter) Calculate(args []float64) float64 {
	step := b.rng.Intn(3) - 1 // -1, 0, or 1
	return float64(step*b.unit) + args[0]
}

func (b *blockyScatter) GenerateName(names []string) string {
	return fmt.Sprintf("%s +/-/0 %d", names[0], b.unit)
}

// multiplex is grounded on multiplex_1.py.
type multiplex struct {
	base
	rng *rand.Rand
}

// NewMultiplex builds a 1-ary noise behavior that nudges value by -10, 0,
// or +10.
func NewMultiplex(rng *rand.Rand) Behavior {
	return &multiplex{newBase("multiplex_1", 1, 1, true), rng}
}

func (b *multiplex) Calculate(args []float64) float64 {
	step := b.rng.Intn(3) - 1
	return float64(step)*10.0 + args[0]
}

func (b *multiplex) GenerateName(names []string) string {
	return fmt.Sprintf("multiplex(%s)", names[0])
}

// gaussianFuzz is grounded on gaussianFuzz_1noise.py: per-instance mean and
// stddev, resampled fresh on every Calculate call.
type gaussianFuzz struct {
	base
	rng    *rand.Rand
	mean   float64
	stddev float64
}

// NewGaussianFuzz builds a 1-ary noise behavior adding gaussian jitter
// (mean ~ Gauss(0,1), stddev ~ |Gauss(0.25,0.75)|, drawn once per instance)
// to value.
func NewGaussianFuzz(rng *rand.Rand) Behavior {
	return &gaussianFuzz{
		base:   newBase("gaussianFuzz_1noise", 1, 1, true),
		rng:    rng,
		mean:   0 + 1.0*rng.NormFloat64(),
		stddev: abs(0.25 + 0.75*rng.NormFloat64()),
	}
}

func (b *gaussianFuzz) Calculate(args []float64) float64 {
	return args[0] + (b.mean + b.stddev*b.rng.NormFloat64())
}

func (b *gaussianFuzz) GenerateName(names []string) string {
	return formatGaussName(b.mean, b.stddev) + "+" + names[0]
}

// discretize is grounded on discretize_1noise.py: a fixed 0.5 threshold.
type discretize struct{ base }

const discretizeThreshold = 0.5

// NewDiscretize builds a 1-ary noise behavior that maps value to 1 if it
// exceeds 0.5, else 0.
func NewDiscretize(rng *rand.Rand) Behavior {
	return &discretize{newBase("discretize_1noise", 1, 1, true)}
}

func (b *discretize) Calculate(args []float64) float64 {
	if args[0] > discretizeThreshold {
		return 1
	}
	return 0
}

func (b *discretize) GenerateName(names []string) string {
	return fmt.Sprintf("[%s -> 0|1 @0.5]", names[0])
}

// sieve is grounded on sieve.py. The source declares a malformed arity
// tuple (1, 0) (min > max); it is otherwise a straightforward 1-ary
// pass-through-or-drop noise behavior, so this port uses arity (1,1).
// dropProbability is drawn once per instance, matching the
// per-instance random-state re-architecture used throughout this package.
type sieve struct {
	base
	rng             *rand.Rand
	dropProbability float64
}

// NewSieve builds a 1-ary noise behavior that passes its argument through
// unchanged, or replaces it with NaN with probability dropProbability (drawn
// once per instance from 1/(10*[1,25])).
func NewSieve(rng *rand.Rand) Behavior {
	return &sieve{
		base:            newBase("sieve", 1, 1, true),
		rng:             rng,
		dropProbability: 1.0 / (float64(1+rng.Intn(25)) * 10.0),
	}
}

func (b *sieve) Calculate(args []float64) float64 {
	if b.rng.Float64() < b.dropProbability {
		return math.NaN()
	}
	return args[0]
}

func (b *sieve) GenerateName(names []string) string {
	return fmt.Sprintf("sieveValues(%s, drop_prob=%v)", names[0], b.dropProbability)
}

// identity is the catalogue's trivial 1-ary noise pass-through, used to pad
// out the noise-behavior pool so every node can always be given a noise
// behavior (spec.md §4.6).
type identity struct{ base }

// NewIdentity builds a 1-ary noise behavior that returns its argument
// unchanged.
func NewIdentity(rng *rand.Rand) Behavior {
	return &identity{newBase("identity_1noise", 1, 1, true)}
}

func (b *identity) Calculate(args []float64) float64   { return args[0] }
func (b *identity) GenerateName(names []string) string { return names[0] }
