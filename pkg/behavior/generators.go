package behavior

import "math/rand"

// randUnifGen is grounded on randUnif_gen.py: a 0-arity uniform generator.
type randUnifGen struct {
	base
	rng *rand.Rand
}

// NewRandUnifGen builds a 0-arity behavior whose Calculate draws a fresh
// uniform value in [0,1) on every call.
func NewRandUnifGen(rng *rand.Rand) Behavior {
	return &randUnifGen{
		base: newBase("randUnif_gen", 0, 0, false),
		rng:  rng,
	}
}

func (b *randUnifGen) Calculate(args []float64) float64 { return b.rng.Float64() }
func (b *randUnifGen) GenerateName(names []string) string { return "rand()" }

// randGaussGen is grounded on randGauss_gen.py: a 0-arity gaussian generator
// whose mean/stddev are drawn once at construction, matching the instance
// parameters the Python class computes per plugin instance.
type randGaussGen struct {
	base
	rng    *rand.Rand
	mean   float64
	stddev float64
}

// NewRandGaussGen builds a 0-arity gaussian generator. mean is drawn from
// Gauss(0, 0.5); stddev is drawn from |Gauss(0.2, 0.4)|, matching the
// source's instance-level random parameters.
func NewRandGaussGen(rng *rand.Rand) Behavior {
	mean := 0 + 0.5*rng.NormFloat64()
	stddev := abs(0.2 + 0.4*rng.NormFloat64())
	return &randGaussGen{
		base:   newBase("randGauss_gen", 0, 0, false),
		rng:    rng,
		mean:   mean,
		stddev: stddev,
	}
}

func (b *randGaussGen) Calculate(args []float64) float64 {
	return b.mean + b.stddev*b.rng.NormFloat64()
}

func (b *randGaussGen) GenerateName(names []string) string {
	return formatGaussName(b.mean, b.stddev)
}

// randZeroOneGen is grounded on randZeroOne_gen.py: a 0-arity coin flip
// generator with a fixed 50% rate.
type randZeroOneGen struct {
	base
	rng *rand.Rand
}

const randZeroOneRate = 0.5

// NewRandZeroOneGen builds a 0-arity behavior returning 1 with probability
// 0.5 and 0 otherwise.
func NewRandZeroOneGen(rng *rand.Rand) Behavior {
	return &randZeroOneGen{
		base: newBase("randZeroOne_gen", 0, 0, false),
		rng:  rng,
	}
}

func (b *randZeroOneGen) Calculate(args []float64) float64 {
	if b.rng.Float64() < randZeroOneRate {
		return 1
	}
	return 0
}

func (b *randZeroOneGen) GenerateName(names []string) string {
	return "<50.0% coin flip>"
}
