package behavior

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func rng() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestRegistryCovers32Behaviors(t *testing.T) {
	factories := Registry()
	if len(factories) != 32 {
		t.Fatalf("expected 32 registered factories, got %d", len(factories))
	}
	seen := map[string]bool{}
	for _, f := range factories {
		b := f(rng())
		if b.MinArity() < 0 || (b.MaxArity() != Unbounded && b.MaxArity() < b.MinArity()) {
			t.Errorf("%s: invalid arity range [%d,%d]", b.Name(), b.MinArity(), b.MaxArity())
		}
		if seen[b.Name()] {
			t.Errorf("duplicate behavior name %s", b.Name())
		}
		seen[b.Name()] = true
	}
}

// ExampleNewNegate mirrors negate_1noise.py's doctests.
func ExampleNewNegate() {
	b := NewNegate(rng())
	fmt.Println(b.Calculate([]float64{-6}))
	fmt.Println(b.Calculate([]float64{0.25}))
	fmt.Println(b.GenerateName([]string{"(A)"}))
	// Output:
	// 6
	// -0.25
	// -(A)
}

// ExampleNewZeroOneTruncate mirrors zeroOne_truncate_1noise.py's doctests.
func ExampleNewZeroOneTruncate() {
	b := NewZeroOneTruncate(rng())
	fmt.Println(b.Calculate([]float64{8.25}))
	fmt.Println(b.Calculate([]float64{93.5}))
	fmt.Println(b.Calculate([]float64{-4.125}))
	fmt.Println(b.Calculate([]float64{-6.75}))
	// Output:
	// 0.25
	// 0.5
	// 0.125
	// 0.75
}

func TestZeroOneTruncatePassesThroughNonFinite(t *testing.T) {
	b := NewZeroOneTruncate(rng())
	if v := b.Calculate([]float64{math.NaN()}); !math.IsNaN(v) {
		t.Errorf("expected NaN passthrough, got %v", v)
	}
	if v := b.Calculate([]float64{math.Inf(1)}); !math.IsInf(v, 1) {
		t.Errorf("expected +Inf passthrough, got %v", v)
	}
}

func TestIntCoerceConvertsNonFiniteToNaN(t *testing.T) {
	b := NewIntCoerce(rng())
	if v := b.Calculate([]float64{math.Inf(1)}); !math.IsNaN(v) {
		t.Errorf("expected NaN for +Inf, got %v", v)
	}
	if v := b.Calculate([]float64{3.9}); v != 3 {
		t.Errorf("expected truncation toward zero, got %v", v)
	}
	if v := b.Calculate([]float64{-3.9}); v != -3 {
		t.Errorf("expected truncation toward zero, got %v", v)
	}
}

func TestConvertToBasePassesThroughZeroAndNonFinite(t *testing.T) {
	b := NewConvertToBase(rng())
	if v := b.Calculate([]float64{0}); v != 0 {
		t.Errorf("expected 0 passthrough, got %v", v)
	}
	if v := b.Calculate([]float64{math.NaN()}); !math.IsNaN(v) {
		t.Errorf("expected NaN passthrough, got %v", v)
	}
}

func TestRecipZeroGuard(t *testing.T) {
	b := NewReciprocal(rng())
	if v := b.Calculate([]float64{0}); v != 0 {
		t.Errorf("expected 0 for recip(0), got %v", v)
	}
	if v := b.Calculate([]float64{2}); v != 0.5 {
		t.Errorf("expected 0.5 for recip(2), got %v", v)
	}
}

func TestCmpConvention(t *testing.T) {
	b := NewCmp(rng())
	if v := b.Calculate([]float64{2, 1}); v != 0 {
		t.Errorf("expected 0 when a>b, got %v", v)
	}
	if v := b.Calculate([]float64{1, 2}); v != 1 {
		t.Errorf("expected 1 when b>a, got %v", v)
	}
	if v := b.Calculate([]float64{1, 1}); v != 0.5 {
		t.Errorf("expected 0.5 when equal, got %v", v)
	}
}

func TestSmallRatioBounded(t *testing.T) {
	b := NewSmallRatio(rng())
	if v := b.Calculate([]float64{-4, 2}); v != 0.5 {
		t.Errorf("expected 0.5, got %v", v)
	}
}

func TestAndOrXorPropagateNaN(t *testing.T) {
	for _, f := range []Factory{NewAndValues, NewOrValues, NewXorValues} {
		b := f(rng())
		if v := b.Calculate([]float64{1, math.NaN()}); !math.IsNaN(v) {
			t.Errorf("%s: expected NaN propagation, got %v", b.Name(), v)
		}
	}
}

func TestDownregulateAndNotValuesShareMath(t *testing.T) {
	d := NewDownregulate(rng())
	n := NewNotValues(rng())
	args := []float64{5, -2, 1}
	if d.Calculate(args) != n.Calculate(args) {
		t.Errorf("expected identical math between downregulate_n and not_n")
	}
}

func TestMinMaxSequentialReduce(t *testing.T) {
	min := NewMinN(rng())
	max := NewMaxN(rng())
	args := []float64{3, 1, 4, 1, 5}
	if v := min.Calculate(args); v != 1 {
		t.Errorf("expected min 1, got %v", v)
	}
	if v := max.Calculate(args); v != 5 {
		t.Errorf("expected max 5, got %v", v)
	}
}

func TestSieveDropsWithinBounds(t *testing.T) {
	b := NewSieve(rng()).(*sieve)
	if b.dropProbability <= 0 || b.dropProbability > 0.1 {
		t.Errorf("dropProbability out of expected [1/250,1/10] range: %v", b.dropProbability)
	}
}

func TestRandFloatTruncRoundsToFewDigits(t *testing.T) {
	b := NewRandFloatTrunc(rng())
	v := b.Calculate([]float64{1.23456789})
	scaled := v * 1e6
	if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
		t.Errorf("expected value rounded to <=6 decimal places, got %v", v)
	}
}
