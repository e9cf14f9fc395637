package behavior

import (
	"fmt"
	"math"
	"math/rand"
)

// intCoerce is grounded on int_1.py. Unlike most 1-ary behaviors, it turns
// any non-finite input into NaN rather than passing it through: the source
// converts straight to a Python int, which would otherwise raise.
type intCoerce struct{ base }

// NewIntCoerce builds a 1-ary behavior that truncates its argument toward
// zero, same as Python's int().
func NewIntCoerce(rng *rand.Rand) Behavior {
	return &intCoerce{newBase("int_1", 1, 1, false)}
}

func (b *intCoerce) Calculate(args []float64) float64 {
	v := args[0]
	if !isFinite(v) {
		return math.NaN()
	}
	return math.Trunc(v)
}

func (b *intCoerce) GenerateName(names []string) string {
	return fmt.Sprintf("int(%s)", names[0])
}

// convertToBase is grounded on baseCoercion_1.py. conversionBase is drawn
// once per instance, in [2,9], matching the source's per-instance random
// parameter (the Python original reads it as a shared class attribute; this
// port makes it genuinely per-instance, per the re-architecture note in
// SPEC_FULL.md §9).
type convertToBase struct {
	base
	conversionBase int
}

// NewConvertToBase builds a 1-ary behavior that re-encodes its (scaled,
// truncated) argument in a random base in [2,9].
func NewConvertToBase(rng *rand.Rand) Behavior {
	return &convertToBase{
		base:           newBase("baseCoercion_1", 1, 1, false),
		conversionBase: 2 + rng.Intn(8),
	}
}

func (b *convertToBase) Calculate(args []float64) float64 {
	v := args[0]
	if v == 0 || !isFinite(v) {
		return v
	}
	sign := 1.0
	if v < 0 {
		sign = -1.0
	}
	n := int64(abs(v) * 100000.0)
	digits := encodeBase(n, b.conversionBase)
	return sign * digits / 100000.0
}

func (b *convertToBase) GenerateName(names []string) string {
	return fmt.Sprintf("convertToBase(%s,%d)", names[0], b.conversionBase)
}

// encodeBase mirrors the Python source's digit-by-digit re-encoding of n in
// the given base, reassembled back into a base-10 float by concatenating
// its base-`base` digits as base-10 digits (e.g. 13 in base 2 is "1101",
// read back as the number 1101).
func encodeBase(n int64, base int) float64 {
	if n == 0 {
		return 0
	}
	var digits []int64
	for n > 0 {
		digits = append(digits, n%int64(base))
		n /= int64(base)
	}
	var result float64
	for i := len(digits) - 1; i >= 0; i-- {
		result = result*10 + float64(digits[i])
	}
	return result
}

// scale is grounded on linAlgScale_1.py. scaleValue is drawn once per
// instance from [0,10).
type scale struct {
	base
	scaleValue float64
}

// NewScale builds a 1-ary behavior that multiplies its argument by a random
// factor in [0,10).
func NewScale(rng *rand.Rand) Behavior {
	return &scale{
		base:       newBase("linAlgScale_1", 1, 1, false),
		scaleValue: rng.Float64() * 10.0,
	}
}

func (b *scale) Calculate(args []float64) float64 { return b.scaleValue * args[0] }

// GenerateName preserves the source's misleading "+"-based template even
// though the operation is a multiplication: linAlgScale_1.py names itself
// this way.
func (b *scale) GenerateName(names []string) string {
	return fmt.Sprintf("%s + %.6f", names[0], b.scaleValue)
}

// translate is grounded on linAlgTranslate_1.py. translationValue is drawn
// once per instance from [-10,10).
type translate struct {
	base
	translationValue float64
}

// NewTranslate builds a 1-ary behavior that adds a random offset in
// [-10,10) to its argument.
func NewTranslate(rng *rand.Rand) Behavior {
	return &translate{
		base:             newBase("linAlgTranslate_1", 1, 1, false),
		translationValue: rng.Float64()*20.0 - 10.0,
	}
}

func (b *translate) Calculate(args []float64) float64 { return b.translationValue + args[0] }

func (b *translate) GenerateName(names []string) string {
	return fmt.Sprintf("translate(%s,%.6f)", names[0], b.translationValue)
}

// randFloatTrunc is grounded on randFloatTrunc_1.py. The source is dead
// code: it builds a format-spec string ("{0:.3f}"-style), tries to convert
// that string itself to a float (which would raise), then calls .format()
// on the result. This port implements the evidently intended behavior —
// round the argument to a uniformly random number of decimal places in
// [0,6], redrawn on every call, matching the source's call-site
// randint(0,6).
type randFloatTrunc struct {
	base
	rng *rand.Rand
}

// NewRandFloatTrunc builds a 1-ary behavior that rounds its argument to a
// random number of decimal places in [0,6].
func NewRandFloatTrunc(rng *rand.Rand) Behavior {
	return &randFloatTrunc{newBase("randFloatTrunc_1", 1, 1, false), rng}
}

func (b *randFloatTrunc) Calculate(args []float64) float64 {
	v := args[0]
	if !isFinite(v) {
		return v
	}
	places := b.rng.Intn(7)
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func (b *randFloatTrunc) GenerateName(names []string) string {
	return fmt.Sprintf("randFloatTrunc(%s)", names[0])
}
