package behavior

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func itoa(n int) string { return strconv.Itoa(n) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatGaussName(mean, stddev float64) string {
	return fmt.Sprintf("gaussian_random(mean=%v,stddev=%v)", mean, stddev)
}

// joinWith mirrors the Python catalogue's "+".join(args)-style name
// templates used by the n-ary arithmetic/logic behaviors.
func joinWith(sep string, names []string) string {
	return strings.Join(names, sep)
}

// wrapFn renders a C-style call expression, e.g. wrapFn("AND", names) ->
// "AND(a,b,c)".
func wrapFn(fn string, names []string) string {
	return fn + "(" + strings.Join(names, ",") + ")"
}
