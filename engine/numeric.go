package engine

import "math"

// ============================================================================
// NUMERIC HELPERS — Newton square root, simple-fraction search
// ============================================================================
// Both are standalone pure functions so they stay substitutable and testable
// on their own. The solve path never calls math.Sqrt.
// ============================================================================

// Sqrt computes the square root of a non-negative x by Newton's iteration:
// starting from x/2, guess ← (guess + x/guess)/2 until two successive
// guesses differ by less than eps. Sqrt(0) is 0.
func Sqrt(x, eps float64) float64 {
	if x == 0 {
		return 0
	}
	guess := x / 2
	for {
		next := (guess + x/guess) / 2
		if math.Abs(next-guess) < eps {
			return next
		}
		guess = next
	}
}

// Fraction searches denominators 1..maxDen in increasing order for the first
// d such that v*d is within tol of an integer, and returns that fraction.
// ok is false when no denominator matches — the caller decides the decimal
// fallback; no formatting happens here.
//
// This is a best-effort display aid, not an exact reconstruction: it exists
// so that textbook results print as 1/2 + 3i/2 instead of decimals.
func Fraction(v float64, maxDen int, tol float64) (num, den int, ok bool) {
	for d := 1; d <= maxDen; d++ {
		n := v * float64(d)
		if math.Abs(n-math.Round(n)) < tol {
			return int(math.Round(n)), d, true
		}
	}
	return 0, 0, false
}
