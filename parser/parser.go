package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/computor-org/computor/poly"
)

// ============================================================================
// PARSER/REDUCER — Equation text → poly.Polynomial
// ============================================================================
// Pipeline:
//   1. Split on '=' (exactly one required)
//   2. Scan each side for terms matching the strict grammar
//      [sign] <number> * X ^ <non-negative integer>
//   3. Sum same-power terms within a side
//   4. Reduce: left[p] - right[p] over the union of powers
//
// Substrings that do not match the term grammar are silently ignored. That
// is deliberate lenient-parsing policy, not an oversight: a malformed term
// is simply not recognized as a term, and a side with zero recognizable
// terms contributes an empty partial map.
// ============================================================================

// FormatError reports an input that does not have the <terms> = <terms> shape.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid equation format: " + e.Reason
}

// termPattern captures the signed coefficient and the exponent of one term.
// Spaces are tolerated around the sign, '*' and '^'.
var termPattern = regexp.MustCompile(`([+-]?\s*\d+\.?\d*)\s*\*\s*X\s*\^\s*(\d+)`)

// Parse reduces an equation string into a single-sided polynomial P(X) = 0.
// Powers whose left/right coefficients cancel to exactly 0 remain present in
// the result — they affect the reduced form, not the degree.
func Parse(input string) (poly.Polynomial, error) {
	switch strings.Count(input, "=") {
	case 0:
		return nil, &FormatError{Reason: "missing '='"}
	case 1:
	default:
		return nil, &FormatError{Reason: "more than one '='"}
	}

	left, right, _ := strings.Cut(input, "=")

	reduced := poly.Polynomial{}
	for power, c := range parseSide(left) {
		reduced[power] = c
	}
	for power, c := range parseSide(right) {
		reduced[power] -= c
	}
	return reduced, nil
}

// parseSide collects the partial coefficient map of one side of the
// equation. Repeated occurrences of a power are summed, not overwritten.
func parseSide(side string) map[int]float64 {
	coeffs := map[int]float64{}
	for _, m := range termPattern.FindAllStringSubmatch(side, -1) {
		coeff, err := strconv.ParseFloat(strings.ReplaceAll(m[1], " ", ""), 64)
		if err != nil {
			continue
		}
		power, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		coeffs[power] += coeff
	}
	return coeffs
}
