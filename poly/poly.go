package poly

import (
	"sort"
	"strconv"
	"strings"
)

// ============================================================================
// POLYNOMIAL — Coefficient map for P(X) = 0
// ============================================================================
// A Polynomial maps exponent → real coefficient. A missing exponent means a
// zero coefficient; an explicit zero entry stays in the map (it was asserted
// by the input, and the reduced form must show it). The map is built once by
// the parser and owned by its caller — nothing here mutates shared state.
// ============================================================================

// Polynomial is the reduced single-sided form of an equation.
type Polynomial map[int]float64

// Coefficient returns the coefficient at the given power, 0 if absent.
func (p Polynomial) Coefficient(power int) float64 {
	return p[power]
}

// Degree is the highest power with a non-zero coefficient.
// An empty or all-zero polynomial has degree 0 — an explicit zero
// coefficient at a high power does not raise the degree.
func (p Polynomial) Degree() int {
	degree := 0
	for power, c := range p {
		if c != 0 && power > degree {
			degree = power
		}
	}
	return degree
}

// Powers returns every power present in the map, ascending.
func (p Polynomial) Powers() []int {
	powers := make([]int, 0, len(p))
	for power := range p {
		powers = append(powers, power)
	}
	sort.Ints(powers)
	return powers
}

// Eval computes P(x) by Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	v := 0.0
	for power := p.Degree(); power >= 0; power-- {
		v = v*x + p[power]
	}
	return v
}

// ============================================================================
// REDUCED-FORM RENDERER
// ============================================================================

// ReducedForm renders the canonical string representation: powers ascending,
// the first term with its own sign, every following term as "+ c * X^p" or
// "- |c| * X^p", terminated with " = 0". An empty polynomial renders as
// "0 * X^0 = 0".
func (p Polynomial) ReducedForm() string {
	if len(p) == 0 {
		return "0 * X^0 = 0"
	}

	var b strings.Builder
	for i, power := range p.Powers() {
		c := p[power]
		switch {
		case i == 0:
			b.WriteString(FormatFloat(c))
		case c >= 0:
			b.WriteString(" + " + FormatFloat(c))
		default:
			b.WriteString(" - " + FormatFloat(-c))
		}
		b.WriteString(" * X^" + strconv.Itoa(power))
	}
	b.WriteString(" = 0")
	return b.String()
}

// FormatFloat renders a coefficient or root with Go's shortest
// round-trip representation — no fixed precision truncation.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
