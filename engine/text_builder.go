package engine

import (
	"fmt"

	"github.com/computor-org/computor/poly"
)

// ============================================================================
// TEXT BUILDER — Renders a Result as output lines
// ============================================================================
// Line order: reduced form, degree, then the lines of the selected branch.
// Float values use the shortest round-trip representation throughout.
// ============================================================================

// BuildLines renders the solver output for one equation.
//
// Options:
//   - WithMaxDenominator(n), WithFractionTolerance(tol) — control the
//     simple-fraction display of complex roots
func BuildLines(p poly.Polynomial, res *Result, opts ...Option) []string {
	cfg := applyOptions(opts)

	lines := []string{
		"Reduced form: " + p.ReducedForm(),
		fmt.Sprintf("Polynomial degree: %d", res.Degree),
	}

	switch res.Kind {
	case KindUnsolvable:
		lines = append(lines, "The polynomial degree is strictly greater than 2, I can't solve.")

	case KindAllReals:
		lines = append(lines, "Any real number is a solution.")

	case KindNoSolution:
		lines = append(lines, "No solution.")

	case KindOneRoot:
		if res.Degree == 2 {
			lines = append(lines, "Discriminant is zero, the solution is:")
		} else {
			lines = append(lines, "The solution is:")
		}
		lines = append(lines, poly.FormatFloat(res.Roots[0]))

	case KindTwoRoots:
		lines = append(lines,
			"Discriminant is strictly positive, the two solutions are:",
			poly.FormatFloat(res.Roots[0]),
			poly.FormatFloat(res.Roots[1]),
		)

	case KindComplexPair:
		lines = append(lines, "Discriminant is strictly negative, the two complex solutions are:")
		lines = append(lines, complexLines(res, cfg)...)
	}

	return lines
}

// complexLines renders the conjugate pair. Purely imaginary roots print as
// "<mag>i" / "-<mag>i". Otherwise both parts must admit simple fractions
// with the same denominator to print as "n/d + mi/d"; anything else falls
// back to decimal.
func complexLines(res *Result, cfg *config) []string {
	if res.Real == 0 {
		mag := poly.FormatFloat(res.Imag)
		return []string{mag + "i", "-" + mag + "i"}
	}

	if rn, rd, ok := Fraction(res.Real, cfg.MaxDenominator, cfg.FractionTol); ok {
		if in, id, ok := Fraction(res.Imag, cfg.MaxDenominator, cfg.FractionTol); ok && rd == id {
			return []string{
				fmt.Sprintf("%d/%d + %di/%d", rn, rd, in, id),
				fmt.Sprintf("%d/%d - %di/%d", rn, rd, in, id),
			}
		}
	}

	re := poly.FormatFloat(res.Real)
	im := poly.FormatFloat(res.Imag)
	return []string{
		re + " + " + im + "i",
		re + " - " + im + "i",
	}
}
