package engine

import (
	"github.com/computor-org/computor/poly"
)

// ============================================================================
// SOLVER — Degree dispatch
// ============================================================================
// Degree is computed once and selects exactly one branch:
//
//   degree > 2  → unsolvable (terminal, no attempt)
//   degree == 0 → identity or contradiction
//   degree == 1 → unique root -c/b
//   degree == 2 → discriminant rules (two real / one real / conjugate pair)
//
// All computation is local; the only iteration is the bounded Newton
// square root in numeric.go.
// ============================================================================

// Solve inspects the reduced polynomial and computes its solution set.
//
// Options:
//   - WithSqrtEpsilon(eps) — Newton square-root convergence threshold
func Solve(p poly.Polynomial, opts ...Option) *Result {
	cfg := applyOptions(opts)

	degree := p.Degree()
	res := &Result{Degree: degree}

	switch {
	case degree > 2:
		res.Kind = KindUnsolvable
	case degree == 2:
		solveQuadratic(p, res, cfg)
	case degree == 1:
		solveLinear(p, res)
	default:
		solveConstant(p.Coefficient(0), res)
	}
	return res
}

// solveConstant handles c = 0: every real solves it when c is 0, nothing
// solves it otherwise.
func solveConstant(c float64, res *Result) {
	if c == 0 {
		res.Kind = KindAllReals
	} else {
		res.Kind = KindNoSolution
	}
}

func solveLinear(p poly.Polynomial, res *Result) {
	b := p.Coefficient(1)
	c := p.Coefficient(0)
	if b == 0 {
		// Degenerate: degree 1 guarantees b ≠ 0 when reached through
		// Solve, but the constant rule is the correct fallback.
		solveConstant(c, res)
		return
	}
	res.Kind = KindOneRoot
	res.Roots = []float64{normalizeZero(-c / b)}
}

func solveQuadratic(p poly.Polynomial, res *Result, cfg *config) {
	a := p.Coefficient(2) // non-zero: degree is exactly 2
	b := p.Coefficient(1)
	c := p.Coefficient(0)

	d := b*b - 4*a*c
	res.Discriminant = d

	switch {
	case d > 0:
		s := Sqrt(d, cfg.SqrtEpsilon)
		res.Kind = KindTwoRoots
		res.Roots = []float64{
			normalizeZero((-b + s) / (2 * a)),
			normalizeZero((-b - s) / (2 * a)),
		}
	case d == 0:
		res.Kind = KindOneRoot
		res.Roots = []float64{normalizeZero(-b / (2 * a))}
	default:
		res.Kind = KindComplexPair
		res.Real = normalizeZero(-b / (2 * a))
		res.Imag = Sqrt(-d, cfg.SqrtEpsilon) / (2 * a)
	}
}

// normalizeZero folds IEEE negative zero into positive zero so that a root
// of 0 renders as "0", not "-0".
func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
