package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/computor-org/computor/parser"
	"github.com/computor-org/computor/poly"
)

func mustParse(t *testing.T, input string) poly.Polynomial {
	t.Helper()
	p, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", input, err)
	}
	return p
}

func assertNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("got %.17g, want %.17g (tolerance %g)", got, want, tol)
	}
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line count: got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// ============================================================================
// DEGREE DISPATCH
// ============================================================================

func TestSolve_DegreeTooHigh(t *testing.T) {
	p := mustParse(t, "8 * X^0 - 6 * X^1 + 0 * X^2 - 5.6 * X^3 = 3 * X^0")
	res := Solve(p)
	if res.Kind != KindUnsolvable {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindUnsolvable)
	}
	if res.Degree != 3 {
		t.Errorf("degree: got %d, want 3", res.Degree)
	}
	assertLines(t, BuildLines(p, res), []string{
		"Reduced form: 5 * X^0 - 6 * X^1 + 0 * X^2 - 5.6 * X^3 = 0",
		"Polynomial degree: 3",
		"The polynomial degree is strictly greater than 2, I can't solve.",
	})
}

func TestSolve_Identity(t *testing.T) {
	p := mustParse(t, "5 * X^0 = 5 * X^0")
	res := Solve(p)
	if res.Kind != KindAllReals {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindAllReals)
	}
	assertLines(t, BuildLines(p, res), []string{
		"Reduced form: 0 * X^0 = 0",
		"Polynomial degree: 0",
		"Any real number is a solution.",
	})
}

func TestSolve_Contradiction(t *testing.T) {
	p := mustParse(t, "4 * X^0 = 8 * X^0")
	res := Solve(p)
	if res.Kind != KindNoSolution {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindNoSolution)
	}
	lines := BuildLines(p, res)
	if lines[len(lines)-1] != "No solution." {
		t.Errorf("last line: got %q, want %q", lines[len(lines)-1], "No solution.")
	}
}

// ============================================================================
// LINEAR
// ============================================================================

func TestSolve_Linear(t *testing.T) {
	p := mustParse(t, "5 * X^0 = 4 * X^0 + 7 * X^1")
	res := Solve(p)
	if res.Kind != KindOneRoot {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindOneRoot)
	}
	if res.Roots[0] != -1.0/7.0 {
		t.Errorf("root: got %.17g, want %.17g", res.Roots[0], -1.0/7.0)
	}
	assertLines(t, BuildLines(p, res), []string{
		"Reduced form: 1 * X^0 - 7 * X^1 = 0",
		"Polynomial degree: 1",
		"The solution is:",
		"-0.14285714285714285",
	})
}

// ============================================================================
// QUADRATIC — Real roots
// ============================================================================

func TestSolve_QuadraticTwoRoots(t *testing.T) {
	p := mustParse(t, "6 * X^0 - 5 * X^1 + 1 * X^2 = 0 * X^0")
	res := Solve(p)
	if res.Kind != KindTwoRoots {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindTwoRoots)
	}
	if res.Discriminant != 1 {
		t.Errorf("discriminant: got %g, want 1", res.Discriminant)
	}
	// Plus branch first.
	assertNear(t, res.Roots[0], 3, 1e-9)
	assertNear(t, res.Roots[1], 2, 1e-9)
	for _, r := range res.Roots {
		assertNear(t, p.Eval(r), 0, 1e-8)
	}
}

func TestSolve_QuadraticZeroDiscriminant(t *testing.T) {
	p := mustParse(t, "1 * X^2 = 0")
	res := Solve(p)
	if res.Kind != KindOneRoot {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindOneRoot)
	}
	if res.Roots[0] != 0 {
		t.Errorf("root: got %g, want 0", res.Roots[0])
	}
	assertLines(t, BuildLines(p, res), []string{
		"Reduced form: 1 * X^2 = 0",
		"Polynomial degree: 2",
		"Discriminant is zero, the solution is:",
		"0",
	})
}

// ============================================================================
// QUADRATIC — Complex pair
// ============================================================================

func TestSolve_PureImaginary(t *testing.T) {
	p := mustParse(t, "1 * X^0 + 1 * X^2 = 0 * X^0")
	res := Solve(p)
	if res.Kind != KindComplexPair {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindComplexPair)
	}
	if res.Real != 0 {
		t.Errorf("real part: got %g, want 0", res.Real)
	}
	assertLines(t, BuildLines(p, res), []string{
		"Reduced form: 1 * X^0 + 1 * X^2 = 0",
		"Polynomial degree: 2",
		"Discriminant is strictly negative, the two complex solutions are:",
		"1i",
		"-1i",
	})
}

func TestSolve_ComplexFractionForm(t *testing.T) {
	p := mustParse(t, "0.5 * X^0 - 1 * X^1 + 1 * X^2 = 0 * X^0")
	res := Solve(p)
	if res.Kind != KindComplexPair {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindComplexPair)
	}
	assertNear(t, res.Real, 0.5, 1e-9)
	assertNear(t, res.Imag, 0.5, 1e-9)
	lines := BuildLines(p, res)
	assertLines(t, lines[2:], []string{
		"Discriminant is strictly negative, the two complex solutions are:",
		"1/2 + 1i/2",
		"1/2 - 1i/2",
	})
}

func TestSolve_ComplexDecimalFallback(t *testing.T) {
	p := mustParse(t, "1 * X^0 + 1 * X^1 + 1 * X^2 = 0 * X^0")
	res := Solve(p)
	if res.Kind != KindComplexPair {
		t.Fatalf("kind: got %q, want %q", res.Kind, KindComplexPair)
	}
	// Imag is √3/2; no simple fraction matches, so the decimal form is used.
	lines := BuildLines(p, res)
	plus := lines[3]
	if !strings.HasPrefix(plus, "-0.5 + ") || !strings.HasSuffix(plus, "i") {
		t.Errorf("plus line: got %q, want \"-0.5 + <imag>i\"", plus)
	}
	minus := lines[4]
	if !strings.HasPrefix(minus, "-0.5 - ") || !strings.HasSuffix(minus, "i") {
		t.Errorf("minus line: got %q, want \"-0.5 - <imag>i\"", minus)
	}
}

// ============================================================================
// OPTIONS
// ============================================================================

func TestBuildLines_MaxDenominatorOption(t *testing.T) {
	p := mustParse(t, "0.5 * X^0 - 1 * X^1 + 1 * X^2 = 0 * X^0")
	res := Solve(p)
	// Capping the denominator at 1 rules out 1/2, forcing the decimal form.
	lines := BuildLines(p, res, WithMaxDenominator(1))
	if !strings.HasPrefix(lines[3], "0.5 + ") {
		t.Errorf("plus line: got %q, want decimal form", lines[3])
	}
}

func TestSolve_SqrtEpsilonOption(t *testing.T) {
	p := mustParse(t, "6 * X^0 - 5 * X^1 + 1 * X^2 = 0 * X^0")
	res := Solve(p, WithSqrtEpsilon(1e-13))
	assertNear(t, res.Roots[0], 3, 1e-12)
	assertNear(t, res.Roots[1], 2, 1e-12)
}
