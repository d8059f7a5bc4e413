package engine

// ============================================================================
// ENGINE TYPES — Solver result variants
// ============================================================================
// Solve never prints. It returns a Result tagged with a Kind; the output
// builder turns that into lines, so every branch is testable against the
// numeric values rather than against formatted text.
// ============================================================================

// Kinds of solver outcome.
const (
	KindUnsolvable  = "unsolvable"   // degree > 2
	KindAllReals    = "all_reals"    // 0 = 0
	KindNoSolution  = "no_solution"  // c = 0 with c ≠ 0
	KindOneRoot     = "one_root"     // unique real root
	KindTwoRoots    = "two_roots"    // two distinct real roots
	KindComplexPair = "complex_pair" // conjugate complex roots
)

// Result is the engine's render-ready output.
type Result struct {
	Kind   string `json:"kind"`
	Degree int    `json:"degree"`

	// Discriminant is meaningful only when Degree == 2.
	Discriminant float64 `json:"discriminant,omitempty"`

	// Roots holds the real root(s): one entry for KindOneRoot, two for
	// KindTwoRoots (plus-branch of the quadratic formula first).
	Roots []float64 `json:"roots,omitempty"`

	// Real and Imag describe the conjugate pair Real ± Imag·i
	// when Kind == KindComplexPair.
	Real float64 `json:"real,omitempty"`
	Imag float64 `json:"imag,omitempty"`
}
