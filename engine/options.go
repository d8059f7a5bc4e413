package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Solve() and BuildLines()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	SqrtEpsilon    float64 // Newton iteration convergence threshold
	FractionTol    float64 // distance to an integer accepted by Fraction
	MaxDenominator int     // largest denominator Fraction will try
}

// WithSqrtEpsilon overrides the convergence threshold of the Newton
// square-root iteration.
func WithSqrtEpsilon(eps float64) Option {
	return func(c *config) {
		c.SqrtEpsilon = eps
	}
}

// WithFractionTolerance overrides how close value*denominator must be to an
// integer for a simple-fraction match.
func WithFractionTolerance(tol float64) Option {
	return func(c *config) {
		c.FractionTol = tol
	}
}

// WithMaxDenominator overrides the largest denominator tried when formatting
// complex roots as simple fractions.
func WithMaxDenominator(n int) Option {
	return func(c *config) {
		c.MaxDenominator = n
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		SqrtEpsilon:    1e-10,
		FractionTol:    1e-9,
		MaxDenominator: 19,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
