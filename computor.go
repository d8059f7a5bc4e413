// Package computor solves single-variable polynomial equations of degree
// two or lower.
//
// Usage:
//
//	import (
//	    "github.com/computor-org/computor/engine"
//	    "github.com/computor-org/computor/parser"
//	)
//
//	p, err := parser.Parse("5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0")
//	result := engine.Solve(p)
//	for _, line := range engine.BuildLines(p, result) {
//	    fmt.Println(line)
//	}
//
// The parser reduces both sides of the equation into a single coefficient
// map representing P(X) = 0; the engine dispatches on the polynomial degree
// and returns a render-ready Result. All computation is local and
// synchronous — no external service, no shared state.
package computor
