package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/computor-org/computor/engine"
	"github.com/computor-org/computor/parser"
	"github.com/computor-org/computor/poly"
)

// ============================================================================
// COMPUTOR CLI — Polynomial equation solver (degree 2 or lower)
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	inFile := flag.String("in", "", "File with one equation per line (instead of a positional argument)")
	format := flag.String("format", "text", "Output format: text, json, pretty")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Computor — polynomial equation solver (degree 2 or lower)

Usage:
  computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
  computor --format json "1 * X^2 = 0"
  computor --in equations.txt --format pretty --out results.json

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  text      Reduced form, degree, and solutions (default)
  json      Machine-readable result
  pretty    Pretty-printed JSON
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("computor %s\n", version)
		os.Exit(0)
	}

	// ── Equations to solve ────────────────────────────────────────────────
	var equations []string
	if *inFile != "" {
		data, err := os.ReadFile(*inFile)
		if err != nil {
			fatalf("Failed to read input file: %v", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				equations = append(equations, line)
			}
		}
		if len(equations) == 0 {
			fatalf("No equations in %s", *inFile)
		}
	} else {
		if flag.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: exactly one equation argument is required")
			flag.Usage()
			os.Exit(1)
		}
		equations = []string{flag.Arg(0)}
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Solve ─────────────────────────────────────────────────────────────
	outputs := make([]solveOutput, 0, len(equations))
	for _, eq := range equations {
		p, err := parser.Parse(eq)
		if err != nil {
			fatalf("%v", err)
		}
		outputs = append(outputs, solveOutput{
			Equation:    eq,
			ReducedForm: p.ReducedForm(),
			Result:      engine.Solve(p),
			polynomial:  p,
		})
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "json", "pretty":
		if len(outputs) == 1 {
			writeJSON(writer, outputs[0], *format)
		} else {
			writeJSON(writer, outputs, *format)
		}
	default:
		for i, out := range outputs {
			if i > 0 {
				fmt.Fprintln(writer)
			}
			for _, line := range engine.BuildLines(out.polynomial, out.Result) {
				fmt.Fprintln(writer, line)
			}
		}
	}
}

// ============================================================================
// OUTPUT TYPES
// ============================================================================

type solveOutput struct {
	Equation    string         `json:"equation"`
	ReducedForm string         `json:"reducedForm"`
	Result      *engine.Result `json:"result"`

	polynomial poly.Polynomial
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
