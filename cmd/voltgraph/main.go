// Command voltgraph analyzes a persisted circuit: it prints the reduction
// trace and the solved per-element quantities, or emits the LaTeX solution
// document.
//
// Usage:
//
//	voltgraph --input circuit.json
//	voltgraph --input circuit.json --supply 9
//	voltgraph --input circuit.json --latex > solution.tex
//	voltgraph --input circuit.json --reduce-only
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/voltgraph/circuitjson"
	"github.com/katalvlaran/voltgraph/reduce"
	"github.com/katalvlaran/voltgraph/render"
	"github.com/katalvlaran/voltgraph/solve"
	"github.com/katalvlaran/voltgraph/trace"
)

func main() {
	var (
		input      = flag.StringP("input", "i", "", "path to the circuit JSON file")
		supply     = flag.Float64("supply", 0, "external supply volts injected between + and −")
		latex      = flag.Bool("latex", false, "emit the LaTeX solution document")
		reduceOnly = flag.Bool("reduce-only", false, "print the reduction trace and skip solving")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "voltgraph: --input is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*input, *supply, flag.Lookup("supply").Changed, *latex, *reduceOnly); err != nil {
		fmt.Fprintln(os.Stderr, "voltgraph:", err)
		os.Exit(1)
	}
}

func run(input string, supply float64, hasSupply, latex, reduceOnly bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	doc, err := circuitjson.Decode(data)
	if err != nil {
		return err
	}
	c, err := reduce.TreeToCircuit(doc.Tree())
	if err != nil {
		return err
	}

	tr, err := solve.Reduce(c)
	if err != nil {
		return err
	}

	if reduceOnly {
		printTrace(tr)

		return nil
	}

	var opts []solve.Option
	if hasSupply {
		opts = append(opts, solve.WithExternalSupply(supply))
	}
	sol, err := solve.Solve(c, opts...)
	if err != nil {
		return err
	}

	if latex {
		fmt.Print(render.SolutionDoc(tr, sol))

		return nil
	}

	printTrace(tr)
	printSolution(sol)

	return nil
}

func printTrace(tr *trace.Trace) {
	for _, lvl := range tr.Levels {
		if len(lvl.Reductions) == 0 {
			continue
		}
		fmt.Printf("level %d:\n", lvl.Index)
		for _, red := range lvl.Reductions {
			fmt.Printf("  %s  (%s, depth %d)\n", red.Formula, red.Kind, red.Depth)
		}
	}
}

func printSolution(sol *solve.Solution) {
	for _, r := range sol.Resistors {
		fmt.Printf("%s: %g Ohm, I = %g A, U = %g V\n", r.Name, r.Ohms, r.Current, r.Voltage)
	}
	for _, a := range sol.Ammeters {
		fmt.Printf("%s: I = %g A\n", a.Name, a.Current)
	}
	if sol.HasSupply {
		fmt.Printf("U_s delivers %g A\n", sol.SupplyCurrent)
	}
}
