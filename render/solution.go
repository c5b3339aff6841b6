// SPDX-License-Identifier: MIT
//
// File: solution.go
// Role: the LaTeX solution document — per-level blocks, superposition tables
// and totals.

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/voltgraph/solve"
	"github.com/katalvlaran/voltgraph/trace"
)

// SolutionDoc assembles the LaTeX solution: one block per reduction level
// (circuit picture plus reduction formulas), then — when a solution with
// independent sources is supplied — the per-source superposition tables, the
// totals and the per-resistor voltages. A nil solution renders the reduction
// alone.
func SolutionDoc(tr *trace.Trace, sol *solve.Solution) string {
	var b strings.Builder

	for _, lvl := range tr.Levels {
		fmt.Fprintf(&b, "\\subsection*{Level %d}\n", lvl.Index)
		b.WriteString(CircuitikZ(Layout(lvl.Circuit)))
		if lvl.Formula != "" {
			b.WriteString("\\[\n" + lvl.Formula + "\n\\]\n")
		}
		b.WriteString("\n")
	}

	if sol != nil {
		writeSuperposition(&b, sol)
	}

	return b.String()
}

// writeSuperposition emits the per-source current table, the summed totals
// and the per-resistor voltages.
func writeSuperposition(b *strings.Builder, sol *solve.Solution) {
	sum := sol.Summary
	if len(sum.Sources) == 0 {
		return
	}

	b.WriteString("\\subsection*{Superposition}\n")

	// Header: one column per resistor, in index order.
	cols := make([]string, 0, len(sol.Resistors))
	for _, r := range sol.Resistors {
		cols = append(cols, "$I_{"+r.Name+"}$")
	}
	fmt.Fprintf(b, "\\begin{tabular}{l|%s}\n", strings.Repeat("r", len(cols)))
	fmt.Fprintf(b, " & %s \\\\ \\hline\n", strings.Join(cols, " & "))

	// One row per source case.
	for _, c := range sum.Cases {
		cells := make([]string, 0, len(sol.Resistors))
		for _, r := range sol.Resistors {
			cells = append(cells, formatQuantity(c.ResistorCurrents[r.ID]))
		}
		fmt.Fprintf(b, "$%s$ & %s \\\\\n", c.Source.DisplayName(), strings.Join(cells, " & "))
	}

	// Totals row.
	totals := make([]string, 0, len(sol.Resistors))
	for _, r := range sol.Resistors {
		totals = append(totals, formatQuantity(r.Current))
	}
	fmt.Fprintf(b, "\\hline\n$\\Sigma$ & %s \\\\\n", strings.Join(totals, " & "))
	b.WriteString("\\end{tabular}\n\n")

	// Per-resistor voltages.
	b.WriteString("\\subsection*{Voltages}\n")
	for _, r := range sol.Resistors {
		fmt.Fprintf(b, "\\[ U_{%s} = %s\\,\\mathrm{V} \\]\n", r.Name, formatQuantity(r.Voltage))
	}

	if sol.HasSupply {
		fmt.Fprintf(b, "\\[ I_{U_s} = %s\\,\\mathrm{A} \\]\n", formatQuantity(sol.SupplyCurrent))
	}
}
