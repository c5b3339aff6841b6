// Package render turns series/parallel trees into wire-level drawables on a
// 1 cm grid and emits CircuitikZ pictures and the LaTeX solution document.
//
// The layout pass produces three drawable kinds: wires (polylines),
// components (oriented segments carrying kind, label and optionally a solved
// current), and terminals (labeled circles at the "+" and "−" ends). A
// straight route lays the tree out left to right; a U route walks the top
// segment rightwards, the right segment downwards and the bottom segment
// leftwards. Parallel branches stack perpendicular to the walk direction and
// are padded with wires to equal length.
//
// The CircuitikZ exporter emits \ctikzset{european}, one \draw per drawable
// with the kind mapping {resistor→R, ammeter→ammeter, vsource→V,
// isource→I}, and optional current-arrow overlays whose direction follows
// the sign of the solved current.
//
// SolutionDoc assembles the per-level blocks of the reduction trace — the
// circuit picture and the reduction formulas — followed by the superposition
// tables and totals when a solution is supplied.
package render
