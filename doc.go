// Package voltgraph analyzes small DC electrical circuits edited as a
// labeled multigraph: it collapses series/parallel structure into a canonical
// tree, solves node potentials and branch currents with modified nodal
// analysis, and decomposes the solution per independent source.
//
// 🚀 What is voltgraph?
//
//	A deterministic, synchronous analysis pipeline that brings together:
//		• circuit     — node/edge model, series/parallel tree, stable identifiers
//		• canon       — wire contraction via union-find, terminal resolution
//		• reduce      — series/parallel rewriting of the edge multigraph
//		• trace       — deepest-first reduction levels with LaTeX formulas
//		• mna         — dense modified nodal analysis (partial-pivot elimination)
//		• superpos    — per-source superposition cases and linear sums
//		• solve       — the end-to-end facade: labeling, external supply, results
//		• circuitjson — the persisted circuit form with legacy migration
//		• render      — CircuitikZ drawables and the LaTeX solution document
//
// ✨ Why voltgraph?
//
//   - Errors are values — every fallible operation returns a sentinel you can errors.Is
//   - Deterministic — fixed iteration order, bit-identical repeated runs
//   - Pure — no shared state, no I/O, trivially safe to call from any goroutine
//
// Data flow:
//
//	editor circuit → canon → (a) reduce → tree → trace
//	                       → (b) superpos → per-source and total quantities
//
// Both paths consume the same canonicalized graph and agree on element
// identities. AC/transient analysis, controlled sources and nonlinear
// devices are out of scope.
//
//	go get github.com/katalvlaran/voltgraph
package voltgraph
