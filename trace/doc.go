// Package trace turns a series/parallel tree into an ordered list of
// reduction levels, the presentation form consumed by the LaTeX exporter.
//
// Level 0 is the untouched tree. Each subsequent level collapses *all*
// collapsible subtrees at the current deepest candidate depth — and only
// those — replacing each with a generated equivalent resistor named by the
// hierarchical level.counter scheme (R_{2.1}, R_{2.2}, …).
//
// Candidates are:
//   - every run of ≥2 consecutive resistive atoms inside an item list;
//   - every list consisting purely of resistive atoms (collapsed whole);
//   - every parallel block of ≥2 branches whose branches are all purely
//     resistive.
//
// Sources are never part of a candidate; they break runs and keep their
// containing block alive. Ammeters count as 0 Ω in series; a parallel branch
// that is ammeter-only (and therefore 0 Ω) is a short and blocks the whole
// reduction, as is an empty branch or a series run summing to 0 Ω.
//
// The orchestrator is total over its iteration ceiling: when a later level
// fails, the levels computed so far are returned together with the error.
package trace
