// Package solve is the end-to-end facade of the analysis pipeline: it ties
// canonicalization, superposition and labeling together and reports
// per-resistor current/voltage and per-ammeter current under stable
// presentation indices (R1, R2, …; A1, A2, …).
//
// # Entry points
//
//   - Solve: canonicalize, ground at the minus terminal, optionally inject an
//     external supply between "+" and "−" (reserved id "external_supply"),
//     run superposition, label the elements and collect results.
//   - Reduce: canonicalize, rewrite to a series/parallel tree and build the
//     reduction trace.
//   - Canonicalize: the canonical graph alone.
//
// # Labeling
//
// Explicit labels matching R<digits>, R_<digits>, R{<digits>} or R_{<digits>}
// (A… for ammeters) claim that index. A non-empty label that does not parse,
// or an index claimed twice, fails with ErrBadLabel / ErrDuplicateLabel.
// Unlabeled elements take the smallest unclaimed positive integer in
// visitation (element) order. Only the canonical graph's resistors and
// ammeters are indexed, so generated equivalents never receive an index;
// no option includes them.
package solve
