// Package reduce rewrites a canonicalized edge multigraph into a single
// series/parallel tree expression oriented +→−, and converts tree
// expressions back into node/edge circuits for the exporters.
//
// # Rewriting
//
// Each working edge carries an oriented expression from→to. Two rules are
// applied, parallel first, until fixpoint:
//
//  1. Parallel: when ≥2 edges share the same unordered endpoint pair {u,v},
//     each is oriented canonically u→v (reversing where needed) and the group
//     is replaced by one edge carrying a Parallel expression. Groups are
//     discovered by first occurrence in edge order.
//
//  2. Series: a non-terminal super-node of degree exactly 2 whose incident
//     edges reach distinct other nodes (a↔n, n↔b, a≠b) is eliminated; the
//     pair becomes one a→b edge carrying a Series expression. Candidate
//     nodes are scanned in super-node index order.
//
// Reversing an edge negates source values (volts and amps), reverses the
// order of series children, and reverses each parallel branch individually.
//
// Termination: one edge whose endpoints equal {+,−} is oriented +→− and its
// expression returned. Anything else is not series/parallel with respect to
// the chosen terminals (ErrNotReducible). A hard iteration ceiling surfaces
// livelock deterministically (ErrRewriteLimit).
//
// # Conversions
//
// TreeToCircuit expands a tree back into the editor's node/edge form: series
// children chain through fresh interior vertices, parallel branches share
// both endpoint vertices. The round trip graph→tree→graph preserves the atom
// multiset and orientation-adjusted parameters.
package reduce
