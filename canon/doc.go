// Package canon contracts the editor's wire edges into super-nodes and
// produces the canonical element list the reducer and the solver both
// consume.
//
// Canonicalize runs a disjoint-set union (path compression + union by rank)
// over all vertices, unions the endpoints of every wire edge, and assigns
// compact 0-based super-node indices in first-seen representative order.
// Non-wire edges are re-expressed over super-nodes, preserving their kind,
// value and orientation. Terminal resolution follows a fixed priority:
// explicit "+"/"−" references when both are present and distinct, else the
// endpoints of the first voltage source (a="+", b="−"), else the first two
// vertices.
//
// Enforced invariants:
//   - the "+" and "−" super-nodes differ (ErrTerminalsShorted);
//   - a non-wire edge whose endpoints collapse into one super-node is
//     dropped, except a voltage source with non-zero volts, which fails
//     (ErrVSourceShorted);
//   - at least two distinct super-nodes (ErrTooFewNodes) and at least one
//     surviving element (ErrNoComponents).
//
// Canonicalization is idempotent: re-running it on its own output yields the
// same partition and element list.
package canon
