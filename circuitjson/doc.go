// Package circuitjson encodes and decodes the persisted circuit form: the
// editor-side series/parallel tree plus its display route.
//
// The top level carries the discriminant kind "circuit", an id and a route —
// "straight" (one item sequence) or "u" (top/right/bottom segments). Routes
// affect display only, never analysis; Document.Tree concatenates the
// segments into one series expression either way.
//
// # Legacy migration
//
//   - An absent route is inferred: any segment list present ⇒ "u", else
//     "straight".
//   - The historical "two-bend" route aliases to "u".
//   - A legacy top-level item sequence under "u" maps to the bottom segment.
//
// # Validation
//
// Unknown kinds, unknown routes, non-finite or non-positive ohms, non-finite
// source values and missing required fields are rejected; the first failure
// is reported as "<path>: <message>", e.g.
//
//	top[1].ohms: circuit: resistance must be finite and positive
//
// Encode ∘ Decode is the identity on valid documents.
package circuitjson
