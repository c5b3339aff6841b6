// Package circuit defines the two circuit representations shared by the
// whole analysis pipeline, and the stable identifier sequence used to mint
// fresh vertices, edges and generated equivalents.
//
// # Representations
//
//   - The node/edge form (Circuit, Vertex, Edge) is the editor's mutable
//     multigraph: vertices with 2D positions (irrelevant to analysis) and
//     typed edges (wire, resistor, ammeter, vsource, isource) referencing
//     their endpoints by vertex ID. Two optional terminal references name
//     the "+" and "−" reference vertices.
//
//   - The series/parallel tree form (Item and its variants) is the canonical
//     result of reduction: a recursive expression of atoms composed under
//     Series and Parallel, oriented +→−. Wires never appear in trees.
//
// # Flattening
//
// Trees are built through NewSeries and NewParallel, which enforce the
// flattening invariants: a series directly inside a series is merged, and a
// single-child series or parallel collapses to its child.
//
// # Validation
//
// Circuit.Validate checks the structural invariants the analysis relies on:
// every edge endpoint resolves to a live vertex, the terminals differ when
// both are set, resistances are finite and strictly positive, and source
// values are finite. All failures are sentinel errors matchable with
// errors.Is.
package circuit
