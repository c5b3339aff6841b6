// Package superpos decomposes a DC solution per independent source.
//
// Run enumerates every independent source of the canonical graph (voltage
// sources and current sources, in element order), solves one MNA case per
// source with every *other* independent source deactivated (vsource → 0 V,
// isource → 0 A), and sums the per-case quantities: node potentials, source
// currents, resistor currents and voltages, ammeter currents. Linearity makes
// the sums equal the single all-sources-active solve.
//
// Deactivated sources stay in the element list — a 0 V source is still a
// constraint row — so every case solves the same matrix structure and the
// auxiliary unknowns keep their meaning across cases.
//
// The minus terminal is the ground of every solve. Ammeters are lowered to
// zero-volt non-independent voltage sources; their reported current is the
// auxiliary unknown of that source, signed by the a→b orientation captured
// at canonicalization.
//
// A failing per-source solve is surfaced annotated with the active source's
// name. A circuit with no independent source at all is ErrNoSources; the
// facade adds a source only when its WithExternalSupply option is given.
package superpos
