// Package mna assembles and solves the modified-nodal-analysis linear system
// for a flat element list over compact node indices.
//
// Unknowns are the node potentials excluding ground (n−1 of them) followed by
// one auxiliary branch current per voltage source (m of them), forming a
// dense (n−1+m)×(n−1+m) system:
//
//   - a resistor stamps its conductance g = 1/R on the two node rows
//     (+g on diagonals, −g off-diagonal);
//   - a current source adds −I at its from-row and +I at its to-row;
//   - voltage source k stamps ±1 couplings between its node rows and its
//     current column, plus the constraint row V[n+] − V[n−] = volts.
//
// Ground is eliminated by shifting node indices past it down by one; its
// potential is re-inserted as 0 in the result.
//
// The system is solved by Gaussian elimination with partial pivoting on
// absolute value; a pivot below the tolerance (relative to the matrix's
// maximum absolute entry) reports ErrSingular. All arithmetic is
// double-precision and iteration order is fixed, so equal inputs produce
// bit-equal outputs.
//
// Ammeters are not a variant here: the canonical pipeline lowers them to
// zero-volt non-independent voltage sources before solving, which makes
// their branch current one of the augmented unknowns.
package mna
