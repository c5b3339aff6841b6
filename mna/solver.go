// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: matrix assembly (stamps) and the partial-pivot dense solve.

package mna

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solve assembles and solves the MNA system for the element list.
//
// Steps:
//  1. Validate node count, ground index and element node ranges.
//  2. Stamp elements in list order into a dense (n−1+m)×(n−1+m) system.
//  3. Eliminate with partial pivoting; reject sub-tolerance pivots.
//  4. Re-insert the ground potential and key source currents by element ID.
//
// Complexity: O(d³) time and O(d²) space for d = nodeCount−1+m.
func Solve(els []Element, nodeCount, ground int) (*Result, error) {
	// 1. Validation.
	if nodeCount < 2 {
		return nil, ErrTooFewNodes
	}
	if ground < 0 || ground >= nodeCount {
		return nil, fmt.Errorf("ground=%d of %d nodes: %w", ground, nodeCount, ErrBadGround)
	}
	sources := make([]*VSource, 0, len(els))
	for _, el := range els {
		var nodes [2]int
		switch e := el.(type) {
		case *Resistor:
			nodes = [2]int{e.N1, e.N2}
		case *VSource:
			nodes = [2]int{e.NPlus, e.NMinus}
			sources = append(sources, e)
		case *ISource:
			nodes = [2]int{e.NFrom, e.NTo}
		}
		for _, n := range nodes {
			if n < 0 || n >= nodeCount {
				return nil, fmt.Errorf("node %d of %d: %w", n, nodeCount, ErrNodeRange)
			}
		}
	}

	// 2. Assembly. Node i maps to unknown i when i < ground, i−1 when i > ground.
	n := nodeCount - 1
	dim := n + len(sources)
	A := mat.NewDense(dim, dim, nil)
	b := mat.NewVecDense(dim, nil)

	row := func(node int) (int, bool) {
		switch {
		case node == ground:
			return 0, false
		case node < ground:
			return node, true
		default:
			return node - 1, true
		}
	}
	add := func(i, j int, v float64) { A.Set(i, j, A.At(i, j)+v) }

	k := 0 // voltage-source ordinal == auxiliary column offset
	for _, el := range els {
		switch e := el.(type) {
		case *Resistor:
			g := 1 / e.Ohms
			i1, ok1 := row(e.N1)
			i2, ok2 := row(e.N2)
			if ok1 {
				add(i1, i1, g)
			}
			if ok2 {
				add(i2, i2, g)
			}
			if ok1 && ok2 {
				add(i1, i2, -g)
				add(i2, i1, -g)
			}
		case *ISource:
			if i, ok := row(e.NFrom); ok {
				b.SetVec(i, b.AtVec(i)-e.Amps)
			}
			if i, ok := row(e.NTo); ok {
				b.SetVec(i, b.AtVec(i)+e.Amps)
			}
		case *VSource:
			c := n + k
			k++
			if i, ok := row(e.NPlus); ok {
				add(i, c, 1)
				add(c, i, 1)
			}
			if i, ok := row(e.NMinus); ok {
				add(i, c, -1)
				add(c, i, -1)
			}
			b.SetVec(c, e.Volts)
		}
	}

	// 3. Solve.
	x, err := eliminate(A, b)
	if err != nil {
		return nil, err
	}

	// 4. Result mapping.
	voltages := make([]float64, nodeCount)
	for node := 0; node < nodeCount; node++ {
		if i, ok := row(node); ok {
			voltages[node] = x[i]
		}
	}
	currents := make(map[string]float64, len(sources))
	for i, s := range sources {
		currents[s.ID] = x[n+i]
	}

	return &Result{NodeVoltages: voltages, SourceCurrents: currents}, nil
}

// eliminate runs in-place Gaussian elimination with partial pivoting on
// absolute value, then back-substitutes. The pivot threshold is relative to
// the assembled matrix's maximum absolute entry.
func eliminate(A *mat.Dense, b *mat.VecDense) ([]float64, error) {
	dim, _ := A.Dims()
	tol := DefaultPivotTolerance * maxAbs(A.RawMatrix().Data)
	if tol == 0 {
		return nil, ErrSingular
	}

	for col := 0; col < dim; col++ {
		// Pick the largest remaining |entry| in this column as pivot.
		pivot := col
		for r := col + 1; r < dim; r++ {
			if absOf(A.At(r, col)) > absOf(A.At(pivot, col)) {
				pivot = r
			}
		}
		pv := A.At(pivot, col)
		if !finite(pv) || absOf(pv) <= tol {
			return nil, ErrSingular
		}
		if pivot != col {
			swapRows(A, b, pivot, col)
		}

		for r := col + 1; r < dim; r++ {
			factor := A.At(r, col) / A.At(col, col)
			if factor == 0 {
				continue
			}
			for c := col; c < dim; c++ {
				A.Set(r, c, A.At(r, c)-factor*A.At(col, c))
			}
			b.SetVec(r, b.AtVec(r)-factor*b.AtVec(col))
		}
	}

	// Back-substitution.
	x := make([]float64, dim)
	for r := dim - 1; r >= 0; r-- {
		sum := b.AtVec(r)
		for c := r + 1; c < dim; c++ {
			sum -= A.At(r, c) * x[c]
		}
		x[r] = sum / A.At(r, r)
		if !finite(x[r]) {
			return nil, ErrSingular
		}
	}

	return x, nil
}

// swapRows exchanges two rows of the augmented system.
func swapRows(A *mat.Dense, b *mat.VecDense, r1, r2 int) {
	dim, _ := A.Dims()
	for c := 0; c < dim; c++ {
		v1, v2 := A.At(r1, c), A.At(r2, c)
		A.Set(r1, c, v2)
		A.Set(r2, c, v1)
	}
	v1, v2 := b.AtVec(r1), b.AtVec(r2)
	b.SetVec(r1, v2)
	b.SetVec(r2, v1)
}
