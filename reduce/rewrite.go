// SPDX-License-Identifier: MIT
//
// File: rewrite.go
// Role: the series/parallel rewrite loop over oriented working edges.

package reduce

import (
	"github.com/katalvlaran/voltgraph/canon"
	"github.com/katalvlaran/voltgraph/circuit"
)

// workEdge is one oriented edge of the working multigraph. The expression is
// valid when traversed from→to.
type workEdge struct {
	from, to int
	expr     circuit.Item
}

// Reduce collapses the canonical graph to a single +→− tree expression.
//
// Steps per iteration, in priority order:
//  1. Terminate when exactly one edge remains and its endpoints equal {+,−}.
//  2. Parallel rule (first occurrence in edge order).
//  3. Series rule (super-node index order).
//
// A fixpoint with more than one edge, or a lone edge not spanning the
// terminals, is ErrNotReducible. Iterations are capped at
// MaxRewriteIterations (ErrRewriteLimit).
//
// Complexity: O(E²) time in the worst case for the small circuits in scope,
// O(E) space for the working edge list.
func Reduce(g *canon.Graph) (circuit.Item, error) {
	edges := initialEdges(g)
	ids := circuit.NewIDSeq("x")

	for iter := 0; iter < MaxRewriteIterations; iter++ {
		if len(edges) == 1 {
			e := edges[0]
			switch {
			case e.from == g.Plus && e.to == g.Minus:
				return e.expr, nil
			case e.from == g.Minus && e.to == g.Plus:
				return Reverse(e.expr), nil
			default:
				return nil, ErrNotReducible
			}
		}
		if next, ok := applyParallel(edges, ids); ok {
			edges = next

			continue
		}
		if next, ok := applySeries(edges, g, ids); ok {
			edges = next

			continue
		}

		return nil, ErrNotReducible
	}

	return nil, ErrRewriteLimit
}

// initialEdges translates canonical elements into oriented working edges,
// preserving element order.
func initialEdges(g *canon.Graph) []workEdge {
	edges := make([]workEdge, 0, len(g.Elements))
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.Resistor:
			edges = append(edges, workEdge{e.N1, e.N2, &circuit.Resistor{ID: e.ID, Name: e.Name, Ohms: e.Ohms}})
		case *canon.Ammeter:
			edges = append(edges, workEdge{e.N1, e.N2, &circuit.Ammeter{ID: e.ID, Name: e.Name}})
		case *canon.VSource:
			edges = append(edges, workEdge{e.NPlus, e.NMinus, &circuit.VSource{ID: e.ID, Name: e.Name, Volts: e.Volts}})
		case *canon.ISource:
			edges = append(edges, workEdge{e.NFrom, e.NTo, &circuit.ISource{ID: e.ID, Name: e.Name, Amps: e.Amps}})
		}
	}

	return edges
}

// pairKey is an unordered endpoint pair.
type pairKey struct{ lo, hi int }

func keyOf(e workEdge) pairKey {
	if e.from <= e.to {
		return pairKey{e.from, e.to}
	}

	return pairKey{e.to, e.from}
}

// applyParallel merges the first group (by first occurrence) of ≥2 edges
// sharing an unordered endpoint pair into one parallel edge. The canonical
// orientation u→v is the orientation of the group's first edge; the merged
// edge replaces it in place so edge order stays deterministic.
func applyParallel(edges []workEdge, ids *circuit.IDSeq) ([]workEdge, bool) {
	groups := make(map[pairKey][]int, len(edges))
	order := make([]pairKey, 0, len(edges))
	for i, e := range edges {
		k := keyOf(e)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	for _, k := range order {
		idx := groups[k]
		if len(idx) < 2 {
			continue
		}
		first := edges[idx[0]]
		u, v := first.from, first.to

		branches := make([]circuit.Branch, 0, len(idx))
		for _, i := range idx {
			expr := edges[i].expr
			if edges[i].from != u {
				expr = Reverse(expr)
			}
			branches = append(branches, circuit.Branch{ID: ids.Next(), Items: branchItems(expr)})
		}
		merged := workEdge{from: u, to: v, expr: circuit.NewParallel(ids.Next(), branches...)}

		member := make(map[int]bool, len(idx))
		for _, i := range idx {
			member[i] = true
		}
		next := make([]workEdge, 0, len(edges)-len(idx)+1)
		for i, e := range edges {
			switch {
			case i == idx[0]:
				next = append(next, merged)
			case member[i]:
				// dropped into the merged edge
			default:
				next = append(next, e)
			}
		}

		return next, true
	}

	return nil, false
}

// branchItems unwraps a series expression into its item list so parallel
// branches hold flat sequences rather than a single series wrapper.
func branchItems(expr circuit.Item) []circuit.Item {
	if s, ok := expr.(*circuit.Series); ok {
		return s.Items
	}

	return []circuit.Item{expr}
}

// applySeries eliminates the first (by super-node index) non-terminal node of
// degree exactly 2 whose incident edges reach distinct other nodes.
func applySeries(edges []workEdge, g *canon.Graph, ids *circuit.IDSeq) ([]workEdge, bool) {
	degree := make([]int, g.NodeCount)
	incident := make([][]int, g.NodeCount)
	for i, e := range edges {
		degree[e.from]++
		degree[e.to]++
		incident[e.from] = append(incident[e.from], i)
		incident[e.to] = append(incident[e.to], i)
	}

	for n := 0; n < g.NodeCount; n++ {
		if n == g.Plus || n == g.Minus || degree[n] != 2 || len(incident[n]) != 2 {
			continue
		}
		i1, i2 := incident[n][0], incident[n][1]
		e1, e2 := edges[i1], edges[i2]
		a, b := otherEnd(e1, n), otherEnd(e2, n)
		if a == b {
			// Same far endpoint: this is a parallel pair in disguise; the
			// parallel rule resolves it on a later iteration.
			continue
		}

		x1 := e1.expr
		if e1.from != a {
			x1 = Reverse(x1) // orient a→n
		}
		x2 := e2.expr
		if e2.from != n {
			x2 = Reverse(x2) // orient n→b
		}
		merged := workEdge{from: a, to: b, expr: circuit.NewSeries(ids.Next(), x1, x2)}

		next := make([]workEdge, 0, len(edges)-1)
		for i, e := range edges {
			switch i {
			case i1:
				next = append(next, merged)
			case i2:
				// consumed by the merge
			default:
				next = append(next, e)
			}
		}

		return next, true
	}

	return nil, false
}

// otherEnd returns the endpoint of e that is not n.
func otherEnd(e workEdge, n int) int {
	if e.from == n {
		return e.to
	}

	return e.from
}
