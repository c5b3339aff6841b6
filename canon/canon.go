// SPDX-License-Identifier: MIT
//
// File: canon.go
// Role: wire contraction via disjoint-set union and terminal resolution.

package canon

import (
	"fmt"

	"github.com/katalvlaran/voltgraph/circuit"
)

// Canonicalize contracts wire edges and re-expresses the circuit over compact
// super-node indices.
//
// Steps:
//  1. Validate the editor form (endpoints, terminal distinctness, values).
//  2. Initialize union-find over all vertices; union the endpoints of every
//     wire edge.
//  3. Assign super-node indices by first-seen representative order over the
//     vertex list; require at least two distinct super-nodes.
//  4. Resolve terminals: explicit refs if both present, else the first
//     voltage source's endpoints (a="+", b="−"), else vertices 0 and 1.
//     The resolved super-nodes must differ.
//  5. Translate non-wire edges in insertion order. Coincident-endpoint edges
//     are dropped, except a voltage source with volts ≠ 0 which fails.
//
// Complexity: O(V·α(V) + E) time, O(V + E) space.
func Canonicalize(c *circuit.Circuit) (*Graph, error) {
	// 1. Model-level validation first, so downstream stages can assume a
	//    well-formed circuit.
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("canon: %w", err)
	}

	// 2. Union-find over vertex IDs, path compression + union by rank.
	parent := make(map[string]string, len(c.Vertices))
	rank := make(map[string]int, len(c.Vertices))
	for _, v := range c.Vertices {
		parent[v.ID] = v.ID
		rank[v.ID] = 0
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // halve the path while walking up
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	for _, e := range c.Edges {
		if e.Kind == circuit.KindWire {
			union(e.A, e.B)
		}
	}

	// 3. Compact super-node indices in first-seen representative order.
	super := make(map[string]int, len(c.Vertices))
	count := 0
	for _, v := range c.Vertices {
		root := find(v.ID)
		if _, seen := super[root]; !seen {
			super[root] = count
			count++
		}
	}
	// Every vertex maps to its representative's index.
	nodeOf := make(map[string]int, len(c.Vertices))
	for _, v := range c.Vertices {
		nodeOf[v.ID] = super[find(v.ID)]
	}
	if count < 2 {
		return nil, ErrTooFewNodes
	}

	// 4. Terminal resolution.
	plus, minus, err := resolveTerminals(c, nodeOf)
	if err != nil {
		return nil, err
	}

	// 5. Element translation, preserving edge insertion order.
	elements := make([]Element, 0, len(c.Edges))
	for _, e := range c.Edges {
		if e.Kind == circuit.KindWire {
			continue
		}
		na, nb := nodeOf[e.A], nodeOf[e.B]
		if na == nb {
			// A collapsed element carries no potential difference and is
			// dropped — unless it is a source trying to hold one.
			if e.Kind == circuit.KindVSource && e.Volts != 0 {
				return nil, fmt.Errorf("edge %q: %w", e.ID, ErrVSourceShorted)
			}

			continue
		}
		switch e.Kind {
		case circuit.KindResistor:
			elements = append(elements, &Resistor{ID: e.ID, Name: e.Label, N1: na, N2: nb, Ohms: e.Ohms})
		case circuit.KindAmmeter:
			elements = append(elements, &Ammeter{ID: e.ID, Name: e.Label, N1: na, N2: nb})
		case circuit.KindVSource:
			elements = append(elements, &VSource{ID: e.ID, Name: e.Label, NPlus: na, NMinus: nb, Volts: e.Volts})
		case circuit.KindISource:
			elements = append(elements, &ISource{ID: e.ID, Name: e.Label, NFrom: na, NTo: nb, Amps: e.Amps})
		}
	}
	if len(elements) == 0 {
		return nil, ErrNoComponents
	}

	return &Graph{
		NodeCount: count,
		Elements:  elements,
		Plus:      plus,
		Minus:     minus,
		SuperNode: nodeOf,
	}, nil
}

// resolveTerminals picks the "+" and "−" super-nodes by fixed priority.
func resolveTerminals(c *circuit.Circuit, nodeOf map[string]int) (plus, minus int, err error) {
	switch {
	case c.PlusID != "" && c.MinusID != "":
		plus, minus = nodeOf[c.PlusID], nodeOf[c.MinusID]
	default:
		if e, ok := firstVSource(c); ok {
			plus, minus = nodeOf[e.A], nodeOf[e.B]
		} else {
			plus, minus = nodeOf[c.Vertices[0].ID], nodeOf[c.Vertices[1].ID]
		}
	}
	if plus == minus {
		return 0, 0, ErrTerminalsShorted
	}

	return plus, minus, nil
}

// firstVSource returns the first voltage-source edge in insertion order.
func firstVSource(c *circuit.Circuit) (circuit.Edge, bool) {
	for _, e := range c.Edges {
		if e.Kind == circuit.KindVSource {
			return e, true
		}
	}

	return circuit.Edge{}, false
}
