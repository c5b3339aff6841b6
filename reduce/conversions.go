// SPDX-License-Identifier: MIT
//
// File: conversions.go
// Role: tree→graph expansion used by the exporters and the level renderer.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/voltgraph/circuit"
)

// TreeToCircuit expands a series/parallel tree into the editor's node/edge
// form. The tree's "+" end becomes the plus terminal, the "−" end the minus
// terminal; series children chain through fresh interior vertices and
// parallel branches span the same endpoint pair.
//
// Atom identifiers and names are carried over unchanged; interior vertices
// and filler wires receive fresh deterministic identifiers. An empty series
// or branch expands to a plain wire.
func TreeToCircuit(root circuit.Item) (*circuit.Circuit, error) {
	if root == nil {
		return nil, ErrNilItem
	}

	b := &treeBuilder{
		c:      &circuit.Circuit{},
		vertex: circuit.NewIDSeq("n"),
		wire:   circuit.NewIDSeq("w"),
	}
	plus := b.addVertex()
	minus := b.addVertex()
	if err := b.expand(root, plus, minus); err != nil {
		return nil, err
	}
	b.c.PlusID, b.c.MinusID = plus, minus

	return b.c, nil
}

type treeBuilder struct {
	c      *circuit.Circuit
	vertex *circuit.IDSeq
	wire   *circuit.IDSeq
}

func (b *treeBuilder) addVertex() string {
	id := b.vertex.Next()
	b.c.Vertices = append(b.c.Vertices, circuit.Vertex{ID: id})

	return id
}

// expand wires the expression between vertices a (toward "+") and z (toward "−").
func (b *treeBuilder) expand(it circuit.Item, a, z string) error {
	switch v := it.(type) {
	case *circuit.Resistor:
		b.c.Edges = append(b.c.Edges, circuit.Edge{ID: v.ID, Label: v.Name, A: a, B: z, Kind: circuit.KindResistor, Ohms: v.Ohms})
	case *circuit.Ammeter:
		b.c.Edges = append(b.c.Edges, circuit.Edge{ID: v.ID, Label: v.Name, A: a, B: z, Kind: circuit.KindAmmeter})
	case *circuit.VSource:
		b.c.Edges = append(b.c.Edges, circuit.Edge{ID: v.ID, Label: v.Name, A: a, B: z, Kind: circuit.KindVSource, Volts: v.Volts})
	case *circuit.ISource:
		b.c.Edges = append(b.c.Edges, circuit.Edge{ID: v.ID, Label: v.Name, A: a, B: z, Kind: circuit.KindISource, Amps: v.Amps})
	case *circuit.Series:
		return b.expandChain(v.Items, a, z)
	case *circuit.Parallel:
		for _, br := range v.Branches {
			if err := b.expandChain(br.Items, a, z); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrNilItem, it)
	}

	return nil
}

// expandChain lays items out in series between a and z, minting interior
// vertices between consecutive items. An empty chain degenerates to a wire.
func (b *treeBuilder) expandChain(items []circuit.Item, a, z string) error {
	if len(items) == 0 {
		b.c.Edges = append(b.c.Edges, circuit.Edge{ID: b.wire.Next(), A: a, B: z, Kind: circuit.KindWire})

		return nil
	}

	prev := a
	for i, it := range items {
		next := z
		if i < len(items)-1 {
			next = b.addVertex()
		}
		if err := b.expand(it, prev, next); err != nil {
			return err
		}
		prev = next
	}

	return nil
}
