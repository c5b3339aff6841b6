// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: node/edge circuit model (editor form) and its validation.

package circuit

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the node/edge circuit model.
var (
	// ErrMissingNode indicates an edge endpoint that resolves to no vertex.
	ErrMissingNode = errors.New("circuit: edge references a missing node")

	// ErrTerminalsEqual indicates the "+" and "−" references name the same vertex.
	ErrTerminalsEqual = errors.New("circuit: plus and minus terminals coincide")

	// ErrBadOhms indicates a resistance that is not finite and strictly positive.
	ErrBadOhms = errors.New("circuit: resistance must be finite and positive")

	// ErrBadSourceValue indicates a non-finite voltage or current source value.
	ErrBadSourceValue = errors.New("circuit: source value must be finite")
)

// EdgeKind enumerates the edge variants of the editor multigraph.
type EdgeKind uint8

const (
	// KindWire is an undirected zero-impedance connection; canonicalization
	// contracts its endpoints into one super-node.
	KindWire EdgeKind = iota

	// KindResistor is an undirected resistor with finite positive Ohms.
	KindResistor

	// KindAmmeter is an ideal (0 Ω) current meter; its direction is A→B.
	KindAmmeter

	// KindVSource is an independent voltage source; A is "+", B is "−".
	KindVSource

	// KindISource is an independent current source injecting Amps from A to B.
	KindISource
)

// String returns the lowercase kind name used in the persisted form.
func (k EdgeKind) String() string {
	switch k {
	case KindWire:
		return "wire"
	case KindResistor:
		return "resistor"
	case KindAmmeter:
		return "ammeter"
	case KindVSource:
		return "vsource"
	case KindISource:
		return "isource"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// Vertex is a node of the editor multigraph.
//
// ID uniquely identifies the vertex; X and Y are display coordinates and do
// not participate in analysis.
type Vertex struct {
	ID    string
	Label string
	X, Y  float64
}

// Edge is a typed connection between two vertices.
//
// Exactly one of Ohms, Volts or Amps is meaningful, selected by Kind; the
// others are zero. Orientation semantics follow Kind: resistors and wires are
// undirected, an ammeter measures A→B, a vsource holds A at "+" and B at "−",
// an isource injects current A→B.
type Edge struct {
	ID    string
	Label string
	A, B  string
	Kind  EdgeKind
	Ohms  float64
	Volts float64
	Amps  float64
}

// Circuit is the editor's mutable node/edge form. The analysis pipeline
// treats it as read-only input and re-derives every output on change.
//
// PlusID and MinusID optionally name the reference terminals; resolution of
// absent terminals happens during canonicalization.
type Circuit struct {
	Vertices []Vertex
	Edges    []Edge
	PlusID   string
	MinusID  string
}

// VertexIndex returns a lookup from vertex ID to its position in Vertices.
// Insertion order is the deterministic iteration order everywhere else.
func (c *Circuit) VertexIndex() map[string]int {
	idx := make(map[string]int, len(c.Vertices))
	for i, v := range c.Vertices {
		idx[v.ID] = i
	}

	return idx
}

// Validate checks the structural invariants of the editor form.
//
// Checks, edge by edge in insertion order:
//  1. Every edge endpoint resolves to a live vertex (ErrMissingNode).
//  2. Resistor ohms are finite and strictly positive (ErrBadOhms).
//  3. Source volts/amps are finite (ErrBadSourceValue).
//
// Then, after all edges: when both terminal references are set they differ
// (ErrTerminalsEqual).
//
// The first failure is returned; edge failures are wrapped with the
// offending edge ID.
func (c *Circuit) Validate() error {
	idx := c.VertexIndex()
	for _, e := range c.Edges {
		if _, ok := idx[e.A]; !ok {
			return fmt.Errorf("edge %q endpoint a=%q: %w", e.ID, e.A, ErrMissingNode)
		}
		if _, ok := idx[e.B]; !ok {
			return fmt.Errorf("edge %q endpoint b=%q: %w", e.ID, e.B, ErrMissingNode)
		}
		switch e.Kind {
		case KindResistor:
			if !isFinite(e.Ohms) || e.Ohms <= 0 {
				return fmt.Errorf("edge %q ohms=%g: %w", e.ID, e.Ohms, ErrBadOhms)
			}
		case KindVSource:
			if !isFinite(e.Volts) {
				return fmt.Errorf("edge %q volts=%g: %w", e.ID, e.Volts, ErrBadSourceValue)
			}
		case KindISource:
			if !isFinite(e.Amps) {
				return fmt.Errorf("edge %q amps=%g: %w", e.ID, e.Amps, ErrBadSourceValue)
			}
		}
	}
	if c.PlusID != "" && c.MinusID != "" && c.PlusID == c.MinusID {
		return ErrTerminalsEqual
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
