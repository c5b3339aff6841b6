// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: canonical graph types (element sum over super-node indices) and the
// canonicalization sentinel error set.

package canon

import "errors"

// Sentinel errors for canonicalization.
var (
	// ErrTerminalsShorted indicates the "+" and "−" terminals collapse into one super-node.
	ErrTerminalsShorted = errors.New("canon: terminals are shorted by wire")

	// ErrVSourceShorted indicates a non-zero voltage source whose endpoints collapse.
	ErrVSourceShorted = errors.New("canon: voltage source shorted by wire")

	// ErrTooFewNodes indicates fewer than two distinct super-nodes.
	ErrTooFewNodes = errors.New("canon: too few distinct nodes")

	// ErrNoComponents indicates no element survived wire contraction.
	ErrNoComponents = errors.New("canon: no components")
)

// Element is a non-wire circuit element over compact super-node indices.
// The variant set is closed: Resistor, Ammeter, VSource, ISource.
type Element interface {
	element()

	// ElementID returns the stable identifier inherited from the source edge.
	ElementID() string

	// ElementName returns the optional display label inherited from the source edge.
	ElementName() string
}

// Resistor is an undirected resistive element between super-nodes N1 and N2.
type Resistor struct {
	ID     string
	Name   string
	N1, N2 int
	Ohms   float64
}

// Ammeter is an ideal meter measuring current N1→N2. The MNA lowering models
// it as a zero-volt, non-independent voltage source so its branch current is
// recoverable from the augmented unknowns.
type Ammeter struct {
	ID     string
	Name   string
	N1, N2 int
}

// VSource is an independent voltage source holding NPlus above NMinus by Volts.
type VSource struct {
	ID            string
	Name          string
	NPlus, NMinus int
	Volts         float64
}

// ISource is an independent current source injecting Amps from NFrom to NTo.
type ISource struct {
	ID         string
	Name       string
	NFrom, NTo int
	Amps       float64
}

func (*Resistor) element() {}
func (*Ammeter) element()  {}
func (*VSource) element()  {}
func (*ISource) element()  {}

func (e *Resistor) ElementID() string { return e.ID }
func (e *Ammeter) ElementID() string  { return e.ID }
func (e *VSource) ElementID() string  { return e.ID }
func (e *ISource) ElementID() string  { return e.ID }

func (e *Resistor) ElementName() string { return e.Name }
func (e *Ammeter) ElementName() string  { return e.Name }
func (e *VSource) ElementName() string  { return e.Name }
func (e *ISource) ElementName() string  { return e.Name }

// Graph is the canonical form: the element list over 0-based super-node
// indices, the resolved terminals, and the vertex→super-node mapping.
//
// Elements preserve the insertion order of the source edges; that order is
// the deterministic iteration order for every downstream consumer.
type Graph struct {
	// NodeCount is the number of distinct super-nodes (indices 0..NodeCount-1).
	NodeCount int

	// Elements lists the surviving non-wire elements in edge insertion order.
	Elements []Element

	// Plus and Minus are the resolved terminal super-nodes.
	Plus, Minus int

	// SuperNode maps each original vertex ID to its super-node index.
	SuperNode map[string]int
}
