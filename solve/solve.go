// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: the end-to-end entry points tying canonicalization, reduction,
// superposition and labeling together.

package solve

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/voltgraph/canon"
	"github.com/katalvlaran/voltgraph/circuit"
	"github.com/katalvlaran/voltgraph/reduce"
	"github.com/katalvlaran/voltgraph/superpos"
	"github.com/katalvlaran/voltgraph/trace"
)

// ExternalSupplyID is the reserved identifier of the voltage source injected
// between the "+" and "−" terminals by WithExternalSupply.
const ExternalSupplyID = "external_supply"

// externalSupplyName is the display name of the injected supply.
const externalSupplyName = "U_s"

// Option configures Solve.
type Option func(*options)

type options struct {
	supplyVolts float64
	hasSupply   bool
}

// WithExternalSupply injects an independent voltage source of the given
// volts between "+" and "−". Required to drive a network with no internal
// independent source; legal alongside internal sources too.
func WithExternalSupply(volts float64) Option {
	return func(o *options) {
		o.supplyVolts = volts
		o.hasSupply = true
	}
}

// ResistorResult is one resistor's solved quantities under its presentation index.
type ResistorResult struct {
	ID      string
	Name    string // display label, e.g. "R1"
	Index   int
	Ohms    float64
	Current float64
	Voltage float64
}

// AmmeterResult is one ammeter's solved current under its presentation index.
type AmmeterResult struct {
	ID      string
	Name    string
	Index   int
	Current float64
}

// Solution is the end-to-end result of Solve.
type Solution struct {
	// Graph is the canonical graph the solution was computed on, including
	// the injected supply when one was requested.
	Graph *canon.Graph

	// Summary is the full superposition decomposition.
	Summary *superpos.Summary

	// Resistors and Ammeters are ordered by ascending presentation index.
	Resistors []ResistorResult
	Ammeters  []AmmeterResult

	// SupplyCurrent is the current the external supply delivers into the "+"
	// terminal (the total load current). Meaningful only when HasSupply.
	SupplyCurrent float64
	HasSupply     bool
}

// Solve runs the full pipeline on an editor circuit.
//
// Steps:
//  1. Canonicalize; the minus terminal becomes the MNA ground.
//  2. Inject the external supply, when requested, as an independent source
//     with the reserved id.
//  3. Run superposition (one MNA case per independent source).
//  4. Assign presentation indices and collect per-element quantities.
func Solve(c *circuit.Circuit, opts ...Option) (*Solution, error) {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	g, err := canon.Canonicalize(c)
	if err != nil {
		return nil, err
	}

	if o.hasSupply {
		if math.IsNaN(o.supplyVolts) || math.IsInf(o.supplyVolts, 0) {
			return nil, fmt.Errorf("external supply volts=%g: %w", o.supplyVolts, circuit.ErrBadSourceValue)
		}
		g.Elements = append(g.Elements, &canon.VSource{
			ID:     ExternalSupplyID,
			Name:   externalSupplyName,
			NPlus:  g.Plus,
			NMinus: g.Minus,
			Volts:  o.supplyVolts,
		})
	}

	summary, err := superpos.Run(g)
	if err != nil {
		return nil, err
	}

	labels, err := AssignLabels(g)
	if err != nil {
		return nil, err
	}

	sol := &Solution{Graph: g, Summary: summary, HasSupply: o.hasSupply}
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.Resistor:
			idx := labels.Resistors[e.ID]
			sol.Resistors = append(sol.Resistors, ResistorResult{
				ID:      e.ID,
				Name:    fmt.Sprintf("R%d", idx),
				Index:   idx,
				Ohms:    e.Ohms,
				Current: summary.ResistorCurrents[e.ID],
				Voltage: summary.ResistorVoltages[e.ID],
			})
		case *canon.Ammeter:
			idx := labels.Ammeters[e.ID]
			sol.Ammeters = append(sol.Ammeters, AmmeterResult{
				ID:      e.ID,
				Name:    fmt.Sprintf("A%d", idx),
				Index:   idx,
				Current: summary.AmmeterCurrents[e.ID],
			})
		}
	}
	sort.Slice(sol.Resistors, func(i, j int) bool { return sol.Resistors[i].Index < sol.Resistors[j].Index })
	sort.Slice(sol.Ammeters, func(i, j int) bool { return sol.Ammeters[i].Index < sol.Ammeters[j].Index })

	if o.hasSupply {
		// The auxiliary unknown is the current n+ → source → n−; the current
		// delivered into the circuit runs the other way through the source.
		sol.SupplyCurrent = -summary.SourceCurrents[ExternalSupplyID]
	}

	return sol, nil
}

// Reduce canonicalizes the circuit, rewrites it to a series/parallel tree
// and builds the reduction trace.
func Reduce(c *circuit.Circuit, opts ...trace.Option) (*trace.Trace, error) {
	g, err := canon.Canonicalize(c)
	if err != nil {
		return nil, err
	}
	tree, err := reduce.Reduce(g)
	if err != nil {
		return nil, err
	}

	return trace.Build(tree, opts...)
}

// Canonicalize exposes the canonical graph alone.
func Canonicalize(c *circuit.Circuit) (*canon.Graph, error) {
	return canon.Canonicalize(c)
}
