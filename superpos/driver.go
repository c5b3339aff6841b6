// SPDX-License-Identifier: MIT
//
// File: driver.go
// Role: per-source MNA cases, derived per-element quantities and linear sums.

package superpos

import (
	"fmt"

	"github.com/katalvlaran/voltgraph/canon"
	"github.com/katalvlaran/voltgraph/mna"
)

// Case is the MNA solution with exactly one independent source active, plus
// the per-element quantities derived from it.
type Case struct {
	Source Source

	// Result is the raw MNA solution of this case.
	Result *mna.Result

	// ResistorCurrents maps resistor ID to (V[n1]−V[n2])/R.
	ResistorCurrents map[string]float64

	// ResistorVoltages maps resistor ID to i·R.
	ResistorVoltages map[string]float64

	// AmmeterCurrents maps ammeter ID to its auxiliary branch current.
	AmmeterCurrents map[string]float64
}

// Summary is the full superposition decomposition: one case per independent
// source and the linear sums over all cases.
type Summary struct {
	Sources []Source
	Cases   []Case

	NodeVoltages     []float64
	SourceCurrents   map[string]float64
	ResistorCurrents map[string]float64
	ResistorVoltages map[string]float64
	AmmeterCurrents  map[string]float64
}

// Run solves one MNA case per independent source and sums the results.
// The minus terminal grounds every solve.
func Run(g *canon.Graph) (*Summary, error) {
	sources := independentSources(g)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	sum := &Summary{
		Sources:          sources,
		NodeVoltages:     make([]float64, g.NodeCount),
		SourceCurrents:   make(map[string]float64, len(sources)),
		ResistorCurrents: map[string]float64{},
		ResistorVoltages: map[string]float64{},
		AmmeterCurrents:  map[string]float64{},
	}

	for _, active := range sources {
		res, err := mna.Solve(Lower(g, active.ID), g.NodeCount, g.Minus)
		if err != nil {
			return nil, fmt.Errorf("superpos: case %s: %w", active.DisplayName(), err)
		}

		c := deriveCase(g, active, res)
		sum.Cases = append(sum.Cases, c)

		// Accumulate in case order; iteration order over elements is the
		// canonical element order, so float summation order is fixed.
		for i, v := range res.NodeVoltages {
			sum.NodeVoltages[i] += v
		}
		for _, s := range sources {
			sum.SourceCurrents[s.ID] += res.SourceCurrents[s.ID]
		}
		for _, el := range g.Elements {
			switch e := el.(type) {
			case *canon.Resistor:
				sum.ResistorCurrents[e.ID] += c.ResistorCurrents[e.ID]
				sum.ResistorVoltages[e.ID] += c.ResistorVoltages[e.ID]
			case *canon.Ammeter:
				sum.AmmeterCurrents[e.ID] += c.AmmeterCurrents[e.ID]
			}
		}
	}

	return sum, nil
}

// Lower translates canonical elements into the MNA element list with every
// independent source other than activeID deactivated. Ammeters lower to
// zero-volt non-independent voltage sources. Pass activeID == "" to keep all
// sources active (the single combined solve).
func Lower(g *canon.Graph, activeID string) []mna.Element {
	els := make([]mna.Element, 0, len(g.Elements))
	keep := func(id string) bool { return activeID == "" || id == activeID }
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.Resistor:
			els = append(els, &mna.Resistor{ID: e.ID, N1: e.N1, N2: e.N2, Ohms: e.Ohms})
		case *canon.Ammeter:
			els = append(els, &mna.VSource{ID: e.ID, NPlus: e.N1, NMinus: e.N2, Volts: 0, Independent: false})
		case *canon.VSource:
			volts := e.Volts
			if !keep(e.ID) {
				volts = 0
			}
			els = append(els, &mna.VSource{ID: e.ID, NPlus: e.NPlus, NMinus: e.NMinus, Volts: volts, Independent: true})
		case *canon.ISource:
			amps := e.Amps
			if !keep(e.ID) {
				amps = 0
			}
			els = append(els, &mna.ISource{ID: e.ID, NFrom: e.NFrom, NTo: e.NTo, Amps: amps})
		}
	}

	return els
}

// independentSources enumerates the graph's independent sources in element order.
func independentSources(g *canon.Graph) []Source {
	var out []Source
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.VSource:
			out = append(out, Source{ID: e.ID, Name: e.Name, Kind: SourceVoltage, Value: e.Volts})
		case *canon.ISource:
			out = append(out, Source{ID: e.ID, Name: e.Name, Kind: SourceCurrent, Value: e.Amps})
		}
	}

	return out
}

// deriveCase computes the per-element quantities of one case.
func deriveCase(g *canon.Graph, active Source, res *mna.Result) Case {
	c := Case{
		Source:           active,
		Result:           res,
		ResistorCurrents: map[string]float64{},
		ResistorVoltages: map[string]float64{},
		AmmeterCurrents:  map[string]float64{},
	}
	v := res.NodeVoltages
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.Resistor:
			i := (v[e.N1] - v[e.N2]) / e.Ohms
			c.ResistorCurrents[e.ID] = i
			c.ResistorVoltages[e.ID] = i * e.Ohms
		case *canon.Ammeter:
			c.AmmeterCurrents[e.ID] = res.SourceCurrents[e.ID]
		}
	}

	return c
}
