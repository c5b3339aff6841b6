// SPDX-License-Identifier: MIT
//
// File: orchestrator.go
// Role: deepest-first level scheduler; collapses all candidates at the
// current maximum depth per level and records the trace.

package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/voltgraph/circuit"
)

// Build produces the reduction trace for a series/parallel tree.
//
// Steps:
//  1. Record level 0 (the untouched tree).
//  2. While candidates remain: find the maximum candidate depth, collapse
//     every candidate at exactly that depth, record the level.
//  3. Stop when no candidate remains or the level ceiling is hit.
//
// Partial results: on a short-circuit or the ceiling, the levels computed so
// far are returned alongside the error.
func Build(root circuit.Item, opts ...Option) (*Trace, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o := gatherOptions(opts)

	levels := []Level{{Index: 0, Circuit: root}}
	eqIDs := circuit.NewIDSeq("eq")
	current := root

	for {
		target := deepestCandidate(current)
		if target < 0 {
			return &Trace{Levels: levels}, nil
		}
		if len(levels) > o.maxLevels {
			return &Trace{Levels: levels}, ErrLevelLimit
		}

		rec := &recorder{level: len(levels), target: target, ids: eqIDs}
		next, err := rec.collapseItem(current, 0)
		if err != nil {
			return &Trace{Levels: levels}, err
		}
		levels = append(levels, Level{
			Index:      len(levels),
			Circuit:    next,
			Reductions: rec.reductions,
			Formula:    joinFormulas(rec.reductions),
		})
		current = next
	}
}

// isResistive reports whether the item is a resistor or an ammeter — the only
// atoms that participate in numeric collapsing. Sources break runs.
func isResistive(it circuit.Item) bool {
	switch it.(type) {
	case *circuit.Resistor, *circuit.Ammeter:
		return true
	default:
		return false
	}
}

// atomOhms returns a resistive atom's resistance; ammeters are 0 Ω.
func atomOhms(it circuit.Item) float64 {
	if r, ok := it.(*circuit.Resistor); ok {
		return r.Ohms
	}

	return 0
}

// allResistive reports whether every item in the list is a resistive atom.
func allResistive(items []circuit.Item) bool {
	for _, it := range items {
		if !isResistive(it) {
			return false
		}
	}

	return true
}

// purelyResistiveParallel reports whether the parallel block is collapsible:
// ≥2 branches, each consisting solely of resistive atoms. An empty branch
// counts — collapsing it is what surfaces ErrEmptyBranch.
func purelyResistiveParallel(p *circuit.Parallel) bool {
	if len(p.Branches) < 2 {
		return false
	}
	for _, b := range p.Branches {
		if !allResistive(b.Items) {
			return false
		}
	}

	return true
}

// deepestCandidate returns the maximum candidate depth, or -1 when the tree
// has no collapsible subtree left.
func deepestCandidate(root circuit.Item) int {
	best := -1
	note := func(d int) {
		if d > best {
			best = d
		}
	}

	var walkItem func(it circuit.Item, depth int)
	var walkList func(items []circuit.Item, depth int)

	walkItem = func(it circuit.Item, depth int) {
		switch v := it.(type) {
		case *circuit.Series:
			walkList(v.Items, depth)
		case *circuit.Parallel:
			if purelyResistiveParallel(v) {
				note(depth)
			}
			// Branch runs sit deeper than the block itself and must win
			// the deepest-first race, so always descend.
			for _, b := range v.Branches {
				walkList(b.Items, depth+1)
			}
		}
	}
	walkList = func(items []circuit.Item, depth int) {
		if len(items) >= 2 && allResistive(items) {
			note(depth) // pure-atomic block collapses whole

			return
		}
		run := 0
		for _, it := range items {
			if isResistive(it) {
				run++

				continue
			}
			if run >= 2 {
				note(depth + 1)
			}
			run = 0
			walkItem(it, depth+1)
		}
		if run >= 2 {
			note(depth + 1)
		}
	}

	walkItem(root, 0)

	return best
}

// recorder carries the per-level collapse state.
type recorder struct {
	level      int
	target     int
	counter    int
	ids        *circuit.IDSeq
	reductions []Reduction
}

// collapseItem rebuilds the subtree, collapsing candidates at exactly the
// target depth.
func (r *recorder) collapseItem(it circuit.Item, depth int) (circuit.Item, error) {
	switch v := it.(type) {
	case *circuit.Series:
		items, err := r.collapseList(v.Items, depth)
		if err != nil {
			return nil, err
		}

		return circuit.NewSeries(v.ID, items...), nil
	case *circuit.Parallel:
		if purelyResistiveParallel(v) && depth == r.target {
			return r.collapseParallel(v, depth)
		}
		branches := make([]circuit.Branch, len(v.Branches))
		for i, b := range v.Branches {
			items, err := r.collapseList(b.Items, depth+1)
			if err != nil {
				return nil, err
			}
			branches[i] = circuit.Branch{ID: b.ID, Name: b.Name, Items: items}
		}

		return circuit.NewParallel(v.ID, branches...), nil
	default:
		return it, nil
	}
}

// collapseList rebuilds one item list: a pure-atomic list collapses whole at
// the target depth, otherwise runs of ≥2 consecutive resistive atoms collapse
// one nesting level deeper and composite children recurse.
func (r *recorder) collapseList(items []circuit.Item, depth int) ([]circuit.Item, error) {
	if len(items) >= 2 && allResistive(items) {
		if depth != r.target {
			return items, nil
		}
		eq, err := r.collapseRun(items, depth)
		if err != nil {
			return nil, err
		}

		return []circuit.Item{eq}, nil
	}

	out := make([]circuit.Item, 0, len(items))
	var run []circuit.Item
	flush := func() error {
		if len(run) >= 2 && depth+1 == r.target {
			eq, err := r.collapseRun(run, depth+1)
			if err != nil {
				return err
			}
			out = append(out, eq)
		} else {
			out = append(out, run...)
		}
		run = nil

		return nil
	}

	for _, it := range items {
		if isResistive(it) {
			run = append(run, it)

			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		child, err := r.collapseItem(it, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

// collapseRun folds consecutive resistive atoms into their series equivalent.
func (r *recorder) collapseRun(run []circuit.Item, depth int) (circuit.Item, error) {
	inputs := make([]float64, len(run))
	var sum float64
	for i, it := range run {
		inputs[i] = atomOhms(it)
		sum += inputs[i]
	}
	if sum == 0 {
		return nil, ErrZeroOhmSeries
	}

	name := r.nextName()
	formula := fmt.Sprintf("%s = %s = %s", name, joinOhms(inputs, " + ", false), formatOhms(sum))
	r.reductions = append(r.reductions, Reduction{
		Kind:      ReductionSeries,
		Depth:     depth,
		Name:      name,
		Ohms:      sum,
		InputOhms: inputs,
		Formula:   formula,
	})

	return &circuit.Resistor{ID: r.ids.Next(), Name: name, Ohms: sum, Generated: true}, nil
}

// collapseParallel folds an all-resistive parallel block into its equivalent.
func (r *recorder) collapseParallel(p *circuit.Parallel, depth int) (circuit.Item, error) {
	inputs := make([]float64, len(p.Branches))
	var inv float64
	for i, b := range p.Branches {
		if len(b.Items) == 0 {
			return nil, ErrEmptyBranch
		}
		var sum float64
		for _, it := range b.Items {
			sum += atomOhms(it)
		}
		if sum == 0 {
			return nil, ErrAmmeterShort
		}
		inputs[i] = sum
		inv += 1 / sum
	}
	eq := 1 / inv

	name := r.nextName()
	formula := fmt.Sprintf("%s = \\left(%s\\right)^{-1} = %s", name, joinOhms(inputs, " + ", true), formatOhms(eq))
	r.reductions = append(r.reductions, Reduction{
		Kind:      ReductionParallel,
		Depth:     depth,
		Name:      name,
		Ohms:      eq,
		InputOhms: inputs,
		Formula:   formula,
	})

	return &circuit.Resistor{ID: r.ids.Next(), Name: name, Ohms: eq, Generated: true}, nil
}

// nextName mints the level.counter display name for a generated equivalent.
func (r *recorder) nextName() string {
	r.counter++

	return fmt.Sprintf("R_{%d.%d}", r.level, r.counter)
}

// formatOhms renders a resistance with the shortest exact representation.
func formatOhms(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// joinOhms joins values with sep, optionally as reciprocals (1/x terms).
func joinOhms(vals []float64, sep string, reciprocal bool) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if reciprocal {
			parts[i] = "1/" + formatOhms(v)
		} else {
			parts[i] = formatOhms(v)
		}
	}

	return strings.Join(parts, sep)
}

// joinFormulas assembles a level's presentation string.
func joinFormulas(reds []Reduction) string {
	if len(reds) == 0 {
		return ""
	}
	parts := make([]string, len(reds))
	for i, red := range reds {
		parts[i] = red.Formula
	}

	return strings.Join(parts, " \\\\ ")
}
