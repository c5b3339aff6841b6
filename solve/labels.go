// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: presentation index assignment for resistors and ammeters.

package solve

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/voltgraph/canon"
)

// Sentinel errors for labeling.
var (
	// ErrBadLabel indicates an explicit label that does not parse as an index claim.
	ErrBadLabel = errors.New("solve: invalid element label")

	// ErrDuplicateLabel indicates two elements claiming the same index.
	ErrDuplicateLabel = errors.New("solve: duplicate label index")
)

// labelPattern accepts R1, R_1, R{1} and R_{1} (any capital letter;
// parseClaim checks it against the element kind).
var labelPattern = regexp.MustCompile(`^([A-Z])(?:(\d+)|_(\d+)|\{(\d+)\}|_\{(\d+)\})$`)

// Labels maps element IDs to their presentation indices.
type Labels struct {
	Resistors map[string]int
	Ammeters  map[string]int
}

// AssignLabels computes presentation indices for every resistor and ammeter
// of the graph. Explicit valid claims win; the rest fill the smallest
// unclaimed positive integers in element order.
func AssignLabels(g *canon.Graph) (*Labels, error) {
	var resistors, ammeters []labelItem
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.Resistor:
			resistors = append(resistors, labelItem{id: e.ID, label: e.Name})
		case *canon.Ammeter:
			ammeters = append(ammeters, labelItem{id: e.ID, label: e.Name})
		}
	}

	r, err := assignIndices(resistors, 'R')
	if err != nil {
		return nil, err
	}
	a, err := assignIndices(ammeters, 'A')
	if err != nil {
		return nil, err
	}

	return &Labels{Resistors: r, Ammeters: a}, nil
}

type labelItem struct {
	id    string
	label string
}

// parseClaim extracts the claimed index from an explicit label, which must
// use the expected kind letter and a strictly positive index.
func parseClaim(label string, letter byte) (int, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil || m[1][0] != letter {
		return 0, fmt.Errorf("%q: %w", label, ErrBadLabel)
	}
	var digits string
	for _, g := range m[2:] {
		if g != "" {
			digits = g

			break
		}
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("%q: %w", label, ErrBadLabel)
	}

	return idx, nil
}

// assignIndices runs the two-pass assignment: claims first, gap-filling second.
func assignIndices(items []labelItem, letter byte) (map[string]int, error) {
	out := make(map[string]int, len(items))
	claimed := make(map[int]string, len(items))

	// Pass 1: explicit claims.
	for _, it := range items {
		if it.label == "" {
			continue
		}
		idx, err := parseClaim(it.label, letter)
		if err != nil {
			return nil, err
		}
		if other, taken := claimed[idx]; taken {
			return nil, fmt.Errorf("%c%d claimed by %q and %q: %w", letter, idx, other, it.id, ErrDuplicateLabel)
		}
		claimed[idx] = it.id
		out[it.id] = idx
	}

	// Pass 2: smallest unclaimed positive integer, in visitation order.
	next := 1
	for _, it := range items {
		if _, done := out[it.id]; done {
			continue
		}
		for claimed[next] != "" {
			next++
		}
		claimed[next] = it.id
		out[it.id] = next
		next++
	}

	return out, nil
}
