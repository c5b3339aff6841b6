// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: level/reduction records, options and the trace sentinel error set.

package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voltgraph/circuit"
)

// DefaultMaxLevels bounds the number of reduction levels. Every level
// replaces at least two atoms with one equivalent, so a tree of n atoms needs
// fewer than n levels; larger trees stop at the ceiling with ErrLevelLimit.
const DefaultMaxLevels = 50

// Sentinel errors for the reduction trace.
var (
	// ErrZeroOhmSeries indicates a series run that sums to 0 Ω.
	ErrZeroOhmSeries = errors.New("trace: zero-ohm series run creates a short")

	// ErrAmmeterShort indicates a parallel branch containing only ammeters.
	ErrAmmeterShort = errors.New("trace: ammeter-only parallel branch creates a short")

	// ErrEmptyBranch indicates a parallel branch with no items.
	ErrEmptyBranch = errors.New("trace: empty parallel branch creates a short")

	// ErrLevelLimit indicates the level ceiling was reached.
	ErrLevelLimit = errors.New("trace: reduction limit reached")

	// ErrNilRoot indicates a nil tree was passed to Build.
	ErrNilRoot = errors.New("trace: nil root item")
)

// ReductionKind discriminates series from parallel collapses.
type ReductionKind uint8

const (
	// ReductionSeries is a collapse of consecutive resistive atoms into their sum.
	ReductionSeries ReductionKind = iota

	// ReductionParallel is a collapse of an all-resistive parallel block.
	ReductionParallel
)

// String returns "series" or "parallel".
func (k ReductionKind) String() string {
	if k == ReductionParallel {
		return "parallel"
	}

	return "series"
}

// Reduction records one collapse performed inside a level.
type Reduction struct {
	// Kind is series or parallel.
	Kind ReductionKind

	// Depth is the candidate's nesting depth from the root at collapse time.
	Depth int

	// Name is the generated equivalent's display name, e.g. "R_{2.1}".
	Name string

	// Ohms is the equivalent resistance.
	Ohms float64

	// InputOhms lists the collapsed input resistances in traversal order
	// (per-branch totals for a parallel collapse).
	InputOhms []float64

	// Formula is the LaTeX-friendly presentation, e.g. "R_{2.1} = 100 + 200 = 300".
	Formula string
}

// Level is one step of the reduction trace.
type Level struct {
	// Index is the level number; level 0 is the untouched tree.
	Index int

	// Circuit is the tree after applying this level's reductions.
	Circuit circuit.Item

	// Reductions lists the collapses performed, in traversal order.
	Reductions []Reduction

	// Formula joins the per-reduction formulas for presentation.
	Formula string
}

// Trace is the ordered list of levels.
type Trace struct {
	Levels []Level
}

// Final returns the last level's circuit.
func (tr *Trace) Final() circuit.Item {
	return tr.Levels[len(tr.Levels)-1].Circuit
}

// Option configures Build.
type Option func(*options)

type options struct {
	maxLevels int
}

// WithMaxLevels overrides DefaultMaxLevels. Panics if n < 1 (programmer error).
func WithMaxLevels(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("trace: WithMaxLevels(%d): ceiling must be >= 1", n))
	}

	return func(o *options) { o.maxLevels = n }
}

func gatherOptions(opts []Option) options {
	o := options{maxLevels: DefaultMaxLevels}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
