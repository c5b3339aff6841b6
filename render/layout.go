// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: tree → drawables on a 1 cm grid.

package render

import (
	"github.com/katalvlaran/voltgraph/circuit"
	"github.com/katalvlaran/voltgraph/circuitjson"
)

// componentSpan is the grid length one atom occupies, in cm.
const componentSpan = 2.0

// rowPitch is the perpendicular distance between parallel branches, in cm.
const rowPitch = 2.0

// Point is a grid coordinate in cm.
type Point struct {
	X, Y float64
}

// Drawable is one element of the wire-level picture. The variant set is
// closed: Wire, Component, Terminal.
type Drawable interface {
	drawable()
}

// Wire is a polyline of grid points.
type Wire struct {
	Points []Point
}

// Component is an oriented two-terminal element from From to To.
type Component struct {
	ID   string
	Kind circuit.EdgeKind
	Name string

	From, To Point

	// Current, when set, requests a current-arrow overlay whose direction
	// follows the sign.
	Current *float64
}

// Terminal is a labeled circle, used for the "+" and "−" reference points.
type Terminal struct {
	At    Point
	Label string
}

func (*Wire) drawable()      {}
func (*Component) drawable() {}
func (*Terminal) drawable()  {}

// Layout lays a tree out on a straight line, "+" on the left.
func Layout(root circuit.Item) []Drawable {
	l := &layouter{}
	start := Point{0, 0}
	end := l.item(root, start, right)
	l.out = append(l.out,
		&Terminal{At: start, Label: "+"},
		&Terminal{At: end, Label: "-"},
	)

	return l.out
}

// LayoutDocument lays a persisted circuit out following its route: straight
// routes on one line, U routes along the top, right and bottom sides of a
// rectangle.
func LayoutDocument(doc *circuitjson.Document) []Drawable {
	if doc.Route != circuitjson.RouteU {
		return Layout(doc.Tree())
	}

	l := &layouter{}
	start := Point{0, 0}
	cursor := start
	cursor = l.list(doc.Top, cursor, right)
	cursor = l.list(doc.Right, cursor, down)
	cursor = l.list(doc.Bottom, cursor, left)
	l.out = append(l.out,
		&Terminal{At: start, Label: "+"},
		&Terminal{At: cursor, Label: "-"},
	)

	return l.out
}

// dir is a unit step on the grid.
type dir struct {
	dx, dy float64
}

var (
	right = dir{1, 0}
	down  = dir{0, -1}
	left  = dir{-1, 0}
)

// perp returns the direction branches stack towards: the walk direction
// turned a quarter clockwise (downwards for a rightward walk, leftwards for
// a downward one, upwards for a leftward one).
func (d dir) perp() dir {
	return dir{d.dy, -d.dx}
}

func (p Point) step(d dir, units float64) Point {
	return Point{p.X + d.dx*units, p.Y + d.dy*units}
}

type layouter struct {
	out []Drawable
}

// item places one expression starting at p along d; returns the end point.
func (l *layouter) item(it circuit.Item, p Point, d dir) Point {
	switch v := it.(type) {
	case *circuit.Series:
		return l.list(v.Items, p, d)
	case *circuit.Parallel:
		return l.parallel(v, p, d)
	default:
		end := p.step(d, componentSpan)
		l.out = append(l.out, &Component{
			ID:   atomID(it),
			Kind: atomKind(it),
			Name: atomName(it),
			From: p,
			To:   end,
		})

		return end
	}
}

// list chains items along d; an empty list degenerates to a wire of one span.
func (l *layouter) list(items []circuit.Item, p Point, d dir) Point {
	if len(items) == 0 {
		end := p.step(d, componentSpan)
		l.out = append(l.out, &Wire{Points: []Point{p, end}})

		return end
	}
	cursor := p
	for _, it := range items {
		cursor = l.item(it, cursor, d)
	}

	return cursor
}

// parallel stacks branches perpendicular to d, pads short branches with
// wires, and closes both ends with bus wires.
func (l *layouter) parallel(par *circuit.Parallel, p Point, d dir) Point {
	span := 0.0
	for _, b := range par.Branches {
		if w := listSpan(b.Items); w > span {
			span = w
		}
	}
	end := p.step(d, span)

	pp := d.perp()
	for i, b := range par.Branches {
		rowStart := p.step(pp, rowPitch*float64(i))
		rowEnd := l.list(b.Items, rowStart, d)
		want := rowStart.step(d, span)
		if rowEnd != want {
			l.out = append(l.out, &Wire{Points: []Point{rowEnd, want}})
		}
	}

	rows := rowPitch * float64(len(par.Branches)-1)
	l.out = append(l.out,
		&Wire{Points: []Point{p, p.step(pp, rows)}},
		&Wire{Points: []Point{end, end.step(pp, rows)}},
	)

	return end
}

// listSpan is the grid length a list occupies along its direction.
func listSpan(items []circuit.Item) float64 {
	if len(items) == 0 {
		return componentSpan
	}
	var span float64
	for _, it := range items {
		span += itemSpan(it)
	}

	return span
}

func itemSpan(it circuit.Item) float64 {
	switch v := it.(type) {
	case *circuit.Series:
		return listSpan(v.Items)
	case *circuit.Parallel:
		var span float64
		for _, b := range v.Branches {
			if w := listSpan(b.Items); w > span {
				span = w
			}
		}

		return span
	default:
		return componentSpan
	}
}

func atomID(it circuit.Item) string {
	switch v := it.(type) {
	case *circuit.Resistor:
		return v.ID
	case *circuit.Ammeter:
		return v.ID
	case *circuit.VSource:
		return v.ID
	case *circuit.ISource:
		return v.ID
	default:
		return ""
	}
}

func atomName(it circuit.Item) string {
	switch v := it.(type) {
	case *circuit.Resistor:
		return v.Name
	case *circuit.Ammeter:
		return v.Name
	case *circuit.VSource:
		return v.Name
	case *circuit.ISource:
		return v.Name
	default:
		return ""
	}
}

func atomKind(it circuit.Item) circuit.EdgeKind {
	switch it.(type) {
	case *circuit.Ammeter:
		return circuit.KindAmmeter
	case *circuit.VSource:
		return circuit.KindVSource
	case *circuit.ISource:
		return circuit.KindISource
	default:
		return circuit.KindResistor
	}
}

// AnnotateCurrents attaches solved currents to matching components, keyed by
// element ID, enabling arrow overlays in the CircuitikZ export.
func AnnotateCurrents(ds []Drawable, currents map[string]float64) {
	for _, d := range ds {
		c, ok := d.(*Component)
		if !ok {
			continue
		}
		if i, found := currents[c.ID]; found {
			v := i
			c.Current = &v
		}
	}
}
