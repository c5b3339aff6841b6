// SPDX-License-Identifier: MIT
//
// File: circuitikz.go
// Role: drawables → circuitikz environment.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/voltgraph/circuit"
)

// CircuitikZ emits a circuitikz environment for the drawables, one \draw per
// drawable, using european component symbols.
func CircuitikZ(ds []Drawable) string {
	var b strings.Builder
	b.WriteString("\\begin{circuitikz}\n")
	b.WriteString("  \\ctikzset{european}\n")
	for _, d := range ds {
		switch v := d.(type) {
		case *Wire:
			b.WriteString("  \\draw ")
			for i, p := range v.Points {
				if i > 0 {
					b.WriteString(" -- ")
				}
				b.WriteString(coord(p))
			}
			b.WriteString(";\n")
		case *Component:
			fmt.Fprintf(&b, "  \\draw %s to[%s] %s;\n", coord(v.From), componentOptions(v), coord(v.To))
		case *Terminal:
			fmt.Fprintf(&b, "  \\draw %s node[circ]{} node[above]{$%s$};\n", coord(v.At), v.Label)
		}
	}
	b.WriteString("\\end{circuitikz}\n")

	return b.String()
}

// componentOptions builds the to[...] option list: symbol, label and the
// optional current arrow whose direction follows the solved current's sign.
func componentOptions(c *Component) string {
	opts := tikzSymbol(c.Kind)
	if c.Name != "" {
		opts += "=$" + c.Name + "$"
	}
	if c.Current != nil {
		if *c.Current >= 0 {
			opts += ", i>^=$" + formatQuantity(*c.Current) + "$"
		} else {
			opts += ", i<^=$" + formatQuantity(-*c.Current) + "$"
		}
	}

	return opts
}

// tikzSymbol maps component kinds to circuitikz element names.
func tikzSymbol(k circuit.EdgeKind) string {
	switch k {
	case circuit.KindAmmeter:
		return "ammeter"
	case circuit.KindVSource:
		return "V"
	case circuit.KindISource:
		return "I"
	default:
		return "R"
	}
}

func coord(p Point) string {
	return "(" + formatQuantity(p.X) + "," + formatQuantity(p.Y) + ")"
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
