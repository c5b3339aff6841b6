package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voltgraph/circuit"
	"github.com/katalvlaran/voltgraph/circuitjson"
	"github.com/katalvlaran/voltgraph/render"
	"github.com/katalvlaran/voltgraph/solve"
	"github.com/katalvlaran/voltgraph/trace"
)

func sampleTree() circuit.Item {
	return circuit.NewSeries("s1",
		&circuit.VSource{ID: "v1", Name: "U_1", Volts: 12},
		&circuit.Resistor{ID: "r1", Name: "R1", Ohms: 100},
		circuit.NewParallel("p1",
			circuit.Branch{ID: "b1", Items: []circuit.Item{&circuit.Resistor{ID: "r2", Name: "R2", Ohms: 200}}},
			circuit.Branch{ID: "b2", Items: []circuit.Item{&circuit.Resistor{ID: "r3", Name: "R3", Ohms: 200}}},
		),
	)
}

func TestLayout_StraightLine(t *testing.T) {
	ds := render.Layout(sampleTree())

	var components, terminals int
	for _, d := range ds {
		switch d.(type) {
		case *render.Component:
			components++
		case *render.Terminal:
			terminals++
		}
	}
	require.Equal(t, 4, components)
	require.Equal(t, 2, terminals)
}

func TestLayout_ParallelRowsAligned(t *testing.T) {
	ds := render.Layout(circuit.NewParallel("p1",
		circuit.Branch{ID: "b1", Items: []circuit.Item{
			&circuit.Resistor{ID: "r1", Ohms: 1},
			&circuit.Resistor{ID: "r2", Ohms: 2},
		}},
		circuit.Branch{ID: "b2", Items: []circuit.Item{&circuit.Resistor{ID: "r3", Ohms: 3}}},
	))

	// The short branch is padded by a wire to the shared end bus.
	var padded bool
	for _, d := range ds {
		if w, ok := d.(*render.Wire); ok && len(w.Points) == 2 {
			if w.Points[0].Y == w.Points[1].Y && w.Points[0].Y != 0 {
				padded = true
			}
		}
	}
	assert.True(t, padded, "expected a horizontal pad wire on the short branch")
}

func TestCircuitikZ_Emission(t *testing.T) {
	out := render.CircuitikZ(render.Layout(sampleTree()))

	assert.Contains(t, out, "\\begin{circuitikz}")
	assert.Contains(t, out, "\\ctikzset{european}")
	assert.Contains(t, out, "to[V=$U_1$]")
	assert.Contains(t, out, "to[R=$R1$]")
	assert.Contains(t, out, "node[circ]{}")
	assert.Contains(t, out, "\\end{circuitikz}")
}

func TestCircuitikZ_CurrentArrowFollowsSign(t *testing.T) {
	ds := render.Layout(circuit.NewSeries("s1",
		&circuit.Resistor{ID: "r1", Name: "R1", Ohms: 100},
		&circuit.Resistor{ID: "r2", Name: "R2", Ohms: 100},
	))
	render.AnnotateCurrents(ds, map[string]float64{"r1": 0.25, "r2": -0.25})

	out := render.CircuitikZ(ds)
	assert.Contains(t, out, "i>^=$0.25$", "positive current points forward")
	assert.Contains(t, out, "i<^=$0.25$", "negative current points backward")
}

func TestLayoutDocument_URoute(t *testing.T) {
	doc := &circuitjson.Document{
		ID:     "c1",
		Route:  circuitjson.RouteU,
		Top:    []circuit.Item{&circuit.Resistor{ID: "r1", Ohms: 10}},
		Right:  []circuit.Item{&circuit.VSource{ID: "v1", Volts: 5}},
		Bottom: []circuit.Item{&circuit.Resistor{ID: "r2", Ohms: 20}},
	}

	ds := render.LayoutDocument(doc)

	var byID = map[string]*render.Component{}
	for _, d := range ds {
		if c, ok := d.(*render.Component); ok {
			byID[c.ID] = c
		}
	}
	require.Len(t, byID, 3)
	assert.Greater(t, byID["r1"].To.X, byID["r1"].From.X, "top runs rightwards")
	assert.Less(t, byID["v1"].To.Y, byID["v1"].From.Y, "right side runs downwards")
	assert.Less(t, byID["r2"].To.X, byID["r2"].From.X, "bottom runs leftwards")
}

func TestSolutionDoc_LevelsAndTables(t *testing.T) {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "m"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "v1", A: "p", B: "q", Kind: circuit.KindVSource, Volts: 12},
			{ID: "r1", A: "p", B: "m", Kind: circuit.KindResistor, Ohms: 100},
			{ID: "r2", A: "m", B: "q", Kind: circuit.KindResistor, Ohms: 200},
		},
		PlusID:  "p",
		MinusID: "q",
	}

	tr, err := solve.Reduce(c)
	require.NoError(t, err)
	sol, err := solve.Solve(c)
	require.NoError(t, err)

	doc := render.SolutionDoc(tr, sol)
	assert.Contains(t, doc, "Level 0")
	assert.Contains(t, doc, "Level 1")
	assert.Contains(t, doc, "R_{1.1} = 100 + 200 = 300")
	assert.Contains(t, doc, "\\begin{tabular}")
	assert.Contains(t, doc, "$I_{R1}$")
	assert.Contains(t, doc, "U_{R2}")

	reduceOnly := render.SolutionDoc(tr, nil)
	assert.NotContains(t, reduceOnly, "tabular")
}

func TestSolutionDoc_ExternalSupplyRow(t *testing.T) {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "r1", A: "p", B: "q", Kind: circuit.KindResistor, Ohms: 300},
		},
		PlusID:  "p",
		MinusID: "q",
	}

	tr, err := solve.Reduce(c)
	require.NoError(t, err)
	sol, err := solve.Solve(c, solve.WithExternalSupply(9))
	require.NoError(t, err)

	doc := render.SolutionDoc(tr, sol)
	assert.Contains(t, doc, "U_s")
	assert.Contains(t, doc, "0.03")
	assert.True(t, strings.Contains(doc, "\\subsection*{Superposition}"))
}

func TestSolutionDoc_FormulaStringsAreLaTeX(t *testing.T) {
	tree := circuit.NewParallel("p1",
		circuit.Branch{ID: "b1", Items: []circuit.Item{&circuit.Resistor{ID: "r1", Ohms: 100}}},
		circuit.Branch{ID: "b2", Items: []circuit.Item{&circuit.Resistor{ID: "r2", Ohms: 100}}},
	)
	tr, err := trace.Build(tree)
	require.NoError(t, err)

	doc := render.SolutionDoc(tr, nil)
	assert.Contains(t, doc, "\\left(1/100 + 1/100\\right)^{-1}")
}
