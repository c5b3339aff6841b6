package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voltgraph/canon"
	"github.com/katalvlaran/voltgraph/circuit"
	"github.com/katalvlaran/voltgraph/solve"
	"github.com/katalvlaran/voltgraph/superpos"
	"github.com/katalvlaran/voltgraph/trace"
)

// seriesPair is scenario S1: 12 V across 100 Ω + 200 Ω in series.
func seriesPair() *circuit.Circuit {
	return &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "m"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "v1", A: "p", B: "q", Kind: circuit.KindVSource, Volts: 12},
			{ID: "r1", A: "p", B: "m", Kind: circuit.KindResistor, Ohms: 100},
			{ID: "r2", A: "m", B: "q", Kind: circuit.KindResistor, Ohms: 200},
		},
		PlusID:  "p",
		MinusID: "q",
	}
}

func TestSolve_TwoSeriesResistors(t *testing.T) {
	sol, err := solve.Solve(seriesPair())
	require.NoError(t, err)
	require.Len(t, sol.Resistors, 2)

	r1, r2 := sol.Resistors[0], sol.Resistors[1]
	assert.Equal(t, "R1", r1.Name)
	assert.Equal(t, "R2", r2.Name)
	assert.InDelta(t, 0.04, r1.Current, 1e-9)
	assert.InDelta(t, 4, r1.Voltage, 1e-9)
	assert.InDelta(t, 8, r2.Voltage, 1e-9)

	// KVL around the single loop: the drops sum to the supply voltage.
	assert.InDelta(t, 12, r1.Voltage+r2.Voltage, 1e-9)
}

func TestSolve_TwoParallelResistors(t *testing.T) {
	// Scenario S2: 100 Ω ∥ 100 Ω under 10 V.
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "v1", A: "p", B: "q", Kind: circuit.KindVSource, Volts: 10},
			{ID: "r1", A: "p", B: "q", Kind: circuit.KindResistor, Ohms: 100},
			{ID: "r2", A: "p", B: "q", Kind: circuit.KindResistor, Ohms: 100},
		},
	}

	sol, err := solve.Solve(c)
	require.NoError(t, err)
	require.Len(t, sol.Resistors, 2)
	for _, r := range sol.Resistors {
		assert.InDelta(t, 0.1, r.Current, 1e-9, "branch %s", r.Name)
	}
	// Both branch currents flow out of the source: 0.2 A total.
	assert.InDelta(t, -0.2, sol.Summary.SourceCurrents["v1"], 1e-9)
}

func TestSolve_ExternalSupply(t *testing.T) {
	// Scenario S6: a passive 100+200 Ω chain driven by an injected 9 V supply.
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "m"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "r1", A: "p", B: "m", Kind: circuit.KindResistor, Ohms: 100},
			{ID: "r2", A: "m", B: "q", Kind: circuit.KindResistor, Ohms: 200},
		},
		PlusID:  "p",
		MinusID: "q",
	}

	_, err := solve.Solve(c)
	require.ErrorIs(t, err, superpos.ErrNoSources, "a passive network needs a supply")

	sol, err := solve.Solve(c, solve.WithExternalSupply(9))
	require.NoError(t, err)
	require.True(t, sol.HasSupply)
	assert.InDelta(t, 0.03, sol.SupplyCurrent, 1e-9)
	assert.InDelta(t, 0.03, sol.Resistors[0].Current, 1e-9)

	// The injected source carries the reserved id.
	_, ok := sol.Summary.SourceCurrents[solve.ExternalSupplyID]
	require.True(t, ok)
}

func TestSolve_AmmeterReading(t *testing.T) {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "m"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "v1", A: "p", B: "q", Kind: circuit.KindVSource, Volts: 12},
			{ID: "r1", A: "p", B: "m", Kind: circuit.KindResistor, Ohms: 300},
			{ID: "a1", A: "m", B: "q", Kind: circuit.KindAmmeter},
		},
	}

	sol, err := solve.Solve(c)
	require.NoError(t, err)
	require.Len(t, sol.Ammeters, 1)
	assert.Equal(t, "A1", sol.Ammeters[0].Name)
	assert.InDelta(t, 0.04, sol.Ammeters[0].Current, 1e-9)
}

func TestReduce_EndToEnd(t *testing.T) {
	tr, err := solve.Reduce(seriesPair())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tr.Levels), 2)
	last := tr.Levels[len(tr.Levels)-1]
	require.NotEmpty(t, last.Reductions)
}

func TestReduce_ShortKeepsPartialTrace(t *testing.T) {
	// Scenario S3: a resistor in parallel with an ammeter-only branch.
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "p"}, {ID: "q"}},
		Edges: []circuit.Edge{
			{ID: "r1", A: "p", B: "q", Kind: circuit.KindResistor, Ohms: 100},
			{ID: "a1", A: "p", B: "q", Kind: circuit.KindAmmeter},
		},
		PlusID:  "p",
		MinusID: "q",
	}

	tr, err := solve.Reduce(c)
	require.ErrorIs(t, err, trace.ErrAmmeterShort)
	require.NotNil(t, tr)
	require.Len(t, tr.Levels, 1)
}

func TestAssignLabels_ClaimsAndGaps(t *testing.T) {
	g := &canon.Graph{
		NodeCount: 2,
		Elements: []canon.Element{
			&canon.Resistor{ID: "x", Name: "R2", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "y", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "z", Name: "R_{5}", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "w", N1: 0, N2: 1, Ohms: 1},
		},
	}

	labels, err := solve.AssignLabels(g)
	require.NoError(t, err)
	assert.Equal(t, 2, labels.Resistors["x"])
	assert.Equal(t, 1, labels.Resistors["y"], "first gap")
	assert.Equal(t, 5, labels.Resistors["z"])
	assert.Equal(t, 3, labels.Resistors["w"], "next gap after 2")
}

func TestAssignLabels_AllClaimForms(t *testing.T) {
	g := &canon.Graph{
		NodeCount: 2,
		Elements: []canon.Element{
			&canon.Resistor{ID: "a", Name: "R1", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "b", Name: "R_2", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "c", Name: "R{3}", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "d", Name: "R_{4}", N1: 0, N2: 1, Ohms: 1},
			&canon.Ammeter{ID: "e", Name: "A_{2}", N1: 0, N2: 1},
		},
	}

	labels, err := solve.AssignLabels(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}, labels.Resistors)
	assert.Equal(t, map[string]int{"e": 2}, labels.Ammeters)
}

func TestAssignLabels_DuplicateClaim(t *testing.T) {
	g := &canon.Graph{
		NodeCount: 2,
		Elements: []canon.Element{
			&canon.Resistor{ID: "a", Name: "R1", N1: 0, N2: 1, Ohms: 1},
			&canon.Resistor{ID: "b", Name: "R_{1}", N1: 0, N2: 1, Ohms: 1},
		},
	}

	_, err := solve.AssignLabels(g)
	require.ErrorIs(t, err, solve.ErrDuplicateLabel)
}

func TestAssignLabels_InvalidLabels(t *testing.T) {
	for _, bad := range []string{"R0", "Rx", "foo", "A1", "R_{3"} {
		g := &canon.Graph{
			NodeCount: 2,
			Elements:  []canon.Element{&canon.Resistor{ID: "a", Name: bad, N1: 0, N2: 1, Ohms: 1}},
		}
		_, err := solve.AssignLabels(g)
		require.ErrorIs(t, err, solve.ErrBadLabel, "label %q", bad)
	}
}
