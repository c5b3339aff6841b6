package canon_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/voltgraph/canon"
	"github.com/katalvlaran/voltgraph/circuit"
)

// CanonSuite exercises wire contraction, terminal resolution and the
// structural failure modes.
type CanonSuite struct {
	suite.Suite
}

func (s *CanonSuite) TestWireContraction() {
	// n1 ─wire─ n2 ─R─ n3: the wire collapses n1 and n2 into one super-node.
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "n1"}, {ID: "n2"}, {ID: "n3"}},
		Edges: []circuit.Edge{
			{ID: "w1", A: "n1", B: "n2", Kind: circuit.KindWire},
			{ID: "r1", A: "n2", B: "n3", Kind: circuit.KindResistor, Ohms: 50},
		},
		PlusID:  "n1",
		MinusID: "n3",
	}

	g, err := canon.Canonicalize(c)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, g.NodeCount)
	require.Equal(s.T(), g.SuperNode["n1"], g.SuperNode["n2"])
	require.NotEqual(s.T(), g.SuperNode["n1"], g.SuperNode["n3"])
	require.Len(s.T(), g.Elements, 1)

	r, ok := g.Elements[0].(*canon.Resistor)
	require.True(s.T(), ok)
	require.Equal(s.T(), 50.0, r.Ohms)
}

func (s *CanonSuite) TestTerminalDefaultsFromVSource() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}, {ID: "b"}},
		Edges: []circuit.Edge{
			{ID: "r1", A: "a", B: "b", Kind: circuit.KindResistor, Ohms: 10},
			{ID: "v1", A: "b", B: "a", Kind: circuit.KindVSource, Volts: 5},
		},
	}

	g, err := canon.Canonicalize(c)
	require.NoError(s.T(), err)
	// The first vsource defines the terminals: a="+" is vertex b here.
	require.Equal(s.T(), g.SuperNode["b"], g.Plus)
	require.Equal(s.T(), g.SuperNode["a"], g.Minus)
}

func (s *CanonSuite) TestTerminalDefaultsFirstTwoVertices() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "x"}, {ID: "y"}},
		Edges:    []circuit.Edge{{ID: "r1", A: "x", B: "y", Kind: circuit.KindResistor, Ohms: 1}},
	}

	g, err := canon.Canonicalize(c)
	require.NoError(s.T(), err)
	require.Equal(s.T(), g.SuperNode["x"], g.Plus)
	require.Equal(s.T(), g.SuperNode["y"], g.Minus)
}

func (s *CanonSuite) TestTerminalsShortedByWire() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []circuit.Edge{
			{ID: "w1", A: "a", B: "b", Kind: circuit.KindWire},
			{ID: "r1", A: "a", B: "c", Kind: circuit.KindResistor, Ohms: 1},
		},
		PlusID:  "a",
		MinusID: "b",
	}

	_, err := canon.Canonicalize(c)
	require.ErrorIs(s.T(), err, canon.ErrTerminalsShorted)
}

func (s *CanonSuite) TestVSourceShortedByWire() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []circuit.Edge{
			{ID: "w1", A: "a", B: "b", Kind: circuit.KindWire},
			{ID: "v1", A: "a", B: "b", Kind: circuit.KindVSource, Volts: 9},
			{ID: "r1", A: "b", B: "c", Kind: circuit.KindResistor, Ohms: 1},
		},
		PlusID:  "a",
		MinusID: "c",
	}

	_, err := canon.Canonicalize(c)
	require.ErrorIs(s.T(), err, canon.ErrVSourceShorted)
}

func (s *CanonSuite) TestCollapsedPassiveEdgeDropped() {
	// A resistor whose endpoints are wired together dissipates nothing and
	// is dropped; a 0 V source collapses silently too.
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []circuit.Edge{
			{ID: "w1", A: "a", B: "b", Kind: circuit.KindWire},
			{ID: "r1", A: "a", B: "b", Kind: circuit.KindResistor, Ohms: 7},
			{ID: "v0", A: "a", B: "b", Kind: circuit.KindVSource, Volts: 0},
			{ID: "r2", A: "b", B: "c", Kind: circuit.KindResistor, Ohms: 3},
		},
		PlusID:  "a",
		MinusID: "c",
	}

	g, err := canon.Canonicalize(c)
	require.NoError(s.T(), err)
	require.Len(s.T(), g.Elements, 1)
	require.Equal(s.T(), "r2", g.Elements[0].ElementID())
}

func (s *CanonSuite) TestTooFewNodes() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}, {ID: "b"}},
		Edges:    []circuit.Edge{{ID: "w1", A: "a", B: "b", Kind: circuit.KindWire}},
	}

	_, err := canon.Canonicalize(c)
	require.ErrorIs(s.T(), err, canon.ErrTooFewNodes)
}

func (s *CanonSuite) TestNoComponents() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		Edges:    []circuit.Edge{{ID: "w1", A: "a", B: "b", Kind: circuit.KindWire}},
		PlusID:   "a",
		MinusID:  "c",
	}

	_, err := canon.Canonicalize(c)
	require.ErrorIs(s.T(), err, canon.ErrNoComponents)
}

func (s *CanonSuite) TestMissingEndpoint() {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "a"}},
		Edges:    []circuit.Edge{{ID: "r1", A: "a", B: "nope", Kind: circuit.KindResistor, Ohms: 1}},
	}

	_, err := canon.Canonicalize(c)
	require.ErrorIs(s.T(), err, circuit.ErrMissingNode)
}

func TestCanonSuite(t *testing.T) {
	suite.Run(t, new(CanonSuite))
}

// reembed rebuilds an editor circuit from a canonical graph, one vertex per
// super-node, so canonicalization can be applied to its own output.
func reembed(g *canon.Graph) *circuit.Circuit {
	c := &circuit.Circuit{
		PlusID:  fmt.Sprintf("s%d", g.Plus),
		MinusID: fmt.Sprintf("s%d", g.Minus),
	}
	for i := 0; i < g.NodeCount; i++ {
		c.Vertices = append(c.Vertices, circuit.Vertex{ID: fmt.Sprintf("s%d", i)})
	}
	name := func(n int) string { return fmt.Sprintf("s%d", n) }
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *canon.Resistor:
			c.Edges = append(c.Edges, circuit.Edge{ID: e.ID, A: name(e.N1), B: name(e.N2), Kind: circuit.KindResistor, Ohms: e.Ohms})
		case *canon.Ammeter:
			c.Edges = append(c.Edges, circuit.Edge{ID: e.ID, A: name(e.N1), B: name(e.N2), Kind: circuit.KindAmmeter})
		case *canon.VSource:
			c.Edges = append(c.Edges, circuit.Edge{ID: e.ID, A: name(e.NPlus), B: name(e.NMinus), Kind: circuit.KindVSource, Volts: e.Volts})
		case *canon.ISource:
			c.Edges = append(c.Edges, circuit.Edge{ID: e.ID, A: name(e.NFrom), B: name(e.NTo), Kind: circuit.KindISource, Amps: e.Amps})
		}
	}

	return c
}

func TestCanonicalize_Idempotent(t *testing.T) {
	c := &circuit.Circuit{
		Vertices: []circuit.Vertex{{ID: "n1"}, {ID: "n2"}, {ID: "n3"}, {ID: "n4"}},
		Edges: []circuit.Edge{
			{ID: "w1", A: "n2", B: "n3", Kind: circuit.KindWire},
			{ID: "v1", A: "n1", B: "n4", Kind: circuit.KindVSource, Volts: 12},
			{ID: "r1", A: "n1", B: "n2", Kind: circuit.KindResistor, Ohms: 100},
			{ID: "r2", A: "n3", B: "n4", Kind: circuit.KindResistor, Ohms: 200},
		},
	}

	first, err := canon.Canonicalize(c)
	require.NoError(t, err)

	second, err := canon.Canonicalize(reembed(first))
	require.NoError(t, err)

	require.Equal(t, first.NodeCount, second.NodeCount)
	require.Equal(t, first.Plus, second.Plus)
	require.Equal(t, first.Minus, second.Minus)
	require.Equal(t, first.Elements, second.Elements)
}
