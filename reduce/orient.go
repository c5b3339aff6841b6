package reduce

import "github.com/katalvlaran/voltgraph/circuit"

// Reverse flips the orientation of a tree expression.
//
// Resistors and ammeters are orientation-free and returned as-is. Sources
// negate their value. A series reverses its child order and each child; a
// parallel keeps its branch order but reverses each branch individually.
func Reverse(it circuit.Item) circuit.Item {
	switch v := it.(type) {
	case *circuit.Resistor:
		return v
	case *circuit.Ammeter:
		return v
	case *circuit.VSource:
		return &circuit.VSource{ID: v.ID, Name: v.Name, Volts: -v.Volts}
	case *circuit.ISource:
		return &circuit.ISource{ID: v.ID, Name: v.Name, Amps: -v.Amps}
	case *circuit.Series:
		items := make([]circuit.Item, len(v.Items))
		for i, child := range v.Items {
			items[len(v.Items)-1-i] = Reverse(child)
		}

		return &circuit.Series{ID: v.ID, Items: items}
	case *circuit.Parallel:
		branches := make([]circuit.Branch, len(v.Branches))
		for i, b := range v.Branches {
			items := make([]circuit.Item, len(b.Items))
			for j, child := range b.Items {
				items[len(b.Items)-1-j] = Reverse(child)
			}
			branches[i] = circuit.Branch{ID: b.ID, Name: b.Name, Items: items}
		}

		return &circuit.Parallel{ID: v.ID, Branches: branches}
	default:
		return it
	}
}
