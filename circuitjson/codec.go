// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: persisted-form decoding (with legacy migration) and encoding.

package circuitjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/voltgraph/circuit"
)

// Sentinel errors for the persisted form.
var (
	// ErrNotCircuit indicates a top-level kind other than "circuit".
	ErrNotCircuit = errors.New(`circuitjson: top-level kind must be "circuit"`)

	// ErrUnknownKind indicates an unrecognized node kind.
	ErrUnknownKind = errors.New("circuitjson: unknown kind")

	// ErrUnknownRoute indicates a route value that is neither known nor legacy.
	ErrUnknownRoute = errors.New("circuitjson: unknown route")

	// ErrMissingField indicates a required field is absent.
	ErrMissingField = errors.New("circuitjson: missing required field")

	// ErrBadParallel indicates a parallel node with fewer than two branches.
	ErrBadParallel = errors.New("circuitjson: parallel needs at least two branches")
)

// Route is the display layout of the persisted circuit.
type Route string

const (
	// RouteStraight lays the items out on one line.
	RouteStraight Route = "straight"

	// RouteU lays the items out on three sides of a rectangle.
	RouteU Route = "u"

	// legacyTwoBend is the historical alias of RouteU.
	legacyTwoBend = "two-bend"
)

// Document is a decoded persisted circuit.
//
// RouteStraight uses Items; RouteU uses Top, Right and Bottom. The unused
// segment fields are nil.
type Document struct {
	ID    string
	Route Route

	Items []circuit.Item

	Top    []circuit.Item
	Right  []circuit.Item
	Bottom []circuit.Item
}

// Tree concatenates the document's segments into one series expression.
// The route is presentation only; analysis always sees this tree.
func (d *Document) Tree() circuit.Item {
	var items []circuit.Item
	if d.Route == RouteU {
		items = append(items, d.Top...)
		items = append(items, d.Right...)
		items = append(items, d.Bottom...)
	} else {
		items = append(items, d.Items...)
	}

	return circuit.NewSeries(d.ID, items...)
}

// wire-format shapes.

type nodeRaw struct {
	Kind     string      `json:"kind"`
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Ohms     *float64    `json:"ohms,omitempty"`
	Volts    *float64    `json:"volts,omitempty"`
	Amps     *float64    `json:"amps,omitempty"`
	Items    []nodeRaw   `json:"items,omitempty"`
	Branches []branchRaw `json:"branches,omitempty"`
}

type branchRaw struct {
	ID    string    `json:"id"`
	Name  string    `json:"name,omitempty"`
	Items []nodeRaw `json:"items"`
}

type docRaw struct {
	Kind   string    `json:"kind"`
	ID     string    `json:"id"`
	Route  string    `json:"route,omitempty"`
	Items  []nodeRaw `json:"items,omitempty"`
	Top    []nodeRaw `json:"top,omitempty"`
	Right  []nodeRaw `json:"right,omitempty"`
	Bottom []nodeRaw `json:"bottom,omitempty"`
}

// Decode parses and validates a persisted circuit, applying the legacy
// migration rules. The first validation failure is reported as
// "<path>: <message>".
func Decode(data []byte) (*Document, error) {
	var raw docRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("circuitjson: %w", err)
	}
	if raw.Kind != "circuit" {
		return nil, fmt.Errorf("kind: %w (got %q)", ErrNotCircuit, raw.Kind)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("id: %w", ErrMissingField)
	}

	route, err := migrateRoute(&raw)
	if err != nil {
		return nil, err
	}

	doc := &Document{ID: raw.ID, Route: route}
	if route == RouteU {
		if doc.Top, err = decodeList(raw.Top, "top"); err != nil {
			return nil, err
		}
		if doc.Right, err = decodeList(raw.Right, "right"); err != nil {
			return nil, err
		}
		if doc.Bottom, err = decodeList(raw.Bottom, "bottom"); err != nil {
			return nil, err
		}
	} else {
		if doc.Items, err = decodeList(raw.Items, "items"); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// migrateRoute resolves the route, applying the legacy rules: absent route is
// inferred from the segment lists, "two-bend" aliases to "u", and legacy
// top-level items under "u" become the bottom segment.
func migrateRoute(raw *docRaw) (Route, error) {
	route := raw.Route
	if route == legacyTwoBend {
		route = string(RouteU)
	}
	if route == "" {
		if raw.Top != nil || raw.Right != nil || raw.Bottom != nil {
			route = string(RouteU)
		} else {
			route = string(RouteStraight)
		}
	}
	switch Route(route) {
	case RouteStraight:
		return RouteStraight, nil
	case RouteU:
		if raw.Bottom == nil && raw.Items != nil {
			raw.Bottom, raw.Items = raw.Items, nil
		}

		return RouteU, nil
	default:
		return "", fmt.Errorf("route: %w (got %q)", ErrUnknownRoute, raw.Route)
	}
}

func decodeList(raws []nodeRaw, path string) ([]circuit.Item, error) {
	items := make([]circuit.Item, 0, len(raws))
	for i, r := range raws {
		it, err := decodeNode(r, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}

func decodeNode(r nodeRaw, path string) (circuit.Item, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("%s.id: %w", path, ErrMissingField)
	}
	switch r.Kind {
	case "resistor":
		if r.Ohms == nil {
			return nil, fmt.Errorf("%s.ohms: %w", path, ErrMissingField)
		}
		if !finite(*r.Ohms) || *r.Ohms <= 0 {
			return nil, fmt.Errorf("%s.ohms: %w", path, circuit.ErrBadOhms)
		}

		return &circuit.Resistor{ID: r.ID, Name: r.Name, Ohms: *r.Ohms}, nil
	case "ammeter":
		return &circuit.Ammeter{ID: r.ID, Name: r.Name}, nil
	case "vsource":
		if r.Volts == nil {
			return nil, fmt.Errorf("%s.volts: %w", path, ErrMissingField)
		}
		if !finite(*r.Volts) {
			return nil, fmt.Errorf("%s.volts: %w", path, circuit.ErrBadSourceValue)
		}

		return &circuit.VSource{ID: r.ID, Name: r.Name, Volts: *r.Volts}, nil
	case "isource":
		if r.Amps == nil {
			return nil, fmt.Errorf("%s.amps: %w", path, ErrMissingField)
		}
		if !finite(*r.Amps) {
			return nil, fmt.Errorf("%s.amps: %w", path, circuit.ErrBadSourceValue)
		}

		return &circuit.ISource{ID: r.ID, Name: r.Name, Amps: *r.Amps}, nil
	case "series":
		items, err := decodeList(r.Items, path+".items")
		if err != nil {
			return nil, err
		}

		return &circuit.Series{ID: r.ID, Items: items}, nil
	case "parallel":
		if len(r.Branches) < 2 {
			return nil, fmt.Errorf("%s.branches: %w", path, ErrBadParallel)
		}
		branches := make([]circuit.Branch, 0, len(r.Branches))
		for i, b := range r.Branches {
			bp := fmt.Sprintf("%s.branches[%d]", path, i)
			if b.ID == "" {
				return nil, fmt.Errorf("%s.id: %w", bp, ErrMissingField)
			}
			items, err := decodeList(b.Items, bp+".items")
			if err != nil {
				return nil, err
			}
			branches = append(branches, circuit.Branch{ID: b.ID, Name: b.Name, Items: items})
		}

		return &circuit.Parallel{ID: r.ID, Branches: branches}, nil
	default:
		return nil, fmt.Errorf("%s.kind: %w (got %q)", path, ErrUnknownKind, r.Kind)
	}
}

// Encode serializes a document back to the persisted form.
func Encode(d *Document) ([]byte, error) {
	raw := docRaw{Kind: "circuit", ID: d.ID, Route: string(d.Route)}
	if d.Route == RouteU {
		raw.Top = encodeList(d.Top)
		raw.Right = encodeList(d.Right)
		raw.Bottom = encodeList(d.Bottom)
	} else {
		raw.Items = encodeList(d.Items)
	}

	return json.MarshalIndent(raw, "", "  ")
}

func encodeList(items []circuit.Item) []nodeRaw {
	raws := make([]nodeRaw, 0, len(items))
	for _, it := range items {
		raws = append(raws, encodeNode(it))
	}

	return raws
}

func encodeNode(it circuit.Item) nodeRaw {
	switch v := it.(type) {
	case *circuit.Resistor:
		ohms := v.Ohms

		return nodeRaw{Kind: "resistor", ID: v.ID, Name: v.Name, Ohms: &ohms}
	case *circuit.Ammeter:
		return nodeRaw{Kind: "ammeter", ID: v.ID, Name: v.Name}
	case *circuit.VSource:
		volts := v.Volts

		return nodeRaw{Kind: "vsource", ID: v.ID, Name: v.Name, Volts: &volts}
	case *circuit.ISource:
		amps := v.Amps

		return nodeRaw{Kind: "isource", ID: v.ID, Name: v.Name, Amps: &amps}
	case *circuit.Series:
		raw := nodeRaw{Kind: "series", ID: v.ID, Items: encodeList(v.Items)}
		if raw.Items == nil {
			raw.Items = []nodeRaw{}
		}

		return raw
	case *circuit.Parallel:
		raw := nodeRaw{Kind: "parallel", ID: v.ID}
		for _, b := range v.Branches {
			raw.Branches = append(raw.Branches, branchRaw{ID: b.ID, Name: b.Name, Items: encodeList(b.Items)})
		}

		return raw
	default:
		// The Item sum is closed; reaching here is a programmer error.
		panic(fmt.Sprintf("circuitjson: unencodable item %T", it))
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
