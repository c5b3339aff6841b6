package superpos

import "errors"

// ErrNoSources indicates the graph carries no independent source to superpose.
var ErrNoSources = errors.New("superpos: no independent sources")

// SourceKind discriminates voltage from current sources.
type SourceKind uint8

const (
	// SourceVoltage is an independent voltage source.
	SourceVoltage SourceKind = iota

	// SourceCurrent is an independent current source.
	SourceCurrent
)

// String returns "voltage" or "current".
func (k SourceKind) String() string {
	if k == SourceCurrent {
		return "current"
	}

	return "voltage"
}

// Source identifies one independent source of the graph.
type Source struct {
	ID    string
	Name  string
	Kind  SourceKind
	Value float64
}

// DisplayName returns the label when set, the ID otherwise.
func (s Source) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}

	return s.ID
}
