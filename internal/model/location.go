package model

// Bias selects how a position between two mapped entries is resolved.
type Bias int

const (
	// GreatestLowerBound picks the closest entry at or before the position.
	GreatestLowerBound Bias = iota
	// LeastUpperBound picks the closest entry at or after the position.
	LeastUpperBound
)

// String implements fmt.Stringer.
func (b Bias) String() string {
	if b == LeastUpperBound {
		return "lub"
	}

	return "glb"
}

// LineColumn is a 1-based position as exchanged with the front end.
type LineColumn struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Position is a 0-based position used by the source map primitives.
type Position struct {
	Line   int
	Column int
}

// ToPosition converts a 1-based location to the 0-based map space.
func (lc LineColumn) ToPosition() Position {
	return Position{Line: lc.Line - 1, Column: lc.Column - 1}
}

// ToLineColumn converts a 0-based map position to the 1-based UI space.
func (p Position) ToLineColumn() LineColumn {
	return LineColumn{Line: p.Line + 1, Column: p.Column + 1}
}

// OriginalPosition is the answer of a single-level map query.
type OriginalPosition struct {
	URL      string
	Position Position
	Name     string
}

// UnmappedReason explains why a location could not be mapped further.
type UnmappedReason int

const (
	// HasNoMap means the source carries no source map.
	HasNoMap UnmappedReason = iota
	// MapDisabled means mapping was switched off for the source or globally.
	MapDisabled
	// MapLoadingFailed means the map failed or did not load within the budget.
	MapLoadingFailed
	// MapPositionMissing means the map has no entry for the position.
	MapPositionMissing
	// CannotMap is the starting state before any hop was attempted.
	CannotMap
)

// String implements fmt.Stringer.
func (r UnmappedReason) String() string {
	switch r {
	case HasNoMap:
		return "no source map"
	case MapDisabled:
		return "source map disabled"
	case MapLoadingFailed:
		return "source map loading failed"
	case MapPositionMissing:
		return "position missing from source map"
	case CannotMap:
		return "cannot map"
	}

	return "unknown"
}
