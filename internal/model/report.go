package model

// MapStatus summarizes the state of a source's map.
type MapStatus string

// MapStatus values.
const (
	MapStatusNone     MapStatus = "none"
	MapStatusPending  MapStatus = "pending"
	MapStatusLoaded   MapStatus = "loaded"
	MapStatusFailed   MapStatus = "failed"
	MapStatusDisabled MapStatus = "disabled"
)

// InlineSourceMap is the SourceReport.SourceMap value of a data URI map.
const InlineSourceMap = "inline"

// SourceReport is one row of the sources listing.
type SourceReport struct {
	Source     SourceDescriptor `json:"source" yaml:"source"`
	URL        string           `json:"url" yaml:"url"`
	Kind       SourceKind       `json:"kind" yaml:"kind"`
	SourceMap  string           `json:"sourceMap,omitempty" yaml:"sourceMap,omitempty"`
	MapStatus  MapStatus        `json:"mapStatus" yaml:"mapStatus"`
	References int              `json:"references,omitempty" yaml:"references,omitempty"`
}

// LocationReport is one resolved location.
type LocationReport struct {
	Source   SourceDescriptor `json:"source" yaml:"source"`
	URL      string           `json:"url" yaml:"url"`
	Location LineColumn       `json:"location" yaml:"location"`
	Mapped   bool             `json:"mapped" yaml:"mapped"`
	Reason   string           `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// LoadSummary counts source map load outcomes.
type LoadSummary struct {
	Loaded            int64 `json:"loaded" yaml:"loaded"`
	Failed            int64 `json:"failed" yaml:"failed"`
	FallbackAttempts  int64 `json:"fallbackAttempts" yaml:"fallbackAttempts"`
	FallbackSucceeded int64 `json:"fallbackSucceeded" yaml:"fallbackSucceeded"`
}
