// Package controller provides output adapters for the source container: the
// front-end sink and the rendering of sources and locations.
package controller

import (
	"context"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

// Format selects how reports are rendered.
type Format string

// Available formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a configured output format.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatTable, "":
		return FormatTable, true
	case FormatYAML:
		return FormatYAML, true
	}

	return "", false
}

// UI receives source events and renders reports.
type UI interface {
	adapter.FrontendSink
	DisplaySources(ctx context.Context, sources []m.SourceReport) error
	DisplayLocations(ctx context.Context, title string, locations []m.LocationReport) error
	DisplayStats(ctx context.Context, stats m.LoadSummary)
}
