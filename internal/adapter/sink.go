package adapter

import (
	"context"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// FrontendSink receives the source events the front end cares about.
type FrontendSink interface {
	// AnnounceLoaded reports a new source.
	AnnounceLoaded(ctx context.Context, source m.SourceDescriptor)
	// AnnounceRemoved reports that a source went away.
	AnnounceRemoved(ctx context.Context, source m.SourceDescriptor)
	// Diagnostic shows a user-visible line, e.g. a source map that failed to load.
	Diagnostic(ctx context.Context, message string)
}
