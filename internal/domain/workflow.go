package domain

import (
	"context"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// ScanArgs select the compiled scripts to register.
type ScanArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// SourcesArgs are the arguments of the sources workflow.
type SourcesArgs struct {
	ScanArgs
}

// ResolveArgs name a location in a compiled script.
type ResolveArgs struct {
	ScanArgs
	// Target is the path or URL of the compiled script.
	Target string
	Line   int
	Column int
	// Siblings also lists every equivalent location already known.
	Siblings bool
}

// BreakpointsArgs name a location in an original source.
type BreakpointsArgs struct {
	ScanArgs
	// Target is the path or URL of the original source.
	Target string
	Line   int
	Column int
}

// Workflow runs the container against scripts found on disk.
type Workflow interface {
	Sources(ctx context.Context, args SourcesArgs) error
	Resolve(ctx context.Context, args ResolveArgs) error
	Breakpoints(ctx context.Context, args BreakpointsArgs) error
}
