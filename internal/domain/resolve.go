package domain

import (
	"context"
	"fmt"
	"sort"
	"time"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// UiLocation is a 1-based position in a source as shown to the user.
type UiLocation struct {
	Source *Source
	m.LineColumn
}

// PreferredUiLocation is the deepest location a UI location resolves to.
// Reason is meaningful only when IsMapped is false.
type PreferredUiLocation struct {
	UiLocation
	IsMapped bool
	Reason   m.UnmappedReason
}

// uiToRaw converts a UI location of a compiled source to 0-based script
// coordinates, undoing the inline script offset.
func uiToRaw(src *Source, lc m.LineColumn) m.Position {
	pos := lc.ToPosition()
	offset := src.inlineOffset

	if pos.Line == offset.LineOffset {
		pos.Column -= offset.ColumnOffset
	}

	pos.Line -= offset.LineOffset

	return m.Position{Line: max(0, pos.Line), Column: max(0, pos.Column)}
}

// rawToUi is the inverse of uiToRaw.
func rawToUi(src *Source, pos m.Position) m.LineColumn {
	offset := src.inlineOffset

	if pos.Line == 0 {
		pos.Column += offset.ColumnOffset
	}

	pos.Line += offset.LineOffset

	return pos.ToLineColumn()
}

// originalPositionFor maps loc one hop through its source's map. ok is false
// when loc cannot descend; reason then says why.
func (c *Container) originalPositionFor(ctx context.Context, loc UiLocation, timeout time.Duration) (UiLocation, m.UnmappedReason, bool) {
	src := loc.Source
	if src == nil || src.sourceMap == nil {
		return UiLocation{}, m.HasNoMap, false
	}

	lm, ok, settled := src.sourceMap.value.WaitTimeout(ctx, timeout)
	if !settled || !ok {
		return UiLocation{}, m.MapLoadingFailed, false
	}

	c.mu.Lock()
	stepping := c.stepping
	disabled := c.isDisabledLocked(src)
	c.mu.Unlock()

	if !stepping && lm.wasm == nil {
		return UiLocation{}, m.MapDisabled, false
	}

	if disabled {
		return UiLocation{}, m.MapDisabled, false
	}

	raw := uiToRaw(src, loc.LineColumn)

	var (
		original m.OriginalPosition
		found    bool
	)

	if lm.wasm != nil {
		original, found = c.wasmOriginalPosition(ctx, lm, raw, stepping)
	} else {
		original, found = lm.parsed.OriginalPositionFor(raw, m.GreatestLowerBound)
		if !found {
			original, found = lm.parsed.OriginalPositionFor(raw, m.LeastUpperBound)
		}
	}

	if !found {
		return UiLocation{}, m.MapPositionMissing, false
	}

	c.mu.Lock()
	mapped, ok := lm.sourceByURL[original.URL]
	c.mu.Unlock()

	if !ok {
		return UiLocation{}, m.MapPositionMissing, false
	}

	return UiLocation{Source: mapped, LineColumn: original.Position.ToLineColumn()}, 0, true
}

// OriginalPositionFor maps loc a single hop, waiting for the map up to the
// resolve-location budget.
func (c *Container) OriginalPositionFor(ctx context.Context, loc UiLocation) (UiLocation, m.UnmappedReason, bool) {
	return c.originalPositionFor(ctx, loc, c.Timeouts().ResolveLocation)
}

// PreferredUiLocation follows maps from loc as deep as they go.
func (c *Container) PreferredUiLocation(ctx context.Context, loc UiLocation) PreferredUiLocation {
	return c.preferredUiLocation(ctx, loc, c.Timeouts().ResolveLocation)
}

// PreferredUiLocationForOutput is PreferredUiLocation bounded by the output
// budget, used when annotating console output.
func (c *Container) PreferredUiLocationForOutput(ctx context.Context, loc UiLocation) PreferredUiLocation {
	return c.preferredUiLocation(ctx, loc, c.Timeouts().Output)
}

func (c *Container) preferredUiLocation(ctx context.Context, loc UiLocation, timeout time.Duration) PreferredUiLocation {
	result := PreferredUiLocation{UiLocation: loc, Reason: m.CannotMap}
	visited := map[*Source]struct{}{}

	for {
		visited[result.Source] = struct{}{}

		next, reason, ok := c.originalPositionFor(ctx, result.UiLocation, timeout)
		if !ok {
			if !result.IsMapped {
				result.Reason = reason
			}

			return result
		}

		if _, seen := visited[next.Source]; seen {
			return result
		}

		result.UiLocation = next
		result.IsMapped = true
	}
}

// CurrentSiblingUiLocations returns every location equivalent to loc that is
// known without waiting: the original locations above it, loc itself and the
// compiled locations below it. When inSource is set only locations in that
// source are returned.
func (c *Container) CurrentSiblingUiLocations(ctx context.Context, loc UiLocation, inSource *Source) []UiLocation {
	var all []UiLocation

	all = append(all, c.settledOriginalLocations(ctx, loc)...)
	all = append(all, loc)
	all = append(all, c.compiledLocations(ctx, loc, map[*Source]struct{}{})...)

	if inSource == nil {
		return all
	}

	out := all[:0]
	for _, l := range all {
		if l.Source == inSource {
			out = append(out, l)
		}
	}

	return out
}

func (c *Container) settledOriginalLocations(ctx context.Context, loc UiLocation) []UiLocation {
	var out []UiLocation

	visited := map[*Source]struct{}{loc.Source: {}}
	current := loc

	for {
		next, _, ok := c.originalPositionFor(ctx, current, 0)
		if !ok {
			return out
		}

		if _, seen := visited[next.Source]; seen {
			return out
		}

		visited[next.Source] = struct{}{}
		out = append(out, next)
		current = next
	}
}

// CompiledPositionFor maps an original location to every compiled location
// that produces it, through shared chunks and nested maps.
func (c *Container) CompiledPositionFor(ctx context.Context, loc UiLocation) []UiLocation {
	return c.compiledLocations(ctx, loc, map[*Source]struct{}{})
}

// CompiledPositionForURL is CompiledPositionFor for a source named by URL.
func (c *Container) CompiledPositionForURL(ctx context.Context, sourceURL string, lc m.LineColumn) ([]UiLocation, error) {
	src, ok := c.SourceByURL(sourceURL)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sourceURL, ErrSourceNotFound)
	}

	return c.CompiledPositionFor(ctx, UiLocation{Source: src, LineColumn: lc}), nil
}

type compiledLink struct {
	parentLink
	lm *loadedMap
}

func (c *Container) compiledLinks(mapped *Source) []compiledLink {
	c.mu.Lock()
	parents := c.graph.parentsOf(mapped)
	c.mu.Unlock()

	links := make([]compiledLink, 0, len(parents))

	for _, parent := range parents {
		lm := settledMap(parent.compiled)
		if lm == nil {
			continue
		}

		links = append(links, compiledLink{parentLink: parent, lm: lm})
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].compiled.url < links[j].compiled.url
	})

	return links
}

func (c *Container) compiledLocations(ctx context.Context, loc UiLocation, visited map[*Source]struct{}) []UiLocation {
	if loc.Source == nil || loc.Source.kind != m.KindMapped {
		return nil
	}

	if _, seen := visited[loc.Source]; seen {
		return nil
	}

	visited[loc.Source] = struct{}{}
	defer delete(visited, loc.Source)

	var out []UiLocation

	for _, link := range c.compiledLinks(loc.Source) {
		for _, pos := range c.generatedPositions(ctx, link, loc.ToPosition()) {
			compiled := UiLocation{Source: link.compiled, LineColumn: rawToUi(link.compiled, pos)}
			out = append(out, compiled)
			out = append(out, c.compiledLocations(ctx, compiled, visited)...)
		}
	}

	return out
}

// generatedPositions queries one compiled source's map. Column 0 of a line
// with no mappings moves to the next line that has some.
func (c *Container) generatedPositions(ctx context.Context, link compiledLink, pos m.Position) []m.Position {
	if link.lm.wasm != nil {
		return c.wasmCompiledPositions(ctx, link.lm, link.listedURL, pos)
	}

	positions := link.lm.parsed.GeneratedPositionsFor(link.listedURL, pos)
	if len(positions) > 0 || pos.Column != 0 {
		return positions
	}

	lines := link.lm.mappedLines(link.listedURL)

	i := sort.SearchInts(lines, pos.Line+1)
	if i >= len(lines) {
		return nil
	}

	return c.generatedPositions(ctx, link, m.Position{Line: lines[i], Column: 0})
}
