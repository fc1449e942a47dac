package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	"mapwright.dev/pkg/mapwright/internal/domain"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

const (
	compiledURL = "file:///dist/a.js"
	mapURL      = "file:///dist/a.js.map"
	originalURL = "file:///src/a.ts"
)

// newMappedContainer registers a.js whose map sends line 1 to a.ts line 1 and
// line 4 column 3 to a.ts line 6 column 5.
func newMappedContainer(t *testing.T, opts domain.ContainerOptions) (*domain.Container, *domain.Source, *domain.Source) {
	t.Helper()

	opts.Parser = mapParser(t, map[string]adapter.ParsedMap{
		mapURL: sourceMap(mapURL, []string{originalURL},
			link(pos(0, 0), originalURL, pos(0, 0)),
			link(pos(3, 2), originalURL, pos(5, 4)),
		),
	})

	c := domain.NewContainer(opts)
	compiled := addCompiled(t, c, compiledURL, mapURL)

	sources := waitForMap(t, c, compiled)
	require.Len(t, sources, 1)

	return c, compiled, sources[0]
}

func TestContainer_OriginalPositionFor_NoMap(t *testing.T) {
	c := domain.NewContainer(domain.ContainerOptions{})
	src := addCompiled(t, c, compiledURL, "")

	_, reason, ok := c.OriginalPositionFor(context.Background(), at(src, 1, 5))
	assert.False(t, ok)
	assert.Equal(t, m.HasNoMap, reason)

	preferred := c.PreferredUiLocation(context.Background(), at(src, 1, 5))
	assert.False(t, preferred.IsMapped)
	assert.Equal(t, m.HasNoMap, preferred.Reason)
	assert.Equal(t, at(src, 1, 5), preferred.UiLocation)
}

func TestContainer_PreferredUiLocation_Mapped(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	preferred := c.PreferredUiLocation(context.Background(), at(compiled, 1, 5))

	assert.True(t, preferred.IsMapped)
	assert.Same(t, original, preferred.Source)
	assert.Equal(t, lc(1, 1), preferred.LineColumn)
	assert.Equal(t, originalURL, original.URL())
	assert.Equal(t, m.KindMapped, original.Kind())
}

func TestContainer_PreferredUiLocationForOutput(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	preferred := c.PreferredUiLocationForOutput(context.Background(), at(compiled, 4, 3))

	assert.True(t, preferred.IsMapped)
	assert.Equal(t, at(original, 6, 5), preferred.UiLocation)
}

func TestContainer_OriginalPositionFor_LeastUpperBoundFallback(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	// Column 1 of line 4 precedes the only entry on the line.
	got, _, ok := c.OriginalPositionFor(context.Background(), at(compiled, 4, 1))

	require.True(t, ok)
	assert.Equal(t, at(original, 6, 5), got)
}

func TestContainer_OriginalPositionFor_PositionMissing(t *testing.T) {
	c, compiled, _ := newMappedContainer(t, domain.ContainerOptions{})

	_, reason, ok := c.OriginalPositionFor(context.Background(), at(compiled, 9, 1))

	assert.False(t, ok)
	assert.Equal(t, m.MapPositionMissing, reason)
}

func TestContainer_RoundTrip(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	preferred := c.PreferredUiLocation(context.Background(), at(compiled, 4, 3))
	require.True(t, preferred.IsMapped)

	back := c.CompiledPositionFor(context.Background(), preferred.UiLocation)

	assert.Equal(t, []domain.UiLocation{at(compiled, 4, 3)}, back)
	assert.Same(t, original, preferred.Source)
}

func TestContainer_CompiledPositionFor_ColumnZeroMovesToNextMappedLine(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	tests := []struct {
		name string
		loc  domain.UiLocation
		want []domain.UiLocation
	}{
		{"exact", at(original, 6, 5), []domain.UiLocation{at(compiled, 4, 3)}},
		{"unmapped line at column 1", at(original, 3, 1), []domain.UiLocation{at(compiled, 4, 3)}},
		{"unmapped line at later column", at(original, 3, 5), nil},
		{"after last mapped line", at(original, 9, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CompiledPositionFor(context.Background(), tt.loc))
		})
	}
}

func TestContainer_CompiledPositionForURL(t *testing.T) {
	c, compiled, _ := newMappedContainer(t, domain.ContainerOptions{})

	got, err := c.CompiledPositionForURL(context.Background(), "FILE:///src/A.ts", lc(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []domain.UiLocation{at(compiled, 1, 1)}, got)

	_, err = c.CompiledPositionForURL(context.Background(), "file:///src/missing.ts", lc(1, 1))
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestContainer_CompiledPositionFor_CompiledSource(t *testing.T) {
	c, compiled, _ := newMappedContainer(t, domain.ContainerOptions{})

	assert.Empty(t, c.CompiledPositionFor(context.Background(), at(compiled, 1, 1)))
}

func TestContainer_DisableSourceMap(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	c.DisableSourceMapForSource(compiled, false)
	assert.True(t, compiled.SourceMapDisabled())

	preferred := c.PreferredUiLocation(context.Background(), at(compiled, 1, 1))
	assert.False(t, preferred.IsMapped)
	assert.Equal(t, m.MapDisabled, preferred.Reason)

	c.ClearDisabledSourceMaps(nil)
	assert.False(t, c.IsSourceMapDisabled(compiled))

	preferred = c.PreferredUiLocation(context.Background(), at(compiled, 1, 1))
	assert.True(t, preferred.IsMapped)
	assert.Same(t, original, preferred.Source)

	c.DisableSourceMapForSource(compiled, false)
	c.ClearDisabledSourceMaps(compiled)
	assert.False(t, c.IsSourceMapDisabled(compiled))

	c.DisableSourceMapForSource(compiled, true)
	c.ClearDisabledSourceMaps(nil)
	c.ClearDisabledSourceMaps(compiled)
	assert.True(t, c.IsSourceMapDisabled(compiled))
}

func TestContainer_SteppingOffKeepsCompiledLocation(t *testing.T) {
	c, compiled, _ := newMappedContainer(t, domain.ContainerOptions{})

	c.SetSourceMappedStepping(false)
	preferred := c.PreferredUiLocation(context.Background(), at(compiled, 1, 1))

	assert.False(t, preferred.IsMapped)
	assert.Equal(t, m.MapDisabled, preferred.Reason)
	assert.Same(t, compiled, preferred.Source)
}

func TestContainer_CurrentSiblingUiLocations(t *testing.T) {
	c, compiled, original := newMappedContainer(t, domain.ContainerOptions{})

	fromCompiled := c.CurrentSiblingUiLocations(context.Background(), at(compiled, 4, 3), nil)
	assert.Equal(t, []domain.UiLocation{at(original, 6, 5), at(compiled, 4, 3)}, fromCompiled)

	fromOriginal := c.CurrentSiblingUiLocations(context.Background(), at(original, 6, 5), nil)
	assert.Equal(t, []domain.UiLocation{at(original, 6, 5), at(compiled, 4, 3)}, fromOriginal)

	onlyCompiled := c.CurrentSiblingUiLocations(context.Background(), at(original, 6, 5), compiled)
	assert.Equal(t, []domain.UiLocation{at(compiled, 4, 3)}, onlyCompiled)
}

func TestContainer_InlineScriptOffset(t *testing.T) {
	parser := mapParser(t, map[string]adapter.ParsedMap{
		mapURL: sourceMap(mapURL, []string{originalURL}, link(pos(0, 0), originalURL, pos(0, 0))),
	})
	c := domain.NewContainer(domain.ContainerOptions{Parser: parser})

	// The script starts on line 3, column 11 of the page.
	compiled, err := c.AddSource(context.Background(), domain.AddSourceArgs{
		URL:          "http://localhost/index.html",
		SourceMap:    &m.SourceMapMetadata{SourceMapURL: mapURL},
		InlineOffset: m.InlineScriptOffset{LineOffset: 2, ColumnOffset: 10},
	})
	require.NoError(t, err)

	sources := waitForMap(t, c, compiled)
	require.Len(t, sources, 1)

	preferred := c.PreferredUiLocation(context.Background(), at(compiled, 3, 11))
	require.True(t, preferred.IsMapped)
	assert.Equal(t, at(sources[0], 1, 1), preferred.UiLocation)

	back := c.CompiledPositionFor(context.Background(), at(sources[0], 1, 1))
	assert.Equal(t, []domain.UiLocation{at(compiled, 3, 11)}, back)
}
