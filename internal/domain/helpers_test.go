package domain_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	adaptermocks "mapwright.dev/pkg/mapwright/internal/adapter/mocks"
	"mapwright.dev/pkg/mapwright/internal/domain"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

var errMapNotFound = errors.New("map not found")

func pos(line, column int) m.Position {
	return m.Position{Line: line, Column: column}
}

func lc(line, column int) m.LineColumn {
	return m.LineColumn{Line: line, Column: column}
}

func at(src *domain.Source, line, column int) domain.UiLocation {
	return domain.UiLocation{Source: src, LineColumn: lc(line, column)}
}

// link maps a generated 0-based position to an original one.
func link(generated m.Position, sourceURL string, original m.Position) adapter.Mapping {
	return adapter.Mapping{Generated: generated, SourceURL: sourceURL, Original: original}
}

func sourceMap(mapURL string, sources []string, mappings ...adapter.Mapping) *adapter.SourceMap {
	return adapter.NewSourceMap(mapURL, sources, nil, nil, mappings)
}

func sourceMapWithContent(mapURL string, sources []string, contents []string, mappings ...adapter.Mapping) *adapter.SourceMap {
	ptrs := make([]*string, len(contents))
	for i := range contents {
		ptrs[i] = &contents[i]
	}

	return adapter.NewSourceMap(mapURL, sources, ptrs, nil, mappings)
}

// mapParser serves maps by URL and fails for unknown URLs.
func mapParser(t *testing.T, maps map[string]adapter.ParsedMap) *adaptermocks.MockSourceMapParser {
	t.Helper()

	parser := adaptermocks.NewMockSourceMapParser(t)
	parser.EXPECT().Load(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, meta m.SourceMapMetadata) (adapter.ParsedMap, error) {
			if parsed, ok := maps[meta.SourceMapURL]; ok {
				return parsed, nil
			}

			return nil, errMapNotFound
		},
	).Maybe()

	return parser
}

func addCompiled(t *testing.T, c *domain.Container, rawURL, mapURL string) *domain.Source {
	t.Helper()

	args := domain.AddSourceArgs{URL: rawURL}
	if mapURL != "" {
		args.SourceMap = &m.SourceMapMetadata{SourceMapURL: mapURL}
	}

	src, err := c.AddSource(context.Background(), args)
	require.NoError(t, err)

	return src
}

func waitForMap(t *testing.T, c *domain.Container, src *domain.Source) []*domain.Source {
	t.Helper()

	sources, err := c.WaitForSourceMapSources(context.Background(), src)
	require.NoError(t, err)

	return sources
}

func containsSource(sources []*domain.Source, target *domain.Source) bool {
	for _, src := range sources {
		if src == target {
			return true
		}
	}

	return false
}

// recordingSink collects front-end events.
type recordingSink struct {
	mu          sync.Mutex
	loaded      []m.SourceDescriptor
	removed     []m.SourceDescriptor
	diagnostics []string
}

func (s *recordingSink) AnnounceLoaded(_ context.Context, source m.SourceDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = append(s.loaded, source)
}

func (s *recordingSink) AnnounceRemoved(_ context.Context, source m.SourceDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removed = append(s.removed, source)
}

func (s *recordingSink) Diagnostic(_ context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.diagnostics = append(s.diagnostics, message)
}

func (s *recordingSink) removedNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.removed))
	for _, desc := range s.removed {
		names = append(names, desc.Name)
	}

	return names
}

func (s *recordingSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.diagnostics...)
}

func (s *recordingSink) loadedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.loaded)
}
