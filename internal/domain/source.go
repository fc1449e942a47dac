package domain

import (
	"context"
	"errors"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

var (
	// ErrNoContent is returned by Source.Content when the source has no text.
	ErrNoContent = errors.New("source has no content")
	// ErrSourceNotFound is returned when a lookup names no registered source.
	ErrSourceNotFound = errors.New("source not found")
	// ErrNotMapped is returned when a location cannot be mapped to another source.
	ErrNotMapped = errors.New("location is not mapped")
)

// ContentGetter produces the text of a source. It returns ErrNoContent when
// the source has none.
type ContentGetter func(ctx context.Context) (string, error)

// Source is a unit of code known to the container: a script reported by the
// runtime, a WebAssembly module, or a file listed in a source map.
type Source struct {
	container    *Container
	kind         m.SourceKind
	ref          m.ReferenceID
	generation   uint64
	url          string
	absolutePath m.Path
	contentHash  string
	inlineOffset m.InlineScriptOffset

	getter       ContentGetter
	contentOnce  sync.Once
	contentValue string
	contentErr   error

	announced atomic.Bool
	sourceMap *sourceMapSlot
}

// sourceMapSlot is the source map owned by a compiled source. value settles
// only after every source the map lists is registered.
type sourceMapSlot struct {
	metadata m.SourceMapMetadata
	value    *Deferred[*loadedMap]
	// applied is set under the container mutex once the map's sources are
	// registered, which may be before value settles.
	applied *loadedMap
}

// loadedMap is a settled source map. parsed is nil for WebAssembly bridges.
type loadedMap struct {
	parsed adapter.ParsedMap
	wasm   *wasmBridge

	// sourceByURL maps the URLs listed by the map to their sources. Guarded by
	// the container mutex.
	sourceByURL map[string]*Source

	linesMu sync.Mutex
	lines   map[string][]int
}

func newLoadedMap(parsed adapter.ParsedMap, wasm *wasmBridge) *loadedMap {
	return &loadedMap{
		parsed:      parsed,
		wasm:        wasm,
		sourceByURL: make(map[string]*Source),
		lines:       make(map[string][]int),
	}
}

// mappedLines returns the sorted 0-based original lines of sourceURL that have
// at least one mapping.
func (lm *loadedMap) mappedLines(sourceURL string) []int {
	lm.linesMu.Lock()
	defer lm.linesMu.Unlock()

	if lines, ok := lm.lines[sourceURL]; ok {
		return lines
	}

	seen := map[int]struct{}{}

	if lm.parsed != nil {
		lm.parsed.EachMapping(func(mapping adapter.Mapping) bool {
			if mapping.SourceURL == sourceURL {
				seen[mapping.Original.Line] = struct{}{}
			}

			return true
		})
	}

	lines := make([]int, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}

	sort.Ints(lines)
	lm.lines[sourceURL] = lines

	return lines
}

// Kind reports the variant of the source.
func (s *Source) Kind() m.SourceKind { return s.kind }

// Reference returns the reference id assigned at creation.
func (s *Source) Reference() m.ReferenceID { return s.ref }

// URL returns the URL the source was registered under.
func (s *Source) URL() string { return s.url }

// AbsolutePath returns the local path of the source, if one is known.
func (s *Source) AbsolutePath() m.Path { return s.absolutePath }

// ContentHash returns the integrity hash supplied at registration.
func (s *Source) ContentHash() string { return s.contentHash }

// InlineOffset returns the position of the script inside its document.
func (s *Source) InlineOffset() m.InlineScriptOffset { return s.inlineOffset }

// Announced reports whether the front end has been told about the source.
func (s *Source) Announced() bool { return s.announced.Load() }

// HasSourceMap reports whether the source carries a map or symbol bridge.
func (s *Source) HasSourceMap() bool { return s.sourceMap != nil }

// SourceMapMetadata returns the load metadata of the source's map.
func (s *Source) SourceMapMetadata() (m.SourceMapMetadata, bool) {
	if s.sourceMap == nil {
		return m.SourceMapMetadata{}, false
	}

	return s.sourceMap.metadata, true
}

// Content returns the source text. The getter runs once; its result,
// including absence or failure, is kept for the lifetime of the source.
func (s *Source) Content(ctx context.Context) (string, error) {
	s.contentOnce.Do(func() {
		if s.getter == nil {
			s.contentErr = ErrNoContent
			return
		}

		s.contentValue, s.contentErr = s.getter(ctx)
	})

	return s.contentValue, s.contentErr
}

// Name is the short display name of the source.
func (s *Source) Name() string {
	if s.absolutePath != "" {
		return filepath.Base(string(s.absolutePath))
	}

	u, err := url.Parse(s.url)
	if err != nil || u.Path == "" || u.Path == "/" {
		return s.url
	}

	name := path.Base(u.Path)
	if u.RawQuery != "" {
		name += "?" + u.RawQuery
	}

	return name
}

// Descriptor is the front-end view of the source. Sources with a path are
// addressed by path and reported with the zero reference.
func (s *Source) Descriptor() m.SourceDescriptor {
	ref := s.ref
	if s.absolutePath != "" {
		ref = m.NoReference
	}

	desc := m.SourceDescriptor{
		Name:            s.Name(),
		Path:            s.absolutePath,
		SourceReference: ref,
		Checksum:        s.contentHash,
	}

	switch s.kind {
	case m.KindMapped:
		desc.Origin = "source map"
	case m.KindWasm:
		desc.Origin = "wasm"
	}

	return desc
}

func (s *Source) String() string {
	return string(s.kind) + ":" + s.url
}

// fetchContent builds a getter that fetches location through fetcher.
func fetchContent(fetcher adapter.ContentFetcher, location string) ContentGetter {
	if fetcher == nil || location == "" {
		return nil
	}

	return func(ctx context.Context) (string, error) {
		body, err := fetcher.Fetch(ctx, location)
		if err != nil {
			return "", err
		}

		return body, nil
	}
}

// mappedContent prefers the text embedded in the map and falls back to
// fetching the resolved location.
func mappedContent(embedded string, hasEmbedded bool, fallback ContentGetter) ContentGetter {
	return func(ctx context.Context) (string, error) {
		if hasEmbedded {
			return embedded, nil
		}

		if fallback == nil {
			return "", ErrNoContent
		}

		return fallback(ctx)
	}
}

func fetchableLocation(rawURL string, absolutePath m.Path) string {
	if absolutePath != "" {
		return string(absolutePath)
	}

	lower := strings.ToLower(rawURL)
	for _, prefix := range []string{"http://", "https://", "file://", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return rawURL
		}
	}

	return ""
}
