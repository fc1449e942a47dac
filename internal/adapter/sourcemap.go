package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"

	"gopkg.in/sourcemap.v1/base64vlq"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// ErrUnsupportedMapVersion is returned for maps that are not version 3.
var ErrUnsupportedMapVersion = errors.New("unsupported source map version")

// Mapping is a single decoded mapping segment. SourceURL is empty for
// segments that carry no original position.
type Mapping struct {
	Generated m.Position
	SourceURL string
	Original  m.Position
	Name      string
}

// ParsedMap is the single-level query primitive over a loaded source map.
// All positions are 0-based.
type ParsedMap interface {
	// URL is the location the map was loaded from.
	URL() string
	// Sources lists the resolved URLs of the map's original sources.
	Sources() []string
	// OriginalPositionFor maps a generated position using the given bias.
	OriginalPositionFor(pos m.Position, bias m.Bias) (m.OriginalPosition, bool)
	// GeneratedPositionsFor returns every generated position for an original
	// position. When the exact column has no entry, the closest following
	// column on the same line is used.
	GeneratedPositionsFor(sourceURL string, pos m.Position) []m.Position
	// SourceContentFor returns the embedded content of a source, if any.
	SourceContentFor(sourceURL string) (string, bool)
	// EachMapping visits mappings in generated order until fn returns false.
	EachMapping(fn func(Mapping) bool)
}

// SourceMap is a decoded version 3 source map.
type SourceMap struct {
	url         string
	sources     []string
	contents    []*string
	names       []string
	mappings    []Mapping
	sourceIndex map[string]int
	// bySource holds indexes into mappings, ordered by original position.
	bySource map[string][]int
}

type rawSection struct {
	Offset struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"offset"`
	Map json.RawMessage `json:"map"`
}

type rawSourceMap struct {
	Version        int          `json:"version"`
	File           string       `json:"file,omitempty"`
	SourceRoot     string       `json:"sourceRoot,omitempty"`
	Sources        []string     `json:"sources"`
	SourcesContent []*string    `json:"sourcesContent,omitempty"`
	Names          []string     `json:"names,omitempty"`
	Mappings       string       `json:"mappings"`
	Sections       []rawSection `json:"sections,omitempty"`
}

// ParseSourceMap decodes source map JSON. Relative source URLs are resolved
// against sourceRoot and then against mapURL.
func ParseSourceMap(data []byte, mapURL string) (*SourceMap, error) {
	var raw rawSourceMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse source map JSON: %w", err)
	}

	if raw.Version != 0 && raw.Version != 3 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapVersion, raw.Version)
	}

	if len(raw.Sections) > 0 {
		return parseIndexedMap(raw.Sections, mapURL)
	}

	sources := make([]string, len(raw.Sources))
	for i, source := range raw.Sources {
		sources[i] = ResolveSourceURL(mapURL, raw.SourceRoot, source)
	}

	mappings, err := decodeMappings(raw.Mappings, sources, raw.Names)
	if err != nil {
		return nil, err
	}

	return NewSourceMap(mapURL, sources, raw.SourcesContent, raw.Names, mappings), nil
}

func parseIndexedMap(sections []rawSection, mapURL string) (*SourceMap, error) {
	var (
		sources  []string
		contents []*string
		names    []string
		mappings []Mapping
	)

	seen := map[string]bool{}

	for i, section := range sections {
		inner, err := ParseSourceMap(section.Map, mapURL)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}

		for j, source := range inner.sources {
			if seen[source] {
				continue
			}

			seen[source] = true
			sources = append(sources, source)
			contents = append(contents, inner.contents[j])
		}

		names = append(names, inner.names...)

		for _, mapping := range inner.mappings {
			if mapping.Generated.Line == 0 {
				mapping.Generated.Column += section.Offset.Column
			}

			mapping.Generated.Line += section.Offset.Line
			mappings = append(mappings, mapping)
		}
	}

	return NewSourceMap(mapURL, sources, contents, names, mappings), nil
}

// NewSourceMap builds a map from already decoded mappings. contents may be
// shorter than sources; missing entries have no embedded content.
func NewSourceMap(mapURL string, sources []string, contents []*string, names []string, mappings []Mapping) *SourceMap {
	sm := &SourceMap{
		url:         mapURL,
		sources:     sources,
		contents:    make([]*string, len(sources)),
		names:       names,
		mappings:    append([]Mapping(nil), mappings...),
		sourceIndex: make(map[string]int, len(sources)),
		bySource:    make(map[string][]int, len(sources)),
	}

	copy(sm.contents, contents)

	for i, source := range sources {
		if _, ok := sm.sourceIndex[source]; !ok {
			sm.sourceIndex[source] = i
		}
	}

	sort.SliceStable(sm.mappings, func(i, j int) bool {
		return lessPosition(sm.mappings[i].Generated, sm.mappings[j].Generated)
	})

	for i, mapping := range sm.mappings {
		if mapping.SourceURL == "" {
			continue
		}

		sm.bySource[mapping.SourceURL] = append(sm.bySource[mapping.SourceURL], i)
	}

	for _, indexes := range sm.bySource {
		sort.SliceStable(indexes, func(i, j int) bool {
			a, b := sm.mappings[indexes[i]], sm.mappings[indexes[j]]
			if a.Original != b.Original {
				return lessPosition(a.Original, b.Original)
			}

			return lessPosition(a.Generated, b.Generated)
		})
	}

	return sm
}

func lessPosition(a, b m.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}

	return a.Column < b.Column
}

// decodeMappings expands the VLQ "mappings" string. Source index, original
// line/column and name index are cumulative across the whole map; the
// generated column resets on every line.
func decodeMappings(raw string, sources, names []string) ([]Mapping, error) {
	var (
		mappings   []Mapping
		sourceIdx  int
		origLine   int
		origColumn int
		nameIdx    int
	)

	for line, group := range strings.Split(raw, ";") {
		genColumn := 0

		for _, segment := range strings.Split(group, ",") {
			if segment == "" {
				continue
			}

			fields, err := decodeSegment(segment)
			if err != nil {
				return nil, fmt.Errorf("line %d segment %q: %w", line, segment, err)
			}

			genColumn += fields[0]
			mapping := Mapping{Generated: m.Position{Line: line, Column: genColumn}}

			if len(fields) >= 4 {
				sourceIdx += fields[1]
				origLine += fields[2]
				origColumn += fields[3]

				if sourceIdx >= 0 && sourceIdx < len(sources) {
					mapping.SourceURL = sources[sourceIdx]
					mapping.Original = m.Position{Line: origLine, Column: origColumn}
				}
			}

			if len(fields) >= 5 {
				nameIdx += fields[4]
				if nameIdx >= 0 && nameIdx < len(names) {
					mapping.Name = names[nameIdx]
				}
			}

			mappings = append(mappings, mapping)
		}
	}

	return mappings, nil
}

func decodeSegment(segment string) ([]int, error) {
	dec := base64vlq.NewDecoder(strings.NewReader(segment))
	fields := make([]int, 0, 5)

	for {
		n, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		fields = append(fields, n)
	}

	switch len(fields) {
	case 1, 4, 5:
		return fields, nil
	}

	return nil, fmt.Errorf("invalid segment length %d", len(fields))
}

// URL implements ParsedMap.
func (sm *SourceMap) URL() string {
	return sm.url
}

// Sources implements ParsedMap.
func (sm *SourceMap) Sources() []string {
	return append([]string(nil), sm.sources...)
}

// OriginalPositionFor implements ParsedMap. Only entries on the generated
// line are considered.
func (sm *SourceMap) OriginalPositionFor(pos m.Position, bias m.Bias) (m.OriginalPosition, bool) {
	start := sort.Search(len(sm.mappings), func(i int) bool {
		return sm.mappings[i].Generated.Line >= pos.Line
	})
	end := sort.Search(len(sm.mappings), func(i int) bool {
		return sm.mappings[i].Generated.Line > pos.Line
	})

	if start == end {
		return m.OriginalPosition{}, false
	}

	line := sm.mappings[start:end]

	// First entry whose column is past the requested one.
	after := sort.Search(len(line), func(i int) bool {
		return line[i].Generated.Column > pos.Column
	})

	var found Mapping

	switch bias {
	case m.GreatestLowerBound:
		if after == 0 {
			return m.OriginalPosition{}, false
		}

		found = line[after-1]
	case m.LeastUpperBound:
		atOrAfter := sort.Search(len(line), func(i int) bool {
			return line[i].Generated.Column >= pos.Column
		})
		if atOrAfter == len(line) {
			return m.OriginalPosition{}, false
		}

		found = line[atOrAfter]
	}

	if found.SourceURL == "" {
		return m.OriginalPosition{}, false
	}

	return m.OriginalPosition{URL: found.SourceURL, Position: found.Original, Name: found.Name}, true
}

// GeneratedPositionsFor implements ParsedMap.
func (sm *SourceMap) GeneratedPositionsFor(sourceURL string, pos m.Position) []m.Position {
	indexes := sm.bySource[sourceURL]

	start := sort.Search(len(indexes), func(i int) bool {
		orig := sm.mappings[indexes[i]].Original
		return orig.Line > pos.Line || (orig.Line == pos.Line && orig.Column >= pos.Column)
	})

	if start == len(indexes) || sm.mappings[indexes[start]].Original.Line != pos.Line {
		return nil
	}

	column := sm.mappings[indexes[start]].Original.Column

	var out []m.Position

	for _, idx := range indexes[start:] {
		mapping := sm.mappings[idx]
		if mapping.Original.Line != pos.Line || mapping.Original.Column != column {
			break
		}

		out = append(out, mapping.Generated)
	}

	return out
}

// SourceContentFor implements ParsedMap.
func (sm *SourceMap) SourceContentFor(sourceURL string) (string, bool) {
	idx, ok := sm.sourceIndex[sourceURL]
	if !ok || sm.contents[idx] == nil {
		return "", false
	}

	return *sm.contents[idx], true
}

// EachMapping implements ParsedMap.
func (sm *SourceMap) EachMapping(fn func(Mapping) bool) {
	for _, mapping := range sm.mappings {
		if !fn(mapping) {
			return
		}
	}
}

// ResolveSourceURL joins a map's source entry with its sourceRoot and resolves
// the result against the map URL. Absolute URLs are returned unchanged.
func ResolveSourceURL(mapURL, sourceRoot, source string) string {
	if sourceRoot != "" && !isAbsoluteURL(source) && !strings.HasPrefix(source, "/") {
		source = strings.TrimSuffix(sourceRoot, "/") + "/" + source
	}

	if isAbsoluteURL(source) || mapURL == "" || IsDataURI(mapURL) {
		return source
	}

	return CompleteURL(mapURL, source)
}

// CompleteURL resolves ref against base. If either cannot be parsed, ref is
// returned unchanged.
func CompleteURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	resolved := baseURL.ResolveReference(refURL)
	if resolved.Scheme == "file" {
		resolved.Path = path.Clean(resolved.Path)
	}

	return resolved.String()
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	// Windows drive letters parse as one-letter schemes.
	return u.Scheme != "" && len(u.Scheme) > 1
}
