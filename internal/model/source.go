// Package model defines the data structures shared by the source container
// and its collaborators.
package model

// Path represents a file system path.
type Path string

// ReferenceID identifies a source that has no absolute path. It always fits in
// the positive 31-bit range required by the debug protocol.
type ReferenceID int32

// NoReference is reported for sources that are addressed by absolute path.
const NoReference ReferenceID = 0

// SourceKind distinguishes the variants of a source.
type SourceKind string

const (
	// KindGenerated is a script the runtime parsed.
	KindGenerated SourceKind = "generated"

	// KindMapped is a source manufactured from a source map's source list.
	KindMapped SourceKind = "mapped"

	// KindWasm is a WebAssembly module whose "map" is a symbol bridge.
	KindWasm SourceKind = "wasm"
)

// SourceMapMetadata carries what a parser needs to load a map.
type SourceMapMetadata struct {
	SourceMapURL string
	CompiledPath Path
	// CacheKey, when set, identifies the map content (for example a file
	// mtime or content hash) and is used as the parser cache key.
	CacheKey string
}

// Key returns the cache identity of the metadata.
func (m SourceMapMetadata) Key() string {
	if m.CacheKey != "" {
		return m.SourceMapURL + "#" + m.CacheKey
	}

	return m.SourceMapURL
}

// InlineScriptOffset is the position of a script embedded in a larger
// document, such as a <script> tag in an HTML page. Both values are 0-based
// deltas.
type InlineScriptOffset struct {
	LineOffset   int
	ColumnOffset int
}

// SourceDescriptor is how a source is reported to the front end.
type SourceDescriptor struct {
	Name            string      `json:"name" yaml:"name"`
	Path            Path        `json:"path,omitempty" yaml:"path,omitempty"`
	SourceReference ReferenceID `json:"sourceReference" yaml:"sourceReference"`
	Origin          string      `json:"origin,omitempty" yaml:"origin,omitempty"`
	Checksum        string      `json:"checksum,omitempty" yaml:"checksum,omitempty"`
}
