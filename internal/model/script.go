package model

// Script is a compiled file discovered on disk.
type Script struct {
	Path Path
	Kind SourceKind
	// Content is the script text; WebAssembly modules leave it empty.
	Content string
	Hash    string
	// SourceMappingURL is the raw value of the trailing sourceMappingURL
	// comment, possibly a data URI.
	SourceMappingURL string
	// SourceMapHash is the content hash of a map file on disk; empty for
	// inline, remote or missing maps.
	SourceMapHash string
}
