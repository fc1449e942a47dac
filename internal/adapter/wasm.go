package adapter

import (
	"context"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// DisassemblyChunk is a run of disassembled text. BytecodeOffsets[i] is the
// module byte offset of Lines[i].
type DisassemblyChunk struct {
	Lines           []string
	BytecodeOffsets []int
}

// WasmSymbols bridges a WebAssembly module to its debug symbols. Generated
// positions use the CDP convention: Line is the inlined frame index and
// Column is the byte offset into the module.
type WasmSymbols interface {
	// Files lists the original source URLs known from the symbols (DWARF).
	Files() []string

	// DecompiledURL is the URL of the synthetic disassembly file.
	DecompiledURL() string

	// OriginalPositionFor maps a generated position to an original file.
	OriginalPositionFor(ctx context.Context, pos m.Position) (m.OriginalPosition, bool, error)

	// CompiledPositionFor maps an original file position to byte offsets.
	CompiledPositionFor(ctx context.Context, sourceURL string, pos m.Position) ([]m.Position, error)

	// Disassemble streams the module disassembly in order.
	Disassemble(ctx context.Context, fn func(DisassemblyChunk) error) error

	// Dispose releases the bridge.
	Dispose() error
}

// WasmSymbolProvider creates symbol bridges for WebAssembly scripts.
type WasmSymbolProvider interface {
	Load(ctx context.Context, scriptURL string) (WasmSymbols, error)
}
