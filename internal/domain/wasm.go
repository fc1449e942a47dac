package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

// wasmBridge wraps the symbols of a WebAssembly module and indexes its
// disassembly by bytecode offset.
type wasmBridge struct {
	symbols adapter.WasmSymbols

	mu      sync.Mutex
	lines   []string
	offsets []int
	indexed bool

	disposeOnce sync.Once
}

func newWasmBridge(symbols adapter.WasmSymbols) *wasmBridge {
	return &wasmBridge{symbols: symbols}
}

// index streams the disassembly once. A failed stream is not memoized.
func (b *wasmBridge) index(ctx context.Context) ([]string, []int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexed {
		return b.lines, b.offsets, nil
	}

	var (
		lines   []string
		offsets []int
	)

	err := b.symbols.Disassemble(ctx, func(chunk adapter.DisassemblyChunk) error {
		if len(chunk.Lines) != len(chunk.BytecodeOffsets) {
			return fmt.Errorf("disassembly chunk has %d lines and %d offsets", len(chunk.Lines), len(chunk.BytecodeOffsets))
		}

		lines = append(lines, chunk.Lines...)
		offsets = append(offsets, chunk.BytecodeOffsets...)

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("disassemble: %w", err)
	}

	b.lines, b.offsets, b.indexed = lines, offsets, true

	return lines, offsets, nil
}

// disassembledLine returns the 0-based disassembly line holding byteOffset.
func (b *wasmBridge) disassembledLine(ctx context.Context, byteOffset int) (int, bool) {
	_, offsets, err := b.index(ctx)
	if err != nil {
		slog.Warn("wasm disassembly unavailable", "error", err)
		return 0, false
	}

	i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > byteOffset }) - 1
	if i < 0 {
		return 0, false
	}

	return i, true
}

// offsetForLine returns the bytecode offset of a 0-based disassembly line.
func (b *wasmBridge) offsetForLine(ctx context.Context, line int) (int, bool) {
	_, offsets, err := b.index(ctx)
	if err != nil || line < 0 || line >= len(offsets) {
		return 0, false
	}

	return offsets[line], true
}

func (b *wasmBridge) content(ctx context.Context) (string, error) {
	lines, _, err := b.index(ctx)
	if err != nil {
		return "", err
	}

	return strings.Join(lines, "\n"), nil
}

func (b *wasmBridge) dispose() {
	b.disposeOnce.Do(func() {
		if err := b.symbols.Dispose(); err != nil {
			slog.Warn("failed to dispose wasm symbols", "error", err)
		}
	})
}

func (c *Container) loadWasm(ctx context.Context, src *Source) {
	ctx, cancel := c.loadContext(ctx)
	defer cancel()

	symbols, err := c.wasm.Load(ctx, src.url)
	if err != nil {
		c.failLoad(ctx, src, err)
		return
	}

	bridge := newWasmBridge(symbols)
	plans := c.planWasmSources(ctx, bridge)

	if !c.materialize(ctx, src, newLoadedMap(nil, bridge), plans) {
		bridge.dispose()
	}
}

// planWasmSources lists the disassembly first, then every symbol file.
func (c *Container) planWasmSources(ctx context.Context, bridge *wasmBridge) []childPlan {
	decompiled := bridge.symbols.DecompiledURL()
	plans := []childPlan{{
		listedURL:   decompiled,
		resolvedURL: decompiled,
		getter:      bridge.content,
	}}

	for _, file := range bridge.symbols.Files() {
		if file == decompiled {
			continue
		}

		plan := childPlan{listedURL: file, resolvedURL: file}

		if c.resolver != nil {
			if p, ok := c.resolver.URLToAbsolutePath(ctx, file, nil); ok {
				plan.absolutePath = p
				plan.resolvedURL = c.resolver.FileURL(p)
			}
		}

		plan.getter = fetchContent(c.fetcher, fetchableLocation(file, plan.absolutePath))
		plans = append(plans, plan)
	}

	return plans
}

// wasmOriginalPosition resolves a wasm location. The column is a byte offset.
// Symbol lookups are tried first when symbols is true; the disassembly is the
// fallback.
func (c *Container) wasmOriginalPosition(ctx context.Context, lm *loadedMap, raw m.Position, symbols bool) (m.OriginalPosition, bool) {
	if symbols {
		pos, ok, err := lm.wasm.symbols.OriginalPositionFor(ctx, raw)
		if err != nil {
			slog.Warn("wasm symbol lookup failed", "error", err)
		}

		if err == nil && ok {
			return pos, true
		}
	}

	line, ok := lm.wasm.disassembledLine(ctx, raw.Column)
	if !ok {
		return m.OriginalPosition{}, false
	}

	return m.OriginalPosition{
		URL:      lm.wasm.symbols.DecompiledURL(),
		Position: m.Position{Line: line, Column: 0},
	}, true
}

// wasmCompiledPositions maps an original or disassembly position back to
// bytecode offsets.
func (c *Container) wasmCompiledPositions(ctx context.Context, lm *loadedMap, listedURL string, pos m.Position) []m.Position {
	if listedURL == lm.wasm.symbols.DecompiledURL() {
		offset, ok := lm.wasm.offsetForLine(ctx, pos.Line)
		if !ok {
			return nil
		}

		return []m.Position{{Line: 0, Column: offset}}
	}

	positions, err := lm.wasm.symbols.CompiledPositionFor(ctx, listedURL, pos)
	if err != nil {
		slog.Warn("wasm compiled position lookup failed", "url", listedURL, "error", err)
		return nil
	}

	return positions
}
