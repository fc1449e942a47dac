package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	adaptermocks "mapwright.dev/pkg/mapwright/internal/adapter/mocks"
	"mapwright.dev/pkg/mapwright/internal/domain"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

const (
	wasmURL       = "file:///app/app.wasm"
	decompiledURL = "wasm://wasm/abc"
	rustURL       = "file:///src/lib.rs"
)

type wasmFixture struct {
	container  *domain.Container
	symbols    *adaptermocks.MockWasmSymbols
	module     *domain.Source
	decompiled *domain.Source
	rust       *domain.Source
}

// newWasmFixture registers a module whose disassembly has three lines at
// bytecode offsets 10, 14 and 20.
func newWasmFixture(t *testing.T) wasmFixture {
	t.Helper()

	symbols := adaptermocks.NewMockWasmSymbols(t)
	symbols.EXPECT().DecompiledURL().Return(decompiledURL).Maybe()
	symbols.EXPECT().Files().Return([]string{rustURL}).Maybe()

	provider := adaptermocks.NewMockWasmSymbolProvider(t)
	provider.EXPECT().Load(mock.Anything, wasmURL).Return(symbols, nil).Once()

	c := domain.NewContainer(domain.ContainerOptions{Wasm: provider})

	module, err := c.AddSource(context.Background(), domain.AddSourceArgs{URL: wasmURL, Wasm: true})
	require.NoError(t, err)
	require.Len(t, waitForMap(t, c, module), 2)

	decompiled, ok := c.SourceByURL(decompiledURL)
	require.True(t, ok)

	rust, ok := c.SourceByURL(rustURL)
	require.True(t, ok)

	return wasmFixture{container: c, symbols: symbols, module: module, decompiled: decompiled, rust: rust}
}

func expectDisassembly(symbols *adaptermocks.MockWasmSymbols) {
	symbols.EXPECT().Disassemble(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(adapter.DisassemblyChunk) error) error {
			return fn(adapter.DisassemblyChunk{
				Lines:           []string{"func $a", "i32.const 1", "end"},
				BytecodeOffsets: []int{10, 14, 20},
			})
		},
	).Once()
}

func TestContainer_Wasm_SourcesRegistered(t *testing.T) {
	f := newWasmFixture(t)

	assert.Equal(t, m.KindWasm, f.module.Kind())
	assert.Equal(t, m.KindMapped, f.decompiled.Kind())
	assert.Equal(t, m.KindMapped, f.rust.Kind())
	assert.Equal(t, m.MapStatusLoaded, f.container.MapStatus(f.module))
	assert.Equal(t, []*domain.Source{f.module}, f.container.CompiledSources(f.rust))
}

func TestContainer_Wasm_SymbolHit(t *testing.T) {
	// Arrange
	f := newWasmFixture(t)
	f.symbols.EXPECT().OriginalPositionFor(mock.Anything, pos(0, 15)).
		Return(m.OriginalPosition{URL: rustURL, Position: pos(2, 0)}, true, nil).Once()

	// Act
	preferred := f.container.PreferredUiLocation(context.Background(), at(f.module, 1, 16))

	// Assert
	assert.True(t, preferred.IsMapped)
	assert.Equal(t, at(f.rust, 3, 1), preferred.UiLocation)
}

func TestContainer_Wasm_SymbolMissFallsBackToDisassembly(t *testing.T) {
	// Arrange
	f := newWasmFixture(t)
	f.symbols.EXPECT().OriginalPositionFor(mock.Anything, pos(0, 15)).
		Return(m.OriginalPosition{}, false, nil).Once()
	expectDisassembly(f.symbols)

	// Act
	preferred := f.container.PreferredUiLocation(context.Background(), at(f.module, 1, 16))

	// Assert
	assert.True(t, preferred.IsMapped)
	assert.Equal(t, at(f.decompiled, 2, 1), preferred.UiLocation)
}

func TestContainer_Wasm_SymbolErrorFallsBackToDisassembly(t *testing.T) {
	f := newWasmFixture(t)
	f.symbols.EXPECT().OriginalPositionFor(mock.Anything, pos(0, 10)).
		Return(m.OriginalPosition{}, false, errors.New("dwarf unavailable")).Once()
	expectDisassembly(f.symbols)

	preferred := f.container.PreferredUiLocation(context.Background(), at(f.module, 1, 11))

	assert.Equal(t, at(f.decompiled, 1, 1), preferred.UiLocation)
}

func TestContainer_Wasm_SteppingOffUsesDisassembly(t *testing.T) {
	f := newWasmFixture(t)
	expectDisassembly(f.symbols)

	f.container.SetSourceMappedStepping(false)
	preferred := f.container.PreferredUiLocation(context.Background(), at(f.module, 1, 21))

	assert.True(t, preferred.IsMapped)
	assert.Equal(t, at(f.decompiled, 3, 1), preferred.UiLocation)
}

func TestContainer_Wasm_DecompiledContentIsIndexedOnce(t *testing.T) {
	f := newWasmFixture(t)
	expectDisassembly(f.symbols)

	content, err := f.decompiled.Content(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "func $a\ni32.const 1\nend", content)

	// The index built for the content also answers offset lookups.
	back := f.container.CompiledPositionFor(context.Background(), at(f.decompiled, 3, 1))
	assert.Equal(t, []domain.UiLocation{at(f.module, 1, 21)}, back)

	assert.Empty(t, f.container.CompiledPositionFor(context.Background(), at(f.decompiled, 9, 1)))
}

func TestContainer_Wasm_CompiledPositionForSymbolFile(t *testing.T) {
	f := newWasmFixture(t)
	f.symbols.EXPECT().CompiledPositionFor(mock.Anything, rustURL, pos(2, 0)).
		Return([]m.Position{pos(0, 15)}, nil).Once()

	back := f.container.CompiledPositionFor(context.Background(), at(f.rust, 3, 1))

	assert.Equal(t, []domain.UiLocation{at(f.module, 1, 16)}, back)
}

func TestContainer_Wasm_RemoveDisposesSymbols(t *testing.T) {
	f := newWasmFixture(t)
	f.symbols.EXPECT().Dispose().Return(nil).Once()

	f.container.RemoveSource(context.Background(), f.module, true)

	assert.Empty(t, f.container.Sources())
}

func TestContainer_Wasm_LoadFailure(t *testing.T) {
	// Arrange
	provider := adaptermocks.NewMockWasmSymbolProvider(t)
	provider.EXPECT().Load(mock.Anything, wasmURL).Return(nil, errors.New("no symbols")).Once()
	sink := &recordingSink{}
	c := domain.NewContainer(domain.ContainerOptions{Wasm: provider, Sink: sink})

	// Act
	module, err := c.AddSource(context.Background(), domain.AddSourceArgs{URL: wasmURL, Wasm: true})
	require.NoError(t, err)
	sources := waitForMap(t, c, module)

	// Assert
	assert.Empty(t, sources)
	assert.Equal(t, m.MapStatusFailed, c.MapStatus(module))
	assert.Equal(t, int64(1), c.Stats().Failed)
	require.Len(t, sink.messages(), 1)
	assert.Contains(t, sink.messages()[0], "no symbols")
}
