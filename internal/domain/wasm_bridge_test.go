package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	adaptermocks "mapwright.dev/pkg/mapwright/internal/adapter/mocks"
)

func streamChunks(chunks ...adapter.DisassemblyChunk) func(context.Context, func(adapter.DisassemblyChunk) error) error {
	return func(_ context.Context, fn func(adapter.DisassemblyChunk) error) error {
		for _, chunk := range chunks {
			if err := fn(chunk); err != nil {
				return err
			}
		}

		return nil
	}
}

func TestWasmBridge_DisassembledLine(t *testing.T) {
	symbols := adaptermocks.NewMockWasmSymbols(t)
	symbols.EXPECT().Disassemble(mock.Anything, mock.Anything).RunAndReturn(streamChunks(
		adapter.DisassemblyChunk{Lines: []string{"func $a", "i32.const 1"}, BytecodeOffsets: []int{10, 14}},
		adapter.DisassemblyChunk{Lines: []string{"end"}, BytecodeOffsets: []int{20}},
	)).Once()

	bridge := newWasmBridge(symbols)

	tests := []struct {
		offset int
		line   int
		ok     bool
	}{
		{offset: 5, ok: false},
		{offset: 10, line: 0, ok: true},
		{offset: 13, line: 0, ok: true},
		{offset: 14, line: 1, ok: true},
		{offset: 99, line: 2, ok: true},
	}

	for _, tt := range tests {
		line, ok := bridge.disassembledLine(context.Background(), tt.offset)
		assert.Equal(t, tt.ok, ok, "offset %d", tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
	}

	offset, ok := bridge.offsetForLine(context.Background(), 2)
	assert.True(t, ok)
	assert.Equal(t, 20, offset)

	_, ok = bridge.offsetForLine(context.Background(), 3)
	assert.False(t, ok)
}

func TestWasmBridge_FailedStreamIsRetried(t *testing.T) {
	// Arrange
	symbols := adaptermocks.NewMockWasmSymbols(t)
	symbols.EXPECT().Disassemble(mock.Anything, mock.Anything).Return(errors.New("stream closed")).Once()
	symbols.EXPECT().Disassemble(mock.Anything, mock.Anything).RunAndReturn(streamChunks(
		adapter.DisassemblyChunk{Lines: []string{"end"}, BytecodeOffsets: []int{4}},
	)).Once()

	bridge := newWasmBridge(symbols)

	// Act
	_, err := bridge.content(context.Background())
	require.Error(t, err)

	content, err := bridge.content(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "end", content)
}

func TestWasmBridge_MismatchedChunk(t *testing.T) {
	symbols := adaptermocks.NewMockWasmSymbols(t)
	symbols.EXPECT().Disassemble(mock.Anything, mock.Anything).RunAndReturn(streamChunks(
		adapter.DisassemblyChunk{Lines: []string{"a", "b"}, BytecodeOffsets: []int{1}},
	)).Once()

	_, err := newWasmBridge(symbols).content(context.Background())

	assert.ErrorContains(t, err, "2 lines and 1 offsets")
}

func TestWasmBridge_DisposeOnce(t *testing.T) {
	symbols := adaptermocks.NewMockWasmSymbols(t)
	symbols.EXPECT().Dispose().Return(errors.New("already closed")).Once()

	bridge := newWasmBridge(symbols)
	bridge.dispose()
	bridge.dispose()
}
