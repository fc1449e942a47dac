package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapwright.dev/pkg/mapwright/internal/domain"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

func TestBreakpointsCmd(t *testing.T) {
	// Arrange
	mockWorkflow := useMockWorkflow(t)

	var got domain.BreakpointsArgs
	mockWorkflow.EXPECT().Breakpoints(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, args domain.BreakpointsArgs) error {
			got = args
			return nil
		},
	).Once()

	// Act
	_, err := executeCommand(t, newBreakpointsCmd(), "breakpoints", "src/app.ts", "12")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "src/app.ts", got.Target)
	assert.Equal(t, 12, got.Line)
	assert.Equal(t, 1, got.Column)
	assert.Equal(t, []m.Path{"./..."}, got.Paths)
}

func TestBreakpointsCmd_NotMapped(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.EXPECT().Breakpoints(mock.Anything, mock.Anything).Return(domain.ErrNotMapped).Once()

	_, err := executeCommand(t, newBreakpointsCmd(), "breakpoints", "src/app.ts", "4:2", "./dist")

	assert.ErrorIs(t, err, domain.ErrNotMapped)
}

func TestBreakpointsCmd_InvalidPosition(t *testing.T) {
	useMockWorkflow(t)

	_, err := executeCommand(t, newBreakpointsCmd(), "breakpoints", "src/app.ts", "0")

	require.Error(t, err)
}
