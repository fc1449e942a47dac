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

func TestResolveCmd(t *testing.T) {
	// Arrange
	mockWorkflow := useMockWorkflow(t)

	var got domain.ResolveArgs
	mockWorkflow.EXPECT().Resolve(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, args domain.ResolveArgs) error {
			got = args
			return nil
		},
	).Once()

	// Act
	_, err := executeCommand(t, newResolveCmd(), "resolve", "dist/app.js", "3:7", "--siblings")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "dist/app.js", got.Target)
	assert.Equal(t, 3, got.Line)
	assert.Equal(t, 7, got.Column)
	assert.True(t, got.Siblings)
	assert.Equal(t, []m.Path{"dist/app.js"}, got.Paths)
}

func TestResolveCmd_ScanPaths(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	var got domain.ResolveArgs
	mockWorkflow.EXPECT().Resolve(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, args domain.ResolveArgs) error {
			got = args
			return nil
		},
	).Once()

	_, err := executeCommand(t, newResolveCmd(), "resolve", "http://localhost/app.js", "10", "./public/...")

	require.NoError(t, err)
	assert.Equal(t, 1, got.Column)
	assert.False(t, got.Siblings)
	assert.Equal(t, []m.Path{"./public/..."}, got.Paths)
}

func TestResolveCmd_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing position", []string{"resolve", "dist/app.js"}},
		{"bad position", []string{"resolve", "dist/app.js", "x:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No workflow call is expected.
			useMockWorkflow(t)

			_, err := executeCommand(t, newResolveCmd(), tt.args...)
			require.Error(t, err)
		})
	}
}
