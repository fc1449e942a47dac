package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "mapwright", configBaseName)
	assert.Equal(t, "mapwright.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "scan.parallel", parallelConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "source_maps.stepping", steppingConfigKey)
	assert.Equal(t, 4, defaultParallel)
	assert.Equal(t, "table", defaultFormat)
	assert.Equal(t, ".mapwright.log", defaultLogFilename)
	assert.Equal(t, "MAPWRIGHT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfiguredTimeouts(t *testing.T) {
	viper.Set(resolveTimeoutKey, 250)
	t.Cleanup(func() { viper.Set(resolveTimeoutKey, nil) })

	timeouts := configuredTimeouts()

	assert.Equal(t, 250*time.Millisecond, timeouts.ResolveLocation)
}
