package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mapwright"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	excludeFlagName         = "exclude"
	parallelFlagName        = "parallel"
	formatFlagName          = "format"
	verboseFlagName         = "verbose"
	logFileFlagName         = "log-file"
	webRootFlagName         = "web-root"
	baseURLFlagName         = "base-url"
	steppingFlagName        = "stepping"
	storageFallbackFlagName = "storage-fallback"
	cacheDirFlagName        = "cache-dir"
	loadTimeoutFlagName     = "load-timeout"
	resolveTimeoutFlagName  = "resolve-timeout"
	minPauseFlagName        = "min-pause"
	cumulativePauseFlagName = "cumulative-pause"
	outputTimeoutFlagName   = "output-timeout"
	siblingsFlagName        = "siblings"

	excludeConfigKey         = "paths.exclude"
	webRootConfigKey         = "paths.web_root"
	baseURLConfigKey         = "paths.base_url"
	parallelConfigKey        = "scan.parallel"
	formatConfigKey          = "output.format"
	steppingConfigKey        = "source_maps.stepping"
	mapExcludeConfigKey      = "source_maps.exclude"
	storageFallbackConfigKey = "source_maps.storage_fallback"
	cacheSizeConfigKey       = "cache.size"
	cacheDirConfigKey        = "cache.dir"
	loadTimeoutKey           = "timeouts.load"
	resolveTimeoutKey        = "timeouts.resolve_location"
	minPauseKey              = "timeouts.source_map_min_pause"
	cumulativePauseKey       = "timeouts.source_map_cumulative_pause"
	outputTimeoutKey         = "timeouts.output"

	defaultParallel        = 4
	defaultFormat          = "table"
	defaultStepping        = true
	defaultStorageFallback = false
	defaultCacheDir        = ""

	envPrefix = "MAPWRIGHT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mapwright.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	timeouts := m.DefaultTimeouts()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(webRootConfigKey, "")
	viper.SetDefault(baseURLConfigKey, "")
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(steppingConfigKey, defaultStepping)
	viper.SetDefault(mapExcludeConfigKey, adapter.DefaultSourceMapExclude)
	viper.SetDefault(storageFallbackConfigKey, defaultStorageFallback)
	viper.SetDefault(cacheSizeConfigKey, adapter.DefaultSourceMapCacheSize)
	viper.SetDefault(cacheDirConfigKey, defaultCacheDir)
	viper.SetDefault(loadTimeoutKey, timeouts.Load.Milliseconds())
	viper.SetDefault(resolveTimeoutKey, timeouts.ResolveLocation.Milliseconds())
	viper.SetDefault(minPauseKey, timeouts.SourceMapMinPause.Milliseconds())
	viper.SetDefault(cumulativePauseKey, timeouts.SourceMapCumulativePause.Milliseconds())
	viper.SetDefault(outputTimeoutKey, timeouts.Output.Milliseconds())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// configuredTimeouts reads the millisecond budgets from configuration.
func configuredTimeouts() m.Timeouts {
	return m.TimeoutsFromMillis(
		viper.GetInt64(loadTimeoutKey),
		viper.GetInt64(resolveTimeoutKey),
		viper.GetInt64(minPauseKey),
		viper.GetInt64(cumulativePauseKey),
		viper.GetInt64(outputTimeoutKey),
	)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
