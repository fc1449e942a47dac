// Package cmd provides the root command and CLI setup for mapwright.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	"mapwright.dev/pkg/mapwright/internal/controller"
	"mapwright.dev/pkg/mapwright/internal/domain"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

// workflow is built from configuration before the first command runs. Tests
// replace it with a mock.
var workflow domain.Workflow

var (
	excludePatterns []string
	parallelFlag    int
	formatFlag      string
	verboseFlag     bool
	logFileFlag     string
)

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./dist/...     recursively scan dist directory
  - ./dist ./lib   scan multiple directories`

const rootLongDescription = `Mapwright registers compiled JavaScript and WebAssembly files together with
their source maps and resolves locations between the compiled code and the
original sources, the way a debug adapter does for a live session.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mapwright",
		Short:         "Source map registry and location resolver",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow != nil {
				return nil
			}

			built, err := buildWorkflow(cmd.Root())
			if err != nil {
				return err
			}

			workflow = built

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of scripts read and registered in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: table or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level and print source events")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.String(webRootFlagName, viper.GetString(webRootConfigKey), "directory served as the web root (webpack:// and base URL paths)")
	bindFlagToConfig(flags.Lookup(webRootFlagName), webRootConfigKey)

	flags.String(baseURLFlagName, viper.GetString(baseURLConfigKey), "URL the web root is served from")
	bindFlagToConfig(flags.Lookup(baseURLFlagName), baseURLConfigKey)

	flags.Bool(steppingFlagName, viper.GetBool(steppingConfigKey), "resolve locations through source maps")
	bindFlagToConfig(flags.Lookup(steppingFlagName), steppingConfigKey)

	flags.Bool(storageFallbackFlagName, viper.GetBool(storageFallbackConfigKey), "retry failed source maps from the local web root")
	bindFlagToConfig(flags.Lookup(storageFallbackFlagName), storageFallbackConfigKey)

	flags.String(cacheDirFlagName, viper.GetString(cacheDirConfigKey), "directory for the parsed source map cache (disabled when empty)")
	bindFlagToConfig(flags.Lookup(cacheDirFlagName), cacheDirConfigKey)

	flags.Int64(loadTimeoutFlagName, viper.GetInt64(loadTimeoutKey), "source map load budget in ms (0 means unbounded)")
	bindFlagToConfig(flags.Lookup(loadTimeoutFlagName), loadTimeoutKey)

	flags.Int64(resolveTimeoutFlagName, viper.GetInt64(resolveTimeoutKey), "budget in ms for waiting on a map while resolving a location")
	bindFlagToConfig(flags.Lookup(resolveTimeoutFlagName), resolveTimeoutKey)

	flags.Int64(minPauseFlagName, viper.GetInt64(minPauseKey), "minimum wait in ms for source maps at a pause")
	bindFlagToConfig(flags.Lookup(minPauseFlagName), minPauseKey)

	flags.Int64(cumulativePauseFlagName, viper.GetInt64(cumulativePauseKey), "extra wait in ms shared by all pauses")
	bindFlagToConfig(flags.Lookup(cumulativePauseFlagName), cumulativePauseKey)

	flags.Int64(outputTimeoutFlagName, viper.GetInt64(outputTimeoutKey), "budget in ms for resolving locations in console output")
	bindFlagToConfig(flags.Lookup(outputTimeoutFlagName), outputTimeoutKey)
}

// buildWorkflow wires the collaborators from configuration. out receives
// reports and diagnostics.
func buildWorkflow(out *cobra.Command) (domain.Workflow, error) {
	format, ok := controller.ParseFormat(viper.GetString(formatConfigKey))
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", viper.GetString(formatConfigKey))
	}

	resolver, err := adapter.NewLocalPathResolver(adapter.PathResolverOptions{
		WebRoot: viper.GetString(webRootConfigKey),
		BaseURL: viper.GetString(baseURLConfigKey),
		Exclude: viper.GetStringSlice(mapExcludeConfigKey),
	})
	if err != nil {
		return nil, err
	}

	timeouts := configuredTimeouts()
	fetcher := adapter.NewLocalContentFetcher(timeouts.Load)

	var disk *adapter.SourceMapDiskCache

	if dir := viper.GetString(cacheDirConfigKey); dir != "" {
		disk, err = adapter.OpenSourceMapDiskCache(dir)
		if err != nil {
			return nil, err
		}
	}

	parser, err := adapter.NewLocalSourceMapParser(fetcher, viper.GetInt(cacheSizeConfigKey), disk)
	if err != nil {
		return nil, err
	}

	ui := controller.NewSimpleUI(out, format, viper.GetBool(logVerboseKey))

	container := domain.NewContainer(domain.ContainerOptions{
		Parser:                      parser,
		Resolver:                    resolver,
		Fetcher:                     fetcher,
		Sink:                        ui,
		Timeouts:                    timeouts,
		StorageFallback:             viper.GetBool(storageFallbackConfigKey),
		DisableSourceMappedStepping: !viper.GetBool(steppingConfigKey),
	})

	streamer := domain.NewScriptStreamer(adapter.NewLocalSourceFSAdapter())

	return domain.NewWorkflowPipeline(streamer, ui, container, resolver), nil
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func scanArgs(paths []string) domain.ScanArgs {
	return domain.ScanArgs{
		Paths:   parsePaths(paths),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Threads: viper.GetInt(parallelConfigKey),
	}
}

// parsePosition parses LINE or LINE:COLUMN; the column defaults to 1.
func parsePosition(value string) (int, int, error) {
	lineText, columnText, hasColumn := strings.Cut(value, ":")

	line, err := strconv.Atoi(lineText)
	if err != nil || line < 1 {
		return 0, 0, fmt.Errorf("invalid line in %q", value)
	}

	if !hasColumn {
		return line, 1, nil
	}

	column, err := strconv.Atoi(columnText)
	if err != nil || column < 1 {
		return 0, 0, fmt.Errorf("invalid column in %q", value)
	}

	return line, column, nil
}
