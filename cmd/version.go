package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const (
	toolName          = "mapwright"
	defaultModulePath = "mapwright.dev/pkg/mapwright"
	devVersion        = "dev"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the mapwright version",
		Long:  "Displays the mapwright release, its module path and the Go toolchain it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range versionLines(debug.ReadBuildInfo()) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build info. Local builds report the dev version.
func versionLines(info *debug.BuildInfo, ok bool) []string {
	if !ok || info == nil {
		return []string{toolName + " " + devVersion, "module " + defaultModulePath}
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = devVersion
	}

	modulePath := info.Main.Path
	if modulePath == "" {
		modulePath = defaultModulePath
	}

	return []string{
		toolName + " " + version,
		"module " + modulePath,
		"go " + info.GoVersion,
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
