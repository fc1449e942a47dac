package cmd

import (
	"github.com/spf13/cobra"

	"mapwright.dev/pkg/mapwright/internal/domain"
)

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources [paths...]",
		Short: "Register compiled scripts and list every known source",
		Long: `Register the compiled scripts under the given paths, load their source maps,
and list every source the registry knows about.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./..."}
			}

			return workflow.Sources(cmd.Context(), domain.SourcesArgs{ScanArgs: scanArgs(args)})
		},
	}
}

// sourcesCmd represents the sources command.
var sourcesCmd = newSourcesCmd()

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
