package cmd

import (
	"github.com/spf13/cobra"

	"mapwright.dev/pkg/mapwright/internal/domain"
)

func newResolveCmd() *cobra.Command {
	var siblings bool

	cmd := &cobra.Command{
		Use:   "resolve <script> <line[:column]> [paths...]",
		Short: "Map a compiled location to its original source",
		Long: `Resolve a one-based location in a compiled script to the location a user
should see, following nested source maps as far as they go.

` + pathPatternsHelp,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, column, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				ScanArgs: scanArgs(scanTargets(args[0], args[2:])),
				Target:   args[0],
				Line:     line,
				Column:   column,
				Siblings: siblings,
			})
		},
	}

	cmd.Flags().BoolVar(&siblings, siblingsFlagName, false, "also list every equivalent location")

	return cmd
}

// scanTargets defaults the scanned paths to the target itself.
func scanTargets(target string, paths []string) []string {
	if len(paths) > 0 {
		return paths
	}

	return []string{target}
}

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func init() {
	rootCmd.AddCommand(resolveCmd)
}
