package cmd

import (
	"github.com/spf13/cobra"

	"mapwright.dev/pkg/mapwright/internal/domain"
)

func newBreakpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakpoints <source> <line[:column]> [paths...]",
		Short: "List the compiled locations of an original source location",
		Long: `Register the compiled scripts under the given paths and list every compiled
location a breakpoint at the original location would be set at.

` + pathPatternsHelp,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, column, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			paths := args[2:]
			if len(paths) == 0 {
				paths = []string{"./..."}
			}

			return workflow.Breakpoints(cmd.Context(), domain.BreakpointsArgs{
				ScanArgs: scanArgs(paths),
				Target:   args[0],
				Line:     line,
				Column:   column,
			})
		},
	}
}

// breakpointsCmd represents the breakpoints command.
var breakpointsCmd = newBreakpointsCmd()

func init() {
	rootCmd.AddCommand(breakpointsCmd)
}
