package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennytm/oztags/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listParallelFlag int
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [file|glob...]",
		Short: "List source files and symbol counts",
		Long: `List the symbols that would be indexed, per file and kind,
without writing a tags file.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: listExcludeFlags,
				Threads: listParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 1, "number of files scanned in parallel")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
