package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennytm/oztags/internal/domain"
	m "github.com/kennytm/oztags/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a previously generated tags file",
		Long:  "Browse the records of a previously generated tags file. The file is taken from the --output flag.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Tags: m.Path(outputFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
