// Package cmd provides the root command and CLI setup for oztags.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kennytm/oztags/internal/adapter"
	"github.com/kennytm/oztags/internal/controller"
	"github.com/kennytm/oztags/internal/domain"
	m "github.com/kennytm/oztags/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var tagStore adapter.TagStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tagStore = adapter.NewTagStore()
	workflow = domain.NewWorkflow(fsAdapter, tagStore, ui)
}

var outputFlag string
var parallelFlag int
var excludeFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oztags [file|glob...]",
		Short: "Generate a tags file for Oz source",
		Long: `Oztags scans Oz source files for proc, fun, class and meth
declarations and writes a ctags-compatible tags file for editor
tooling such as Tagbar.

Inputs may be files or glob patterns:
  - oztags              scan *.oz in the working directory
  - oztags src/*.oz     scan matching files
  - oztags A.oz B.oz    scan the named files

Unreadable files are reported and skipped; the run only fails when the
tags file cannot be written or every input failed to load.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Generate(domain.GenerateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeFlags,
				Output:  m.Path(outputFlag),
				Threads: parallelFlag,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "tags", "path of the tags file")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files scanned in parallel")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
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
