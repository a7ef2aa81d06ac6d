package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/kennytm/oztags/internal/model"
)

// SimpleUI implements UI using cobra Command's plain output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCounts renders per-file symbol counts as a table.
func (s *SimpleUI) DisplayCounts(counts []m.FileCount, total int) error {
	if len(counts) == 0 {
		s.cmd.Println("No source files found")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Procedures", "Classes", "Methods"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	procs, classes, meths := 0, 0, 0

	for _, fc := range counts {
		table.Append([]string{
			string(fc.File),
			fmt.Sprintf("%d", fc.Procedures),
			fmt.Sprintf("%d", fc.Classes),
			fmt.Sprintf("%d", fc.Methods),
		})

		procs += fc.Procedures
		classes += fc.Classes
		meths += fc.Methods
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		fmt.Sprintf("%d", procs),
		fmt.Sprintf("%d", classes),
		fmt.Sprintf("%d", meths),
	})

	table.Render()
	s.cmd.Printf("\n%s", tableBuffer.String())
	s.cmd.Printf("\n%d symbol(s) in %d file(s)\n", total, len(counts))

	return nil
}

// DisplaySymbols prints one line per tag record.
func (s *SimpleUI) DisplaySymbols(symbols []m.Symbol) error {
	if len(symbols) == 0 {
		s.cmd.Println("No tags found")
		return nil
	}

	for _, sym := range symbols {
		line := fmt.Sprintf("%c %s", sym.Kind.Char(), sym.Name)
		if scope := sym.ScopeName(); scope != "" {
			line += fmt.Sprintf(" (%s)", scope)
		}

		line += fmt.Sprintf("  %s:%d", sym.File, sym.Line)
		s.cmd.Println(line)
	}

	return nil
}

// DisplayWarnings reports diagnostics on the error stream.
func (s *SimpleUI) DisplayWarnings(diags []m.Diagnostic) {
	for _, d := range diags {
		s.cmd.PrintErrf("warning: %s\n", d)
	}
}

// DisplaySummary reports the outcome of a generation run.
func (s *SimpleUI) DisplaySummary(output m.Path, records, loaded, skipped int) {
	s.cmd.Printf("wrote %d tag(s) from %d file(s) to %s", records, loaded, output)

	if skipped > 0 {
		s.cmd.Printf(" (%d file(s) skipped)", skipped)
	}

	s.cmd.Println()
}
