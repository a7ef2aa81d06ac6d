package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/kennytm/oztags/internal/model"
)

// TUI implements UI using Bubble Tea for interactive symbol browsing.
// Counts, warnings and summaries stay plain text; only DisplaySymbols
// is interactive.
type TUI struct {
	input  io.Reader
	output io.Writer
	errOut io.Writer
}

// NewTUI creates a new TUI reading key input from input and writing to
// the given streams.
func NewTUI(input io.Reader, output, errOut io.Writer) *TUI {
	return &TUI{input: input, output: output, errOut: errOut}
}

// DisplayCounts prints per-file symbol counts.
func (t *TUI) DisplayCounts(counts []m.FileCount, total int) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(t.output, "No source files found")
		return err
	}

	for _, fc := range counts {
		_, _ = fmt.Fprintf(t.output, "%s: %d procedure(s), %d class(es), %d method(s)\n",
			fc.File, fc.Procedures, fc.Classes, fc.Methods)
	}

	_, err := fmt.Fprintf(t.output, "%d symbol(s) in %d file(s)\n", total, len(counts))

	return err
}

// DisplaySymbols opens an interactive, filterable browser over the
// tag records.
func (t *TUI) DisplaySymbols(symbols []m.Symbol) error {
	if len(symbols) == 0 {
		_, err := fmt.Fprintln(t.output, "No tags found")
		return err
	}

	model := newSymbolModel(symbols)

	program := tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayWarnings reports diagnostics on the error stream.
func (t *TUI) DisplayWarnings(diags []m.Diagnostic) {
	for _, d := range diags {
		_, _ = fmt.Fprintf(t.errOut, "warning: %s\n", d)
	}
}

// DisplaySummary reports the outcome of a generation run.
func (t *TUI) DisplaySummary(output m.Path, records, loaded, skipped int) {
	_, _ = fmt.Fprintf(t.output, "wrote %d tag(s) from %d file(s) to %s", records, loaded, output)

	if skipped > 0 {
		_, _ = fmt.Fprintf(t.output, " (%d file(s) skipped)", skipped)
	}

	_, _ = fmt.Fprintln(t.output)
}
