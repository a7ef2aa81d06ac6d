// Package controller provides output front-ends for displaying
// indexing results.
package controller

import (
	m "github.com/kennytm/oztags/internal/model"
)

// UI defines the interface for presenting indexing output.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplayCounts shows per-file symbol counts.
	DisplayCounts(counts []m.FileCount, total int) error

	// DisplaySymbols shows tag records loaded from a tags file.
	DisplaySymbols(symbols []m.Symbol) error

	// DisplayWarnings reports non-fatal diagnostics on the error
	// stream.
	DisplayWarnings(diags []m.Diagnostic)

	// DisplaySummary reports the outcome of a generation run.
	DisplaySummary(output m.Path, records, loaded, skipped int)
}
