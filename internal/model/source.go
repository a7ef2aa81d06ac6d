package model

// SourceFile is one loaded input file: its path and decoded lines.
// Immutable once loaded; the scanner consumes it line by line.
type SourceFile struct {
	Path  Path
	Lines []string
}
