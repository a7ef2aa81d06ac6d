// Package adapter contains filesystem and persistence adapters for the
// oztags CLI.
package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/kennytm/oztags/internal/model"
)

// DefaultGlob is used when no input paths are given on the command line.
const DefaultGlob = "*.oz"

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when loading source files. It hides direct `os` access so
// the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Resolve expands the command-line arguments into concrete file
	// paths, preserving argument order and deduplicating. Arguments
	// containing glob metacharacters are expanded; plain paths are
	// passed through untouched so missing files can still be reported
	// per file later. An empty argument list resolves DefaultGlob in
	// the working directory.
	Resolve(args []m.Path) ([]m.Path, error)

	// Load reads the file at path and decodes it into lines. Arbitrary
	// line endings (LF, CRLF, lone CR) are tolerated and invalid UTF-8
	// is replaced rather than rejected.
	Load(path m.Path) (m.SourceFile, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter implementation.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Resolve expands globs and deduplicates the given arguments.
func (a *LocalSourceFSAdapter) Resolve(args []m.Path) ([]m.Path, error) {
	patterns := make([]string, 0, len(args))
	for _, arg := range args {
		patterns = append(patterns, string(arg))
	}

	if len(patterns) == 0 {
		patterns = []string{DefaultGlob}
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	add := func(p string) {
		if _, dup := seen[p]; dup {
			return
		}

		seen[p] = struct{}{}
		paths = append(paths, m.Path(p))
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[") {
			add(pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			add(match)
		}
	}

	return paths, nil
}

// Load reads a file and splits it into lines.
func (a *LocalSourceFSAdapter) Load(path m.Path) (m.SourceFile, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("%w: %s: %v", m.ErrUnreadableFile, path, err)
	}

	return m.SourceFile{Path: path, Lines: SplitLines(raw)}, nil
}

// SplitLines decodes raw file content into lines, normalizing LF, CRLF
// and lone-CR endings. Invalid UTF-8 sequences are replaced with the
// replacement rune so one bad byte does not reject a whole file.
func SplitLines(raw []byte) []string {
	raw = bytes.ToValidUTF8(raw, []byte("�"))
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	raw = bytes.ReplaceAll(raw, []byte("\r"), []byte("\n"))

	lines := strings.Split(string(raw), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
