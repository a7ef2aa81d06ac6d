package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes that outlive a single
// file: unreadable inputs are aggregated and reported, an unusable
// destination aborts the run.
var (
	ErrUnreadableFile = errors.New("unreadable file")
	ErrWrite          = errors.New("cannot write tags file")
)

// Diagnostic is a non-fatal scan warning (unterminated comment,
// unmatched `end`, skipped file). Diagnostics go to the error stream
// and never abort the run.
type Diagnostic struct {
	File    Path
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
	}

	return fmt.Sprintf("%s: %s", d.File, d.Message)
}
