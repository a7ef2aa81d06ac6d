package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kennytm/oztags/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func TestSimpleUI_DisplayCounts(t *testing.T) {
	t.Run("renders a table with totals", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		err := ui.DisplayCounts([]m.FileCount{
			{File: "a.oz", Procedures: 2, Classes: 1, Methods: 3},
			{File: "b.oz", Procedures: 1},
		}, 7)
		require.NoError(t, err)

		rendered := out.String()
		assert.Contains(t, rendered, "a.oz")
		assert.Contains(t, rendered, "b.oz")
		assert.Contains(t, rendered, "PATH")
		assert.Contains(t, rendered, "TOTAL FILES 2")
		assert.Contains(t, rendered, "7 symbol(s) in 2 file(s)")
	})

	t.Run("empty input", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		require.NoError(t, ui.DisplayCounts(nil, 0))
		assert.Contains(t, out.String(), "No source files found")
	})
}

func TestSimpleUI_DisplaySymbols(t *testing.T) {
	cmd, out, _ := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplaySymbols([]m.Symbol{
		{Name: "Main", Kind: m.KindProcedure, File: "main.oz", Line: 1},
		{Name: "init", Kind: m.KindMethod, File: "counter.oz", Line: 3, Scope: []string{"Counter"}},
	})
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "f Main  main.oz:1")
	assert.Contains(t, rendered, "m init (Counter)  counter.oz:3")
}

func TestSimpleUI_DisplayWarnings(t *testing.T) {
	cmd, out, errOut := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayWarnings([]m.Diagnostic{
		{File: "a.oz", Line: 3, Message: "unmatched end"},
		{File: "b.oz", Message: "skipped: unreadable"},
	})

	assert.Empty(t, out.String(), "warnings must go to the error stream")
	assert.Contains(t, errOut.String(), "warning: a.oz:3: unmatched end")
	assert.Contains(t, errOut.String(), "warning: b.oz: skipped: unreadable")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	t.Run("without skipped files", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary("tags", 12, 3, 0)
		assert.Equal(t, "wrote 12 tag(s) from 3 file(s) to tags\n", out.String())
	})

	t.Run("with skipped files", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary("tags", 12, 3, 2)
		assert.Equal(t, "wrote 12 tag(s) from 3 file(s) to tags (2 file(s) skipped)\n", out.String())
	})
}
