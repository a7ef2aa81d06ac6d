package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestIsTTY_BufferIsNotTerminal(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	t.Run("simple when not a TTY", func(t *testing.T) {
		ui := NewUI(cmd, false)
		assert.IsType(t, &SimpleUI{}, ui)
	})

	t.Run("interactive when a TTY", func(t *testing.T) {
		ui := NewUI(cmd, true)
		assert.IsType(t, &TUI{}, ui)
	})
}
