package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kennytm/oztags/internal/domain"
	domainmocks "github.com/kennytm/oztags/internal/domain/mocks"
	m "github.com/kennytm/oztags/internal/model"
)

// newTestRootCmd builds a fresh root command wired to the given mock
// workflow, restoring the package wiring afterwards.
func newTestRootCmd(t *testing.T, mockWorkflow domain.Workflow) *cobra.Command {
	t.Helper()

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_GeneratesWithDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	tc := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Output == m.Path("tags") &&
			args.Threads == 1 &&
			len(args.Paths) == 0 &&
			len(args.Exclude) == 0
	})).Return(nil)

	tc.SetArgs([]string{})
	require.NoError(t, tc.Execute())
}

func TestRootCmd_PassesPathsAndFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	tc := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Output == m.Path("out/tags") &&
			args.Threads == 4 &&
			len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("a.oz") &&
			args.Paths[1] == m.Path("src/*.oz") &&
			len(args.Exclude) == 1 &&
			args.Exclude[0] == "_test"
	})).Return(nil)

	tc.SetArgs([]string{"-o", "out/tags", "-p", "4", "-x", "_test", "a.oz", "src/*.oz"})
	require.NoError(t, tc.Execute())
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "oztags [file|glob...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
}

func TestParsePaths(t *testing.T) {
	assert.Empty(t, parsePaths(nil))
	assert.Equal(t, []m.Path{"a.oz", "b.oz"}, parsePaths([]string{"a.oz", "b.oz"}))
}
