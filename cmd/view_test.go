package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kennytm/oztags/internal/domain"
	domainmocks "github.com/kennytm/oztags/internal/domain/mocks"
	m "github.com/kennytm/oztags/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd(t, mockWorkflow)
	cmd.AddCommand(newViewCmd())

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Tags == m.Path("tags")
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd(t, mockWorkflow)
	cmd.AddCommand(newViewCmd())

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Tags == m.Path("custom/tags")
	})).Return(nil)

	cmd.SetArgs([]string{"--output", "custom/tags", "view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd(t, mockWorkflow)
	cmd.AddCommand(newViewCmd())

	cmd.SetArgs([]string{"view", "unexpected"})
	require.Error(t, cmd.Execute())
}
