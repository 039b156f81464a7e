package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crusher.dev/pkg/crusher/internal/domain"
	domainmocks "crusher.dev/pkg/crusher/internal/domain/mocks"
	m "crusher.dev/pkg/crusher/internal/model"
)

func TestListCmd_EstimatesWithDiff(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Estimate(mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.File == m.Path("main.rs") &&
			args.ShowDiff &&
			args.Strategy == m.StrategyTypeName
	})).Return(nil).Once()

	cmd.SetArgs([]string{"list", "-f", "main.rs", "-s", "typename", "--diff"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_PropagatesError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Estimate(mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.Dir == m.Path("src") && !args.ShowDiff
	})).Return(errors.New("boom")).Once()

	cmd.SetArgs([]string{"list", "--input-dir", "src"})
	require.Error(t, cmd.Execute())
}
