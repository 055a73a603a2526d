package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/mutmap/internal/domain"
	m "github.com/mouse-blink/mutmap/internal/model"
)

func TestViewCmd(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{
		Mapped:  m.Path(defaultMapped),
		Summary: m.Path(defaultSummary),
	}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_Flags(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{
		Mapped:  m.Path("other.csv"),
		Summary: m.Path("summary.yaml"),
		Verbose: true,
	}).Return(nil)

	cmd.SetArgs([]string{"view", "-i", "other.csv", "--summary", "summary.yaml", "--verbose"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_MissingTable(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.Anything).Return(domain.ErrMissingInput)

	cmd.SetArgs([]string{"view"})
	err := cmd.Execute()

	require.True(t, errors.Is(err, domain.ErrMissingInput))
}
