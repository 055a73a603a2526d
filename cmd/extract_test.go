package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/mutmap/internal/domain"
	m "github.com/mouse-blink/mutmap/internal/model"
)

func TestExtractCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newExtractCmd())

	mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return args.Root == m.Path(defaultSource) &&
			args.Output == m.Path(defaultBlocks) &&
			args.Parallel == defaultParallel &&
			len(args.Exclude) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"extract"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestExtractCmd_PositionalRootAndFlags(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newExtractCmd())

	mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return args.Root == m.Path("src/main/java") &&
			args.Output == m.Path("out/blocks.txt") &&
			args.Parallel == 4
	})).Return(nil)

	cmd.SetArgs([]string{"extract", "src/main/java", "-o", "out/blocks.txt", "-p", "4", "--source", "ignored"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestExtractCmd_SourceFlag(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newExtractCmd())

	mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return args.Root == m.Path("lib/src")
	})).Return(nil)

	cmd.SetArgs([]string{"extract", "-s", "lib/src"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestExtractCmd_WithExcludePatterns(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newExtractCmd())

	mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return len(args.Exclude) == 2 &&
			args.Exclude[0] == "/generated/" &&
			args.Exclude[1] == `Test\.java$`
	})).Return(nil)

	cmd.SetArgs([]string{"extract", "-x", "/generated/", "-x", `Test\.java$`})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestExtractCmd_ParserFlags(t *testing.T) {
	extractCmd := newExtractCmd()
	cmd, mockWorkflow := newMockedCmd(t, extractCmd)

	mockWorkflow.On("Extract", mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{"extract", "--strict=false", "--ternary", "--max-file-size", "2048"})
	require.NoError(t, cmd.Execute())

	flags := extractCmd.Flags()

	strict, err := flags.GetBool(strictFlagName)
	require.NoError(t, err)
	assert.False(t, strict)

	ternary, err := flags.GetBool(ternaryFlagName)
	require.NoError(t, err)
	assert.True(t, ternary)

	maxSize, err := flags.GetInt64(maxFileSizeFlagName)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), maxSize)
}

func TestExtractCmd_TooManyArgs(t *testing.T) {
	cmd, _ := newMockedCmd(t, newExtractCmd())

	cmd.SetArgs([]string{"extract", "a", "b"})
	require.Error(t, cmd.Execute())
}

func TestExtractCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow := newMockedCmd(t, newExtractCmd())

	failure := errors.New("boom")
	mockWorkflow.On("Extract", mock.Anything, mock.Anything).Return(failure)

	cmd.SetArgs([]string{"extract"})
	err := cmd.Execute()

	require.ErrorIs(t, err, failure)
}
