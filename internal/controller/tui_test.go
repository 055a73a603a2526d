package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mutmap/internal/model"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i+1)
	}

	return lines
}

func press(model pagerModel, keys ...string) pagerModel {
	for _, k := range keys {
		var msg tea.KeyMsg

		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		updated, _ := model.Update(msg)
		model = updated.(pagerModel)
	}

	return model
}

func TestTUI_WaitPrintsCollectedSections(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf, strings.NewReader(""))
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithViewMode()))
	require.NoError(t, ui.DisplayMappingSummary(ctx, sampleMappingSummary()))
	ui.DisplayOutput(ctx, "Summary", "summary.yaml")

	assert.Empty(t, buf.String(), "nothing is printed before Wait")

	ui.Wait(ctx)
	ui.Close(ctx)

	output := buf.String()
	assert.Contains(t, output, "Mapped mutations")
	assert.Contains(t, output, "Exact Match")
	assert.Contains(t, output, "Summary written to summary.yaml")
}

func TestTUI_WaitWithoutOutput(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf, strings.NewReader(""))
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithExtractMode()))
	ui.Wait(ctx)

	assert.Contains(t, buf.String(), "Nothing to show")
}

func TestTUI_StartResetsSections(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf, strings.NewReader(""))
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	require.NoError(t, ui.DisplayExtraction(ctx, m.ExtractionSummary{FilesScanned: 1}))
	require.NoError(t, ui.Start(ctx, WithMapMode()))

	assert.Nil(t, ui.lines())
}

func TestPagerModel_NeedsPagination(t *testing.T) {
	model := newPagerModel("t", numberedLines(30))
	assert.False(t, model.needsPagination(), "unknown height never paginates")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.False(t, updated.(pagerModel).needsPagination())

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 15})
	assert.True(t, updated.(pagerModel).needsPagination())
}

func TestPagerModel_Navigation(t *testing.T) {
	updated, _ := newPagerModel("t", numberedLines(30)).Update(tea.WindowSizeMsg{Width: 80, Height: 15})
	model := updated.(pagerModel)

	require.Equal(t, 10, model.linesPerPage())
	require.Equal(t, 20, model.maxOffset())

	model = press(model, "j", "j", "j")
	assert.Equal(t, 3, model.offset)

	model = press(model, "k")
	assert.Equal(t, 2, model.offset)

	model = press(model, "d")
	assert.Equal(t, 12, model.offset)

	model = press(model, "d", "d")
	assert.Equal(t, 20, model.offset, "offset is clamped at the bottom")

	model = press(model, "u")
	assert.Equal(t, 10, model.offset)

	model = press(model, "g")
	assert.Equal(t, 0, model.offset)

	model = press(model, "k")
	assert.Equal(t, 0, model.offset, "offset is clamped at the top")

	model = press(model, "G")
	assert.Equal(t, 20, model.offset)

	view := model.View()
	assert.Contains(t, view, "line 21")
	assert.Contains(t, view, "line 30")
	assert.NotContains(t, view, "line 20\n")
	assert.Contains(t, view, "Showing 21-30 of 30")
}

func TestPagerModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			model := newPagerModel("t", numberedLines(3))

			updated, cmd := model.Update(func() tea.KeyMsg {
				if k == "esc" {
					return tea.KeyMsg{Type: tea.KeyEsc}
				}

				return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
			}())
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, updated.(pagerModel).quitting)
			assert.Empty(t, updated.(pagerModel).View())
		})
	}
}
