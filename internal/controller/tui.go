package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "github.com/mouse-blink/mutmap/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI by collecting every report and showing it in a
// scrollable Bubble Tea pager once the workflow waits on it.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu       sync.Mutex
	mode     StartMode
	sections []string
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Start resets collected output and records the mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = cfg.mode
	t.sections = nil

	return nil
}

// Close discards collected output.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sections = nil
}

// Wait shows the collected output. Output that fits the terminal is
// printed directly; longer output opens the pager until the user quits.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	model := newPagerModel(t.title(), t.lines())
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(f.Fd()); err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, _ = fmt.Fprint(t.output, model.View())
		return
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		_, _ = fmt.Fprint(t.output, model.View())
	}
}

// DisplayExtraction records the extraction totals.
func (t *TUI) DisplayExtraction(ctx context.Context, summary m.ExtractionSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.addSection("Extraction", renderExtraction(summary))

	return nil
}

// DisplayDecodeIssues records skipped input records.
func (t *TUI) DisplayDecodeIssues(ctx context.Context, source m.Path, issues []m.DecodeIssue) {
	if err := ctx.Err(); err != nil {
		return
	}

	if text := renderDecodeIssues(source, issues); text != "" {
		t.addSection("", text)
	}
}

// DisplayMappingSummary records the mapping statistics.
func (t *TUI) DisplayMappingSummary(ctx context.Context, summary m.MappingSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.addSection("Summary", renderMappingSummary(summary))

	return nil
}

// DisplayUnmapped records unresolved mutations with their diffs.
func (t *TUI) DisplayUnmapped(ctx context.Context, rows []m.AnnotatedMutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderUnmapped(rows)
	if err != nil {
		return err
	}

	if text != "" {
		t.addSection("Unmapped mutations", text)
	}

	return nil
}

// DisplayOutput records a written artifact.
func (t *TUI) DisplayOutput(ctx context.Context, label string, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.addSection("", footerStyle.Render(fmt.Sprintf("%s written to %s", label, path)))
}

func (t *TUI) addSection(heading, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if heading != "" {
		body = sectionStyle.Render(heading) + "\n" + body
	}

	t.sections = append(t.sections, strings.TrimRight(body, "\n"))
}

func (t *TUI) title() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.mode.title()
}

func (t *TUI) lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.sections) == 0 {
		return nil
	}

	return strings.Split(strings.Join(t.sections, "\n\n"), "\n")
}

type pagerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

func (k pagerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

func (k pagerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.PageUp, k.PageDown}, {k.Top, k.Bottom, k.Quit}}
}

func defaultPagerKeys() pagerKeyMap {
	return pagerKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// pagerModel is the Bubble Tea model for scrolling through report lines.
type pagerModel struct {
	title    string
	lines    []string
	height   int
	width    int
	offset   int
	keys     pagerKeyMap
	help     help.Model
	quitting bool
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{
		title: title,
		lines: lines,
		keys:  defaultPagerKeys(),
		help:  help.New(),
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.help.Width = msg.Width
		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, pm.keys.Down):
		pm.offset++
	case key.Matches(msg, pm.keys.Up):
		pm.offset--
	case key.Matches(msg, pm.keys.PageDown):
		pm.offset += pm.linesPerPage()
	case key.Matches(msg, pm.keys.PageUp):
		pm.offset -= pm.linesPerPage()
	case key.Matches(msg, pm.keys.Top):
		pm.offset = 0
	case key.Matches(msg, pm.keys.Bottom):
		pm.offset = pm.maxOffset()
	}

	pm.offset = max(0, min(pm.offset, pm.maxOffset()))

	return pm, nil
}

// linesPerPage reserves room for the title and the two footer lines.
func (pm pagerModel) linesPerPage() int {
	if pm.height == 0 {
		return 20
	}

	return max(1, pm.height-5)
}

func (pm pagerModel) maxOffset() int {
	return max(0, len(pm.lines)-pm.linesPerPage())
}

func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.linesPerPage()
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	if pm.title != "" {
		b.WriteString(titleStyle.Render("mutmap · "+pm.title) + "\n\n")
	}

	if len(pm.lines) == 0 {
		b.WriteString("Nothing to show\n")
		return b.String()
	}

	if !pm.needsPagination() {
		b.WriteString(strings.Join(pm.lines, "\n") + "\n")
		return b.String()
	}

	end := min(pm.offset+pm.linesPerPage(), len(pm.lines))
	b.WriteString(strings.Join(pm.lines[pm.offset:end], "\n") + "\n\n")

	b.WriteString(footerStyle.Render(fmt.Sprintf("Showing %d-%d of %d", pm.offset+1, end, len(pm.lines))) + "\n")
	b.WriteString(pm.help.View(pm.keys))

	return b.String()
}
