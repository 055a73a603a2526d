// Package controller provides output adapters for displaying extraction and
// mapping results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeExtract StartMode = iota
	ModeMap
	ModeView
)

func (s StartMode) title() string {
	switch s {
	case ModeExtract:
		return "Condition extraction"
	case ModeMap:
		return "Mutation mapping"
	case ModeView:
		return "Mapped mutations"
	}

	return ""
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithExtractMode sets the UI to extraction mode.
func WithExtractMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeExtract
	}
}

// WithMapMode sets the UI to mapping mode.
func WithMapMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMap
	}
}

// WithViewMode sets the UI to view mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for reporting workflow results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayExtraction(ctx context.Context, summary m.ExtractionSummary) error
	DisplayDecodeIssues(ctx context.Context, source m.Path, issues []m.DecodeIssue)
	DisplayMappingSummary(ctx context.Context, summary m.MappingSummary) error
	DisplayUnmapped(ctx context.Context, rows []m.AnnotatedMutation) error
	DisplayOutput(ctx context.Context, label string, path m.Path)
}

// NewUI returns a TUI bound to the command's streams when useTTY is set,
// and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
