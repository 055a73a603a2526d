package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayExtraction prints the extraction totals and per-file failures.
func (s *SimpleUI) DisplayExtraction(ctx context.Context, summary m.ExtractionSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderExtraction(summary))

	return nil
}

// DisplayDecodeIssues prints how many input records were skipped and why.
func (s *SimpleUI) DisplayDecodeIssues(ctx context.Context, source m.Path, issues []m.DecodeIssue) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderDecodeIssues(source, issues))
}

// DisplayMappingSummary prints status counts, a row sample and node kind counts.
func (s *SimpleUI) DisplayMappingSummary(ctx context.Context, summary m.MappingSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderMappingSummary(summary))

	return nil
}

// DisplayUnmapped prints every unresolved mutation with a diff of its text.
func (s *SimpleUI) DisplayUnmapped(ctx context.Context, rows []m.AnnotatedMutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderUnmapped(rows)
	if err != nil {
		return err
	}

	s.printf("%s", text)

	return nil
}

// DisplayOutput reports a written artifact.
func (s *SimpleUI) DisplayOutput(ctx context.Context, label string, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s written to %s\n", label, path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderExtraction(summary m.ExtractionSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf, "Files", "With Blocks", "Blocks", "Failures")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})
	table.Append([]string{
		strconv.Itoa(summary.FilesScanned),
		strconv.Itoa(summary.FilesWithBlocks),
		strconv.Itoa(summary.Blocks),
		strconv.Itoa(len(summary.Failures)),
	})
	table.Render()

	if len(summary.Failures) > 0 {
		buf.WriteString("\nFailed to parse:\n")

		for _, failure := range summary.Failures {
			fmt.Fprintf(&buf, "  %s: %v\n", failure.Path, failure.Err)
		}
	}

	return buf.String()
}

func renderDecodeIssues(source m.Path, issues []m.DecodeIssue) string {
	if len(issues) == 0 {
		return ""
	}

	byKind := map[m.IssueKind]int{}
	for _, issue := range issues {
		byKind[issue.Kind]++
	}

	kinds := make([]string, 0, len(byKind))
	for kind, count := range byKind {
		kinds = append(kinds, fmt.Sprintf("%d %s", count, kind))
	}

	sort.Strings(kinds)

	return fmt.Sprintf("Skipped %d record(s) in %s (%s)\n", len(issues), source, strings.Join(kinds, ", "))
}

func renderMappingSummary(summary m.MappingSummary) string {
	var buf bytes.Buffer

	buf.WriteString("Mapping Status Distribution:\n")

	statusTable := newTable(&buf, "Status", "Count")
	statusTable.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, count := range summary.StatusCounts {
		statusTable.Append([]string{count.Label, strconv.Itoa(count.Count)})
	}

	statusTable.SetFooter([]string{fmt.Sprintf("Mapped %d", summary.Mapped), strconv.Itoa(summary.Total)})
	statusTable.Render()

	if len(summary.Sample) > 0 {
		buf.WriteString("\nSample of mapped mutations:\n")

		sampleTable := newTable(&buf, "MutantID", "Class", "Line", "AST_NodeType", "MappingStatus")
		for _, row := range summary.Sample {
			sampleTable.Append([]string{
				row.ID,
				row.QualifiedClass,
				strconv.Itoa(row.Line),
				string(row.NodeKind()),
				row.Status.String(),
			})
		}

		sampleTable.Render()
	}

	if len(summary.NodeKindCounts) > 0 {
		buf.WriteString("\nNode types in mapped mutations:\n")

		kindTable := newTable(&buf, "Node Type", "Count")
		kindTable.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

		for _, count := range summary.NodeKindCounts {
			kindTable.Append([]string{count.Label, strconv.Itoa(count.Count)})
		}

		kindTable.Render()
	}

	return buf.String()
}

func renderUnmapped(rows []m.AnnotatedMutation) (string, error) {
	var buf bytes.Buffer

	for _, row := range rows {
		if row.Status.Kind != m.NoMatchFound {
			continue
		}

		fmt.Fprintf(&buf, "\nMutant %s (%s) %s:%d\n", row.ID, row.Operator, row.ClassKey(), row.Line)

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(row.OriginalText),
			B:        difflib.SplitLines(row.MutatedText),
			FromFile: "original",
			ToFile:   "mutated",
			Context:  0,
		})
		if err != nil {
			return "", fmt.Errorf("diff mutant %s: %w", row.ID, err)
		}

		buf.WriteString(diff)
	}

	return buf.String(), nil
}
