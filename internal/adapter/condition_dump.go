package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/mutmap/internal/model"
)

const (
	labelClass     = "Class:"
	labelLine      = "Line:"
	labelNodeType  = "Node Type:"
	labelCondition = "Condition:"

	unknownLine       = "Unknown"
	emptyCondition    = "N/A"
	errorMarkerPrefix = "=== "
	errorMarkerInfix  = " Error: "
	errorMarkerSuffix = " ==="
)

// BlockSeparator delimits blocks in a condition dump.
var BlockSeparator = strings.Repeat("=", 50)

var (
	positionLinePattern = regexp.MustCompile(`line=(\d+)`)
	firstNumberPattern  = regexp.MustCompile(`\d+`)
)

// ConditionDump is the decoded content of a condition-block dump.
type ConditionDump struct {
	Blocks []m.ConditionBlock
	Issues []m.DecodeIssue
	// FileErrors holds the error markers left by files that failed to parse.
	FileErrors []string
}

// DecodeConditionDump decodes the blocks of a condition dump.
//
// A block is kept only when it has a class, a resolvable positive line and a
// node type. Skipped blocks are reported in Issues. The returned error is only
// set when r itself fails.
//
// A "Condition: N/A" line decodes to an empty Condition, the same value
// ConditionDumpWriter writes as N/A.
func DecodeConditionDump(r io.Reader) (ConditionDump, error) {
	var dump ConditionDump

	content, err := io.ReadAll(r)
	if err != nil {
		return dump, fmt.Errorf("read condition dump: %w", err)
	}

	ordinal := 0

	for _, chunk := range strings.Split(string(content), BlockSeparator) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		ordinal++

		fields, markers := scanBlockFields(chunk)
		dump.FileErrors = append(dump.FileErrors, markers...)

		if fields.empty() {
			if len(markers) == 0 {
				dump.Issues = append(dump.Issues, m.DecodeIssue{
					Kind:   m.IssueMalformedLine,
					Line:   ordinal,
					Detail: "block has no labelled fields",
				})
			}

			continue
		}

		block, issue, ok := fields.toBlock(ordinal)
		if !ok {
			logBlockIssue(issue)
			dump.Issues = append(dump.Issues, issue)

			continue
		}

		dump.Blocks = append(dump.Blocks, block)
	}

	return dump, nil
}

type blockFields struct {
	class     *string
	line      *string
	nodeType  *string
	condition *string
}

func (f blockFields) empty() bool {
	return f.class == nil && f.line == nil && f.nodeType == nil && f.condition == nil
}

func scanBlockFields(chunk string) (blockFields, []string) {
	var (
		fields  blockFields
		markers []string
	)

	for _, raw := range strings.Split(chunk, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, labelClass):
			fields.class = labelValue(line, labelClass)
		case strings.HasPrefix(line, labelLine):
			fields.line = labelValue(line, labelLine)
		case strings.HasPrefix(line, labelNodeType):
			fields.nodeType = labelValue(line, labelNodeType)
		case strings.HasPrefix(line, labelCondition):
			fields.condition = labelValue(line, labelCondition)
		case isErrorMarker(line):
			markers = append(markers, line)
		}
	}

	return fields, markers
}

func labelValue(line, label string) *string {
	value := strings.TrimSpace(strings.TrimPrefix(line, label))
	return &value
}

func isErrorMarker(line string) bool {
	return strings.HasPrefix(line, errorMarkerPrefix) &&
		strings.HasSuffix(line, errorMarkerSuffix) &&
		strings.Contains(line, errorMarkerInfix)
}

func (f blockFields) toBlock(ordinal int) (m.ConditionBlock, m.DecodeIssue, bool) {
	if f.line != nil && *f.line != "" {
		if _, ok := ParseBlockLine(*f.line); !ok {
			return m.ConditionBlock{}, m.DecodeIssue{
				Kind:   m.IssueUnresolvedPosition,
				Line:   ordinal,
				Detail: fmt.Sprintf("unresolved line %q", *f.line),
			}, false
		}
	}

	missing := make([]string, 0, 3)
	if f.class == nil || *f.class == "" {
		missing = append(missing, "class")
	}

	if f.line == nil || *f.line == "" {
		missing = append(missing, "line")
	}

	if f.nodeType == nil || *f.nodeType == "" {
		missing = append(missing, "node type")
	}

	if len(missing) > 0 {
		return m.ConditionBlock{}, m.DecodeIssue{
			Kind:   m.IssueMissingField,
			Line:   ordinal,
			Detail: "missing " + strings.Join(missing, ", "),
		}, false
	}

	line, _ := ParseBlockLine(*f.line)

	condition := ""
	if f.condition != nil && *f.condition != emptyCondition {
		condition = *f.condition
	}

	return m.ConditionBlock{
		ClassName: *f.class,
		Line:      line,
		Kind:      m.NodeKind(*f.nodeType),
		Condition: condition,
	}, m.DecodeIssue{}, true
}

// ParseBlockLine decodes the value of a "Line:" field. It accepts a bare
// integer, a "Position(line=N, column=M)" rendering, or any text with an
// embedded integer. "Unknown", text without digits and non-positive values
// yield ok == false.
func ParseBlockLine(value string) (int, bool) {
	value = strings.TrimSpace(value)

	var digits string

	switch {
	case value == "" || value == unknownLine:
		return 0, false
	case strings.Contains(value, "Position"):
		match := positionLinePattern.FindStringSubmatch(value)
		if match == nil {
			return 0, false
		}

		digits = match[1]
	default:
		digits = firstNumberPattern.FindString(value)
	}

	line, err := strconv.Atoi(digits)
	if err != nil || line <= 0 {
		return 0, false
	}

	return line, true
}

func logBlockIssue(issue m.DecodeIssue) {
	if issue.Kind == m.IssueUnresolvedPosition {
		slog.Info("Excluding condition block without position", "block", issue.Line, "detail", issue.Detail)
		return
	}

	slog.Debug("Excluding condition block", "block", issue.Line, "kind", issue.Kind, "detail", issue.Detail)
}

// ConditionDumpWriter encodes condition blocks in the dump format read by
// DecodeConditionDump.
type ConditionDumpWriter struct {
	w   io.Writer
	err error
}

// NewConditionDumpWriter returns a writer emitting to w.
func NewConditionDumpWriter(w io.Writer) *ConditionDumpWriter {
	return &ConditionDumpWriter{w: w}
}

// WriteBlock appends one block.
func (cw *ConditionDumpWriter) WriteBlock(block m.ConditionBlock) error {
	condition := block.Condition
	if condition == "" {
		condition = emptyCondition
	}

	cw.printf("%s\n", BlockSeparator)
	cw.printf("%s %s\n", labelClass, block.ClassName)
	cw.printf("%s %d\n", labelLine, block.Line)
	cw.printf("%s %s\n", labelNodeType, block.Kind)
	cw.printf("%s %s\n", labelCondition, singleLine(condition))
	cw.printf("%s\n\n", BlockSeparator)

	return cw.err
}

// WriteFileError appends the error marker of a file that failed to parse.
func (cw *ConditionDumpWriter) WriteFileError(path m.Path, cause error) error {
	message := "unknown error"
	if cause != nil {
		message = singleLine(cause.Error())
	}

	cw.printf("%s%s%s%s%s\n", errorMarkerPrefix, filepath.Base(string(path)), errorMarkerInfix, message, errorMarkerSuffix)

	return cw.err
}

// WriteExtraction appends the blocks of one file, or its error marker.
func (cw *ConditionDumpWriter) WriteExtraction(file m.FileExtraction) error {
	if file.Err != nil {
		return cw.WriteFileError(file.Path, file.Err)
	}

	for _, block := range file.Blocks {
		if err := cw.WriteBlock(block); err != nil {
			return err
		}
	}

	return nil
}

func (cw *ConditionDumpWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}

	if _, err := fmt.Fprintf(cw.w, format, args...); err != nil {
		cw.err = fmt.Errorf("write condition dump: %w", err)
	}
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
