package model

import "fmt"

// IssueKind classifies a record that a decoder skipped.
type IssueKind string

const (
	// IssueMalformedLine is a line or block that does not have the expected shape.
	IssueMalformedLine IssueKind = "malformed_line"
	// IssueMissingField is a block without a class, line or node type.
	IssueMissingField IssueKind = "missing_field"
	// IssueUnresolvedPosition is a block whose line is "Unknown" or unparsable.
	IssueUnresolvedPosition IssueKind = "unresolved_position"
)

// DecodeIssue describes one skipped input record. Line is the 1-based line
// (mutation log) or block ordinal (condition dump) it was found at.
type DecodeIssue struct {
	Kind   IssueKind
	Line   int
	Detail string
}

func (i DecodeIssue) String() string {
	return fmt.Sprintf("%d: %s: %s", i.Line, i.Kind, i.Detail)
}
