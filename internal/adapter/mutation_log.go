package adapter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	m "github.com/mouse-blink/mutmap/internal/model"
)

const (
	mutationSeparator   = "|==>"
	mutationFieldSep    = ":"
	minMutationFields   = 7
	mutationLineField   = 5
	mutationOrigField   = 6
	maxMutationLogBytes = 16 * 1024 * 1024
)

// MutationLog is the decoded content of a mutants log.
type MutationLog struct {
	Records []m.MutationRecord
	Issues  []m.DecodeIssue
}

// DecodeMutationLog decodes one mutation per non-empty line of r.
//
// Lines with fewer than 7 colon-delimited fields before the "|==>" separator,
// or with a non-numeric line field, are skipped and reported in Issues. The
// returned error is only set when r itself fails.
//
// OriginalText is every field from the seventh on, re-joined with ":", so a
// ternary or enhanced for in the source text is kept whole.
func DecodeMutationLog(r io.Reader) (MutationLog, error) {
	var log MutationLog

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMutationLogBytes)

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, issue, ok := decodeMutationLine(line, lineNo)
		if !ok {
			slog.Debug("Skipping mutation log line", "line", lineNo, "kind", issue.Kind, "detail", issue.Detail)
			log.Issues = append(log.Issues, issue)

			continue
		}

		log.Records = append(log.Records, record)
	}

	if err := scanner.Err(); err != nil {
		return log, fmt.Errorf("read mutation log: %w", err)
	}

	return log, nil
}

func decodeMutationLine(line string, lineNo int) (m.MutationRecord, m.DecodeIssue, bool) {
	parts := strings.Split(line, mutationSeparator)
	before := strings.TrimSpace(parts[0])

	after := ""
	if len(parts) > 1 {
		after = strings.TrimSpace(parts[1])
	}

	fields := strings.Split(before, mutationFieldSep)
	if len(fields) < minMutationFields {
		return m.MutationRecord{}, m.DecodeIssue{
			Kind:   m.IssueMalformedLine,
			Line:   lineNo,
			Detail: fmt.Sprintf("expected at least %d fields, got %d", minMutationFields, len(fields)),
		}, false
	}

	lineNumber, err := strconv.Atoi(strings.TrimSpace(fields[mutationLineField]))
	if err != nil {
		return m.MutationRecord{}, m.DecodeIssue{
			Kind:   m.IssueMalformedLine,
			Line:   lineNo,
			Detail: fmt.Sprintf("invalid line number %q", fields[mutationLineField]),
		}, false
	}

	return m.MutationRecord{
		ID:             fields[0],
		Operator:       fields[1],
		Variant:        fields[2],
		Polarity:       fields[3],
		QualifiedClass: fields[4],
		Line:           lineNumber,
		OriginalText:   strings.Join(fields[mutationOrigField:], mutationFieldSep),
		MutatedText:    after,
	}, m.DecodeIssue{}, true
}
