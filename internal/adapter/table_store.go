package adapter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// Column names of the mutants and mapped tables.
const (
	ColumnMutantID  = "MutantID"
	ColumnOperator  = "Operator"
	ColumnExtra     = "Extra"
	ColumnPosNeg    = "POS_NEG"
	ColumnClass     = "Class"
	ColumnLine      = "Line"
	ColumnOriginal  = "Original"
	ColumnMutated   = "Mutated"
	ColumnNodeType  = "AST_NodeType"
	ColumnCondition = "AST_Condition"
	ColumnStatus    = "MappingStatus"
)

// MutantColumns is the header of the mutants table.
var MutantColumns = []string{
	ColumnMutantID, ColumnOperator, ColumnExtra, ColumnPosNeg,
	ColumnClass, ColumnLine, ColumnOriginal, ColumnMutated,
}

// MappedColumns is the header of the mapped table.
var MappedColumns = append(append([]string{}, MutantColumns...), ColumnNodeType, ColumnCondition, ColumnStatus)

// ErrMissingColumn is returned when a table lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// TableStore persists mutation tables and mapping summaries.
type TableStore interface {
	ReadMutations(ctx context.Context, path m.Path) (MutationLog, error)
	WriteMutations(ctx context.Context, path m.Path, records []m.MutationRecord) error
	ReadMapped(ctx context.Context, path m.Path) ([]m.AnnotatedMutation, error)
	WriteMapped(ctx context.Context, path m.Path, rows []m.AnnotatedMutation) error
	WriteSummary(ctx context.Context, path m.Path, summary m.MappingSummary) error
}

// LocalTableStore stores tables as CSV and summaries as YAML through a
// SourceFSAdapter.
type LocalTableStore struct {
	fs SourceFSAdapter
}

// NewLocalTableStore constructs a LocalTableStore on top of fs.
func NewLocalTableStore(fs SourceFSAdapter) *LocalTableStore {
	return &LocalTableStore{fs: fs}
}

// WriteMutations writes the mutants table.
func (s *LocalTableStore) WriteMutations(ctx context.Context, path m.Path, records []m.MutationRecord) error {
	return s.fs.WriteFile(ctx, path, func(w io.Writer) error {
		writer := csv.NewWriter(w)

		if err := writer.Write(MutantColumns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}

		for _, record := range records {
			if err := writer.Write(mutationRow(record)); err != nil {
				return fmt.Errorf("write mutation %s: %w", record.ID, err)
			}
		}

		writer.Flush()

		return writer.Error()
	})
}

// WriteMapped writes the mapped table, one row per annotated mutation.
func (s *LocalTableStore) WriteMapped(ctx context.Context, path m.Path, rows []m.AnnotatedMutation) error {
	return s.fs.WriteFile(ctx, path, func(w io.Writer) error {
		writer := csv.NewWriter(w)

		if err := writer.Write(MappedColumns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}

		for _, row := range rows {
			record := append(mutationRow(row.MutationRecord), string(row.NodeKind()), row.Condition(), row.Status.String())
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write mapped row %s: %w", row.ID, err)
			}
		}

		writer.Flush()

		return writer.Error()
	})
}

// ReadMutations reads a mutants table. Rows with an unparsable line number
// are skipped and reported as issues.
func (s *LocalTableStore) ReadMutations(ctx context.Context, path m.Path) (MutationLog, error) {
	var log MutationLog

	err := s.readTable(ctx, path, MutantColumns, func(row int, get func(string) string) {
		record, ok := recordFromRow(get)
		if !ok {
			slog.Warn("Skipping mutants table row", "path", path, "row", row, "line", get(ColumnLine))
			log.Issues = append(log.Issues, m.DecodeIssue{
				Kind:   m.IssueMalformedLine,
				Line:   row,
				Detail: fmt.Sprintf("invalid line number %q", get(ColumnLine)),
			})

			return
		}

		log.Records = append(log.Records, record)
	})

	return log, err
}

// ReadMapped reads a mapped table back. Resolved blocks only carry the node
// type and condition; their line is not part of the table.
func (s *LocalTableStore) ReadMapped(ctx context.Context, path m.Path) ([]m.AnnotatedMutation, error) {
	var (
		rows    []m.AnnotatedMutation
		readErr error
	)

	err := s.readTable(ctx, path, MappedColumns, func(row int, get func(string) string) {
		if readErr != nil {
			return
		}

		record, ok := recordFromRow(get)
		if !ok {
			slog.Warn("Skipping mapped table row", "path", path, "row", row, "line", get(ColumnLine))
			return
		}

		status, err := m.ParseMatchStatus(get(ColumnStatus))
		if err != nil {
			readErr = fmt.Errorf("row %d: %w", row, err)
			return
		}

		annotated := m.AnnotatedMutation{MutationRecord: record, Status: status}
		if status.Mapped() {
			annotated.Block = &m.ConditionBlock{
				ClassName: record.ClassKey(),
				Kind:      m.NodeKind(get(ColumnNodeType)),
				Condition: get(ColumnCondition),
			}
		}

		rows = append(rows, annotated)
	})
	if err != nil {
		return nil, err
	}

	if readErr != nil {
		return nil, readErr
	}

	return rows, nil
}

// WriteSummary writes the mapping summary as YAML.
func (s *LocalTableStore) WriteSummary(ctx context.Context, path m.Path, summary m.MappingSummary) error {
	return s.fs.WriteFile(ctx, path, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}

		return encoder.Close()
	})
}

func (s *LocalTableStore) readTable(ctx context.Context, path m.Path, required []string, fn func(row int, get func(string) string)) error {
	file, err := s.fs.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open table %s: %w", path, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close table", "path", path, "error", err)
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for _, column := range required {
		if _, ok := index[column]; !ok {
			return fmt.Errorf("%w %q in %s", ErrMissingColumn, column, path)
		}
	}

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		fn(row, func(column string) string {
			i := index[column]
			if i >= len(values) {
				return ""
			}

			return values[i]
		})
	}
}

func mutationRow(record m.MutationRecord) []string {
	return []string{
		record.ID,
		record.Operator,
		record.Variant,
		record.Polarity,
		record.QualifiedClass,
		strconv.Itoa(record.Line),
		record.OriginalText,
		record.MutatedText,
	}
}

func recordFromRow(get func(string) string) (m.MutationRecord, bool) {
	line, err := strconv.Atoi(get(ColumnLine))
	if err != nil {
		return m.MutationRecord{}, false
	}

	return m.MutationRecord{
		ID:             get(ColumnMutantID),
		Operator:       get(ColumnOperator),
		Variant:        get(ColumnExtra),
		Polarity:       get(ColumnPosNeg),
		QualifiedClass: get(ColumnClass),
		Line:           line,
		OriginalText:   get(ColumnOriginal),
		MutatedText:    get(ColumnMutated),
	}, true
}
