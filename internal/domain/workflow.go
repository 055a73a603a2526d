package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mouse-blink/mutmap/internal/adapter"
	"github.com/mouse-blink/mutmap/internal/controller"
	m "github.com/mouse-blink/mutmap/internal/model"
)

// ErrMissingInput is returned when a required input artifact does not exist.
var ErrMissingInput = errors.New("missing input")

const (
	hintExtract = "run `mutmap extract` first"
	hintParse   = "run `mutmap parse` or point --mutants at a mutants.log"
	hintMap     = "run `mutmap map` first"
	hintSources = "check --source"
	hintLog     = "check --log"
)

// ExtractArgs contains the arguments for extracting condition blocks.
type ExtractArgs struct {
	Root     m.Path `validate:"required"`
	Output   m.Path `validate:"required"`
	Exclude  []string
	Parallel int `validate:"gte=0"`
}

// ParseArgs contains the arguments for converting a mutation log to a table.
type ParseArgs struct {
	Log    m.Path `validate:"required"`
	Output m.Path `validate:"required"`
}

// MapArgs contains the arguments for mapping mutations to condition blocks.
// Mutants may be a mutants table or a raw .log file.
type MapArgs struct {
	Blocks         m.Path `validate:"required"`
	Mutants        m.Path `validate:"required"`
	Output         m.Path `validate:"required"`
	Summary        m.Path
	Metrics        m.Path
	IncludeTernary bool
	TieBreak       TieBreak `validate:"omitempty,oneof=first innermost"`
	Parallel       int      `validate:"gte=0"`
	Verbose        bool
}

// RunArgs chains extraction and mapping. Map.Blocks defaults to
// Extract.Output.
type RunArgs struct {
	Extract ExtractArgs
	Map     MapArgs
}

// ViewArgs contains the arguments for displaying a mapped table.
type ViewArgs struct {
	Mapped  m.Path `validate:"required"`
	Summary m.Path
	Metrics m.Path
	Verbose bool
}

// Workflow defines the commands exposed by the CLI.
type Workflow interface {
	Extract(ctx context.Context, args ExtractArgs) error
	Parse(ctx context.Context, args ParseArgs) error
	Map(ctx context.Context, args MapArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.TableStore
	adapter.MetricsWriter
	controller.UI

	extractor ConditionExtractor
	mapper    Mapper
	validate  *validator.Validate
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	tableStore adapter.TableStore,
	metrics adapter.MetricsWriter,
	ui controller.UI,
	extractor ConditionExtractor,
	mapper Mapper,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		TableStore:      tableStore,
		MetricsWriter:   metrics,
		UI:              ui,
		extractor:       extractor,
		mapper:          mapper,
		validate:        validator.New(),
	}
}

func (w *workflow) Extract(ctx context.Context, args ExtractArgs) error {
	if err := w.validate.Struct(args); err != nil {
		return fmt.Errorf("invalid extract arguments: %w", err)
	}

	if err := w.requireInput(ctx, args.Root, hintSources); err != nil {
		return err
	}

	return w.session(ctx, controller.WithExtractMode(), func() error {
		return w.extract(ctx, args)
	})
}

func (w *workflow) Parse(ctx context.Context, args ParseArgs) error {
	if err := w.validate.Struct(args); err != nil {
		return fmt.Errorf("invalid parse arguments: %w", err)
	}

	if err := w.requireInput(ctx, args.Log, hintLog); err != nil {
		return err
	}

	return w.session(ctx, controller.WithMapMode(), func() error {
		log, err := w.decodeLog(ctx, args.Log)
		if err != nil {
			return err
		}

		if err := w.WriteMutations(ctx, args.Output, log.Records); err != nil {
			slog.Error("Failed to write mutants table", "path", args.Output, "error", err)
			return fmt.Errorf("write mutants table: %w", err)
		}

		w.DisplayOutput(ctx, fmt.Sprintf("Mutants table (%d rows)", len(log.Records)), args.Output)

		return nil
	})
}

func (w *workflow) Map(ctx context.Context, args MapArgs) error {
	if err := w.validate.Struct(args); err != nil {
		return fmt.Errorf("invalid map arguments: %w", err)
	}

	if err := w.requireMapInputs(ctx, args); err != nil {
		return err
	}

	return w.session(ctx, controller.WithMapMode(), func() error {
		return w.mapMutations(ctx, args)
	})
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if args.Map.Blocks == "" {
		args.Map.Blocks = args.Extract.Output
	}

	if err := w.validate.Struct(args); err != nil {
		return fmt.Errorf("invalid run arguments: %w", err)
	}

	if err := w.requireInput(ctx, args.Extract.Root, hintSources); err != nil {
		return err
	}

	if err := w.requireInput(ctx, args.Map.Mutants, hintParse); err != nil {
		return err
	}

	return w.session(ctx, controller.WithMapMode(), func() error {
		if err := w.extract(ctx, args.Extract); err != nil {
			return err
		}

		return w.mapMutations(ctx, args.Map)
	})
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.validate.Struct(args); err != nil {
		return fmt.Errorf("invalid view arguments: %w", err)
	}

	if err := w.requireInput(ctx, args.Mapped, hintMap); err != nil {
		return err
	}

	return w.session(ctx, controller.WithViewMode(), func() error {
		rows, err := w.ReadMapped(ctx, args.Mapped)
		if err != nil {
			slog.Error("Failed to read mapped table", "path", args.Mapped, "error", err)
			return fmt.Errorf("read mapped table: %w", err)
		}

		return w.report(ctx, rows, reportTargets{Summary: args.Summary, Metrics: args.Metrics, Verbose: args.Verbose})
	})
}

// session runs fn between UI Start and Close, waiting on the UI only when
// fn succeeds.
func (w *workflow) session(ctx context.Context, mode controller.StartOption, fn func() error) error {
	if err := w.Start(ctx, mode); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := fn(); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) extract(ctx context.Context, args ExtractArgs) error {
	results, summary, err := w.extractor.Extract(ctx, args.Root, args.Parallel, args.Exclude...)
	if err != nil {
		slog.Error("Failed to extract condition blocks", "root", args.Root, "error", err)
		return fmt.Errorf("extract condition blocks: %w", err)
	}

	err = w.WriteFile(ctx, args.Output, func(out io.Writer) error {
		writer := adapter.NewConditionDumpWriter(out)

		for _, result := range results {
			if err := writer.WriteExtraction(result); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to write condition dump", "path", args.Output, "error", err)
		return fmt.Errorf("write condition dump: %w", err)
	}

	slog.Info("Extracted condition blocks", "files", summary.FilesScanned, "blocks", summary.Blocks, "failures", len(summary.Failures))

	if err := w.DisplayExtraction(ctx, summary); err != nil {
		return fmt.Errorf("display extraction: %w", err)
	}

	w.DisplayOutput(ctx, "Condition blocks", args.Output)

	return nil
}

func (w *workflow) mapMutations(ctx context.Context, args MapArgs) error {
	index, err := w.loadIndex(ctx, args.Blocks, args.IncludeTernary)
	if err != nil {
		return err
	}

	records, err := w.loadMutations(ctx, args.Mutants)
	if err != nil {
		return err
	}

	rows, err := w.mapper.Map(ctx, records, index, MapOptions{TieBreak: args.TieBreak, Parallel: args.Parallel})
	if err != nil {
		slog.Error("Failed to map mutations", "error", err)
		return fmt.Errorf("map mutations: %w", err)
	}

	if err := w.WriteMapped(ctx, args.Output, rows); err != nil {
		slog.Error("Failed to write mapped table", "path", args.Output, "error", err)
		return fmt.Errorf("write mapped table: %w", err)
	}

	w.DisplayOutput(ctx, "Mapped table", args.Output)

	return w.report(ctx, rows, reportTargets{Summary: args.Summary, Metrics: args.Metrics, Verbose: args.Verbose})
}

// reportTargets lists the optional outputs of a mapping report.
type reportTargets struct {
	Summary m.Path
	Metrics m.Path
	Verbose bool
}

func (w *workflow) report(ctx context.Context, rows []m.AnnotatedMutation, targets reportTargets) error {
	summary := Summarize(rows)

	slog.Info("Mapped mutations", "total", summary.Total, "mapped", summary.Mapped)

	if targets.Summary != "" {
		if err := w.WriteSummary(ctx, targets.Summary, summary); err != nil {
			slog.Error("Failed to write summary", "path", targets.Summary, "error", err)
			return fmt.Errorf("write summary: %w", err)
		}

		w.DisplayOutput(ctx, "Summary", targets.Summary)
	}

	if targets.Metrics != "" {
		if err := w.WriteMetrics(ctx, targets.Metrics, summary); err != nil {
			slog.Error("Failed to write metrics", "path", targets.Metrics, "error", err)
			return fmt.Errorf("write metrics: %w", err)
		}

		w.DisplayOutput(ctx, "Metrics", targets.Metrics)
	}

	if err := w.DisplayMappingSummary(ctx, summary); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	if targets.Verbose {
		if err := w.DisplayUnmapped(ctx, rows); err != nil {
			return fmt.Errorf("display unmapped: %w", err)
		}
	}

	return nil
}

func (w *workflow) loadIndex(ctx context.Context, path m.Path, includeTernary bool) (*ConditionIndex, error) {
	file, err := w.Open(ctx, path)
	if err != nil {
		slog.Error("Failed to open condition dump", "path", path, "error", err)
		return nil, fmt.Errorf("open condition dump: %w", err)
	}
	defer file.Close()

	dump, err := adapter.DecodeConditionDump(file)
	if err != nil {
		slog.Error("Failed to decode condition dump", "path", path, "error", err)
		return nil, fmt.Errorf("decode condition dump: %w", err)
	}

	if len(dump.FileErrors) > 0 {
		slog.Warn("Condition dump contains parse failures", "path", path, "files", len(dump.FileErrors))
	}

	w.DisplayDecodeIssues(ctx, path, dump.Issues)

	index := NewConditionIndex(dump.Blocks, WithTernaryBlocks(includeTernary))
	slog.Debug("Built condition index", "blocks", index.Len(), "keys", index.Keys())

	return index, nil
}

func (w *workflow) loadMutations(ctx context.Context, path m.Path) ([]m.MutationRecord, error) {
	if !strings.EqualFold(filepath.Ext(string(path)), ".log") {
		table, err := w.ReadMutations(ctx, path)
		if err != nil {
			slog.Error("Failed to read mutants table", "path", path, "error", err)
			return nil, fmt.Errorf("read mutants table: %w", err)
		}

		w.DisplayDecodeIssues(ctx, path, table.Issues)

		return table.Records, nil
	}

	log, err := w.decodeLog(ctx, path)
	if err != nil {
		return nil, err
	}

	return log.Records, nil
}

func (w *workflow) decodeLog(ctx context.Context, path m.Path) (adapter.MutationLog, error) {
	file, err := w.Open(ctx, path)
	if err != nil {
		slog.Error("Failed to open mutation log", "path", path, "error", err)
		return adapter.MutationLog{}, fmt.Errorf("open mutation log: %w", err)
	}
	defer file.Close()

	log, err := adapter.DecodeMutationLog(file)
	if err != nil {
		slog.Error("Failed to decode mutation log", "path", path, "error", err)
		return adapter.MutationLog{}, fmt.Errorf("decode mutation log: %w", err)
	}

	w.DisplayDecodeIssues(ctx, path, log.Issues)

	return log, nil
}

func (w *workflow) requireMapInputs(ctx context.Context, args MapArgs) error {
	if err := w.requireInput(ctx, args.Blocks, hintExtract); err != nil {
		return err
	}

	return w.requireInput(ctx, args.Mutants, hintParse)
}

// requireInput fails with ErrMissingInput when path does not exist.
func (w *workflow) requireInput(ctx context.Context, path m.Path, hint string) error {
	_, err := w.FileInfo(ctx, path)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		slog.Error("Input not found", "path", path, "hint", hint)
		return fmt.Errorf("%w: %s (%s)", ErrMissingInput, path, hint)
	}

	return fmt.Errorf("stat %s: %w", path, err)
}
