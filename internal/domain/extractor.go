package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/mutmap/internal/adapter"
	m "github.com/mouse-blink/mutmap/internal/model"
)

// ConditionExtractor walks a source tree and reports the condition blocks of
// every recognised source file.
type ConditionExtractor interface {
	// Extract returns one FileExtraction per source file, sorted by path.
	// Files that cannot be read or parsed carry an Err and no blocks; they
	// do not stop the walk.
	Extract(ctx context.Context, root m.Path, parallel int, exclude ...string) ([]m.FileExtraction, m.ExtractionSummary, error)
}

type conditionExtractor struct {
	adapter.SourceFSAdapter
	adapter.JavaFileAdapter
}

// NewConditionExtractor constructs a ConditionExtractor backed by the
// provided filesystem and Java adapters.
func NewConditionExtractor(fsAdapter adapter.SourceFSAdapter, javaAdapter adapter.JavaFileAdapter) ConditionExtractor {
	return &conditionExtractor{
		SourceFSAdapter: fsAdapter,
		JavaFileAdapter: javaAdapter,
	}
}

func (ce *conditionExtractor) Extract(ctx context.Context, root m.Path, parallel int, exclude ...string) ([]m.FileExtraction, m.ExtractionSummary, error) {
	paths, err := ce.ListSources(ctx, root, ce.Extensions(), exclude...)
	if err != nil {
		slog.Error("Failed to list sources", "root", root, "error", err)
		return nil, m.ExtractionSummary{}, fmt.Errorf("list sources: %w", err)
	}

	results := make([]m.FileExtraction, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = ce.extractFile(groupCtx, path)

			if isContextError(results[i].Err) {
				return results[i].Err
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, m.ExtractionSummary{}, err
	}

	return results, summarizeExtraction(results), nil
}

func (ce *conditionExtractor) extractFile(ctx context.Context, path m.Path) m.FileExtraction {
	result := m.FileExtraction{Path: path}

	src, err := ce.ReadFile(ctx, path)
	if err != nil {
		slog.Warn("Failed to read source", "path", path, "error", err)
		result.Err = fmt.Errorf("read source: %w", err)

		return result
	}

	tree, err := ce.Parse(ctx, src)
	if err != nil {
		slog.Warn("Failed to parse source", "path", path, "error", err)
		result.Err = err

		return result
	}
	defer tree.Close()

	root := tree.RootNode()
	result.ClassName = ce.ClassName(path, ce.PackageName(root, src))
	result.Blocks = ce.ExtractConditions(root, src, result.ClassName)

	slog.Debug("Extracted condition blocks", "path", path, "class", result.ClassName, "blocks", len(result.Blocks))

	return result
}

func summarizeExtraction(results []m.FileExtraction) m.ExtractionSummary {
	summary := m.ExtractionSummary{FilesScanned: len(results)}

	for _, result := range results {
		if result.Err != nil {
			summary.Failures = append(summary.Failures, result)
			continue
		}

		if len(result.Blocks) > 0 {
			summary.FilesWithBlocks++
			summary.Blocks += len(result.Blocks)
		}
	}

	return summary
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
