// Package adapter contains filesystem, parsing and persistence adapters for mutmap.
package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning source trees and reading or writing pipeline
// artifacts. It hides direct `os` access so the workflow logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path recursively.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// ListSources returns the files under root whose extension is one of
	// extensions and whose path matches none of the exclude regexes. The
	// result is sorted so runs are reproducible.
	ListSources(ctx context.Context, root m.Path, extensions []string, exclude ...string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// Open opens a file for streaming reads.
	Open(ctx context.Context, path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile creates path (and its parent directory) and hands a writer to
	// write. The file only appears at path when write succeeds.
	WriteFile(ctx context.Context, path m.Path, write func(w io.Writer) error) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// ListSources collects source files with a recognized extension under root.
func (a *LocalSourceFSAdapter) ListSources(ctx context.Context, root m.Path, extensions []string, exclude ...string) ([]m.Path, error) {
	if _, err := os.Stat(string(root)); err != nil {
		return nil, fmt.Errorf("source root %s: %w", root, err)
	}

	excludeRegexes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var sources []m.Path

	err = a.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != string(root) && shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !hasExtension(path, extensions) || isExcluded(path, excludeRegexes) {
			return nil
		}

		sources = append(sources, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	return sources, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(_ context.Context, path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path is an artifact location chosen by the user
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes through a temporary sibling file and renames it into place.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, write func(w io.Writer) error) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename %s: %w", target, err)
	}

	return nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	regexes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexes = append(regexes, re)
	}

	return regexes, nil
}

func isExcluded(path string, regexes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range regexes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)

	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}

	return false
}

func shouldSkipDir(name string) bool {
	return name == ".git" || name == "target" || name == "node_modules"
}
