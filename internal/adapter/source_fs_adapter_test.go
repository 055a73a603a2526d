package adapter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/mutmap/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "Child.java")
		writeTestFile(t, child, "class Child {}\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Walk() error = %v, want context.Canceled", err)
		}
	})
}

func TestLocalSourceFSAdapter_ListSources(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b", "Beta.java"), "class Beta {}\n")
	writeTestFile(t, filepath.Join(root, "a", "Alpha.java"), "class Alpha {}\n")
	writeTestFile(t, filepath.Join(root, "a", "notes.txt"), "not java\n")
	writeTestFile(t, filepath.Join(root, "gen", "Generated.java"), "class Generated {}\n")
	writeTestFile(t, filepath.Join(root, "target", "Compiled.java"), "class Compiled {}\n")

	got, err := adapter.ListSources(context.Background(), m.Path(root), []string{".java"}, "/gen/")
	if err != nil {
		t.Fatalf("ListSources() error = %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(root, "a", "Alpha.java")),
		m.Path(filepath.Join(root, "b", "Beta.java")),
	}

	if len(got) != len(want) {
		t.Fatalf("ListSources() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListSources()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	t.Run("missing root", func(t *testing.T) {
		_, err := adapter.ListSources(context.Background(), m.Path(filepath.Join(root, "missing")), []string{".java"})
		if err == nil {
			t.Fatalf("expected error for missing root")
		}
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		_, err := adapter.ListSources(context.Background(), m.Path(root), []string{".java"}, "([")
		if err == nil {
			t.Fatalf("expected error for invalid regex")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFileAndOpen(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "Main.java")
	content := "package demo;\nclass Main {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	rc, err := adapter.Open(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	streamed, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if string(streamed) != content {
		t.Fatalf("Open() content = %q, want %q", string(streamed), content)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	if _, err := adapter.FileInfo(context.Background(), m.Path(filepath.Join(root, "nope"))); !os.IsNotExist(err) {
		t.Fatalf("FileInfo() error = %v, want not-exist", err)
	}

	info, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("FileInfo() reported %s as file", root)
	}
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()
	target := filepath.Join(root, "data", "out.csv")

	t.Run("creates parent directory and file", func(t *testing.T) {
		err := adapter.WriteFile(context.Background(), m.Path(target), func(w io.Writer) error {
			_, err := io.WriteString(w, "a,b\n")
			return err
		})
		if err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}

		if string(got) != "a,b\n" {
			t.Fatalf("content = %q", string(got))
		}
	})

	t.Run("failed write leaves previous content and no temp files", func(t *testing.T) {
		boom := errors.New("boom")
		err := adapter.WriteFile(context.Background(), m.Path(target), func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("WriteFile() error = %v, want boom", err)
		}

		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}

		if string(got) != "a,b\n" {
			t.Fatalf("content = %q, previous content should survive", string(got))
		}

		entries, err := os.ReadDir(filepath.Dir(target))
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}

		if len(entries) != 1 {
			t.Fatalf("expected only out.csv, found %d entries", len(entries))
		}
	})
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath(context.Background(), m.Path("/base/dir"), m.Path("/base/dir/sub/File.java"))
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if rel != m.Path(filepath.Join("sub", "File.java")) {
		t.Fatalf("RelPath() = %s", rel)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
