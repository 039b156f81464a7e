package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "crusher.dev/pkg/crusher/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "lib.rs"), "struct A;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.rs"), "struct B;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.rs")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "lib.rs")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "lib.rs"), "struct A;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.rs")
		writeTestFile(t, child, "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
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
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "lib.rs")
	content := "struct A;\n" + "fn main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "lib.rs")
	content := []byte("struct A;\nfn main() {}\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "lib.rs")
	writeTestFile(t, path, "struct A;\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_Sources(t *testing.T) {
	newTree := func(t *testing.T) string {
		t.Helper()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.rs"), "struct B;\n")
		writeTestFile(t, filepath.Join(root, "a.rs"), "struct A;\n")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "struct N;\n")

		nested := filepath.Join(root, "a")
		mustMkdir(t, nested)
		writeTestFile(t, filepath.Join(nested, "z.rs"), "struct Z;\n")

		return root
	}

	paths := func(sources []m.Source) []string {
		out := make([]string, 0, len(sources))
		for _, source := range sources {
			out = append(out, string(source.Origin.Path))
		}

		return out
	}

	t.Run("recursive scan in lexical path order", func(t *testing.T) {
		root := newTree(t)

		sources, err := NewLocalSourceFSAdapter().Sources(context.Background(), m.Path(root), "rs", true)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(root, "a.rs"),
			filepath.Join(root, "a", "z.rs"),
			filepath.Join(root, "b.rs"),
		}, paths(sources))
	})

	t.Run("non recursive scan stays at the top", func(t *testing.T) {
		root := newTree(t)

		sources, err := NewLocalSourceFSAdapter().Sources(context.Background(), m.Path(root), ".rs", false)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(root, "a.rs"),
			filepath.Join(root, "b.rs"),
		}, paths(sources))
	})

	t.Run("other extension", func(t *testing.T) {
		root := newTree(t)

		sources, err := NewLocalSourceFSAdapter().Sources(context.Background(), m.Path(root), "txt", true)
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(root, "notes.txt")}, paths(sources))
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := NewLocalSourceFSAdapter().Sources(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), "rs", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("root is a file", func(t *testing.T) {
		root := newTree(t)

		_, err := NewLocalSourceFSAdapter().Sources(context.Background(), m.Path(filepath.Join(root, "a.rs")), "rs", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("canceled context", func(t *testing.T) {
		root := newTree(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewLocalSourceFSAdapter().Sources(ctx, m.Path(root), "rs", true)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("checked-in crate fixture", func(t *testing.T) {
		root := filepath.Join("..", "..", "examples", "crate")

		sources, err := NewLocalSourceFSAdapter().Sources(context.Background(), m.Path(root), "rs", true)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(root, "src", "lib.rs"),
			filepath.Join(root, "src", "model", "mod.rs"),
		}, paths(sources))
	})
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
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
