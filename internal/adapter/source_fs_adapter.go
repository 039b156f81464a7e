// Package adapter contains the infrastructure collaborators of the crusher:
// parsing, reading inputs and writing variants.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "crusher.dev/pkg/crusher/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when collecting inputs. It hides direct `os` access so the workflow can be
// tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Sources lists the files under root whose extension is ext, in lexical
	// path order.
	Sources(ctx context.Context, root m.Path, ext string, recursive bool) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Sources collects regular files with the given extension below root.
func (a *LocalSourceFSAdapter) Sources(ctx context.Context, root m.Path, ext string, recursive bool) ([]m.Source, error) {
	info, err := os.Stat(string(root))
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("input directory %s: not a directory", root)
	}

	suffix := "." + strings.TrimPrefix(ext, ".")

	var sources []m.Source

	err = a.Walk(root, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if !info.Mode().IsRegular() || filepath.Ext(path) != suffix {
			return nil
		}

		sources = append(sources, m.NewSource(m.Path(path)))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.SortFunc(sources, func(a, b m.Source) int {
		return strings.Compare(string(a.Origin.Path), string(b.Origin.Path))
	})

	return sources, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
