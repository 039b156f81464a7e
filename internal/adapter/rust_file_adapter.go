package adapter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// ErrUnparseable is returned when the parser cannot build a tree at all.
var ErrUnparseable = errors.New("source cannot be parsed")

// RustFileAdapter encapsulates the grammar-specific parser so the domain layer
// only ever sees a syntax tree.
type RustFileAdapter interface {
	// Parse builds a syntax tree for src. The caller owns the tree and must
	// Close it once traversal is finished.
	Parse(ctx context.Context, src []byte) (*sitter.Tree, error)
}

// LocalRustFileAdapter provides a RustFileAdapter backed by tree-sitter.
type LocalRustFileAdapter struct {
	language *sitter.Language
}

// NewLocalRustFileAdapter constructs a LocalRustFileAdapter.
func NewLocalRustFileAdapter() *LocalRustFileAdapter {
	return &LocalRustFileAdapter{language: rust.GetLanguage()}
}

// Parse builds a tree-sitter tree for src. Syntax errors inside the file are
// tolerated (tree-sitter recovers from them); only a missing tree is fatal.
func (a *LocalRustFileAdapter) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	// A parser is not safe for concurrent use, so each call gets its own.
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(a.language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	if tree == nil || tree.RootNode() == nil {
		if tree != nil {
			tree.Close()
		}

		return nil, ErrUnparseable
	}

	return tree, nil
}
