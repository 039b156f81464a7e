package domain

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"

	m "crusher.dev/pkg/crusher/internal/model"
)

// Walk returns a pre-order sequence over every node reachable from root: a node
// is yielded before its children, and children before the node's following
// siblings. Each iteration opens its own cursor, so the sequence can be ranged
// over again for the same tree.
func Walk(root *sitter.Node) iter.Seq[m.SyntaxNode] {
	return func(yield func(m.SyntaxNode) bool) {
		if root == nil {
			return
		}

		cursor := sitter.NewTreeCursor(root)
		defer cursor.Close()

		depth := 0

		for {
			node := m.SyntaxNode{
				Node:  cursor.CurrentNode(),
				Field: cursor.CurrentFieldName(),
				Depth: depth,
			}
			if !yield(node) {
				return
			}

			if cursor.GoToFirstChild() {
				depth++
				continue
			}

			// Climb until a following sibling exists; depth 0 is root.
			for !cursor.GoToNextSibling() {
				if depth == 0 || !cursor.GoToParent() {
					return
				}

				depth--
			}
		}
	}
}
