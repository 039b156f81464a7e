package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRustFileAdapter_Parse(t *testing.T) {
	parser := NewLocalRustFileAdapter()

	t.Run("parses a source file", func(t *testing.T) {
		src := []byte("struct Point(i32, i32);\nstruct Unit;")

		tree, err := parser.Parse(context.Background(), src)
		require.NoError(t, err)
		defer tree.Close()

		root := tree.RootNode()
		assert.Equal(t, "source_file", root.Type())
		assert.False(t, root.HasError())
		require.Equal(t, uint32(2), root.NamedChildCount())
		assert.Equal(t, "struct_item", root.NamedChild(0).Type())
		assert.Equal(t, "Unit", root.NamedChild(1).ChildByFieldName("name").Content(src))
	})

	t.Run("tolerates syntax errors", func(t *testing.T) {
		tree, err := parser.Parse(context.Background(), []byte("struct Broken( {"))
		require.NoError(t, err)
		defer tree.Close()

		assert.True(t, tree.RootNode().HasError())
	})

	t.Run("parses empty input", func(t *testing.T) {
		tree, err := parser.Parse(context.Background(), nil)
		require.NoError(t, err)
		defer tree.Close()

		assert.Zero(t, tree.RootNode().ChildCount())
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		done := make(chan error, 4)

		for range 4 {
			go func() {
				tree, err := parser.Parse(context.Background(), []byte("struct A { b: B }"))
				if err == nil {
					tree.Close()
				}
				done <- err
			}()
		}

		for range 4 {
			require.NoError(t, <-done)
		}
	})
}
