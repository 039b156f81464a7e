package domain

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crusher.dev/pkg/crusher/internal/domain/mutagens"
	m "crusher.dev/pkg/crusher/internal/model"
)

func findTargets(t *testing.T, src string, strategy mutagens.Strategy) []m.Target {
	t.Helper()

	tree := parseRust(t, src)

	return slices.Collect(FindTargets(tree.RootNode(), []byte(src), strategy))
}

func TestFindTargets_Declarations(t *testing.T) {
	src := "struct A;\nstruct B(i32);\nstruct C { x: i32 }\n"
	targets := findTargets(t, src, mutagens.NewDeclarationStrategy())

	require.Len(t, targets, 3)

	assert.Equal(t, "A", targets[0].Name)
	assert.Equal(t, m.FormUnit, targets[0].Form)
	assert.Equal(t, "B", targets[1].Name)
	assert.Equal(t, m.FormTuple, targets[1].Form)
	assert.Equal(t, "C", targets[2].Name)
	assert.Equal(t, m.FormBlock, targets[2].Form)

	assert.Equal(t, 1, targets[0].Line)
	assert.Equal(t, 2, targets[1].Line)
	assert.Equal(t, 3, targets[2].Line)
	assert.Equal(t, 1, targets[2].Column)

	for _, target := range targets {
		assert.Equal(t, m.StrategyStruct, target.Strategy)
		assert.True(t, strings.HasPrefix(src[target.Start:target.End], "struct "))
	}
}

func TestFindTargets_SpanCorrectness(t *testing.T) {
	src := `pub struct Outer { inner: Inner, list: Vec<Item> }
struct Pair(Left, Right);
fn convert(input: &Source) -> Result<Target, Error> { todo!() }
`
	for _, strategy := range []mutagens.Strategy{
		mutagens.NewDeclarationStrategy(),
		mutagens.NewTypeNameStrategy(false),
		mutagens.NewTypeNameStrategy(true),
	} {
		t.Run(string(strategy.Name()), func(t *testing.T) {
			targets := findTargets(t, src, strategy)
			require.NotEmpty(t, targets)

			for _, target := range targets {
				original := src[target.Start:target.End]
				assert.Equal(t, src, Splice([]byte(src), target.Start, target.End, original))
			}
		})
	}
}

func TestFindTargets_TypeNames(t *testing.T) {
	src := "fn f(x: Foo) -> Bar {}"
	targets := findTargets(t, src, mutagens.NewTypeNameStrategy(false))

	require.Len(t, targets, 2)
	assert.Equal(t, "Foo", src[targets[0].Start:targets[0].End])
	assert.Equal(t, "Bar", src[targets[1].Start:targets[1].End])
	assert.Equal(t, "Foo", targets[0].Name)
}

func TestFindTargets_TypeNamesSkipDeclaredNames(t *testing.T) {
	src := "struct Point(i32, i32);\nstruct Unit;"

	assert.Empty(t, findTargets(t, src, mutagens.NewTypeNameStrategy(false)))

	withNames := findTargets(t, src, mutagens.NewTypeNameStrategy(true))
	require.Len(t, withNames, 2)
	assert.Equal(t, "Point", src[withNames[0].Start:withNames[0].End])
	assert.Equal(t, "Unit", src[withNames[1].Start:withNames[1].End])
}

func TestFindTargets_TypeNamesKeepScopedReferences(t *testing.T) {
	src := "impl std::fmt::Display for Thing {}"
	targets := findTargets(t, src, mutagens.NewTypeNameStrategy(false))

	var names []string
	for _, target := range targets {
		names = append(names, src[target.Start:target.End])
	}

	assert.Equal(t, []string{"Display", "Thing"}, names)
}

func TestFindTargets_DiscoveryOrderIsPreOrder(t *testing.T) {
	src := "fn f(x: Outer<Inner>) {}"
	targets := findTargets(t, src, mutagens.NewTypeNameStrategy(false))

	require.Len(t, targets, 2)
	assert.Equal(t, "Outer", src[targets[0].Start:targets[0].End])
	assert.Equal(t, "Inner", src[targets[1].Start:targets[1].End])
}

func TestFindTargets_DropsUnsafeSpanNearMultibyteText(t *testing.T) {
	src := "struct A;\n// é\nstruct B;"
	require.Equal(t, 25, len(src))

	targets := findTargets(t, src, mutagens.NewDeclarationStrategy())

	require.Len(t, targets, 1)
	assert.Equal(t, "A", targets[0].Name)
}

func TestFindTargets_AcceptsSpanAfterMultibyteTextWithRoom(t *testing.T) {
	// Enough trailing text keeps the rune count above end-1.
	src := "// é\nstruct B;\n\n\n\n"
	targets := findTargets(t, src, mutagens.NewDeclarationStrategy())

	require.Len(t, targets, 1)
	assert.Equal(t, "B", targets[0].Name)
}

func TestFindTargets_DoesNotModifySource(t *testing.T) {
	src := []byte("struct A;\nstruct B(i32);")
	snapshot := bytes.Clone(src)

	tree := parseRust(t, string(src))
	targets := slices.Collect(FindTargets(tree.RootNode(), src, mutagens.NewDeclarationStrategy()))
	_ = EnumerateVariants("lib.rs", src, targets, mutagens.NewDeclarationStrategy())

	assert.Equal(t, snapshot, src)
}

func TestIsSafeSpan(t *testing.T) {
	ascii := []byte("struct A;")
	multi := []byte("é;é")

	tests := []struct {
		name   string
		src    []byte
		target m.Target
		want   bool
	}{
		{"whole ascii buffer", ascii, m.Target{Start: 0, End: 9}, true},
		{"empty span at start", ascii, m.Target{Start: 0, End: 0}, false},
		{"end past buffer", ascii, m.Target{Start: 0, End: 10}, false},
		{"negative start", ascii, m.Target{Start: -1, End: 3}, false},
		{"inverted span", ascii, m.Target{Start: 5, End: 3}, false},
		{"end splits a rune", multi, m.Target{Start: 0, End: 1}, false},
		{"start splits a rune", multi, m.Target{Start: 1, End: 3}, false},
		{"rune-aligned span", multi, m.Target{Start: 0, End: 2}, true},
		{"end-1 beyond rune count", multi, m.Target{Start: 2, End: 5}, false},
		{"empty buffer", nil, m.Target{Start: 0, End: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeSpan(tt.src, tt.target))
		})
	}
}
