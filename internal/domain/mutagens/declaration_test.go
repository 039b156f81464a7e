package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "crusher.dev/pkg/crusher/internal/model"
)

func TestDeclarationStrategy(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		wantName    string
		wantForm    m.DeclForm
		replacement string
	}{
		{"unit", "struct Unit;", "Unit", m.FormUnit, "struct Unit();"},
		{"tuple", "struct Pair(u8, u8);", "Pair", m.FormTuple, "struct Pair;"},
		{"empty tuple", "struct Empty();", "Empty", m.FormTuple, "struct Empty;"},
		{"block", "struct Block { a: u8 }", "Block", m.FormBlock, "struct Block();"},
		{"visibility", "pub(crate) struct Vis;", "Vis", m.FormUnit, "struct Vis();"},
		{"generic tuple", "struct Wrap<T>(T);", "Wrap", m.FormTuple, "struct Wrap;"},
		{"where clause", "struct W<T> where T: Copy { t: T }", "W", m.FormBlock, "struct W();"},
	}

	s := NewDeclarationStrategy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := matchingTargets(t, s, tt.src)
			require.Len(t, targets, 1)

			target := targets[0]
			assert.Equal(t, tt.wantName, target.Name)
			assert.Equal(t, tt.wantForm, target.Form)
			assert.Equal(t, 0, target.Start)
			assert.Equal(t, len(tt.src), target.End)
			assert.Equal(t, []string{tt.replacement}, s.Replacements(target))
		})
	}
}

func TestDeclarationStrategy_IgnoresOtherItems(t *testing.T) {
	src := "enum E { A }\nunion U { a: u8 }\nfn f() -> S { S }\nimpl S {}\n"

	assert.Empty(t, matchingTargets(t, NewDeclarationStrategy(), src))
}

func TestDeclarationStrategy_NilNode(t *testing.T) {
	assert.False(t, NewDeclarationStrategy().Matches(m.SyntaxNode{}))
}

func TestClassifyDeclForm(t *testing.T) {
	tests := []struct {
		name string
		src  string
		end  int
		want m.DeclForm
	}{
		{"brace", "struct A {}", 11, m.FormBlock},
		{"paren then semicolon", "struct A();", 11, m.FormTuple},
		{"semicolon", "struct A;", 9, m.FormUnit},
		{"end inside buffer", "struct A {} trailing", 11, m.FormBlock},
		{"single byte", "}", 1, m.FormBlock},
		{"single non brace byte", ";", 1, m.FormUnit},
		{"zero end", "struct A;", 0, m.FormUnit},
		{"end past buffer", "x", 5, m.FormUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDeclForm([]byte(tt.src), tt.end))
		})
	}
}
