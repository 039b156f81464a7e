package mutagens

import (
	m "crusher.dev/pkg/crusher/internal/model"
)

const typeIdentifierKind = "type_identifier"

// declarationKinds are the items whose `name` field declares a type rather
// than referencing one.
var declarationKinds = map[string]struct{}{
	"struct_item":     {},
	"enum_item":       {},
	"union_item":      {},
	"trait_item":      {},
	"type_item":       {},
	"associated_type": {},
	"type_parameter":  {},
}

// typeNameReplacements probe different code paths of a type checker: absence,
// a numeric primitive, a string primitive and a marker trait.
var typeNameReplacements = [...]string{"", "i32", "str", "Copy"}

// TypeNameStrategy replaces every type-name reference with each entry of a
// fixed substitute list.
type TypeNameStrategy struct {
	includeDeclarationNames bool
}

// NewTypeNameStrategy constructs a TypeNameStrategy. Unless
// includeDeclarationNames is set, the name an item declares is not a reference
// and is skipped.
func NewTypeNameStrategy(includeDeclarationNames bool) *TypeNameStrategy {
	return &TypeNameStrategy{includeDeclarationNames: includeDeclarationNames}
}

// Name implements Strategy.
func (s *TypeNameStrategy) Name() m.StrategyName {
	return m.StrategyTypeName
}

// Matches implements Strategy.
func (s *TypeNameStrategy) Matches(node m.SyntaxNode) bool {
	if node.Node == nil || node.Node.Type() != typeIdentifierKind {
		return false
	}

	return s.includeDeclarationNames || !isDeclaredName(node)
}

func isDeclaredName(node m.SyntaxNode) bool {
	if node.Field != nameField {
		return false
	}

	parent := node.Node.Parent()
	if parent == nil {
		return false
	}

	_, ok := declarationKinds[parent.Type()]

	return ok
}

// Extract implements Strategy.
func (s *TypeNameStrategy) Extract(node m.SyntaxNode, src []byte) m.Target {
	target := newTarget(node, m.StrategyTypeName)
	target.Name = node.Node.Content(src)

	return target
}

// Replacements implements Strategy.
func (s *TypeNameStrategy) Replacements(_ m.Target) []string {
	out := make([]string, len(typeNameReplacements))
	copy(out, typeNameReplacements[:])

	return out
}
