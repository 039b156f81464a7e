package mutagens

import (
	"fmt"

	m "crusher.dev/pkg/crusher/internal/model"
)

const (
	structItemKind = "struct_item"
	nameField      = "name"
)

// DeclarationStrategy rewrites every struct declaration into another physical
// form: tuple declarations become unit declarations, everything else becomes
// an empty tuple declaration.
type DeclarationStrategy struct{}

// NewDeclarationStrategy constructs a DeclarationStrategy.
func NewDeclarationStrategy() *DeclarationStrategy {
	return &DeclarationStrategy{}
}

// Name implements Strategy.
func (s *DeclarationStrategy) Name() m.StrategyName {
	return m.StrategyStruct
}

// Matches implements Strategy.
func (s *DeclarationStrategy) Matches(node m.SyntaxNode) bool {
	return node.Node != nil && node.Node.Type() == structItemKind
}

// Extract implements Strategy.
func (s *DeclarationStrategy) Extract(node m.SyntaxNode, src []byte) m.Target {
	target := newTarget(node, m.StrategyStruct)

	if name := node.Node.ChildByFieldName(nameField); name != nil {
		target.Name = name.Content(src)
	}

	target.Form = ClassifyDeclForm(src, target.End)

	return target
}

// Replacements implements Strategy. Exactly one replacement per declaration.
func (s *DeclarationStrategy) Replacements(t m.Target) []string {
	if t.Form == m.FormTuple {
		return []string{fmt.Sprintf("struct %s;", t.Name)}
	}

	return []string{fmt.Sprintf("struct %s();", t.Name)}
}

// ClassifyDeclForm inspects the two bytes before end: a closing brace means a
// block body, a closing parenthesis before the terminator means a tuple body,
// anything else is a unit declaration.
func ClassifyDeclForm(src []byte, end int) m.DeclForm {
	if end < 1 || end > len(src) {
		return m.FormUnit
	}

	if src[end-1] == '}' {
		return m.FormBlock
	}

	if end >= 2 && src[end-2] == ')' {
		return m.FormTuple
	}

	return m.FormUnit
}
