package model

import sitter "github.com/smacker/go-tree-sitter"

// StrategyName identifies a mutation strategy.
type StrategyName string

const (
	// StrategyStruct rewrites struct declarations into a different physical form.
	StrategyStruct StrategyName = "struct"
	// StrategyTypeName replaces type-name references with fixed substitutes.
	StrategyTypeName StrategyName = "typename"
)

// DeclForm is the physical syntax class of a struct declaration.
type DeclForm int

const (
	// FormNone is used by targets that are not declarations.
	FormNone DeclForm = iota
	// FormUnit is a declaration terminated by a semicolon (struct A;).
	FormUnit
	// FormTuple is a tuple-bodied declaration (struct A(i32);).
	FormTuple
	// FormBlock is a brace-bodied declaration (struct A { x: i32 }).
	FormBlock
)

func (f DeclForm) String() string {
	switch f {
	case FormUnit:
		return "unit"
	case FormTuple:
		return "tuple"
	case FormBlock:
		return "block"
	case FormNone:
		return "none"
	}

	return "unknown"
}

// SyntaxNode is one node visited during a tree walk.
type SyntaxNode struct {
	Node  *sitter.Node
	Field string // field name the parent gives this node, empty if none
	Depth int
}

// Target is a matched construct slated for replacement. [Start, End) is a
// byte range into the original source.
type Target struct {
	Start    int
	End      int
	Strategy StrategyName
	Form     DeclForm
	Name     string
	Line     int
	Column   int
}

// Len returns the span length in bytes.
func (t Target) Len() int {
	return t.End - t.Start
}

// Variant is one complete mutated copy of a source file.
type Variant struct {
	Index       int
	Source      Path
	Target      Target
	Original    string
	Replacement string
	Code        string
}
