// Package mutagens holds the pluggable mutation strategies. A strategy decides
// which syntax nodes are targets and what text may replace them; traversal and
// splicing are shared by every strategy.
package mutagens

import (
	"errors"
	"fmt"

	m "crusher.dev/pkg/crusher/internal/model"
)

// ErrUnknownStrategy is returned by Lookup for names with no registered strategy.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is the capability set of one mutation strategy.
type Strategy interface {
	// Name identifies the strategy.
	Name() m.StrategyName
	// Matches reports whether the visited node is a target.
	Matches(node m.SyntaxNode) bool
	// Extract records the target for a matched node. src is the original buffer.
	Extract(node m.SyntaxNode, src []byte) m.Target
	// Replacements returns the ordered replacement texts for t.
	Replacements(t m.Target) []string
}

// Options tunes strategy construction.
type Options struct {
	// IncludeDeclarationNames makes the typename strategy also target the
	// declared name of an item, not only type references.
	IncludeDeclarationNames bool
}

// Names lists the registered strategies in a stable order.
func Names() []m.StrategyName {
	return []m.StrategyName{m.StrategyStruct, m.StrategyTypeName}
}

// Lookup returns the strategy registered under name.
func Lookup(name m.StrategyName, opts Options) (Strategy, error) {
	switch name {
	case m.StrategyStruct:
		return NewDeclarationStrategy(), nil
	case m.StrategyTypeName:
		return NewTypeNameStrategy(opts.IncludeDeclarationNames), nil
	}

	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Names())
}

// newTarget fills the span and position fields shared by every strategy.
func newTarget(node m.SyntaxNode, strategy m.StrategyName) m.Target {
	point := node.Node.StartPoint()

	return m.Target{
		Start:    int(node.Node.StartByte()),
		End:      int(node.Node.EndByte()),
		Strategy: strategy,
		Line:     int(point.Row) + 1,
		Column:   int(point.Column) + 1,
	}
}
