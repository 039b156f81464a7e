package domain

import (
	"iter"
	"log/slog"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"crusher.dev/pkg/crusher/internal/domain/mutagens"
	m "crusher.dev/pkg/crusher/internal/model"
)

// FindTargets walks the tree under root and yields, in discovery order, every
// target the strategy matches whose span survives the unicode safety filter.
func FindTargets(root *sitter.Node, src []byte, strategy mutagens.Strategy) iter.Seq[m.Target] {
	return func(yield func(m.Target) bool) {
		filter := newSpanFilter(src)

		for node := range Walk(root) {
			if !strategy.Matches(node) {
				continue
			}

			target := strategy.Extract(node, src)
			if !filter.accepts(target) {
				slog.Debug("dropping target with unsafe span",
					"strategy", target.Strategy,
					"start", target.Start,
					"end", target.End,
					"line", target.Line)

				continue
			}

			if !yield(target) {
				return
			}
		}
	}
}

// IsSafeSpan reports whether t can be spliced into src without corrupting it.
//
// Parser offsets are byte offsets. A span is kept only when it lies inside the
// buffer, starts and ends on rune boundaries, and end-1 is still a valid index
// into the rune-decoded view of src. The last rule is a heuristic: it drops
// targets sitting near the end of files with multi-byte text before them
// rather than risking a garbled variant.
func IsSafeSpan(src []byte, t m.Target) bool {
	return newSpanFilter(src).accepts(t)
}

type spanFilter struct {
	src   []byte
	runes int
}

func newSpanFilter(src []byte) spanFilter {
	return spanFilter{src: src, runes: utf8.RuneCount(src)}
}

func (f spanFilter) accepts(t m.Target) bool {
	if t.Start < 0 || t.End < 1 || t.Start > t.End || t.End > len(f.src) {
		return false
	}

	if f.runes <= t.End-1 {
		return false
	}

	return f.isRuneBoundary(t.Start) && f.isRuneBoundary(t.End)
}

func (f spanFilter) isRuneBoundary(i int) bool {
	return i == len(f.src) || utf8.RuneStart(f.src[i])
}
