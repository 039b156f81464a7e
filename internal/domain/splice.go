package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"crusher.dev/pkg/crusher/internal/domain/mutagens"
	m "crusher.dev/pkg/crusher/internal/model"
)

// Splice returns src[:start] + replacement + src[end:] as a fresh string.
// src itself is never modified.
func Splice(src []byte, start, end int, replacement string) string {
	var b strings.Builder

	b.Grow(len(src) - (end - start) + len(replacement))
	b.Write(src[:start])
	b.WriteString(replacement)
	b.Write(src[end:])

	return b.String()
}

// EnumerateVariants produces one variant per (target, replacement) pair. The
// outer order is the target order, the inner order is the strategy's
// replacement order. Identical outputs are kept. Indexes start at zero.
func EnumerateVariants(source m.Path, src []byte, targets []m.Target, strategy mutagens.Strategy) []m.Variant {
	variants := make([]m.Variant, 0, len(targets))

	for _, target := range targets {
		original := string(src[target.Start:target.End])

		for _, replacement := range strategy.Replacements(target) {
			variants = append(variants, m.Variant{
				Index:       len(variants),
				Source:      source,
				Target:      target,
				Original:    original,
				Replacement: replacement,
				Code:        Splice(src, target.Start, target.End, replacement),
			})
		}
	}

	return variants
}

// RestoreOriginal rebuilds the source a variant was derived from by splicing
// the original text back over the replacement.
func RestoreOriginal(v m.Variant) string {
	end := v.Target.Start + len(v.Replacement)

	return Splice([]byte(v.Code), v.Target.Start, end, v.Original)
}

// VariantDiff renders a unified diff between the variant's source and the
// variant itself.
func VariantDiff(v m.Variant, toFile string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(RestoreOriginal(v)),
		B:        difflib.SplitLines(v.Code),
		FromFile: string(v.Source),
		ToFile:   toFile,
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff variant %d: %w", v.Index, err)
	}

	return text, nil
}

// countTargets counts the distinct targets behind a list of variants, which
// are grouped by target.
func countTargets(variants []m.Variant) int {
	count := 0

	for i, v := range variants {
		if i == 0 || v.Target != variants[i-1].Target {
			count++
		}
	}

	return count
}
