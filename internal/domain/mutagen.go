// Package domain contains the mutant generation pipeline and the workflow that
// drives it over input files.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"crusher.dev/pkg/crusher/internal/adapter"
	"crusher.dev/pkg/crusher/internal/domain/mutagens"
	m "crusher.dev/pkg/crusher/internal/model"
)

// Mutagen defines the per-file mutant generation pipeline:
// parse -> walk -> match -> filter -> splice -> enumerate.
type Mutagen interface {
	GenerateVariants(ctx context.Context, source m.Source, strategy mutagens.Strategy) ([]m.Variant, error)
	GenerateVariantsFromCode(ctx context.Context, path m.Path, code []byte, strategy mutagens.Strategy) ([]m.Variant, error)
	CollectTargets(ctx context.Context, code []byte, strategy mutagens.Strategy) ([]m.Target, error)
}

type mutagen struct {
	adapter.RustFileAdapter
	adapter.SourceFSAdapter
}

// NewMutagen creates a new Mutagen instance.
func NewMutagen(parser adapter.RustFileAdapter, sourceFSAdapter adapter.SourceFSAdapter) Mutagen {
	return &mutagen{
		RustFileAdapter: parser,
		SourceFSAdapter: sourceFSAdapter,
	}
}

func (mg *mutagen) GenerateVariants(ctx context.Context, source m.Source, strategy mutagens.Strategy) ([]m.Variant, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	if mg.SourceFSAdapter == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	code, err := mg.ReadFile(source.Origin.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source.Origin.Path, err)
	}

	return mg.GenerateVariantsFromCode(ctx, source.Origin.Path, code, strategy)
}

func (mg *mutagen) GenerateVariantsFromCode(ctx context.Context, path m.Path, code []byte, strategy mutagens.Strategy) ([]m.Variant, error) {
	targets, err := mg.CollectTargets(ctx, code, strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	variants := EnumerateVariants(path, code, targets, strategy)

	slog.Debug("generated variants",
		"source", path,
		"strategy", strategy.Name(),
		"targets", len(targets),
		"variants", len(variants))

	return variants, nil
}

// CollectTargets parses code and gathers the strategy's targets. The tree is
// released before returning.
func (mg *mutagen) CollectTargets(ctx context.Context, code []byte, strategy mutagens.Strategy) ([]m.Target, error) {
	if strategy == nil {
		return nil, fmt.Errorf("missing strategy")
	}

	if mg.RustFileAdapter == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	tree, err := mg.Parse(ctx, code)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return slices.Collect(FindTargets(tree.RootNode(), code, strategy)), nil
}

func validateSource(source m.Source) error {
	if source.Origin == nil || source.Origin.Path == "" {
		return fmt.Errorf("missing source origin")
	}

	return nil
}
