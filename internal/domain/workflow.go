package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"crusher.dev/pkg/crusher/internal/adapter"
	"crusher.dev/pkg/crusher/internal/controller"
	"crusher.dev/pkg/crusher/internal/domain/mutagens"
	m "crusher.dev/pkg/crusher/internal/model"
	"crusher.dev/pkg/crusher/pkg"
)

// ErrNoInput is returned when neither an input file nor a directory is given.
var ErrNoInput = errors.New("no input file or directory provided")

// DefaultExtension selects the files scanned in directory mode.
const DefaultExtension = "rs"

// InputArgs selects the sources of a run.
type InputArgs struct {
	File      m.Path
	Dir       m.Path
	Extension string
	Recursive bool
	// KeepGoing skips unreadable or unparseable files in directory mode
	// instead of aborting the run.
	KeepGoing bool
}

// StrategyArgs selects the mutation strategy and how its variants are named.
type StrategyArgs struct {
	Strategy m.StrategyName
	Options  mutagens.Options
	// Prefix of variant file names; empty selects m.DefaultVariantPrefix.
	Prefix string
}

// CrushArgs contains the arguments for generating and writing variants.
type CrushArgs struct {
	InputArgs
	StrategyArgs

	// Output is the destination directory; empty means the working directory.
	Output   m.Path
	Parallel int
	Manifest bool
	SpillDir string
}

// EstimateArgs contains the arguments for listing variant counts.
type EstimateArgs struct {
	InputArgs
	StrategyArgs

	ShowDiff bool
}

// Workflow runs the generation pipeline over all selected sources.
type Workflow interface {
	Crush(ctx context.Context, args CrushArgs) error
	Estimate(ctx context.Context, args EstimateArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.VariantStore
	controller.UI
	Mutagen
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	variantStore adapter.VariantStore,
	ui controller.UI,
	mutagen Mutagen,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		VariantStore:    variantStore,
		UI:              ui,
		Mutagen:         mutagen,
	}
}

// Crush generates every variant of every source, in source order, then writes
// them to the output directory named by their global index.
func (w *workflow) Crush(ctx context.Context, args CrushArgs) error {
	strategy, err := mutagens.Lookup(args.Strategy, args.Options)
	if err != nil {
		return err
	}

	sources, err := w.resolveSources(ctx, args.InputArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithCrushMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	spill, err := pkg.NewFileSpill[m.Variant](args.SpillDir)
	if err != nil {
		return fmt.Errorf("create variant spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Warn("Failed to release variant spill", "error", err)
		}
	}()

	naming := m.NewNaming(args.Prefix, outputExtension(args.InputArgs))

	hashes, err := w.generateAll(ctx, args, sources, strategy, spill)
	if err != nil {
		return err
	}

	w.DisplayGenerated(ctx, int(spill.Len()))

	dir, defaulted, err := resolveOutputDir(args.Output)
	if err != nil {
		return err
	}

	created, err := w.Prepare(dir)
	if err != nil {
		return err
	}

	w.DisplayOutputDir(ctx, dir, created, defaulted)

	entries, err := w.writeVariants(ctx, dir, naming, spill, hashes, args.Parallel)
	if err != nil {
		return fmt.Errorf("write variants: %w", err)
	}

	if args.Manifest {
		manifest := m.Manifest{Strategy: strategy.Name(), Count: len(entries), Entries: entries}
		if err := w.SaveManifest(dir, manifest); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}
	}

	slog.Info("Crush finished", "sources", len(sources), "variants", spill.Len(), "output", dir)

	return nil
}

// generateAll crushes sources one at a time and appends their variants to the
// spill with globally increasing indexes. It returns source hashes for the
// manifest.
func (w *workflow) generateAll(ctx context.Context, args CrushArgs, sources []m.Source, strategy mutagens.Strategy, spill pkg.FileSpill[m.Variant]) (map[m.Path]string, error) {
	w.DisplaySources(ctx, len(sources))

	hashes := make(map[m.Path]string)
	skipAllowed := args.KeepGoing && args.Dir != ""

	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		variants, err := w.GenerateVariants(ctx, source, strategy)
		if err != nil {
			if !skipAllowed {
				slog.Error("Failed to crush source", "source", source.Origin.Path, "error", err)
				return nil, fmt.Errorf("crush %s: %w", source.Origin.Path, err)
			}

			slog.Warn("Skipping source", "source", source.Origin.Path, "error", err)
			w.DisplaySkipped(ctx, source.Origin.Path, err)

			continue
		}

		offset := int(spill.Len())
		for j := range variants {
			variants[j].Index = offset + j
		}

		if err := spill.AppendBatch(variants); err != nil {
			return nil, fmt.Errorf("store variants of %s: %w", source.Origin.Path, err)
		}

		if args.Manifest {
			hash, err := w.HashFile(source.Origin.Path)
			if err != nil {
				slog.Warn("Failed to hash source", "source", source.Origin.Path, "error", err)
			}

			hashes[source.Origin.Path] = hash
		}

		w.DisplayProgress(ctx, i+1, len(sources), source.Origin.Path, len(variants))
	}

	return hashes, nil
}

func (w *workflow) writeVariants(ctx context.Context, dir m.Path, naming m.Naming, spill pkg.FileSpill[m.Variant], hashes map[m.Path]string, parallel int) ([]m.ManifestEntry, error) {
	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	entries := make([]m.ManifestEntry, 0, spill.Len())

	rangeErr := spill.Range(func(_ uint64, variant m.Variant) error {
		if err := groupCtx.Err(); err != nil {
			return err
		}

		name := naming.FileName(variant.Index)
		entries = append(entries, manifestEntry(variant, name, hashes[variant.Source]))

		group.Go(func() error {
			_, err := w.Save(groupCtx, dir, name, variant)
			return err
		})

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if rangeErr != nil {
		return nil, rangeErr
	}

	return entries, nil
}

func manifestEntry(v m.Variant, file string, hash string) m.ManifestEntry {
	return m.ManifestEntry{
		Index:       v.Index,
		File:        file,
		Source:      v.Source,
		SourceHash:  hash,
		Strategy:    v.Target.Strategy,
		Start:       v.Target.Start,
		End:         v.Target.End,
		Line:        v.Target.Line,
		Column:      v.Target.Column,
		Original:    v.Original,
		Replacement: v.Replacement,
	}
}

// Estimate counts targets and variants per source without writing anything.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	strategy, err := mutagens.Lookup(args.Strategy, args.Options)
	if err != nil {
		return err
	}

	sources, err := w.resolveSources(ctx, args.InputArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	naming := m.NewNaming(args.Prefix, outputExtension(args.InputArgs))
	estimates := make([]m.Estimate, 0, len(sources))
	skipAllowed := args.KeepGoing && args.Dir != ""
	offset := 0

	for _, source := range sources {
		variants, err := w.GenerateVariants(ctx, source, strategy)
		if err != nil {
			if !skipAllowed {
				err = fmt.Errorf("estimate %s: %w", source.Origin.Path, err)
				_ = w.DisplayEstimation(ctx, nil, err)

				return err
			}

			w.DisplaySkipped(ctx, source.Origin.Path, err)

			continue
		}

		for j := range variants {
			variants[j].Index = offset + j
		}

		offset += len(variants)

		if args.ShowDiff {
			w.displayDiffs(ctx, naming, variants)
		}

		estimates = append(estimates, m.Estimate{
			Source:   source.Origin.Path,
			Targets:  countTargets(variants),
			Variants: len(variants),
		})
	}

	if err := w.DisplayEstimation(ctx, estimates, nil); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) displayDiffs(ctx context.Context, naming m.Naming, variants []m.Variant) {
	for _, variant := range variants {
		diff, err := VariantDiff(variant, naming.FileName(variant.Index))
		if err != nil {
			slog.Warn("Failed to diff variant", "source", variant.Source, "index", variant.Index, "error", err)
			continue
		}

		w.DisplayDiff(ctx, variant, diff)
	}
}

// resolveSources turns the input selection into an ordered list of sources.
func (w *workflow) resolveSources(ctx context.Context, args InputArgs) ([]m.Source, error) {
	switch {
	case args.File != "":
		return []m.Source{m.NewSource(args.File)}, nil
	case args.Dir != "":
		sources, err := w.Sources(ctx, args.Dir, inputExtension(args), args.Recursive)
		if err != nil {
			return nil, fmt.Errorf("get sources: %w", err)
		}

		slog.Debug("Discovered sources", "dir", args.Dir, "count", len(sources))

		return sources, nil
	}

	return nil, ErrNoInput
}

func inputExtension(args InputArgs) string {
	if ext := strings.TrimPrefix(args.Extension, "."); ext != "" {
		return ext
	}

	return DefaultExtension
}

// outputExtension keeps variants under the extension of their inputs.
func outputExtension(args InputArgs) string {
	if args.File != "" {
		return strings.TrimPrefix(filepath.Ext(string(args.File)), ".")
	}

	return inputExtension(args)
}

func resolveOutputDir(output m.Path) (m.Path, bool, error) {
	if output != "" {
		return output, false, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", true, fmt.Errorf("resolve current directory: %w", err)
	}

	return m.Path(wd), true, nil
}
