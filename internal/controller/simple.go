package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "crusher.dev/pkg/crusher/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI. SimpleUI holds no resources.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplaySources prints how many inputs were selected.
func (s *SimpleUI) DisplaySources(ctx context.Context, count int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Found %d source file(s)\n", count)
}

// DisplayProgress prints one line per processed source.
func (s *SimpleUI) DisplayProgress(ctx context.Context, done int, total int, source m.Path, variants int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d/%d] %s: %d variant(s)\n", done, total, source, variants)
}

// DisplaySkipped reports a source that was skipped after a failure.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, source m.Path, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Skipped %s: %v\n", source, err)
}

// DisplayGenerated prints the total number of variants.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, count int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Number of generated files: %d\n", count)
}

// DisplayOutputDir tells the user where variants go.
func (s *SimpleUI) DisplayOutputDir(ctx context.Context, dir m.Path, created bool, defaulted bool) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", outputDirMessage(dir, created, defaulted))
}

// DisplayEstimation prints the estimation table or error.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimationTable(estimates))

	return nil
}

// DisplayDiff prints the unified diff of one variant.
func (s *SimpleUI) DisplayDiff(ctx context.Context, _ m.Variant, diff string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", diff)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func outputDirMessage(dir m.Path, created bool, defaulted bool) string {
	switch {
	case defaulted:
		return fmt.Sprintf("No output directory provided, using current directory: %s", dir)
	case created:
		return fmt.Sprintf("Created output directory: %s", dir)
	default:
		return fmt.Sprintf("Writing to output directory: %s", dir)
	}
}

func renderEstimationTable(estimates []m.Estimate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Targets", "Variants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalTargets := 0
	totalVariants := 0

	for _, estimate := range estimates {
		table.Append([]string{
			string(estimate.Source),
			fmt.Sprintf("%d", estimate.Targets),
			fmt.Sprintf("%d", estimate.Variants),
		})

		totalTargets += estimate.Targets
		totalVariants += estimate.Variants
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)),
		fmt.Sprintf("%d", totalTargets),
		fmt.Sprintf("%d", totalVariants),
	})

	table.Render()

	return tableBuffer.String()
}
