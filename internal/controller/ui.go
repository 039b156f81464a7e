// Package controller provides the user-facing output of the crusher.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "crusher.dev/pkg/crusher/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeCrush
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithCrushMode sets the UI to variant generation mode.
func WithCrushMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCrush
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeEstimate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how progress and results are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplaySources(ctx context.Context, count int)
	DisplayProgress(ctx context.Context, done int, total int, source m.Path, variants int)
	DisplaySkipped(ctx context.Context, source m.Path, err error)
	DisplayGenerated(ctx context.Context, count int)
	DisplayOutputDir(ctx context.Context, dir m.Path, created bool, defaulted bool)
	DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error
	DisplayDiff(ctx context.Context, variant m.Variant, diff string)
}

// NewUI picks the interactive TUI when stdout is a terminal.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
