package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "crusher.dev/pkg/crusher/internal/model"
)

func TestTUI_EstimateModeHasNoProgram(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	ui := NewTUI(&buf)

	require.NoError(t, ui.Start(ctx, WithEstimateMode()))
	assert.Nil(t, ui.program)

	ui.DisplaySources(ctx, 3)
	ui.DisplayProgress(ctx, 1, 3, "a.rs", 1)
	ui.DisplaySkipped(ctx, "b.rs", errors.New("boom"))
	ui.Close(ctx)

	out := buf.String()
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "source file(s)")
	assert.Contains(t, out, "b.rs")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "a.rs")
}

func TestTUI_CrushModeLifecycle(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	ui := NewTUI(&buf)

	require.NoError(t, ui.Start(ctx, WithCrushMode()))
	require.NotNil(t, ui.program)

	ui.DisplaySources(ctx, 2)
	ui.DisplayProgress(ctx, 1, 2, "a.rs", 4)
	ui.DisplayProgress(ctx, 2, 2, "b.rs", 1)
	ui.DisplayGenerated(ctx, 5)
	ui.DisplayOutputDir(ctx, "out", false, false)
	ui.Close(ctx)

	assert.Contains(t, buf.String(), "Number of generated files:")
	assert.Contains(t, buf.String(), "Writing to output directory: out")
}

func TestTUI_StartCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewTUI(&bytes.Buffer{})

	require.ErrorIs(t, ui.Start(ctx, WithCrushMode()), context.Canceled)
	assert.Nil(t, ui.program)
}

func TestTUI_DisplayEstimation(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, NewTUI(&buf).DisplayEstimation(ctx, nil, nil))
		assert.Contains(t, buf.String(), "No source files found")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer

		estimates := []m.Estimate{{Source: "src/lib.rs", Targets: 2, Variants: 2}}
		require.NoError(t, NewTUI(&buf).DisplayEstimation(ctx, estimates, nil))

		assert.Contains(t, buf.String(), "crusher estimation")
		assert.Contains(t, buf.String(), "src/lib.rs")
		assert.Contains(t, buf.String(), "TOTAL FILES 1")
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer

		failure := errors.New("bad input")
		require.ErrorIs(t, NewTUI(&buf).DisplayEstimation(ctx, nil, failure), failure)
		assert.Contains(t, buf.String(), "bad input")
	})
}

func TestTUI_DisplayDiff(t *testing.T) {
	var buf bytes.Buffer

	NewTUI(&buf).DisplayDiff(context.Background(), m.Variant{}, "--- a.rs\n+++ b.rs\n-struct A;\n+struct A();\n")

	for _, line := range []string{"--- a.rs", "+++ b.rs", "-struct A;", "+struct A();"} {
		assert.Contains(t, buf.String(), line)
	}
}

func TestColorizeDiff_KeepsLines(t *testing.T) {
	diff := "--- a.rs\n+++ b.rs\n@@ -1 +1 @@\n-x\n+y\n context"

	colored := colorizeDiff(diff)

	lines := strings.Split(colored, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, " context", lines[5])
	assert.Contains(t, lines[3], "-x")
	assert.Contains(t, lines[4], "+y")
}

func TestProgressModel_Update(t *testing.T) {
	var model tea.Model = newProgressModel()

	model, cmd := model.Update(sourcesMsg{total: 4})
	assert.Nil(t, cmd)
	assert.Equal(t, 4, model.(progressModel).total)

	model, _ = model.Update(progressMsg{done: 1, total: 4, source: "a.rs", variants: 3})
	model, _ = model.Update(progressMsg{done: 2, total: 4, source: "b.rs", variants: 2})

	pm := model.(progressModel)
	assert.Equal(t, 2, pm.done)
	assert.Equal(t, 5, pm.variants)
	assert.Equal(t, "b.rs", pm.current)
	assert.InDelta(t, 0.5, pm.percent(), 1e-9)

	view := pm.View()
	assert.Contains(t, view, "generating variants")
	assert.Contains(t, view, "b.rs")

	model, cmd = model.Update(finishMsg{})
	require.NotNil(t, cmd)
	assert.True(t, model.(progressModel).finished)
	assert.NotContains(t, model.View(), "b.rs")
}

func TestProgressModel_CtrlCQuits(t *testing.T) {
	model, cmd := newProgressModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, model.(progressModel).finished)
}

func TestProgressModel_WindowResize(t *testing.T) {
	model, _ := newProgressModel().Update(tea.WindowSizeMsg{Width: 60})
	assert.Equal(t, 52, model.(progressModel).bar.Width)

	model, _ = newProgressModel().Update(tea.WindowSizeMsg{Width: 10})
	assert.Equal(t, minBarWidth, model.(progressModel).bar.Width)
}

func TestProgressModel_PercentWithoutTotal(t *testing.T) {
	assert.Zero(t, newProgressModel().percent())
}

func TestClampBarWidth(t *testing.T) {
	assert.Equal(t, minBarWidth, clampBarWidth(-5))
	assert.Equal(t, 40, clampBarWidth(40))
	assert.Equal(t, maxBarWidth, clampBarWidth(500))
}
