package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "crusher.dev/pkg/crusher/internal/model"
)

const (
	minBarWidth = 20
	maxBarWidth = 80
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// TUI implements UI with a Bubble Tea progress bar while variants are
// generated. Everything else is printed as styled text.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	stop    *sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in crush mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if resolveStartConfig(options).mode != ModeCrush {
		return nil
	}

	t.program = tea.NewProgram(newProgressModel(), tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})
	t.stop = &sync.Once{}

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the progress program if it is still running.
func (t *TUI) Close(_ context.Context) {
	t.stopProgram()
}

func (t *TUI) stopProgram() {
	if t.program == nil {
		return
	}

	t.stop.Do(func() {
		t.program.Send(finishMsg{})
		<-t.done
	})
}

// DisplaySources sets the progress total.
func (t *TUI) DisplaySources(ctx context.Context, count int) {
	if ctx.Err() != nil {
		return
	}

	if t.program == nil {
		t.printf("%s %s source file(s)\n", titleStyle.Render("crusher"), countStyle.Render(fmt.Sprint(count)))
		return
	}

	t.program.Send(sourcesMsg{total: count})
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(ctx context.Context, done int, total int, source m.Path, variants int) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(progressMsg{done: done, total: total, source: string(source), variants: variants})
}

// DisplaySkipped prints a skipped source above the progress bar.
func (t *TUI) DisplaySkipped(ctx context.Context, source m.Path, err error) {
	if ctx.Err() != nil {
		return
	}

	line := removedStyle.Render("skipped") + " " + pathStyle.Render(string(source)) + faintStyle.Render(": "+err.Error())
	if t.program == nil {
		t.printf("%s\n", line)
		return
	}

	t.program.Println(line)
}

// DisplayGenerated ends the progress display and prints the total.
func (t *TUI) DisplayGenerated(ctx context.Context, count int) {
	if ctx.Err() != nil {
		return
	}

	t.stopProgram()
	t.printf("Number of generated files: %s\n", countStyle.Render(fmt.Sprint(count)))
}

// DisplayOutputDir tells the user where variants go.
func (t *TUI) DisplayOutputDir(ctx context.Context, dir m.Path, created bool, defaulted bool) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s\n", faintStyle.Render(outputDirMessage(dir, created, defaulted)))
}

// DisplayEstimation prints the estimation table under a styled title.
func (t *TUI) DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		t.printf("%s %v\n", removedStyle.Render("estimation error:"), err)
		return err
	}

	if len(estimates) == 0 {
		t.printf("%s\n", faintStyle.Render("  No source files found"))
		return nil
	}

	t.printf("%s\n%s", titleStyle.Render("crusher estimation"), renderEstimationTable(estimates))

	return nil
}

// DisplayDiff prints a colored unified diff.
func (t *TUI) DisplayDiff(ctx context.Context, _ m.Variant, diff string) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s\n", colorizeDiff(diff))
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = faintStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

type sourcesMsg struct {
	total int
}

type progressMsg struct {
	done     int
	total    int
	source   string
	variants int
}

type finishMsg struct{}

// progressModel is the Bubble Tea model shown while sources are crushed.
type progressModel struct {
	bar      progress.Model
	total    int
	done     int
	variants int
	current  string
	finished bool
}

func newProgressModel() progressModel {
	return progressModel{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return nil
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.bar.Width = clampBarWidth(msg.Width - 8)

		return pm, nil

	case sourcesMsg:
		pm.total = msg.total

		return pm, nil

	case progressMsg:
		pm.done = msg.done
		pm.total = msg.total
		pm.current = msg.source
		pm.variants += msg.variants

		return pm, nil

	case finishMsg:
		pm.finished = true

		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.finished = true
			return pm, tea.Quit
		}
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total <= 0 {
		return 0
	}

	return float64(pm.done) / float64(pm.total)
}

func (pm progressModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("crusher"), faintStyle.Render("generating variants"))
	fmt.Fprintf(&b, "  %s  %s/%d files  %s variants\n",
		pm.bar.ViewAs(pm.percent()),
		countStyle.Render(fmt.Sprint(pm.done)), pm.total,
		countStyle.Render(fmt.Sprint(pm.variants)))

	if pm.current != "" && !pm.finished {
		fmt.Fprintf(&b, "  %s\n", pathStyle.Render(pm.current))
	}

	return b.String()
}

func clampBarWidth(width int) int {
	if width < minBarWidth {
		return minBarWidth
	}

	if width > maxBarWidth {
		return maxBarWidth
	}

	return width
}
