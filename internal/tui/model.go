// Package tui provides an interactive dashboard for watching a benchmark
// run live: per-strategy progress bars while the timed loops execute, then
// the comparison table and consistency verdict.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fieldbench/internal/bench"
	apperrors "github.com/agbru/fieldbench/internal/errors"
	"github.com/agbru/fieldbench/internal/field"
	"github.com/agbru/fieldbench/internal/format"
	"github.com/agbru/fieldbench/internal/logging"
)

// progressMsg forwards a runner progress update into the Elm loop.
type progressMsg bench.ProgressUpdate

// doneMsg carries the finished results and the analysis exit code.
type doneMsg struct {
	results  []bench.Result
	exitCode int
}

// model is the bubbletea state for the dashboard.
type model struct {
	spinner    spinner.Model
	strategies []string
	fractions  []float64
	results    []bench.Result
	exitCode   int
	done       bool
	quitting   bool
}

func newModel(strategies []string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		spinner:    sp,
		strategies: strategies,
		fractions:  make([]float64, len(strategies)),
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init starts the spinner tick loop.
func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles key presses, spinner ticks, progress, and completion.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case progressMsg:
		if msg.Index >= 0 && msg.Index < len(m.fractions) {
			m.fractions[msg.Index] = msg.Fraction
		}
		return m, nil

	case doneMsg:
		m.done = true
		m.results = msg.results
		m.exitCode = msg.exitCode
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("fieldbench — 5-limb radix-2^52 multiplication"))
	b.WriteString("\n")

	if !m.done {
		for i, name := range m.strategies {
			b.WriteString(fmt.Sprintf("%s %s %s %3.0f%%\n",
				m.spinner.View(),
				strategyStyle.Render(name),
				renderBar(m.fractions[i], 30),
				m.fractions[i]*100))
		}
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	for _, res := range m.results {
		if res.Err != nil {
			b.WriteString(fmt.Sprintf("%s %s\n",
				strategyStyle.Render(res.Name),
				errorStyle.Render(fmt.Sprintf("✗ %v", res.Err))))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			strategyStyle.Render(res.Name),
			durationStyle.Render(format.FormatExecutionDuration(res.Duration)),
			format.FormatOpsPerSecond(res.Iterations, res.Duration)))
	}

	b.WriteString("\n")
	if m.exitCode == apperrors.ExitSuccess {
		b.WriteString(successStyle.Render("✓ all strategies agree"))
		if fastest := firstSuccess(m.results); fastest != nil {
			b.WriteString("\n" + productStyle.Render("product: "+fastest.Output.Hex()))
		}
	} else if m.exitCode == apperrors.ExitErrorMismatch {
		b.WriteString(errorStyle.Render("✗ strategies disagree"))
	} else {
		b.WriteString(errorStyle.Render("✗ run failed"))
	}
	b.WriteString("\n" + helpStyle.Render("q: quit"))
	return b.String()
}

// renderBar draws a fixed-width progress bar.
func renderBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

func firstSuccess(results []bench.Result) *bench.Result {
	for i := range results {
		if results[i].Err == nil {
			return &results[i]
		}
	}
	return nil
}

// nullPresenter satisfies bench.ResultPresenter for the analysis pass; the
// TUI renders results itself.
type nullPresenter struct{}

func (nullPresenter) PresentComparisonTable([]bench.Result, io.Writer) {}

func (nullPresenter) PresentVerdict(bool, *bench.Result, io.Writer) {}

// Run executes the benchmark under the dashboard and returns the process
// exit code. The runner executes in a background goroutine and feeds the
// Elm loop through program messages.
func Run(ctx context.Context, multipliers []field.Multiplier, opts bench.Options, logger logging.Logger, observer bench.RunObserver) int {
	names := make([]string, len(multipliers))
	for i, m := range multipliers {
		names[i] = m.Name()
	}

	p := tea.NewProgram(newModel(names), tea.WithContext(ctx))

	go func() {
		runner := bench.NewRunner(logger, observer)
		reporter := bench.ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan bench.ProgressUpdate, _ int, _ io.Writer) {
			defer wg.Done()
			for u := range ch {
				p.Send(progressMsg(u))
			}
		})
		results := runner.Run(ctx, multipliers, opts, reporter, io.Discard)
		exitCode := bench.Analyze(results, nullPresenter{}, observer, io.Discard)
		p.Send(doneMsg{results: results, exitCode: exitCode})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(model); ok {
		return m.exitCode
	}
	return apperrors.ExitErrorGeneric
}
