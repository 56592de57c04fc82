package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/fieldbench/internal/bench"
	"github.com/agbru/fieldbench/internal/format"
	"github.com/agbru/fieldbench/internal/ui"
)

// CLIProgressReporter implements bench.ProgressReporter for CLI output,
// wrapping DisplayProgress to provide a spinner during timed loops.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements bench.ProgressReporter.
var _ bench.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner with aggregated progress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numStrategies int, out io.Writer) {
	DisplayProgress(wg, progressChan, numStrategies, out)
}

// CLIResultPresenter implements bench.ResultPresenter with formatted,
// colorized command-line output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ bench.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the per-strategy summary table with
// durations, throughput, and status. Manual padding keeps the columns
// aligned in the presence of ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []bench.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Strategy")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if l := len(formatDuration(res)); l > maxDurationLen {
			maxDurationLen = l
		}
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sThroughput%s\n",
		ui.ColorUnderline(), ui.ColorReset(), pad(maxNameLen-len("Strategy")),
		ui.ColorUnderline(), ui.ColorReset(), pad(maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		duration := formatDuration(res)
		var tail string
		if res.Err != nil {
			tail = fmt.Sprintf("%s✗ %v%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			tail = fmt.Sprintf("%s%s%s", ui.ColorSuccess(), format.FormatOpsPerSecond(res.Iterations, res.Duration), ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), pad(maxNameLen-len(res.Name)),
			ui.ColorWarning(), duration, ui.ColorReset(), pad(maxDurationLen-len(duration)),
			tail)
	}
}

// PresentVerdict displays the cross-strategy consistency verdict and, on
// success, the agreed truncated product of the fastest run.
func (CLIResultPresenter) PresentVerdict(consistent bool, fastest *bench.Result, out io.Writer) {
	if !consistent {
		fmt.Fprintf(out, "\n%sGlobal Status: CRITICAL ERROR! Strategies disagree on the product.%s\n",
			ui.ColorError(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "\n%sGlobal Status: Success. All strategies agree.%s\n",
		ui.ColorSuccess(), ui.ColorReset())
	if fastest != nil {
		fmt.Fprintf(out, "Fastest: %s%s%s (%s)\n",
			ui.ColorPrimary(), fastest.Name, ui.ColorReset(),
			format.FormatExecutionDuration(fastest.Duration))
		fmt.Fprintf(out, "Product (low half, msl first): %s%s%s\n",
			ui.ColorInfo(), fastest.Output.Hex(), ui.ColorReset())
	}
}

func formatDuration(res bench.Result) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// pad returns a string of n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
