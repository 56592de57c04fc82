//go:generate mockgen -source=interfaces.go -destination=mocks/mock_bench.go -package=mocks

package bench

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/fieldbench/internal/field"
)

// Result encapsulates the outcome of a single timed benchmark run.
// It serves as the shared domain type between the harness and presentation
// layers.
type Result struct {
	// Name is the identifier of the strategy used (e.g., "Karatsuba").
	Name string
	// Output is the truncated product written by the final iteration.
	Output field.Element
	// Iterations is the number of timed multiplications performed.
	Iterations uint64
	// Duration is the wall-clock time of the timed loop, measured with the
	// monotonic clock.
	Duration time.Duration
	// Err contains any error that occurred during the run (cancellation,
	// deadline, operand validation).
	Err error
}

// ProgressUpdate carries the completion fraction of one strategy's timed
// loop.
type ProgressUpdate struct {
	// Index identifies the strategy within the run.
	Index int
	// Name is the strategy identifier.
	Name string
	// Fraction is the completed share of the timed loop in [0, 1].
	Fraction float64
}

// ProgressReporter defines the interface for displaying run progress. It
// decouples the harness from the presentation layer: implementations handle
// the visual representation (spinner, progress bar, TUI) while the harness
// focuses on timing.
type ProgressReporter interface {
	// DisplayProgress consumes updates from the channel until it is closed.
	// It should be called in a separate goroutine.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from the runner.
	//   - numStrategies: The number of strategies being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer) {
	f(wg, progressChan, numStrategies, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything. Useful for
// quiet mode and testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting benchmark results,
// allowing different output formats (CLI table, JSON, TUI) without modifying
// the analysis logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-strategy summary table.
	PresentComparisonTable(results []Result, out io.Writer)
	// PresentVerdict displays the cross-strategy consistency verdict and,
	// on success, the agreed product of the fastest run.
	PresentVerdict(consistent bool, fastest *Result, out io.Writer)
}

// RunObserver receives benchmark outcomes for export (e.g. Prometheus).
// Implementations must be safe for concurrent use.
type RunObserver interface {
	// ObserveRun records a completed timed run for a strategy.
	ObserveRun(strategy string, iterations uint64, seconds float64)
	// ObserveMismatch records a cross-strategy divergence.
	ObserveMismatch()
}
