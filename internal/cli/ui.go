package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fieldbench/internal/bench"
)

// ProgressRefreshRate defines the refresh frequency of the spinner display.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner, decoupling
// DisplayProgress from a specific spinner implementation for easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState aggregates the completion fractions of the strategies in a
// run and computes the overall average shown next to the spinner.
type ProgressState struct {
	fractions     []float64
	numStrategies int
}

// NewProgressState creates tracking state for the given strategy count.
func NewProgressState(numStrategies int) *ProgressState {
	return &ProgressState{
		fractions:     make([]float64, numStrategies),
		numStrategies: numStrategies,
	}
}

// Update records one progress sample and returns the new overall fraction.
func (ps *ProgressState) Update(u bench.ProgressUpdate) float64 {
	if u.Index >= 0 && u.Index < len(ps.fractions) {
		ps.fractions[u.Index] = u.Fraction
	}
	var sum float64
	for _, f := range ps.fractions {
		sum += f
	}
	if ps.numStrategies == 0 {
		return 0
	}
	return sum / float64(ps.numStrategies)
}

// DisplayProgress consumes progress updates and renders them with a spinner
// until the channel is closed. It implements the display half of
// bench.ProgressReporter.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numStrategies int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(" benchmarking...")
	sp.Start()
	defer sp.Stop()

	state := NewProgressState(numStrategies)
	for u := range progressChan {
		overall := state.Update(u)
		sp.UpdateSuffix(fmt.Sprintf(" benchmarking %s... %3.0f%%", u.Name, overall*100))
	}
}
