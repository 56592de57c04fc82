package bench

import (
	"fmt"
	"io"
	"sort"

	apperrors "github.com/agbru/fieldbench/internal/errors"
)

// Analyze processes the results of a benchmark run: sorts them by duration,
// verifies that every successful strategy produced the identical output
// element, and renders the comparison through the presenter.
//
// The limb-for-limb agreement of all strategies is the defining acceptance
// property of this program; any divergence is reported as a mismatch and
// mapped to ExitErrorMismatch.
//
// Parameters:
//   - results: The per-strategy results to analyze (reordered in place).
//   - presenter: The result presenter for display formatting.
//   - observer: Optional metric sink for mismatch counting (may be nil).
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func Analyze(results []Result, presenter ResultPresenter, observer RunObserver, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *Result
	var firstErr error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		successCount++
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the run.\n")
		return apperrors.ExitCodeForError(firstErr)
	}

	for i := range results {
		res := &results[i]
		if res.Err != nil || res == firstValid {
			continue
		}
		if !res.Output.Equal(&firstValid.Output) {
			if observer != nil {
				observer.ObserveMismatch()
			}
			presenter.PresentVerdict(false, firstValid, out)
			err := apperrors.MismatchError{
				Reference:    firstValid.Name,
				Candidate:    res.Name,
				ReferenceHex: firstValid.Output.Hex(),
				CandidateHex: res.Output.Hex(),
			}
			fmt.Fprintf(out, "\n%v\n", err)
			return apperrors.ExitErrorMismatch
		}
	}

	presenter.PresentVerdict(true, firstValid, out)
	return apperrors.ExitSuccess
}
