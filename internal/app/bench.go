package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/fieldbench/internal/bench"
	"github.com/agbru/fieldbench/internal/cli"
	apperrors "github.com/agbru/fieldbench/internal/errors"
	"github.com/agbru/fieldbench/internal/field"
	"github.com/agbru/fieldbench/internal/logging"
	"github.com/agbru/fieldbench/internal/metrics"
	"github.com/agbru/fieldbench/internal/sysmon"
)

// runBench executes the timed benchmark mode.
func (a *Application) runBench(ctx context.Context, multipliers []field.Multiplier, observer bench.RunObserver, out io.Writer) int {
	if !a.Config.Quiet && !a.Config.JSON {
		cli.PrintExecutionConfig(a.Config, out)
	}

	var progressReporter bench.ProgressReporter
	progressOut := out
	if a.Config.Quiet || a.Config.JSON {
		progressOut = io.Discard
		progressReporter = bench.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	sysmon.Sample() // prime the CPU delta
	before := collector.Snapshot()

	runner := bench.NewRunner(a.Logger, observer)
	results := runner.Run(ctx, multipliers, a.benchOptions(), progressReporter, progressOut)

	after := collector.Snapshot()

	if a.Config.JSON {
		return a.presentJSON(results, out)
	}
	if a.Config.Quiet {
		return a.presentQuiet(results, out)
	}

	exitCode := bench.Analyze(results, cli.CLIResultPresenter{}, observer, out)

	if a.Config.Verbose {
		cli.DisplayMemoryStats(metrics.Delta(before, after), out)
		cli.DisplaySystemStats(sysmon.Sample(), out)
	}

	if a.Config.OutputFile != "" && exitCode == apperrors.ExitSuccess {
		if err := a.saveReport(results, true, out); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// presentJSON renders the machine-readable report and maps the verdict to an
// exit code without the table presenter.
func (a *Application) presentJSON(results []bench.Result, out io.Writer) int {
	exitCode := bench.Analyze(results, silentPresenter{}, nil, io.Discard)
	doc, err := cli.FormatJSONReport(results, a.Config.Iterations, exitCode == apperrors.ExitSuccess)
	if err != nil {
		a.Logger.Error("rendering JSON report", logging.Err(err))
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintln(out, doc)
	if a.Config.OutputFile != "" {
		if err := a.saveReport(results, exitCode == apperrors.ExitSuccess, out); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// presentQuiet prints the single-line verdict for scripting.
func (a *Application) presentQuiet(results []bench.Result, out io.Writer) int {
	exitCode := bench.Analyze(results, silentPresenter{}, nil, io.Discard)
	var fastest *bench.Result
	for i := range results {
		if results[i].Err == nil {
			fastest = &results[i]
			break
		}
	}
	cli.DisplayQuietResult(out, fastest)
	return exitCode
}

// runVerify executes the randomized equivalence sweep mode.
func (a *Application) runVerify(ctx context.Context, multipliers []field.Multiplier, out io.Writer) int {
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Verifying %d random operand pairs (seed %d)...\n",
			a.Config.VerifyPairs, a.Config.Seed)
	}

	err := bench.Verify(ctx, multipliers, a.Config.VerifyPairs, a.Config.Seed)
	if err != nil {
		a.Logger.Error("verification failed", logging.Err(err))
		fmt.Fprintf(out, "FAIL: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}

	fmt.Fprintf(out, "OK: %d pairs, all strategies agree\n", a.Config.VerifyPairs)
	return apperrors.ExitSuccess
}

// saveReport writes the report file and logs the outcome.
func (a *Application) saveReport(results []bench.Result, consistent bool, out io.Writer) error {
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		JSON:       a.Config.JSON,
	}
	if err := cli.WriteResultToFile(results, consistent, outputCfg); err != nil {
		a.Logger.Error("saving report", logging.Err(err))
		return err
	}
	if !a.Config.Quiet && !a.Config.JSON {
		fmt.Fprintf(out, "\nReport saved to: %s\n", a.Config.OutputFile)
	}
	return nil
}

// silentPresenter suppresses table output for quiet/JSON modes while the
// analysis still runs.
type silentPresenter struct{}

func (silentPresenter) PresentComparisonTable([]bench.Result, io.Writer) {}

func (silentPresenter) PresentVerdict(bool, *bench.Result, io.Writer) {}
