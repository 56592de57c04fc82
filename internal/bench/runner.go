package bench

import (
	"context"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fieldbench/internal/errors"
	"github.com/agbru/fieldbench/internal/field"
	"github.com/agbru/fieldbench/internal/logging"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking the
// timed loop when the UI is slow to consume updates.
const ProgressBufferMultiplier = 8

// checkInterval is the number of iterations run between context checks and
// progress updates. Large enough that the bookkeeping is invisible next to
// the multiplications it brackets.
const checkInterval = 1 << 16

// tracerName identifies this package's otel tracer.
const tracerName = "github.com/agbru/fieldbench/internal/bench"

// Options configures a benchmark run.
type Options struct {
	// A and B are the operands fed to every iteration.
	A, B field.Element
	// Iterations is the length of the timed loop per strategy.
	Iterations uint64
	// ValidateOperands rejects operands with limbs >= 2^52 before running
	// instead of silently producing meaningless output.
	ValidateOperands bool
}

// Runner executes warm-up and timed loops for a set of multiplication
// strategies.
type Runner struct {
	logger   logging.Logger
	observer RunObserver
}

// NewRunner creates a Runner. observer may be nil when no metric export is
// configured.
func NewRunner(logger logging.Logger, observer RunObserver) *Runner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Runner{logger: logger, observer: observer}
}

// Run orchestrates the benchmark: for each strategy, one warm-up call
// followed by Iterations timed multiplications into a single reused output
// element. Strategies are timed sequentially so wall-clock figures are not
// distorted by scheduler contention; progress display runs concurrently via
// the reporter.
//
// Returns one Result per strategy, in input order. A context cancellation or
// deadline stops the run early; completed strategies keep their results and
// the interrupted one carries the context error.
func (r *Runner) Run(ctx context.Context, multipliers []field.Multiplier, opts Options, reporter ProgressReporter, out io.Writer) []Result {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "bench.run",
		trace.WithAttributes(attribute.Int64("iterations", int64(opts.Iterations))))
	defer span.End()

	results := make([]Result, len(multipliers))
	progressChan := make(chan ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	if err := r.validateOperands(opts); err != nil {
		for i, m := range multipliers {
			results[i] = Result{Name: m.Name(), Err: err}
		}
		close(progressChan)
		displayWg.Wait()
		return results
	}

	for i, m := range multipliers {
		results[i] = r.runOne(ctx, i, m, opts, progressChan)
		if results[i].Err != nil && apperrors.IsContextError(results[i].Err) {
			// Mark the remaining strategies as not run.
			for j := i + 1; j < len(multipliers); j++ {
				results[j] = Result{Name: multipliers[j].Name(), Err: ctx.Err()}
			}
			break
		}
	}

	close(progressChan)
	displayWg.Wait()
	return results
}

// validateOperands applies the opt-in input invariant check. The multiplier
// core itself never checks; this guards the harness boundary only.
func (r *Runner) validateOperands(opts Options) error {
	if !opts.ValidateOperands {
		return nil
	}
	if !opts.A.IsValid() {
		return apperrors.ValidationError{Field: "a", Message: "operand limb exceeds 2^52"}
	}
	if !opts.B.IsValid() {
		return apperrors.ValidationError{Field: "b", Message: "operand limb exceeds 2^52"}
	}
	return nil
}

// runOne performs warm-up plus the timed loop for a single strategy.
func (r *Runner) runOne(ctx context.Context, index int, m field.Multiplier, opts Options, progress chan<- ProgressUpdate) Result {
	tracer := otel.Tracer(tracerName)
	_, span := tracer.Start(ctx, "bench.strategy",
		trace.WithAttributes(attribute.String("strategy", m.Name())))
	defer span.End()

	a, b := opts.A, opts.B
	var out field.Element

	// Warm-up: one untimed call, matching the reference harness.
	m.Mul(&out, &a, &b)

	r.logger.Debug("starting timed loop",
		logging.String("strategy", m.Name()),
		logging.Uint64("iterations", opts.Iterations))

	res := Result{Name: m.Name(), Iterations: opts.Iterations}
	start := time.Now()

	var done uint64
	for done < opts.Iterations {
		chunk := opts.Iterations - done
		if chunk > checkInterval {
			chunk = checkInterval
		}
		for i := uint64(0); i < chunk; i++ {
			m.Mul(&out, &a, &b)
		}
		done += chunk

		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			res.Iterations = done
			res.Err = err
			sendProgress(progress, ProgressUpdate{Index: index, Name: m.Name(), Fraction: float64(done) / float64(opts.Iterations)})
			return res
		}
		sendProgress(progress, ProgressUpdate{Index: index, Name: m.Name(), Fraction: float64(done) / float64(opts.Iterations)})
	}

	res.Duration = time.Since(start)
	res.Output = out

	if r.observer != nil {
		r.observer.ObserveRun(m.Name(), res.Iterations, res.Duration.Seconds())
	}
	r.logger.Info("timed loop complete",
		logging.String("strategy", m.Name()),
		logging.Uint64("iterations", res.Iterations),
		logging.Float64("seconds", res.Duration.Seconds()))
	return res
}

// sendProgress forwards an update without ever blocking the timed loop.
func sendProgress(ch chan<- ProgressUpdate, u ProgressUpdate) {
	select {
	case ch <- u:
	default:
	}
}
