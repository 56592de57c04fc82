// Package app wires configuration, logging, metrics, and the benchmark
// harness into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fieldbench/internal/bench"
	"github.com/agbru/fieldbench/internal/config"
	apperrors "github.com/agbru/fieldbench/internal/errors"
	"github.com/agbru/fieldbench/internal/field"
	"github.com/agbru/fieldbench/internal/logging"
	"github.com/agbru/fieldbench/internal/server"
	"github.com/agbru/fieldbench/internal/tui"
	"github.com/agbru/fieldbench/internal/ui"
)

// Application represents the fieldbench application instance.
type Application struct {
	Config    config.AppConfig
	Factory   field.MultiplierFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom MultiplierFactory for the application.
func WithFactory(f field.MultiplierFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = field.NewDefaultFactory()
	}

	programName := "fieldbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		a.Logger = logging.NewConsoleLogger(a.ErrWriter)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		a.Logger = logging.NewNopLogger()
	}
	ui.InitTheme(a.Config.NoColor || a.Config.Quiet || a.Config.JSON)

	// Lifecycle: timeout + signals.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var observer bench.RunObserver
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, server.NewMetrics(), a.Logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		observer = srv.Metrics()
	}

	multipliers := multipliersToRun(a.Config.Algo, a.Factory)
	if len(multipliers) == 0 {
		a.Logger.Error("no multipliers selected", logging.String("algo", a.Config.Algo))
		return apperrors.ExitErrorConfig
	}

	if a.Config.VerifyPairs > 0 {
		return a.runVerify(ctx, multipliers, out)
	}
	if a.Config.TUI {
		return tui.Run(ctx, multipliers, a.benchOptions(), a.Logger, observer)
	}
	return a.runBench(ctx, multipliers, observer, out)
}

// benchOptions translates the configuration into runner options.
func (a *Application) benchOptions() bench.Options {
	return bench.Options{
		A:                a.Config.OperandA,
		B:                a.Config.OperandB,
		Iterations:       a.Config.Iterations,
		ValidateOperands: a.Config.ValidateOperands,
	}
}

// multipliersToRun resolves the -algo selection against the factory.
// Returns multipliers in sorted key order for reproducible behavior.
func multipliersToRun(algo string, factory field.MultiplierFactory) []field.Multiplier {
	if algo == "all" {
		return factory.GetAll()
	}
	m, err := factory.Get(algo)
	if err != nil {
		return nil
	}
	return []field.Multiplier{m}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
