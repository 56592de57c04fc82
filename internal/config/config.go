// Package config defines the application configuration and its resolution
// chain: command-line flags first, then FIELDBENCH_* environment variables,
// then static defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/fieldbench/internal/errors"
	"github.com/agbru/fieldbench/internal/field"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "FIELDBENCH_"

// Default run parameters.
const (
	// DefaultIterations matches the reference harness: enough repetitions
	// for stable wall-clock figures.
	DefaultIterations = 1_000_000
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 5 * time.Minute
)

// DefaultOperandA and DefaultOperandB are the canonical benchmark operands,
// given as raw 64-bit words; limbs are masked to 52 bits on load.
const (
	DefaultOperandA = "0x123456789ABCDEF0,0x0FEDCBA987654321,0x1111111111111111,0x2222222222222222,0x3333333333333333"
	DefaultOperandB = "0x1111111111111111,0x2222222222222222,0x3333333333333333,0x4444444444444444,0x5555555555555555"
)

// AppConfig holds the complete, resolved application configuration.
type AppConfig struct {
	// Algo selects the strategy to benchmark: a registry key or "all".
	Algo string
	// Iterations is the timed loop length per strategy.
	Iterations uint64
	// VerifyPairs, when nonzero, runs the randomized equivalence sweep over
	// this many operand pairs instead of the timed benchmark.
	VerifyPairs uint64
	// Seed drives the randomized sweep (deterministic per seed).
	Seed int64
	// OperandA and OperandB are the benchmark operands, already masked.
	OperandA field.Element
	OperandB field.Element
	// ValidateOperands enables the harness-level input invariant check.
	ValidateOperands bool
	// Quiet suppresses everything but the final verdict line.
	Quiet bool
	// Verbose enables debug logging and memory/system statistics.
	Verbose bool
	// JSON switches the report to machine-readable output.
	JSON bool
	// TUI launches the interactive dashboard.
	TUI bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// OutputFile, when set, receives the benchmark report.
	OutputFile string
	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string
	// ShowVersion prints version information and exits.
	ShowVersion bool
}

// ParseConfig parses command-line arguments and applies environment
// overrides.
//
// Parameters:
//   - programName: argv[0], used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for flag parse errors and usage.
//   - availableAlgos: The registry keys accepted by -algo.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	var operandA, operandB string

	fs.StringVar(&cfg.Algo, "algo", "all",
		fmt.Sprintf("strategy to benchmark: %s, or \"all\"", strings.Join(availableAlgos, ", ")))
	fs.Uint64Var(&cfg.Iterations, "iterations", DefaultIterations, "timed iterations per strategy")
	fs.Uint64Var(&cfg.VerifyPairs, "verify", 0, "run a randomized equivalence sweep over N operand pairs instead of timing")
	fs.Int64Var(&cfg.Seed, "seed", 1, "seed for the randomized sweep")
	fs.StringVar(&operandA, "a", DefaultOperandA, "operand a: five comma-separated hex limbs, least significant first (masked to 52 bits)")
	fs.StringVar(&operandB, "b", DefaultOperandB, "operand b: five comma-separated hex limbs, least significant first (masked to 52 bits)")
	fs.BoolVar(&cfg.ValidateOperands, "validate", false, "reject operands with limbs >= 2^52 instead of running")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "single-line output for scripting")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging plus memory and system statistics")
	fs.BoolVar(&cfg.JSON, "json", false, "machine-readable JSON report")
	fs.BoolVar(&cfg.TUI, "tui", false, "interactive dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "overall run deadline")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the benchmark report to this file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs, &operandA, &operandB)

	var err error
	if cfg.OperandA, err = field.ParseElement(operandA); err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid -a: %v", err)
	}
	if cfg.OperandB, err = field.ParseElement(operandB); err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid -b: %v", err)
	}

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate applies cross-field configuration rules.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Iterations == 0 && cfg.VerifyPairs == 0 {
		return apperrors.NewConfigError("-iterations must be positive")
	}
	if cfg.Algo != "all" {
		found := false
		for _, a := range availableAlgos {
			if strings.EqualFold(a, cfg.Algo) {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown -algo %q (available: %s, all)",
				cfg.Algo, strings.Join(availableAlgos, ", "))
		}
	}
	if cfg.VerifyPairs > 0 && cfg.Algo != "all" {
		return apperrors.NewConfigError("-verify compares strategies and requires -algo all")
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("-timeout must be positive")
	}
	return nil
}
