// This file contains environment variable utilities for configuration
// override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line. This
// determines whether an environment variable override applies: explicit
// flags always win.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride declares a single environment variable override: an env key
// (without the FIELDBENCH_ prefix), the CLI flag it corresponds to, and a
// function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(string)
}

// applyEnvOverrides layers FIELDBENCH_* environment variables under
// explicitly-set flags. operandA/operandB are passed separately because
// they are parsed into Elements after resolution.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet, operandA, operandB *string) {
	overrides := []envOverride{
		{"ALGO", "algo", func(v string) { cfg.Algo = v }},
		{"ITERATIONS", "iterations", func(v string) {
			if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
				cfg.Iterations = parsed
			}
		}},
		{"SEED", "seed", func(v string) {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				cfg.Seed = parsed
			}
		}},
		{"OPERAND_A", "a", func(v string) { *operandA = v }},
		{"OPERAND_B", "b", func(v string) { *operandB = v }},
		{"TIMEOUT", "timeout", func(v string) {
			if parsed, err := time.ParseDuration(v); err == nil {
				cfg.Timeout = parsed
			}
		}},
		{"OUTPUT", "output", func(v string) { cfg.OutputFile = v }},
		{"METRICS_ADDR", "metrics-addr", func(v string) { cfg.MetricsAddr = v }},
		{"QUIET", "quiet", func(v string) { cfg.Quiet = parseBool(v, cfg.Quiet) }},
		{"VERBOSE", "verbose", func(v string) { cfg.Verbose = parseBool(v, cfg.Verbose) }},
		{"NO_COLOR", "no-color", func(v string) { cfg.NoColor = parseBool(v, cfg.NoColor) }},
		{"VALIDATE", "validate", func(v string) { cfg.ValidateOperands = parseBool(v, cfg.ValidateOperands) }},
	}

	for _, o := range overrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(val)
		}
	}
}

// parseBool accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive); anything else keeps the default.
func parseBool(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}
