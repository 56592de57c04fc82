// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fieldbench/internal/bench"
	"github.com/agbru/fieldbench/internal/config"
	"github.com/agbru/fieldbench/internal/format"
	"github.com/agbru/fieldbench/internal/metrics"
	"github.com/agbru/fieldbench/internal/sysmon"
	"github.com/agbru/fieldbench/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// JSON selects machine-readable report formatting.
	JSON bool
}

// PrintExecutionConfig displays the run parameters before benchmarking.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%sfieldbench%s — 5-limb radix-2^52 multiplication benchmark\n",
		ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Strategies: %s, Iterations: %s, Timeout: %s\n",
		cfg.Algo, format.FormatOpsCount(cfg.Iterations), cfg.Timeout)
	fmt.Fprintf(out, "a = %s\n", cfg.OperandA.Hex())
	fmt.Fprintf(out, "b = %s\n", cfg.OperandB.Hex())
}

// DisplayQuietResult prints a single-line verdict for scripting.
func DisplayQuietResult(out io.Writer, fastest *bench.Result) {
	if fastest == nil {
		fmt.Fprintln(out, "no result")
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", fastest.Name,
		format.FormatExecutionDuration(fastest.Duration), fastest.Output.Hex())
}

// DisplayMemoryStats shows allocation deltas measured around the timed
// loops. The multiplication core allocates nothing, so the deltas should be
// dominated by harness bookkeeping.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory (delta across run):\n")
	fmt.Fprintf(out, "  Allocated:  %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:  %d\n", delta.NumGC)
	if delta.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause:   %.2fms\n", float64(delta.PauseTotalNs)/1e6)
	}
}

// DisplaySystemStats shows a system-wide CPU/memory sample.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "System: CPU %.1f%%, Mem %.1f%%\n", stats.CPUPercent, stats.MemPercent)
}

// jsonReport is the machine-readable report schema.
type jsonReport struct {
	GeneratedAt string       `json:"generated_at"`
	Iterations  uint64       `json:"iterations"`
	Consistent  bool         `json:"consistent"`
	Results     []jsonResult `json:"results"`
}

type jsonResult struct {
	Strategy   string  `json:"strategy"`
	Seconds    float64 `json:"seconds"`
	Iterations uint64  `json:"iterations"`
	Product    string  `json:"product,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// FormatJSONReport renders results as an indented JSON document.
func FormatJSONReport(results []bench.Result, iterations uint64, consistent bool) (string, error) {
	report := jsonReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Iterations:  iterations,
		Consistent:  consistent,
	}
	for _, res := range results {
		jr := jsonResult{
			Strategy:   res.Name,
			Seconds:    res.Duration.Seconds(),
			Iterations: res.Iterations,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		} else {
			jr.Product = res.Output.Hex()
		}
		report.Results = append(report.Results, jr)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteResultToFile writes a benchmark report to a file.
//
// Parameters:
//   - results: The analyzed benchmark results.
//   - consistent: Whether all strategies agreed.
//   - cfg: Output configuration (OutputFile must be set).
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(results []bench.Result, consistent bool, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if cfg.JSON {
		doc, err := FormatJSONReport(results, maxIterations(results), consistent)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(file, doc)
		return err
	}

	fmt.Fprintf(file, "# Field Multiplication Benchmark Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Consistent: %t\n\n", consistent)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(file, "%s: error: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(file, "%s: %s for %d iterations (%s)\n", res.Name,
			res.Duration, res.Iterations,
			format.FormatOpsPerSecond(res.Iterations, res.Duration))
		fmt.Fprintf(file, "  product = %s\n", res.Output.Hex())
	}
	return nil
}

func maxIterations(results []bench.Result) uint64 {
	var max uint64
	for _, res := range results {
		if res.Iterations > max {
			max = res.Iterations
		}
	}
	return max
}
