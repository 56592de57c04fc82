// Package format provides small, pure formatting helpers shared by the CLI
// and TUI presentation layers.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBytes formats a byte count using binary units (KiB, MiB, ...).
//
// Parameters:
//   - b: The byte count to format.
//
// Returns:
//   - string: A human-readable size string.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatOpsPerSecond renders a throughput figure with thousands separators
// suitable for the benchmark summary (e.g. "18,934,210 ops/s").
//
// Parameters:
//   - iterations: The number of operations performed.
//   - d: The wall-clock duration of the run.
//
// Returns:
//   - string: A formatted throughput string, or "n/a" when d is zero.
func FormatOpsPerSecond(iterations uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	ops := uint64(float64(iterations) / d.Seconds())
	return groupDigits(ops) + " ops/s"
}

// FormatOpsCount renders an iteration count with thousands separators.
//
// Parameters:
//   - v: The count to format.
//
// Returns:
//   - string: The grouped decimal rendering (e.g. "1,000,000").
func FormatOpsCount(v uint64) string {
	return groupDigits(v)
}

// groupDigits inserts comma separators every three digits.
func groupDigits(v uint64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
