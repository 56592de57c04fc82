package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fieldbench/internal/bench"
	"github.com/agbru/fieldbench/internal/field"
	"github.com/agbru/fieldbench/internal/ui"
)

func TestMain(m *testing.M) {
	ui.InitTheme(true) // deterministic, colorless assertions
	m.Run()
}

func sampleResults() []bench.Result {
	var product field.Element
	field.MulSchoolbook(&product, &field.Element{1, 0, 0, 0, 0}, &field.Element{7, 0, 0, 0, 0})
	return []bench.Result{
		{Name: "Karatsuba", Output: product, Iterations: 1000, Duration: 200 * time.Microsecond},
		{Name: "Schoolbook", Output: product, Iterations: 1000, Duration: 300 * time.Microsecond},
	}
}

func TestPresentComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(sampleResults(), &buf)

	out := buf.String()
	for _, want := range []string{"Comparison Summary", "Strategy", "Duration", "Throughput", "Karatsuba", "Schoolbook", "ops/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPresentComparisonTable_Error(t *testing.T) {
	results := []bench.Result{
		{Name: "Karatsuba", Err: errors.New("timed out")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)

	if !strings.Contains(buf.String(), "timed out") {
		t.Errorf("table missing error text:\n%s", buf.String())
	}
}

func TestPresentVerdict_Consistent(t *testing.T) {
	results := sampleResults()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentVerdict(true, &results[0], &buf)

	out := buf.String()
	if !strings.Contains(out, "Success") {
		t.Errorf("verdict missing success marker:\n%s", out)
	}
	if !strings.Contains(out, "Karatsuba") {
		t.Errorf("verdict missing fastest strategy:\n%s", out)
	}
	if !strings.Contains(out, results[0].Output.Hex()) {
		t.Errorf("verdict missing product:\n%s", out)
	}
}

func TestPresentVerdict_Mismatch(t *testing.T) {
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentVerdict(false, nil, &buf)

	if !strings.Contains(buf.String(), "CRITICAL") {
		t.Errorf("verdict missing mismatch marker:\n%s", buf.String())
	}
}

func TestFormatDuration_SubMicrosecond(t *testing.T) {
	if got := formatDuration(bench.Result{Duration: 0}); got != "< 1µs" {
		t.Errorf("formatDuration(0) = %q", got)
	}
	if got := formatDuration(bench.Result{Duration: 42 * time.Microsecond}); got != "42µs" {
		t.Errorf("formatDuration(42µs) = %q", got)
	}
}

func TestPad(t *testing.T) {
	if pad(-1) != "" || pad(0) != "" {
		t.Error("pad should return empty string for n <= 0")
	}
	if got := pad(3); got != "   " {
		t.Errorf("pad(3) = %q", got)
	}
}
