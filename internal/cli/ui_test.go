package cli

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/briandowns/spinner"

	"github.com/agbru/fieldbench/internal/bench"
)

// fakeSpinner records the suffixes set during a progress run.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() { f.started = true }

func (f *fakeSpinner) Stop() { f.stopped = true }

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func withFakeSpinner(t *testing.T) *fakeSpinner {
	t.Helper()
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return fake }
	t.Cleanup(func() { newSpinner = orig })
	return fake
}

func TestDisplayProgress(t *testing.T) {
	fake := withFakeSpinner(t)

	ch := make(chan bench.ProgressUpdate)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, ch, 2, io.Discard)

	ch <- bench.ProgressUpdate{Index: 0, Name: "Karatsuba", Fraction: 0.5}
	ch <- bench.ProgressUpdate{Index: 1, Name: "Schoolbook", Fraction: 1.0}
	close(ch)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Fatalf("spinner lifecycle: started=%t stopped=%t", fake.started, fake.stopped)
	}
	last := fake.suffixes[len(fake.suffixes)-1]
	if !strings.Contains(last, "Schoolbook") || !strings.Contains(last, "75%") {
		t.Errorf("final suffix = %q, want Schoolbook at 75%%", last)
	}
}

func TestProgressStateUpdate(t *testing.T) {
	ps := NewProgressState(2)

	if got := ps.Update(bench.ProgressUpdate{Index: 0, Fraction: 1.0}); got != 0.5 {
		t.Errorf("overall after first strategy = %v, want 0.5", got)
	}
	if got := ps.Update(bench.ProgressUpdate{Index: 1, Fraction: 1.0}); got != 1.0 {
		t.Errorf("overall after both strategies = %v, want 1.0", got)
	}
}

func TestProgressStateUpdate_IgnoresOutOfRange(t *testing.T) {
	ps := NewProgressState(1)
	if got := ps.Update(bench.ProgressUpdate{Index: 5, Fraction: 1.0}); got != 0 {
		t.Errorf("out-of-range update changed state: %v", got)
	}
}

func TestProgressStateUpdate_ZeroStrategies(t *testing.T) {
	ps := NewProgressState(0)
	if got := ps.Update(bench.ProgressUpdate{Index: 0, Fraction: 1.0}); got != 0 {
		t.Errorf("zero-strategy state returned %v, want 0", got)
	}
}
