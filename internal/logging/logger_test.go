package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("key", "value")
		if f.Key != "key" || f.Value != "value" {
			t.Errorf("String() = %+v, want {key value}", f)
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("count", 42)
		if f.Key != "count" || f.Value != 42 {
			t.Errorf("Int() = %+v, want {count 42}", f)
		}
	})

	t.Run("Uint64 creates field with key and uint64 value", func(t *testing.T) {
		f := Uint64("iterations", 1000000)
		if f.Key != "iterations" || f.Value != uint64(1000000) {
			t.Errorf("Uint64() = %+v", f)
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" || f.Value != testErr {
			t.Errorf("Err() = %+v", f)
		}
	})
}

// TestZerologAdapter verifies field emission through the zerolog backend.
func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("benchmark complete",
		String("algo", "karatsuba"),
		Uint64("iterations", 1000000),
		Float64("seconds", 0.05),
	)

	out := buf.String()
	for _, want := range []string{"benchmark complete", "karatsuba", "1000000", "0.05"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

// TestNopLogger verifies the nop logger produces no output and never panics.
func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug("a")
	logger.Info("b", Err(errors.New("x")))
	logger.Warn("c")
	logger.Error("d")
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}
