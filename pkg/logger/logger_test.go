package logger

import (
	"testing"

	"upfetch/pkg/config"
)

func TestNewWithValidLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "warning", "error", "fatal", "disabled"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			log, err := New(&config.LoggingConfig{Level: level})
			if err != nil {
				t.Fatalf("New failed for level %q: %v", level, err)
			}
			if log == nil {
				t.Fatal("expected a logger instance")
			}
		})
	}
}

func TestNewWithInvalidLevel(t *testing.T) {
	if _, err := New(&config.LoggingConfig{Level: "nonsense"}); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestWithFieldReturnsNewLogger(t *testing.T) {
	log, err := New(&config.LoggingConfig{Level: "disabled"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	derived := log.WithField("taxid", 816)
	if derived == log {
		t.Error("WithField must return a new logger")
	}

	// The derived logger must not leak fields back into the parent
	impl, ok := log.(*zerologLogger)
	if !ok {
		t.Fatal("unexpected logger implementation")
	}
	if len(impl.fields) != 0 {
		t.Errorf("parent logger gained fields: %v", impl.fields)
	}
}

func TestWithErrorNil(t *testing.T) {
	log, err := New(&config.LoggingConfig{Level: "disabled"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := log.WithError(nil); got != log {
		t.Error("WithError(nil) must return the same logger")
	}
}

func TestGetLoggerReturnsDefault(t *testing.T) {
	if GetLogger() == nil {
		t.Error("expected a default global logger")
	}
}
