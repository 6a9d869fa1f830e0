package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pinax-network/pacprune/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	original := logging.Default()
	originalLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetDefault(logger)
	t.Cleanup(func() {
		logging.SetDefault(*original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warning message", "error message"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(buf)

	logger.Info().Str("manager", "yay").Msg("hello")

	output := buf.String()
	if !strings.Contains(output, `"manager":"yay"`) {
		t.Errorf("Expected structured field in output, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("Expected message in output, got: %s", output)
	}
}

func TestTestLoggerHelpers(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Msg("first")
	testLogger.Info().Msg("second")

	if !testLogger.ContainsAll("first", "second") {
		t.Errorf("Expected both messages, got: %s", testLogger.Output())
	}
	if got := testLogger.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	testLogger.Clear()
	if got := testLogger.Count(); got != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", got)
	}
}
