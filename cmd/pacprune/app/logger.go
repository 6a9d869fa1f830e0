package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/pinax-network/pacprune/pkg/logging"
)

// NewLogger creates a logger based on the application configuration.
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	logConfig := &logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	}

	return logging.NewLoggerFromConfig(logConfig)
}

// determineLogLevel resolves the log level from flags and environment.
// An explicit --log-level beats the -v/-q shortcuts.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" && config.LogLevel != "info" {
		return validateLogLevel(config.LogLevel)
	}

	if config.Verbose && config.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	return validateLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))
}

// validateLogLevel checks the level is one zerolog understands and
// falls back to info with a warning when it is not.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return level
	default:
		fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using info\n", level)
		return "info"
	}
}
