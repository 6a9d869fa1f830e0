package app_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/pinax-network/pacprune/cmd/pacprune/app"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name   string
		config *app.Config
		want   zerolog.Level
	}{
		{
			name:   "default is info",
			config: &app.Config{LogLevel: "info"},
			want:   zerolog.InfoLevel,
		},
		{
			name:   "verbose raises to debug",
			config: &app.Config{Verbose: true, LogLevel: "info"},
			want:   zerolog.DebugLevel,
		},
		{
			name:   "quiet lowers to warn",
			config: &app.Config{Quiet: true, LogLevel: "info"},
			want:   zerolog.WarnLevel,
		},
		{
			name:   "verbose and quiet prefers quiet",
			config: &app.Config{Verbose: true, Quiet: true, LogLevel: "info"},
			want:   zerolog.WarnLevel,
		},
		{
			name:   "explicit level beats verbose",
			config: &app.Config{Verbose: true, LogLevel: "error"},
			want:   zerolog.ErrorLevel,
		},
		{
			name:   "invalid level falls back to info",
			config: &app.Config{LogLevel: "shouting"},
			want:   zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.LogFormat = "json"
			tt.config.LogOutput = "stderr"

			logger := app.NewLogger(tt.config)

			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}
