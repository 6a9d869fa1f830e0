package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinax-network/pacprune/cmd/pacprune/app"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_OUTPUT", "")
	t.Setenv("VERBOSE", "")
	t.Setenv("QUIET", "")

	config, err := app.LoadConfig()
	require.NoError(t, err)

	assert.False(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.False(t, config.Yes)
	assert.False(t, config.DryRun)
	assert.False(t, config.IncludeYay)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("VERBOSE", "true")

	config, err := app.LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.Verbose)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &app.Config{LogLevel: "info", Format: "json"}

	config.UpdateFromFlags(true, false, true, "", "debug")

	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format, "empty flag keeps the environment value")
	assert.Equal(t, "debug", config.LogLevel)
}

func TestUpdateFromFlagsOverridesFormat(t *testing.T) {
	config := &app.Config{Format: "json"}

	config.UpdateFromFlags(false, false, false, "yaml", "")

	assert.Equal(t, "yaml", config.Format)
}
