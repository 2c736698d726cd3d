package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "teamctl", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "console", cfg.Observability.LogFormat)
	assert.False(t, cfg.CLI.PrintEvents)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"APP_ENV":              "production",
		"APP_NAME":             "teams",
		"LOG_LEVEL":            "debug",
		"TEAMCTL_PRINT_EVENTS": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "teams", cfg.App.Name)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
	assert.True(t, cfg.CLI.PrintEvents)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"APP_ENV":    "qa",
		"LOG_LEVEL":  "loud",
		"LOG_FORMAT": "xml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoadFrom_BadBool(t *testing.T) {
	_, err := LoadFrom(map[string]string{"TEAMCTL_PRINT_EVENTS": "maybe"})
	assert.Error(t, err)
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvStaging, cfg.App.Environment)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}
