// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MODE":         "copy",
		"APP_PEPPER_ENV":   "MY_PEPPER",
		"APP_ENV_FILE":     "/etc/lazypass.env",
		"APP_SHOW_VERSION": "true",

		"KDF_MEMORY":      "65536",
		"KDF_ITERATIONS":  "3",
		"KDF_PARALLELISM": "4",
		"KDF_KEY_LENGTH":  "32",

		"CLIPBOARD_CLEAR_DELAY": "15s",

		"WORKERS_MAX_CONCURRENT": "2",

		"LOG_PATH":  "/tmp/lazypass.log",
		"LOG_LEVEL": "warn",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, ModeCopy, cfg.App.Mode)
	assert.Equal(t, "MY_PEPPER", cfg.App.PepperEnv)
	assert.Equal(t, "/etc/lazypass.env", cfg.App.EnvFile)
	assert.True(t, cfg.App.ShowVersion)

	assert.Equal(t, uint32(65536), cfg.KDF.Memory)
	assert.Equal(t, uint32(3), cfg.KDF.Iterations)
	assert.Equal(t, uint8(4), cfg.KDF.Parallelism)
	assert.Equal(t, uint32(32), cfg.KDF.KeyLength)

	assert.Equal(t, 15*time.Second, cfg.Clipboard.ClearDelay)
	assert.Equal(t, 2, cfg.Workers.MaxConcurrent)

	assert.Equal(t, "/tmp/lazypass.log", cfg.Log.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"KDF_ITERATIONS": "5",
		"LOG_LEVEL":      "error",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, uint32(5), cfg.KDF.Iterations)
	assert.Zero(t, cfg.KDF.Memory)
	assert.Zero(t, cfg.KDF.Parallelism)
	assert.Equal(t, "error", cfg.Log.Level)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Clipboard{}, cfg.Clipboard)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseEnv_PepperIsNotConfig verifies that the pepper variable itself
// never ends up in the configuration.
func TestParseEnv_PepperIsNotConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SALT_PHRASE", "pepper123")
	t.Setenv(EnvPrefix+"SALT_PHRASE", "pepper123")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "CLIPBOARD_CLEAR_DELAY", "soon"},
		{"memory", "KDF_MEMORY", "lots"},
		{"parallelism overflow", "KDF_PARALLELISM", "256"},
		{"workers", "WORKERS_MAX_CONCURRENT", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"CLIPBOARD_CLEAR_DELAY": tt.envValue})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Clipboard.ClearDelay)
		})
	}
}

// TestParseEnv_IgnoresUnprefixed verifies that only LAZYPASS_ variables are
// read.
func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("KDF_MEMORY", "8")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Log.Level)
	assert.Zero(t, cfg.KDF.Memory)
}

// Helpers

// setEnvVars sets every key under EnvPrefix for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(EnvPrefix+k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_MODE",
		"APP_PEPPER_ENV",
		"APP_ENV_FILE",
		"APP_SHOW_VERSION",

		"KDF_MEMORY",
		"KDF_ITERATIONS",
		"KDF_PARALLELISM",
		"KDF_KEY_LENGTH",

		"CLIPBOARD_CLEAR_DELAY",

		"WORKERS_MAX_CONCURRENT",

		"LOG_PATH",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv registers the restore of the original value
		t.Setenv(EnvPrefix+k, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+k))
	}
}
