package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/loan-tracker/internal/config"
)

func TestLoadSettingsResolvesVariant(t *testing.T) {
	t.Setenv("PORT", "6001")
	t.Setenv("FLASK_DEBUG", "true")

	settings, err := loadSettings(config.Production, "")
	require.NoError(t, err)

	assert.Equal(t, 6001, settings.Port)
	assert.False(t, settings.Debug)
	assert.False(t, settings.GraphiQLEnabled)
}

func TestLoadSettingsUnknownVariant(t *testing.T) {
	_, err := loadSettings("staging", "")
	assert.ErrorIs(t, err, config.ErrKeyNotFound)
}

func TestLoadSettingsMalformedPortIsFatal(t *testing.T) {
	t.Setenv("PORT", "five-thousand")

	_, err := loadSettings(config.Development, "")
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestLoadSettingsValidatesResolvedVariant(t *testing.T) {
	tests := map[string]string{
		"PORT":      "70000",
		"LOG_LEVEL": "TRACE",
		"HOST":      "not a host",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := loadSettings(config.Development, "")
			assert.ErrorIs(t, err, config.ErrInvalidSettings)
		})
	}
}

func TestLoadSettingsEmptyPortIsFatal(t *testing.T) {
	t.Setenv("PORT", "")

	_, err := loadSettings(config.Development, "")
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestLoadSettingsReadsEnvFile(t *testing.T) {
	// t.Setenv registers cleanup; unsetting lets the .env value through.
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=WARNING\n"), 0o600))

	settings, err := loadSettings(config.Testing, path)
	require.NoError(t, err)

	assert.Equal(t, "WARNING", settings.LogLevel)
	assert.True(t, settings.Testing)
}

func TestLoadSettingsMissingEnvFile(t *testing.T) {
	_, err := loadSettings(config.Development, filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoadSeed(t *testing.T) {
	got, err := loadSeed("")
	require.NoError(t, err)
	assert.Nil(t, got)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loans:\n  - name: Car\n    principal: 10\n    due_date: \"2025-01-31\"\n"), 0o600))

	got, err = loadSeed(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Car", got[0].Name)
}
