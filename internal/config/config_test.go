package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	registry, err := NewRegistryFromMap(nil)
	require.NoError(t, err)

	base := registry.Base()
	assert.False(t, base.Debug)
	assert.True(t, base.GraphiQLEnabled)
	assert.Equal(t, "0.0.0.0", base.Host)
	assert.Equal(t, 5000, base.Port)
	assert.Equal(t, "INFO", base.LogLevel)
	assert.False(t, base.Testing)
	assert.Equal(t, 25.0, base.RateLimitRPS)
	assert.Equal(t, 50, base.RateLimitBurst)
	assert.Equal(t, 10*time.Second, base.ShutdownGracePeriod)
	assert.Equal(t, 5*time.Second, base.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, base.WriteTimeout)
	assert.Equal(t, 60*time.Second, base.IdleTimeout)

	for _, name := range registry.Names() {
		s, err := registry.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, 5000, s.Port, "variant %s", name)
		assert.Equal(t, "0.0.0.0:5000", s.Address(), "variant %s", name)
	}
}

func TestRegistryVariantOverrides(t *testing.T) {
	environments := map[string]map[string]string{
		"unset": nil,
		"enabled": {
			"FLASK_DEBUG":      "true",
			"GRAPHIQL_ENABLED": "TRUE",
		},
		"disabled": {
			"FLASK_DEBUG":      "false",
			"GRAPHIQL_ENABLED": "false",
		},
	}

	want := map[string]struct {
		debug, graphiQL, testing bool
	}{
		Development: {debug: true, graphiQL: true},
		Production:  {},
		Testing:     {debug: true, testing: true},
	}

	for envName, environment := range environments {
		registry, err := NewRegistryFromMap(environment)
		require.NoError(t, err)

		for name, expected := range want {
			t.Run(envName+"/"+name, func(t *testing.T) {
				s, err := registry.Resolve(name)
				require.NoError(t, err)
				assert.Equal(t, expected.debug, s.Debug)
				assert.Equal(t, expected.graphiQL, s.GraphiQLEnabled)
				assert.Equal(t, expected.testing, s.Testing)
			})
		}
	}
}

func TestRegistryReadsEnvironment(t *testing.T) {
	registry, err := NewRegistryFromMap(map[string]string{
		"FLASK_DEBUG":      "True",
		"GRAPHIQL_ENABLED": "no",
		"HOST":             "127.0.0.1",
		"PORT":             "8081",
		"LOG_LEVEL":        "DEBUG",
		"RATE_LIMIT_RPS":   "0",
		"WRITE_TIMEOUT":    "2s",
	})
	require.NoError(t, err)

	base := registry.Base()
	assert.True(t, base.Debug)
	assert.False(t, base.GraphiQLEnabled)
	assert.Equal(t, "127.0.0.1", base.Host)
	assert.Equal(t, 8081, base.Port)
	assert.Equal(t, "DEBUG", base.LogLevel)
	assert.Zero(t, base.RateLimitRPS)
	assert.Equal(t, 2*time.Second, base.WriteTimeout)

	prod, err := registry.Resolve(Production)
	require.NoError(t, err)
	assert.False(t, prod.Debug)
	assert.Equal(t, "127.0.0.1:8081", prod.Address())
	assert.Equal(t, "DEBUG", prod.LogLevel)
}

func TestBoolFlagComparison(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"tRuE":  true,
		"false": false,
		"1":     false,
		"yes":   false,
		"":      false,
		" true": false,
	}
	for raw, want := range tests {
		var f boolFlag
		require.NoError(t, f.UnmarshalText([]byte(raw)))
		assert.Equal(t, want, bool(f), "raw %q", raw)
	}
}

func TestResolveUnknownKey(t *testing.T) {
	registry, err := NewRegistryFromMap(nil)
	require.NoError(t, err)

	for _, name := range []string{"staging", "", "Production"} {
		_, err := registry.Resolve(name)
		assert.ErrorIs(t, err, ErrKeyNotFound, "name %q", name)
	}
}

func TestRegistryRejectsMalformedPort(t *testing.T) {
	_, err := NewRegistryFromMap(map[string]string{"PORT": "http"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Contains(t, strings.ToLower(err.Error()), "port")
}

func TestRegistryRejectsBadDuration(t *testing.T) {
	_, err := NewRegistryFromMap(map[string]string{"IDLE_TIMEOUT": "forever"})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestRegistryEmptyValues(t *testing.T) {
	for _, key := range []string{"PORT", "RATE_LIMIT_BURST", "WRITE_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			_, err := NewRegistryFromMap(map[string]string{key: ""})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), key)
		})
	}

	registry, err := NewRegistryFromMap(map[string]string{
		"FLASK_DEBUG":      "",
		"GRAPHIQL_ENABLED": "",
		"HOST":             "",
		"LOG_LEVEL":        "",
	})
	require.NoError(t, err)

	base := registry.Base()
	assert.False(t, base.Debug)
	assert.False(t, base.GraphiQLEnabled)
	assert.Empty(t, base.Host)
	assert.Empty(t, base.LogLevel)

	dev, err := registry.Resolve(Development)
	require.NoError(t, err)
	assert.True(t, dev.GraphiQLEnabled)
}

func TestRegistryKeepsUnvalidatedValues(t *testing.T) {
	registry, err := NewRegistryFromMap(map[string]string{
		"LOG_LEVEL": "NOTSET",
		"HOST":      "not a host",
		"PORT":      "70000",
	})
	require.NoError(t, err)

	base := registry.Base()
	assert.Equal(t, "NOTSET", base.LogLevel)
	assert.Equal(t, "not a host", base.Host)
	assert.Equal(t, 70000, base.Port)
}

func TestValidate(t *testing.T) {
	registry, err := NewRegistryFromMap(nil)
	require.NoError(t, err)
	require.NoError(t, registry.Base().Validate())

	tests := map[string]func(*Settings){
		"PortTooLarge":      func(s *Settings) { s.Port = 70000 },
		"NegativePort":      func(s *Settings) { s.Port = -1 },
		"UnknownLogLevel":   func(s *Settings) { s.LogLevel = "chatty" },
		"EmptyLogLevel":     func(s *Settings) { s.LogLevel = "" },
		"InvalidHost":       func(s *Settings) { s.Host = "not a host" },
		"NegativeRateLimit": func(s *Settings) { s.RateLimitRPS = -5 },
		"ZeroTimeout":       func(s *Settings) { s.IdleTimeout = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := registry.Base()
			mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}

func TestValidateLogLevelMessageListsAcceptedNames(t *testing.T) {
	s := Settings{LogLevel: "chatty"}
	err := validateLogLevel(s.LogLevel)
	require.Error(t, err)
	for _, name := range []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "CRITICAL", "FATAL"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	registry, err := NewRegistryFromMap(nil)
	require.NoError(t, err)

	s, err := registry.Resolve(Development)
	require.NoError(t, err)
	s.Port = 1

	again, err := registry.Resolve(Development)
	require.NoError(t, err)
	assert.Equal(t, 5000, again.Port)
}

func TestNames(t *testing.T) {
	registry, err := NewRegistryFromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{Development, Production, Testing}, registry.Names())
}

func TestNewRegistryUsesProcessEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("FLASK_DEBUG", "true")

	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, 9191, registry.Base().Port)
	assert.True(t, registry.Base().Debug)

	prod, err := registry.Resolve(Production)
	require.NoError(t, err)
	assert.False(t, prod.Debug)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "LOAN_TRACKER_DOTENV_TEST"
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	require.NoError(t, LoadDotEnv())

	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidSettings))
}
