package config

import (
	"fmt"
	"strings"
	"time"
)

// boolFlag is true only when the raw value equals "true" ignoring case.
// Anything else, including "1" or "yes", is false.
type boolFlag bool

func (f *boolFlag) UnmarshalText(text []byte) error {
	*f = boolFlag(strings.EqualFold(string(text), "true"))
	return nil
}

// options enumerates every recognised environment option together with its
// default. Parsing is driven by the field type.
type options struct {
	Debug           boolFlag `env:"FLASK_DEBUG" envDefault:"False"`
	GraphiQLEnabled boolFlag `env:"GRAPHIQL_ENABLED" envDefault:"True"`
	Host            string   `env:"HOST" envDefault:"0.0.0.0"`
	Port            int      `env:"PORT" envDefault:"5000"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"INFO"`

	RateLimitRPS        float64       `env:"RATE_LIMIT_RPS" envDefault:"25"`
	RateLimitBurst      int           `env:"RATE_LIMIT_BURST" envDefault:"50"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	ReadHeaderTimeout   time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout        time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout         time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

func (o options) settings() Settings {
	return Settings{
		Debug:               bool(o.Debug),
		GraphiQLEnabled:     bool(o.GraphiQLEnabled),
		Host:                o.Host,
		Port:                o.Port,
		LogLevel:            o.LogLevel,
		RateLimitRPS:        o.RateLimitRPS,
		RateLimitBurst:      o.RateLimitBurst,
		ShutdownGracePeriod: o.ShutdownGracePeriod,
		ReadHeaderTimeout:   o.ReadHeaderTimeout,
		WriteTimeout:        o.WriteTimeout,
		IdleTimeout:         o.IdleTimeout,
	}
}

// typedKeys are the options whose values must parse as a number or duration.
var typedKeys = []string{
	"PORT",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"SHUTDOWN_GRACE_PERIOD",
	"READ_HEADER_TIMEOUT",
	"WRITE_TIMEOUT",
	"IDLE_TIMEOUT",
}

// applyEmpty takes variables that are set but empty literally. The env
// parser substitutes defaults for them, so the literal value is restored
// here: empty flags are false, empty strings stay empty and an empty typed
// option is malformed.
func (o *options) applyEmpty(environment map[string]string) error {
	isEmpty := func(key string) bool {
		value, ok := environment[key]
		return ok && value == ""
	}

	for _, key := range typedKeys {
		if isEmpty(key) {
			return fmt.Errorf("%w: %s: empty value", ErrInvalidSettings, key)
		}
	}

	if isEmpty("FLASK_DEBUG") {
		o.Debug = false
	}
	if isEmpty("GRAPHIQL_ENABLED") {
		o.GraphiQLEnabled = false
	}
	if isEmpty("HOST") {
		o.Host = ""
	}
	if isEmpty("LOG_LEVEL") {
		o.LogLevel = ""
	}
	return nil
}
