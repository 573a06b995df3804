package config

import (
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Variant names accepted by Registry.Resolve.
const (
	Development = "development"
	Production  = "production"
	Testing     = "testing"
)

// Settings is one resolved set of startup settings.
type Settings struct {
	Debug           bool
	GraphiQLEnabled bool
	Host            string
	Port            int
	LogLevel        string
	Testing         bool

	RateLimitRPS        float64
	RateLimitBurst      int
	ShutdownGracePeriod time.Duration
	ReadHeaderTimeout   time.Duration
	WriteTimeout        time.Duration
	IdleTimeout         time.Duration
}

// Address returns the host:port the server binds to.
func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// variant lists the fields a named variant pins to fixed values on top of
// the base settings.
type variant struct {
	debug           bool
	graphiQLEnabled bool
	testing         bool
}

var variants = map[string]variant{
	Development: {debug: true, graphiQLEnabled: true},
	Production:  {debug: false, graphiQLEnabled: false},
	Testing:     {debug: true, graphiQLEnabled: false, testing: true},
}

func (v variant) apply(base Settings) Settings {
	base.Debug = v.debug
	base.GraphiQLEnabled = v.graphiQLEnabled
	base.Testing = v.testing
	return base
}

// Registry maps variant names to their settings.
type Registry struct {
	base     Settings
	settings map[string]Settings
}

// NewRegistry reads the process environment and builds every variant.
func NewRegistry() (*Registry, error) {
	return NewRegistryFromMap(environMap(os.Environ()))
}

// NewRegistryFromMap builds every variant from the supplied environment
// instead of the process environment.
func NewRegistryFromMap(environment map[string]string) (*Registry, error) {
	if environment == nil {
		environment = map[string]string{}
	}

	var opts options
	if err := env.ParseWithOptions(&opts, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if err := opts.applyEmpty(environment); err != nil {
		return nil, err
	}
	return newRegistry(opts), nil
}

// newRegistry performs no validation; Settings.Validate is the startup gate.
func newRegistry(opts options) *Registry {
	base := opts.settings()

	settings := make(map[string]Settings, len(variants))
	for name, v := range variants {
		settings[name] = v.apply(base)
	}

	return &Registry{base: base, settings: settings}
}

func environMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			out[key] = value
		}
	}
	return out
}

// Resolve returns the settings registered under name. Unknown names yield an
// error wrapping ErrKeyNotFound.
func (r *Registry) Resolve(name string) (Settings, error) {
	s, ok := r.settings[name]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return s, nil
}

// Base returns the settings as read from the environment, before any variant
// overrides are applied.
func (r *Registry) Base() Settings {
	return r.base
}

// Names returns the registered variant names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.settings))
	for name := range r.settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
