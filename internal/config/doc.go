// Package config resolves the server's startup settings from environment
// variables and exposes them as named variants (development, production,
// testing). The environment is read once when the Registry is built; the
// resulting Settings are plain values and never change afterwards.
package config
