package config

import "errors"

var (
	// ErrKeyNotFound indicates the requested variant name is not registered.
	ErrKeyNotFound = errors.New("configuration key not found")
	// ErrInvalidSettings indicates an environment value failed to parse or
	// produced settings the server cannot start with.
	ErrInvalidSettings = errors.New("invalid settings")
)
