// Package logging builds the zap loggers used by the server.
package logging
