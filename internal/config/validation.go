package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/eugenenazirov/loan-tracker/internal/logging"
)

// Validate checks that s describes a server that can start.
func (s Settings) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Host, validation.Required, is.Host),
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.LogLevel, validation.Required, validation.By(validateLogLevel)),
		validation.Field(&s.RateLimitRPS, validation.Min(0.0)),
		validation.Field(&s.RateLimitBurst, validation.Min(0)),
		validation.Field(&s.ShutdownGracePeriod, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&s.ReadHeaderTimeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&s.WriteTimeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&s.IdleTimeout, validation.Required, validation.Min(time.Duration(1))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

func validateLogLevel(value interface{}) error {
	level, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return validation.NewError("validation_invalid_log_level", "must be one of "+strings.Join(logging.LevelNames(), ", "))
	}
	return nil
}
