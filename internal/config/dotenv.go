package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadDotEnv copies variables from the given .env files into the process
// environment. Variables that are already set keep their values. It must run
// before NewRegistry for the values to be seen.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
