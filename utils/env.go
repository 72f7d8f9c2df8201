package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// envLocations are tried in order; variables already present in the
// environment are never overwritten.
var envLocations = []string{
	".env",        // Current directory
	".env.local",  // Local override
	"config/.env", // Config directory
}

// LoadEnv loads environment variables from a .env file. A missing file is
// not an error.
func LoadEnv(filename string, logger *zap.Logger) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no env file found", zap.String("file", filename))
			return nil
		}
		return fmt.Errorf("error loading %s: %w", filename, err)
	}
	logger.Info("loaded environment variables", zap.String("file", filename))
	return nil
}

// LoadEnvWithFallback loads every standard .env location that exists.
func LoadEnvWithFallback(logger *zap.Logger) error {
	var errs []error
	for _, location := range envLocations {
		if err := LoadEnv(location, logger); err != nil {
			logger.Warn("could not load env file", zap.String("file", location), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FirstNonEmpty returns the first value that is not the empty string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
