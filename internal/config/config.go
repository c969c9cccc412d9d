// Package config resolves CLI defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Environment keys
const (
	KeySamples   = "BEAMCALC_SAMPLES"
	KeyVerbose   = "BEAMCALC_VERBOSE"
	KeyOutputDir = "BEAMCALC_OUTPUT_DIR"
	KeyPrecision = "BEAMCALC_PRECISION"
)

// DefaultEnvFile is read when present in the working directory
const DefaultEnvFile = ".env"

// ErrInvalidValue is returned for a key whose value cannot be parsed
var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the settings shared by all commands
type Config struct {
	Samples   int    // diagram sample points
	Verbose   bool   // console logging
	OutputDir string // where exported files go
	Precision int    // decimals in printed reports
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Samples:   1000,
		OutputDir: ".",
		Precision: 2,
	}
}

// Load reads envFile (skipped when it does not exist) and then the process
// environment, which takes precedence.
func Load(envFile string) (Config, error) {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			values = fileValues
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	for _, key := range []string{KeySamples, KeyVerbose, KeyOutputDir, KeyPrecision} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	return FromMap(values)
}

// FromMap applies values over the defaults
func FromMap(values map[string]string) (Config, error) {
	cfg := Default()

	if v, ok := lookup(values, KeySamples); ok {
		n, err := cast.ToIntE(v)
		if err != nil || n < 2 {
			return Config{}, fmt.Errorf("%w: %s=%q must be an integer of at least 2", ErrInvalidValue, KeySamples, v)
		}
		cfg.Samples = n
	}
	if v, ok := lookup(values, KeyVerbose); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, KeyVerbose, v)
		}
		cfg.Verbose = b
	}
	if v, ok := lookup(values, KeyOutputDir); ok {
		cfg.OutputDir = v
	}
	if v, ok := lookup(values, KeyPrecision); ok {
		n, err := cast.ToIntE(v)
		if err != nil || n < 0 || n > 10 {
			return Config{}, fmt.Errorf("%w: %s=%q must be an integer from 0 to 10", ErrInvalidValue, KeyPrecision, v)
		}
		cfg.Precision = n
	}
	return cfg, nil
}

// lookup ignores blank values so an empty assignment keeps the default
func lookup(values map[string]string, key string) (string, bool) {
	v, ok := values[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
