package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"vector-algebra/vector"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

/*
Config is the configuration for the application.

Contains the numeric settings of the vector space and the log level.
*/
type Config struct {
	Vector   VectorConfig `json:"vector"`
	LogLevel string       `json:"log_level"`
}

/*
VectorConfig is the configuration for a vector.Space.
*/
type VectorConfig struct {
	// decimal places kept by division
	Precision int32 `json:"precision"`
	// magnitude below which a vector is zero
	ZeroTolerance float64 `json:"zero_tolerance"`
	// |dot| below which two vectors are orthogonal
	OrthogonalTolerance float64 `json:"orthogonal_tolerance"`
	// width of the angle stability guard, 0 disables it
	ParallelGuard float64 `json:"parallel_guard"`
}

/*
Default config
*/
func DefaultConfig() *Config {
	return &Config{
		Vector: VectorConfig{
			Precision:           vector.DefaultPrecision,
			ZeroTolerance:       vector.DefaultZeroTolerance,
			OrthogonalTolerance: vector.DefaultOrthogonalTolerance,
			ParallelGuard:       vector.DefaultParallelGuard,
		},
		LogLevel: "warn",
	}
}

/*
LoadFromFile loads the configuration from a JSON file.
Missing fields keep their defaults.
*/
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

/*
LoadFromEnv loads the configuration from the environment variables.

The given .env files are loaded first (".env" when none are given); a missing
file is not an error. Variables already set in the environment win over the
files. Unparsable values keep their defaults.
*/
func LoadFromEnv(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := DefaultConfig()

	if precisionStr := os.Getenv("VECTOR_PRECISION"); precisionStr != "" {
		if precision, err := strconv.ParseInt(precisionStr, 10, 32); err == nil {
			config.Vector.Precision = int32(precision)
		}
	}

	if tolStr := os.Getenv("VECTOR_ZERO_TOLERANCE"); tolStr != "" {
		if tol, err := strconv.ParseFloat(tolStr, 64); err == nil {
			config.Vector.ZeroTolerance = tol
		}
	}

	if tolStr := os.Getenv("VECTOR_ORTHOGONAL_TOLERANCE"); tolStr != "" {
		if tol, err := strconv.ParseFloat(tolStr, 64); err == nil {
			config.Vector.OrthogonalTolerance = tol
		}
	}

	if guardStr := os.Getenv("VECTOR_PARALLEL_GUARD"); guardStr != "" {
		if guard, err := strconv.ParseFloat(guardStr, 64); err == nil {
			config.Vector.ParallelGuard = guard
		}
	}

	if level := os.Getenv("VECTOR_LOG_LEVEL"); level != "" {
		config.LogLevel = level
	}

	return config, nil
}

/*
Validate checks if the configuration is valid
*/
func (c *Config) Validate() error {
	if c.Vector.Precision <= 0 {
		return fmt.Errorf("%w: precision must be positive, got %d", ErrInvalidConfig, c.Vector.Precision)
	}
	if c.Vector.ZeroTolerance < 0 {
		return fmt.Errorf("%w: negative zero tolerance: %g", ErrInvalidConfig, c.Vector.ZeroTolerance)
	}
	if c.Vector.OrthogonalTolerance < 0 {
		return fmt.Errorf("%w: negative orthogonal tolerance: %g", ErrInvalidConfig, c.Vector.OrthogonalTolerance)
	}
	if c.Vector.ParallelGuard < 0 {
		return fmt.Errorf("%w: negative parallel guard: %g", ErrInvalidConfig, c.Vector.ParallelGuard)
	}
	return nil
}

/*
NewLogger creates a logger at the configured level, falling back to warn
*/
func (c *Config) NewLogger() *log.Logger {
	logger := log.New()
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

/*
Space validates the configuration and builds a vector.Space from it.
A nil logger means NewLogger is used.
*/
func (c *Config) Space(logger log.FieldLogger) (*vector.Space, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = c.NewLogger()
	}

	return vector.NewSpace(
		vector.WithPrecision(c.Vector.Precision),
		vector.WithZeroTolerance(c.Vector.ZeroTolerance),
		vector.WithOrthogonalTolerance(c.Vector.OrthogonalTolerance),
		vector.WithParallelGuard(c.Vector.ParallelGuard),
		vector.WithLogger(logger),
	), nil
}
