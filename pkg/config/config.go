package config

import (
	"errors"
	"os"
	"strconv"

	"sudoku-solver/pkg/constants"
)

type Config struct {
	JWTSecret         string
	Port              string
	PuzzlesFile       string
	SolveLimitDefault uint32
}

// Load loads configuration from environment variables.
// Returns an error if JWT_SECRET is not set or equals "changeme".
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")

	if jwtSecret == "" {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET environment variable is required but not set")
	}

	if jwtSecret == "changeme" {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET cannot be 'changeme' - please set a secure secret")
	}

	if len(jwtSecret) < 32 {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET must be at least 32 characters long")
	}

	return &Config{
		JWTSecret:         jwtSecret,
		Port:              getEnv("PORT", "8080"),
		PuzzlesFile:       getEnv("PUZZLES_FILE", "/data/puzzles.json"),
		SolveLimitDefault: getEnvUint32("SOLVE_LIMIT_DEFAULT", constants.DefaultSolveLimit),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvUint32 reads key as an unsigned integer, falling back to fallback
// if the variable is unset or not a valid uint32.
func getEnvUint32(key string, fallback uint32) uint32 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(n)
}
