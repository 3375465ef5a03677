package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the configuration for the application.
type Config struct {
	// DatabasePath is the SQLite file holding the product catalog,
	// stored proposals and solve metrics.
	DatabasePath string

	// SolverVerbose makes the solver log model sizes before each run.
	SolverVerbose bool
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	dbPath := os.Getenv("GROCERY_DB_PATH")
	if dbPath == "" {
		dbPath = "data/grocery.db"
	}

	solverVerbose := false
	if v := os.Getenv("SOLVER_VERBOSE"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SOLVER_VERBOSE must be a boolean, got %q", v)
		}
		solverVerbose = parsed
	}

	return &Config{
		DatabasePath:  dbPath,
		SolverVerbose: solverVerbose,
	}, nil
}
