// Package config holds run settings for the arena command.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Seed         uint64
	DexPath      string // empty means the embedded dex
	ScenarioPath string
	ReportPath   string // empty disables the PDF report
	Runs         int
	Verbose      bool
}

func Default() Config {
	return Config{
		Seed:         1,
		ScenarioPath: "scenarios/demo.yaml",
		Runs:         1,
	}
}

// FromEnv loads configuration from ARENA_* environment variables.
// Unset or malformed values keep their defaults.
func FromEnv() Config {
	cfg := Default()

	if val, ok := getEnvUint("ARENA_SEED"); ok {
		cfg.Seed = val
	}
	if val := os.Getenv("ARENA_DEX"); val != "" {
		cfg.DexPath = val
	}
	if val := os.Getenv("ARENA_SCENARIO"); val != "" {
		cfg.ScenarioPath = val
	}
	if val := os.Getenv("ARENA_REPORT"); val != "" {
		cfg.ReportPath = val
	}
	if val := getEnvInt("ARENA_RUNS"); val > 0 {
		cfg.Runs = val
	}
	if val, err := strconv.ParseBool(os.Getenv("ARENA_VERBOSE")); err == nil {
		cfg.Verbose = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvUint(key string) (uint64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
