// ABOUTME: Configuration loader for the airlift planner service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, TTL for cached allocation results
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow all, dev default)
	ProfilePath        string   // optional YAML file merged over the built-in airframes

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitSolve   int  // Requests per minute for solve/compare endpoints (default: 30)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 120)

	// Manifest import
	MaxImportBytes int64 // upload ceiling for manifest spreadsheets (default: 5 MiB)

	// Planning factors
	PaxWeightLb         float64 // planning weight per passenger with gear (default: 400)
	CandidateStepIn     float64 // longitudinal step between vehicle candidates (default: 24)
	PalletClearanceIn   float64 // gap between pallet rows (default: 4)
	MaxAircraftPerPhase int     // per-phase aircraft ceiling (default: 50)
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		ProfilePath:        os.Getenv("PROFILE_PATH"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitSolve:   getEnvInt("RATE_LIMIT_SOLVE", 30),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 120),

		MaxImportBytes: int64(getEnvInt("MAX_IMPORT_BYTES", 5<<20)),

		PaxWeightLb:         getEnvFloat("PAX_WEIGHT_LB", 400),
		CandidateStepIn:     getEnvFloat("CANDIDATE_STEP_IN", 24),
		PalletClearanceIn:   getEnvFloat("PALLET_CLEARANCE_IN", 4),
		MaxAircraftPerPhase: getEnvInt("MAX_AIRCRAFT_PER_PHASE", 50),
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_SOLVE", cfg.RateLimitSolve},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	if cfg.MaxImportBytes < 1024 {
		return nil, fmt.Errorf("MAX_IMPORT_BYTES must be at least 1024, got %d", cfg.MaxImportBytes)
	}

	// Validate planning factors
	if cfg.PaxWeightLb <= 0 {
		return nil, fmt.Errorf("PAX_WEIGHT_LB must be positive, got %g", cfg.PaxWeightLb)
	}
	if cfg.CandidateStepIn <= 0 {
		return nil, fmt.Errorf("CANDIDATE_STEP_IN must be positive, got %g", cfg.CandidateStepIn)
	}
	if cfg.PalletClearanceIn < 0 {
		return nil, fmt.Errorf("PALLET_CLEARANCE_IN must not be negative, got %g", cfg.PalletClearanceIn)
	}
	if cfg.MaxAircraftPerPhase < 1 || cfg.MaxAircraftPerPhase > 1000 {
		return nil, fmt.Errorf("MAX_AIRCRAFT_PER_PHASE must be between 1 and 1000, got %d", cfg.MaxAircraftPerPhase)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
