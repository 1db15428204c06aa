// ABOUTME: Tests for configuration loading and validation
// ABOUTME: Covers defaults, overrides, and rejection of out-of-range values

package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(withCleanEnv(t))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("Expected default cache TTL 300, got %d", cfg.CacheTTL)
	}
	if !cfg.RateLimitEnabled {
		t.Error("Expected rate limiting enabled by default")
	}
	if cfg.RateLimitSolve != 30 {
		t.Errorf("Expected default solve rate limit 30, got %d", cfg.RateLimitSolve)
	}
	if cfg.PaxWeightLb != 400 {
		t.Errorf("Expected default pax weight 400, got %g", cfg.PaxWeightLb)
	}
	if cfg.MaxAircraftPerPhase != 50 {
		t.Errorf("Expected default phase ceiling 50, got %d", cfg.MaxAircraftPerPhase)
	}
	if cfg.MaxImportBytes != 5<<20 {
		t.Errorf("Expected default import cap 5 MiB, got %d", cfg.MaxImportBytes)
	}
	if cfg.ProfilePath != "" {
		t.Errorf("Expected empty profile path by default, got %s", cfg.ProfilePath)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
		"PORT":                   "9000",
		"CACHE_TTL":              "60",
		"PAX_WEIGHT_LB":          "385.5",
		"CANDIDATE_STEP_IN":      "12",
		"MAX_AIRCRAFT_PER_PHASE": "10",
		"PROFILE_PATH":           "/etc/airlift/profiles.yaml",
	}))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 60 {
		t.Errorf("Expected cache TTL 60, got %d", cfg.CacheTTL)
	}
	if cfg.PaxWeightLb != 385.5 {
		t.Errorf("Expected pax weight 385.5, got %g", cfg.PaxWeightLb)
	}
	if cfg.CandidateStepIn != 12 {
		t.Errorf("Expected candidate step 12, got %g", cfg.CandidateStepIn)
	}
	if cfg.MaxAircraftPerPhase != 10 {
		t.Errorf("Expected phase ceiling 10, got %d", cfg.MaxAircraftPerPhase)
	}
	if cfg.ProfilePath != "/etc/airlift/profiles.yaml" {
		t.Errorf("Expected profile path override, got %s", cfg.ProfilePath)
	}
}

func TestLoadConfig_CORSOriginList(t *testing.T) {
	t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
		"CORS_ALLOWED_ORIGINS": "https://ops.example.mil, https://staging.example.mil",
	}))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("Expected 2 origins, got %d", len(cfg.CORSAllowedOrigins))
	}
	if cfg.CORSAllowedOrigins[1] != "https://staging.example.mil" {
		t.Errorf("Expected trimmed second origin, got %q", cfg.CORSAllowedOrigins[1])
	}
}

func TestLoadConfig_RateLimitOutOfRange(t *testing.T) {
	t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
		"RATE_LIMIT_SOLVE": "0",
	}))

	_, err := Load()
	if err == nil {
		t.Error("Expected error for zero solve rate limit, got nil")
	}
}

func TestLoadConfig_NegativePaxWeight(t *testing.T) {
	t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
		"PAX_WEIGHT_LB": "-5",
	}))

	_, err := Load()
	if err == nil {
		t.Error("Expected error for negative pax weight, got nil")
	}
}

func TestLoadConfig_TinyImportCap(t *testing.T) {
	t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
		"MAX_IMPORT_BYTES": "100",
	}))

	_, err := Load()
	if err == nil {
		t.Error("Expected error for sub-1KiB import cap, got nil")
	}
}

func TestLoadConfig_MalformedNumberFallsBackToDefault(t *testing.T) {
	t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
		"CACHE_TTL": "not-a-number",
	}))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("Expected fallback cache TTL 300, got %d", cfg.CacheTTL)
	}
}

func TestGetEnvStringList_Empty(t *testing.T) {
	os.Unsetenv("AIRLIFT_TEST_LIST")
	if got := getEnvStringList("AIRLIFT_TEST_LIST"); got != nil {
		t.Errorf("Expected nil for unset list, got %v", got)
	}
}
