package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "ENV",
		"CRYPTO_PROVIDER", "LOOKBACK_DAYS", "OUTPUT_PATH",
		"CRYPTO_PACING", "EQUITY_PACING", "HTTP_TIMEOUT", "UPDATE_SCHEDULE",
		"COINCAP_BASE_URL", "COINGECKO_BASE_URL", "YAHOO_BASE_URL",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Expected default env development, got %s", cfg.Env)
	}
	if cfg.Pipeline.CryptoProvider != "coincap" {
		t.Errorf("Expected default provider coincap, got %s", cfg.Pipeline.CryptoProvider)
	}
	if cfg.Pipeline.LookbackDays != 400 {
		t.Errorf("Expected default lookback 400, got %d", cfg.Pipeline.LookbackDays)
	}
	if cfg.Pipeline.OutputPath != "data/treasury_data.json" {
		t.Errorf("Expected default output path, got %s", cfg.Pipeline.OutputPath)
	}
	if cfg.Pipeline.CryptoPacing != time.Second {
		t.Errorf("Expected default crypto pacing 1s, got %v", cfg.Pipeline.CryptoPacing)
	}
	if cfg.Pipeline.EquityPacing != 500*time.Millisecond {
		t.Errorf("Expected default equity pacing 500ms, got %v", cfg.Pipeline.EquityPacing)
	}
	if cfg.Pipeline.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected default HTTP timeout 30s, got %v", cfg.Pipeline.HTTPTimeout)
	}
	if cfg.Pipeline.Schedule != "0 0 6 * * *" {
		t.Errorf("Expected default schedule, got %s", cfg.Pipeline.Schedule)
	}
	if cfg.CoinCap.BaseURL != "https://api.coincap.io/v2" {
		t.Errorf("Unexpected CoinCap base URL: %s", cfg.CoinCap.BaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CRYPTO_PROVIDER", "coingecko")
	t.Setenv("LOOKBACK_DAYS", "90")
	t.Setenv("CRYPTO_PACING", "2s")
	t.Setenv("HTTP_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Expected env production, got %s", cfg.Env)
	}
	if cfg.Pipeline.CryptoProvider != "coingecko" {
		t.Errorf("Expected provider coingecko, got %s", cfg.Pipeline.CryptoProvider)
	}
	if cfg.Pipeline.LookbackDays != 90 {
		t.Errorf("Expected lookback 90, got %d", cfg.Pipeline.LookbackDays)
	}
	if cfg.Pipeline.CryptoPacing != 2*time.Second {
		t.Errorf("Expected crypto pacing 2s, got %v", cfg.Pipeline.CryptoPacing)
	}
	if cfg.Pipeline.HTTPTimeout != 10*time.Second {
		t.Errorf("Expected HTTP timeout 10s, got %v", cfg.Pipeline.HTTPTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid env", "ENV", "testing"},
		{"unknown crypto provider", "CRYPTO_PROVIDER", "kraken"},
		{"lookback too short", "LOOKBACK_DAYS", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT_VALID", "42")
	t.Setenv("TEST_INT_INVALID", "not-a-number")

	if got := getEnvAsInt("TEST_INT_VALID", 7); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
	if got := getEnvAsInt("TEST_INT_INVALID", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
	if got := getEnvAsInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DUR_VALID", "90s")
	t.Setenv("TEST_DUR_INVALID", "soon")

	if got := getEnvAsDuration("TEST_DUR_VALID", "5s"); got != 90*time.Second {
		t.Errorf("Expected 90s, got %v", got)
	}
	if got := getEnvAsDuration("TEST_DUR_INVALID", "5s"); got != 5*time.Second {
		t.Errorf("Expected fallback 5s, got %v", got)
	}
	if got := getEnvAsDuration("TEST_DUR_MISSING", "5s"); got != 5*time.Second {
		t.Errorf("Expected fallback 5s, got %v", got)
	}
}
