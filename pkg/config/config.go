package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// SSOT: every environment variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Pipeline
	Pipeline PipelineConfig

	// External APIs
	CoinCap   CoinCapConfig
	CoinGecko CoinGeckoConfig
	Yahoo     YahooConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// PipelineConfig holds the data pipeline configuration
type PipelineConfig struct {
	// CryptoProvider selects the asset source variant: "coincap" or "coingecko"
	CryptoProvider string

	// LookbackDays is the historical window fetched per asset
	LookbackDays int

	// OutputPath is where the aggregate snapshot JSON is written
	OutputPath string

	// Pacing delays between consecutive upstream calls, per source type
	CryptoPacing time.Duration
	EquityPacing time.Duration

	// HTTPTimeout applies to every upstream request
	HTTPTimeout time.Duration

	// Schedule is the cron expression (with seconds) for recurring runs
	Schedule string
}

// CoinCapConfig holds CoinCap API configuration
type CoinCapConfig struct {
	BaseURL string
}

// CoinGeckoConfig holds CoinGecko API configuration
type CoinGeckoConfig struct {
	BaseURL string
}

// YahooConfig holds Yahoo Finance chart API configuration
type YahooConfig struct {
	BaseURL string
}

// Load reads configuration from environment variables
// SSOT: only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Pipeline: PipelineConfig{
			CryptoProvider: getEnv("CRYPTO_PROVIDER", "coincap"),
			LookbackDays:   getEnvAsInt("LOOKBACK_DAYS", 400),
			OutputPath:     getEnv("OUTPUT_PATH", "data/treasury_data.json"),
			CryptoPacing:   getEnvAsDuration("CRYPTO_PACING", "1s"),
			EquityPacing:   getEnvAsDuration("EQUITY_PACING", "500ms"),
			HTTPTimeout:    getEnvAsDuration("HTTP_TIMEOUT", "30s"),
			Schedule:       getEnv("UPDATE_SCHEDULE", "0 0 6 * * *"),
		},

		// External APIs
		CoinCap: CoinCapConfig{
			BaseURL: getEnv("COINCAP_BASE_URL", "https://api.coincap.io/v2"),
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL: getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		},
		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if p := c.Pipeline.CryptoProvider; p != "coincap" && p != "coingecko" {
		return fmt.Errorf("CRYPTO_PROVIDER must be one of: coincap, coingecko")
	}

	if c.Pipeline.LookbackDays < 2 {
		return fmt.Errorf("LOOKBACK_DAYS must be at least 2")
	}

	if c.Pipeline.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
