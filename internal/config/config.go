package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
)

type Config struct {
	// Local state
	DataDir   string
	OutputDir string

	// SKU master sources
	SKUMasterCSV      string
	SKUMasterEncoding string
	SKUMasterCacheTTL time.Duration

	// Charset preferred for non-unicode PO text (CSV, BIFF5)
	POEncoding string

	// Google Sheets Configuration
	GoogleSheetURL       string
	GoogleSheetWorksheet string

	// Company profile (sender, bank details)
	ProfilePath string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func Load() (*Config, error) {
	dataDir := getEnv("CI_DATA_DIR", "./data")

	config := &Config{
		DataDir:              dataDir,
		OutputDir:            getEnv("CI_OUTPUT_DIR", filepath.Join(dataDir, "generated")),
		SKUMasterCSV:         getEnv("SKU_MASTER_CSV", ""),
		SKUMasterEncoding:    getEnv("SKU_MASTER_ENCODING", ""),
		POEncoding:           getEnv("PO_ENCODING", ""),
		GoogleSheetURL:       getEnv("GOOGLE_SHEET_URL", ""),
		GoogleSheetWorksheet: getEnv("GOOGLE_SHEET_WORKSHEET", "sku_master"),
		ProfilePath:          getEnv("CI_PROFILE", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:        getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:            getEnv("LOG_OUTPUT", "stderr"),
	}

	var err error
	if config.SKUMasterCacheTTL, err = time.ParseDuration(getEnv("SKU_MASTER_CACHE_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("SKU_MASTER_CACHE_TTL: %w", err)
	}
	if config.LogMaxSizeMB, err = getEnvInt("LOG_MAX_SIZE_MB", 10); err != nil {
		return nil, err
	}
	if config.LogMaxBackups, err = getEnvInt("LOG_MAX_BACKUPS", 7); err != nil {
		return nil, err
	}
	if config.LogMaxAgeDays, err = getEnvInt("LOG_MAX_AGE_DAYS", 28); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("CI_DATA_DIR must not be empty")
	}
	if c.SKUMasterCacheTTL < 0 {
		return fmt.Errorf("SKU_MASTER_CACHE_TTL must not be negative")
	}
	if c.GoogleSheetURL != "" && c.GoogleSheetWorksheet == "" {
		return fmt.Errorf("GOOGLE_SHEET_WORKSHEET is required when GOOGLE_SHEET_URL is set")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
