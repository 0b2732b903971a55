// Package config loads application configuration from environment
// variables and bridges it to the domain configuration.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	domainconfig "flowedit/domain/config"
	pkgerrors "flowedit/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// Runtime environment
	Environment string `validate:"required,oneof=development staging production"`

	// Logging
	LogLevel string `validate:"required,oneof=debug info warn error"`

	// History constraints
	MaxHistorySize int `validate:"min=1"`

	// Merge windows in milliseconds
	MoveMergeWindowMs   int `validate:"min=0"`
	ResizeMergeWindowMs int `validate:"min=0"`
	TextMergeWindowMs   int `validate:"min=0"`
	StyleMergeWindowMs  int `validate:"min=0"`

	// Document constraints
	MaxNodesPerDocument int `validate:"min=1"`
	MaxEdgesPerDocument int `validate:"min=1"`

	// Z-order settings
	NormalizeDebounceMs int `validate:"min=0"`

	// Clipboard settings
	PasteOffsetX float64
	PasteOffsetY float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	defaults := domainconfig.DefaultDomainConfig()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		MaxHistorySize: getEnvInt("MAX_HISTORY_SIZE", defaults.MaxHistorySize),

		MoveMergeWindowMs:   getEnvInt("MOVE_MERGE_WINDOW_MS", int(defaults.MoveMergeWindow/time.Millisecond)),
		ResizeMergeWindowMs: getEnvInt("RESIZE_MERGE_WINDOW_MS", int(defaults.ResizeMergeWindow/time.Millisecond)),
		TextMergeWindowMs:   getEnvInt("TEXT_MERGE_WINDOW_MS", int(defaults.TextMergeWindow/time.Millisecond)),
		StyleMergeWindowMs:  getEnvInt("STYLE_MERGE_WINDOW_MS", int(defaults.StyleMergeWindow/time.Millisecond)),

		MaxNodesPerDocument: getEnvInt("MAX_NODES_PER_DOCUMENT", defaults.MaxNodesPerDocument),
		MaxEdgesPerDocument: getEnvInt("MAX_EDGES_PER_DOCUMENT", defaults.MaxEdgesPerDocument),

		NormalizeDebounceMs: getEnvInt("NORMALIZE_DEBOUNCE_MS", int(defaults.NormalizeDebounce/time.Millisecond)),

		PasteOffsetX: getEnvFloat("PASTE_OFFSET_X", defaults.PasteOffsetX),
		PasteOffsetY: getEnvFloat("PASTE_OFFSET_Y", defaults.PasteOffsetY),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return pkgerrors.Wrap(err, "invalid configuration")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// DomainConfig converts the loaded settings into the domain
// configuration consumed by commands and services
func (c *Config) DomainConfig() *domainconfig.DomainConfig {
	return &domainconfig.DomainConfig{
		MaxHistorySize: c.MaxHistorySize,

		MoveMergeWindow:   time.Duration(c.MoveMergeWindowMs) * time.Millisecond,
		ResizeMergeWindow: time.Duration(c.ResizeMergeWindowMs) * time.Millisecond,
		TextMergeWindow:   time.Duration(c.TextMergeWindowMs) * time.Millisecond,
		StyleMergeWindow:  time.Duration(c.StyleMergeWindowMs) * time.Millisecond,

		MaxNodesPerDocument: c.MaxNodesPerDocument,
		MaxEdgesPerDocument: c.MaxEdgesPerDocument,

		NormalizeDebounce: time.Duration(c.NormalizeDebounceMs) * time.Millisecond,

		PasteOffsetX: c.PasteOffsetX,
		PasteOffsetY: c.PasteOffsetY,
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
