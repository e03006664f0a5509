package common

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okonta/docsegmenter/internal/segmentation"
)

// Config holds all application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Segmentation SegmentationConfig `yaml:"segmentation"`
	LogLevel     string             `yaml:"log_level"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds sqlite storage configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SegmentationConfig holds core segmentation thresholds
type SegmentationConfig struct {
	MergeMinConfidence float64 `yaml:"merge_min_confidence"`
	MergeLowConfidence bool    `yaml:"merge_low_confidence"`
}

// LoadConfig loads configuration from environment variables. When path is
// non-empty, the YAML file at that path is applied first and env vars
// override it.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "docsegmenter.db",
		},
		Segmentation: SegmentationConfig{
			MergeMinConfidence: segmentation.DefaultMergeMinConfidence,
			MergeLowConfidence: true,
		},
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Server.Addr = getEnv("SEG_HTTP_ADDR", cfg.Server.Addr)
	cfg.Server.ShutdownTimeout = getEnvAsDuration("SEG_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.Database.Path = getEnv("SEG_DB_PATH", cfg.Database.Path)
	cfg.Segmentation.MergeMinConfidence = getEnvAsFloat("SEG_MERGE_MIN_CONFIDENCE", cfg.Segmentation.MergeMinConfidence)
	cfg.Segmentation.MergeLowConfidence = getEnvAsBool("SEG_MERGE_LOW_CONFIDENCE", cfg.Segmentation.MergeLowConfidence)
	cfg.LogLevel = getEnv("SEG_LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "server addr is required", ErrInvalidInput)
	}
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "database path is required", ErrInvalidInput)
	}
	if c.Segmentation.MergeMinConfidence <= 0 || c.Segmentation.MergeMinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "merge_min_confidence must be in (0, 1]", ErrInvalidInput)
	}
	return nil
}

// SlogLevel maps the configured level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
