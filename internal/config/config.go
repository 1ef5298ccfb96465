// Package config loads settings shared by the slingshot command-line tools.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvConfigPath  = "SLINGSHOT_CONFIG"
	EnvAmmoTable   = "SLINGSHOT_AMMO_TABLE"
	EnvMetricsFile = "SLINGSHOT_METRICS_FILE"
	EnvLogLevel    = "SLINGSHOT_LOG_LEVEL"
)

// DefaultConfigPath is used when SLINGSHOT_CONFIG is unset.
const DefaultConfigPath = "~/.slingshot_config.json"

// Config holds process-wide settings.
type Config struct {
	ConfigPath    string // resolved, no leading ~
	AmmoTablePath string // optional TOML ammo table
	MetricsFile   string // optional Prometheus textfile
	LogLevel      slog.Level
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadDotEnv reads .env from the working directory into the environment.
// Variables already set take precedence. Pass the error to LogDotEnv.
func LoadDotEnv() error {
	return godotenv.Load()
}

// LogDotEnv reports the result of LoadDotEnv. A missing file is normal
// and logged at debug level.
func LogDotEnv(logger *slog.Logger, err error) {
	switch {
	case err == nil:
		logger.Debug("loaded .env file")
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no .env file found, using environment variables")
	default:
		logger.Warn("failed to load .env file", "error", err)
	}
}

// Load reads Config from the environment. Invalid values are logged and
// replaced by defaults.
func Load(logger *slog.Logger) Config {
	cfg := Config{
		AmmoTablePath: os.Getenv(EnvAmmoTable),
		MetricsFile:   os.Getenv(EnvMetricsFile),
		LogLevel:      LogLevel(logger),
	}

	raw := GetEnv(EnvConfigPath, DefaultConfigPath)
	if raw == "" {
		raw = DefaultConfigPath
	}
	path, err := ExpandHome(raw)
	if err != nil {
		logger.Warn("cannot resolve home directory, using path as given", "value", raw, "error", err)
		path = raw
	}
	cfg.ConfigPath = path

	logger.Debug("config loaded",
		"config_path", cfg.ConfigPath,
		"ammo_table", cfg.AmmoTablePath,
		"metrics_file", cfg.MetricsFile,
		"log_level", cfg.LogLevel.String(),
	)

	return cfg
}

// LogLevel parses SLINGSHOT_LOG_LEVEL, defaulting to warn.
func LogLevel(logger *slog.Logger) slog.Level {
	level := slog.LevelWarn
	v := os.Getenv(EnvLogLevel)
	if v == "" {
		return level
	}
	if err := level.UnmarshalText([]byte(v)); err != nil {
		if logger != nil {
			logger.Warn("invalid "+EnvLogLevel+" value, using default", "value", v, "default", "warn")
		}
		return slog.LevelWarn
	}
	return level
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// NewLogger returns a JSON logger on stderr at the configured level.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: LogLevel(nil),
	}))
}
