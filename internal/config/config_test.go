package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var testLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")
	os.Unsetenv(EnvConfigPath)
	t.Setenv(EnvAmmoTable, "")
	t.Setenv(EnvMetricsFile, "")
	t.Setenv(EnvLogLevel, "")

	cfg := Load(testLogger)

	if want := filepath.Join(home, ".slingshot_config.json"); cfg.ConfigPath != want {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, want)
	}
	if cfg.AmmoTablePath != "" || cfg.MetricsFile != "" {
		t.Errorf("unexpected optional paths: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want WARN", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigPath, filepath.Join(dir, "cfg.json"))
	t.Setenv(EnvAmmoTable, filepath.Join(dir, "ammo.toml"))
	t.Setenv(EnvMetricsFile, filepath.Join(dir, "slingshot.prom"))
	t.Setenv(EnvLogLevel, "debug")

	cfg := Load(testLogger)

	if cfg.ConfigPath != filepath.Join(dir, "cfg.json") {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.AmmoTablePath != filepath.Join(dir, "ammo.toml") {
		t.Errorf("AmmoTablePath = %q", cfg.AmmoTablePath)
	}
	if cfg.MetricsFile != filepath.Join(dir, "slingshot.prom") {
		t.Errorf("MetricsFile = %q", cfg.MetricsFile)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
}

func TestLoadEmptyConfigPathUsesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")

	cfg := Load(testLogger)
	if want := filepath.Join(home, ".slingshot_config.json"); cfg.ConfigPath != want {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, want)
	}
}

func TestLogLevelInvalid(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	if got := LogLevel(testLogger); got != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want WARN fallback", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/cfg.json", filepath.Join(home, "cfg.json")},
		{"~/a/b.json", filepath.Join(home, "a", "b.json")},
		{"/etc/slingshot.json", "/etc/slingshot.json"},
		{"relative.json", "relative.json"},
		{"~other/cfg.json", "~other/cfg.json"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SLINGSHOT_TEST_VALUE", "set")
	if got := GetEnv("SLINGSHOT_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("SLINGSHOT_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SLINGSHOT_DOTENV_VALUE=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	os.Unsetenv("SLINGSHOT_DOTENV_VALUE")
	t.Cleanup(func() { os.Unsetenv("SLINGSHOT_DOTENV_VALUE") })

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if got := os.Getenv("SLINGSHOT_DOTENV_VALUE"); got != "from-file" {
		t.Errorf("SLINGSHOT_DOTENV_VALUE = %q, want from-file", got)
	}
}

func TestAmmoTableBuiltin(t *testing.T) {
	tbl := Config{}.AmmoTable(testLogger)
	if tbl.Default().Name != "8mm钢珠" {
		t.Errorf("default = %q, want built-in", tbl.Default().Name)
	}
}

func TestAmmoTableCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ammo.toml")
	data := "default = \"lead\"\n\n[[ammo]]\nname = \"lead\"\nmass_g = 5.0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	tbl := Config{AmmoTablePath: path}.AmmoTable(testLogger)
	if tbl.Len() != 1 || tbl.Default().Name != "lead" {
		t.Errorf("got %d profiles, default %q; want custom table", tbl.Len(), tbl.Default().Name)
	}
}

func TestAmmoTableInvalidFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ammo.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl := Config{AmmoTablePath: path}.AmmoTable(testLogger)
	if tbl.Default().Name != "8mm钢珠" {
		t.Errorf("default = %q, want built-in fallback", tbl.Default().Name)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	err := LoadDotEnv()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLogDotEnvLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"loaded", nil, "DEBUG"},
		{"missing", fmt.Errorf("open .env: %w", fs.ErrNotExist), "DEBUG"},
		{"malformed", errors.New("unexpected character in variable name"), "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			LogDotEnv(logger, tt.err)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log output is not one JSON record: %q", buf.String())
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if tt.wantLevel == "WARN" && entry["error"] == nil {
				t.Errorf("warning has no error attribute: %v", entry)
			}
		})
	}
}
