// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadWithOptions() returned error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if !cfg.UI.Color {
		t.Error("UI.Color = false, want default true")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MANAGE_LOG_LEVEL", "debug")

	cfg, err := LoadWithOptions(LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadWithOptions() returned error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env override %q", cfg.LogLevel, "debug")
	}
}

func TestLoadCUEFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.cue")
	content := `
log_level:  "warn"
log_format: "json"
ui: color: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithOptions(LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("LoadWithOptions() returned error: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.UI.Color {
		t.Error("UI.Color = true, want false from file")
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, ConfigFileName), []byte(`log_level: "error"`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithOptions(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithOptions() returned error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
}

func TestSchemaViolationRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(`log_level: "loud"`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadWithOptions(LoadOptions{ConfigFilePath: path})
	if err == nil {
		t.Fatal("LoadWithOptions() accepted a config violating the schema")
	}
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	_, err := LoadWithOptions(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "missing.cue")})
	if err == nil {
		t.Fatal("LoadWithOptions() did not fail for a missing explicit config file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q, want a not-found diagnostic", err)
	}
}

func TestConfigFilePathOverride(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(`log_level: "debug"`), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigFilePathOverride(path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q from override file", cfg.LogLevel, "debug")
	}
}
