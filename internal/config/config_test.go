package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lathe-dev/lathe/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.DefaultPackageManager != DefaultPackageManager {
		t.Errorf("DefaultPackageManager = %q, want %q", cfg.DefaultPackageManager, DefaultPackageManager)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if !cfg.ColorOutput {
		t.Error("ColorOutput should default to true")
	}
}

func TestHome_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnvVar, tmpDir)

	home, err := Home()
	if err != nil {
		t.Fatalf("Home error: %v", err)
	}
	if home != tmpDir {
		t.Errorf("Home = %q, want %q", home, tmpDir)
	}
}

func TestLoadFile_CreatesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.DefaultPackageManager != "npm" {
		t.Errorf("DefaultPackageManager = %q, want %q", cfg.DefaultPackageManager, "npm")
	}

	// A baseline file should have been written.
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `"colorOutput": true`) {
		t.Errorf("saved defaults missing colorOutput: %s", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved config should end with a newline")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	configJSON := `{
  "defaultAuthor": "Ada Lovelace",
  "defaultFramework": "vue",
  "templatesDir": "/srv/templates",
  "logLevel": "debug",
  "colorOutput": false
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if cfg.DefaultAuthor != "Ada Lovelace" {
		t.Errorf("DefaultAuthor = %q, want %q", cfg.DefaultAuthor, "Ada Lovelace")
	}
	if cfg.DefaultFramework != "vue" {
		t.Errorf("DefaultFramework = %q, want %q", cfg.DefaultFramework, "vue")
	}
	if cfg.TemplatesDir != "/srv/templates" {
		t.Errorf("TemplatesDir = %q, want %q", cfg.TemplatesDir, "/srv/templates")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ColorOutput {
		t.Error("ColorOutput should be false when explicitly disabled")
	}
	// Defaults fill unset fields.
	if cfg.DefaultPackageManager != "npm" {
		t.Errorf("DefaultPackageManager = %q, want %q", cfg.DefaultPackageManager, "npm")
	}
	if cfg.Path() != configPath {
		t.Errorf("Path = %q, want %q", cfg.Path(), configPath)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.IsCategory(err, errors.CategoryConfig) {
		t.Errorf("error category = %q, want config", errors.CategoryOf(err))
	}
}

func TestSaveTo_CreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "dir", ConfigFileName)

	cfg := New()
	cfg.DefaultAuthor = "Grace Hopper"
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.DefaultAuthor != "Grace Hopper" {
		t.Errorf("DefaultAuthor = %q, want %q", loaded.DefaultAuthor, "Grace Hopper")
	}
}

func TestTemplatesRoot(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnvVar, tmpDir)

	cfg := New()
	root, err := cfg.TemplatesRoot()
	if err != nil {
		t.Fatalf("TemplatesRoot error: %v", err)
	}
	if root != filepath.Join(tmpDir, TemplatesDirName) {
		t.Errorf("TemplatesRoot = %q, want %q", root, filepath.Join(tmpDir, TemplatesDirName))
	}

	cfg.TemplatesDir = "/srv/templates"
	root, err = cfg.TemplatesRoot()
	if err != nil {
		t.Fatalf("TemplatesRoot error: %v", err)
	}
	if root != "/srv/templates" {
		t.Errorf("TemplatesRoot = %q, want %q", root, "/srv/templates")
	}
}

func TestGetSet(t *testing.T) {
	cfg := New()

	tests := []struct {
		key   string
		value string
	}{
		{"defaultAuthor", "Ada"},
		{"defaultFramework", "react"},
		{"defaultPackageManager", "pnpm"},
		{"templatesDir", "/tmp/templates"},
		{"logLevel", "warn"},
		{"editor", "vim"},
		{"colorOutput", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := cfg.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%q, %q) error: %v", tt.key, tt.value, err)
			}
			got, ok := cfg.Get(tt.key)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.key)
			}
			if got != tt.value {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.value)
			}
		})
	}
}

func TestSet_Invalid(t *testing.T) {
	cfg := New()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "nope", "x"},
		{"bad package manager", "defaultPackageManager", "cargo"},
		{"bad log level", "logLevel", "loud"},
		{"bad bool", "colorOutput", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.Set(tt.key, tt.value)
			if err == nil {
				t.Fatalf("Set(%q, %q) should fail", tt.key, tt.value)
			}
			if !errors.IsValidation(err) {
				t.Errorf("error category = %q, want validation", errors.CategoryOf(err))
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	patch := map[string]any{
		"defaultAuthor": "Ada",
		"colorOutput":   false,
	}
	if err := cfg.Update(patch); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	// Untouched keys keep their values.
	if cfg.DefaultPackageManager != "npm" {
		t.Errorf("DefaultPackageManager = %q, want %q", cfg.DefaultPackageManager, "npm")
	}

	// The update is persisted synchronously.
	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.DefaultAuthor != "Ada" {
		t.Errorf("DefaultAuthor = %q, want %q", loaded.DefaultAuthor, "Ada")
	}
	if loaded.ColorOutput {
		t.Error("ColorOutput should be false after update")
	}
}

func TestUpdate_UnknownKeyIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if err := cfg.Update(map[string]any{"mystery": "value"}); err != nil {
		t.Fatalf("Update with unknown key should be ignored, got: %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := New()
	cfg.LogLevel = "debug"
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want %v", cfg.SlogLevel(), slog.LevelDebug)
	}

	cfg.LogLevel = "shouting"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel = %v, want fallback %v", cfg.SlogLevel(), slog.LevelInfo)
	}
}
