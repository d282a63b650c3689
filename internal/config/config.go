package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lathe-dev/lathe/internal/errors"
)

const (
	// ConfigFileName is the name of the settings file inside the lathe home.
	ConfigFileName = "config.json"

	// HomeDirName is the per-user directory under $HOME holding all lathe state.
	HomeDirName = ".lathe"

	// HomeEnvVar overrides the lathe home directory when set.
	HomeEnvVar = "LATHE_HOME"

	// TemplatesDirName is the default templates directory inside the lathe home.
	TemplatesDirName = "templates"

	// DefaultPackageManager is used when the user has not configured one.
	DefaultPackageManager = "npm"

	// DefaultLogLevel is used when the user has not configured one.
	DefaultLogLevel = "info"
)

// Config represents the complete config.json settings document.
type Config struct {
	// DefaultAuthor is stamped into template manifests created by this user.
	DefaultAuthor string `json:"defaultAuthor,omitempty"`

	// DefaultFramework is preselected when creating projects interactively.
	DefaultFramework string `json:"defaultFramework,omitempty"`

	// DefaultPackageManager is the package manager suggested in output
	// (npm, yarn, or pnpm).
	DefaultPackageManager string `json:"defaultPackageManager,omitempty"`

	// TemplatesDir is the root directory scanned for templates.
	// Empty means <lathe home>/templates.
	TemplatesDir string `json:"templatesDir,omitempty"`

	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty"`

	// Editor is the preferred editor for opening generated projects.
	Editor string `json:"editor,omitempty"`

	// ColorOutput enables ANSI colors in CLI output.
	ColorOutput bool `json:"colorOutput"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		DefaultPackageManager: DefaultPackageManager,
		LogLevel:              DefaultLogLevel,
		ColorOutput:           true,
	}
}

// Home returns the lathe home directory.
// It checks the LATHE_HOME environment variable first,
// then falls back to ~/.lathe.
func Home() (string, error) {
	if v := os.Getenv(HomeEnvVar); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Newf(errors.CategoryConfig, "resolving home directory: %v", err)
	}
	return filepath.Join(home, HomeDirName), nil
}

// DefaultPath returns the path to config.json inside the lathe home.
func DefaultPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// Load reads the settings file from the lathe home directory.
// A missing file is not an error: defaults are saved and returned,
// so a fresh install starts from a baseline on disk.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the settings file from the specified path, creating it
// with defaults when absent.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := New()
			if err := cfg.SaveTo(path); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, errors.New("E060").WithPath(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E060").
			WithPath(path).
			WithDetail("Failed to parse config.json: " + err.Error()).
			WithSuggestion("Check that config.json is valid JSON, or delete it to start fresh")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path, creating parent
// directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("E061").WithPath(filepath.Dir(path)).Wrap(err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E061").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E061").WithPath(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// TemplatesRoot returns the directory scanned for templates.
func (c *Config) TemplatesRoot() (string, error) {
	if c.TemplatesDir != "" {
		return c.TemplatesDir, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, TemplatesDirName), nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.DefaultPackageManager == "" {
		c.DefaultPackageManager = DefaultPackageManager
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Keys lists the settable configuration keys in display order.
func Keys() []string {
	return []string{
		"defaultAuthor",
		"defaultFramework",
		"defaultPackageManager",
		"templatesDir",
		"logLevel",
		"editor",
		"colorOutput",
	}
}

// Get returns the string form of a configuration value by key.
// The second return is false for unknown keys.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case "defaultAuthor":
		return c.DefaultAuthor, true
	case "defaultFramework":
		return c.DefaultFramework, true
	case "defaultPackageManager":
		return c.DefaultPackageManager, true
	case "templatesDir":
		return c.TemplatesDir, true
	case "logLevel":
		return c.LogLevel, true
	case "editor":
		return c.Editor, true
	case "colorOutput":
		return strconv.FormatBool(c.ColorOutput), true
	default:
		return "", false
	}
}

// Set assigns a configuration value by key. Values are validated where the
// key has a closed domain.
func (c *Config) Set(key, value string) error {
	switch key {
	case "defaultAuthor":
		c.DefaultAuthor = value
	case "defaultFramework":
		c.DefaultFramework = value
	case "defaultPackageManager":
		switch value {
		case "npm", "yarn", "pnpm":
			c.DefaultPackageManager = value
		default:
			return errors.New("E004").
				WithDetail("Got " + strconv.Quote(value)).
				WithSuggestion("Use one of: npm, yarn, pnpm")
		}
	case "templatesDir":
		c.TemplatesDir = value
	case "logLevel":
		switch value {
		case "debug", "info", "warn", "error":
			c.LogLevel = value
		default:
			return errors.Newf(errors.CategoryValidation, "invalid log level %q", value).
				WithSuggestion("Use one of: debug, info, warn, error")
		}
	case "editor":
		c.Editor = value
	case "colorOutput":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Newf(errors.CategoryValidation, "invalid boolean %q for colorOutput", value)
		}
		c.ColorOutput = b
	default:
		return errors.Newf(errors.CategoryValidation, "unknown configuration key %q", key).
			WithSuggestion("Known keys: " + strings.Join(Keys(), ", "))
	}
	return nil
}

// Update merges a partial settings document into the config and saves the
// result. Only keys present in patch are touched. The last writer wins when
// updates race.
func (c *Config) Update(patch map[string]any) error {
	for _, key := range Keys() {
		raw, ok := patch[key]
		if !ok {
			continue
		}
		var value string
		switch v := raw.(type) {
		case string:
			value = v
		case bool:
			value = strconv.FormatBool(v)
		default:
			return errors.Newf(errors.CategoryValidation, "unsupported value type for %q", key)
		}
		if err := c.Set(key, value); err != nil {
			return err
		}
	}
	return c.Save()
}

// SlogLevel maps the configured log level to a slog level. Unknown levels
// fall back to info.
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

// Exists checks if a settings file exists at the default path.
func Exists() bool {
	path, err := DefaultPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
