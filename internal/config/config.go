// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"github.com/netme/manage/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "manage"
	// ConfigFileName is the config file name within the config directory.
	ConfigFileName = "config.cue"
	// envPrefix is the prefix for environment variable overrides.
	envPrefix = "MANAGE"
)

//go:embed config_schema.cue
var configSchema string

type (
	// Config holds the runner's process-wide settings.
	Config struct {
		// LogLevel is the diagnostics threshold: debug, info, warn or
		// error.
		LogLevel string `mapstructure:"log_level"`
		// LogFormat selects the log renderer: text, json or logfmt.
		LogFormat string `mapstructure:"log_format"`
		// UI holds terminal output settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		// Color toggles styled output.
		Color bool `mapstructure:"color"`
	}

	// LoadOptions drives option-based loading, used by tests to point at
	// fixture files and directories.
	LoadOptions struct {
		// ConfigFilePath loads this exact file, failing if it is absent.
		ConfigFilePath string
		// ConfigDirPath overrides the platform config directory.
		ConfigDirPath string
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		UI:        UIConfig{Color: true},
	}
}

// Load reads the configuration honoring the package-level overrides set
// via SetConfigFilePathOverride.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{ConfigFilePath: configFilePathOverride})
}

// LoadWithOptions reads the configuration with explicit options.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("ui.color", defaults.UI.Color)

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the config schema").
				Wrap(err).
				BuildError()
		}
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(cfgDir, AppName, ConfigFileName)
		if fileExists(path) {
			if err := loadCUEIntoViper(v, path); err != nil {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(path).
					WithSuggestion("Check that the file contains valid CUE syntax").
					Wrap(err).
					BuildError()
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode configuration")
	}

	return &cfg, nil
}

// ConfigDir returns the base configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on
// macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func ConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir := os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return dir, nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	}
}

func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into viper. The decode target is a map
// rather than a struct so viper can still layer env overrides on top.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return fmt.Errorf("invalid CUE in %s: %w", path, userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("config %s does not match schema: %w", path, err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
