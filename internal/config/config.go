// Package config provides configuration management for sglink.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/xvierd/sglink/internal/domain"
)

// Config holds all configuration for the sglink application.
type Config struct {
	Git           GitConfig          `mapstructure:"git"`
	Sourcegraph   SourcegraphConfig  `mapstructure:"sourcegraph"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Status        StatusConfig       `mapstructure:"status"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// GitConfig holds git invocation settings.
type GitConfig struct {
	// Path overrides git executable discovery when non-empty.
	Path string `mapstructure:"path"`
}

// SourcegraphConfig holds code-search service settings.
type SourcegraphConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StatusConfig holds status message settings.
type StatusConfig struct {
	Duration Duration `mapstructure:"duration" validate:"min=0"`
}

// LoggingConfig holds developer log settings.
type LoggingConfig struct {
	Level   string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Path: "",
		},
		Sourcegraph: SourcegraphConfig{
			URL: domain.DefaultBaseURL,
		},
		Notifications: NotificationConfig{
			Enabled: false,
		},
		Status: StatusConfig{
			Duration: Duration(2500 * time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:   "warn",
			File:    "",
			Console: true,
		},
	}
}

// Keys lists the settable configuration keys.
var Keys = []string{
	"git.path",
	"sourcegraph.url",
	"notifications.enabled",
	"status.duration",
	"logging.level",
	"logging.file",
	"logging.console",
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating it with defaults
// if it does not exist.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Sourcegraph.URL = strings.TrimRight(cfg.Sourcegraph.URL, "/")
	if cfg.Sourcegraph.URL == "" {
		cfg.Sourcegraph.URL = domain.DefaultBaseURL
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints such as the base URL being absolute.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	v.Set("git.path", cfg.Git.Path)
	v.Set("sourcegraph.url", cfg.Sourcegraph.URL)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("status.duration", cfg.Status.Duration.String())
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.console", cfg.Logging.Console)

	return v.WriteConfigAs(configPath)
}

// Set updates a single key in the config file.
func Set(configPath, key, value string) error {
	if !lo.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		return err
	}

	switch key {
	case "git.path":
		cfg.Git.Path = value
	case "sourcegraph.url":
		cfg.Sourcegraph.URL = strings.TrimRight(value, "/")
	case "notifications.enabled":
		cfg.Notifications.Enabled, err = parseBool(value)
	case "status.duration":
		err = cfg.Status.Duration.UnmarshalText([]byte(value))
	case "logging.level":
		cfg.Logging.Level = value
	case "logging.file":
		cfg.Logging.File = value
	case "logging.console":
		cfg.Logging.Console, err = parseBool(value)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	return SaveTo(configPath, cfg)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sglink", "config.toml"), nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("git.path", defaults.Git.Path)
	v.SetDefault("sourcegraph.url", defaults.Sourcegraph.URL)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("status.duration", defaults.Status.Duration.String())
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.console", defaults.Logging.Console)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
