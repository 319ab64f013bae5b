// Package config resolves runtime settings from command-line flags and
// WINGET_INSTALLER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"winget-installer/internal/logger"
	"winget-installer/internal/packagemanager"
	"winget-installer/internal/watcher"
)

const EnvPrefix = "WINGET_INSTALLER"

const (
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"
	KeyDataDir      = "data-dir"
	KeyPollInterval = "poll-interval"
	KeyManager      = "manager"
)

// MinPollInterval keeps the system theme watcher from spinning
const MinPollInterval = 100 * time.Millisecond

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel     string
	LogFormat    string
	DataDir      string
	PollInterval time.Duration
	Manager      string
}

// Defaults returns the settings used when neither a flag nor an environment
// variable overrides them. An empty DataDir means the platform default.
func Defaults() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    string(logger.FormatConsole),
		PollInterval: watcher.DefaultInterval,
		Manager:      string(packagemanager.Winget),
	}
}

// NewViper returns a viper instance with defaults and environment lookup configured
func NewViper() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyDataDir, d.DataDir)
	v.SetDefault(KeyPollInterval, d.PollInterval)
	v.SetDefault(KeyManager, d.Manager)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags adds the configuration flags to cmd and binds them to v
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) error {
	d := Defaults()
	flags := cmd.Flags()
	flags.String(KeyLogLevel, d.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.String(KeyLogFormat, d.LogFormat, "log output format (console, json)")
	flags.String(KeyDataDir, d.DataDir, "directory holding settings.json (default: platform data directory)")
	flags.Duration(KeyPollInterval, d.PollInterval, "how often the system theme is polled while following it")
	flags.String(KeyManager, d.Manager, "initial package manager (winget, chocolatey)")

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// Load reads and validates the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:     strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogFormat:    strings.TrimSpace(v.GetString(KeyLogFormat)),
		DataDir:      strings.TrimSpace(v.GetString(KeyDataDir)),
		PollInterval: v.GetDuration(KeyPollInterval),
		Manager:      strings.TrimSpace(v.GetString(KeyManager)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.PollInterval < MinPollInterval {
		return fmt.Errorf("%w: poll interval %s is below %s", ErrInvalidConfig, c.PollInterval, MinPollInterval)
	}
	if _, err := packagemanager.ParseManager(c.Manager); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Logger builds the zerolog-backed logger described by the configuration
func (c Config) Logger() (logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(format, level), nil
}

// PackageManager returns the configured initial package manager
func (c Config) PackageManager() packagemanager.Manager {
	m, err := packagemanager.ParseManager(c.Manager)
	if err != nil {
		return packagemanager.Winget
	}
	return m
}
