// Package config loads themekit configuration from files and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/tokens"
)

// EnvPrefix prefixes every environment override, e.g. THEMEKIT_TOKENS_PRESET.
const EnvPrefix = "THEMEKIT"

// Config is the full themekit configuration.
type Config struct {
	Tokens     TokensConfig     `mapstructure:"tokens"`
	Appearance AppearanceConfig `mapstructure:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

// TokensConfig selects the design token set.
type TokensConfig struct {
	// Preset names a built-in or discovered token set.
	Preset string `mapstructure:"preset"`
	// File loads tokens from an explicit path and wins over Preset.
	File string `mapstructure:"file"`
	// ProjectDir is searched for .themekit/tokens before user and system paths.
	ProjectDir string `mapstructure:"project_dir"`
}

// AppearanceConfig controls how the initial light/dark mode is chosen.
type AppearanceConfig struct {
	// Mode is light, dark, auto, or empty for the environment signal.
	Mode string `mapstructure:"mode"`
	// WatchFile is an optional signal file followed by `themekit watch`.
	WatchFile string `mapstructure:"watch_file"`
}

// LoggingConfig mirrors logging.Config in file form.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CacheConfig sizes the style memo cache.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Tokens: TokensConfig{
			Preset: tokens.DefaultPresetName,
		},
		Appearance: AppearanceConfig{
			Mode: "auto",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Cache: CacheConfig{
			Size: styles.DefaultCacheSize,
		},
	}
}

// DefaultPath is the user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "themekit", "config.yaml")
}

// Load reads configuration from path, or from the default location when
// path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tokens.preset", cfg.Tokens.Preset)
	v.SetDefault("tokens.file", cfg.Tokens.File)
	v.SetDefault("tokens.project_dir", cfg.Tokens.ProjectDir)
	v.SetDefault("appearance.mode", cfg.Appearance.Mode)
	v.SetDefault("appearance.watch_file", cfg.Appearance.WatchFile)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("cache.size", cfg.Cache.Size)
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Appearance.Mode) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("appearance.mode must be light, dark or auto, got %q", c.Appearance.Mode)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	return nil
}
