// Package config loads CLI settings from a config file, BOXLAYOUT_*
// environment variables and defaults, in that order of precedence below
// flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-boxlayout/internal/debug"
)

// EnvPrefix is prepended to every environment override, so layout.width is
// read from BOXLAYOUT_LAYOUT_WIDTH.
const EnvPrefix = "BOXLAYOUT"

// Config holds all CLI settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// LayoutConfig sets the available space offered to the root. A zero width
// or height means max-content on that axis.
type LayoutConfig struct {
	Rounding bool    `mapstructure:"rounding" yaml:"rounding"`
	Width    float64 `mapstructure:"width" yaml:"width"`
	Height   float64 `mapstructure:"height" yaml:"height"`
}

// RenderConfig controls PNG output.
type RenderConfig struct {
	Scale      float64 `mapstructure:"scale" yaml:"scale"`
	Background string  `mapstructure:"background" yaml:"background"`
	Labels     bool    `mapstructure:"labels" yaml:"labels"`
}

// Debug converts the log settings for the debug package.
func (c LogConfig) Debug() debug.Config {
	return debug.Config{
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}
}

// SetDefaults registers the default for every key. Keys without a default
// are invisible to environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("layout.rounding", true)
	v.SetDefault("layout.width", 800)
	v.SetDefault("layout.height", 600)

	v.SetDefault("render.scale", 1.0)
	v.SetDefault("render.background", "#ffffff")
	v.SetDefault("render.labels", true)
}

// Load reads configuration into v. With path empty it looks for
// boxlayout.yaml in the working directory and carries on without one.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("boxlayout")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every default applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	var errs []error
	if c.Layout.Width < 0 {
		errs = append(errs, fmt.Errorf("layout.width must not be negative, got %g", c.Layout.Width))
	}
	if c.Layout.Height < 0 {
		errs = append(errs, fmt.Errorf("layout.height must not be negative, got %g", c.Layout.Height))
	}
	if c.Render.Scale <= 0 {
		errs = append(errs, fmt.Errorf("render.scale must be positive, got %g", c.Render.Scale))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
