// Package config provides Viper-based configuration loading for the
// simulation runner.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// WorldConfig holds the world dimensions and layout knobs.
type WorldConfig struct {
	// Width and Height are the outer world dimensions in world units.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	// UIBand is the strip reserved at the bottom for the message feed and
	// hotbar, excluded from play space.
	UIBand float64 `mapstructure:"ui_band"`
	// ObstaclesPerZone controls how cluttered each zone is; zero leaves
	// zones open.
	ObstaclesPerZone int `mapstructure:"obstacles_per_zone"`
}

// SimConfig holds frame loop and session settings.
type SimConfig struct {
	// TickRate is the number of simulation ticks per second.
	TickRate int `mapstructure:"tick_rate"`
	// StartingGold seeds the player's purse.
	StartingGold int `mapstructure:"starting_gold"`
}

// ContentConfig locates the generated descriptor files.
type ContentConfig struct {
	// Dir is the directory holding the JSON content descriptors.
	Dir string `mapstructure:"dir"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	World   WorldConfig   `mapstructure:"world"`
	Sim     SimConfig     `mapstructure:"sim"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateWorld(c.World); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSim(c.Sim); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Content.Dir == "" {
		errs = append(errs, "content.dir must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateWorld(w WorldConfig) error {
	var errs []string
	if w.Width <= 0 {
		errs = append(errs, fmt.Sprintf("world.width must be > 0, got %g", w.Width))
	}
	if w.Height <= 0 {
		errs = append(errs, fmt.Sprintf("world.height must be > 0, got %g", w.Height))
	}
	if w.UIBand < 0 {
		errs = append(errs, fmt.Sprintf("world.ui_band must be >= 0, got %g", w.UIBand))
	}
	if w.UIBand >= w.Height {
		errs = append(errs, "world.ui_band must be smaller than world.height")
	}
	if w.ObstaclesPerZone < 0 {
		errs = append(errs, fmt.Sprintf("world.obstacles_per_zone must be >= 0, got %d", w.ObstaclesPerZone))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSim(s SimConfig) error {
	var errs []string
	if s.TickRate < 1 || s.TickRate > 240 {
		errs = append(errs, fmt.Sprintf("sim.tick_rate must be 1-240, got %d", s.TickRate))
	}
	if s.StartingGold < 0 {
		errs = append(errs, fmt.Sprintf("sim.starting_gold must be >= 0, got %d", s.StartingGold))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with WANDER_ prefix
	v.SetEnvPrefix("WANDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("world.width", 960)
	v.SetDefault("world.height", 640)
	v.SetDefault("world.ui_band", 96)
	v.SetDefault("world.obstacles_per_zone", 3)

	v.SetDefault("sim.tick_rate", 30)
	v.SetDefault("sim.starting_gold", 100)

	v.SetDefault("content.dir", "content")
}
