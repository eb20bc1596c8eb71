// Package config provides Viper-based configuration loading for gcssync.
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

// RulesConfig holds campaign rules data settings.
type RulesConfig struct {
	// SkillsDir is an optional directory of campaign skill YAML files that
	// shadow the built-in skill table. Empty means built-ins only.
	SkillsDir string `mapstructure:"skills_dir"`
}

// ReconcileConfig holds reconciliation behaviour settings.
type ReconcileConfig struct {
	// GenericGear lists item names whose appearance in a sheet is never
	// reported as an addition. Matching is case-insensitive.
	GenericGear []string `mapstructure:"generic_gear"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Rules     RulesConfig     `mapstructure:"rules"`
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
}

// Load reads configuration from gcssync.yaml in the given directory (and
// the environment, prefixed GCSSYNC_), applying defaults for anything
// unset. A missing config file is not an error.
//
// Postcondition: returns a validated Config or a non-nil error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("gcssync")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("GCSSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("rules.skills_dir", "")
	v.SetDefault("reconcile.generic_gear", defaultGenericGear)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaultGenericGear suppresses add-noise from ubiquitous inventory items.
var defaultGenericGear = []string{
	"Boots",
	"Belt",
	"Wallet",
	"Purse",
	"Flashlight",
	"Matches",
	"Notebook",
	"Pencil",
}

// Validate checks all configuration invariants.
//
// Postcondition: returns nil if the configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	for _, name := range c.Reconcile.GenericGear {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "reconcile.generic_gear must not contain blank entries")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
