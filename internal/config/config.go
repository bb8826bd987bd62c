// Package config provides Viper-based configuration loading for the coliseum simulator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultMaxDistinctItems is the inventory cap used when none is configured.
const DefaultMaxDistinctItems = 20

// CharacterConfig holds the stats the session character is created with.
type CharacterConfig struct {
	Name    string  `mapstructure:"name"`
	HP      float64 `mapstructure:"hp"`
	MP      float64 `mapstructure:"mp"`
	Attack  int     `mapstructure:"attack"`
	Defense int     `mapstructure:"defense"`
}

// InventoryConfig holds inventory limits.
type InventoryConfig struct {
	// MaxDistinctItems caps the number of distinct item slots.
	MaxDistinctItems int `mapstructure:"max_distinct_items"`
}

// ContentConfig locates YAML content on disk.
type ContentConfig struct {
	// ItemsDir holds the starting kit item definitions. Empty disables the kit.
	ItemsDir string `mapstructure:"items_dir"`
}

// ConsoleConfig holds menu presentation settings.
type ConsoleConfig struct {
	// Color enables ANSI colouring of menu output.
	Color bool `mapstructure:"color"`
	// Prompt is the text shown before each top-level selection.
	Prompt string `mapstructure:"prompt"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is "stderr", "stdout", or a file path. The menu owns stdout,
	// so stderr or a file keeps log lines out of the prompts.
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Character CharacterConfig `mapstructure:"character"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Content   ContentConfig   `mapstructure:"content"`
	Console   ConsoleConfig   `mapstructure:"console"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateCharacter(c.Character); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateInventory(c.Inventory); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCharacter(ch CharacterConfig) error {
	var errs []string
	if strings.TrimSpace(ch.Name) == "" {
		errs = append(errs, "character.name must not be empty")
	}
	if ch.HP < 0 {
		errs = append(errs, fmt.Sprintf("character.hp must be >= 0, got %v", ch.HP))
	}
	if ch.MP < 0 {
		errs = append(errs, fmt.Sprintf("character.mp must be >= 0, got %v", ch.MP))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateInventory(i InventoryConfig) error {
	if i.MaxDistinctItems < 1 {
		return fmt.Errorf("inventory.max_distinct_items must be >= 1, got %d", i.MaxDistinctItems)
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
	if strings.TrimSpace(l.Output) == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides. A .env file in the working directory,
// when present, is loaded into the process environment first.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	// Environment variable overrides with COLISEUM_ prefix
	v.SetEnvPrefix("COLISEUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
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

// Defaults returns the configuration produced when no file or environment
// overrides are present.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("character.name", "Gladiator")
	v.SetDefault("character.hp", 100)
	v.SetDefault("character.mp", 50)
	v.SetDefault("character.attack", 10)
	v.SetDefault("character.defense", 5)

	v.SetDefault("inventory.max_distinct_items", DefaultMaxDistinctItems)

	v.SetDefault("content.items_dir", "")

	v.SetDefault("console.color", true)
	v.SetDefault("console.prompt", "Choose an option: ")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}
