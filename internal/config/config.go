// Package config loads CLI configuration from defaults, an optional YAML
// file, a .env file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "FITSTANDARDS"

// Config represents the complete CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	// Pages maps sex to page reference, e.g. FITSTANDARDS_PAGES=boys:1,girls:2
	Pages map[string]string `yaml:"pages" envconfig:"PAGES" validate:"len=2,dive,keys,oneof=boys girls,endkeys,required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// InputConfig controls how workbook sheets are read.
type InputConfig struct {
	PrintAreas  bool `yaml:"print_areas" envconfig:"PRINT_AREAS"`
	DetectTable bool `yaml:"detect_table" envconfig:"DETECT_TABLE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Input:   InputConfig{PrintAreas: true, DetectTable: true},
		Pages:   map[string]string{"boys": "1", "girls": "2"},
	}
}

// Load builds the configuration. path names an optional YAML file; an
// empty path skips the file layer. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process
// environment. A missing file is not an error; variables already set
// are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile merges a YAML file over cfg. Keys absent from the file
// keep their current values; page entries are merged per sex.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
