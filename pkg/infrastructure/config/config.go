// Package config loads CLI defaults from the environment and an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/infrastructure/logging"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "INVENTORY"

// Config holds the defaults applied when a flag is not given
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  logging.Config `yaml:"logging" envconfig:"LOG"`
}

// AnalysisConfig holds analysis parameter defaults
type AnalysisConfig struct {
	AThreshold      float64 `yaml:"a_threshold" envconfig:"A_THRESHOLD" default:"0.8" validate:"gt=0,lt=1"`
	BThreshold      float64 `yaml:"b_threshold" envconfig:"B_THRESHOLD" default:"0.95" validate:"gtfield=AThreshold,lte=1"`
	TopN            int     `yaml:"top_n" envconfig:"TOP_N" default:"10" validate:"gt=0"`
	Periods         int     `yaml:"periods" envconfig:"PERIODS" default:"30" validate:"gt=0"`
	SeasonalPeriods int     `yaml:"seasonal_periods" envconfig:"SEASONAL_PERIODS" default:"0" validate:"gte=0,ne=1"`
}

// OutputConfig holds report output defaults
type OutputConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json csv yaml xlsx"`
}

// Thresholds returns the configured ABC thresholds
func (c AnalysisConfig) Thresholds() services.ABCThresholds {
	return services.ABCThresholds{A: c.AThreshold, B: c.BThreshold}
}

// Load reads defaults and INVENTORY_* environment variables, then overlays
// the YAML file at path when path is not empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraint
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
