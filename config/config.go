package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Logging LoggingConfig `yaml:"logging"`
	Seed    SeedConfig    `yaml:"seed"`
}

type AppConfig struct {
	Name string `yaml:"name"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SeedConfig preloads reference data at startup. Everything stays
// memory-resident; this is configuration, not persistence.
type SeedConfig struct {
	Airlines []AirlineSeed `yaml:"airlines"`
}

type AirlineSeed struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

func Default() *Config {
	return &Config{
		App:     AppConfig{Name: "flightdesk"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads the yaml config at path. A missing file is not an error:
// the defaults apply.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
