// Package config loads and saves run configuration for the quatdmp driver.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNumBasis    = 20
	DefaultDt          = 0.01
	DefaultTau         = 1.0
	DefaultDemoSamples = 50
	DefaultDemoAngle   = 1.5708
)

type Config struct {
	NumBasis int        `yaml:"n_bf"`
	Dt       float64    `yaml:"dt"`
	Tau      float64    `yaml:"tau"`
	Demo     DemoConfig `yaml:"demo"`
}

// DemoConfig describes the synthetic demonstration the driver trains on:
// a minimum-jerk sweep of angle radians about axis.
type DemoConfig struct {
	Samples int       `yaml:"samples"`
	Axis    []float64 `yaml:"axis"`
	Angle   float64   `yaml:"angle"`
}

func DefaultConfig() *Config {
	return &Config{
		NumBasis: DefaultNumBasis,
		Dt:       DefaultDt,
		Tau:      DefaultTau,
		Demo: DemoConfig{
			Samples: DefaultDemoSamples,
			Axis:    []float64{0, 0, 1},
			Angle:   DefaultDemoAngle,
		},
	}
}

// Load overlays the yaml file at path on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
