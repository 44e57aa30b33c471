package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dilemma/strategy"
)

// Config is the root configuration structure.
type Config struct {
	Seed       uint64          `yaml:"seed"`       // 0 = time-based, non-reproducible
	Turns      int             `yaml:"turns"`      // encounters per round
	Rounds     int             `yaml:"rounds"`     // rounds per pairwise match
	Trials     int             `yaml:"trials"`     // independent tournament+ranking runs
	Iterations int             `yaml:"iterations"` // ranking power iterations
	Alpha      float64         `yaml:"alpha"`      // ranking sharpness exponent
	Epsilon    float64         `yaml:"epsilon"`    // early-exit threshold, 0 = disabled
	Workers    int             `yaml:"workers"`    // parallel trial goroutines
	OutputDir  string          `yaml:"output_dir"` // CSV artifacts, "" = disabled
	Strategies []strategy.Spec `yaml:"strategies"` // empty = default roster
}

// Default returns the reference parameters.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file, fills defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Turns == 0 {
		cfg.Turns = 100
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = 100
	}
	if cfg.Trials == 0 {
		cfg.Trials = 20
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = 5000
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = 1
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

func (c *Config) Validate() error {
	if c.Turns < 1 {
		return errors.Errorf("turns %d must be positive", c.Turns)
	}
	if c.Rounds < 1 {
		return errors.Errorf("rounds %d must be positive", c.Rounds)
	}
	if c.Trials < 1 {
		return errors.Errorf("trials %d must be positive", c.Trials)
	}
	if c.Iterations < 1 {
		return errors.Errorf("iterations %d must be positive", c.Iterations)
	}
	if c.Alpha <= 0 {
		return errors.Errorf("alpha %v must be positive", c.Alpha)
	}
	if c.Epsilon < 0 {
		return errors.Errorf("epsilon %v must not be negative", c.Epsilon)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers %d must be positive", c.Workers)
	}
	return nil
}
