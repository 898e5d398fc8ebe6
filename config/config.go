// Package config loads run settings from a YAML file, then applies GOLV_*
// environment overrides (a .env file in the working directory is read
// first when present).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	LogFormat  string           `yaml:"log_format"` // console or json
	Search     SearchConfig     `yaml:"search"`
	Experiment ExperimentConfig `yaml:"experiment"`
	CFR        CFRConfig        `yaml:"cfr"`
}

type SearchConfig struct {
	// TableSize bounds the memo tables; 0 leaves them unbounded
	TableSize   int  `yaml:"table_size"`
	Ordering    bool `yaml:"ordering"`
	Concurrency int  `yaml:"concurrency"`
}

type ExperimentConfig struct {
	Variant      string `yaml:"variant"`
	CardsPerSuit int    `yaml:"cards_per_suit"`
	Deals        int    `yaml:"deals"`
	Seed         uint64 `yaml:"seed"`
	Concurrency  int    `yaml:"concurrency"`
	OutputDir    string `yaml:"output_dir"`
}

type CFRConfig struct {
	Iterations int    `yaml:"iterations"`
	Seed       uint64 `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Search: SearchConfig{
			Ordering:    true,
			Concurrency: 4,
		},
		Experiment: ExperimentConfig{
			Variant:      "bridge",
			CardsPerSuit: 5,
			Deals:        10,
			Seed:         1,
			Concurrency:  4,
			OutputDir:    "experiments/results",
		},
		CFR: CFRConfig{
			Iterations: 100000,
			Seed:       1,
		},
	}
}

// Load reads path over the defaults; an empty path keeps the defaults.
// Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"GOLV_LOG_LEVEL":          &c.LogLevel,
		"GOLV_LOG_FORMAT":         &c.LogFormat,
		"GOLV_EXPERIMENT_VARIANT": &c.Experiment.Variant,
		"GOLV_EXPERIMENT_OUTPUT":  &c.Experiment.OutputDir,
	}
	for name, field := range strs {
		if v, ok := lookup(name); ok {
			*field = v
		}
	}

	ints := map[string]*int{
		"GOLV_TABLE_SIZE":             &c.Search.TableSize,
		"GOLV_SEARCH_CONCURRENCY":     &c.Search.Concurrency,
		"GOLV_EXPERIMENT_CARDS":       &c.Experiment.CardsPerSuit,
		"GOLV_EXPERIMENT_DEALS":       &c.Experiment.Deals,
		"GOLV_EXPERIMENT_CONCURRENCY": &c.Experiment.Concurrency,
		"GOLV_CFR_ITERATIONS":         &c.CFR.Iterations,
	}
	for name, field := range ints {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*field = n
		}
	}

	uints := map[string]*uint64{
		"GOLV_EXPERIMENT_SEED": &c.Experiment.Seed,
		"GOLV_CFR_SEED":        &c.CFR.Seed,
	}
	for name, field := range uints {
		if v, ok := lookup(name); ok {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*field = n
		}
	}

	if v, ok := lookup("GOLV_ORDERING"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GOLV_ORDERING: %w", err)
		}
		c.Search.Ordering = b
	}
	return nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.Search.TableSize < 0 {
		return fmt.Errorf("%w: search.table_size %d", ErrInvalidConfig, c.Search.TableSize)
	}
	if c.Search.Concurrency < 1 || c.Experiment.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be positive", ErrInvalidConfig)
	}
	if c.Experiment.Deals < 1 {
		return fmt.Errorf("%w: experiment.deals %d", ErrInvalidConfig, c.Experiment.Deals)
	}
	if c.Experiment.CardsPerSuit < 1 {
		return fmt.Errorf("%w: experiment.cards_per_suit %d", ErrInvalidConfig, c.Experiment.CardsPerSuit)
	}
	if c.CFR.Iterations < 1 {
		return fmt.Errorf("%w: cfr.iterations %d", ErrInvalidConfig, c.CFR.Iterations)
	}
	return nil
}
