// Package config handles CLI configuration loading.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultResultsDir is where result files land when no config file and
// no flag override it.
const DefaultResultsDir = "sample_results"

// Config is the root CLI configuration.
type Config struct {
	// ResultsDir is the directory result files are written to,
	// created on demand.
	ResultsDir string `yaml:"results_dir"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{ResultsDir: DefaultResultsDir}
}

// Load reads a YAML config from path. If the file does not exist it
// returns Default() with no error; keys left empty keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = DefaultResultsDir
	}

	return cfg, nil
}
