// Package config provides YAML-driven configuration for the levdex CLI,
// grounded on projectdiscovery-alterx's config.go (NewConfig/GenerateSample
// pair over gopkg.in/yaml.v3).
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a levdex CLI configuration file.
type Config struct {
	// DictionaryPath is the newline-delimited word list to load at startup.
	DictionaryPath string `yaml:"dictionary"`
	// InstallBounds lists every edit-distance bound to install before
	// serving queries.
	InstallBounds []int `yaml:"bounds"`
	// DefaultBound is used for queries that don't specify their own bound.
	DefaultBound int `yaml:"default_bound"`
	// ResultLimit caps the number of matches printed per query; 0 means
	// unlimited.
	ResultLimit int `yaml:"result_limit"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		InstallBounds: []int{1, 2},
		DefaultBound:  1,
		ResultLimit:   10,
	}
}

// Load reads and parses the YAML configuration at path.
func Load(path string) (*Config, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %q", path)
	}
	return &cfg, nil
}

// GenerateSample writes a sample configuration, built from Default, to
// path — useful as a starting point for a user's own config file.
func GenerateSample(path string) error {
	bin, err := yaml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, "config: marshal sample")
	}
	if err := os.WriteFile(path, bin, 0644); err != nil {
		return errors.Wrapf(err, "config: write %q", path)
	}
	return nil
}
