// Package config loads the settings of the rxfrom demo from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/arielf-camacho/rxfrom/log"
)

// EnvPath is the environment variable holding the path of the config file.
const EnvPath = "RXFROM_CONFIG"

const (
	ScenarioArray   = "array"
	ScenarioResolve = "resolve"
	ScenarioReject  = "reject"
)

// Scenarios lists the known scenarios in their default order.
var Scenarios = []string{ScenarioArray, ScenarioResolve, ScenarioReject}

var ErrUnknownScenario = errors.New("unknown scenario")

// Config is the demo configuration.
type Config struct {
	LogLevel  log.LogLevel `yaml:"log-level"`
	Scenarios []string     `yaml:"scenarios"`
	Names     []string     `yaml:"names"`
	Resolved  string       `yaml:"resolved"`
	Rejected  string       `yaml:"rejected"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  log.WARNING,
		Scenarios: append([]string(nil), Scenarios...),
		Names:     []string{"Chenchu Lakshmi", "Mahathi", "Mahi Chenchith"},
		Resolved:  "resolved",
		Rejected:  "Rejected!",
	}
}

// Parse decodes buf on top of the defaults and validates the result.
func Parse(buf []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(buf)
}

// FromEnv loads the file named by EnvPath.
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Validate checks that every scenario is known.
func (c Config) Validate() error {
	unknown := lo.Without(c.Scenarios, Scenarios...)
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownScenario, unknown)
	}
	return nil
}
