package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is a single key-value pair to preload into the trie.
type Entry struct {
	Key   string `yaml:"Key"`
	Value string `yaml:"Value"`
}

// Config is the top level struct representing the state file consumed by
// the CLI: logging settings plus the entries to load.
type Config struct {
	LogLevel string  `yaml:"LogLevel"`
	Entries  []Entry `yaml:"Entries"`
}

// Load attempts to load the config from the given path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config YAML: %w", err)
	}
	return cfg, nil
}
