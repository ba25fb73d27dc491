// Package config loads generator configuration for crdpmap.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the default name for generator configuration files.
const DefaultFilename = "crdpmap.yaml"

// Config controls a generation run.
type Config struct {
	// Input is the path to the protocol declaration file.
	Input string `yaml:"input"`
	// Output is the path the generated mapping file is written to.
	Output string `yaml:"output"`
	// RootClient is the declaration that enumerates protocol domains.
	RootClient string `yaml:"root_client"`
	// AsyncWrapper is the generic wrapper around command results.
	AsyncWrapper string `yaml:"async_wrapper"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:        "crdp.d.ts",
		Output:       "crdpMappings.d.ts",
		RootClient:   "CrdpClient",
		AsyncWrapper: "Promise",
	}
}

// Load loads configuration from the specified path. If path is a directory,
// it looks for crdpmap.yaml in that directory. If path is empty, it looks in
// the current directory.
func Load(path string) (Config, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat path: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}

	return LoadFile(path)
}

// LoadFile loads configuration from a specific file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration from YAML bytes. Fields left empty fall back to
// their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Input == "" {
		c.Input = def.Input
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.RootClient == "" {
		c.RootClient = def.RootClient
	}
	if c.AsyncWrapper == "" {
		c.AsyncWrapper = def.AsyncWrapper
	}
}
