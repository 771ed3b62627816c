// Package config holds the batch tool's configuration.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and conversion settings.
type Config struct {
	// Paths
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Conversion settings
	Format       string `yaml:"format"` // stl, obj or ply
	ASCII        bool   `yaml:"ascii"`
	DumpTextures bool   `yaml:"dump_textures"`
	TextureSize  int    `yaml:"texture_size"` // longest side, 0 = original
	Workers      int    `yaml:"workers"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Flags holds CLI overrides for config file values.
type Flags struct {
	InputDir  string
	OutputDir string
	Format    string
	Workers   int
}

// Load reads a YAML config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Format == "" {
		c.Format = "stl"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.OutputDir == "" && c.InputDir != "" {
		c.OutputDir = c.InputDir + "-export"
	}
}
