// Package config loads the weft.json project configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/weftml/weft/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "weft.json"

	// DefaultOutput is the default directory for built documents.
	DefaultOutput = "dist"

	// DefaultPreviewAddr is the default preview server address.
	DefaultPreviewAddr = "localhost:3600"
)

// Config represents the complete weft.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Output is the directory built documents are written to.
	Output string `json:"output,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains S3 publish settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Addr is the address the preview server binds to.
	Addr string `json:"addr,omitempty"`

	// Watch contains paths to watch for browser reload.
	Watch []string `json:"watch,omitempty"`
}

// PublishConfig contains S3 publish settings.
type PublishConfig struct {
	// Bucket is the destination S3 bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the object key prefix.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Preview: PreviewConfig{
			Addr: DefaultPreviewAddr,
		},
	}
}

// Load reads and parses the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeConfigNotFound).Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg.configPath = path
	return cfg, nil
}

// Find searches dir and its parents for weft.json and loads it.
func Find(dir string) (*Config, error) {
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, errors.New(errors.CodeConfigNotFound)
		}
		dir = parent
	}
}

// Dir returns the directory containing the loaded config file, or "."
// for a default config.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// OutputDir returns the output directory resolved against the config
// file location.
func (c *Config) OutputDir() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.Dir(), c.Output)
}
