package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/snipdoc"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project config looked up in the root directory
// when --config is not given.
const ConfigFileName = "snipdoc.yaml"

// DefaultVersionsPath is the version table location relative to the root.
const DefaultVersionsPath = "lib/versions.json"

// Config holds project settings read from snipdoc.yaml.
// Command-line flags take precedence over every field.
type Config struct {
	Root        string `yaml:"root"`
	Versions    string `yaml:"versions"`
	Out         string `yaml:"out"`
	Concurrency int    `yaml:"concurrency"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Root:     ".",
		Versions: DefaultVersionsPath,
		Out:      "site",
	}
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snipdoc.Wrapf(err, snipdoc.EMISSING, "cannot read config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, snipdoc.Wrapf(err, snipdoc.EPARSE, "invalid config %s: %v", path, err)
	}

	// Relative paths in the file are relative to the file itself
	dir := filepath.Dir(path)
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(dir, cfg.Root)
	}
	if cfg.Out != "" && !filepath.IsAbs(cfg.Out) {
		cfg.Out = filepath.Join(dir, cfg.Out)
	}
	return cfg, cfg.Validate()
}

// findConfig loads path, or root/snipdoc.yaml if path is empty and the file
// exists, or the defaults.
func findConfig(path, root string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	if root == "" {
		root = "."
	}
	candidate := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(candidate)
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Root == "" {
		return snipdoc.Errorf(snipdoc.EINVALID, "root is required")
	}
	if c.Versions == "" {
		return snipdoc.Errorf(snipdoc.EINVALID, "versions is required")
	}
	if c.Concurrency < 0 {
		return snipdoc.Errorf(snipdoc.EINVALID, "concurrency must be >= 0")
	}
	return nil
}

// VersionsPath returns the version table path resolved against the root.
func (c *Config) VersionsPath() string {
	if filepath.IsAbs(c.Versions) {
		return c.Versions
	}
	return filepath.Join(c.Root, c.Versions)
}

func (c *Config) String() string {
	return fmt.Sprintf("root=%s versions=%s out=%s concurrency=%d", c.Root, c.Versions, c.Out, c.Concurrency)
}
