// Package config loads PowerScan configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into engine configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for PowerScan. Pointer
// fields distinguish "unset" from zero values when layering with CLI flags.
type FileConfig struct {
	Catalog    *string `yaml:"catalog"`
	Include    *string `yaml:"include"`
	Exclude    *string `yaml:"exclude"`
	MaxBytes   *int64  `yaml:"max_bytes"`
	Threads    *int    `yaml:"threads"`
	SnippetMax *int    `yaml:"snippet_max"`
	FailOn     *string `yaml:"fail_on"`
	NoColor    *bool   `yaml:"no_color"`
	Verbose    *bool   `yaml:"verbose"`
	Accepted   *string `yaml:"accepted"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .powerscan.yml/.yaml and powerscan.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".powerscan.yml", ".powerscan.yaml", "powerscan.yml", "powerscan.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "powerscan", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
