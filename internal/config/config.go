package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// knownGroups are the CAS adjustment group codes accepted in a config file.
var knownGroups = []string{"CO", "PR", "OA", "PI", "CR"}

// Config holds all runtime configuration for an eraload run.
type Config struct {
	DSN        string
	FilePath   string
	OutputPath string // parquet export target
	LogFormat  string // "text" or "json"
	Force      bool

	// AdjustmentGroups restricts which CAS group codes get staged.
	// Empty means all.
	AdjustmentGroups []string `yaml:"adjustment_groups"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	AdjustmentGroups []string `yaml:"adjustment_groups"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.AdjustmentGroups = yc.AdjustmentGroups
	return c.validateGroups()
}

// validateGroups checks that every entry is a known CAS group code.
func (c *Config) validateGroups() error {
	for _, g := range c.AdjustmentGroups {
		known := false
		for _, k := range knownGroups {
			if g == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown adjustment group %q in config (known: %v)", g, knownGroups)
		}
	}
	return nil
}

// GroupSet returns the configured groups as a lookup set, nil when all
// groups are kept.
func (c *Config) GroupSet() map[string]bool {
	if len(c.AdjustmentGroups) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.AdjustmentGroups))
	for _, g := range c.AdjustmentGroups {
		set[g] = true
	}
	return set
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return c.validateGroups()
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or REMIT_DB_URL is required")
	}
	return nil
}
