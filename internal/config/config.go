package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/normalize"
)

// Config holds all runtime configuration for a tiscalc run.
type Config struct {
	DSN       string
	FilePath  string
	LogFormat string // "text" or "json"
	Force     bool
	Activate  bool

	Classes []string `yaml:"classes"` // ordered recognized class names
	Periods Periods  `yaml:"periods"` // the two periods compared by the delta
}

// Periods names the two periods whose aggregated TIS values are compared.
type Periods struct {
	Previous string `yaml:"previous"`
	New      string `yaml:"new"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Classes []string `yaml:"classes"`
	Periods Periods  `yaml:"periods"`
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
	c.Classes = yc.Classes
	if yc.Periods.Previous != "" {
		c.Periods.Previous = yc.Periods.Previous
	}
	if yc.Periods.New != "" {
		c.Periods.New = yc.Periods.New
	}
	return c.ApplyDefaults()
}

// ApplyDefaults fills empty class and period settings with the canonical
// defaults and validates the result.
func (c *Config) ApplyDefaults() error {
	if len(c.Classes) == 0 {
		c.Classes = model.ClassNames(model.DefaultClasses)
	}
	if c.Periods.Previous == "" {
		c.Periods.Previous = "Previous"
	}
	if c.Periods.New == "" {
		c.Periods.New = "New"
	}
	return c.validate()
}

// validate checks class names for emptiness and case-insensitive duplicates,
// and the period names for emptiness and equality.
func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Classes))
	for _, name := range c.Classes {
		norm := normalize.ClassLabel(name)
		if norm == "" {
			return fmt.Errorf("empty class name in config")
		}
		if seen[norm] {
			return fmt.Errorf("duplicate class name %q in config", name)
		}
		seen[norm] = true
	}
	if c.Periods.Previous == c.Periods.New {
		return fmt.Errorf("periods.previous and periods.new must differ, both are %q", c.Periods.New)
	}
	return nil
}

// MedClasses resolves the configured class names into MedClass values,
// keeping canonical column suffixes for the default classes.
func (c *Config) MedClasses() []model.MedClass {
	classes := make([]model.MedClass, len(c.Classes))
	for i, name := range c.Classes {
		if mc, ok := model.MedClassByName(model.DefaultClasses, name); ok {
			classes[i] = mc
		} else {
			classes[i] = model.NewMedClass(name)
		}
	}
	return classes
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return c.ApplyDefaults()
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or TIS_DB_URL is required")
	}
	return nil
}
