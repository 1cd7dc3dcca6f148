package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paycycle-dev/paycycle/internal/model"
	"github.com/paycycle-dev/paycycle/internal/period"
	"github.com/paycycle-dev/paycycle/internal/policy"
)

// Config represents the top-level paycycle.yaml configuration.
type Config struct {
	Analysis   AnalysisConfig    `yaml:"analysis"`
	Import     ImportConfig      `yaml:"import"`
	Policies   PoliciesConfig    `yaml:"policies"`
	Exceptions map[string]string `yaml:"exceptions,omitempty"`
}

// AnalysisConfig bounds the periods to analyze.
type AnalysisConfig struct {
	Start string `yaml:"start"` // "YYYY-MM", first payday month
	End   string `yaml:"end"`   // "YYYY-MM", inclusive
}

// ImportConfig selects the export parser.
type ImportConfig struct {
	Format   string `yaml:"format"`
	Encoding string `yaml:"encoding,omitempty"`
}

// PoliciesConfig lists the classification rules in evaluation order.
type PoliciesConfig struct {
	Income []PolicyConfig `yaml:"income,omitempty"`
	Loss   []PolicyConfig `yaml:"loss,omitempty"`
}

// PolicyConfig is one named rule.
type PolicyConfig struct {
	Name     string   `yaml:"name"`
	Literals []string `yaml:"literals,omitempty"`
	Patterns []string `yaml:"patterns,omitempty"`
}

// Load reads a paycycle.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// PolicySet builds the ordered policy set, income rules first.
func (c *Config) PolicySet() (*policy.Set, error) {
	policies := make([]*policy.Policy, 0, len(c.Policies.Income)+len(c.Policies.Loss))
	for _, p := range c.Policies.Income {
		policies = append(policies, policy.New(p.Name, model.DirectionIncome, p.Literals, p.Patterns))
	}
	for _, p := range c.Policies.Loss {
		policies = append(policies, policy.New(p.Name, model.DirectionLoss, p.Literals, p.Patterns))
	}
	return policy.NewSet(policies...)
}

// ExceptionTable validates and returns the timestamp overrides.
func (c *Config) ExceptionTable() (policy.Exceptions, error) {
	return policy.NewExceptions(c.Exceptions)
}

// Windows enumerates the configured analysis periods.
func (c *Config) Windows() ([]period.Window, error) {
	return period.ParseRange(c.Analysis.Start, c.Analysis.End)
}
