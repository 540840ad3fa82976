package eval

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// JudgesConfig defines the metric judges loaded from YAML.
type JudgesConfig struct {
	Metrics []MetricConfig `yaml:"metrics"`
}

type MetricConfig struct {
	Name            string       `yaml:"name"`
	Prompt          string       `yaml:"prompt"`
	Enabled         bool         `yaml:"enabled"`
	RequiresContext bool         `yaml:"requires_context"`
	Model           *ModelConfig `yaml:"model"`
}

type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

func LoadJudgesConfig(path string) (*JudgesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read judges config: %w", err)
	}

	var cfg JudgesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse judges config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *JudgesConfig) {
	for i := range cfg.Metrics {
		if cfg.Metrics[i].Model == nil {
			cfg.Metrics[i].Model = &ModelConfig{}
		}
		if cfg.Metrics[i].Model.MaxTokens == 0 {
			cfg.Metrics[i].Model.MaxTokens = 256
		}
	}
}

func (c *JudgesConfig) Validate() error {
	if len(c.Metrics) == 0 {
		return fmt.Errorf("judges config defines no metrics")
	}

	for _, metric := range c.Metrics {
		if metric.Name == "" {
			return fmt.Errorf("metric with empty name in judges config")
		}
		if metric.Prompt == "" {
			return fmt.Errorf("metric %s has no prompt", metric.Name)
		}
	}

	return nil
}
