package guardrail

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
	Mask  string `yaml:"mask"`
}

// LoadRules reads an ordered pattern set from a YAML file. An empty
// path selects the built-in rules.
func LoadRules(path string) ([]Pattern, error) {
	if path == "" {
		return DefaultPatterns(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guardrail rules: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse guardrail rules: %w", err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("guardrail rule file %s defines no rules", path)
	}

	var patterns []Pattern
	for _, rule := range file.Rules {
		if rule.Name == "" || rule.Regex == "" || rule.Mask == "" {
			return nil, fmt.Errorf("guardrail rule needs name, regex and mask (got name=%q)", rule.Name)
		}

		pattern, err := NewPattern(rule.Name, rule.Regex, rule.Mask)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}
