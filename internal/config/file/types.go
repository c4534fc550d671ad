/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains types and structures specific to file-based configuration providers.
// These types represent the raw YAML structure before environment resolution.
package file

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents the raw YAML configuration file structure
// Used for parsing the acaenv.yaml file before environment resolution
type Config struct {
	Project         string                  `yaml:"project"`
	Backend         string                  `yaml:"backend"`
	SecretsProvider string                  `yaml:"secrets_provider"`
	ProviderVersion string                  `yaml:"provider_version"`
	Location        string                  `yaml:"location"`
	SubscriptionID  string                  `yaml:"subscription_id"`
	Settings        Settings                `yaml:"config"`
	Environments    map[string]*Environment `yaml:"environments"`
}

// Environment represents environment configuration as it appears in YAML
type Environment struct {
	Location       string   `yaml:"location"`
	SubscriptionID string   `yaml:"subscription_id"`
	Settings       Settings `yaml:"config"`
	Secrets        []string `yaml:"secrets"`
}

// Settings maps program config keys to their raw values
type Settings map[string]*settingValue

// settingValue is a scalar config value. Numbers and booleans are kept in their
// literal YAML form so "30" and 30 are the same setting.
type settingValue struct {
	Literal string
}

// UnmarshalYAML implements custom YAML unmarshalling for settingValue
func (sv *settingValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		sv.Literal = node.Value
		return nil

	case yaml.AliasNode:
		if node.Alias == nil {
			return fmt.Errorf("config value alias has no target")
		}
		return sv.UnmarshalYAML(node.Alias)

	default:
		return fmt.Errorf("config value at line %d must be a scalar", node.Line)
	}
}

// MarshalYAML implements custom YAML marshalling for settingValue
func (sv *settingValue) MarshalYAML() (interface{}, error) {
	return sv.Literal, nil
}

// Strings flattens the settings into plain strings
func (s Settings) Strings() map[string]string {
	if s == nil {
		return nil
	}

	result := make(map[string]string, len(s))
	for key, value := range s {
		if value == nil {
			result[key] = ""
			continue
		}
		result[key] = value.Literal
	}
	return result
}
