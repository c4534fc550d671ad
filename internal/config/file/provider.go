/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/orien/acaenv/internal/config"
	"github.com/orien/acaenv/internal/options"
	"gopkg.in/yaml.v3"
)

// Provider implements config.ConfigProvider by reading from a YAML file
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based ConfigProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// LoadConfig loads and resolves configuration for the specified environment
func (fp *Provider) LoadConfig(ctx context.Context, environment string) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	rawEnvironment, exists := fp.rawConfig.Environments[environment]
	if !exists {
		return nil, fmt.Errorf("%w: '%s' is not declared in %s", config.ErrEnvironmentNotFound, environment, fp.filename)
	}

	return &config.Config{
		Project:         fp.rawConfig.Project,
		Backend:         fp.rawConfig.Backend,
		SecretsProvider: fp.rawConfig.SecretsProvider,
		ProviderVersion: fp.rawConfig.ProviderVersion,
		Environment:     fp.resolveEnvironment(environment, rawEnvironment),
	}, nil
}

// ListEnvironments returns all environments declared in the configuration, sorted by name
func (fp *Provider) ListEnvironments() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	environments := make([]string, 0, len(fp.rawConfig.Environments))
	for name := range fp.rawConfig.Environments {
		environments = append(environments, name)
	}
	sort.Strings(environments)

	return environments, nil
}

// Validate checks the configuration for consistency and errors
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	if fp.rawConfig.Project == "" {
		return fmt.Errorf("project name is required in %s", fp.filename)
	}

	if len(fp.rawConfig.Environments) == 0 {
		return fmt.Errorf("%w in %s", config.ErrNoEnvironments, fp.filename)
	}

	names, _ := fp.ListEnvironments()
	for _, name := range names {
		if _, err := options.ParseEnvironment(name); err != nil {
			return fmt.Errorf("environment '%s': %w", name, err)
		}

		env := fp.rawConfig.Environments[name]
		if env == nil {
			continue
		}
		for _, key := range env.Secrets {
			if _, declared := fp.mergedSettings(env)[key]; !declared {
				return fmt.Errorf("environment '%s' marks undefined config key '%s' as secret", name, key)
			}
		}
	}

	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// resolveEnvironment applies global defaults to an environment
func (fp *Provider) resolveEnvironment(name string, rawEnvironment *Environment) *config.EnvironmentConfig {
	if rawEnvironment == nil {
		rawEnvironment = &Environment{}
	}

	resolved := &config.EnvironmentConfig{
		Name:           name,
		Location:       rawEnvironment.Location,
		SubscriptionID: rawEnvironment.SubscriptionID,
		Settings:       fp.mergedSettings(rawEnvironment),
		SecretKeys:     copyStringSlice(rawEnvironment.Secrets),
	}

	if resolved.Location == "" {
		resolved.Location = fp.rawConfig.Location
	}
	if resolved.SubscriptionID == "" {
		resolved.SubscriptionID = fp.rawConfig.SubscriptionID
	}

	return resolved
}

// mergedSettings merges global settings with environment settings (environment takes precedence)
func (fp *Provider) mergedSettings(rawEnvironment *Environment) map[string]string {
	merged := make(map[string]string)
	for k, v := range fp.rawConfig.Settings.Strings() {
		merged[k] = v
	}
	for k, v := range rawEnvironment.Settings.Strings() {
		merged[k] = v
	}
	return merged
}

func copyStringSlice(source []string) []string {
	if source == nil {
		return nil
	}

	copied := make([]string, len(source))
	copy(copied, source)
	return copied
}
