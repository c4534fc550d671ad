/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orien/acaenv/internal/config"
	"github.com/orien/acaenv/internal/model"
)

// Resolver resolves a named environment into a deployment-ready model
type Resolver interface {
	ResolveEnvironment(ctx context.Context, environmentName string) (*model.Environment, error)
}

// EnvironmentResolver resolves configuration into deployment-ready environments
type EnvironmentResolver struct {
	configProvider    config.ConfigProvider
	templateProcessor TemplateProcessor
}

// NewEnvironmentResolver creates a new environment resolver with the given config provider
func NewEnvironmentResolver(configProvider config.ConfigProvider) *EnvironmentResolver {
	return &EnvironmentResolver{
		configProvider:    configProvider,
		templateProcessor: NewSettingTemplateProcessor(),
	}
}

// SetTemplateProcessor allows injecting a custom template processor (for testing)
func (r *EnvironmentResolver) SetTemplateProcessor(processor TemplateProcessor) {
	r.templateProcessor = processor
}

// ResolveEnvironment loads the environment's configuration and renders every config value
func (r *EnvironmentResolver) ResolveEnvironment(ctx context.Context, environmentName string) (*model.Environment, error) {
	cfg, err := r.configProvider.LoadConfig(ctx, environmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Environment == nil {
		return nil, fmt.Errorf("configuration for environment %s is empty", environmentName)
	}

	envCfg := cfg.Environment
	variables := map[string]interface{}{
		"Environment": envCfg.Name,
		"Project":     cfg.Project,
		"Location":    envCfg.Location,
	}

	rendered, err := r.renderSettings(envCfg.Settings, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config for environment %s: %w", environmentName, err)
	}

	secretKeys := append([]string(nil), envCfg.SecretKeys...)
	sort.Strings(secretKeys)

	return &model.Environment{
		Name:            envCfg.Name,
		Project:         cfg.Project,
		Backend:         cfg.Backend,
		SecretsProvider: cfg.SecretsProvider,
		ProviderVersion: cfg.ProviderVersion,
		Location:        envCfg.Location,
		SubscriptionID:  envCfg.SubscriptionID,
		Config:          rendered,
		SecretKeys:      secretKeys,
	}, nil
}

func (r *EnvironmentResolver) renderSettings(settings map[string]string, variables map[string]interface{}) (map[string]string, error) {
	result := make(map[string]string, len(settings))
	for key, value := range settings {
		if !strings.Contains(value, "{{") {
			result[key] = value
			continue
		}

		processed, err := r.templateProcessor.Process(value, variables)
		if err != nil {
			return nil, fmt.Errorf("config key %s: %w", key, err)
		}
		result[key] = processed
	}
	return result, nil
}
