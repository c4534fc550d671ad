/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package config defines the provider-neutral view of the acaenv configuration.
package config

import (
	"context"
	"errors"
)

var (
	// ErrEnvironmentNotFound is returned when an environment is not declared in the configuration
	ErrEnvironmentNotFound = errors.New("environment not found")

	// ErrNoEnvironments is returned when the configuration declares no environments at all
	ErrNoEnvironments = errors.New("no environments configured")
)

// ConfigProvider defines the interface for loading and managing configuration
type ConfigProvider interface {
	// LoadConfig loads configuration for a specific environment
	LoadConfig(ctx context.Context, environment string) (*Config, error)

	// ListEnvironments returns all environments declared in the configuration
	ListEnvironments() ([]string, error)

	// Validate checks the configuration for consistency and errors
	Validate() error
}

// Config represents the resolved configuration for one environment
type Config struct {
	Project         string
	Backend         string
	SecretsProvider string
	ProviderVersion string
	Environment     *EnvironmentConfig
}

// EnvironmentConfig represents environment settings with global defaults applied
type EnvironmentConfig struct {
	Name           string
	Location       string
	SubscriptionID string

	// Settings are the program config keys (resource-group, logs-retention-days, ...)
	Settings map[string]string

	// SecretKeys name the settings that are stored encrypted in the stack config
	SecretKeys []string
}

// IsSecret reports whether the named setting is a secret
func (e *EnvironmentConfig) IsSecret(key string) bool {
	for _, k := range e.SecretKeys {
		if k == key {
			return true
		}
	}
	return false
}
