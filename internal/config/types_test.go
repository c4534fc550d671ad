/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentConfig_IsSecret(t *testing.T) {
	env := &EnvironmentConfig{
		Name:       "production",
		SecretKeys: []string{"datadog-api-key"},
	}

	assert.True(t, env.IsSecret("datadog-api-key"))
	assert.False(t, env.IsSecret("resource-group"))
	assert.False(t, (&EnvironmentConfig{}).IsSecret("datadog-api-key"))
}

func TestMockConfigProvider_SatisfiesInterface(t *testing.T) {
	var provider ConfigProvider = &MockConfigProvider{}
	mockProvider := provider.(*MockConfigProvider)

	expected := &Config{
		Project:     "acaenv",
		Environment: &EnvironmentConfig{Name: "staging", Location: "westeurope"},
	}
	mockProvider.On("LoadConfig", context.Background(), "staging").Return(expected, nil)
	mockProvider.On("ListEnvironments").Return([]string{"staging"}, nil)
	mockProvider.On("Validate").Return(nil)

	cfg, err := provider.LoadConfig(context.Background(), "staging")
	require.NoError(t, err)
	assert.Equal(t, expected, cfg)

	environments, err := provider.ListEnvironments()
	require.NoError(t, err)
	assert.Equal(t, []string{"staging"}, environments)

	assert.NoError(t, provider.Validate())
	mockProvider.AssertExpectations(t)
}

func TestMockConfigProvider_ReturnsErrors(t *testing.T) {
	mockProvider := &MockConfigProvider{}
	mockProvider.On("LoadConfig", context.Background(), "qa").Return(nil, ErrEnvironmentNotFound)
	mockProvider.On("ListEnvironments").Return(nil, ErrNoEnvironments)

	cfg, err := mockProvider.LoadConfig(context.Background(), "qa")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEnvironmentNotFound)

	environments, err := mockProvider.ListEnvironments()
	assert.Nil(t, environments)
	assert.ErrorIs(t, err, ErrNoEnvironments)
}
