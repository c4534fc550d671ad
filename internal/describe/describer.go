/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"
	"fmt"
	"time"

	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
)

// EnvironmentDescriber implements the Describer interface using engine stack operations
type EnvironmentDescriber struct {
	factory engine.Factory
}

// NewEnvironmentDescriber creates a new describer with the provided factory
func NewEnvironmentDescriber(factory engine.Factory) Describer {
	return &EnvironmentDescriber{
		factory: factory,
	}
}

// DescribeEnvironment reads the stack summary and outputs of an environment
func (d *EnvironmentDescriber) DescribeEnvironment(ctx context.Context, env *model.Environment) (*EnvironmentDescription, error) {
	ops, err := d.factory.GetStackOperations(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("failed to get stack operations for %s: %w", env.Name, err)
	}

	info, err := ops.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stack info for %s: %w", env.Name, err)
	}

	outputs, err := ops.Outputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get outputs for %s: %w", env.Name, err)
	}

	return &EnvironmentDescription{
		Name:             env.Name,
		Stack:            info.Name,
		Location:         env.Location,
		SubscriptionID:   env.SubscriptionID,
		LastUpdate:       parseTime(info.LastUpdate),
		UpdateInProgress: info.UpdateInProgress,
		ResourceCount:    info.ResourceCount,
		URL:              info.URL,
		Config:           maskedConfig(env),
		Outputs:          outputs,
	}, nil
}

// parseTime parses an engine timestamp, returning nil when it is absent or malformed
func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}

// maskedConfig copies the resolved config with secret values replaced
func maskedConfig(env *model.Environment) map[string]string {
	config := make(map[string]string, len(env.Config))
	for key, value := range env.Config {
		if env.IsSecret(key) {
			value = SecretMask
		}
		config[key] = value
	}
	return config
}
