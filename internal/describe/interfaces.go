/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"
	"time"

	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
)

// Describer defines the interface for retrieving detailed environment information
type Describer interface {
	DescribeEnvironment(ctx context.Context, env *model.Environment) (*EnvironmentDescription, error)
}

// EnvironmentDescription contains what is known about a deployed environment
type EnvironmentDescription struct {
	// Basic environment information
	Name           string
	Stack          string
	Location       string
	SubscriptionID string

	// Last update of the stack
	LastUpdate       *time.Time
	UpdateInProgress bool
	ResourceCount    int
	URL              string

	// Resolved configuration, secrets masked
	Config map[string]string

	// Stack outputs
	Outputs engine.Outputs
}
