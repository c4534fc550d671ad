/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"

	"github.com/orien/acaenv/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockDescriber implements Describer for testing
type MockDescriber struct {
	mock.Mock
}

func (m *MockDescriber) DescribeEnvironment(ctx context.Context, env *model.Environment) (*EnvironmentDescription, error) {
	args := m.Called(ctx, env)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EnvironmentDescription), args.Error(1)
}
