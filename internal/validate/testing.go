/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockValidator is a mock implementation of Validator for testing
type MockValidator struct {
	mock.Mock
}

// ValidateEnvironment mocks the ValidateEnvironment method
func (m *MockValidator) ValidateEnvironment(ctx context.Context, environmentName string) error {
	args := m.Called(ctx, environmentName)
	return args.Error(0)
}

// ValidateAllEnvironments mocks the ValidateAllEnvironments method
func (m *MockValidator) ValidateAllEnvironments(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
