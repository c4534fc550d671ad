/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package destroy

import (
	"context"

	"github.com/orien/acaenv/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockDestroyer is a mock implementation of Destroyer for testing
type MockDestroyer struct {
	mock.Mock
}

// DestroyEnvironment mocks the DestroyEnvironment method
func (m *MockDestroyer) DestroyEnvironment(ctx context.Context, env *model.Environment) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}
