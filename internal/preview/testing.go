/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package preview

import (
	"context"

	"github.com/orien/acaenv/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockPreviewer implements Previewer for testing
type MockPreviewer struct {
	mock.Mock
}

func (m *MockPreviewer) PreviewEnvironment(ctx context.Context, env *model.Environment) (*Result, error) {
	args := m.Called(ctx, env)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}
