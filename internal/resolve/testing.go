/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"

	"github.com/orien/acaenv/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockResolver implements Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveEnvironment(ctx context.Context, environmentName string) (*model.Environment, error) {
	args := m.Called(ctx, environmentName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

// MockTemplateProcessor implements TemplateProcessor for testing
type MockTemplateProcessor struct {
	mock.Mock
}

func (m *MockTemplateProcessor) Process(templateContent string, variables map[string]interface{}) (string, error) {
	args := m.Called(templateContent, variables)
	return args.String(0), args.Error(1)
}
