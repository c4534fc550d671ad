/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package engine

import (
	"context"

	"github.com/orien/acaenv/internal/model"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/stretchr/testify/mock"
)

// MockFactory implements Factory for testing
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) GetStackOperations(ctx context.Context, env *model.Environment) (StackOperations, error) {
	args := m.Called(ctx, env)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(StackOperations), args.Error(1)
}

// MockStackOperations implements StackOperations for testing
type MockStackOperations struct {
	mock.Mock
}

func (m *MockStackOperations) Preview(ctx context.Context, opts RunOptions) (*PreviewResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PreviewResult), args.Error(1)
}

func (m *MockStackOperations) Up(ctx context.Context, opts RunOptions) (*UpResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UpResult), args.Error(1)
}

func (m *MockStackOperations) Destroy(ctx context.Context, opts RunOptions) (*DestroyResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DestroyResult), args.Error(1)
}

func (m *MockStackOperations) Outputs(ctx context.Context) (Outputs, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Outputs), args.Error(1)
}

func (m *MockStackOperations) Info(ctx context.Context) (*StackInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StackInfo), args.Error(1)
}

// MockAutomationStack implements AutomationStack for testing
type MockAutomationStack struct {
	mock.Mock
}

func (m *MockAutomationStack) Preview(ctx context.Context, opts ...optpreview.Option) (auto.PreviewResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(auto.PreviewResult), args.Error(1)
}

func (m *MockAutomationStack) Up(ctx context.Context, opts ...optup.Option) (auto.UpResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(auto.UpResult), args.Error(1)
}

func (m *MockAutomationStack) Destroy(ctx context.Context, opts ...optdestroy.Option) (auto.DestroyResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(auto.DestroyResult), args.Error(1)
}

func (m *MockAutomationStack) Outputs(ctx context.Context) (auto.OutputMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(auto.OutputMap), args.Error(1)
}

func (m *MockAutomationStack) Info(ctx context.Context) (auto.StackSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(auto.StackSummary), args.Error(1)
}
