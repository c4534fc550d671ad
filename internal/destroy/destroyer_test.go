/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package destroy

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
	"github.com/orien/acaenv/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOperations(ctx context.Context, env *model.Environment, info *engine.StackInfo) (*engine.MockFactory, *engine.MockStackOperations) {
	ops := &engine.MockStackOperations{}
	ops.On("Info", ctx).Return(info, nil)

	factory := &engine.MockFactory{}
	factory.On("GetStackOperations", ctx, env).Return(ops, nil)
	return factory, ops
}

func newTestDestroyer(factory engine.Factory, opts Options) (*EnvironmentDestroyer, *bytes.Buffer) {
	var out bytes.Buffer
	d := NewEnvironmentDestroyer(factory, opts)
	d.SetOutput(&out)
	return d, &out
}

func TestDestroyEnvironment_Confirmed(t *testing.T) {
	ctx := context.Background()
	env := model.NewTestEnvironment("staging")
	mockPrompter := prompt.UseMockPrompter(t)
	mockPrompter.OnDestroy("staging").Return(true, nil)

	factory, ops := setupOperations(ctx, env, &engine.StackInfo{Name: "staging", ResourceCount: 4})
	ops.On("Destroy", ctx, engine.RunOptions{}).Return(&engine.DestroyResult{
		Result:  "succeeded",
		Changes: engine.ChangeSummary{"delete": 3},
	}, nil)

	destroyer, out := newTestDestroyer(factory, Options{})
	err := destroyer.DestroyEnvironment(ctx, env)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Resource group: rg-staging")
	assert.Contains(t, out.String(), "Resources: 4")
	assert.Contains(t, out.String(), "Successfully destroyed environment staging (3 resource(s) deleted)")
	mockPrompter.AssertExpectations(t)
	ops.AssertExpectations(t)
}

func TestDestroyEnvironment_Cancelled(t *testing.T) {
	ctx := context.Background()
	env := model.NewTestEnvironment("production")
	mockPrompter := prompt.UseMockPrompter(t)
	mockPrompter.On("Confirm", mock.Anything).Return(false, nil)

	factory, ops := setupOperations(ctx, env, &engine.StackInfo{Name: "production", ResourceCount: 4})

	destroyer, out := newTestDestroyer(factory, Options{})
	err := destroyer.DestroyEnvironment(ctx, env)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Destroy of environment production cancelled by user")
	ops.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestDestroyEnvironment_NoResources(t *testing.T) {
	ctx := context.Background()
	env := model.NewTestEnvironment("development")
	mockPrompter := prompt.UseMockPrompter(t)

	factory, ops := setupOperations(ctx, env, &engine.StackInfo{Name: "development"})

	destroyer, out := newTestDestroyer(factory, Options{})
	err := destroyer.DestroyEnvironment(ctx, env)

	require.NoError(t, err)
	assert.Equal(t, "Environment development has no resources, skipping destroy\n", out.String())
	mockPrompter.AssertNotCalled(t, "Confirm", mock.Anything)
	ops.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestDestroyEnvironment_AutoApprove(t *testing.T) {
	ctx := context.Background()
	env := model.NewTestEnvironment("staging")
	mockPrompter := prompt.UseMockPrompter(t)
	var progress bytes.Buffer

	factory, ops := setupOperations(ctx, env, &engine.StackInfo{Name: "staging", ResourceCount: 2})
	ops.On("Destroy", ctx, engine.RunOptions{Progress: &progress}).
		Return(&engine.DestroyResult{Changes: engine.ChangeSummary{"delete": 2}}, nil)

	destroyer, _ := newTestDestroyer(factory, Options{AutoApprove: true, Progress: &progress})
	err := destroyer.DestroyEnvironment(ctx, env)

	require.NoError(t, err)
	mockPrompter.AssertNotCalled(t, "Confirm", mock.Anything)
	ops.AssertExpectations(t)
}

func TestDestroyEnvironment_UpdateInProgress(t *testing.T) {
	ctx := context.Background()
	env := model.NewTestEnvironment("staging")
	prompt.UseMockPrompter(t)

	factory, ops := setupOperations(ctx, env, &engine.StackInfo{Name: "staging", ResourceCount: 2, UpdateInProgress: true})

	destroyer, _ := newTestDestroyer(factory, Options{AutoApprove: true})
	err := destroyer.DestroyEnvironment(ctx, env)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update in progress")
	ops.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestDestroyEnvironment_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(ctx context.Context, env *model.Environment, p *prompt.MockPrompter) *engine.MockFactory
		expectedErr string
	}{
		{
			name: "factory error",
			setup: func(ctx context.Context, env *model.Environment, p *prompt.MockPrompter) *engine.MockFactory {
				factory := &engine.MockFactory{}
				factory.On("GetStackOperations", ctx, env).Return(nil, errors.New("no backend"))
				return factory
			},
			expectedErr: "failed to get stack operations for staging",
		},
		{
			name: "info error",
			setup: func(ctx context.Context, env *model.Environment, p *prompt.MockPrompter) *engine.MockFactory {
				ops := &engine.MockStackOperations{}
				ops.On("Info", ctx).Return(nil, errors.New("stack not found"))
				factory := &engine.MockFactory{}
				factory.On("GetStackOperations", ctx, env).Return(ops, nil)
				return factory
			},
			expectedErr: "failed to get stack info for staging",
		},
		{
			name: "prompt error",
			setup: func(ctx context.Context, env *model.Environment, p *prompt.MockPrompter) *engine.MockFactory {
				p.On("Confirm", mock.Anything).Return(false, errors.New("EOF"))
				factory, _ := setupOperations(ctx, env, &engine.StackInfo{Name: "staging", ResourceCount: 3})
				return factory
			},
			expectedErr: "failed to get user confirmation",
		},
		{
			name: "destroy error",
			setup: func(ctx context.Context, env *model.Environment, p *prompt.MockPrompter) *engine.MockFactory {
				p.On("Confirm", mock.Anything).Return(true, nil)
				factory, ops := setupOperations(ctx, env, &engine.StackInfo{Name: "staging", ResourceCount: 3})
				ops.On("Destroy", ctx, mock.Anything).Return(nil, errors.New("resource group locked"))
				return factory
			},
			expectedErr: "failed to destroy environment staging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := model.NewTestEnvironment("staging")
			mockPrompter := prompt.UseMockPrompter(t)

			destroyer, _ := newTestDestroyer(tt.setup(ctx, env, mockPrompter), Options{})
			err := destroyer.DestroyEnvironment(ctx, env)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
