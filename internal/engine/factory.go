/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/orien/acaenv/internal/model"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/common/tokens"
	"github.com/pulumi/pulumi/sdk/v3/go/common/workspace"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// StackCreator selects or creates the engine stack for an environment and applies its configuration
type StackCreator func(ctx context.Context, env *model.Environment, program pulumi.RunFunc) (AutomationStack, error)

// DefaultFactory implements Factory with caching per environment
type DefaultFactory struct {
	program      pulumi.RunFunc
	stackCreator StackCreator
	cache        map[string]StackOperations
	mutex        sync.RWMutex
}

// NewFactory creates a factory running program inline through the Automation API
func NewFactory(program pulumi.RunFunc) *DefaultFactory {
	return NewFactoryWithCreator(program, UpsertInlineStack)
}

// NewFactoryWithCreator creates a factory with a custom stack creator (for testing)
func NewFactoryWithCreator(program pulumi.RunFunc, creator StackCreator) *DefaultFactory {
	return &DefaultFactory{
		program:      program,
		stackCreator: creator,
		cache:        make(map[string]StackOperations),
	}
}

// GetStackOperations returns stack operations for the environment
func (f *DefaultFactory) GetStackOperations(ctx context.Context, env *model.Environment) (StackOperations, error) {
	if env == nil || env.Name == "" {
		return nil, fmt.Errorf("environment name cannot be empty")
	}
	if env.Project == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}

	key := env.Project + "/" + env.StackName()

	// Check cache first (read lock)
	f.mutex.RLock()
	if ops, exists := f.cache[key]; exists {
		f.mutex.RUnlock()
		return ops, nil
	}
	f.mutex.RUnlock()

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if ops, exists := f.cache[key]; exists {
		return ops, nil
	}

	stack, err := f.stackCreator(ctx, env, f.program)
	if err != nil {
		return nil, err
	}

	ops := NewStackOperationsWithStack(env.StackName(), stack)
	f.cache[key] = ops
	return ops, nil
}

// UpsertInlineStack selects or creates a stack running program inline, installs the
// provider plugin and writes the environment's configuration.
func UpsertInlineStack(ctx context.Context, env *model.Environment, program pulumi.RunFunc) (AutomationStack, error) {
	project := workspace.Project{
		Name:    tokens.PackageName(env.Project),
		Runtime: workspace.NewProjectRuntimeInfo("go", nil),
	}
	if env.Backend != "" {
		project.Backend = &workspace.ProjectBackend{URL: env.Backend}
	}

	opts := []auto.LocalWorkspaceOption{auto.Project(project)}
	if env.SecretsProvider != "" {
		opts = append(opts, auto.SecretsProvider(env.SecretsProvider))
	}

	stack, err := auto.UpsertStackInlineSource(ctx, env.StackName(), env.Project, program, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to select stack %s: %w", env.StackName(), err)
	}

	if env.ProviderVersion != "" {
		if err := stack.Workspace().InstallPlugin(ctx, ProviderPlugin, env.ProviderVersion); err != nil {
			return nil, fmt.Errorf("failed to install %s plugin %s: %w", ProviderPlugin, env.ProviderVersion, err)
		}
	}

	if err := stack.SetAllConfig(ctx, BuildConfigMap(env)); err != nil {
		return nil, fmt.Errorf("failed to configure stack %s: %w", env.StackName(), err)
	}

	return &stack, nil
}
