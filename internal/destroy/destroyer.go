/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package destroy

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
	"github.com/orien/acaenv/internal/options"
	"github.com/orien/acaenv/internal/prompt"
)

// Destroyer defines the interface for environment teardown
type Destroyer interface {
	DestroyEnvironment(ctx context.Context, env *model.Environment) error
}

// Options control a teardown
type Options struct {
	// AutoApprove skips the confirmation prompt
	AutoApprove bool

	// Progress receives the engine's streaming output when set
	Progress io.Writer
}

// EnvironmentDestroyer destroys every resource of an environment's stack
type EnvironmentDestroyer struct {
	factory engine.Factory
	options Options
	output  io.Writer
}

// NewEnvironmentDestroyer creates a destroyer that prints to stdout
func NewEnvironmentDestroyer(factory engine.Factory, opts Options) *EnvironmentDestroyer {
	return &EnvironmentDestroyer{
		factory: factory,
		options: opts,
		output:  os.Stdout,
	}
}

// SetOutput replaces the writer progress messages are printed to
func (d *EnvironmentDestroyer) SetOutput(w io.Writer) {
	d.output = w
}

// DestroyEnvironment shows what will be destroyed, asks for confirmation and destroys it.
// The stack itself is kept so its history remains available.
func (d *EnvironmentDestroyer) DestroyEnvironment(ctx context.Context, env *model.Environment) error {
	ops, err := d.factory.GetStackOperations(ctx, env)
	if err != nil {
		return fmt.Errorf("failed to get stack operations for %s: %w", env.Name, err)
	}

	info, err := ops.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stack info for %s: %w", env.Name, err)
	}

	if info.ResourceCount == 0 {
		d.printf("Environment %s has no resources, skipping destroy\n", env.Name)
		return nil
	}

	if info.UpdateInProgress {
		return fmt.Errorf("environment %s has an update in progress", env.Name)
	}

	d.printf("\n=== Environment Destroy Preview ===\n")
	d.printf("Environment: %s\n", env.Name)
	d.printf("Stack: %s\n", info.Name)
	if rg, ok := env.Config[options.KeyResourceGroup]; ok {
		d.printf("Resource group: %s\n", rg)
	}
	d.printf("Resources: %d\n", info.ResourceCount)

	d.printf("\nThis will permanently delete the managed environment, its log workspace and resource group.\n")
	d.printf("WARNING: This operation cannot be undone!\n")

	if !d.options.AutoApprove {
		confirmed, err := prompt.ConfirmDestroy(env.Name)
		if err != nil {
			return fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			d.printf("Destroy of environment %s cancelled by user\n", env.Name)
			return nil
		}
	}

	d.printf("Destroying environment %s...\n", env.Name)

	result, err := ops.Destroy(ctx, engine.RunOptions{Progress: d.options.Progress})
	if err != nil {
		return fmt.Errorf("failed to destroy environment %s: %w", env.Name, err)
	}

	d.printf("Successfully destroyed environment %s (%d resource(s) deleted)\n", env.Name, result.Changes["delete"])
	return nil
}

func (d *EnvironmentDestroyer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(d.output, format, args...)
}
