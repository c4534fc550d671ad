/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package deploy

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/orien/acaenv/internal/describe"
	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
	"github.com/orien/acaenv/internal/preview"
	"github.com/orien/acaenv/internal/prompt"
)

// Deployer defines the interface for environment deployment operations
type Deployer interface {
	DeployEnvironment(ctx context.Context, env *model.Environment) error
}

// Options control a deployment
type Options struct {
	// AutoApprove skips the confirmation prompt
	AutoApprove bool

	// Progress receives the engine's streaming output when set
	Progress io.Writer
}

// EnvironmentDeployer previews, confirms and applies the program to an environment
type EnvironmentDeployer struct {
	factory engine.Factory
	options Options
	output  io.Writer
	styles  *preview.Styles
}

// NewEnvironmentDeployer creates a deployer that prints to stdout
func NewEnvironmentDeployer(factory engine.Factory, opts Options) *EnvironmentDeployer {
	return &EnvironmentDeployer{
		factory: factory,
		options: opts,
		output:  os.Stdout,
		styles:  preview.NewStyles(preview.ShouldUseColour()),
	}
}

// SetOutput replaces the writer progress messages are printed to
func (d *EnvironmentDeployer) SetOutput(w io.Writer) {
	d.output = w
}

// SetStyles replaces the change summary styles
func (d *EnvironmentDeployer) SetStyles(styles *preview.Styles) {
	d.styles = styles
}

// DeployEnvironment previews the changes, asks for confirmation and applies them
func (d *EnvironmentDeployer) DeployEnvironment(ctx context.Context, env *model.Environment) error {
	result, err := preview.Run(ctx, d.factory, env, preview.Options{Progress: d.options.Progress})
	if err != nil {
		return err
	}

	d.printf("%s", preview.FormatResult(result, d.styles))

	if !result.HasChanges() {
		d.printf("\nEnvironment %s is up to date, nothing to deploy\n", env.Name)
		return nil
	}

	if !d.options.AutoApprove {
		confirmed, err := prompt.ConfirmDeployment(env.Name)
		if err != nil {
			return fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			d.printf("Deployment cancelled\n")
			return nil
		}
	}

	ops, err := d.factory.GetStackOperations(ctx, env)
	if err != nil {
		return fmt.Errorf("failed to get stack operations for %s: %w", env.Name, err)
	}

	d.printf("\nDeploying environment %s...\n", env.Name)

	up, err := ops.Up(ctx, engine.RunOptions{Progress: d.options.Progress})
	if err != nil {
		return fmt.Errorf("failed to deploy environment %s: %w", env.Name, err)
	}

	d.printf("Successfully deployed environment %s\n", env.Name)

	if len(up.Outputs) > 0 {
		d.printf("\nOutputs:\n%s", describe.FormatOutputs(up.Outputs))
	}

	return nil
}

func (d *EnvironmentDeployer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(d.output, format, args...)
}
