/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package preview

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
)

// Previewer shows the changes applying the program would make to an environment
type Previewer interface {
	PreviewEnvironment(ctx context.Context, env *model.Environment) (*Result, error)
}

// Options control a preview
type Options struct {
	// Progress receives the engine's streaming output when set
	Progress io.Writer
}

// EnvironmentPreviewer implements Previewer with the engine
type EnvironmentPreviewer struct {
	factory engine.Factory
	options Options
	output  io.Writer
	styles  *Styles
}

// NewEnvironmentPreviewer creates a previewer that prints to stdout
func NewEnvironmentPreviewer(factory engine.Factory, opts Options) *EnvironmentPreviewer {
	return &EnvironmentPreviewer{
		factory: factory,
		options: opts,
		output:  os.Stdout,
		styles:  NewStyles(ShouldUseColour()),
	}
}

// SetOutput replaces the writer the summary is printed to
func (p *EnvironmentPreviewer) SetOutput(w io.Writer) {
	p.output = w
}

// SetStyles replaces the summary styles
func (p *EnvironmentPreviewer) SetStyles(styles *Styles) {
	p.styles = styles
}

// PreviewEnvironment runs a preview and prints the change summary
func (p *EnvironmentPreviewer) PreviewEnvironment(ctx context.Context, env *model.Environment) (*Result, error) {
	result, err := Run(ctx, p.factory, env, p.options)
	if err != nil {
		return nil, err
	}

	_, _ = fmt.Fprint(p.output, FormatResult(result, p.styles))
	return result, nil
}

// Run previews env without printing anything
func Run(ctx context.Context, factory engine.Factory, env *model.Environment, opts Options) (*Result, error) {
	ops, err := factory.GetStackOperations(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("failed to get stack operations for %s: %w", env.Name, err)
	}

	preview, err := ops.Preview(ctx, engine.RunOptions{Progress: opts.Progress})
	if err != nil {
		return nil, fmt.Errorf("failed to preview environment %s: %w", env.Name, err)
	}

	return &Result{
		Environment: env.Name,
		Stack:       env.StackName(),
		Changes:     preview.Changes,
	}, nil
}
