/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package engine

import (
	"context"
	"io"

	"github.com/orien/acaenv/internal/model"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
)

// AutomationStack is the subset of an Automation API stack used by acaenv.
// This allows for easier testing with mock implementations
type AutomationStack interface {
	Preview(ctx context.Context, opts ...optpreview.Option) (auto.PreviewResult, error)
	Up(ctx context.Context, opts ...optup.Option) (auto.UpResult, error)
	Destroy(ctx context.Context, opts ...optdestroy.Option) (auto.DestroyResult, error)
	Outputs(ctx context.Context) (auto.OutputMap, error)
	Info(ctx context.Context) (auto.StackSummary, error)
}

// Ensure that the Automation API stack implements our interface
var _ AutomationStack = (*auto.Stack)(nil)

// Ensure that DefaultStackOperations implements StackOperations
var _ StackOperations = (*DefaultStackOperations)(nil)

// Ensure that DefaultFactory implements Factory
var _ Factory = (*DefaultFactory)(nil)

// StackOperations defines the engine operations available on one environment's stack
type StackOperations interface {
	Preview(ctx context.Context, opts RunOptions) (*PreviewResult, error)
	Up(ctx context.Context, opts RunOptions) (*UpResult, error)
	Destroy(ctx context.Context, opts RunOptions) (*DestroyResult, error)
	Outputs(ctx context.Context) (Outputs, error)
	Info(ctx context.Context) (*StackInfo, error)
}

// Factory creates stack operations for resolved environments
type Factory interface {
	GetStackOperations(ctx context.Context, env *model.Environment) (StackOperations, error)
}

// RunOptions control how an engine operation reports progress
type RunOptions struct {
	// Progress receives the engine's streaming output when set
	Progress io.Writer
}

// ChangeSummary counts resources by engine operation (create, update, delete, same, ...)
type ChangeSummary map[string]int

// Output is one stack output value
type Output struct {
	Value  interface{}
	Secret bool
}

// Outputs maps output names to values
type Outputs map[string]Output

// PreviewResult is the outcome of a preview
type PreviewResult struct {
	Changes ChangeSummary
}

// UpResult is the outcome of applying the program
type UpResult struct {
	Result  string
	Changes ChangeSummary
	Outputs Outputs
}

// DestroyResult is the outcome of destroying the stack's resources
type DestroyResult struct {
	Result  string
	Changes ChangeSummary
}

// StackInfo summarises the stack's last update
type StackInfo struct {
	Name             string
	LastUpdate       string
	UpdateInProgress bool
	ResourceCount    int
	URL              string
}
