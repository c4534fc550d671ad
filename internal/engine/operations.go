/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package engine

import (
	"context"
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
)

// DefaultStackOperations implements StackOperations over an Automation API stack
type DefaultStackOperations struct {
	name  string
	stack AutomationStack
}

// NewStackOperationsWithStack creates stack operations using the provided stack
func NewStackOperationsWithStack(name string, stack AutomationStack) *DefaultStackOperations {
	return &DefaultStackOperations{
		name:  name,
		stack: stack,
	}
}

// Preview computes the changes an update would make without applying them
func (o *DefaultStackOperations) Preview(ctx context.Context, opts RunOptions) (*PreviewResult, error) {
	var previewOpts []optpreview.Option
	if opts.Progress != nil {
		previewOpts = append(previewOpts, optpreview.ProgressStreams(opts.Progress))
	}

	result, err := o.stack.Preview(ctx, previewOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to preview stack %s: %w", o.name, err)
	}

	return &PreviewResult{
		Changes: convertOpSummary(result.ChangeSummary),
	}, nil
}

// Up applies the program and returns the resulting outputs
func (o *DefaultStackOperations) Up(ctx context.Context, opts RunOptions) (*UpResult, error) {
	var upOpts []optup.Option
	if opts.Progress != nil {
		upOpts = append(upOpts, optup.ProgressStreams(opts.Progress))
	}

	result, err := o.stack.Up(ctx, upOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to update stack %s: %w", o.name, err)
	}

	return &UpResult{
		Result:  result.Summary.Result,
		Changes: convertResourceChanges(result.Summary.ResourceChanges),
		Outputs: convertOutputs(result.Outputs),
	}, nil
}

// Destroy deletes every resource in the stack. The stack and its history are kept.
func (o *DefaultStackOperations) Destroy(ctx context.Context, opts RunOptions) (*DestroyResult, error) {
	var destroyOpts []optdestroy.Option
	if opts.Progress != nil {
		destroyOpts = append(destroyOpts, optdestroy.ProgressStreams(opts.Progress))
	}

	result, err := o.stack.Destroy(ctx, destroyOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to destroy stack %s: %w", o.name, err)
	}

	return &DestroyResult{
		Result:  result.Summary.Result,
		Changes: convertResourceChanges(result.Summary.ResourceChanges),
	}, nil
}

// Outputs returns the outputs of the last successful update
func (o *DefaultStackOperations) Outputs(ctx context.Context) (Outputs, error) {
	outputs, err := o.stack.Outputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs of stack %s: %w", o.name, err)
	}
	return convertOutputs(outputs), nil
}

// Info returns a summary of the stack's last update
func (o *DefaultStackOperations) Info(ctx context.Context) (*StackInfo, error) {
	summary, err := o.stack.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack %s: %w", o.name, err)
	}

	info := &StackInfo{
		Name:             summary.Name,
		LastUpdate:       summary.LastUpdate,
		UpdateInProgress: summary.UpdateInProgress,
		URL:              summary.URL,
	}
	if summary.ResourceCount != nil {
		info.ResourceCount = *summary.ResourceCount
	}
	return info, nil
}

func convertOpSummary(summary map[apitype.OpType]int) ChangeSummary {
	changes := make(ChangeSummary, len(summary))
	for op, count := range summary {
		changes[string(op)] = count
	}
	return changes
}

func convertResourceChanges(summary *map[string]int) ChangeSummary {
	changes := make(ChangeSummary)
	if summary == nil {
		return changes
	}
	for op, count := range *summary {
		changes[op] = count
	}
	return changes
}

func convertOutputs(outputs auto.OutputMap) Outputs {
	converted := make(Outputs, len(outputs))
	for name, output := range outputs {
		converted[name] = Output{Value: output.Value, Secret: output.Secret}
	}
	return converted
}
