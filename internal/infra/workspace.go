/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"fmt"

	"github.com/orien/acaenv/internal/options"
	"github.com/pulumi/pulumi-azure-native-sdk/operationalinsights/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// WorkspaceSku is the pricing tier of the log analytics workspace
const WorkspaceSku = "PerGB2018"

// WorkspaceName returns the name of the environment's log analytics workspace
func WorkspaceName(environment options.Environment) string {
	return fmt.Sprintf("%s-logs", environment)
}

// NewWorkspaceArgs maps options to the workspace arguments
func NewWorkspaceArgs(opts *options.Options, resourceGroupName pulumi.StringInput) *operationalinsights.WorkspaceArgs {
	return &operationalinsights.WorkspaceArgs{
		WorkspaceName:     pulumi.String(WorkspaceName(opts.Environment)),
		ResourceGroupName: resourceGroupName,
		Sku: &operationalinsights.WorkspaceSkuArgs{
			Name: pulumi.String(WorkspaceSku),
		},
		RetentionInDays: pulumi.Int(opts.LogsRetentionDays),
		Tags:            pulumi.ToStringMap(opts.Tags()),
	}
}

// NewWorkspace declares the log analytics workspace collecting the environment's logs
func NewWorkspace(ctx *pulumi.Context, opts *options.Options, resourceGroupName pulumi.StringInput) (*operationalinsights.Workspace, error) {
	name := WorkspaceName(opts.Environment)

	workspace, err := operationalinsights.NewWorkspace(ctx, name, NewWorkspaceArgs(opts, resourceGroupName))
	if err != nil {
		return nil, fmt.Errorf("failed to declare workspace %s: %w", name, err)
	}
	return workspace, nil
}
