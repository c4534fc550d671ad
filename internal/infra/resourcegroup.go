/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package infra declares the Azure resources of a container apps environment.
// Declarations only describe intent; the Pulumi engine owns creation, diffing and
// deletion of the resources.
package infra

import (
	"fmt"

	"github.com/orien/acaenv/internal/options"
	"github.com/pulumi/pulumi-azure-native-sdk/resources/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// NewResourceGroupArgs maps options to the resource group arguments
func NewResourceGroupArgs(opts *options.Options) *resources.ResourceGroupArgs {
	return &resources.ResourceGroupArgs{
		ResourceGroupName: pulumi.String(opts.ResourceGroup),
		Tags:              pulumi.ToStringMap(opts.Tags()),
	}
}

// NewResourceGroup declares the resource group every other resource lives in
func NewResourceGroup(ctx *pulumi.Context, opts *options.Options) (*resources.ResourceGroup, error) {
	group, err := resources.NewResourceGroup(ctx, opts.ResourceGroup, NewResourceGroupArgs(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to declare resource group %s: %w", opts.ResourceGroup, err)
	}
	return group, nil
}
