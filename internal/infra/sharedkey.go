/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"errors"
	"fmt"

	"github.com/pulumi/pulumi-azure-native-sdk/operationalinsights/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// ErrNoPrimarySharedKey is returned when a workspace reports no primary shared key
var ErrNoPrimarySharedKey = errors.New("workspace returned no primary shared key")

// SharedKeyLookup fetches the primary shared key of a workspace
type SharedKeyLookup func(ctx *pulumi.Context, resourceGroupName, workspaceName string) (string, error)

// LookupPrimarySharedKey fetches the workspace keys from Azure and returns the primary one
func LookupPrimarySharedKey(ctx *pulumi.Context, resourceGroupName, workspaceName string) (string, error) {
	keys, err := operationalinsights.GetSharedKeys(ctx, &operationalinsights.GetSharedKeysArgs{
		ResourceGroupName: resourceGroupName,
		WorkspaceName:     workspaceName,
	})
	if err != nil {
		return "", err
	}
	if keys.PrimarySharedKey == nil || *keys.PrimarySharedKey == "" {
		return "", ErrNoPrimarySharedKey
	}
	return *keys.PrimarySharedKey, nil
}

// ResolveSharedKey waits for both the resource group and workspace names before looking
// up the workspace's primary shared key. The result is a secret.
func ResolveSharedKey(
	ctx *pulumi.Context,
	resourceGroupName, workspaceName pulumi.StringOutput,
	lookup SharedKeyLookup,
	policy RetryPolicy,
) pulumi.StringOutput {
	key := pulumi.All(resourceGroupName, workspaceName).ApplyT(func(args []interface{}) (string, error) {
		group := args[0].(string)
		workspace := args[1].(string)

		var primary string
		err := policy.Call(ctx.Context(), func() error {
			value, err := lookup(ctx, group, workspace)
			if err != nil {
				return err
			}
			primary = value
			return nil
		}, func(err error, attempt int) {
			_ = ctx.Log.Warn(fmt.Sprintf("shared key lookup for workspace %s failed on attempt %d: %v", workspace, attempt, err), nil)
		})
		if err != nil {
			return "", fmt.Errorf("failed to resolve shared key for workspace %s: %w", workspace, err)
		}
		return primary, nil
	}).(pulumi.StringOutput)

	return pulumi.ToSecret(key).(pulumi.StringOutput)
}
