/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"errors"
	"fmt"

	"github.com/orien/acaenv/internal/options"
	"github.com/pulumi/pulumi-azure-native-sdk/containerregistry/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// RegistrySku is the pricing tier of the agent's container registry
const RegistrySku = "Basic"

// ErrNoRegistryPassword is returned when a registry reports no admin password
var ErrNoRegistryPassword = errors.New("registry returned no admin password")

// RegistryCredentials are the admin credentials of a container registry
type RegistryCredentials struct {
	Username string
	Password string
}

// CredentialsLookup fetches the admin credentials of a container registry
type CredentialsLookup func(ctx *pulumi.Context, resourceGroupName, registryName string) (*RegistryCredentials, error)

// LookupRegistryCredentials lists the registry's admin credentials and keeps the first password
func LookupRegistryCredentials(ctx *pulumi.Context, resourceGroupName, registryName string) (*RegistryCredentials, error) {
	result, err := containerregistry.ListRegistryCredentials(ctx, &containerregistry.ListRegistryCredentialsArgs{
		ResourceGroupName: resourceGroupName,
		RegistryName:      registryName,
	})
	if err != nil {
		return nil, err
	}

	creds := &RegistryCredentials{}
	if result.Username != nil {
		creds.Username = *result.Username
	}
	if len(result.Passwords) == 0 || result.Passwords[0].Value == nil {
		return nil, ErrNoRegistryPassword
	}
	creds.Password = *result.Passwords[0].Value
	return creds, nil
}

// Registry is a declared container registry together with its admin credentials
type Registry struct {
	Resource    *containerregistry.Registry
	LoginServer pulumi.StringOutput
	Username    pulumi.StringOutput
	Password    pulumi.StringOutput
}

// NewRegistryArgs maps options to the registry arguments
func NewRegistryArgs(opts *options.Options, resourceGroupName pulumi.StringInput) *containerregistry.RegistryArgs {
	return &containerregistry.RegistryArgs{
		RegistryName:      pulumi.String(opts.Agent.RegistryName),
		ResourceGroupName: resourceGroupName,
		Sku: &containerregistry.SkuArgs{
			Name: pulumi.String(RegistrySku),
		},
		AdminUserEnabled: pulumi.Bool(true),
		Tags:             pulumi.ToStringMap(opts.Tags()),
	}
}

// NewRegistry declares the container registry and resolves its admin credentials once
// both the registry and resource group names are known
func NewRegistry(
	ctx *pulumi.Context,
	opts *options.Options,
	resourceGroupName pulumi.StringOutput,
	lookup CredentialsLookup,
	policy RetryPolicy,
) (*Registry, error) {
	name := opts.Agent.RegistryName

	registry, err := containerregistry.NewRegistry(ctx, name, NewRegistryArgs(opts, resourceGroupName))
	if err != nil {
		return nil, fmt.Errorf("failed to declare registry %s: %w", name, err)
	}

	creds := pulumi.All(resourceGroupName, registry.Name).ApplyT(func(args []interface{}) (map[string]string, error) {
		group := args[0].(string)
		registryName := args[1].(string)

		var found *RegistryCredentials
		err := policy.Call(ctx.Context(), func() error {
			value, err := lookup(ctx, group, registryName)
			if err != nil {
				return err
			}
			found = value
			return nil
		}, func(err error, attempt int) {
			_ = ctx.Log.Warn(fmt.Sprintf("credential lookup for registry %s failed on attempt %d: %v", registryName, attempt, err), nil)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list credentials of registry %s: %w", registryName, err)
		}
		return map[string]string{"username": found.Username, "password": found.Password}, nil
	}).(pulumi.StringMapOutput)
	creds = pulumi.ToSecret(creds).(pulumi.StringMapOutput)

	return &Registry{
		Resource:    registry,
		LoginServer: registry.LoginServer,
		Username:    creds.MapIndex(pulumi.String("username")),
		Password:    creds.MapIndex(pulumi.String("password")),
	}, nil
}
