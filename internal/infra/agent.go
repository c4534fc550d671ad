/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"fmt"

	"github.com/orien/acaenv/internal/options"
	"github.com/pulumi/pulumi-azure-native-sdk/app/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Sidecar agent sizing. The agent always runs as exactly one replica.
const (
	AgentContainerName = "datadog-agent"
	AgentTargetPort    = 8126
	AgentCPU           = 0.5
	AgentMemory        = "0.5Gi"
	AgentReplicas      = 1

	registryPasswordSecret = "registry-password"
	apiKeySecret           = "datadog-api-key"
)

// AgentAppName returns the name of the agent container app
func AgentAppName(environment options.Environment) string {
	return fmt.Sprintf("%s-datadog-agent", environment)
}

// RegistryAccess tells the agent app where to pull its image from
type RegistryAccess struct {
	Server   pulumi.StringPtrInput
	Username pulumi.StringPtrInput
	Password pulumi.StringPtrInput
}

// AgentApp is the declared sidecar agent with its externally useful outputs
type AgentApp struct {
	Resource *app.ContainerApp
	URL      pulumi.StringOutput
	Revision pulumi.StringOutput
}

// NewAgentAppArgs maps options to the arguments of the agent container app. The app is
// only reachable from inside the managed environment.
func NewAgentAppArgs(
	opts *options.Options,
	resourceGroupName pulumi.StringInput,
	environmentID pulumi.StringPtrInput,
	registry *RegistryAccess,
) *app.ContainerAppArgs {
	env := app.EnvironmentVarArray{
		&app.EnvironmentVarArgs{Name: pulumi.String("DD_APM_ENABLED"), Value: pulumi.String("true")},
		&app.EnvironmentVarArgs{Name: pulumi.String("DD_APM_NON_LOCAL_TRAFFIC"), Value: pulumi.String("true")},
		&app.EnvironmentVarArgs{Name: pulumi.String("DD_ENV"), Value: pulumi.String(opts.Environment.String())},
	}

	var secrets app.SecretArray
	var registries app.RegistryCredentialsArray

	if registry != nil {
		secrets = append(secrets, &app.SecretArgs{
			Name:  pulumi.String(registryPasswordSecret),
			Value: registry.Password,
		})
		registries = append(registries, &app.RegistryCredentialsArgs{
			Server:            registry.Server,
			Username:          registry.Username,
			PasswordSecretRef: pulumi.String(registryPasswordSecret),
		})
	}

	if opts.Agent.APIKey != nil {
		secrets = append(secrets, &app.SecretArgs{
			Name:  pulumi.String(apiKeySecret),
			Value: opts.Agent.APIKey.ToStringOutput(),
		})
		env = append(env, &app.EnvironmentVarArgs{
			Name:      pulumi.String("DD_API_KEY"),
			SecretRef: pulumi.String(apiKeySecret),
		})
	}

	configuration := &app.ConfigurationArgs{
		Ingress: &app.IngressArgs{
			External:   pulumi.Bool(false),
			TargetPort: pulumi.Int(AgentTargetPort),
		},
	}
	if len(registries) > 0 {
		configuration.Registries = registries
	}
	if len(secrets) > 0 {
		configuration.Secrets = secrets
	}

	return &app.ContainerAppArgs{
		ContainerAppName:     pulumi.String(AgentAppName(opts.Environment)),
		ResourceGroupName:    resourceGroupName,
		ManagedEnvironmentId: environmentID,
		Configuration:        configuration,
		Template: &app.TemplateArgs{
			Containers: app.ContainerArray{
				&app.ContainerArgs{
					Name:  pulumi.String(AgentContainerName),
					Image: pulumi.String(opts.Agent.Image),
					Resources: &app.ContainerResourcesArgs{
						Cpu:    pulumi.Float64(AgentCPU),
						Memory: pulumi.String(AgentMemory),
					},
					Env: env,
				},
			},
			Scale: &app.ScaleArgs{
				MinReplicas: pulumi.Int(AgentReplicas),
				MaxReplicas: pulumi.Int(AgentReplicas),
			},
		},
		Tags: pulumi.ToStringMap(opts.Tags()),
	}
}

// NewAgentApp declares the sidecar monitoring agent inside the managed environment
func NewAgentApp(
	ctx *pulumi.Context,
	opts *options.Options,
	resourceGroupName pulumi.StringInput,
	environment *app.ManagedEnvironment,
	registry *RegistryAccess,
) (*AgentApp, error) {
	name := AgentAppName(opts.Environment)

	args := NewAgentAppArgs(opts, resourceGroupName, environment.ID().ToStringOutput(), registry)
	containerApp, err := app.NewContainerApp(ctx, name, args)
	if err != nil {
		return nil, fmt.Errorf("failed to declare agent app %s: %w", name, err)
	}

	return &AgentApp{
		Resource: containerApp,
		URL:      pulumi.Sprintf("https://%s", containerApp.LatestRevisionFqdn),
		Revision: containerApp.LatestRevisionName,
	}, nil
}
