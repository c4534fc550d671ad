/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"fmt"

	"github.com/orien/acaenv/internal/options"
	"github.com/pulumi/pulumi-azure-native-sdk/app/v2"
	"github.com/pulumi/pulumi-azure-native-sdk/operationalinsights/v2"
	"github.com/pulumi/pulumi-azure-native-sdk/resources/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Stack output names
const (
	OutputID                   = "Id"
	OutputName                 = "Name"
	OutputStaticIP             = "StaticIp"
	OutputDatadogAgentURL      = "DatadogAgentUrl"
	OutputDatadogAgentRevision = "DatadogAgentRevision"
)

// Dependencies are the remote lookups made while the program runs
type Dependencies struct {
	SharedKeys  SharedKeyLookup
	Credentials CredentialsLookup
	Retry       func(attempts int) RetryPolicy
}

// DefaultDependencies looks up keys and credentials from Azure
func DefaultDependencies() Dependencies {
	return Dependencies{
		SharedKeys:  LookupPrimarySharedKey,
		Credentials: LookupRegistryCredentials,
		Retry:       NewRetryPolicy,
	}
}

// Stack holds every resource declared for one environment
type Stack struct {
	ResourceGroup *resources.ResourceGroup
	Workspace     *operationalinsights.Workspace
	Environment   *app.ManagedEnvironment
	Registry      *Registry
	Agent         *AgentApp
}

// NewStack declares the environment's resources in dependency order:
// resource group, workspace, shared key, managed environment and, when enabled,
// the registry and sidecar agent.
func NewStack(ctx *pulumi.Context, opts *options.Options, deps Dependencies) (*Stack, error) {
	policy := deps.Retry(opts.SharedKeyAttempts)

	group, err := NewResourceGroup(ctx, opts)
	if err != nil {
		return nil, err
	}

	workspace, err := NewWorkspace(ctx, opts, group.Name)
	if err != nil {
		return nil, err
	}

	sharedKey := ResolveSharedKey(ctx, group.Name, workspace.Name, deps.SharedKeys, policy)

	environment, err := NewManagedEnvironment(ctx, opts, group.Name, LogAnalytics{
		CustomerID: workspace.CustomerId,
		SharedKey:  sharedKey,
	})
	if err != nil {
		return nil, err
	}

	stack := &Stack{
		ResourceGroup: group,
		Workspace:     workspace,
		Environment:   environment,
	}

	if !opts.Agent.Enabled {
		return stack, nil
	}

	stack.Registry, err = NewRegistry(ctx, opts, group.Name, deps.Credentials, policy)
	if err != nil {
		return nil, err
	}

	stack.Agent, err = NewAgentApp(ctx, opts, group.Name, environment, &RegistryAccess{
		Server:   stack.Registry.LoginServer,
		Username: stack.Registry.Username,
		Password: stack.Registry.Password,
	})
	if err != nil {
		return nil, err
	}

	return stack, nil
}

// Outputs returns the stack outputs keyed by export name. The agent outputs are
// only present when the agent is declared.
func (s *Stack) Outputs() pulumi.Map {
	outputs := pulumi.Map{
		OutputID:       s.Environment.ID().ToStringOutput(),
		OutputName:     s.Environment.Name,
		OutputStaticIP: s.Environment.StaticIp,
	}
	if s.Agent != nil {
		outputs[OutputDatadogAgentURL] = s.Agent.URL
		outputs[OutputDatadogAgentRevision] = s.Agent.Revision
	}
	return outputs
}

// Export publishes the stack outputs
func (s *Stack) Export(ctx *pulumi.Context) {
	for name, value := range s.Outputs() {
		ctx.Export(name, value)
	}
}

// Program returns the Pulumi program declaring one environment
func Program(deps Dependencies) pulumi.RunFunc {
	return func(ctx *pulumi.Context) error {
		opts, err := options.Load(options.NewPulumiSource(ctx))
		if err != nil {
			return fmt.Errorf("failed to load options for stack %s: %w", ctx.Stack(), err)
		}

		_ = ctx.Log.Info(fmt.Sprintf("declaring %s environment in resource group %s", opts.Environment, opts.ResourceGroup), nil)

		stack, err := NewStack(ctx, opts, deps)
		if err != nil {
			return err
		}

		stack.Export(ctx)
		return nil
	}
}

// Run is the program with the default dependencies
func Run(ctx *pulumi.Context) error {
	return Program(DefaultDependencies())(ctx)
}
