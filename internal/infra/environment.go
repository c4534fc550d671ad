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

// LogsDestination routes the environment's application logs to log analytics
const LogsDestination = "log-analytics"

// OperationTimeout applies to create, update and delete of the managed environment
const OperationTimeout = "5m"

// EnvironmentTimeouts returns the custom timeouts of the managed environment
func EnvironmentTimeouts() *pulumi.CustomTimeouts {
	return &pulumi.CustomTimeouts{
		Create: OperationTimeout,
		Update: OperationTimeout,
		Delete: OperationTimeout,
	}
}

// LogAnalytics carries the workspace credentials forwarded to the managed environment
type LogAnalytics struct {
	CustomerID pulumi.StringPtrInput
	SharedKey  pulumi.StringPtrInput
}

// NewManagedEnvironmentArgs maps options and workspace credentials to the managed environment arguments
func NewManagedEnvironmentArgs(opts *options.Options, resourceGroupName pulumi.StringInput, logs LogAnalytics) *app.ManagedEnvironmentArgs {
	return &app.ManagedEnvironmentArgs{
		EnvironmentName:   pulumi.String(opts.Environment.String()),
		ResourceGroupName: resourceGroupName,
		AppLogsConfiguration: &app.AppLogsConfigurationArgs{
			Destination: pulumi.String(LogsDestination),
			LogAnalyticsConfiguration: &app.LogAnalyticsConfigurationArgs{
				CustomerId: logs.CustomerID,
				SharedKey:  logs.SharedKey,
			},
		},
		Tags: pulumi.ToStringMap(opts.Tags()),
	}
}

// NewManagedEnvironment declares the container apps environment named after the environment
func NewManagedEnvironment(
	ctx *pulumi.Context,
	opts *options.Options,
	resourceGroupName pulumi.StringInput,
	logs LogAnalytics,
) (*app.ManagedEnvironment, error) {
	name := opts.Environment.String()

	environment, err := app.NewManagedEnvironment(ctx, name,
		NewManagedEnvironmentArgs(opts, resourceGroupName, logs),
		pulumi.Timeouts(EnvironmentTimeouts()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare managed environment %s: %w", name, err)
	}
	return environment, nil
}
