/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/orien/acaenv/internal/azure"
	"github.com/orien/acaenv/internal/config"
	"github.com/orien/acaenv/internal/options"
	"github.com/orien/acaenv/internal/resolve"
)

// Validator checks that environments resolve to a valid program configuration
type Validator interface {
	ValidateEnvironment(ctx context.Context, environmentName string) error
	ValidateAllEnvironments(ctx context.Context) error
}

// EnvironmentValidator implements the Validator interface
type EnvironmentValidator struct {
	configProvider config.ConfigProvider
	resolver       resolve.Resolver
	preflight      azure.Preflight
	output         io.Writer
}

// NewEnvironmentValidator creates a new validator. A nil preflight skips the Azure checks.
func NewEnvironmentValidator(
	configProvider config.ConfigProvider,
	resolver resolve.Resolver,
	preflight azure.Preflight,
) *EnvironmentValidator {
	return &EnvironmentValidator{
		configProvider: configProvider,
		resolver:       resolver,
		preflight:      preflight,
		output:         os.Stdout,
	}
}

// SetOutput replaces the writer results are printed to
func (v *EnvironmentValidator) SetOutput(w io.Writer) {
	v.output = w
}

// ValidateEnvironment validates a single environment
func (v *EnvironmentValidator) ValidateEnvironment(ctx context.Context, environmentName string) error {
	v.printf("Validating environment '%s'...\n", environmentName)

	result := v.validateEnvironment(ctx, environmentName)
	if !result.Valid {
		v.printf("\n✗ Validation failed for environment '%s'\n", environmentName)
		v.printf("  Error: %v\n", result.Err)
		return result.Err
	}

	v.printf("\n✓ Environment '%s' is valid\n", environmentName)
	v.printDetails(result)
	return nil
}

// ValidateAllEnvironments validates the config file and then every environment in it
func (v *EnvironmentValidator) ValidateAllEnvironments(ctx context.Context) error {
	if err := v.configProvider.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	environmentNames, err := v.configProvider.ListEnvironments()
	if err != nil {
		return fmt.Errorf("failed to list environments: %w", err)
	}

	if len(environmentNames) == 0 {
		v.printf("No environments defined\n")
		return nil
	}

	v.printf("Validating %d environment(s)...\n\n", len(environmentNames))

	results := make([]ValidationResult, 0, len(environmentNames))
	hasErrors := false

	for _, name := range environmentNames {
		v.printf("→ Validating '%s'... ", name)

		result := v.validateEnvironment(ctx, name)
		if result.Valid {
			v.printf("✓\n")
		} else {
			v.printf("✗\n")
			hasErrors = true
		}
		results = append(results, result)
	}

	v.printSummary(results)

	if hasErrors {
		return fmt.Errorf("validation failed for one or more environments")
	}

	return nil
}

// validateEnvironment resolves an environment and loads its program options
func (v *EnvironmentValidator) validateEnvironment(ctx context.Context, environmentName string) ValidationResult {
	result := ValidationResult{EnvironmentName: environmentName}

	env, err := v.resolver.ResolveEnvironment(ctx, environmentName)
	if err != nil {
		result.Err = fmt.Errorf("failed to resolve environment: %w", err)
		return result
	}

	opts, err := options.Load(options.NewMapSource(env.StackName(), env.Config))
	if err != nil {
		result.Err = err
		return result
	}
	result.Options = opts

	if v.preflight != nil {
		preflight, err := v.preflight.Check(ctx, env.SubscriptionID, opts.ResourceGroup)
		if err != nil {
			result.Err = fmt.Errorf("preflight check failed: %w", err)
			return result
		}
		result.Preflight = preflight
	}

	result.Valid = true
	return result
}

// printDetails prints what a valid environment will declare
func (v *EnvironmentValidator) printDetails(result ValidationResult) {
	opts := result.Options
	v.printf("  Resource group: %s\n", opts.ResourceGroup)
	v.printf("  Log retention:  %d days\n", opts.LogsRetentionDays)
	if opts.Agent.Enabled {
		v.printf("  Agent:          enabled (registry %s, image %s)\n", opts.Agent.RegistryName, opts.Agent.Image)
	} else {
		v.printf("  Agent:          disabled\n")
	}

	if result.Preflight != nil {
		if result.Preflight.ResourceGroupExists {
			v.printf("  Preflight:      resource group exists in subscription %s\n", result.Preflight.SubscriptionID)
		} else {
			v.printf("  Preflight:      resource group will be created in subscription %s\n", result.Preflight.SubscriptionID)
		}
	}
}

// printSummary prints validation results summary
func (v *EnvironmentValidator) printSummary(results []ValidationResult) {
	v.printf("\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	v.printf("Validation Summary\n")
	v.printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")

	validCount := 0
	invalidCount := 0

	for _, result := range results {
		if result.Valid {
			validCount++
			v.printf("✓ %s\n", result.EnvironmentName)
		} else {
			invalidCount++
			v.printf("✗ %s\n", result.EnvironmentName)
			v.printf("  Error: %v\n", result.Err)
		}
	}

	v.printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	v.printf("Total:   %d\n", len(results))
	v.printf("Valid:   %d\n", validCount)
	v.printf("Invalid: %d\n", invalidCount)

	if invalidCount == 0 {
		v.printf("\n✓ All environments are valid\n")
	} else {
		v.printf("\n✗ Some environments failed validation\n")
	}
}

func (v *EnvironmentValidator) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(v.output, format, args...)
}

// ValidationResult contains the outcome of a single environment validation
type ValidationResult struct {
	EnvironmentName string
	Valid           bool
	Err             error
	Options         *options.Options
	Preflight       *azure.PreflightResult
}
