/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"

	"github.com/orien/acaenv/internal/azure"
	"github.com/orien/acaenv/internal/validate"
	"github.com/spf13/cobra"
)

var (
	// validator can be injected for testing
	validator validate.Validator
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [environment]",
	Short: "Validate environment configuration",
	Long: `Validate that environments resolve to a complete program configuration.

Settings are rendered from the configuration file and checked exactly as the
program would read them: the environment name must be production, staging or
development, resource-group and logs-retention-days must be set, and
registry-name is required when enable-agent is true. No engine is contacted.

With --preflight, Azure credentials are acquired and the target resource
group is looked up in the environment's subscription.

If no environment is given, the configuration file and every environment in
it are validated.

Examples:
  acaenv validate                      # Validate every environment
  acaenv validate staging              # Validate a single environment
  acaenv validate production --preflight`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		withPreflight, _ := cmd.Flags().GetBool("preflight")
		v := getValidator(configFileFlag(cmd), withPreflight)

		if len(args) > 0 {
			return v.ValidateEnvironment(ctx, args[0])
		}
		return v.ValidateAllEnvironments(ctx)
	},
}

// getValidator returns the validator instance, creating a default one if none is set
func getValidator(configFile string, withPreflight bool) validate.Validator {
	if validator != nil {
		return validator
	}

	provider, resolver := createResolver(configFile)
	if withPreflight {
		return validate.NewEnvironmentValidator(provider, resolver, azure.NewPreflight())
	}
	return validate.NewEnvironmentValidator(provider, resolver, nil)
}

// SetValidator allows injection of a validator (for testing)
func SetValidator(v validate.Validator) {
	validator = v
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("preflight", false, "check Azure credentials and the target resource group")
}
