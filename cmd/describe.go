/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/acaenv/internal/describe"
	"github.com/spf13/cobra"
)

var (
	// describer can be injected for testing
	describer describe.Describer
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <environment>",
	Short: "Display detailed information about a deployed environment",
	Long: `Display comprehensive information about a deployed environment.

This command shows:

• Stack metadata (last update, resource count, backend URL)
• The resolved configuration, with secret values masked
• Stack outputs such as the managed environment's Id, Name and StaticIp

Examples:
  acaenv describe staging          # Show information about staging
  acaenv describe production       # Show information about production`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environmentName := args[0]
		ctx := context.Background()

		env, err := resolveEnvironment(ctx, cmd, environmentName)
		if err != nil {
			return err
		}

		desc, err := getDescriber().DescribeEnvironment(ctx, env)
		if err != nil {
			return fmt.Errorf("failed to describe environment %s: %w", environmentName, err)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), describe.FormatEnvironmentDescription(desc))
		return nil
	},
}

// getDescriber returns the describer instance, creating a default one if none is set
func getDescriber() describe.Describer {
	if describer != nil {
		return describer
	}

	describer = describe.NewEnvironmentDescriber(getFactory())
	return describer
}

// SetDescriber allows injection of a describer (for testing)
func SetDescriber(d describe.Describer) {
	describer = d
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
