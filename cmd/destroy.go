/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/acaenv/internal/destroy"
	"github.com/spf13/cobra"
)

var (
	// destroyer can be injected for testing
	destroyer destroy.Destroyer
)

// destroyCmd represents the destroy command
var destroyCmd = &cobra.Command{
	Use:   "destroy <environment>",
	Short: "Destroy every resource of an environment",
	Long: `Destroy the managed environment, its Log Analytics workspace and resource group.

The command shows the stack's resource count and prompts for confirmation
before destroying anything. Environments without resources are skipped.
The stack and its history are kept.

Examples:
  acaenv destroy development         # Destroy development with a confirmation prompt
  acaenv destroy staging --yes       # Destroy staging without prompting`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environmentName := args[0]
		ctx := context.Background()

		env, err := resolveEnvironment(ctx, cmd, environmentName)
		if err != nil {
			return err
		}

		autoApprove, _ := cmd.Flags().GetBool("yes")
		d := getDestroyer(destroy.Options{AutoApprove: autoApprove, Progress: progressWriter(cmd)})

		if err := d.DestroyEnvironment(ctx, env); err != nil {
			return fmt.Errorf("error destroying environment %s: %w", environmentName, err)
		}
		return nil
	},
}

// getDestroyer returns the destroyer instance, creating a default one if none is set
func getDestroyer(opts destroy.Options) destroy.Destroyer {
	if destroyer != nil {
		return destroyer
	}

	return destroy.NewEnvironmentDestroyer(getFactory(), opts)
}

// SetDestroyer allows injection of a destroyer (for testing)
func SetDestroyer(d destroy.Destroyer) {
	destroyer = d
}

func init() {
	rootCmd.AddCommand(destroyCmd)
	destroyCmd.Flags().BoolP("yes", "y", false, "destroy without prompting for confirmation")
}
