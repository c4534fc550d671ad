/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/acaenv/internal/deploy"
	"github.com/spf13/cobra"
)

var (
	// deployer can be injected for testing
	deployer deploy.Deployer
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy <environment>",
	Short: "Deploy an environment",
	Long: `Deploy an environment with integrated change preview and confirmation.

This command previews the program against the environment's stack and shows
how many resources would be created, updated, replaced or deleted. You will
be prompted to confirm before the changes are applied. When nothing would
change, the deployment is skipped.

After a successful deployment the stack outputs are printed, including the
managed environment's Id, Name and StaticIp.

Examples:
  acaenv deploy staging            # Deploy staging with a confirmation prompt
  acaenv deploy production --yes   # Deploy production without prompting
  acaenv deploy development -v     # Stream engine output while deploying`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environmentName := args[0]
		ctx := context.Background()

		env, err := resolveEnvironment(ctx, cmd, environmentName)
		if err != nil {
			return err
		}

		autoApprove, _ := cmd.Flags().GetBool("yes")
		d := getDeployer(deploy.Options{AutoApprove: autoApprove, Progress: progressWriter(cmd)})

		if err := d.DeployEnvironment(ctx, env); err != nil {
			return fmt.Errorf("error deploying environment %s: %w", environmentName, err)
		}
		return nil
	},
}

// getDeployer returns the deployer instance, creating a default one if none is set
func getDeployer(opts deploy.Options) deploy.Deployer {
	if deployer != nil {
		return deployer
	}

	return deploy.NewEnvironmentDeployer(getFactory(), opts)
}

// SetDeployer allows injection of a deployer (for testing)
func SetDeployer(d deploy.Deployer) {
	deployer = d
}

func init() {
	rootCmd.AddCommand(deployCmd)
	deployCmd.Flags().BoolP("yes", "y", false, "apply changes without prompting for confirmation")
}
