/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/orien/acaenv/internal/version"
	"github.com/spf13/cobra"
)

// DefaultConfigFile is read when --config is not given
const DefaultConfigFile = "acaenv.yaml"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "acaenv",
	Short: "A command-line tool for managing Azure Container Apps environments as code",
	Long: `acaenv declares an Azure Container Apps managed environment and its Log Analytics
workspace with Pulumi, and drives the engine for you:

• Declarative configuration in YAML files
• Environment-specific settings with template functions
• Change preview before every deployment
• Offline validation and Azure preflight checks
• Optional sidecar monitoring agent

Use acaenv to preview, deploy, describe and destroy the production, staging and
development environments with consistent, repeatable configurations.`,
	Version: version.Short(),
}

// RootCommand returns the root command for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.GitCommit),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfigFile, "configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (stream engine progress)")
}
