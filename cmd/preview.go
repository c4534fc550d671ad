/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/acaenv/internal/preview"
	"github.com/spf13/cobra"
)

var (
	// previewer can be injected for testing
	previewer preview.Previewer
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <environment>",
	Short: "Show the changes a deployment would make",
	Long: `Preview the changes deploying an environment would make, without applying them.

The summary counts resources by operation (create, update, replace, delete
and unchanged). Use --verbose to stream the engine's detailed preview.

Examples:
  acaenv preview staging           # Summarise pending changes to staging
  acaenv preview production -v     # Include the engine's resource-level output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environmentName := args[0]
		ctx := context.Background()

		env, err := resolveEnvironment(ctx, cmd, environmentName)
		if err != nil {
			return err
		}

		p := getPreviewer(preview.Options{Progress: progressWriter(cmd)})
		if _, err := p.PreviewEnvironment(ctx, env); err != nil {
			return fmt.Errorf("error previewing environment %s: %w", environmentName, err)
		}
		return nil
	},
}

// getPreviewer returns the previewer instance, creating a default one if none is set
func getPreviewer(opts preview.Options) preview.Previewer {
	if previewer != nil {
		return previewer
	}

	return preview.NewEnvironmentPreviewer(getFactory(), opts)
}

// SetPreviewer allows injection of a previewer (for testing)
func SetPreviewer(p preview.Previewer) {
	previewer = p
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
