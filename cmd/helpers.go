/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/orien/acaenv/internal/config/file"
	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/infra"
	"github.com/orien/acaenv/internal/model"
	"github.com/orien/acaenv/internal/resolve"
	"github.com/spf13/cobra"
)

var (
	// factory can be injected for testing
	factory engine.Factory
)

// createResolver creates a configuration provider and resolver for a config file
func createResolver(configFile string) (*file.Provider, *resolve.EnvironmentResolver) {
	provider := file.NewProvider(configFile)
	resolver := resolve.NewEnvironmentResolver(provider)
	return provider, resolver
}

// resolveEnvironment resolves an environment from the config file named by --config
func resolveEnvironment(ctx context.Context, cmd *cobra.Command, environmentName string) (*model.Environment, error) {
	_, resolver := createResolver(configFileFlag(cmd))

	env, err := resolver.ResolveEnvironment(ctx, environmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve environment %s: %w", environmentName, err)
	}
	return env, nil
}

// getFactory returns the engine factory, creating one for the program if none is set
func getFactory() engine.Factory {
	if factory != nil {
		return factory
	}

	factory = engine.NewFactory(infra.Run)
	return factory
}

// SetFactory allows injection of an engine factory (for testing)
func SetFactory(f engine.Factory) {
	factory = f
}

// configFileFlag returns the value of --config
func configFileFlag(cmd *cobra.Command) string {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil || configFile == "" {
		return DefaultConfigFile
	}
	return configFile
}

// progressWriter returns where engine output is streamed, or nil unless --verbose is set
func progressWriter(cmd *cobra.Command) io.Writer {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return nil
	}
	return cmd.OutOrStdout()
}
