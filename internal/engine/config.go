/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package engine

import (
	"fmt"

	"github.com/orien/acaenv/internal/model"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
)

// Provider config keys
const (
	ProviderPlugin          = "azure-native"
	ProviderLocationKey     = ProviderPlugin + ":location"
	ProviderSubscriptionKey = ProviderPlugin + ":subscriptionId"
)

// BuildConfigMap converts an environment into namespaced stack configuration.
// Program keys are namespaced by project; location and subscription configure the provider.
func BuildConfigMap(env *model.Environment) auto.ConfigMap {
	cfg := make(auto.ConfigMap, len(env.Config)+2)

	for _, key := range env.ConfigKeys() {
		cfg[ProjectKey(env.Project, key)] = auto.ConfigValue{
			Value:  env.Config[key],
			Secret: env.IsSecret(key),
		}
	}

	if env.Location != "" {
		cfg[ProviderLocationKey] = auto.ConfigValue{Value: env.Location}
	}
	if env.SubscriptionID != "" {
		cfg[ProviderSubscriptionKey] = auto.ConfigValue{Value: env.SubscriptionID}
	}

	return cfg
}

// ProjectKey namespaces a program config key by project
func ProjectKey(project, key string) string {
	return fmt.Sprintf("%s:%s", project, key)
}
