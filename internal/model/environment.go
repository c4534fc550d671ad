/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import "sort"

// Environment represents a fully resolved environment ready for the engine
type Environment struct {
	Name            string
	Project         string
	Backend         string
	SecretsProvider string
	ProviderVersion string
	Location        string
	SubscriptionID  string
	Config          map[string]string
	SecretKeys      []string
}

// StackName returns the engine stack that holds this environment
func (e *Environment) StackName() string {
	return e.Name
}

// IsSecret reports whether the named config key is stored encrypted
func (e *Environment) IsSecret(key string) bool {
	for _, k := range e.SecretKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ConfigKeys returns the config keys in sorted order
func (e *Environment) ConfigKeys() []string {
	keys := make([]string, 0, len(e.Config))
	for k := range e.Config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
