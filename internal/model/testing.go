/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

// NewTestEnvironment creates an Environment for testing purposes
func NewTestEnvironment(name string) *Environment {
	return &Environment{
		Name:     name,
		Project:  "acaenv",
		Location: "westeurope",
		Config: map[string]string{
			"resource-group":      "rg-" + name,
			"logs-retention-days": "30",
		},
	}
}

// NewDefaultTestEnvironment creates an Environment with default test values
func NewDefaultTestEnvironment() *Environment {
	return NewTestEnvironment("staging")
}
