/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// ConfigSource gives the options loader access to the active stack and its configuration
type ConfigSource interface {
	// StackName returns the name of the active stack
	StackName() string

	// Get returns the value of a project-scoped configuration key
	Get(key string) (string, bool)

	// GetSecret returns the value of a project-scoped configuration key wrapped as a secret
	GetSecret(key string) (pulumi.StringOutput, bool)
}

// PulumiSource reads configuration from a running Pulumi program
type PulumiSource struct {
	stack  string
	config *config.Config
}

// NewPulumiSource creates a source for the project namespace of ctx
func NewPulumiSource(ctx *pulumi.Context) *PulumiSource {
	return &PulumiSource{
		stack:  ctx.Stack(),
		config: config.New(ctx, ""),
	}
}

func (s *PulumiSource) StackName() string {
	return s.stack
}

func (s *PulumiSource) Get(key string) (string, bool) {
	value, err := s.config.Try(key)
	if err != nil {
		return "", false
	}
	return value, true
}

// GetSecret reads key without unwrapping it, so the engine never sees the plain value
func (s *PulumiSource) GetSecret(key string) (pulumi.StringOutput, bool) {
	value, err := s.config.TrySecret(key)
	if err != nil {
		return pulumi.StringOutput{}, false
	}
	return value, true
}

// MapSource is a ConfigSource backed by a plain map
type MapSource struct {
	Stack  string
	Values map[string]string
}

// NewMapSource creates a MapSource for the given stack name and values
func NewMapSource(stack string, values map[string]string) *MapSource {
	return &MapSource{Stack: stack, Values: values}
}

func (s *MapSource) StackName() string {
	return s.Stack
}

func (s *MapSource) Get(key string) (string, bool) {
	value, ok := s.Values[key]
	return value, ok
}

func (s *MapSource) GetSecret(key string) (pulumi.StringOutput, bool) {
	value, ok := s.Values[key]
	if !ok {
		return pulumi.StringOutput{}, false
	}
	return pulumi.ToSecret(pulumi.String(value)).(pulumi.StringOutput), true
}
