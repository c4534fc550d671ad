/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package options loads the immutable settings of one container apps environment
// from a stack's configuration.
package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Configuration keys read by Load
const (
	KeyResourceGroup     = "resource-group"
	KeyLogsRetentionDays = "logs-retention-days"
	KeyRegistryName      = "registry-name"
	KeyEnableAgent       = "enable-agent"
	KeyAgentImage        = "agent-image"
	KeyDatadogAPIKey     = "datadog-api-key"
	KeySharedKeyAttempts = "shared-key-attempts"
)

const (
	// DefaultAgentImage is the sidecar agent image used when agent-image is not set
	DefaultAgentImage = "datadog/agent:7"

	// DefaultSharedKeyAttempts bounds the shared key lookup when shared-key-attempts is not set
	DefaultSharedKeyAttempts = 5
)

var (
	// ErrInvalidEnvironment is returned when the stack name is not an allowed environment
	ErrInvalidEnvironment = errors.New("invalid environment name")

	// ErrMissingConfig is returned when a required configuration key is not set
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrInvalidValue is returned when a configuration value cannot be parsed
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Environment names one of the allowed deployment environments
type Environment string

const (
	Production  Environment = "production"
	Staging     Environment = "staging"
	Development Environment = "development"
)

// Environments returns the allowed environments
func Environments() []Environment {
	return []Environment{Production, Staging, Development}
}

// ParseEnvironment lower-cases name and checks it against the allowed environments
func ParseEnvironment(name string) (Environment, error) {
	candidate := Environment(strings.ToLower(name))
	for _, env := range Environments() {
		if candidate == env {
			return env, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of production, staging, development)", ErrInvalidEnvironment, name)
}

func (e Environment) String() string {
	return string(e)
}

// AgentOptions configures the sidecar monitoring agent and its registry
type AgentOptions struct {
	Enabled      bool
	RegistryName string
	Image        string
	// APIKey is nil when no key is configured
	APIKey       pulumi.StringInput
}

// Options is the validated configuration of one stack
type Options struct {
	ResourceGroup     string
	Environment       Environment
	LogsRetentionDays int
	SharedKeyAttempts int
	Agent             AgentOptions
}

// Tags returns the tags every declared resource carries
func (o *Options) Tags() map[string]string {
	return map[string]string{"environment": o.Environment.String()}
}

// Load validates the stack name and reads the required keys from src.
// Either a fully populated Options is returned or an error; no defaults are
// substituted for required keys.
func Load(src ConfigSource) (*Options, error) {
	// by convention only production, staging and development are accepted
	environment, err := ParseEnvironment(src.StackName())
	if err != nil {
		return nil, err
	}

	resourceGroup, err := require(src, KeyResourceGroup)
	if err != nil {
		return nil, err
	}

	retention, err := requireInt(src, KeyLogsRetentionDays)
	if err != nil {
		return nil, err
	}

	attempts, err := optionalInt(src, KeySharedKeyAttempts, DefaultSharedKeyAttempts)
	if err != nil {
		return nil, err
	}
	if attempts < 1 {
		return nil, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidValue, KeySharedKeyAttempts, attempts)
	}

	agent, err := loadAgent(src)
	if err != nil {
		return nil, err
	}

	return &Options{
		ResourceGroup:     resourceGroup,
		Environment:       environment,
		LogsRetentionDays: retention,
		SharedKeyAttempts: attempts,
		Agent:             agent,
	}, nil
}

// loadAgent reads the agent settings; registry-name becomes required once the agent is enabled
func loadAgent(src ConfigSource) (AgentOptions, error) {
	enabled, err := optionalBool(src, KeyEnableAgent, false)
	if err != nil {
		return AgentOptions{}, err
	}

	agent := AgentOptions{
		Enabled: enabled,
		Image:   DefaultAgentImage,
	}
	if image, ok := src.Get(KeyAgentImage); ok && image != "" {
		agent.Image = image
	}
	if key, ok := src.GetSecret(KeyDatadogAPIKey); ok {
		agent.APIKey = key
	}

	if !enabled {
		if name, ok := src.Get(KeyRegistryName); ok {
			agent.RegistryName = name
		}
		return agent, nil
	}

	agent.RegistryName, err = require(src, KeyRegistryName)
	if err != nil {
		return AgentOptions{}, err
	}
	return agent, nil
}

func require(src ConfigSource, key string) (string, error) {
	value, ok := src.Get(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingConfig, key)
	}
	return value, nil
}

func requireInt(src ConfigSource, key string) (int, error) {
	raw, err := require(src, key)
	if err != nil {
		return 0, err
	}
	return parseInt(key, raw)
}

func optionalInt(src ConfigSource, key string, fallback int) (int, error) {
	raw, ok := src.Get(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	return parseInt(key, raw)
}

func optionalBool(src ConfigSource, key string, fallback bool) (bool, error) {
	raw, ok := src.Get(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidValue, key, raw)
	}
	return value, nil
}

func parseInt(key, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, key, raw)
	}
	return value, nil
}
