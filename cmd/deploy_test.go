/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/orien/acaenv/internal/deploy"
	"github.com/orien/acaenv/internal/engine"
	"github.com/orien/acaenv/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withMockDeployer(t *testing.T) *deploy.MockDeployer {
	t.Helper()
	mockDeployer := &deploy.MockDeployer{}
	oldDeployer := deployer
	SetDeployer(mockDeployer)
	t.Cleanup(func() {
		SetDeployer(oldDeployer)
		_ = deployCmd.Flags().Set("yes", "false")
	})
	return mockDeployer
}

func TestDeployCommand_Exists(t *testing.T) {
	cmd := findCommand(rootCmd, "deploy")

	require.NotNil(t, cmd, "deploy command should be registered")
	assert.Equal(t, "deploy <environment>", cmd.Use)
	assert.NotNil(t, cmd.Args, "deploy command should have Args validation set")

	yesFlag := cmd.Flags().Lookup("yes")
	require.NotNil(t, yesFlag)
	assert.Equal(t, "y", yesFlag.Shorthand)
	assert.Equal(t, "false", yesFlag.DefValue)
}

func TestDeployCommand_RequiresEnvironment(t *testing.T) {
	mockDeployer := withMockDeployer(t)

	_, err := executeCommand("deploy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
	mockDeployer.AssertNotCalled(t, "DeployEnvironment", mock.Anything, mock.Anything)
}

func TestDeployCommand_DeploysResolvedEnvironment(t *testing.T) {
	mockDeployer := withMockDeployer(t)
	mockDeployer.On("DeployEnvironment", mock.Anything, mock.MatchedBy(func(env *model.Environment) bool {
		return env.Name == "staging" &&
			env.Project == "acaenv" &&
			env.Location == "westeurope" &&
			env.Config["resource-group"] == "rg-staging-apps" &&
			env.Config["logs-retention-days"] == "30"
	})).Return(nil)

	_, err := executeCommand("deploy", "staging", "--config", createTempConfig(t, testConfig))

	require.NoError(t, err)
	mockDeployer.AssertExpectations(t)
}

func TestDeployCommand_HandlesDeployerError(t *testing.T) {
	mockDeployer := withMockDeployer(t)
	mockDeployer.On("DeployEnvironment", mock.Anything, mock.Anything).Return(errors.New("deployment failed"))

	_, err := executeCommand("deploy", "production", "--config", createTempConfig(t, testConfig))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error deploying environment production")
	assert.Contains(t, err.Error(), "deployment failed")
}

func TestDeployCommand_UnknownEnvironment(t *testing.T) {
	mockDeployer := withMockDeployer(t)

	_, err := executeCommand("deploy", "development", "--config", createTempConfig(t, testConfig))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve environment development")
	mockDeployer.AssertNotCalled(t, "DeployEnvironment", mock.Anything, mock.Anything)
}

func TestDeployCommand_MissingConfigFile(t *testing.T) {
	mockDeployer := withMockDeployer(t)

	_, err := executeCommand("deploy", "staging", "--config", "does-not-exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
	mockDeployer.AssertNotCalled(t, "DeployEnvironment", mock.Anything, mock.Anything)
}

func TestGetDeployer_Default(t *testing.T) {
	oldDeployer := deployer
	oldFactory := factory
	SetDeployer(nil)
	SetFactory(&engine.MockFactory{})
	defer func() {
		SetDeployer(oldDeployer)
		SetFactory(oldFactory)
	}()

	d := getDeployer(deploy.Options{AutoApprove: true})

	_, ok := d.(*deploy.EnvironmentDeployer)
	assert.True(t, ok, "default deployer should be an EnvironmentDeployer")
}

func TestSetDeployer(t *testing.T) {
	mockDeployer := &deploy.MockDeployer{}
	oldDeployer := deployer
	defer SetDeployer(oldDeployer)

	SetDeployer(mockDeployer)

	assert.Same(t, mockDeployer, getDeployer(deploy.Options{}))
}
