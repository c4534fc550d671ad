/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/orien/acaenv/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withMockValidator(t *testing.T) *validate.MockValidator {
	t.Helper()
	mockValidator := &validate.MockValidator{}
	oldValidator := validator
	SetValidator(mockValidator)
	t.Cleanup(func() {
		SetValidator(oldValidator)
		_ = validateCmd.Flags().Set("preflight", "false")
	})
	return mockValidator
}

func TestValidateCommand_Exists(t *testing.T) {
	cmd := findCommand(rootCmd, "validate")

	require.NotNil(t, cmd)
	assert.Equal(t, "validate [environment]", cmd.Use)

	preflightFlag := cmd.Flags().Lookup("preflight")
	require.NotNil(t, preflightFlag)
	assert.Equal(t, "false", preflightFlag.DefValue)
}

func TestValidateCommand_SingleEnvironment(t *testing.T) {
	mockValidator := withMockValidator(t)
	mockValidator.On("ValidateEnvironment", mock.Anything, "staging").Return(nil)

	_, err := executeCommand("validate", "staging")

	require.NoError(t, err)
	mockValidator.AssertExpectations(t)
	mockValidator.AssertNotCalled(t, "ValidateAllEnvironments", mock.Anything)
}

func TestValidateCommand_AllEnvironments(t *testing.T) {
	mockValidator := withMockValidator(t)
	mockValidator.On("ValidateAllEnvironments", mock.Anything).Return(nil)

	_, err := executeCommand("validate")

	require.NoError(t, err)
	mockValidator.AssertExpectations(t)
}

func TestValidateCommand_PropagatesError(t *testing.T) {
	mockValidator := withMockValidator(t)
	mockValidator.On("ValidateEnvironment", mock.Anything, "production").Return(errors.New("missing required configuration: resource-group"))

	_, err := executeCommand("validate", "production")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource-group")
}

func TestValidateCommand_TooManyArgs(t *testing.T) {
	mockValidator := withMockValidator(t)

	_, err := executeCommand("validate", "staging", "production")

	require.Error(t, err)
	mockValidator.AssertNotCalled(t, "ValidateEnvironment", mock.Anything, mock.Anything)
}

func TestGetValidator_Default(t *testing.T) {
	oldValidator := validator
	SetValidator(nil)
	defer SetValidator(oldValidator)

	v := getValidator(createTempConfig(t, testConfig), false)

	_, ok := v.(*validate.EnvironmentValidator)
	assert.True(t, ok, "default validator should be an EnvironmentValidator")
}

func TestValidateCommand_OfflineEndToEnd(t *testing.T) {
	oldValidator := validator
	SetValidator(nil)
	defer SetValidator(oldValidator)

	_, err := executeCommand("validate", "--config", createTempConfig(t, testConfig))

	require.NoError(t, err)
}
