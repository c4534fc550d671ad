/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockPrompter answers confirmation questions from testify expectations
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Confirm(message string) (bool, error) {
	args := m.Called(message)
	return args.Bool(0), args.Error(1)
}

// OnDeployment expects the deployment question for environment
func (m *MockPrompter) OnDeployment(environment string) *mock.Call {
	return m.On("Confirm", deploymentQuestion(environment))
}

// OnDestroy expects the destroy question for environment
func (m *MockPrompter) OnDestroy(environment string) *mock.Call {
	return m.On("Confirm", destroyQuestion(environment))
}

// UseMockPrompter installs a MockPrompter as the default prompter until the test ends
func UseMockPrompter(t testing.TB) *MockPrompter {
	t.Helper()

	original := GetDefaultPrompter()
	m := &MockPrompter{}
	SetPrompter(m)
	t.Cleanup(func() { SetPrompter(original) })
	return m
}
