/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/stretchr/testify/mock"
)

// MockPreflight implements Preflight for testing
type MockPreflight struct {
	mock.Mock
}

func (m *MockPreflight) Check(ctx context.Context, subscriptionID, resourceGroup string) (*PreflightResult, error) {
	args := m.Called(ctx, subscriptionID, resourceGroup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PreflightResult), args.Error(1)
}

// MockCredential implements azcore.TokenCredential for testing
type MockCredential struct {
	mock.Mock
}

func (m *MockCredential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	args := m.Called(ctx, options)
	return args.Get(0).(azcore.AccessToken), args.Error(1)
}

// MockResourceGroupChecker implements ResourceGroupChecker for testing
type MockResourceGroupChecker struct {
	mock.Mock
}

func (m *MockResourceGroupChecker) CheckExistence(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientCheckExistenceOptions) (armresources.ResourceGroupsClientCheckExistenceResponse, error) {
	args := m.Called(ctx, resourceGroupName, options)
	return args.Get(0).(armresources.ResourceGroupsClientCheckExistenceResponse), args.Error(1)
}
