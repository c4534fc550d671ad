/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package azure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func managementScope() interface{} {
	return mock.MatchedBy(func(opts policy.TokenRequestOptions) bool {
		return len(opts.Scopes) == 1 && opts.Scopes[0] == ManagementScope
	})
}

func newTestPreflight(credential *MockCredential, checker *MockResourceGroupChecker) *DefaultPreflight {
	return NewPreflightWith(
		func() (azcore.TokenCredential, error) { return credential, nil },
		func(subscriptionID string, _ azcore.TokenCredential) (ResourceGroupChecker, error) {
			return checker, nil
		},
	)
}

func TestDefaultPreflight_Check(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "resource group exists", exists: true},
		{name: "resource group will be created", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			credential := &MockCredential{}
			credential.On("GetToken", ctx, managementScope()).
				Return(azcore.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil)

			checker := &MockResourceGroupChecker{}
			checker.On("CheckExistence", ctx, "rg1", (*armresources.ResourceGroupsClientCheckExistenceOptions)(nil)).
				Return(armresources.ResourceGroupsClientCheckExistenceResponse{Success: tt.exists}, nil)

			result, err := newTestPreflight(credential, checker).Check(ctx, "sub-1", "rg1")

			require.NoError(t, err)
			assert.Equal(t, &PreflightResult{
				SubscriptionID:      "sub-1",
				ResourceGroup:       "rg1",
				ResourceGroupExists: tt.exists,
			}, result)
			credential.AssertExpectations(t)
			checker.AssertExpectations(t)
		})
	}
}

func TestDefaultPreflight_Check_RequiresSubscription(t *testing.T) {
	preflight := newTestPreflight(&MockCredential{}, &MockResourceGroupChecker{})

	result, err := preflight.Check(context.Background(), "", "rg1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoSubscription)
}

func TestDefaultPreflight_Check_TokenFailure(t *testing.T) {
	ctx := context.Background()
	credential := &MockCredential{}
	credential.On("GetToken", ctx, managementScope()).
		Return(azcore.AccessToken{}, errors.New("no credential in chain"))
	checker := &MockResourceGroupChecker{}

	result, err := newTestPreflight(credential, checker).Check(ctx, "sub-1", "rg1")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire Azure management token")
	checker.AssertNotCalled(t, "CheckExistence", mock.Anything, mock.Anything, mock.Anything)
}

func TestDefaultPreflight_Check_CredentialFailure(t *testing.T) {
	preflight := NewPreflightWith(
		func() (azcore.TokenCredential, error) { return nil, errors.New("misconfigured") },
		NewResourceGroupChecker,
	)

	_, err := preflight.Check(context.Background(), "sub-1", "rg1")

	assert.ErrorContains(t, err, "failed to create Azure credential")
}

func TestDefaultPreflight_Check_LookupFailure(t *testing.T) {
	ctx := context.Background()
	credential := &MockCredential{}
	credential.On("GetToken", ctx, managementScope()).Return(azcore.AccessToken{Token: "token"}, nil)

	checker := &MockResourceGroupChecker{}
	checker.On("CheckExistence", ctx, "rg1", mock.Anything).
		Return(armresources.ResourceGroupsClientCheckExistenceResponse{}, errors.New("403 forbidden"))

	_, err := newTestPreflight(credential, checker).Check(ctx, "sub-1", "rg1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check resource group rg1")
	assert.Contains(t, err.Error(), "403 forbidden")
}
