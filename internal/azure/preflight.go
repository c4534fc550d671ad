/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package azure checks that an environment can be deployed before the engine is invoked.
package azure

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ManagementScope is the token scope for Azure Resource Manager
const ManagementScope = "https://management.azure.com/.default"

// ErrNoSubscription is returned when a preflight check has no subscription to check against
var ErrNoSubscription = errors.New("subscription id is required for preflight checks")

// ResourceGroupChecker is the subset of the resource groups client used by preflight checks
type ResourceGroupChecker interface {
	CheckExistence(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientCheckExistenceOptions) (armresources.ResourceGroupsClientCheckExistenceResponse, error)
}

// Ensure that the SDK client implements our interface
var _ ResourceGroupChecker = (*armresources.ResourceGroupsClient)(nil)

// Preflight checks the cloud side of an environment
type Preflight interface {
	Check(ctx context.Context, subscriptionID, resourceGroup string) (*PreflightResult, error)
}

// PreflightResult reports what the preflight check found
type PreflightResult struct {
	SubscriptionID      string
	ResourceGroup       string
	ResourceGroupExists bool
}

// CredentialFunc returns the credential used for preflight checks
type CredentialFunc func() (azcore.TokenCredential, error)

// CheckerFunc builds a resource group checker for a subscription
type CheckerFunc func(subscriptionID string, credential azcore.TokenCredential) (ResourceGroupChecker, error)

// DefaultPreflight implements Preflight using the Azure SDK
type DefaultPreflight struct {
	credential CredentialFunc
	checker    CheckerFunc
}

// NewPreflight creates a preflight checker using the default Azure credential chain
// (environment, workload identity, managed identity, Azure CLI)
func NewPreflight() *DefaultPreflight {
	return NewPreflightWith(DefaultCredential, NewResourceGroupChecker)
}

// NewPreflightWith creates a preflight checker with custom credential and client constructors
func NewPreflightWith(credential CredentialFunc, checker CheckerFunc) *DefaultPreflight {
	return &DefaultPreflight{
		credential: credential,
		checker:    checker,
	}
}

// DefaultCredential returns the default Azure credential chain
func DefaultCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

// NewResourceGroupChecker creates a resource groups client for the subscription
func NewResourceGroupChecker(subscriptionID string, credential azcore.TokenCredential) (ResourceGroupChecker, error) {
	return armresources.NewResourceGroupsClient(subscriptionID, credential, nil)
}

// Check acquires a management token and checks whether the resource group exists.
// A missing resource group is not an error: the program creates it.
func (p *DefaultPreflight) Check(ctx context.Context, subscriptionID, resourceGroup string) (*PreflightResult, error) {
	if subscriptionID == "" {
		return nil, ErrNoSubscription
	}

	credential, err := p.credential()
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	if _, err := credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{ManagementScope}}); err != nil {
		return nil, fmt.Errorf("failed to acquire Azure management token: %w", err)
	}

	groups, err := p.checker(subscriptionID, credential)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}

	response, err := groups.CheckExistence(ctx, resourceGroup, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check resource group %s: %w", resourceGroup, err)
	}

	return &PreflightResult{
		SubscriptionID:      subscriptionID,
		ResourceGroup:       resourceGroup,
		ResourceGroupExists: response.Success,
	}, nil
}
