/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"sync"

	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const (
	typeResourceGroup      = "azure-native:resources:ResourceGroup"
	typeWorkspace          = "azure-native:operationalinsights:Workspace"
	typeManagedEnvironment = "azure-native:app:ManagedEnvironment"
	typeRegistry           = "azure-native:containerregistry:Registry"
	typeContainerApp       = "azure-native:app:ContainerApp"

	tokenGetSharedKeys           = "azure-native:operationalinsights:getSharedKeys"
	tokenListRegistryCredentials = "azure-native:containerregistry:listRegistryCredentials"
)

type timeouts struct {
	Create string
	Update string
	Delete string
}

// azureMocks records every registration and invoke made by a program
type azureMocks struct {
	mu        sync.Mutex
	order     []string
	resources map[string]resource.PropertyMap
	timeouts  map[string]timeouts
	calls     []pulumi.MockCallArgs
}

func newAzureMocks() *azureMocks {
	return &azureMocks{
		resources: make(map[string]resource.PropertyMap),
		timeouts:  make(map[string]timeouts),
	}
}

func (m *azureMocks) NewResource(args pulumi.MockResourceArgs) (string, resource.PropertyMap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if args.TypeToken == "pulumi:pulumi:Stack" {
		return args.Name, resource.PropertyMap{}, nil
	}

	m.order = append(m.order, args.TypeToken)
	m.resources[args.TypeToken] = args.Inputs
	if args.RegisterRPC != nil {
		t := args.RegisterRPC.GetCustomTimeouts()
		m.timeouts[args.TypeToken] = timeouts{Create: t.GetCreate(), Update: t.GetUpdate(), Delete: t.GetDelete()}
	}

	outputs := args.Inputs.Copy()
	switch args.TypeToken {
	case typeResourceGroup:
		outputs["name"] = args.Inputs["resourceGroupName"]
	case typeWorkspace:
		outputs["name"] = args.Inputs["workspaceName"]
		outputs["customerId"] = resource.NewStringProperty("customer-0001")
	case typeManagedEnvironment:
		outputs["name"] = args.Inputs["environmentName"]
		outputs["staticIp"] = resource.NewStringProperty("20.1.2.3")
	case typeRegistry:
		outputs["name"] = args.Inputs["registryName"]
		outputs["loginServer"] = resource.NewStringProperty(args.Inputs["registryName"].StringValue() + ".azurecr.io")
	case typeContainerApp:
		outputs["name"] = args.Inputs["containerAppName"]
		outputs["latestRevisionFqdn"] = resource.NewStringProperty("agent.internal.example.azurecontainerapps.io")
		outputs["latestRevisionName"] = resource.NewStringProperty("agent--rev1")
	}

	return args.Name + "-id", outputs, nil
}

func (m *azureMocks) Call(args pulumi.MockCallArgs) (resource.PropertyMap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, args)

	switch args.Token {
	case tokenGetSharedKeys:
		return resource.PropertyMap{
			"primarySharedKey":   resource.NewStringProperty("primary-key"),
			"secondarySharedKey": resource.NewStringProperty("secondary-key"),
		}, nil
	case tokenListRegistryCredentials:
		return resource.PropertyMap{
			"username": resource.NewStringProperty("admin"),
			"passwords": resource.NewArrayProperty([]resource.PropertyValue{
				resource.NewObjectProperty(resource.PropertyMap{
					"name":  resource.NewStringProperty("password"),
					"value": resource.NewStringProperty("registry-secret"),
				}),
			}),
		}, nil
	}
	return resource.PropertyMap{}, nil
}

func (m *azureMocks) inputs(typeToken string) resource.PropertyMap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resources[typeToken]
}

func (m *azureMocks) registered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

func (m *azureMocks) invokes(token string) []pulumi.MockCallArgs {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found []pulumi.MockCallArgs
	for _, call := range m.calls {
		if call.Token == token {
			found = append(found, call)
		}
	}
	return found
}

// plain strips secret and output wrappers from a recorded property
func plain(v resource.PropertyValue) resource.PropertyValue {
	for {
		switch {
		case v.IsSecret():
			v = v.SecretValue().Element
		case v.IsOutput():
			v = v.OutputValue().Element
		default:
			return v
		}
	}
}

// lookup walks nested object properties
func lookup(props resource.PropertyMap, path ...string) resource.PropertyValue {
	var v resource.PropertyValue
	for i, key := range path {
		v = plain(props[resource.PropertyKey(key)])
		if i < len(path)-1 {
			if !v.IsObject() {
				return resource.PropertyValue{}
			}
			props = v.ObjectValue()
		}
	}
	return v
}
