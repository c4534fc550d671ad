/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Module paths of the engine libraries reported by Info
const (
	PulumiSDKModule   = "github.com/pulumi/pulumi/sdk/v3"
	AzureNativeModule = "github.com/pulumi/pulumi-azure-native-sdk/app/v2"
)

// Build-time variables (populated via -ldflags during build)
var (
	// Version is the semantic version of acaenv (e.g., "v1.0.0" or "1.0.0+a1b2c3d")
	Version = "dev"

	// GitCommit is the short git commit hash (e.g., "a1b2c3d")
	GitCommit = "unknown"

	// BuildDate is when the binary was built (e.g., "2025-01-27 14:30:45 UTC")
	BuildDate = "unknown"
)

// Runtime variables (determined at runtime)
var (
	// GoVersion is the Go compiler version used to build the binary
	GoVersion = runtime.Version()

	// Platform is the operating system and architecture (e.g., "linux/amd64")
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

	// PulumiSDK is the engine SDK version linked into the binary
	PulumiSDK = DependencyVersion(PulumiSDKModule)

	// AzureNative is the azure-native SDK version the program was compiled against
	AzureNative = DependencyVersion(AzureNativeModule)
)

// Info returns formatted version information for display to users
func Info() string {
	return fmt.Sprintf(`acaenv %s
  Git commit:   %s
  Build date:   %s
  Go version:   %s
  Platform:     %s
  Pulumi SDK:   %s
  Azure Native: %s`, Version, GitCommit, BuildDate, GoVersion, Platform, PulumiSDK, AzureNative)
}

// Short returns just the version string without additional metadata
func Short() string {
	return Version
}

// DependencyVersion returns the version of a module linked into the binary, or "unknown"
func DependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return findDependency(info.Deps, path)
}

func findDependency(deps []*debug.Module, path string) string {
	for _, dep := range deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}
	return "unknown"
}
