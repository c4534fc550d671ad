/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Command program is the Pulumi program run by `pulumi up` from the project root.
package main

import (
	"github.com/orien/acaenv/internal/infra"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

func main() {
	pulumi.Run(infra.Run)
}
