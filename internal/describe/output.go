/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/orien/acaenv/internal/engine"
)

// SecretMask replaces secret values in output
const SecretMask = "[secret]"

// FormatEnvironmentDescription formats environment information for display
func FormatEnvironmentDescription(desc *EnvironmentDescription) string {
	var output strings.Builder

	// Summary section
	output.WriteString(fmt.Sprintf("Environment: %s\n", desc.Name))
	if desc.Stack != "" && desc.Stack != desc.Name {
		output.WriteString(fmt.Sprintf("Stack: %s\n", desc.Stack))
	}
	if desc.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", desc.Location))
	}
	if desc.SubscriptionID != "" {
		output.WriteString(fmt.Sprintf("Subscription: %s\n", desc.SubscriptionID))
	}
	output.WriteString(fmt.Sprintf("Resources: %d\n", desc.ResourceCount))

	if desc.UpdateInProgress {
		output.WriteString("Status: update in progress\n")
	}

	if desc.LastUpdate != nil {
		output.WriteString(fmt.Sprintf("Last update: %s\n", formatTime(*desc.LastUpdate)))
	}

	if desc.URL != "" {
		output.WriteString(fmt.Sprintf("URL: %s\n", desc.URL))
	}

	// Config section
	if len(desc.Config) > 0 {
		output.WriteString("\nConfig:\n")
		writeKeyValueMap(&output, desc.Config)
	}

	// Outputs section
	if len(desc.Outputs) > 0 {
		output.WriteString("\nOutputs:\n")
		output.WriteString(FormatOutputs(desc.Outputs))
	}

	return output.String()
}

// FormatOutputs formats stack outputs as indented key-value pairs, masking secrets
func FormatOutputs(outputs engine.Outputs) string {
	values := make(map[string]string, len(outputs))
	for key, output := range outputs {
		if output.Secret {
			values[key] = SecretMask
			continue
		}
		values[key] = formatValue(output.Value)
	}

	var b strings.Builder
	writeKeyValueMap(&b, values)
	return b.String()
}

// formatValue renders scalars as-is and structured values as JSON
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool, int, int64, float64:
		return fmt.Sprint(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}

// formatTime formats time in a human-readable format
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// writeKeyValueMap writes a sorted map as key-value pairs with indentation
func writeKeyValueMap(output *strings.Builder, m map[string]string) {
	if len(m) == 0 {
		return
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(output, "  %s: %s\n", key, m[key])
	}
}
