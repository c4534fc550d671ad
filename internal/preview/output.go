/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package preview

import (
	"fmt"
	"strings"
)

// symbols prefixes each operation in the summary
var symbols = map[string]string{
	OpCreate:  "+",
	OpUpdate:  "~",
	OpReplace: "+-",
	OpDelete:  "-",
	OpSame:    " ",
}

// FormatResult renders a change summary for display
func FormatResult(result *Result, styles *Styles) string {
	var b strings.Builder

	b.WriteString(styles.HeaderTitle.Render("Environment:"))
	b.WriteString(" ")
	b.WriteString(styles.HeaderValue.Render(result.Environment))
	b.WriteString("\n")

	if result.Stack != "" && result.Stack != result.Environment {
		b.WriteString(styles.HeaderTitle.Render("Stack:"))
		b.WriteString(" ")
		b.WriteString(styles.HeaderValue.Render(result.Stack))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !result.HasChanges() {
		b.WriteString(styles.StatusNoChange.Render("No changes"))
		b.WriteString("\n")
		if unchanged := result.Changes[OpSame]; unchanged > 0 {
			b.WriteString(styles.Subtle.Render(fmt.Sprintf("%d resource(s) unchanged", unchanged)))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(styles.StatusChanges.Render("Changes:"))
	b.WriteString("\n")

	for _, op := range result.Operations() {
		symbol, ok := symbols[op]
		if !ok {
			symbol = "?"
		}
		style := styles.OperationStyle(op)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			style.Render(fmt.Sprintf("%-2s", symbol)),
			styles.Key.Render(fmt.Sprintf("%-8s", op)),
			styles.Count.Render(fmt.Sprintf("%d", result.Changes[op])),
		))
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(fmt.Sprintf("%d resource(s) in total", result.Total())))
	b.WriteString("\n")

	return b.String()
}
