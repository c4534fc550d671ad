/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package preview

import (
	"testing"

	"github.com/orien/acaenv/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult_NewEnvironment(t *testing.T) {
	result := &Result{
		Environment: "staging",
		Stack:       "staging",
		Changes:     engine.ChangeSummary{"create": 3},
	}

	got := FormatResult(result, NewStyles(false))

	expected := "Environment: staging\n" +
		"\n" +
		"Changes:\n" +
		"  +  create   3\n" +
		"\n" +
		"3 resource(s) in total\n"
	assert.Equal(t, expected, got)
}

func TestFormatResult_MixedChanges(t *testing.T) {
	result := &Result{
		Environment: "production",
		Stack:       "production",
		Changes:     engine.ChangeSummary{"same": 2, "update": 1, "replace": 1, "delete": 1},
	}

	got := FormatResult(result, NewStyles(false))

	expected := "Environment: production\n" +
		"\n" +
		"Changes:\n" +
		"  ~  update   1\n" +
		"  +- replace  1\n" +
		"  -  delete   1\n" +
		"     same     2\n" +
		"\n" +
		"5 resource(s) in total\n"
	assert.Equal(t, expected, got)
}

func TestFormatResult_NoChanges(t *testing.T) {
	result := &Result{
		Environment: "development",
		Stack:       "development",
		Changes:     engine.ChangeSummary{"same": 3},
	}

	got := FormatResult(result, NewStyles(false))

	assert.Equal(t, "Environment: development\n\nNo changes\n3 resource(s) unchanged\n", got)
}

func TestFormatResult_StackShownWhenDifferent(t *testing.T) {
	result := &Result{
		Environment: "staging",
		Stack:       "org/acaenv/staging",
		Changes:     engine.ChangeSummary{},
	}

	got := FormatResult(result, NewStyles(false))

	assert.Contains(t, got, "Stack: org/acaenv/staging\n")
	assert.Contains(t, got, "No changes\n")
	assert.NotContains(t, got, "unchanged")
}

func TestFormatResult_UnknownOperationSymbol(t *testing.T) {
	result := &Result{
		Environment: "staging",
		Changes:     engine.ChangeSummary{"import": 1},
	}

	got := FormatResult(result, NewStyles(false))

	assert.Contains(t, got, "  ?  import   1\n")
}

func TestShouldUseColour_NoColour(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")

	assert.False(t, ShouldUseColour())
}

func TestShouldUseColour_DumbTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")

	assert.False(t, ShouldUseColour())
}

func TestNewStyles_Plain(t *testing.T) {
	styles := NewStyles(false)

	assert.False(t, styles.UseColour())
	assert.Equal(t, "create", styles.OperationStyle(OpCreate).Render("create"))
	assert.Equal(t, "other", styles.OperationStyle("other").Render("other"))
}
