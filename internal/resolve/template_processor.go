/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateProcessor defines the interface for rendering templated config values
type TemplateProcessor interface {
	Process(templateContent string, variables map[string]interface{}) (string, error)
}

// SettingTemplateProcessor implements TemplateProcessor using Go's text/template with Sprig functions
type SettingTemplateProcessor struct{}

// NewSettingTemplateProcessor creates a new config value template processor
func NewSettingTemplateProcessor() *SettingTemplateProcessor {
	return &SettingTemplateProcessor{}
}

// Process renders a config value with the provided variables. Referencing an unknown
// variable is an error.
func (tp *SettingTemplateProcessor) Process(templateContent string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("setting").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
