/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter defines the interface for user prompting
type Prompter interface {
	Confirm(message string) (bool, error)
}

// StdinPrompter implements Prompter using standard input
type StdinPrompter struct {
	input  io.Reader
	output io.Writer
}

// NewStdinPrompter creates a new prompter that reads from stdin
func NewStdinPrompter() *StdinPrompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// NewPrompter creates a prompter reading answers from input and writing questions to output
func NewPrompter(input io.Reader, output io.Writer) *StdinPrompter {
	return &StdinPrompter{input: input, output: output}
}

// Confirm asks a yes/no question. Anything other than y or yes is a no.
func (p *StdinPrompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.output, "\n%s [y/N]: ", message)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}
		// EOF or empty input - treat as "no"
		return false, nil
	}

	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "y" || response == "yes", nil
}

// defaultPrompter is the package-level default prompter
var defaultPrompter Prompter = NewStdinPrompter()

// SetPrompter allows injection of a custom prompter (for testing)
func SetPrompter(p Prompter) {
	defaultPrompter = p
}

// GetDefaultPrompter returns the current default prompter (for testing)
func GetDefaultPrompter() Prompter {
	return defaultPrompter
}

// Confirm asks the default prompter a yes/no question
func Confirm(message string) (bool, error) {
	return defaultPrompter.Confirm(message)
}

// ConfirmDeployment asks whether previewed changes should be applied to an environment
func ConfirmDeployment(environment string) (bool, error) {
	return Confirm(deploymentQuestion(environment))
}

// ConfirmDestroy asks whether every resource of an environment should be destroyed
func ConfirmDestroy(environment string) (bool, error) {
	return Confirm(destroyQuestion(environment))
}

func deploymentQuestion(environment string) string {
	return fmt.Sprintf("Do you want to apply these changes to environment %s?", environment)
}

func destroyQuestion(environment string) string {
	return fmt.Sprintf("Do you want to destroy environment %s? This cannot be undone.", environment)
}
