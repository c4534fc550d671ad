/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package preview

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
)

// Styles contains the styles used to render a change summary
type Styles struct {
	// Header styles
	HeaderTitle lipgloss.Style
	HeaderValue lipgloss.Style

	// Status styles
	StatusChanges  lipgloss.Style
	StatusNoChange lipgloss.Style

	// Operation styles
	Create  lipgloss.Style
	Update  lipgloss.Style
	Replace lipgloss.Style
	Delete  lipgloss.Style
	Same    lipgloss.Style
	Other   lipgloss.Style

	// Content styles
	Key    lipgloss.Style
	Count  lipgloss.Style
	Subtle lipgloss.Style

	useColour bool
}

// NewStyles creates styles from Fang's colour scheme so the summary matches the
// help and error output.
//
// Colour mapping:
//   - Title        -> header titles
//   - Flag         -> creates
//   - Command      -> updates and the changes status
//   - Argument     -> replaces, keys
//   - ErrorDetails -> deletes
//   - Comment      -> unchanged resources, subtle text
func NewStyles(useColour bool) *Styles {
	plain := lipgloss.NewStyle()
	s := &Styles{
		useColour:      useColour,
		HeaderTitle:    plain,
		HeaderValue:    plain,
		StatusChanges:  plain,
		StatusNoChange: plain,
		Create:         plain,
		Update:         plain,
		Replace:        plain,
		Delete:         plain,
		Same:           plain,
		Other:          plain,
		Key:            plain,
		Count:          plain,
		Subtle:         plain,
	}

	if !useColour {
		return s
	}

	hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	scheme := fang.DefaultColorScheme(lipgloss.LightDark(hasDark))

	s.HeaderTitle = lipgloss.NewStyle().Bold(true).Foreground(scheme.Title)
	s.HeaderValue = lipgloss.NewStyle().Foreground(scheme.Base)

	s.StatusChanges = lipgloss.NewStyle().Foreground(scheme.Command).Bold(true)
	s.StatusNoChange = lipgloss.NewStyle().Foreground(scheme.Comment).Bold(true)

	s.Create = lipgloss.NewStyle().Foreground(scheme.Flag).Bold(true)
	s.Update = lipgloss.NewStyle().Foreground(scheme.Command).Bold(true)
	s.Replace = lipgloss.NewStyle().Foreground(scheme.Argument).Bold(true)
	s.Delete = lipgloss.NewStyle().Foreground(scheme.ErrorDetails).Bold(true)
	s.Same = lipgloss.NewStyle().Foreground(scheme.Comment)
	s.Other = lipgloss.NewStyle().Foreground(scheme.Base)

	s.Key = lipgloss.NewStyle().Foreground(scheme.Argument)
	s.Count = lipgloss.NewStyle().Foreground(scheme.Base).Bold(true)
	s.Subtle = lipgloss.NewStyle().Foreground(scheme.Comment)

	return s
}

// UseColour reports whether the styles emit colour
func (s *Styles) UseColour() bool {
	return s.useColour
}

// OperationStyle returns the style for an engine operation
func (s *Styles) OperationStyle(op string) lipgloss.Style {
	switch op {
	case OpCreate:
		return s.Create
	case OpUpdate:
		return s.Update
	case OpReplace:
		return s.Replace
	case OpDelete:
		return s.Delete
	case OpSame:
		return s.Same
	default:
		return s.Other
	}
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
