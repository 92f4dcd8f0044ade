// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     entry
// Description: Styles for the value entry form
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package entry

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/numlab/internal/tui"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.ColorPrimary).
			MarginBottom(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tui.ColorPrimary).
			Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(tui.ColorAccent)

	ListStyle = lipgloss.NewStyle().
			Foreground(tui.ColorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(tui.ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(tui.ColorMuted).
			MarginTop(1)
)
