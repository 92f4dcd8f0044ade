// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     tui
// Description: Shared colors and console styles
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
)

// Theme bundles the console styles bound to one output. Styles rendered for a
// writer that is not a terminal come out as plain text.
type Theme struct {
	Value   lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates the styles for renderer r
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Value:   r.NewStyle().Foreground(ColorSecondary),
		Label:   r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(ColorSecondary),
		Error:   r.NewStyle().Foreground(ColorError),
		Muted:   r.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}

// ThemeFor creates a theme whose color profile matches w
func ThemeFor(w io.Writer) Theme {
	return NewTheme(lipgloss.NewRenderer(w))
}

// RenderError formats an error message for the console
func (t Theme) RenderError(msg string) string {
	return t.Error.Render("Error: " + msg)
}

// RenderLabel formats "label: value"
func (t Theme) RenderLabel(label, value string) string {
	return t.Label.Render(label+":") + " " + t.Value.Render(value)
}
