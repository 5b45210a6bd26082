// Package theme centralizes the lipgloss styles used by the wizard.
package theme

import "github.com/charmbracelet/lipgloss"

// HeadingStyle is used for step titles.
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// StatusStyle is used for secondary labels and hints.
func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
}

// ErrorStyle is used for inline validation errors.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
}

// WarningStyle is used for soft policy warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
}

// SelectedStyle highlights the focused list row.
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
}
