package utils

import "github.com/charmbracelet/lipgloss"

// Styles of the CLI status lines.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	BannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
