package customizer

import "github.com/charmbracelet/lipgloss"

var labelStyle = lipgloss.NewStyle().Width(22)
