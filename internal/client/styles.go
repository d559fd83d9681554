package client

import "github.com/charmbracelet/lipgloss"

var (
	okMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	docIDStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)
