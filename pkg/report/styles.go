// pkg/report/styles.go
package report

import "github.com/charmbracelet/lipgloss"

var (
	// labelStyle renders the summary labels and the "Version:" tag
	labelStyle = lipgloss.NewStyle().
			Bold(true)

	// headerStyle renders the per-source section headings
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	// Package names are colored by the source they came from
	pacmanStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4"))

	aurStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))

	flatpakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))
)
