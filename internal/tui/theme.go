package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles for every rendered element.
type Theme struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Selected    lipgloss.Style
	Eligible    lipgloss.Style
	NotEligible lipgloss.Style
	Applied     lipgloss.Style
	Unread      lipgloss.Style
	Error       lipgloss.Style
	Notice      lipgloss.Style
	Help        lipgloss.Style
	Pane        lipgloss.Style
}

// DefaultTheme uses the standard ANSI palette so it degrades cleanly on
// 16-color terminals.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		TabActive:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("6")),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:       lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		Eligible:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		NotEligible: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Applied:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Unread:      lipgloss.NewStyle().Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Pane:        lipgloss.NewStyle().Padding(0, 1),
	}
}
