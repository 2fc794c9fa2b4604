package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the main view. Form views use the
// standard textinput bindings plus tab/enter/escape handled in the model.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Tab switching.
	TabFamily        key.Binding
	TabSchemes       key.Binding
	TabNotifications key.Binding
	NextTab          key.Binding

	// Actions.
	CheckEligibility key.Binding // Schemes tab.
	Apply            key.Binding // Schemes tab, selected row.
	MarkRead         key.Binding // Notifications tab, selected row.
	Refresh          key.Binding
	Logout           key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style navigation alongside
// arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	TabFamily: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "family"),
	),
	TabSchemes: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "schemes"),
	),
	TabNotifications: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "notifications"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	CheckEligibility: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "check eligibility"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	MarkRead: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "mark read"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "log out"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
