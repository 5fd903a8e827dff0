package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Global
	Quit key.Binding

	// Device actions
	Version key.Binding
	Sync    key.Binding
	Compose key.Binding

	// Compose form
	Next    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Version: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "version"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync time"),
		),
		Compose: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notify"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// mainBindings are shown in the command bar outside compose mode.
func (k keyMap) mainBindings() []key.Binding {
	return []key.Binding{k.Version, k.Sync, k.Compose, k.Quit}
}

// composeBindings are shown while composing a notification.
func (k keyMap) composeBindings() []key.Binding {
	return []key.Binding{k.Next, k.Confirm, k.Cancel}
}
