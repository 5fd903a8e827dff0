package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Version):
		m.act("version", m.actions.RefreshVersion)
	case key.Matches(msg, m.keys.Sync):
		m.act("sync", m.actions.SyncTime)
	case key.Matches(msg, m.keys.Compose):
		return m.startCompose()
	}
	return m, nil
}

func (m Model) startCompose() (tea.Model, tea.Cmd) {
	m.composing = true
	m.flash = ""
	m.focusIdx = fieldTitle
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	cmd := m.inputs[fieldTitle].Focus()
	return m, cmd
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.composing = false
		return m, nil
	case key.Matches(msg, m.keys.Next):
		cmd := m.focus(1 - m.focusIdx)
		return m, cmd
	case key.Matches(msg, m.keys.Confirm):
		if m.focusIdx == fieldTitle {
			cmd := m.focus(fieldContent)
			return m, cmd
		}
		return m.send()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *Model) focus(idx int) tea.Cmd {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	return m.inputs[idx].Focus()
}

func (m Model) send() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.flash = "notify: title required"
		cmd := m.focus(fieldTitle)
		return m, cmd
	}
	content := m.inputs[fieldContent].Value()
	m.composing = false
	m.act("notify", func() error { return m.actions.Notify(title, content) })
	return m, nil
}
