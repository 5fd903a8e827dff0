package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

func (m Model) renderStatus() string {
	snap := m.snapshot
	s := m.styles

	target := snap.Target
	if target == "" {
		target = s.Muted.Render("not set")
	}

	var health string
	switch {
	case snap.Target == "":
		health = s.Muted.Render("idle")
	case snap.IsOffline():
		health = s.Danger.Render("offline")
	case snap.LastError != nil:
		health = s.Warning.Render("degraded")
	case snap.HasVersion:
		health = s.Success.Render("online")
	default:
		health = s.Muted.Render("unknown")
	}
	if snap.Pending > 0 {
		health += " " + m.spinner.View()
	}

	version := s.Muted.Render("-")
	if snap.HasVersion {
		version = s.Text.Render(fmt.Sprintf("%d", snap.Version))
	}

	rows := []string{
		s.Title.Render("herald"),
		m.row("Target", s.Text.Render(target)),
		m.row("Status", health),
		m.row("Protocol", version),
		m.row("Last sync", m.when(snap.LastSync)),
		m.row("Last notify", m.when(snap.LastNotify)),
	}
	if f := snap.LastError; f != nil {
		detail := fmt.Sprintf("%s: %s (%s)", f.Op, f.Reason, m.since(f.At))
		rows = append(rows, m.row("Last error", s.Danger.Render(detail)))
	}
	if m.flash != "" {
		rows = append(rows, s.Warning.Render(m.flash))
	}

	panel := s.Panel
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderCompose() string {
	s := m.styles
	rows := []string{
		s.Title.Render("New notification"),
		m.row("Title", m.inputs[fieldTitle].View()),
		m.row("Content", m.inputs[fieldContent].View()),
	}
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderCommandBar() string {
	bindings := m.keys.mainBindings()
	if m.composing {
		bindings = m.keys.composeBindings()
	}
	return renderBindings(m.styles, bindings)
}

func renderBindings(s Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, s.Key.Render(h.Key)+" "+s.Muted.Render(h.Desc))
	}
	return strings.Join(parts, s.Muted.Render("  "))
}

func (m Model) row(label, value string) string {
	return m.styles.Label.Render(label) + value
}

func (m Model) when(t time.Time) string {
	if t.IsZero() {
		return m.styles.Muted.Render("never")
	}
	return m.styles.Text.Render(t.Format("15:04:05")) + " " + m.styles.Muted.Render("("+m.since(t)+")")
}

func (m Model) since(t time.Time) string {
	return humanize.RelTime(t, m.now(), "ago", "from now")
}
