package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// alertModal blocks the view until dismissed. It never touches the deck.
type alertModal struct {
	title   string
	message string
	width   int
	box     lipglossv2.Style
}

func newAlertModal(title, message string, termW, termH int) *alertModal {
	m := &alertModal{title: title, message: message}
	m.resizeForTerm(termW, termH)
	return m
}

func (m *alertModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := min(60, termW-4)
	if w < 24 {
		w = max(20, termW-2)
	}
	m.width = w
	m.box = lipglossv2.NewStyle().
		Width(w).
		Padding(1, 2).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("204"))
}

// dismiss reports whether msg closes the alert.
func (m *alertModal) dismiss(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", "esc", " ", "q":
		return true
	}
	return false
}

func (m *alertModal) View() string {
	title := lipglossv2.NewStyle().Bold(true).Foreground(lipglossv2.Color("204")).Render(m.title)
	hint := lipglossv2.NewStyle().Foreground(lipglossv2.Color("241")).Render("enter to dismiss")
	return m.box.Render(title + "\n\n" + m.message + "\n\n" + hint)
}
