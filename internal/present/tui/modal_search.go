package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/mithrel/flipdeck/internal/deck"
)

const searchLimit = 8

// searchModal fuzzy-finds a card by its front and jumps to it.
type searchModal struct {
	input    textinput.Model
	cards    []deck.Card
	matches  []deck.Match
	selected int
	width    int
	box      lipglossv2.Style
}

func newSearchModal(cards []deck.Card, termW, termH int) *searchModal {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search card fronts"
	ti.Focus()
	m := &searchModal{input: ti, cards: cards}
	m.refresh()
	m.resizeForTerm(termW, termH)
	return m
}

func (m *searchModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := int(float64(termW) * 0.6)
	if termW < 80 {
		w = termW - 4
	}
	if w < 30 {
		w = max(26, termW-2)
	}
	if w > 90 {
		w = 90
	}
	m.width = w
	m.input.Width = w - 8
	m.box = lipglossv2.NewStyle().
		Width(w).
		Padding(1, 2).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))
}

func (m *searchModal) refresh() {
	m.matches = deck.Search(m.cards, strings.TrimSpace(m.input.Value()), searchLimit)
	if m.selected >= len(m.matches) {
		m.selected = len(m.matches) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// choice returns the deck index of the highlighted match.
func (m *searchModal) choice() (int, bool) {
	if len(m.matches) == 0 {
		return 0, false
	}
	return m.matches[m.selected].Index, true
}

func (m *searchModal) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
		return nil
	case "down", "ctrl+n":
		if m.selected < len(m.matches)-1 {
			m.selected++
		}
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.selected = 0
	}
	m.refresh()
	return cmd
}

func (m *searchModal) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if len(m.matches) == 0 {
		b.WriteString(lipglossv2.NewStyle().Faint(true).Render("no matching cards"))
	}
	sel := lipglossv2.NewStyle().Foreground(lipglossv2.Color("229")).Background(lipglossv2.Color("57"))
	for i, hit := range m.matches {
		line := ansi.Truncate(fmt.Sprintf("#%-3d %s", hit.Card.ID, firstLine(hit.Card.SideA)), m.width-8, "…")
		if i == m.selected {
			line = sel.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(m.matches)-1 {
			b.WriteString("\n")
		}
	}
	hint := lipglossv2.NewStyle().Foreground(lipglossv2.Color("241")).Render("↑/↓ select • enter=jump • esc=close")
	return m.box.Render(b.String() + "\n\n" + hint)
}
