package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/flipdeck/internal/deck"
	"github.com/mithrel/flipdeck/internal/editor"
	"github.com/mithrel/flipdeck/internal/render"
)

const placeholder = `Enter JSON array of cards. Example: [{"sideA": "**Question 1**", "sideB": "Answer 1"}, ...]`

type phase int

const (
	phaseInput phase = iota
	phaseStudy
)

// Options control how the viewer starts.
type Options struct {
	// Input pre-fills the text area.
	Input string
	// Start attempts to load Input immediately.
	Start     bool
	AltScreen bool
	// InputTTY reads keys from the controlling terminal (stdin is a pipe).
	InputTTY bool
	Output   io.Writer
}

// Run opens the flashcard viewer and blocks until the user quits.
func Run(ctx context.Context, d *deck.Deck, r *render.Renderer, logger *log.Logger, opts Options) error {
	m := newModel(d, r, logger, opts)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

type model struct {
	deck     *deck.Deck
	renderer *render.Renderer
	log      *log.Logger

	phase  phase
	input  textarea.Model
	card   viewport.Model
	alert  *alertModal
	search *searchModal

	width  int
	height int
	status string
}

func newModel(d *deck.Deck, r *render.Renderer, logger *log.Logger, opts Options) model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(opts.Input)
	ta.Focus()

	m := model{
		deck:     d,
		renderer: r,
		log:      logger,
		input:    ta,
		card:     viewport.New(40, 10),
	}
	if d.Started() {
		m.phase = phaseStudy
	}
	m.applyLayout()
	if opts.Start {
		m.start()
	}
	m.refreshCard()
	return m
}

func (m model) Init() tea.Cmd {
	if m.phase == phaseInput {
		return textarea.Blink
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		m.refreshCard()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != nil {
			if m.alert.dismiss(msg) {
				m.alert = nil
			}
			return m, nil
		}
		if m.search != nil {
			return m.updateSearch(msg)
		}
		if m.phase == phaseInput {
			return m.updateInput(msg)
		}
		return m.updateStudy(msg)
	case editorDoneMsg:
		m.finishEditor(msg)
		return m, nil
	case tea.MouseMsg:
		if m.phase == phaseStudy && m.alert == nil && m.search == nil &&
			msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.inCardBox(msg.X, msg.Y) {
			m.deck.Flip()
			m.status = ""
			m.refreshCard()
		}
		return m, nil
	}
	if m.phase == phaseInput && m.alert == nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.start()
		return m, nil
	case "ctrl+e":
		cmd := m.openEditor()
		return m, cmd
	case "esc":
		// Back to the deck already loaded, if any.
		if m.deck.Started() {
			m.phase = phaseStudy
			m.input.Blur()
			m.refreshCard()
			return m, nil
		}
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateStudy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case " ", "enter", "f":
		m.deck.Flip()
		m.status = ""
	case "right", "l", "n":
		m.deck.Next()
		m.status = ""
	case "left", "h", "p":
		m.deck.Previous()
		m.status = ""
	case "s":
		m.deck.Shuffle()
		m.log.Printf("shuffled cards=%d", m.deck.Len())
		m.status = "Shuffled"
	case "/":
		w, h := m.termSize()
		m.search = newSearchModal(m.deck.Cards(), w, h)
		return m, textinput.Blink
	case "i":
		m.phase = phaseInput
		return m, m.input.Focus()
	default:
		var cmd tea.Cmd
		m.card, cmd = m.card.Update(msg)
		return m, cmd
	}
	m.refreshCard()
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search = nil
		return m, nil
	case "enter":
		if idx, ok := m.search.choice(); ok && m.deck.Seek(idx) {
			m.status = fmt.Sprintf("Jumped to card %d", idx+1)
			m.refreshCard()
		}
		m.search = nil
		return m, nil
	}
	return m, m.search.update(msg)
}

// start loads the text area into the deck. A rejected input leaves the deck
// exactly as it was and raises the alert.
func (m *model) start() {
	if err := m.deck.Load(m.input.Value()); err != nil {
		var ife *deck.InputFormatError
		if errors.As(err, &ife) {
			m.log.Printf("load rejected reason=%s err=%v", ife.Reason, ife.Err)
		} else {
			m.log.Printf("load failed: %v", err)
		}
		w, h := m.termSize()
		m.alert = newAlertModal("Cannot start", err.Error(), w, h)
		return
	}
	m.log.Printf("loaded cards=%d fingerprint=%s", m.deck.Len(), m.deck.Fingerprint())
	m.phase = phaseStudy
	m.status = ""
	m.input.Blur()
	m.refreshCard()
}

// editorDoneMsg reports that the external editor exited.
type editorDoneMsg struct {
	path string
	err  error
}

// openEditor suspends the viewer and edits the current input in $EDITOR.
func (m *model) openEditor() tea.Cmd {
	w, h := m.termSize()
	path, err := editor.DraftPath()
	if err == nil {
		err = editor.PrepareAt(path, []byte(m.input.Value()))
	}
	if err != nil {
		m.alert = newAlertModal("Editor unavailable", err.Error(), w, h)
		return nil
	}
	c, err := editor.Command(path)
	if err != nil {
		m.alert = newAlertModal("Editor unavailable", err.Error(), w, h)
		return nil
	}
	m.log.Printf("editing input in %s", c.Path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorDoneMsg{path: path, err: err}
	})
}

func (m *model) finishEditor(msg editorDoneMsg) {
	if msg.err != nil {
		w, h := m.termSize()
		m.alert = newAlertModal("Editor failed", msg.err.Error(), w, h)
		return
	}
	text, err := editor.ReadDraft(msg.path)
	if err != nil {
		w, h := m.termSize()
		m.alert = newAlertModal("Editor failed", err.Error(), w, h)
		return
	}
	m.input.SetValue(text)
}

// refreshCard re-renders the current face into the card viewport.
func (m *model) refreshCard() {
	out, err := m.renderer.RenderDeck(m.deck, m.card.Width)
	if err != nil {
		m.log.Printf("render failed: %v", err)
		m.status = "Render failed; showing raw text"
		out = m.deck.Text()
	}
	m.card.SetContent(out)
	m.card.GotoTop()
}

func (m model) termSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

const (
	cardPadX    = 2
	cardPadY    = 1
	footerLines = 2
)

func (m *model) applyLayout() {
	w, h := m.termSize()

	m.input.SetWidth(max(20, w-2))
	m.input.SetHeight(max(3, h-4))

	innerW := min(w-2-cardPadX*2, m.renderer.Wrap())
	innerH := h - 2 - cardPadY*2 - footerLines
	m.card.Width = max(10, innerW)
	m.card.Height = max(3, innerH)

	if m.alert != nil {
		m.alert.resizeForTerm(w, h)
	}
	if m.search != nil {
		m.search.resizeForTerm(w, h)
	}
}

func (m model) cardBoxHeight() int {
	return m.card.Height + 2 + cardPadY*2
}

func (m model) cardBoxWidth() int {
	return m.card.Width + 2 + cardPadX*2
}

// inCardBox reports whether the cell at x, y lies on the card box as
// studyView places it: top row, horizontally centered.
func (m model) inCardBox(x, y int) bool {
	if y < 0 || y >= m.cardBoxHeight() {
		return false
	}
	w, _ := m.termSize()
	boxW := m.cardBoxWidth()
	left := 0
	if gap := w - boxW; gap > 0 {
		left = int(math.Round(float64(gap) * 0.5))
	}
	return x >= left && x < left+boxW
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

func (m model) View() string {
	var base string
	if m.phase == phaseInput {
		base = m.inputView()
	} else {
		base = m.studyView()
	}
	switch {
	case m.alert != nil:
		return m.renderOverlay(base, m.alert.View())
	case m.search != nil:
		return m.renderOverlay(base, m.search.View())
	}
	return base
}

func (m model) inputView() string {
	help := "ctrl+s=start • ctrl+e=$EDITOR • ctrl+c=quit"
	if m.deck.Started() {
		help = "ctrl+s=load new deck • ctrl+e=$EDITOR • esc=back to cards • ctrl+c=quit"
	}
	return titleStyle.Render("flipdeck") + "\n" + m.input.View() + "\n" + helpStyle.Render(help) + "\n"
}

func (m model) studyView() string {
	border := lipgloss.Color("63")
	if m.deck.Face() == deck.Back {
		border = lipgloss.Color("212")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(cardPadY, cardPadX).
		Width(m.card.Width + cardPadX*2).
		Height(m.card.Height + cardPadY*2)

	w, _ := m.termSize()
	card := lipgloss.PlaceHorizontal(w, lipgloss.Center, box.Render(m.card.View()))
	return card + "\n" + m.renderFooter(w) + "\n" + helpStyle.Render("space=flip • ←/→ prev/next • s=shuffle • /=search • i=input • q=quit") + "\n"
}

func (m model) renderFooter(width int) string {
	left := fmt.Sprintf("Card %d of %d", m.deck.Cursor()+1, m.deck.Len())
	if m.deck.Len() == 0 {
		left = "No cards"
	}
	left += " • " + m.deck.Face().String()

	var right string
	if m.status != "" {
		right = statusStyle.Render(m.status) + " • "
	}
	if fp := m.deck.Fingerprint(); fp != "" {
		right += "deck " + deck.ShortFingerprint(fp) + " "
	}

	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}
