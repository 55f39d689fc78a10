package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	"github.com/mithrel/flipdeck/internal/deck"
)

const DefaultStyle = "dracula"

// Renderer turns card faces into terminal-styled Markdown using glamour.
// Bold emphasis is rendered as plain text: the style's Strong primitive is cleared.
type Renderer struct {
	style ansi.StyleConfig
	wrap  int
	terms map[int]*glamour.TermRenderer
}

// Styles lists the glamour style names accepted by New.
func Styles() []string {
	out := make([]string, 0, len(styles.DefaultStyles))
	for name := range styles.DefaultStyles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ValidStyle reports whether name is a built-in glamour style.
func ValidStyle(name string) bool {
	_, ok := styles.DefaultStyles[name]
	return ok
}

// New builds a renderer for the named glamour style and default word wrap.
func New(style string, wrap int) (*Renderer, error) {
	base, ok := styles.DefaultStyles[style]
	if !ok || base == nil {
		return nil, fmt.Errorf("unknown render style %q (want one of %s)", style, strings.Join(Styles(), ", "))
	}
	if wrap <= 0 {
		return nil, fmt.Errorf("word wrap must be greater than 0, got %d", wrap)
	}
	cfg := *base
	cfg.Strong = ansi.StylePrimitive{}
	return &Renderer{style: cfg, wrap: wrap, terms: make(map[int]*glamour.TermRenderer)}, nil
}

// Wrap is the configured word wrap.
func (r *Renderer) Wrap() int { return r.wrap }

// Markdown renders s wrapped at width columns; width <= 0 uses the default wrap.
func (r *Renderer) Markdown(s string, width int) (string, error) {
	if width <= 0 || width > r.wrap {
		width = r.wrap
	}
	tr, err := r.term(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(s)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// Render renders the given face of card. ok=false (no card) yields "".
func (r *Renderer) Render(card deck.Card, ok bool, face deck.Face, width int) (string, error) {
	if !ok {
		return "", nil
	}
	return r.Markdown(card.Text(face), width)
}

// RenderDeck renders whatever face the deck currently shows.
func (r *Renderer) RenderDeck(d *deck.Deck, width int) (string, error) {
	c, ok := d.Current()
	return r.Render(c, ok, d.Face(), width)
}

func (r *Renderer) term(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.terms[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	r.terms[width] = tr
	return tr, nil
}
