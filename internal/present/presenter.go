package present

import (
	"io"

	"github.com/mithrel/flipdeck/internal/deck"
	"github.com/mithrel/flipdeck/internal/present/format"
	"github.com/mithrel/flipdeck/internal/render"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// RenderCards renders a whole deck according to options.
// Pretty falls back to plain; a deck listing has no Markdown view.
func RenderCards(w io.Writer, cards []deck.Card, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONCards(w, cards, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONCards(w, cards)
	default:
		return format.WritePlainCards(w, cards, opts.Headers)
	}
}

// RenderCard renders one face of a card according to options.
func RenderCard(w io.Writer, r *render.Renderer, c deck.Card, face deck.Face, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONCards(w, []deck.Card{c}, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONCards(w, []deck.Card{c})
	case ModePretty:
		return format.WritePrettyCard(w, r, c, face)
	default:
		return format.WritePlainCard(w, c, face)
	}
}
