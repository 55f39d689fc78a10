package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/flipdeck/internal/deck"
)

// WriteJSONCards writes cards as a JSON array that Parse accepts back.
func WriteJSONCards(w io.Writer, cards []deck.Card, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if cards == nil {
		cards = []deck.Card{}
	}
	return enc.Encode(cards)
}
