package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/flipdeck/internal/deck"
)

// WriteNDJSONCards writes cards as newline-delimited JSON objects.
func WriteNDJSONCards(w io.Writer, cards []deck.Card) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, c := range cards {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return nil
}
