package format

import (
	"fmt"
	"io"

	"github.com/mithrel/flipdeck/internal/deck"
	"github.com/mithrel/flipdeck/internal/render"
)

// WritePrettyCard renders one face of a card with glamour.
func WritePrettyCard(w io.Writer, r *render.Renderer, c deck.Card, face deck.Face) error {
	out, err := r.Render(c, true, face, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
