package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/flipdeck/internal/deck"
)

// TSV columns: id, sideA, sideB
var headerLine = "id\tsideA\tsideB\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

func WritePlainCards(w io.Writer, cards []deck.Card, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, c := range cards {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, esc(c.SideA), esc(c.SideB))
	}
	return tw.Flush()
}

// WritePlainCard writes the raw Markdown of one face.
func WritePlainCard(w io.Writer, c deck.Card, face deck.Face) error {
	_, err := io.WriteString(w, strings.TrimRight(c.Text(face), "\n")+"\n")
	return err
}
