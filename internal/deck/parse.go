package deck

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Parse decodes raw text as a JSON array of card objects.
//
// Elements are read loosely: only sideA and sideB are projected, and anything
// missing or of the wrong shape becomes empty text. IDs are assigned 1..n in
// input order; an id field in the input is ignored.
func Parse(raw string) ([]Card, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &InputFormatError{Reason: ReasonSyntax, Err: err}
	}
	// JSON.parse semantics: nothing but whitespace may follow the value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &InputFormatError{Reason: ReasonSyntax, Err: err}
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, &InputFormatError{Reason: ReasonNotArray}
	}
	if len(arr) == 0 {
		return nil, &InputFormatError{Reason: ReasonEmpty}
	}

	cards := make([]Card, 0, len(arr))
	for i, el := range arr {
		obj, _ := el.(map[string]any)
		cards = append(cards, Card{
			ID:    i + 1,
			SideA: textOf(obj["sideA"]),
			SideB: textOf(obj["sideB"]),
		})
	}
	return cards, nil
}

// textOf projects a side to display text. Zero, false and "" are empty;
// numbers print in canonical decimal form.
func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case bool:
		if x {
			return "true"
		}
		return ""
	default:
		return ""
	}
}
