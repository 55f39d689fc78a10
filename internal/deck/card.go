package deck

// Card is a single flashcard. ID is assigned on load, never read from input.
type Card struct {
	ID    int    `json:"id"`
	SideA string `json:"sideA"`
	SideB string `json:"sideB"`
}

// Face selects which side of the current card is shown.
type Face int

const (
	Front Face = iota
	Back
)

func (f Face) String() string {
	if f == Back {
		return "back"
	}
	return "front"
}

// Text returns the side of c shown for face f.
func (c Card) Text(f Face) string {
	if f == Back {
		return c.SideB
	}
	return c.SideA
}
