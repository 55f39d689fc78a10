package deck

import (
	"math/rand"
	"time"
)

// Deck holds the loaded cards and the browsing position.
// It is owned by a single caller; nothing here is safe for concurrent use.
type Deck struct {
	cards   []Card
	cursor  int
	face    Face
	started bool
	fp      string
	rng     *rand.Rand
}

// New returns an empty deck. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Deck{rng: rng}
}

// NewSeeded returns an empty deck whose shuffles are driven by seed.
// A zero seed means time-seeded.
func NewSeeded(seed int64) *Deck {
	if seed == 0 {
		return New(nil)
	}
	return New(rand.New(rand.NewSource(seed)))
}

// Load parses raw and, on success, replaces the deck contents in one step.
// On failure the deck is left exactly as it was.
func (d *Deck) Load(raw string) error {
	cards, err := Parse(raw)
	if err != nil {
		return err
	}
	d.cards = cards
	d.cursor = 0
	d.face = Front
	d.started = true
	d.fp = Fingerprint(cards)
	return nil
}

// Len is the number of loaded cards.
func (d *Deck) Len() int            { return len(d.cards) }
func (d *Deck) Cursor() int         { return d.cursor }
func (d *Deck) Face() Face          { return d.face }
func (d *Deck) Started() bool       { return d.started }
func (d *Deck) Fingerprint() string { return d.fp }

// Cards returns a copy of the cards in current order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Current returns the card under the cursor; ok is false for an empty deck.
func (d *Deck) Current() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[d.cursor], true
}

// Text is the raw Markdown of the face currently shown, or "" when empty.
func (d *Deck) Text() string {
	c, ok := d.Current()
	if !ok {
		return ""
	}
	return c.Text(d.face)
}

// Next advances to the following card, wrapping at the end, and shows its front.
func (d *Deck) Next() {
	n := len(d.cards)
	if n == 0 {
		return
	}
	d.cursor = (d.cursor + 1) % n
	d.face = Front
}

// Previous steps back one card, wrapping at the start, and shows its front.
func (d *Deck) Previous() {
	n := len(d.cards)
	if n == 0 {
		return
	}
	d.cursor = (d.cursor - 1 + n) % n
	d.face = Front
}

// Flip toggles between the front and back of the current card.
func (d *Deck) Flip() {
	if len(d.cards) == 0 {
		return
	}
	if d.face == Front {
		d.face = Back
	} else {
		d.face = Front
	}
}

// Shuffle permutes the cards uniformly and rewinds to the first card.
// IDs travel with their cards.
func (d *Deck) Shuffle() {
	if len(d.cards) == 0 {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.cursor = 0
	d.face = Front
}

// Seek moves the cursor to i and shows the front. Out-of-range is a no-op.
func (d *Deck) Seek(i int) bool {
	if i < 0 || i >= len(d.cards) {
		return false
	}
	d.cursor = i
	d.face = Front
	return true
}
