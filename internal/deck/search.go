package deck

import "github.com/sahilm/fuzzy"

// Match is a search hit; Index is the card's position in the searched slice.
type Match struct {
	Index int
	Card  Card
}

type frontSource []Card

func (s frontSource) String(i int) string { return s[i].SideA }
func (s frontSource) Len() int            { return len(s) }

// Search fuzzy-matches query against each card's front, best first.
// An empty query returns cards in order. limit <= 0 means no limit.
func Search(cards []Card, query string, limit int) []Match {
	var out []Match
	if query == "" {
		out = make([]Match, 0, len(cards))
		for i, c := range cards {
			out = append(out, Match{Index: i, Card: c})
		}
	} else {
		found := fuzzy.FindFrom(query, frontSource(cards))
		out = make([]Match, 0, len(found))
		for _, f := range found {
			out = append(out, Match{Index: f.Index, Card: cards[f.Index]})
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
