package render

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/flipdeck/internal/deck"
)

func newASCII(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("ascii", 60)
	require.NoError(t, err)
	return r
}

func TestStrongRendersAsPlainText(t *testing.T) {
	r := newASCII(t)

	out, err := r.Markdown("**Question 1**", 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1")
	assert.NotContains(t, out, "**")
}

func TestMarkdownBlocks(t *testing.T) {
	r := newASCII(t)

	out, err := r.Markdown("# Heading\n\n- one\n- two\n\n`code`", 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "code")
}

func TestRenderPicksFace(t *testing.T) {
	r := newASCII(t)
	c := deck.Card{ID: 1, SideA: "front text", SideB: "back text"}

	front, err := r.Render(c, true, deck.Front, 0)
	require.NoError(t, err)
	assert.Contains(t, front, "front text")
	assert.NotContains(t, front, "back text")

	back, err := r.Render(c, true, deck.Back, 0)
	require.NoError(t, err)
	assert.Contains(t, back, "back text")
}

func TestRenderEmptyDeck(t *testing.T) {
	r := newASCII(t)

	out, err := r.RenderDeck(deck.New(nil), 0)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderDeckFollowsState(t *testing.T) {
	r := newASCII(t)
	d := deck.New(rand.New(rand.NewSource(1)))
	require.NoError(t, d.Load(`[{"sideA":"Q1","sideB":"A1"},{"sideA":"Q2","sideB":"A2"}]`))

	d.Next()
	d.Flip()
	out, err := r.RenderDeck(d, 40)
	require.NoError(t, err)
	assert.Contains(t, out, "A2")

	// Same state, same output.
	again, err := r.RenderDeck(d, 40)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New("no-such-style", 80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown render style")

	_, err = New(DefaultStyle, 0)
	require.Error(t, err)

	assert.True(t, ValidStyle(DefaultStyle))
	assert.Contains(t, Styles(), "ascii")
}
