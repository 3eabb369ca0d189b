package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/cards/deck"
	"github.com/stretchr/testify/assert"
)

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		want := "Hello"
		SendText(buffer, want)

		assert.Equal(t, want, buffer.String())
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, sizeText, 12)

		assert.Equal(t, "12 cards left\n", buffer.String())
	})
}

func TestPainter(t *testing.T) {
	cards := []deck.Card{deck.MustCard(deck.Ace, deck.Heart), deck.MustCard(deck.Two, deck.Spade)}

	t.Run("plain output without colour", func(t *testing.T) {
		p := newPainter(false)

		assert.Equal(t, "Ace Heart", p.card(cards[0]))
		assert.Equal(t, "Ace Heart\nTwo Spade\n", p.deck(cards))
		assert.Equal(t, "- Ace Heart\n- Two Spade\n", p.hand(cards))
	})

	t.Run("empty deck", func(t *testing.T) {
		assert.Equal(t, emptyDeckText, newPainter(false).deck(nil))
	})

	t.Run("red suits are coloured", func(t *testing.T) {
		p := newPainter(true)
		p.red.EnableColor()

		red := p.card(cards[0])
		assert.True(t, strings.HasPrefix(red, "\x1b["), red)
		assert.Contains(t, red, "Ace Heart")

		assert.Equal(t, "Two Spade", p.card(cards[1]))
	})
}
