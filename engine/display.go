package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/cards/deck"
)

const (
	welcomeText    = "Here is a deck of %d cards. Type \"help\" to see what you can do with it.\n"
	newDeckText    = "Started a new deck of %d cards\n"
	shuffledText   = "Shuffled %d cards\n"
	dealtText      = "Dealt %s\n"
	dealtManyText  = "Dealt %d cards:\n"
	sizeText       = "%d cards left\n"
	hasText        = "Yes, there is a matching card in the deck\n"
	hasNotText     = "No, there is no matching card in the deck\n"
	emptyDeckText  = "The deck is empty\n"
	emptyHandText  = "Your hand is empty\n"
	handText       = "Your hand has %d cards:\n"
	errorText      = "Error: %s\n"
	goodbyeText    = "Bye!\n"
	helpText       = `Commands:
  new                         start again with a full deck
  shuffle                     shuffle the cards left in the deck
  deal                        deal the top card
  deal <rank> <suit>          deal a specific card, e.g. "deal ace spade"
  dealn <n>                   deal n cards from the top
  dealn <card>, <card>, ...   deal several specific cards
  has <suit|rank> [<suit|rank>]
                              check whether a matching card is left
  size                        count the cards left
  show                        list the deck, bottom to top
  hand                        list the cards dealt so far
  quit                        leave
`
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// painter renders cards, with red suits in red when colour is on
type painter struct {
	red *color.Color
}

func newPainter(enabled bool) *painter {
	red := color.New(color.FgRed)
	if !enabled {
		red.DisableColor()
	}
	return &painter{red: red}
}

func (p *painter) card(c deck.Card) string {
	switch c.Suit() {
	case deck.Heart, deck.Diamond:
		return p.red.Sprint(c.String())
	default:
		return c.String()
	}
}

// deck renders one card per line, in sequence order
func (p *painter) deck(cards []deck.Card) string {
	if len(cards) == 0 {
		return emptyDeckText
	}
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(p.card(c) + "\n")
	}
	return b.String()
}

func (p *painter) hand(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString("- " + p.card(c) + "\n")
	}
	return b.String()
}
