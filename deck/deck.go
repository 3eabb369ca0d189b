package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrCardNotFound    = errors.New("deck does not contain card")
	ErrNotEnoughCards  = errors.New("not enough cards in deck")
	ErrInvalidCount    = errors.New("number of cards must not be negative")
	ErrMissingCriteria = errors.New("no suit or rank provided")
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Deck represents a deck of cards. The last card is the top of the deck.
//
// A Deck is not safe for concurrent use.
type Deck []Card

// New creates a deck of all 52 cards, ordered by suit then rank
func New() Deck {
	cards := make(Deck, 0, len(suitNames)*len(rankNames))
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{rank: rank, suit: suit})
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	actualDeck := *d
	rand.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Deal removes a card from the deck and returns it.
// If card is nil the top card is dealt, otherwise the matching card is
// taken out and the remaining cards keep their order.
func (d *Deck) Deal(card *Card) (Card, error) {
	if card == nil {
		return d.DealTop()
	}
	return d.DealCard(*card)
}

// DealTop removes and returns the top card
func (d *Deck) DealTop() (Card, error) {
	n := len(*d)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := (*d)[n-1]
	*d = (*d)[:n-1]
	return top, nil
}

// DealCard removes and returns the given card
func (d *Deck) DealCard(card Card) (Card, error) {
	for i, c := range *d {
		if c == card {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return c, nil
		}
	}
	return Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, card)
}

// DealN deals several cards at once.
// If cards is not nil, exactly those cards are dealt in the order given
// and n is ignored. Otherwise n cards are dealt from the top.
// Either way the deck is left untouched if the hand cannot be completed.
func (d *Deck) DealN(cards []Card, n int) ([]Card, error) {
	if cards != nil {
		return d.dealCards(cards)
	}

	if n < 0 {
		return nil, ErrInvalidCount
	}
	if n > len(*d) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrNotEnoughCards, n, len(*d))
	}

	hand := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.DealTop()
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}

func (d *Deck) dealCards(cards []Card) ([]Card, error) {
	remaining := make(Deck, len(*d))
	copy(remaining, *d)

	hand := make([]Card, 0, len(cards))
	for _, c := range cards {
		dealt, err := remaining.DealCard(c)
		if err != nil {
			return nil, err
		}
		hand = append(hand, dealt)
	}

	*d = remaining
	return hand, nil
}

// HasCard reports whether the deck holds a card matching the given suit
// and rank. Either may be nil to match on the other alone, but not both.
func (d Deck) HasCard(suit *Suit, rank *Rank) (bool, error) {
	if suit == nil && rank == nil {
		return false, ErrMissingCriteria
	}

	for _, c := range d {
		if suit != nil && c.suit != *suit {
			continue
		}
		if rank != nil && c.rank != *rank {
			continue
		}
		return true, nil
	}
	return false, nil
}

// HasSuit reports whether any card of the suit is left
func (d Deck) HasSuit(suit Suit) bool {
	ok, _ := d.HasCard(&suit, nil)
	return ok
}

// HasRank reports whether any card of the rank is left
func (d Deck) HasRank(rank Rank) bool {
	ok, _ := d.HasCard(nil, &rank)
	return ok
}

// Contains reports whether the card is in the deck
func (d Deck) Contains(card Card) bool {
	suit, rank := card.suit, card.rank
	ok, _ := d.HasCard(&suit, &rank)
	return ok
}

// Size returns the number of cards left
func (d Deck) Size() int {
	return len(d)
}

// Cards returns a copy of the cards, bottom first
func (d Deck) Cards() []Card {
	cards := make([]Card, len(d))
	copy(cards, d)
	return cards
}

func (d Deck) String() string {
	var b strings.Builder
	for _, c := range d {
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	return b.String()
}
