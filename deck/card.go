package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Club", "Diamond", "Heart", "Spade"}

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// ErrInvalidCard is returned when a card is built from an out of range suit or rank
var ErrInvalidCard = errors.New("invalid card")

// Suits returns every suit in declaration order
func Suits() []Suit {
	return []Suit{Club, Diamond, Heart, Spade}
}

// Ranks returns every rank in declaration order
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Club && s <= Spade
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// ParseError is returned when text does not name a suit or rank
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid value for %s", e.Input, e.Type)
}

// ParseSuit converts a suit name such as "club" or " Spade " to a Suit.
// Matching ignores case and surrounding whitespace.
func ParseSuit(s string) (Suit, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range suitNames {
		if token == strings.ToLower(name) {
			return Suit(i), nil
		}
	}
	return 0, &ParseError{Input: s, Type: "Suit"}
}

// ParseRank converts a rank name such as "ace" or " Two " to a Rank.
// Matching ignores case and surrounding whitespace.
func ParseRank(s string) (Rank, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range rankNames {
		if token == strings.ToLower(name) {
			return Rank(i), nil
		}
	}
	return 0, &ParseError{Input: s, Type: "Rank"}
}

// Card represents a playing card. Cards are values: two cards are equal
// when both their rank and suit match.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, int(rank), int(suit))
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics if the rank or suit is out of range
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard parses the rendered form of a card, "<rank> <suit>".
// "<rank> of <suit>" is accepted too.
func ParseCard(s string) (Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 3 && strings.EqualFold(fields[1], "of") {
		fields = []string{fields[0], fields[2]}
	}
	if len(fields) != 2 {
		return Card{}, &ParseError{Input: s, Type: "Card"}
	}

	rank, err := ParseRank(fields[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(fields[1])
	if err != nil {
		return Card{}, err
	}

	return Card{rank: rank, suit: suit}, nil
}

// Rank returns a card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns a card's suit
func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) String() string {
	return c.rank.String() + " " + c.suit.String()
}
