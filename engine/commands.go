package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/cards/deck"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrTooManyCriteria = errors.New("give at most one suit and one rank")
)

// parseCardList parses comma separated cards, e.g. "ace spade, two heart"
func parseCardList(s string) ([]deck.Card, error) {
	cards := []deck.Card{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := deck.ParseCard(part)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards given", ErrMissingArgument)
	}
	return cards, nil
}

// parseCriteria reads up to one suit and one rank, in either order.
// Both are nil when s is blank.
func parseCriteria(s string) (*deck.Suit, *deck.Rank, error) {
	var (
		suit *deck.Suit
		rank *deck.Rank
	)

	for _, token := range strings.Fields(s) {
		if strings.EqualFold(token, "of") {
			continue
		}

		if st, err := deck.ParseSuit(token); err == nil {
			if suit != nil {
				return nil, nil, ErrTooManyCriteria
			}
			suit = &st
			continue
		}

		r, err := deck.ParseRank(token)
		if err != nil {
			return nil, nil, &deck.ParseError{Input: token, Type: "Suit or Rank"}
		}
		if rank != nil {
			return nil, nil, ErrTooManyCriteria
		}
		rank = &r
	}

	return suit, rank, nil
}

func (e *Engine) deal(args string) error {
	var card *deck.Card
	if args != "" {
		c, err := deck.ParseCard(args)
		if err != nil {
			return err
		}
		card = &c
	}

	dealt, err := e.deck.Deal(card)
	if err != nil {
		return err
	}

	e.hand = append(e.hand, dealt)
	SendText(e.conn.Out, dealtText, e.painter.card(dealt))
	return nil
}

func (e *Engine) dealN(args string) error {
	if args == "" {
		return fmt.Errorf("%w: dealn needs a number or a list of cards", ErrMissingArgument)
	}

	var (
		cards []deck.Card
		n     int
		err   error
	)
	if n, err = strconv.Atoi(args); err != nil {
		if cards, err = parseCardList(args); err != nil {
			return err
		}
		n = len(cards)
	}

	dealt, err := e.deck.DealN(cards, n)
	if err != nil {
		return err
	}

	e.hand = append(e.hand, dealt...)
	SendText(e.conn.Out, dealtManyText, len(dealt))
	SendText(e.conn.Out, e.painter.hand(dealt))
	return nil
}

func (e *Engine) has(args string) error {
	suit, rank, err := parseCriteria(args)
	if err != nil {
		return err
	}

	found, err := e.deck.HasCard(suit, rank)
	if err != nil {
		return err
	}

	if found {
		SendText(e.conn.Out, hasText)
	} else {
		SendText(e.conn.Out, hasNotText)
	}
	return nil
}
