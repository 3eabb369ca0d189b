// Package engine runs an interactive session over a single deck of cards.
// Commands are read a line at a time and the results written back out.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/minaorangina/cards/deck"
	uuid "github.com/satori/go.uuid"
)

type conn struct {
	In  io.Reader
	Out io.Writer
}

// Engine owns one deck and the hand dealt from it.
// It is not safe for concurrent use.
type Engine struct {
	id      string
	conn    *conn
	config  Config
	deck    deck.Deck
	hand    []deck.Card
	painter *painter
	logger  *log.Logger
}

// NewID constructs a session ID
func NewID() string {
	return uuid.NewV4().String()
}

// New creates an Engine reading commands from in and writing to out
func New(in io.Reader, out io.Writer, config Config) *Engine {
	id := NewID()

	var logOut io.Writer = ioutil.Discard
	if config.Verbose {
		logOut = os.Stderr
	}

	e := &Engine{
		id:      id,
		conn:    &conn{In: in, Out: out},
		config:  config,
		painter: newPainter(config.Color),
		logger:  log.New(logOut, fmt.Sprintf("[%s] ", id), log.LstdFlags),
	}
	e.reset()

	return e
}

// SetLogOutput sends session logs to w, whatever CARDS_VERBOSE says.
// Each line is prefixed with "[<session id>] ".
func (e *Engine) SetLogOutput(w io.Writer) {
	e.logger.SetOutput(w)
}

// ID identifies the session in logs
func (e *Engine) ID() string {
	return e.id
}

// Deck returns the cards left in the deck
func (e *Engine) Deck() deck.Deck {
	return e.deck.Cards()
}

// Hand returns the cards dealt since the last new deck
func (e *Engine) Hand() []deck.Card {
	hand := make([]deck.Card, len(e.hand))
	copy(hand, e.hand)
	return hand
}

func (e *Engine) reset() {
	e.deck = deck.New()
	if e.config.Shuffle {
		e.deck.Shuffle()
	}
	e.hand = nil
	e.logger.Printf("new deck, shuffled: %t", e.config.Shuffle)
}

// Run reads commands until quit or end of input
func (e *Engine) Run() error {
	e.logger.Println("session started")
	SendText(e.conn.Out, welcomeText, e.deck.Size())

	scanner := bufio.NewScanner(e.conn.In)
	for {
		SendText(e.conn.Out, "%s ", e.config.Prompt)
		if !scanner.Scan() {
			break
		}
		if quit := e.Exec(scanner.Text()); quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	e.logger.Println("session ended")
	return nil
}

// Exec runs a single command line and reports whether the session is over.
// Command errors are written to the output; the session carries on.
func (e *Engine) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := strings.ToLower(fields[0])
	args := strings.Join(fields[1:], " ")

	var err error
	switch name {
	case "quit", "exit":
		SendText(e.conn.Out, goodbyeText)
		return true
	case "help":
		SendText(e.conn.Out, helpText)
	case "new":
		e.reset()
		SendText(e.conn.Out, newDeckText, e.deck.Size())
	case "shuffle":
		e.deck.Shuffle()
		SendText(e.conn.Out, shuffledText, e.deck.Size())
	case "deal":
		err = e.deal(args)
	case "dealn":
		err = e.dealN(args)
	case "has":
		err = e.has(args)
	case "size":
		SendText(e.conn.Out, sizeText, e.deck.Size())
	case "show":
		SendText(e.conn.Out, e.painter.deck(e.deck))
	case "hand":
		if len(e.hand) == 0 {
			SendText(e.conn.Out, emptyHandText)
			break
		}
		SendText(e.conn.Out, handText, len(e.hand))
		SendText(e.conn.Out, e.painter.hand(e.hand))
	default:
		err = fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}

	if err != nil {
		e.logger.Printf("%s: %v", name, err)
		SendText(e.conn.Out, errorText, err)
	}
	return false
}
