package game

import (
	"io"
	"testing"

	"github.com/luca-patrignani/rankmatch/domain/deck"
)

// scriptedConsole answers prompts from a fixed list of lines, then io.EOF.
type scriptedConsole struct {
	lines   []string
	prompts []string
	notes   []string
}

func (c *scriptedConsole) ReadLine(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *scriptedConsole) Notify(msg string) {
	c.notes = append(c.notes, msg)
}

type recorder struct {
	turns []TurnRecord
}

func (r *recorder) Record(rec TurnRecord) error {
	r.turns = append(r.turns, rec)
	return nil
}

func card(t *testing.T, rank, suit int) deck.Card {
	t.Helper()
	c, err := deck.NewCard(rank, suit)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// stackedDeck returns a deck that deals cards in the given order.
func stackedDeck(cards ...deck.Card) func() *deck.Zone {
	return func() *deck.Zone {
		z := deck.NewZone()
		for i := len(cards) - 1; i >= 0; i-- {
			z.Give(cards[i])
		}
		return z
	}
}

func newTestEngine(t *testing.T, opts Options) (*Engine, *scriptedConsole, *recorder) {
	t.Helper()
	console := &scriptedConsole{}
	rec := &recorder{}
	opts.Console = console
	opts.Recorder = rec
	e := NewEngine(opts)
	if err := e.Setup(); err != nil {
		t.Fatal(err)
	}
	return e, console, rec
}

func equalCards(a, b []deck.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
