package game

import (
	"errors"

	"github.com/luca-patrignani/rankmatch/domain/deck"
)

var (
	ErrDeckUnderflow   = errors.New("deck underflow")
	ErrNotReady        = errors.New("game is not ready")
	ErrNoPlayers       = errors.New("no players")
	ErrDuplicatePlayer = errors.New("duplicate player")
	ErrUnknownPlayer   = errors.New("unknown player")
)

// State is the engine lifecycle state.
type State string

const (
	NotStarted State = "not_started"
	Ready      State = "ready"
	Ended      State = "ended"
)

// DrawSource is the zone a player draws from at the end of a turn.
type DrawSource string

const (
	DrawDeck  DrawSource = "deck"
	DrawTable DrawSource = "table"
)

// Console is the line-oriented input collaborator. ReadLine shows prompt and
// blocks until one line is available, without its trailing newline.
type Console interface {
	ReadLine(prompt string) (string, error)
	Notify(msg string)
}

// Recorder receives every finished turn.
type Recorder interface {
	Record(TurnRecord) error
}

// TurnRecord describes one finished turn.
type TurnRecord struct {
	Round    int         `json:"round"`
	Player   string      `json:"player"`
	Finished bool        `json:"finished"`
	Laid     []deck.Card `json:"laid"`
	Rejected deck.Card   `json:"rejected"` // zero when no card was returned
	Source   DrawSource  `json:"source,omitempty"`
	Drawn    deck.Card   `json:"drawn"` // zero when the source was empty
	Counts   ZoneCounts  `json:"counts"`
}

// ZoneCounts is a snapshot of zone sizes after a turn.
type ZoneCounts struct {
	Deck  int            `json:"deck"`
	Table int            `json:"table"`
	Hands map[string]int `json:"hands"`
}

// Total is the number of cards in circulation.
func (z ZoneCounts) Total() int {
	total := z.Deck + z.Table
	for _, n := range z.Hands {
		total += n
	}
	return total
}
