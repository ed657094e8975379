package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/luca-patrignani/rankmatch/domain/deck"
)

// Session is the state of one game: the zones and the seated players.
type Session struct {
	ID          uuid.UUID
	Deck        *deck.Zone
	Table       *deck.Zone
	Players     []*Player // seat order, which is also turn order
	CurrentTurn int       // index into Players for who must act
	Round       int

	byName map[string]*Player
}

func newSession(id uuid.UUID) *Session {
	return &Session{
		ID:     id,
		Deck:   deck.NewZone(),
		Table:  deck.NewZone(),
		byName: make(map[string]*Player),
	}
}

// seat adds a player with an empty hand at the next seat.
func (s *Session) seat(name string) error {
	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
	}
	p := NewPlayer(name)
	s.Players = append(s.Players, p)
	s.byName[name] = p
	return nil
}

// Player returns the seated player called name.
func (s *Session) Player(name string) (*Player, error) {
	p, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
	}
	return p, nil
}

// CurrentPlayer returns the player who must act, or nil with no players.
func (s *Session) CurrentPlayer() *Player {
	if s.CurrentTurn < 0 || s.CurrentTurn >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentTurn]
}

// advanceTurn moves the turn to the next seat, wrapping from the last seat to
// the first. It reports whether the round wrapped.
func (s *Session) advanceTurn() bool {
	n := len(s.Players)
	if n == 0 {
		return false
	}
	s.CurrentTurn = (s.CurrentTurn + 1) % n
	return s.CurrentTurn == 0
}

// Counts returns the current zone sizes.
func (s *Session) Counts() ZoneCounts {
	counts := ZoneCounts{
		Deck:  s.Deck.Count(),
		Table: s.Table.Count(),
		Hands: make(map[string]int, len(s.Players)),
	}
	for _, p := range s.Players {
		counts.Hands[p.Name] = p.HandCount()
	}
	return counts
}

// clear discards every card and the roster.
func (s *Session) clear() {
	s.Deck.Clear()
	s.Table.Clear()
	for _, p := range s.Players {
		p.hand.Clear()
	}
	s.Players = nil
	s.byName = make(map[string]*Player)
	s.CurrentTurn = 0
}
