package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/luca-patrignani/rankmatch/domain/deck"
)

const (
	DefaultHandSize        = 5
	DefaultShufflePasses   = 3
	DefaultFinishThreshold = 5
)

// Options configures an Engine.
type Options struct {
	SessionID       uuid.UUID // zero means a new random ID
	Players         []string  // seat order
	HandSize        int
	ShufflePasses   int
	FinishThreshold int // players scoring below it are offered to finish
	Rule            ScoringRule
	Source          deck.Source
	NewDeck         func() *deck.Zone
	Console         Console
	Recorder        Recorder
	Logger          *slog.Logger
	// Render is called after setup, after every turn and before asking for
	// another card.
	Render func(*Session)
}

// DefaultOptions returns a two-player game with the standard rules.
func DefaultOptions() Options {
	return Options{
		Players:         []string{"player1", "player2"},
		HandSize:        DefaultHandSize,
		ShufflePasses:   DefaultShufflePasses,
		FinishThreshold: DefaultFinishThreshold,
		Rule:            RankSum,
	}
}

// Engine runs one game. It is not safe for concurrent use.
type Engine struct {
	opts    Options
	log     *slog.Logger
	session *Session
	state   State
	winner  string
}

func NewEngine(opts Options) *Engine {
	if opts.SessionID == uuid.Nil {
		opts.SessionID = uuid.New()
	}
	if opts.Rule == nil {
		opts.Rule = RankSum
	}
	if opts.Source == nil {
		opts.Source = deck.NewMathSource(0)
	}
	if opts.NewDeck == nil {
		opts.NewDeck = deck.NewStandardDeck
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		opts:  opts,
		log:   opts.Logger.With("session", opts.SessionID.String()),
		state: NotStarted,
	}
}

// Setup builds and shuffles the deck, seats the players, deals the hands
// round-robin and seeds the table with one card. On error the game does not
// start.
func (e *Engine) Setup() error {
	if e.state != NotStarted {
		return fmt.Errorf("setup: game is %s", e.state)
	}
	s := newSession(e.opts.SessionID)
	s.Deck = e.opts.NewDeck()
	s.Deck.Shuffle(e.opts.ShufflePasses, e.opts.Source)

	for _, name := range e.opts.Players {
		if err := s.seat(name); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("setup: %w", ErrNoPlayers)
	}

	for i := 0; i < e.opts.HandSize; i++ {
		for _, p := range s.Players {
			c, ok := s.Deck.Take()
			if !ok {
				return fmt.Errorf("setup: %w: dealing card %d to %s", ErrDeckUnderflow, i+1, p.Name)
			}
			p.GiveToHand(c)
		}
	}
	c, ok := s.Deck.Take()
	if !ok {
		return fmt.Errorf("setup: %w: seeding the table", ErrDeckUnderflow)
	}
	s.Table.Give(c)

	s.Round = 1
	e.session = s
	e.state = Ready
	e.log.Info("game ready",
		"players", len(s.Players),
		"hand_size", e.opts.HandSize,
		"deck", s.Deck.Count(),
		"table", s.Table.Count())
	e.render()
	return nil
}

// PlayRound plays one turn for every seat in seat order. It returns false
// once the game has ended.
func (e *Engine) PlayRound() (bool, error) {
	if e.state != Ready {
		return false, ErrNotReady
	}
	for range e.session.Players {
		if err := e.PlayTurn(); err != nil {
			return false, err
		}
		if e.state == Ended {
			return false, nil
		}
	}
	return true, nil
}

// PlayTurn plays the turn of the current player and moves to the next seat.
func (e *Engine) PlayTurn() error {
	if e.state != Ready {
		return ErrNotReady
	}
	s := e.session
	p := s.CurrentPlayer()
	e.log.Info("turn started", "round", s.Round, "player", p.Name)
	rec := TurnRecord{Round: s.Round, Player: p.Name}

	finished, err := e.offerFinish(p)
	if err != nil {
		return fmt.Errorf("turn of %s: %w", p.Name, err)
	}
	if finished {
		e.state = Ended
		e.winner = p.Name
		rec.Finished = true
		rec.Counts = s.Counts()
		e.log.Info("game ended", "winner", p.Name, "score", p.Score(e.opts.Rule))
		if err := e.record(rec); err != nil {
			return err
		}
		e.render()
		return nil
	}

	pending, rejected, err := e.layDown(p)
	if err != nil {
		return fmt.Errorf("turn of %s: %w", p.Name, err)
	}
	src, drawn, err := e.draw(p)
	if err != nil {
		// nothing reaches the table; the pending cards go back to the hand
		for _, c := range pending {
			p.GiveToHand(c)
		}
		return fmt.Errorf("turn of %s: %w", p.Name, err)
	}
	e.commit(pending)

	rec.Laid = pending
	rec.Rejected = rejected
	rec.Source = src
	rec.Drawn = drawn
	rec.Counts = s.Counts()
	if err := e.record(rec); err != nil {
		return err
	}
	e.log.Info("turn finished",
		"player", p.Name,
		"laid", len(pending),
		"source", string(src),
		"hand", p.HandCount())

	if s.advanceTurn() {
		s.Round++
		e.log.Debug("round finished", "next_round", s.Round)
	}
	e.render()
	return nil
}

// Stop discards all cards and the roster. It can be called more than once.
func (e *Engine) Stop() {
	if e.session != nil {
		e.session.clear()
	}
	if e.state != Ended {
		e.log.Info("game stopped")
	}
	e.state = Ended
}

func (e *Engine) State() State {
	return e.state
}

// Session returns the running session, nil before a successful Setup.
func (e *Engine) Session() *Session {
	return e.session
}

// Winner returns the player who finished the game.
func (e *Engine) Winner() (string, bool) {
	return e.winner, e.winner != ""
}

// Round is the current round, 0 before Setup.
func (e *Engine) Round() int {
	if e.session == nil {
		return 0
	}
	return e.session.Round
}

// Rule returns the scoring rule in use.
func (e *Engine) Rule() ScoringRule {
	return e.opts.Rule
}

func (e *Engine) record(rec TurnRecord) error {
	if e.opts.Recorder == nil {
		return nil
	}
	if err := e.opts.Recorder.Record(rec); err != nil {
		return fmt.Errorf("record turn of %s: %w", rec.Player, err)
	}
	return nil
}

func (e *Engine) render() {
	if e.opts.Render != nil && e.session != nil {
		e.opts.Render(e.session)
	}
}
