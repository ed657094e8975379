package game

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/rankmatch/domain/deck"
)

// TestSetupDeterministicDeal deals an unshuffled deck: cards come off the end
// of the rank-major deck, one per seat per round.
func TestSetupDeterministicDeal(t *testing.T) {
	opts := DefaultOptions()
	opts.ShufflePasses = 0
	e, _, _ := newTestEngine(t, opts)
	s := e.Session()

	if e.State() != Ready {
		t.Fatalf("expected state %s, got %s", Ready, e.State())
	}
	p1, err := s.Player("player1")
	if err != nil {
		t.Fatal(err)
	}
	p2, err := s.Player("player2")
	if err != nil {
		t.Fatal(err)
	}
	expected1 := []deck.Card{
		card(t, 13, deck.Spade), card(t, 13, deck.Diamond),
		card(t, 12, deck.Spade), card(t, 12, deck.Diamond),
		card(t, 11, deck.Spade),
	}
	expected2 := []deck.Card{
		card(t, 13, deck.Heart), card(t, 13, deck.Club),
		card(t, 12, deck.Heart), card(t, 12, deck.Club),
		card(t, 11, deck.Heart),
	}
	if !equalCards(p1.Hand(), expected1) {
		t.Fatalf("player1 hand: expected %v, got %v", expected1, p1.Hand())
	}
	if !equalCards(p2.Hand(), expected2) {
		t.Fatalf("player2 hand: expected %v, got %v", expected2, p2.Hand())
	}
	if table := s.Table.Cards(); !equalCards(table, []deck.Card{card(t, 11, deck.Diamond)}) {
		t.Fatalf("unexpected table %v", table)
	}
	if s.Deck.Count() != deck.StandardSize-11 {
		t.Fatalf("expected %d cards in deck, got %d", deck.StandardSize-11, s.Deck.Count())
	}
	if got := p1.Score(RankSum); got != 61 {
		t.Fatalf("expected player1 score 61, got %d", got)
	}
}

func TestSetupDeckUniqueness(t *testing.T) {
	opts := DefaultOptions()
	opts.Source = deck.NewMathSource(7)
	e, _, _ := newTestEngine(t, opts)
	s := e.Session()

	all := append(s.Deck.Cards(), s.Table.Cards()...)
	for _, p := range s.Players {
		all = append(all, p.Hand()...)
	}
	if len(all) != deck.StandardSize {
		t.Fatalf("expected %d cards in circulation, got %d", deck.StandardSize, len(all))
	}
	seen := make(map[deck.Card]bool)
	for _, c := range all {
		if seen[c] {
			t.Fatalf("card %v present twice", c)
		}
		seen[c] = true
	}
}

func TestSetupDeckUnderflow(t *testing.T) {
	tests := []struct {
		name  string
		cards int
	}{
		{name: "fails while dealing", cards: 9},
		{name: "fails while seeding the table", cards: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.ShufflePasses = 0
			opts.NewDeck = func() *deck.Zone {
				z := deck.NewZone()
				full := deck.NewStandardDeck().Cards()
				for _, c := range full[:tt.cards] {
					z.Give(c)
				}
				return z
			}
			opts.Console = &scriptedConsole{}
			e := NewEngine(opts)
			err := e.Setup()
			if !errors.Is(err, ErrDeckUnderflow) {
				t.Fatalf("expected ErrDeckUnderflow, got %v", err)
			}
			if e.State() != NotStarted {
				t.Fatalf("expected state %s, got %s", NotStarted, e.State())
			}
			if _, err := e.PlayRound(); !errors.Is(err, ErrNotReady) {
				t.Fatalf("expected ErrNotReady, got %v", err)
			}
		})
	}
}

func TestSetupPlayerValidation(t *testing.T) {
	opts := DefaultOptions()
	opts.Players = []string{"ann", "ann"}
	if err := NewEngine(opts).Setup(); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer, got %v", err)
	}
	opts.Players = nil
	if err := NewEngine(opts).Setup(); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestSetupTwice(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultOptions())
	if err := e.Setup(); err == nil {
		t.Fatal("expected second setup to fail")
	}
}

func TestSetupRendersOnce(t *testing.T) {
	calls := 0
	opts := DefaultOptions()
	opts.Render = func(*Session) { calls++ }
	newTestEngine(t, opts)
	if calls != 1 {
		t.Fatalf("expected 1 render after setup, got %d", calls)
	}
}

// TestConservation plays many turns and checks that no card is created or
// lost, and that every lay-down holds a single rank.
func TestConservation(t *testing.T) {
	opts := DefaultOptions()
	opts.Source = deck.NewMathSource(99)
	opts.FinishThreshold = 0
	e, console, rec := newTestEngine(t, opts)

	rounds := 30
	for i := 0; i < rounds*2; i++ {
		src := "d"
		if i%2 == 1 {
			src = "t"
		}
		console.lines = append(console.lines, "0", "n", src)
	}
	for i := 0; i < rounds; i++ {
		more, err := e.PlayRound()
		if err != nil {
			t.Fatalf("round %d: %v", i+1, err)
		}
		if !more {
			t.Fatalf("game ended early in round %d", i+1)
		}
	}

	if len(rec.turns) != rounds*2 {
		t.Fatalf("expected %d turns, got %d", rounds*2, len(rec.turns))
	}
	for i, turn := range rec.turns {
		if total := turn.Counts.Total(); total != deck.StandardSize {
			t.Fatalf("turn %d: %d cards in circulation", i, total)
		}
		for _, c := range turn.Laid {
			if c.Rank() != turn.Laid[0].Rank() {
				t.Fatalf("turn %d: mixed ranks laid %v", i, turn.Laid)
			}
		}
	}
	if total := e.Session().Counts().Total(); total != deck.StandardSize {
		t.Fatalf("expected %d cards at the end, got %d", deck.StandardSize, total)
	}
}

func TestTurnOrder(t *testing.T) {
	opts := DefaultOptions()
	opts.Players = []string{"carol", "alice", "bob"}
	opts.FinishThreshold = 0
	e, console, rec := newTestEngine(t, opts)
	for i := 0; i < 6; i++ {
		console.lines = append(console.lines, "0", "n", "t")
	}
	for i := 0; i < 2; i++ {
		if _, err := e.PlayRound(); err != nil {
			t.Fatal(err)
		}
	}
	expectedPlayers := []string{"carol", "alice", "bob", "carol", "alice", "bob"}
	expectedRounds := []int{1, 1, 1, 2, 2, 2}
	for i, turn := range rec.turns {
		if turn.Player != expectedPlayers[i] || turn.Round != expectedRounds[i] {
			t.Fatalf("turn %d: expected %s in round %d, got %s in round %d",
				i, expectedPlayers[i], expectedRounds[i], turn.Player, turn.Round)
		}
	}
	if e.Round() != 3 {
		t.Fatalf("expected round 3 after two rounds, got %d", e.Round())
	}
}

func TestStop(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultOptions())
	s := e.Session()
	e.Stop()
	if e.State() != Ended {
		t.Fatalf("expected state %s, got %s", Ended, e.State())
	}
	if s.Deck.Count() != 0 || s.Table.Count() != 0 || len(s.Players) != 0 {
		t.Fatalf("expected everything cleared, got deck=%d table=%d players=%d",
			s.Deck.Count(), s.Table.Count(), len(s.Players))
	}
	e.Stop()
	if e.State() != Ended {
		t.Fatal("expected stop to be idempotent")
	}
	if _, err := e.PlayRound(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady after stop, got %v", err)
	}
	if _, ok := e.Winner(); ok {
		t.Fatal("expected no winner after stop")
	}
}

func TestStopBeforeSetup(t *testing.T) {
	e := NewEngine(DefaultOptions())
	e.Stop()
	if e.State() != Ended {
		t.Fatalf("expected state %s, got %s", Ended, e.State())
	}
	if err := e.Setup(); err == nil {
		t.Fatal("expected setup after stop to fail")
	}
}
