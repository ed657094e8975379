package deck

import (
	"errors"
	"testing"
)

func mustCard(t *testing.T, rank, suit int) Card {
	t.Helper()
	c, err := NewCard(rank, suit)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewStandardDeckUnique(t *testing.T) {
	d := NewStandardDeck()
	if d.Count() != StandardSize {
		t.Fatalf("expected %d cards, got %d", StandardSize, d.Count())
	}
	seen := make(map[Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	for r := MinRank; r <= MaxRank; r++ {
		for s := MinSuit; s <= MaxSuit; s++ {
			if n := seen[mustCard(t, r, s)]; n != 1 {
				t.Fatalf("card %d,%d present %d times", r, s, n)
			}
		}
	}
}

func TestNewStandardDeckOrder(t *testing.T) {
	cards := NewStandardDeck().Cards()
	if cards[0] != mustCard(t, Ace, Club) {
		t.Fatalf("expected A♣ first, got %v", cards[0])
	}
	if cards[1] != mustCard(t, Ace, Diamond) {
		t.Fatalf("expected A♦ second, got %v", cards[1])
	}
	if cards[len(cards)-1] != mustCard(t, King, Spade) {
		t.Fatalf("expected K♠ last, got %v", cards[len(cards)-1])
	}
}

func TestTakeFromEnd(t *testing.T) {
	a, b := mustCard(t, 2, Club), mustCard(t, 3, Club)
	z := NewZone(a, b)
	c, ok := z.Take()
	if !ok || c != b {
		t.Fatalf("expected %v, got %v (ok=%v)", b, c, ok)
	}
	c, ok = z.Take()
	if !ok || c != a {
		t.Fatalf("expected %v, got %v (ok=%v)", a, c, ok)
	}
	c, ok = z.Take()
	if ok || !c.IsZero() {
		t.Fatalf("expected empty take, got %v (ok=%v)", c, ok)
	}
}

func TestTakeAt(t *testing.T) {
	a, b, c := mustCard(t, 2, Club), mustCard(t, 3, Club), mustCard(t, 4, Club)
	z := NewZone(a, b, c)
	got, err := z.TakeAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != b {
		t.Fatalf("expected %v, got %v", b, got)
	}
	rest := z.Cards()
	if len(rest) != 2 || rest[0] != a || rest[1] != c {
		t.Fatalf("unexpected remaining cards %v", rest)
	}
}

func TestTakeAtEmptyZone(t *testing.T) {
	z := NewZone()
	_, err := z.TakeAt(0)
	if !errors.Is(err, ErrEmptyZone) {
		t.Fatalf("expected ErrEmptyZone, got %v", err)
	}
	if z.Count() != 0 {
		t.Fatalf("expected empty zone, got %d cards", z.Count())
	}
}

func TestTakeAtInvalidIndex(t *testing.T) {
	z := NewZone(mustCard(t, 5, Heart))
	for _, idx := range []int{-1, 1, 10} {
		if _, err := z.TakeAt(idx); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("index %d: expected ErrInvalidIndex, got %v", idx, err)
		}
	}
	if z.Count() != 1 {
		t.Fatalf("zone changed after invalid take: %d cards", z.Count())
	}
}

func TestGiveAndClear(t *testing.T) {
	z := NewZone()
	z.Give(mustCard(t, 9, Spade))
	z.Give(mustCard(t, 10, Spade))
	if z.Count() != 2 {
		t.Fatalf("expected 2 cards, got %d", z.Count())
	}
	if last := z.Cards()[1]; last != mustCard(t, 10, Spade) {
		t.Fatalf("expected give to append, last is %v", last)
	}
	z.Clear()
	if z.Count() != 0 {
		t.Fatalf("expected 0 cards after clear, got %d", z.Count())
	}
}

func TestCardsReturnsCopy(t *testing.T) {
	z := NewZone(mustCard(t, 1, Club))
	cards := z.Cards()
	cards[0] = mustCard(t, 2, Club)
	if z.Cards()[0] != mustCard(t, 1, Club) {
		t.Fatal("mutating Cards() result changed the zone")
	}
}
