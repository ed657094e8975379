package deck

import (
	"errors"
	"fmt"
)

// StandardSize is the number of cards in a standard deck.
const StandardSize = (MaxRank - MinRank + 1) * (MaxSuit - MinSuit + 1)

var (
	ErrEmptyZone    = errors.New("zone is empty")
	ErrInvalidIndex = errors.New("invalid card index")
)

// Zone is an ordered collection of cards: the deck, the table pile or a hand.
// Order is insertion order unless the zone has been shuffled.
type Zone struct {
	cards []Card
}

// NewZone returns a zone holding the given cards in order.
func NewZone(cards ...Card) *Zone {
	z := &Zone{}
	z.cards = append(z.cards, cards...)
	return z
}

// NewStandardDeck returns a zone with every rank×suit pair exactly once,
// rank-major: A♣ A♦ A♥ A♠ 2♣ ... K♠.
func NewStandardDeck() *Zone {
	z := &Zone{cards: make([]Card, 0, StandardSize)}
	for r := MinRank; r <= MaxRank; r++ {
		for s := MinSuit; s <= MaxSuit; s++ {
			z.cards = append(z.cards, Card{rank: uint8(r), suit: uint8(s)})
		}
	}
	return z
}

// Take removes and returns the last card of the zone.
// It returns false and the zero Card when the zone is empty.
func (z *Zone) Take() (Card, bool) {
	if len(z.cards) == 0 {
		return Card{}, false
	}
	c, _ := z.TakeAt(len(z.cards) - 1)
	return c, true
}

// TakeAt removes and returns the card at index.
func (z *Zone) TakeAt(index int) (Card, error) {
	if len(z.cards) == 0 {
		return Card{}, ErrEmptyZone
	}
	if index < 0 || index >= len(z.cards) {
		return Card{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidIndex, index, len(z.cards)-1)
	}
	c := z.cards[index]
	z.cards = append(z.cards[:index], z.cards[index+1:]...)
	return c, nil
}

// Give appends card to the zone.
func (z *Zone) Give(card Card) {
	z.cards = append(z.cards, card)
}

func (z *Zone) Count() int {
	return len(z.cards)
}

// Clear empties the zone. The removed cards are discarded.
func (z *Zone) Clear() {
	z.cards = nil
}

// Cards returns a copy of the zone contents in order.
func (z *Zone) Cards() []Card {
	out := make([]Card, len(z.cards))
	copy(out, z.cards)
	return out
}
