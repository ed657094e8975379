package game

import (
	"fmt"

	"github.com/luca-patrignani/rankmatch/domain/deck"
	"github.com/paulhankin/poker"
)

// DescribeHand names the poker hand formed by a 5 or 7 card hand, e.g.
// "two pair". Other hand sizes return an error.
func DescribeHand(cards []deck.Card) (string, error) {
	if n := len(cards); n != 5 && n != 7 {
		return "", fmt.Errorf("cannot describe a hand of %d cards", n)
	}
	pc := make([]poker.Card, len(cards))
	for i, c := range cards {
		card, err := toPokerCard(c)
		if err != nil {
			return "", err
		}
		pc[i] = card
	}
	return poker.Describe(pc)
}

func toPokerCard(c deck.Card) (poker.Card, error) {
	var zero poker.Card
	var s poker.Suit
	switch c.Suit() {
	case deck.Club:
		s = poker.Club
	case deck.Diamond:
		s = poker.Diamond
	case deck.Heart:
		s = poker.Heart
	case deck.Spade:
		s = poker.Spade
	default:
		return zero, fmt.Errorf("invalid suit %d", c.Suit())
	}
	card, err := poker.MakeCard(s, poker.Rank(c.Rank()))
	if err != nil {
		return zero, fmt.Errorf("invalid card %v: %w", c, err)
	}
	return card, nil
}
