package deck

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (1-4)
const (
	Club    = 1 // ♣ (black)
	Diamond = 2 // ♦ (red)
	Heart   = 3 // ♥ (red)
	Spade   = 4 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

const (
	MinRank = Ace
	MaxRank = King
	MinSuit = Club
	MaxSuit = Spade
)

// Card is an immutable playing card. Two cards are the same card when both
// rank and suit are equal, so Card values compare with ==.
type Card struct {
	rank uint8 // 1-13: ace through king
	suit uint8 // 1-4: clubs, diamonds, hearts, spades
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//   - suit: 1-4 (Club, Diamond, Heart, Spade)
//
// Returns the Card or an error if rank or suit is invalid.
func NewCard(rank, suit int) (Card, error) {
	if rank < MinRank || rank > MaxRank || suit < MinSuit || suit > MaxSuit {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{rank: uint8(rank), suit: uint8(suit)}, nil
}

// Rank returns the rank value of the Card (1-13), or 0 for the zero Card.
func (c Card) Rank() int {
	return int(c.rank)
}

// Suit returns the suit value of the Card (1-4), or 0 for the zero Card.
func (c Card) Suit() int {
	return int(c.suit)
}

// IsZero reports whether c is the placeholder returned by failed takes.
func (c Card) IsZero() bool {
	return c.rank == 0
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if c.IsZero() {
		return "?"
	}
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Gray("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Gray("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}

type cardJSON struct {
	Rank int `json:"rank"`
	Suit int `json:"suit"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Rank: c.Rank(), Suit: c.Suit()})
}

// UnmarshalJSON accepts the zero card or a valid rank/suit pair.
func (c *Card) UnmarshalJSON(data []byte) error {
	var cj cardJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	if cj.Rank == 0 && cj.Suit == 0 {
		*c = Card{}
		return nil
	}
	card, err := NewCard(cj.Rank, cj.Suit)
	if err != nil {
		return err
	}
	*c = card
	return nil
}
