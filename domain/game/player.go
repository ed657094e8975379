package game

import "github.com/luca-patrignani/rankmatch/domain/deck"

// Player is a seat in the game. All card movement goes through its hand.
type Player struct {
	Name string
	hand *deck.Zone
}

func NewPlayer(name string) *Player {
	return &Player{Name: name, hand: deck.NewZone()}
}

// TakeFromHand removes the last card of the hand.
func (p *Player) TakeFromHand() (deck.Card, bool) {
	return p.hand.Take()
}

// TakeFromHandAt removes the card at index.
func (p *Player) TakeFromHandAt(index int) (deck.Card, error) {
	return p.hand.TakeAt(index)
}

func (p *Player) GiveToHand(c deck.Card) {
	p.hand.Give(c)
}

func (p *Player) HandCount() int {
	return p.hand.Count()
}

// Hand returns a copy of the hand in order.
func (p *Player) Hand() []deck.Card {
	return p.hand.Cards()
}

// Score applies rule to the current hand.
func (p *Player) Score(rule ScoringRule) int {
	return CalculateScore(p.hand.Cards(), rule)
}
