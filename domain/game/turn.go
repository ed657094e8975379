package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/luca-patrignani/rankmatch/domain/deck"
)

const wrongInput = "wrong input!"

var errNoConsole = errors.New("no console configured")

// offerFinish asks a player scoring below the threshold whether to end the
// game now.
func (e *Engine) offerFinish(p *Player) (bool, error) {
	score := p.Score(e.opts.Rule)
	if score >= e.opts.FinishThreshold {
		return false, nil
	}
	e.log.Debug("finish offered", "player", p.Name, "score", score)
	return e.askYesNo(fmt.Sprintf("%s, type y to finish the game or n to continue", p.Name), true)
}

// layDown lets p pick same-rank cards into a pending buffer. A picked card
// whose rank differs from the first one goes back to the hand and ends the
// lay-down; it is returned as rejected.
func (e *Engine) layDown(p *Player) (pending []deck.Card, rejected deck.Card, err error) {
	defer func() {
		if err != nil {
			for _, c := range pending {
				p.GiveToHand(c)
			}
			pending = nil
		}
	}()

	for p.HandCount() > 0 {
		if len(pending) > 0 {
			e.render()
			more, err := e.askYesNo(fmt.Sprintf("%s, choose another card? (y/n)", p.Name), false)
			if err != nil {
				return pending, deck.Card{}, err
			}
			if !more {
				break
			}
		}

		idx, err := e.askIndex(p)
		if err != nil {
			return pending, deck.Card{}, err
		}
		c, err := p.TakeFromHandAt(idx)
		if err != nil {
			// askIndex only returns indexes of the current hand
			return pending, deck.Card{}, err
		}
		if len(pending) > 0 && !matchesLead(pending[0], c) {
			p.GiveToHand(c)
			e.log.Debug("card does not match, returned to hand",
				"player", p.Name, "card", c.String(), "lead", pending[0].String())
			return pending, c, nil
		}
		pending = append(pending, c)
		e.log.Debug("card laid down", "player", p.Name, "card", c.String(), "pending", len(pending))
	}
	return pending, deck.Card{}, nil
}

// draw moves one card from the chosen source to the hand. An empty source
// adds nothing.
func (e *Engine) draw(p *Player) (DrawSource, deck.Card, error) {
	src, err := e.askDrawSource()
	if err != nil {
		return "", deck.Card{}, err
	}
	zone := e.session.Deck
	if src == DrawTable {
		zone = e.session.Table
	}
	c, ok := zone.Take()
	if !ok {
		e.log.Debug("draw source empty", "player", p.Name, "source", string(src))
		return src, deck.Card{}, nil
	}
	p.GiveToHand(c)
	return src, c, nil
}

// commit moves the pending cards to the table in pick order.
func (e *Engine) commit(pending []deck.Card) {
	for _, c := range pending {
		e.session.Table.Give(c)
	}
}

func (e *Engine) readLine(prompt string) (string, error) {
	if e.opts.Console == nil {
		return "", errNoConsole
	}
	line, err := e.opts.Console.ReadLine(prompt)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (e *Engine) notify(msg string) {
	if e.opts.Console != nil {
		e.opts.Console.Notify(msg)
	}
}

// askYesNo accepts exactly "y" or "n". complain reports other answers to the
// player before asking again.
func (e *Engine) askYesNo(prompt string, complain bool) (bool, error) {
	for {
		line, err := e.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if complain {
			e.notify(wrongInput)
		}
	}
}

// askIndex accepts only the plain decimal spelling of a hand index.
func (e *Engine) askIndex(p *Player) (int, error) {
	prompt := fmt.Sprintf("%s, choose a card to place between 0 and %d", p.Name, p.HandCount()-1)
	for {
		line, err := e.readLine(prompt)
		if err != nil {
			return 0, err
		}
		idx, convErr := strconv.Atoi(line)
		if convErr == nil && strconv.Itoa(idx) == line && idx >= 0 && idx < p.HandCount() {
			return idx, nil
		}
	}
}

func (e *Engine) askDrawSource() (DrawSource, error) {
	for {
		line, err := e.readLine("press d to draw from the deck or t to draw from the table")
		if err != nil {
			return "", err
		}
		switch line {
		case "d":
			return DrawDeck, nil
		case "t":
			return DrawTable, nil
		}
		e.notify(wrongInput)
	}
}
