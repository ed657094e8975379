package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/rankmatch/domain/deck"
	"github.com/luca-patrignani/rankmatch/domain/game"
	"github.com/luca-patrignani/rankmatch/ledger"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// renderState dumps the table, then every hand with its score.
func renderState(s *game.Session, rule game.ScoringRule, last ...pterm.Panel) string {
	tbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := fmt.Sprintf("|TABLE| deck: %d", s.Deck.Count())
	table := pterm.Panel{Data: tbox.WithTitle(pterm.LightGreen(title)).WithTitleTopLeft().Sprint(fitTitle(title, zoneLines(s.Table.Cards())))}

	var players []pterm.Panel
	for i, p := range s.Players {
		players = append(players, pterm.Panel{Data: playerInfo(p, rule, i == s.CurrentTurn)})
	}
	rows := [][]pterm.Panel{{table}, players}
	if len(last) > 0 {
		rows = append(rows, last)
	}

	out, err := pterm.DefaultPanel.WithPanels(rows).Srender()
	if err != nil {
		return plainState(s, rule)
	}
	return out
}

func playerInfo(p *game.Player, rule game.ScoringRule, current bool) string {
	hpadding := 4
	name := p.Name
	if current {
		hpadding = 10
		name = pterm.LightCyan(p.Name)
	}
	pbox := pterm.DefaultBox.WithLeftPadding(hpadding).WithRightPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	hand := p.Hand()
	body := zoneLines(hand) + fmt.Sprintf("\nscore: %d", game.CalculateScore(hand, rule))
	if desc, err := game.DescribeHand(hand); err == nil {
		body += "\n" + pterm.LightYellow(desc)
	}
	return pbox.WithTitle(name).WithTitleTopLeft().Sprint(fitTitle(name, body))
}

// fitTitle pads the first line of body so the body is at least as wide as
// title. pterm's box printer panics when a title outgrows its body.
func fitTitle(title, body string) string {
	tw := textWidth(title)
	bw := 0
	for _, line := range strings.Split(body, "\n") {
		bw = max(bw, textWidth(line))
	}
	if bw >= tw {
		return body
	}
	first, rest, found := strings.Cut(body, "\n")
	first += strings.Repeat(" ", tw-textWidth(first))
	if !found {
		return first
	}
	return first + "\n" + rest
}

func textWidth(s string) int {
	return runewidth.StringWidth(pterm.RemoveColorFromString(s))
}

// zoneLines lists cards with the index a player types to pick them.
func zoneLines(cards []deck.Card) string {
	if len(cards) == 0 {
		return "(empty)"
	}
	lines := make([]string, len(cards))
	for i, c := range cards {
		lines[i] = fmt.Sprintf("%d: %s", i, c.String())
	}
	return strings.Join(lines, "\n")
}

func plainState(s *game.Session, rule game.ScoringRule) string {
	var b strings.Builder
	b.WriteString("--------\ntable:\n")
	b.WriteString(zoneLines(s.Table.Cards()))
	b.WriteString("\n--------\n\n")
	for _, p := range s.Players {
		fmt.Fprintf(&b, "--------\n%s's hand:\n%s\nscore: %d\n--------\n\n", p.Name, zoneLines(p.Hand()), p.Score(rule))
	}
	return b.String()
}

func getTurnPanel(turn game.TurnRecord) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var text string
	switch {
	case turn.Finished:
		text = pterm.Sprintfln("%s finished the game", pterm.LightCyan(turn.Player))
	default:
		laid := make([]string, len(turn.Laid))
		for i, c := range turn.Laid {
			laid[i] = c.String()
		}
		text = pterm.Sprintfln("%s laid %s", pterm.LightCyan(turn.Player), strings.Join(laid, " "))
		if !turn.Rejected.IsZero() {
			text += pterm.Sprintfln("%s did not match and went back to the hand", turn.Rejected.String())
		}
		if turn.Drawn.IsZero() {
			text += pterm.Sprintfln("the %s was empty, nothing drawn", turn.Source)
		} else {
			text += pterm.Sprintfln("drew from the %s", turn.Source)
		}
	}
	title := "|LAST TURN|"
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(fitTitle(title, text))}
}

func getWinnerPanel(name string, score int) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	text := pterm.Sprintfln("%s won with a score of %d", pterm.LightCyan(name), score)
	title := "|GAME OVER|"
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen(title)).WithTitleTopCenter().Sprint(fitTitle(title, text))}
}

// historyTable lists every recorded turn with the head of its block hash.
func historyTable(history *ledger.Blockchain) pterm.TableData {
	data := pterm.TableData{{"#", "round", "player", "event", "laid", "draw", "hash"}}
	for i := 1; i < history.Len(); i++ {
		b, err := history.GetByIndex(i)
		if err != nil {
			break
		}
		hash := b.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			strconv.Itoa(b.Turn.Round),
			b.Turn.Player,
			b.Metadata.Extra["event"],
			strconv.Itoa(len(b.Turn.Laid)),
			string(b.Turn.Source),
			hash,
		})
	}
	return data
}
