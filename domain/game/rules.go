package game

import (
	"fmt"

	"github.com/luca-patrignani/rankmatch/domain/deck"
)

// ScoringRule computes a score from the cards of a hand.
type ScoringRule func(cards []deck.Card) int

// RankSum sums the rank of every card. It is the default rule.
func RankSum(cards []deck.Card) int {
	score := 0
	for _, c := range cards {
		score += c.Rank()
	}
	return score
}

// CardCount scores a hand by its number of cards.
func CardCount(cards []deck.Card) int {
	return len(cards)
}

var rules = map[string]ScoringRule{
	"rank_sum":   RankSum,
	"card_count": CardCount,
}

// RuleByName returns the scoring rule registered under name.
func RuleByName(name string) (ScoringRule, error) {
	rule, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown scoring rule %q", name)
	}
	return rule, nil
}

// CalculateScore applies rule to cards; a nil rule means RankSum.
func CalculateScore(cards []deck.Card, rule ScoringRule) int {
	if rule == nil {
		rule = RankSum
	}
	return rule(cards)
}

// matchesLead reports whether c may follow lead in the same lay-down.
func matchesLead(lead, c deck.Card) bool {
	return lead.Rank() == c.Rank()
}
