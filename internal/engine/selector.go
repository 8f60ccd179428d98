package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lapitia/Feelings-World/internal/models"
)

// EligibleCards filters cards against state: the last-shown card is excluded,
// every require flag must be set and every forbid flag absent. If nothing
// passes, the full list is returned so a draw is always possible; immediate
// repetition is allowed only in that degenerate case.
func EligibleCards(state *models.RunState, cards []models.CardDef) []*models.CardDef {
	out := make([]*models.CardDef, 0, len(cards))
	for i := range cards {
		c := &cards[i]
		if c.ID == state.LastCardID {
			continue
		}
		if !flagsSatisfied(state, c) {
			continue
		}
		out = append(out, c)
	}
	if len(out) > 0 {
		return out
	}
	out = out[:0]
	for i := range cards {
		out = append(out, &cards[i])
	}
	return out
}

func flagsSatisfied(state *models.RunState, c *models.CardDef) bool {
	for _, f := range c.RequireFlags {
		if !state.HasFlag(f) {
			return false
		}
	}
	for _, f := range c.ForbidFlags {
		if state.HasFlag(f) {
			return false
		}
	}
	return true
}

// PickCard draws one card from pool, weighted by max(1, weight).
func PickCard(pool []*models.CardDef, roller dice.Roller) (*models.CardDef, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("empty card pool")
	}
	total := 0
	for _, c := range pool {
		total += cardWeight(c)
	}
	n, err := roller.Roll(total)
	if err != nil {
		return nil, fmt.Errorf("roll card: %w", err)
	}
	for _, c := range pool {
		n -= cardWeight(c)
		if n <= 0 {
			return c, nil
		}
	}
	// Unreachable when the roller honors its [1, total] contract.
	return pool[len(pool)-1], nil
}

func cardWeight(c *models.CardDef) int {
	if c.Weight < 1 {
		return 1
	}
	return c.Weight
}
