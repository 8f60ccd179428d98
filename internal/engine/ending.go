package engine

import "github.com/lapitia/Feelings-World/internal/models"

// CheckEnding reports whether state is terminal, or nil while the run
// continues. Stat boundaries are checked first, in the deck's declared stat
// order, so the first out-of-bounds stat decides the outcome even when the
// turn limit was reached on the same turn.
func CheckEnding(state *models.RunState, deck *models.Deck) *models.Outcome {
	for _, stat := range deck.Stats {
		v, ok := state.Stats[stat]
		if !ok {
			continue
		}
		if v <= models.StatMin {
			return models.BoundaryOutcome(stat, models.BoundaryLow)
		}
		if v >= models.StatMax {
			return models.BoundaryOutcome(stat, models.BoundaryHigh)
		}
	}

	if state.Turn >= deck.MaxTurns {
		if deck.Win.Flag != "" && state.HasFlag(deck.Win.Flag) {
			return &models.Outcome{ID: deck.Win.FlagOutcome}
		}
		return &models.Outcome{ID: deck.Win.BaseOutcome}
	}

	return nil
}
