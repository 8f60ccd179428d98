package engine

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lapitia/Feelings-World/internal/models"
)

// Every delta is scaled by this factor before it is added to a stat.
const amplification = 1.5

// ApplyDecision resolves one branch of card against state: stat effects
// first, then flag changes, then the turn increment. Deltas are amplified by
// 1.5, the sum rounded half away from zero and clamped to [0, 100].
//
// All ranged effects are rolled up front, so a roller failure leaves state
// untouched.
func ApplyDecision(state *models.RunState, card *models.CardDef, dir models.Direction, roller dice.Roller) error {
	branch := card.Branch(dir)

	deltas := make(map[models.StatKey]int, len(branch.Effects))
	for stat, effect := range branch.Effects {
		delta, err := rollDelta(effect, roller)
		if err != nil {
			return fmt.Errorf("card %q, stat %q: %w", card.ID, stat, err)
		}
		deltas[stat] = delta
	}

	for stat, delta := range deltas {
		if _, ok := state.Stats[stat]; !ok {
			continue
		}
		state.Stats[stat] = amplify(state.Stats[stat], delta)
	}

	// Clear runs after set, so a flag listed in both ends up absent.
	for _, f := range branch.SetFlags {
		state.SetFlag(f)
	}
	for _, f := range branch.ClearFlags {
		state.ClearFlag(f)
	}

	state.Turn++
	return nil
}

func rollDelta(v models.EffectValue, roller dice.Roller) (int, error) {
	if !v.Range {
		return v.Fixed, nil
	}
	n, err := roller.Roll(v.Hi - v.Lo + 1)
	if err != nil {
		return 0, fmt.Errorf("roll effect: %w", err)
	}
	return v.Lo + n - 1, nil
}

// amplify adds the scaled delta to current. math.Round implements the
// round-half-away-from-zero rule, so 50 + 1.5*3 = 54.5 lands on 55.
func amplify(current, delta int) int {
	v := math.Round(float64(current) + amplification*float64(delta))
	return clampStat(int(v))
}

func clampStat(v int) int {
	if v < models.StatMin {
		return models.StatMin
	}
	if v > models.StatMax {
		return models.StatMax
	}
	return v
}
