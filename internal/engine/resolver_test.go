package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapitia/Feelings-World/internal/models"
)

func stateWith(stats map[models.StatKey]int) *models.RunState {
	return &models.RunState{Stats: stats, Flags: map[string]bool{}}
}

func TestApplyDecision_FixedAmplification(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"half rounds away from zero", 50, 3, 55},   // 50 + 4.5 = 54.5 -> 55
		{"negative half rounds up", 50, -3, 46},     // 50 - 4.5 = 45.5 -> 46
		{"whole delta", 50, 4, 56},                  // 50 + 6
		{"clamped at floor", 50, -40, 0},            // 50 - 60 = -10 -> 0
		{"clamped at ceiling", 50, 40, 100},         // 50 + 60 = 110 -> 100
		{"exact floor", 30, -20, 0},                 // 30 - 30
		{"no movement", 50, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := stateWith(map[models.StatKey]int{"joy": tt.start})
			card := &models.CardDef{
				ID: "c",
				Left: models.Branch{
					Effects: map[models.StatKey]models.EffectValue{"joy": models.FixedEffect(tt.delta)},
				},
			}

			require.NoError(t, ApplyDecision(state, card, models.DirectionLeft, &scriptRoller{}))
			assert.Equal(t, tt.want, state.Stats["joy"])
		})
	}
}

func TestApplyDecision_RangedEffect(t *testing.T) {
	state := stateWith(map[models.StatKey]int{"calm": 50})
	card := &models.CardDef{
		ID: "c",
		Right: models.Branch{
			Effects: map[models.StatKey]models.EffectValue{"calm": models.RangeEffect(2, 6)},
		},
	}

	// Range width 5; a roll of 3 yields delta 2+3-1 = 4, so 50 + 6 = 56.
	require.NoError(t, ApplyDecision(state, card, models.DirectionRight, &scriptRoller{rolls: []int{3}}))
	assert.Equal(t, 56, state.Stats["calm"])
}

func TestApplyDecision_RangedBounds(t *testing.T) {
	// Every possible roll of a [lo, hi] range stays inside the range.
	roller := NewSeededRoller(9)
	for i := 0; i < 200; i++ {
		state := stateWith(map[models.StatKey]int{"joy": 50})
		card := &models.CardDef{
			ID: "c",
			Left: models.Branch{
				Effects: map[models.StatKey]models.EffectValue{"joy": models.RangeEffect(-4, -1)},
			},
		}
		require.NoError(t, ApplyDecision(state, card, models.DirectionLeft, roller))
		// Amplified deltas: -6 .. -1.5, rounded: stat in [44, 49].
		assert.GreaterOrEqual(t, state.Stats["joy"], 44)
		assert.LessOrEqual(t, state.Stats["joy"], 49)
	}
}

func TestApplyDecision_FlagChanges(t *testing.T) {
	state := stateWith(map[models.StatKey]int{"joy": 50})
	state.SetFlag("old_news")

	card := &models.CardDef{
		ID: "c",
		Left: models.Branch{
			SetFlags:   []string{"storm_coming"},
			ClearFlags: []string{"old_news"},
		},
	}

	require.NoError(t, ApplyDecision(state, card, models.DirectionLeft, &scriptRoller{}))
	assert.True(t, state.HasFlag("storm_coming"))
	assert.False(t, state.HasFlag("old_news"))
}

func TestApplyDecision_ClearWinsOverSet(t *testing.T) {
	state := stateWith(map[models.StatKey]int{"joy": 50})
	card := &models.CardDef{
		ID: "c",
		Right: models.Branch{
			SetFlags:   []string{"contested"},
			ClearFlags: []string{"contested"},
		},
	}

	require.NoError(t, ApplyDecision(state, card, models.DirectionRight, &scriptRoller{}))
	assert.False(t, state.HasFlag("contested"))
}

func TestApplyDecision_IncrementsTurn(t *testing.T) {
	state := stateWith(map[models.StatKey]int{"joy": 50})
	card := &models.CardDef{ID: "c"}

	require.NoError(t, ApplyDecision(state, card, models.DirectionLeft, &scriptRoller{}))
	require.NoError(t, ApplyDecision(state, card, models.DirectionRight, &scriptRoller{}))
	assert.Equal(t, 2, state.Turn)
}

func TestApplyDecision_StatsStayInBounds(t *testing.T) {
	// Hammer one stat in both directions; it must never leave [0, 100].
	state := stateWith(map[models.StatKey]int{"joy": 50})
	up := &models.CardDef{
		ID:   "up",
		Left: models.Branch{Effects: map[models.StatKey]models.EffectValue{"joy": models.RangeEffect(10, 30)}},
	}
	down := &models.CardDef{
		ID:   "down",
		Left: models.Branch{Effects: map[models.StatKey]models.EffectValue{"joy": models.RangeEffect(-30, -10)}},
	}

	roller := NewSeededRoller(3)
	for i := 0; i < 100; i++ {
		card := up
		if i%3 == 0 {
			card = down
		}
		require.NoError(t, ApplyDecision(state, card, models.DirectionLeft, roller))
		assert.GreaterOrEqual(t, state.Stats["joy"], models.StatMin)
		assert.LessOrEqual(t, state.Stats["joy"], models.StatMax)
	}
}
