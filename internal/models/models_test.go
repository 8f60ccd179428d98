package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEffectValueUnmarshal(t *testing.T) {
	var branch Branch
	doc := `
effects:
  joy: -4
  calm: [2, 6]
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &branch))
	assert.Equal(t, FixedEffect(-4), branch.Effects["joy"])
	assert.Equal(t, RangeEffect(2, 6), branch.Effects["calm"])
}

func TestEffectValueUnmarshal_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"three elements", "effects: {joy: [1, 2, 3]}"},
		{"one element", "effects: {joy: [1]}"},
		{"not a number", "effects: {joy: soon}"},
		{"mapping", "effects: {joy: {lo: 1, hi: 2}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var branch Branch
			assert.Error(t, yaml.Unmarshal([]byte(tt.doc), &branch))
		})
	}
}

func TestEffectValueValidate(t *testing.T) {
	assert.NoError(t, FixedEffect(-10).Validate())
	assert.NoError(t, RangeEffect(-3, 3).Validate())
	assert.NoError(t, RangeEffect(2, 2).Validate())
	assert.Error(t, RangeEffect(4, 1).Validate())
}

func validDeck() *Deck {
	return &Deck{
		Stats:    []StatKey{"joy", "calm"},
		MaxTurns: 10,
		Win:      WinCondition{Flag: "ready", FlagOutcome: "RESONANCE", BaseOutcome: "HARMONY"},
		Cards: []CardDef{
			{
				ID:     "a",
				Weight: 2,
				Left: Branch{
					Effects: map[StatKey]EffectValue{"joy": FixedEffect(-4)},
				},
			},
		},
	}
}

func TestDeckValidate(t *testing.T) {
	require.NoError(t, validDeck().Validate())

	tests := []struct {
		name   string
		mutate func(*Deck)
	}{
		{"no stats", func(d *Deck) { d.Stats = nil }},
		{"duplicate stat", func(d *Deck) { d.Stats = []StatKey{"joy", "joy"} }},
		{"zero max turns", func(d *Deck) { d.MaxTurns = 0 }},
		{"negative max turns", func(d *Deck) { d.MaxTurns = -3 }},
		{"missing win outcome", func(d *Deck) { d.Win.BaseOutcome = "" }},
		{"no cards", func(d *Deck) { d.Cards = nil }},
		{"card without id", func(d *Deck) { d.Cards[0].ID = "" }},
		{"duplicate card id", func(d *Deck) { d.Cards = append(d.Cards, CardDef{ID: "a"}) }},
		{"undeclared effect stat", func(d *Deck) {
			d.Cards[0].Right.Effects = map[StatKey]EffectValue{"envy": FixedEffect(1)}
		}},
		{"inverted range", func(d *Deck) {
			d.Cards[0].Left.Effects["joy"] = RangeEffect(5, 2)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDeck()
			tt.mutate(d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestParseDeck(t *testing.T) {
	doc := `
stats: [joy]
max_turns: 3
win:
  flag: ready
  flag_outcome: RESONANCE
  base_outcome: HARMONY
cards:
  - id: only
    weight: 1
    left:
      effects:
        joy: [-6, -2]
    right:
      set_flags: [ready]
`
	deck, err := ParseDeck([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, deck.MaxTurns)
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, RangeEffect(-6, -2), deck.Cards[0].Left.Effects["joy"])
	assert.Equal(t, []string{"ready"}, deck.Cards[0].Right.SetFlags)
}

func TestLoadDeck_ShippedDeck(t *testing.T) {
	deck, err := LoadDeck("../../data/deck.yaml")
	require.NoError(t, err)
	assert.Equal(t, []StatKey{"joy", "sadness", "anger", "fear", "calm"}, deck.Stats)
	assert.NotEmpty(t, deck.Cards)
	assert.Equal(t, "resonance_ready", deck.Win.Flag)
}

func TestNewRunState(t *testing.T) {
	state := NewRunState(validDeck())
	assert.Equal(t, map[StatKey]int{"joy": 50, "calm": 50}, state.Stats)
	assert.Empty(t, state.Flags)
	assert.Equal(t, 0, state.Turn)
	assert.Empty(t, state.LastCardID)
}

func TestRunStateFlags(t *testing.T) {
	state := NewRunState(validDeck())
	assert.False(t, state.HasFlag("ready"))
	state.SetFlag("ready")
	assert.True(t, state.HasFlag("ready"))
	state.ClearFlag("ready")
	assert.False(t, state.HasFlag("ready"))
	state.ClearFlag("never_set") // no-op
}

func TestOutcomeKeys(t *testing.T) {
	o := BoundaryOutcome("joy", BoundaryLow)
	assert.Equal(t, "JOY_LOW", o.ID)
	assert.Equal(t, "ending.JOY_LOW.title", o.TitleKey())
	assert.Equal(t, "ending.JOY_LOW.body", o.BodyKey())

	win := &Outcome{ID: "RESONANCE"}
	assert.Equal(t, "ending.RESONANCE.title", win.TitleKey())
}

func TestCardBranch(t *testing.T) {
	c := &CardDef{
		ID:    "a",
		Left:  Branch{SetFlags: []string{"l"}},
		Right: Branch{SetFlags: []string{"r"}},
	}
	assert.Equal(t, []string{"l"}, c.Branch(DirectionLeft).SetFlags)
	assert.Equal(t, []string{"r"}, c.Branch(DirectionRight).SetFlags)
	assert.Equal(t, "card.a.prompt", c.PromptKey())
}
