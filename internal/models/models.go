package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StatKey identifies one of the deck's bounded emotional axes.
type StatKey string

// Stat values always stay inside [StatMin, StatMax].
const (
	StatMin     = 0
	StatMax     = 100
	StatInitial = 50
)

// Direction is one of the two decision branches of a card.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// EffectValue is a stat delta: either a fixed integer, or an inclusive
// [Lo, Hi] range from which a delta is rolled per application.
//
// In deck yaml a fixed value is a plain scalar and a range is a two-element
// sequence:
//
//	effects:
//	  joy: -4
//	  calm: [2, 6]
type EffectValue struct {
	Fixed  int
	Lo, Hi int
	Range  bool
}

// FixedEffect returns a fixed delta.
func FixedEffect(n int) EffectValue {
	return EffectValue{Fixed: n}
}

// RangeEffect returns a ranged delta drawn uniformly from [lo, hi].
func RangeEffect(lo, hi int) EffectValue {
	return EffectValue{Lo: lo, Hi: hi, Range: true}
}

// UnmarshalYAML accepts a scalar (fixed) or a two-element sequence (range).
func (v *EffectValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("effect value: %w", err)
		}
		*v = FixedEffect(n)
		return nil
	case yaml.SequenceNode:
		var bounds []int
		if err := node.Decode(&bounds); err != nil {
			return fmt.Errorf("effect range: %w", err)
		}
		if len(bounds) != 2 {
			return fmt.Errorf("effect range must have exactly two elements, got %d", len(bounds))
		}
		*v = RangeEffect(bounds[0], bounds[1])
		return nil
	default:
		return fmt.Errorf("effect value must be an integer or a [lo, hi] pair")
	}
}

// Validate checks the lo <= hi invariant for ranged values.
func (v EffectValue) Validate() error {
	if v.Range && v.Lo > v.Hi {
		return fmt.Errorf("effect range [%d, %d] has lo > hi", v.Lo, v.Hi)
	}
	return nil
}

// Branch bundles the stat effects and flag changes of one decision.
type Branch struct {
	Effects    map[StatKey]EffectValue `yaml:"effects"`
	SetFlags   []string                `yaml:"set_flags"`
	ClearFlags []string                `yaml:"clear_flags"`
}

// CardDef is one situation in the deck. Immutable after load.
type CardDef struct {
	ID           string   `yaml:"id"`
	Weight       int      `yaml:"weight"`
	RequireFlags []string `yaml:"require_flags"`
	ForbidFlags  []string `yaml:"forbid_flags"`
	Left         Branch   `yaml:"left"`
	Right        Branch   `yaml:"right"`
}

// Branch returns the branch matching dir. Callers must have validated dir.
func (c *CardDef) Branch(dir Direction) *Branch {
	if dir == DirectionLeft {
		return &c.Left
	}
	return &c.Right
}

// Text keys the presentation layer resolves through the translator.
func (c *CardDef) TitleKey() string  { return "card." + c.ID + ".character" }
func (c *CardDef) PromptKey() string { return "card." + c.ID + ".prompt" }
func (c *CardDef) LeftKey() string   { return "card." + c.ID + ".left" }
func (c *CardDef) RightKey() string  { return "card." + c.ID + ".right" }

// WinCondition selects between the two favorable outcomes reached at the
// turn limit, keyed on whether Flag is set.
type WinCondition struct {
	Flag        string `yaml:"flag"`
	FlagOutcome string `yaml:"flag_outcome"`
	BaseOutcome string `yaml:"base_outcome"`
}

// Deck is the immutable reference data for a run. The declared stat order
// doubles as the ending-priority order.
type Deck struct {
	Stats    []StatKey    `yaml:"stats"`
	MaxTurns int          `yaml:"max_turns"`
	Win      WinCondition `yaml:"win"`
	Cards    []CardDef    `yaml:"cards"`
}

// HasStat reports whether key is one of the declared stats.
func (d *Deck) HasStat(key StatKey) bool {
	for _, s := range d.Stats {
		if s == key {
			return true
		}
	}
	return false
}

// Validate applies the load-time consistency rules. Any failure here is a
// configuration error: fatal before a run starts, never recovered mid-run.
func (d *Deck) Validate() error {
	if len(d.Stats) == 0 {
		return fmt.Errorf("deck declares no stats")
	}
	seenStats := make(map[StatKey]bool, len(d.Stats))
	for _, s := range d.Stats {
		if seenStats[s] {
			return fmt.Errorf("stat %q declared twice", s)
		}
		seenStats[s] = true
	}
	if d.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d", d.MaxTurns)
	}
	if d.Win.FlagOutcome == "" || d.Win.BaseOutcome == "" {
		return fmt.Errorf("win outcomes must be set")
	}
	if len(d.Cards) == 0 {
		return fmt.Errorf("deck has no cards")
	}
	seenIDs := make(map[string]bool, len(d.Cards))
	for i := range d.Cards {
		c := &d.Cards[i]
		if c.ID == "" {
			return fmt.Errorf("card %d has no id", i)
		}
		if seenIDs[c.ID] {
			return fmt.Errorf("duplicate card id %q", c.ID)
		}
		seenIDs[c.ID] = true
		for _, b := range []*Branch{&c.Left, &c.Right} {
			for stat, effect := range b.Effects {
				if !seenStats[stat] {
					return fmt.Errorf("card %q: effect references undeclared stat %q", c.ID, stat)
				}
				if err := effect.Validate(); err != nil {
					return fmt.Errorf("card %q: %w", c.ID, err)
				}
			}
		}
	}
	return nil
}

// RunState is the single mutable entity of a run. It is owned by the engine
// and replaced wholesale on restart.
type RunState struct {
	Stats      map[StatKey]int
	Flags      map[string]bool
	Turn       int
	LastCardID string
}

// NewRunState returns the initial state for deck: every declared stat at 50,
// no flags, turn zero.
func NewRunState(deck *Deck) *RunState {
	stats := make(map[StatKey]int, len(deck.Stats))
	for _, s := range deck.Stats {
		stats[s] = StatInitial
	}
	return &RunState{
		Stats: stats,
		Flags: make(map[string]bool),
	}
}

// HasFlag reports whether flag is currently set.
func (s *RunState) HasFlag(flag string) bool { return s.Flags[flag] }

// SetFlag adds flag to the active set.
func (s *RunState) SetFlag(flag string) { s.Flags[flag] = true }

// ClearFlag removes flag from the active set.
func (s *RunState) ClearFlag(flag string) { delete(s.Flags, flag) }

// Boundary tags which edge a stat crossed.
type Boundary string

const (
	BoundaryLow  Boundary = "low"
	BoundaryHigh Boundary = "high"
)

// Outcome is the terminal classification of a run. Stat and Edge are set
// only for boundary outcomes.
type Outcome struct {
	ID   string
	Stat StatKey
	Edge Boundary
}

// BoundaryOutcome builds the outcome for stat crossing edge, with the
// identifier convention <STAT>_LOW / <STAT>_HIGH.
func BoundaryOutcome(stat StatKey, edge Boundary) *Outcome {
	return &Outcome{
		ID:   strings.ToUpper(string(stat)) + "_" + strings.ToUpper(string(edge)),
		Stat: stat,
		Edge: edge,
	}
}

// Text keys for the ending screen, matching the ending.<OUTCOME>.* resources.
func (o *Outcome) TitleKey() string { return "ending." + o.ID + ".title" }
func (o *Outcome) BodyKey() string  { return "ending." + o.ID + ".body" }
