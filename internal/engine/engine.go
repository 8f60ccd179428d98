// Package engine drives a run of the card game: weighted card selection,
// decision resolution and ending evaluation over a single mutable run state.
package engine

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lapitia/Feelings-World/internal/models"
)

var (
	// ErrRunEnded is returned when a decision arrives after the run reached
	// a terminal outcome.
	ErrRunEnded = errors.New("run has ended")
	// ErrInvalidDirection is returned for a decision that is neither left
	// nor right.
	ErrInvalidDirection = errors.New("invalid direction")
)

// Config holds the dependencies for an engine.
type Config struct {
	Deck   *models.Deck
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided and consistent.
func (c *Config) Validate() error {
	if c.Deck == nil {
		return fmt.Errorf("deck is required")
	}
	if c.Roller == nil {
		return fmt.Errorf("roller is required")
	}
	return c.Deck.Validate()
}

// Engine owns the run state and sequences selector, resolver and ending
// evaluator. It performs no randomness itself; all rolls go through the
// injected roller.
type Engine struct {
	deck    *models.Deck
	roller  dice.Roller
	state   *models.RunState
	current *models.CardDef
	outcome *models.Outcome
}

// New creates an engine and starts the first run: fresh state, initial card
// drawn.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	e := &Engine{
		deck:   cfg.Deck,
		roller: cfg.Roller,
	}
	if err := e.Restart(); err != nil {
		return nil, err
	}
	return e, nil
}

// Restart discards the run state wholesale and re-enters the start sequence.
func (e *Engine) Restart() error {
	e.state = models.NewRunState(e.deck)
	e.outcome = nil
	return e.nextCard()
}

func (e *Engine) nextCard() error {
	card, err := PickCard(EligibleCards(e.state, e.deck.Cards), e.roller)
	if err != nil {
		return err
	}
	e.state.LastCardID = card.ID
	e.current = card
	return nil
}

// SubmitDecision resolves one decision on the current card. It is the sole
// mutating entry point; once the run has ended it rejects without touching
// state.
func (e *Engine) SubmitDecision(dir models.Direction) error {
	if e.outcome != nil {
		return ErrRunEnded
	}
	if dir != models.DirectionLeft && dir != models.DirectionRight {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if err := ApplyDecision(e.state, e.current, dir, e.roller); err != nil {
		return err
	}
	if outcome := CheckEnding(e.state, e.deck); outcome != nil {
		e.outcome = outcome
		e.current = nil
		return nil
	}
	return e.nextCard()
}

// CardView is the display payload for the current card: its identifier plus
// the text keys for both branches.
type CardView struct {
	ID        string
	TitleKey  string
	PromptKey string
	LeftKey   string
	RightKey  string
}

// CurrentCard returns the card awaiting a decision, or nil once the run has
// ended.
func (e *Engine) CurrentCard() *CardView {
	if e.current == nil {
		return nil
	}
	return &CardView{
		ID:        e.current.ID,
		TitleKey:  e.current.TitleKey(),
		PromptKey: e.current.PromptKey(),
		LeftKey:   e.current.LeftKey(),
		RightKey:  e.current.RightKey(),
	}
}

// CurrentStats returns a copy of the stat values.
func (e *Engine) CurrentStats() map[models.StatKey]int {
	out := make(map[models.StatKey]int, len(e.state.Stats))
	for k, v := range e.state.Stats {
		out[k] = v
	}
	return out
}

// CurrentTurn returns the number of resolved decisions this run.
func (e *Engine) CurrentTurn() int { return e.state.Turn }

// IsEnded reports whether the run reached a terminal outcome.
func (e *Engine) IsEnded() bool { return e.outcome != nil }

// EndingOutcome returns the terminal outcome, or nil while playing.
func (e *Engine) EndingOutcome() *models.Outcome { return e.outcome }

// Deck returns the immutable deck definition, for display ordering and the
// turn limit.
func (e *Engine) Deck() *models.Deck { return e.deck }
