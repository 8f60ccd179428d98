package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/lapitia/Feelings-World/internal/engine"
	"github.com/lapitia/Feelings-World/internal/models"
)

var (
	simRuns int
	simSeed int64
	simDeck string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless runs with a random policy",
	Long: `Simulate plays complete runs without a terminal UI, deciding left or
right at random, and reports the outcome of each run. A non-zero seed makes
the whole batch reproducible.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simRuns, "runs", 10, "number of runs to play")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "seed for reproducible runs (0 = random)")
	simulateCmd.Flags().StringVar(&simDeck, "deck", "data/deck.yaml", "deck definition file")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	deck, err := models.LoadDeck(simDeck)
	if err != nil {
		return err
	}

	var gameRoller, policyRoller dice.Roller = dice.DefaultRoller, dice.DefaultRoller
	if simSeed != 0 {
		gameRoller = engine.NewSeededRoller(simSeed)
		policyRoller = engine.NewSeededRoller(simSeed + 1)
	}

	logger.Info("starting simulation",
		"runs", simRuns,
		"seed", simSeed,
		"cards", len(deck.Cards),
		"max_turns", deck.MaxTurns,
	)

	eng, err := engine.New(&engine.Config{Deck: deck, Roller: gameRoller})
	if err != nil {
		return err
	}

	outcomes := map[string]int{}
	for run := 1; run <= simRuns; run++ {
		for !eng.IsEnded() {
			dir := models.DirectionLeft
			n, err := policyRoller.Roll(2)
			if err != nil {
				return err
			}
			if n == 2 {
				dir = models.DirectionRight
			}
			if err := eng.SubmitDecision(dir); err != nil {
				return err
			}
		}

		outcome := eng.EndingOutcome()
		outcomes[outcome.ID]++
		logger.Info("run ended",
			"run", run,
			"outcome", outcome.ID,
			"turns", eng.CurrentTurn(),
			"stats", fmt.Sprintf("%v", eng.CurrentStats()),
		)

		if err := eng.Restart(); err != nil {
			return err
		}
	}

	for id, count := range outcomes {
		logger.Info("outcome tally", "outcome", id, "count", count)
	}
	return nil
}
