// cmd/wordle-agent/simulate.go
//
// Batch benchmark: plays N games concurrently and reports mean guesses,
// win rate, and throughput.

package main

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-agent/internal/agent"
	"github.com/robalobadob/wordle-agent/internal/sim"
)

var (
	flagGames   int
	flagWorkers int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Benchmark an agent over many games",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&flagGames, "games", "n", 100, "number of games to play")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", runtime.GOMAXPROCS(0),
		"maximum games played concurrently")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagGames < 1 {
		return fmt.Errorf("need at least one game, got %d", flagGames)
	}
	if flagWorkers < 1 {
		flagWorkers = 1
	}
	lex, err := loadLexicon()
	if err != nil {
		return err
	}

	answersCount, allowedCount := lex.Stats()
	log.Info().
		Str("agent", flagAgent).
		Int("games", flagGames).
		Int("workers", flagWorkers).
		Int("answers", answersCount).
		Int("allowed", allowedCount).
		Msg("starting simulation")

	summary, _, err := sim.Run(cmd.Context(), lex, func() (agent.Agent, error) {
		return newAgent(lex)
	}, flagGames, flagWorkers)
	if err != nil {
		return err
	}

	fmt.Printf("games:        %d\n", summary.Games)
	fmt.Printf("wins:         %d (%.1f%%)\n", summary.Wins,
		100*float64(summary.Wins)/float64(summary.Games))
	fmt.Printf("mean guesses: %.2f\n", summary.MeanGuesses)
	fmt.Printf("elapsed:      %s (%.0f games/sec)\n", summary.Elapsed, summary.GamesPerSec)
	return nil
}
