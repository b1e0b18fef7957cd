// cmd/wordle-agent/solve.go
//
// Self-play against a known (or random) target, narrating each turn.

package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-agent/internal/game"
	"github.com/robalobadob/wordle-agent/internal/sim"
)

var flagTarget string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Play one game against a known or random target",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagTarget, "target", "",
		"target word (random answer when empty)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	target := strings.TrimSpace(strings.ToLower(flagTarget))
	if target != "" && !lex.IsAllowed(target) {
		return fmt.Errorf("target %q is not in the word list", target)
	}
	if target != "" && !lex.IsAnswer(target) {
		log.Warn().Str("target", target).
			Msg("target is not in the answer list; the agent cannot reach it")
	}
	ag, err := newAgent(lex)
	if err != nil {
		return err
	}

	res, err := sim.PlayOne(cmd.Context(), lex, ag, target, func(turn int, guess string, marks []game.Mark) {
		fmt.Printf("turn %d: %s  %s\n", turn, guess, game.MarksString(marks))
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("answer", res.Answer).
		Int("turns", res.Turns).
		Bool("won", res.Won).
		Msg("game finished")
	if res.Won {
		fmt.Printf("solved %q in %d guesses\n", res.Answer, res.Turns)
	} else {
		fmt.Printf("failed to solve %q in %d guesses\n", res.Answer, res.Turns)
	}
	return nil
}
