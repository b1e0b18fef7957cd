// cmd/wordle-agent/root.go
//
// Root cobra command and flags shared by the subcommands.
// Word lists come from the words package (env-configured files or embedded
// defaults); the agent variant is chosen explicitly via --agent.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-agent/internal/agent"
	"github.com/robalobadob/wordle-agent/internal/words"
)

var flagAgent string

var rootCmd = &cobra.Command{
	Use:   "wordle-agent",
	Short: "Wordle guessing agent: suggest, self-play, and benchmark",
	Long: `wordle-agent picks Wordle guesses that minimize the expected number of
remaining candidate words. It can assist a live game (suggest), play itself
against a known or random target (solve), or benchmark its agents over many
games (simulate).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAgent, "agent", "expected",
		"agent variant: expected or random")
	rootCmd.AddCommand(suggestCmd, solveCmd, simulateCmd)
}

// loadLexicon loads word lists once per command invocation.
func loadLexicon() (*words.Lexicon, error) {
	lex, err := words.Load()
	if err != nil {
		return nil, fmt.Errorf("loading word lists: %w", err)
	}
	return lex, nil
}

// newAgent builds the flag-selected agent over the lexicon's lists.
func newAgent(lex *words.Lexicon) (agent.Agent, error) {
	return agent.New(agent.Kind(flagAgent), lex.Allowed(), lex.Answers())
}
