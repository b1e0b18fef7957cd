// cmd/wordle-agent/suggest.go
//
// Interactive assistant for a live Wordle game: prints the agent's guess,
// reads the real game's feedback from stdin as a compact g/y/x string, and
// repeats until the word is found (all greens) or the pool contradicts.
//
// Example session:
//   guess 1: slate
//   feedback> xygxx
//   guess 2: crane
//   feedback> ggggg
//   solved in 2 guesses

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-agent/internal/agent"
	"github.com/robalobadob/wordle-agent/internal/game"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest guesses for a live game, reading feedback from stdin",
	RunE:  runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	ag, err := newAgent(lex)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	guess, err := ag.FirstGuess(ctx)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	solved := strings.Repeat("g", lex.WordLen())
	for turn := 1; ; turn++ {
		fmt.Printf("guess %d: %s\n", turn, guess)
		fmt.Print("feedback> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading feedback: %w", err)
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == solved {
			fmt.Printf("solved in %d guesses\n", turn)
			return nil
		}

		marks, err := game.ParseMarks(line)
		if err != nil {
			fmt.Println(err)
			turn--
			continue
		}
		if err := ag.ReportFeedback(guess, marks); err != nil {
			if errors.Is(err, agent.ErrEmptyPool) {
				return fmt.Errorf("no candidate fits that feedback history: %w", err)
			}
			fmt.Println(err)
			turn--
			continue
		}
		if guess, err = ag.NextGuess(ctx); err != nil {
			return err
		}
	}
}
