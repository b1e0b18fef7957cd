// internal/sim/sim.go
//
// Self-play harness: drives an Agent against known targets through the game
// engine, one full game at a time, and benchmarks agents over many games.
// Responsibilities:
//   - PlayOne: run a single game to completion (won or out of rows).
//   - Run: fan N games out across a bounded worker group and aggregate
//     turn counts into a summary (mean guesses, games/sec).
//
// Each game writes its result into its own slot, so the aggregate is
// independent of completion order.

package sim

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-agent/internal/agent"
	"github.com/robalobadob/wordle-agent/internal/game"
	"github.com/robalobadob/wordle-agent/internal/words"
)

// Result records the outcome of one completed game.
type Result struct {
	Answer string // the hidden target word
	Turns  int    // guesses used (rows consumed)
	Won    bool
}

// Summary aggregates a batch of games.
type Summary struct {
	Games       int
	Wins        int
	MeanGuesses float64 // mean turns per game, won or not
	Elapsed     time.Duration
	GamesPerSec float64
}

// TurnFunc observes each completed turn of a game; marks are the feedback
// for guess. Used by the CLI to narrate self-play; may be nil.
type TurnFunc func(turn int, guess string, marks []game.Mark)

// NewAgentFunc builds a fresh agent for one game. Each concurrent game gets
// its own instance, so agents need no internal locking.
type NewAgentFunc func() (agent.Agent, error)

// PlayOne plays a single game of the given answer to completion.
// An empty answer picks a random one from the lexicon.
func PlayOne(ctx context.Context, lex *words.Lexicon, ag agent.Agent, answer string, onTurn TurnFunc) (Result, error) {
	g := game.New(lex, answer)

	guess, err := ag.FirstGuess(ctx)
	if err != nil {
		return Result{}, err
	}
	for {
		marks, _, err := g.ApplyGuess(lex, guess)
		if err != nil {
			return Result{}, err
		}
		if onTurn != nil {
			onTurn(len(g.Guesses), guess, marks)
		}
		if g.Finished {
			break
		}
		if err := ag.ReportFeedback(guess, marks); err != nil {
			return Result{}, err
		}
		if guess, err = ag.NextGuess(ctx); err != nil {
			return Result{}, err
		}
	}
	return Result{Answer: g.Answer, Turns: len(g.Guesses), Won: g.Won}, nil
}

// Run plays n games concurrently, at most workers at a time, cycling
// deterministically through the lexicon's answers as targets. Returns the
// aggregate summary and the per-game results in completion-independent
// (target) order.
func Run(ctx context.Context, lex *words.Lexicon, newAgent NewAgentFunc, n, workers int) (Summary, []Result, error) {
	answers := lex.Answers()
	results := make([]Result, n)

	start := time.Now()
	var (
		mu   sync.Mutex // guards done
		done int
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ag, err := newAgent()
			if err != nil {
				return err
			}
			res, err := PlayOne(egCtx, lex, ag, answers[i%len(answers)], nil)
			if err != nil {
				return err
			}
			results[i] = res // disjoint index per game

			mu.Lock()
			done++
			if done%100 == 0 {
				log.Debug().Int("done", done).Int("total", n).Msg("simulation progress")
			}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, nil, err
	}
	elapsed := time.Since(start)

	sum := Summary{Games: n, Elapsed: elapsed}
	totalTurns := 0
	for _, r := range results {
		totalTurns += r.Turns
		if r.Won {
			sum.Wins++
		}
	}
	if n > 0 {
		sum.MeanGuesses = float64(totalTurns) / float64(n)
	}
	if s := elapsed.Seconds(); s > 0 {
		sum.GamesPerSec = float64(n) / s
	}
	return sum, results, nil
}
