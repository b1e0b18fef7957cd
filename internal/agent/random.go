// internal/agent/random.go
//
// Baseline agent: guesses uniformly at random from the words that remain
// consistent with the accumulated feedback. Exists mostly as a benchmark
// floor for the expected-utility agent.

package agent

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/robalobadob/wordle-agent/internal/game"
)

// Random is the reshuffle-and-filter baseline agent.
type Random struct {
	initial []string // initial possible pool, never mutated after construction
	pool    []string // current candidate pool, shuffled in place
	wordLen int
	rng     *rand.Rand
}

// NewRandom builds a baseline agent. Words are lowercased and validated at
// construction. The seed drives the shuffle, so a fixed seed reproduces a
// run exactly.
func NewRandom(allowed, possible []string, seed int64) (*Random, error) {
	_, initial, wordLen, err := normalizeLists(allowed, possible)
	if err != nil {
		return nil, err
	}
	return &Random{
		initial: initial,
		pool:    append([]string{}, initial...),
		wordLen: wordLen,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// FirstGuess resets the pool to the initial possible list, shuffles it, and
// returns the front word.
func (r *Random) FirstGuess(ctx context.Context) (string, error) {
	r.pool = append([]string{}, r.initial...)
	return r.NextGuess(ctx)
}

// NextGuess reshuffles the remaining pool and returns the front word.
func (r *Random) NextGuess(ctx context.Context) (string, error) {
	if len(r.pool) == 0 {
		return "", ErrEmptyPool
	}
	r.rng.Shuffle(len(r.pool), func(i, j int) {
		r.pool[i], r.pool[j] = r.pool[j], r.pool[i]
	})
	return r.pool[0], nil
}

// ReportFeedback replaces the pool with the subset consistent with the
// observed feedback. The pool is left unchanged on any error.
func (r *Random) ReportFeedback(guess string, feedback []game.Mark) error {
	guess = strings.TrimSpace(strings.ToLower(guess))
	if err := checkFeedback(guess, feedback, r.wordLen); err != nil {
		return err
	}
	filtered := game.FilterConsistent(guess, feedback, r.pool)
	if len(filtered) == 0 {
		return fmt.Errorf("feedback for %q eliminates every candidate: %w", guess, ErrEmptyPool)
	}
	r.pool = filtered
	return nil
}
