// internal/agent/expected.go
//
// Expected-utility agent: the decision policy proper.
// Responsibilities:
//   - Opening guess via a positional letter-frequency score over the
//     initial pool (cheap, non-recursive).
//   - Subsequent guesses via a recursive expected-remaining-pool estimate,
//     minimized over the current candidate pool.
//   - Pool maintenance: replaced wholesale on each feedback report, never
//     mutated by the guess computations.
//
// The candidate scan is embarrassingly parallel: candidates are independent
// and the pool is read-only during the scan, so evaluations fan out across
// an errgroup and the argmin reduction runs over an index-addressed score
// slice, making the result identical to a sequential scan regardless of
// completion order.

package agent

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-agent/internal/game"
)

// Expected picks the guess minimizing the expected number of candidates
// that would remain after it.
type Expected struct {
	allowed []string // allowed vocabulary, read-only for the agent's lifetime
	initial []string // initial possible pool, the reset target for FirstGuess
	pool    []string // current candidate pool snapshot
	wordLen int
	workers int // bound on concurrent candidate evaluations
}

// NewExpected builds an expected-utility agent over the allowed vocabulary
// and the initial possible pool. Words are lowercased and validated for
// uniform length and charset here, so the search never has to: the
// frequency tables and partitions index by letter and rely on a-z input.
func NewExpected(allowed, possible []string) (*Expected, error) {
	allowed, initial, wordLen, err := normalizeLists(allowed, possible)
	if err != nil {
		return nil, err
	}
	return &Expected{
		allowed: allowed,
		initial: initial,
		pool:    initial,
		wordLen: wordLen,
		workers: runtime.GOMAXPROCS(0),
	}, nil
}

// FirstGuess resets the pool to the initial possible list and returns the
// word maximizing the positional letter-frequency score: each word scores
// the sum over positions i of how many pool words share its letter at i.
//
// Tie-break is strict: only a strictly greater score displaces the running
// best, so ties keep the earlier word. Starting the running best at zero is
// safe because every word in a nonempty pool scores at least once per
// position (it counts itself), so all scores are positive.
func (e *Expected) FirstGuess(ctx context.Context) (string, error) {
	e.pool = e.initial

	freq := make([][26]int, e.wordLen)
	for _, w := range e.pool {
		for i := 0; i < e.wordLen; i++ {
			freq[i][w[i]-'a']++
		}
	}

	best := ""
	bestScore := 0
	for _, w := range e.pool {
		score := 0
		for i := 0; i < e.wordLen; i++ {
			score += freq[i][w[i]-'a']
		}
		if score > bestScore {
			bestScore = score
			best = w
		}
	}
	return best, nil
}

// NextGuess evaluates the expected utility of every word in the current
// pool and returns the minimizer. Only pool words are considered, not the
// full allowed vocabulary: the recursive search is tractable over the
// (typically much smaller) candidate pool.
//
// On an exact score tie the word earliest in pool order wins, so repeated
// calls without an intervening ReportFeedback return the same word. The
// scan honors ctx: cancellation aborts with ctx's error.
func (e *Expected) NextGuess(ctx context.Context) (string, error) {
	pool := e.pool
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	scores := make([]float64, len(pool))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	for i, g := range pool {
		i, g := i, g
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			scores[i] = e.utility(pool, g)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return pool[best], nil
}

// ReportFeedback replaces the pool with the subset consistent with the
// observed feedback, using the full official feedback semantics (the
// repeated-letter allocation included). Atomic: on any error, including a
// filter result that would empty the pool, the pool is left unchanged.
func (e *Expected) ReportFeedback(guess string, feedback []game.Mark) error {
	guess = strings.TrimSpace(strings.ToLower(guess))
	if err := checkFeedback(guess, feedback, e.wordLen); err != nil {
		return err
	}
	filtered := game.FilterConsistent(guess, feedback, e.pool)
	if len(filtered) == 0 {
		return fmt.Errorf("feedback for %q eliminates every candidate: %w", guess, ErrEmptyPool)
	}
	e.pool = filtered
	return nil
}

// utility estimates the expected number of candidates remaining after
// guessing guess against pool. Callers must pass a nonempty pool.
func (e *Expected) utility(pool []string, guess string) float64 {
	return e.expand(pool, guess, 0, len(pool))
}

// expand walks letter positions pos..L-1, splitting the sub-pool at each
// position into the three simplified outcome branches and weighting each
// branch by its conditional probability.
//
// Base cases: a sub-pool of size ≤ 1 contributes its normalized terminal
// weight size/parentSize; once all positions are consumed the remaining
// sub-pool size is returned as-is (nothing left to discriminate on).
func (e *Expected) expand(pool []string, guess string, pos, parentSize int) float64 {
	if len(pool) <= 1 {
		return float64(len(pool)) / float64(parentSize)
	}
	if pos == e.wordLen {
		return float64(len(pool))
	}

	exact, elsewhere, absent := partition(pool, guess, pos)
	weight := float64(len(pool)) / float64(parentSize)
	return weight * (e.expand(exact, guess, pos+1, len(pool)) +
		e.expand(elsewhere, guess, pos+1, len(pool)) +
		e.expand(absent, guess, pos+1, len(pool)))
}

// partition splits pool on guess's letter at position i into:
//   - exact:     words with that letter at i,
//   - elsewhere: words containing the letter, but not at i,
//   - absent:    words not containing the letter at all.
//
// The groups are disjoint and cover pool. This is deliberately a
// single-letter, single-position simplification of the feedback contract:
// it only has to approximate utility, not reproduce official feedback, so
// repeated-letter allocation is ignored here (and only here).
func partition(pool []string, guess string, i int) (exact, elsewhere, absent []string) {
	letter := guess[i]
	for _, w := range pool {
		switch {
		case w[i] == letter:
			exact = append(exact, w)
		case strings.IndexByte(w, letter) >= 0:
			elsewhere = append(elsewhere, w)
		default:
			absent = append(absent, w)
		}
	}
	return exact, elsewhere, absent
}
