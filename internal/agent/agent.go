// internal/agent/agent.go
//
// Agent capability interface and shared construction/validation helpers.
// Two concrete agents implement it:
//   - Random:   baseline that reshuffles the remaining pool each turn.
//   - Expected: expected-utility search over the remaining pool.
//
// Lifecycle per game: FirstGuess → ReportFeedback → NextGuess →
// ReportFeedback → … until the caller ends the game. FirstGuess resets the
// candidate pool to the initial possible list, so calling it mid-game
// abandons accumulated feedback and starts over.

package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle-agent/internal/game"
)

// Agent chooses guesses for a Wordle-style game. Implementations own a
// candidate pool of words still consistent with all reported feedback;
// ReportFeedback is the only operation that mutates it.
type Agent interface {
	// FirstGuess resets the pool to the initial possible list and returns
	// the opening guess.
	FirstGuess(ctx context.Context) (string, error)

	// NextGuess returns a guess drawn from the current pool. It never
	// mutates the pool: calling it twice without an intervening
	// ReportFeedback returns the same word (for deterministic agents).
	NextGuess(ctx context.Context) (string, error)

	// ReportFeedback narrows the pool to the words consistent with the
	// observed per-letter feedback for guess. On any error the pool is
	// left unchanged.
	ReportFeedback(guess string, feedback []game.Mark) error
}

// Kind selects a concrete agent implementation at construction.
type Kind string

const (
	KindRandom   Kind = "random"
	KindExpected Kind = "expected"
)

// New constructs an agent of the given kind over the allowed vocabulary and
// the initial possible pool. The random agent is seeded from the clock; use
// NewRandom directly when a reproducible shuffle is needed.
func New(kind Kind, allowed, possible []string) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandom(allowed, possible, time.Now().UnixNano())
	case KindExpected:
		return NewExpected(allowed, possible)
	default:
		return nil, fmt.Errorf("agent: unknown kind %q", kind)
	}
}

// normalizeLists lowercases both lists and checks the shared construction
// preconditions: a nonempty possible pool, a single uniform word length,
// and letters a-z only. Returns fresh normalized copies and the word
// length, so callers may keep the results without further copying.
func normalizeLists(allowed, possible []string) ([]string, []string, int, error) {
	if len(possible) == 0 {
		return nil, nil, 0, fmt.Errorf("initial possible pool: %w", ErrEmptyPool)
	}
	allowed = lowerAll(allowed)
	possible = lowerAll(possible)
	wordLen := len(possible[0])
	for _, w := range possible {
		if err := checkWord(w, wordLen, "possible"); err != nil {
			return nil, nil, 0, err
		}
	}
	for _, w := range allowed {
		if err := checkWord(w, wordLen, "allowed"); err != nil {
			return nil, nil, 0, err
		}
	}
	return allowed, possible, wordLen, nil
}

// checkWord validates one already-lowercased word against the uniform
// length and charset rules; list names which list it came from.
func checkWord(w string, wordLen int, list string) error {
	if len(w) != wordLen {
		return fmt.Errorf("%w: %s word %q has length %d, want %d",
			ErrWordLength, list, w, len(w), wordLen)
	}
	if !isAlpha(w) {
		return fmt.Errorf("%w: %s word %q has characters outside a-z",
			ErrWordCharset, list, w)
	}
	return nil
}

// lowerAll returns a lowercased, trimmed copy of a list.
func lowerAll(list []string) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = strings.TrimSpace(strings.ToLower(w))
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// checkFeedback validates a feedback report before any filtering happens.
// The guess must be a plausible word: scoring indexes letter counts by
// guess letters, so the charset rule applies here too.
func checkFeedback(guess string, feedback []game.Mark, wordLen int) error {
	if len(guess) != wordLen {
		return fmt.Errorf("%w: guess %q has length %d, want %d",
			ErrMalformedFeedback, guess, len(guess), wordLen)
	}
	if !isAlpha(guess) {
		return fmt.Errorf("%w: guess %q has characters outside a-z",
			ErrMalformedFeedback, guess)
	}
	if len(feedback) != wordLen {
		return fmt.Errorf("%w: got %d marks, want %d",
			ErrMalformedFeedback, len(feedback), wordLen)
	}
	for i, m := range feedback {
		if !m.Valid() {
			return fmt.Errorf("%w: unknown mark %q at position %d",
				ErrMalformedFeedback, string(m), i)
		}
	}
	return nil
}
