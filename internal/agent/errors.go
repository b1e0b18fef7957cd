// internal/agent/errors.go
//
// Error taxonomy for the guessing agents. All three are precondition
// violations surfaced immediately to the caller; none are retried
// internally, since retrying cannot change a contradictory game state.

package agent

import "errors"

var (
	// ErrEmptyPool is returned when a guess or feedback report would
	// operate over (or produce) an empty candidate pool. The game is
	// unrecoverable at that point: either the feedback history is
	// contradictory or the initial data was malformed.
	ErrEmptyPool = errors.New("agent: candidate pool is empty")

	// ErrMalformedFeedback is returned when reported feedback does not
	// have one mark per letter, or contains an unknown mark. The pool is
	// left untouched.
	ErrMalformedFeedback = errors.New("agent: malformed feedback")

	// ErrWordLength is returned at construction when the vocabulary or
	// pool entries do not all share a single word length.
	ErrWordLength = errors.New("agent: words must share a single length")

	// ErrWordCharset is returned at construction when a word still
	// contains characters outside a-z after lowercasing. The frequency
	// tables and letter counts downstream index by letter, so anything
	// else must be rejected before a search runs.
	ErrWordCharset = errors.New("agent: words must be letters a-z")
)
