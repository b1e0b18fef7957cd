// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter feedback for a guess (hit/present/miss).
//   - Game: state for a single in-progress or finished game.

package game

import "fmt"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":    letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":   letter does not exist in the answer at all.
type Mark string

const (
	MarkHit    Mark = "hit"
	MarkPresent     = "present"
	MarkMiss        = "miss"
)

// Valid reports whether m is one of the three defined marks.
func (m Mark) Valid() bool {
	return m == MarkHit || m == MarkPresent || m == MarkMiss
}

// Rune returns the compact single-character form used on the CLI:
// 'g' for hit, 'y' for present, 'x' for miss.
func (m Mark) Rune() rune {
	switch m {
	case MarkHit:
		return 'g'
	case MarkPresent:
		return 'y'
	default:
		return 'x'
	}
}

// ParseMarks decodes a compact feedback string ("gyxxg" style) into marks.
// Accepted letters: g=hit, y=present, x=miss.
func ParseMarks(s string) ([]Mark, error) {
	out := make([]Mark, 0, len(s))
	for _, r := range s {
		switch r {
		case 'g':
			out = append(out, MarkHit)
		case 'y':
			out = append(out, MarkPresent)
		case 'x':
			out = append(out, MarkMiss)
		default:
			return nil, fmt.Errorf("game: unknown feedback char %q (want g/y/x)", r)
		}
	}
	return out, nil
}

// MarksString renders marks in the compact CLI form.
func MarksString(marks []Mark) string {
	rs := make([]rune, len(marks))
	for i, m := range marks {
		rs[i] = m.Rune()
	}
	return string(rs)
}

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Number of letters per word (typically 5).
	Guesses  []string // List of guesses made so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
