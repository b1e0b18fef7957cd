// internal/words/words.go
//
// Provides word list management for the game engine and agents.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files or fall back to embedded defaults.
//   - Validate that every word has the same length (fail fast, before any search runs).
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply utility functions like RandomAnswer, IsAllowed, IsAnswer, and Stats.
//
// Word Lists:
//   - "answers": canonical solutions, the agent's initial possible pool.
//   - "allowed": valid guesses (always includes answers).
//
// Initialization behavior (Load):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If only WORDS_ANSWERS_FILE is set,
//      load that file and use it for both lists as well.
//   4. If neither is set,
//      fall back to small embedded defaults from `default_answers.txt`
//      and `default_allowed.txt`.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Words must be alphabetic (a–z) and all the same length.
//   • Lists are normalized to lowercase; blank lines and #-comments are skipped.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// --- embedded tiny defaults (ensures the CLI runs even if no files configured) ---

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

// Lexicon bundles the answer list (the initial possible pool) with the
// allowed-guess superset. It is read-only after construction.
type Lexicon struct {
	answers    []string            // canonical answers, load order preserved
	allowed    []string            // answers ∪ guesses, ordered, answers first
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
	wordLen    int                 // uniform word length (5 for standard Wordle)
}

// Load builds a Lexicon from the environment-configured files, or the
// embedded defaults when none are set.
// Returns an error if any list is empty or word lengths are mixed.
func Load() (*Lexicon, error) {
	var ansList, allowList []string

	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		var err error
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: only answers file provided → use for both
	case answersPath != "" && allowedPath == "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowList = ansList

	// Case 4: fallback to embedded defaults
	default:
		ansList = normalizeLines(embeddedAnswers)
		if embeddedAllowed != "" {
			allowList = normalizeLines(embeddedAllowed)
		} else {
			allowList = ansList
		}
	}

	return FromLists(ansList, allowList)
}

// FromLists builds a Lexicon from in-memory answer and allowed lists.
// Every word must share the same length; answers are implicitly allowed.
func FromLists(answers, allowed []string) (*Lexicon, error) {
	if len(answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	ansList := lowerAll(answers)
	allowList := lowerAll(allowed)

	wordLen := len(ansList[0])
	for _, w := range ansList {
		if err := checkWord(w, wordLen); err != nil {
			return nil, err
		}
	}
	for _, w := range allowList {
		if err := checkWord(w, wordLen); err != nil {
			return nil, err
		}
	}

	lex := &Lexicon{
		answers:    ansList,
		answersSet: toSet(ansList),
		wordLen:    wordLen,
	}

	// Ensure all answers are also marked as allowed.
	lex.allowedSet = toSet(ansList)
	lex.allowed = append([]string{}, ansList...)
	for _, w := range allowList {
		if _, ok := lex.allowedSet[w]; ok {
			continue
		}
		lex.allowedSet[w] = struct{}{}
		lex.allowed = append(lex.allowed, w)
	}
	return lex, nil
}

// checkWord validates a single word against the uniform length and charset rules.
func checkWord(w string, wordLen int) error {
	if len(w) != wordLen {
		return fmt.Errorf("words: %q has length %d, want %d", w, len(w), wordLen)
	}
	if !isAlpha(w) {
		return fmt.Errorf("words: %q contains non a-z characters", w)
	}
	return nil
}

// readWordFile loads one word per line from a file, lowercased and trimmed.
// Blank lines and lines starting with '#' are skipped.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of lowercase words, skipping blanks and comments.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out
}

// lowerAll lowercases and trims each entry of a list.
func lowerAll(list []string) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = strings.TrimSpace(strings.ToLower(w))
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
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

// Answers returns the answer list in load order.
// Callers must treat the returned slice as read-only.
func (l *Lexicon) Answers() []string {
	return l.answers
}

// Allowed returns the ordered allowed-guess list (answers first).
// Callers must treat the returned slice as read-only.
func (l *Lexicon) Allowed() []string {
	return l.allowed
}

// WordLen returns the uniform word length of the lexicon.
func (l *Lexicon) WordLen() int {
	return l.wordLen
}

// RandomAnswer returns a cryptographically random answer from the answers list.
func (l *Lexicon) RandomAnswer() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lexicon) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lexicon) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lexicon) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
