package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-agent/internal/words"
)

func testLexicon(t *testing.T) *words.Lexicon {
	t.Helper()
	lex, err := words.FromLists(
		[]string{"crane", "foyer", "slate", "radar", "house"},
		[]string{"eerie"},
	)
	require.NoError(t, err)
	return lex
}

func TestScore(t *testing.T) {
	t.Run("all hits on exact match", func(t *testing.T) {
		assert.Equal(t,
			[]Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit},
			Score("crane", "crane"))
	})

	t.Run("present and miss resolution", func(t *testing.T) {
		// F-O-Y-E-R vs H-O-U-S-E: O hits, E is present elsewhere,
		// H/U/S are absent.
		assert.Equal(t,
			[]Mark{MarkMiss, MarkHit, MarkMiss, MarkMiss, MarkPresent},
			Score("foyer", "house"))
	})

	t.Run("repeated guess letters are count-limited", func(t *testing.T) {
		// CRANE has one R and one A; RADAR's extra R and A go gray.
		assert.Equal(t,
			[]Mark{MarkPresent, MarkPresent, MarkMiss, MarkMiss, MarkMiss},
			Score("crane", "radar"))
	})

	t.Run("hit consumes the answer letter first", func(t *testing.T) {
		// EERIE vs EAGLE: E hits at 0 and 4; A/G/L are absent, so the
		// middle letters all go gray even though the answer has a third E.
		assert.Equal(t,
			[]Mark{MarkHit, MarkMiss, MarkMiss, MarkMiss, MarkHit},
			Score("eerie", "eagle"))
	})
}

func TestFilterConsistent(t *testing.T) {
	pool := []string{"crane", "foyer", "slate", "radar"}

	t.Run("all-correct feedback isolates the target", func(t *testing.T) {
		fb := []Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}
		got := FilterConsistent("slate", fb, pool)
		assert.Equal(t, []string{"slate"}, got)
	})

	t.Run("keeps exactly the words reproducing the feedback", func(t *testing.T) {
		fb := Score("foyer", "house")
		got := FilterConsistent("house", fb, pool)
		for _, w := range got {
			assert.Equal(t, fb, Score(w, "house"))
		}
		assert.Contains(t, got, "foyer")
		assert.NotContains(t, got, "house")
	})
}

func TestApplyGuess(t *testing.T) {
	lex := testLexicon(t)

	t.Run("win on correct guess", func(t *testing.T) {
		g := New(lex, "crane")
		marks, state, err := g.ApplyGuess(lex, "crane")
		require.NoError(t, err)
		assert.Equal(t, "won", state)
		assert.True(t, g.Won)
		for _, m := range marks {
			assert.Equal(t, Mark(MarkHit), m)
		}
	})

	t.Run("rejects words outside the allowed list", func(t *testing.T) {
		g := New(lex, "crane")
		_, _, err := g.ApplyGuess(lex, "zzzzz")
		assert.Error(t, err)
		assert.Empty(t, g.Guesses)
	})

	t.Run("rejects malformed guesses", func(t *testing.T) {
		g := New(lex, "crane")
		_, _, err := g.ApplyGuess(lex, "cat")
		assert.Error(t, err)
	})

	t.Run("loses after the row limit", func(t *testing.T) {
		g := New(lex, "crane")
		for i := 0; i < g.Rows; i++ {
			_, _, err := g.ApplyGuess(lex, "slate")
			require.NoError(t, err)
		}
		assert.True(t, g.Finished)
		assert.False(t, g.Won)
		assert.Equal(t, "lost", g.State())

		_, _, err := g.ApplyGuess(lex, "slate")
		assert.Error(t, err, "no guesses after the game is finished")
	})

	t.Run("random answer when none given", func(t *testing.T) {
		g := New(lex, "")
		assert.True(t, lex.IsAnswer(g.Answer))
	})
}

func TestParseMarks(t *testing.T) {
	marks, err := ParseMarks("gyxxg")
	require.NoError(t, err)
	assert.Equal(t, []Mark{MarkHit, MarkPresent, MarkMiss, MarkMiss, MarkHit}, marks)
	assert.Equal(t, "gyxxg", MarksString(marks))

	_, err = ParseMarks("gyz")
	assert.Error(t, err)
}
