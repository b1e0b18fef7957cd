package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-agent/internal/agent"
	"github.com/robalobadob/wordle-agent/internal/game"
	"github.com/robalobadob/wordle-agent/internal/words"
)

func testLexicon(t *testing.T) *words.Lexicon {
	t.Helper()
	lex, err := words.FromLists([]string{
		"crane", "slate", "radar", "foyer", "eagle",
		"house", "bench", "tiger", "quiet", "sound",
	}, nil)
	require.NoError(t, err)
	return lex
}

func TestPlayOne(t *testing.T) {
	ctx := context.Background()
	lex := testLexicon(t)

	t.Run("expected agent solves a known target", func(t *testing.T) {
		ag, err := agent.New(agent.KindExpected, lex.Allowed(), lex.Answers())
		require.NoError(t, err)

		var turns []string
		res, err := PlayOne(ctx, lex, ag, "tiger", func(turn int, guess string, marks []game.Mark) {
			turns = append(turns, guess)
		})
		require.NoError(t, err)
		assert.True(t, res.Won)
		assert.Equal(t, "tiger", res.Answer)
		assert.Equal(t, res.Turns, len(turns))
		assert.Equal(t, "tiger", turns[len(turns)-1])
	})

	t.Run("random target comes from the lexicon", func(t *testing.T) {
		ag, err := agent.New(agent.KindExpected, lex.Allowed(), lex.Answers())
		require.NoError(t, err)

		res, err := PlayOne(ctx, lex, ag, "", nil)
		require.NoError(t, err)
		assert.True(t, lex.IsAnswer(res.Answer))
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	lex := testLexicon(t)

	newAgent := func() (agent.Agent, error) {
		return agent.New(agent.KindExpected, lex.Allowed(), lex.Answers())
	}

	t.Run("aggregates a batch", func(t *testing.T) {
		summary, results, err := Run(ctx, lex, newAgent, 10, 4)
		require.NoError(t, err)

		assert.Equal(t, 10, summary.Games)
		assert.Len(t, results, 10)
		assert.Equal(t, 10, summary.Wins, "expected agent should solve a 10-word pool within 6 rows")
		assert.GreaterOrEqual(t, summary.MeanGuesses, 1.0)
		assert.LessOrEqual(t, summary.MeanGuesses, 6.0)
		for i, r := range results {
			assert.Equal(t, lex.Answers()[i%10], r.Answer, "targets cycle deterministically")
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := Run(cancelled, lex, newAgent, 10, 2)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
