package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	E = MarkExact
	M = MarkMisplaced
	A = MarkAbsent
)

func TestScore(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		guess  string
		marks  []Mark
		bulls  int
		cows   int
	}{
		{"all exact", "CRANE", "CRANE", []Mark{E, E, E, E, E}, 5, 0},
		{"no match", "CRANE", "STOUT", []Mark{A, A, A, A, A}, 0, 0},
		{"duplicates both sides", "SPEED", "ERASE", []Mark{M, A, A, M, M}, 0, 3},
		{"excess duplicate is absent", "CRANE", "EERIE", []Mark{A, A, M, A, E}, 1, 1},
		{"exact claims credit first", "ABBEY", "KEBAB", []Mark{A, M, E, M, M}, 1, 3},
		{"anagram", "LEMON", "MELON", []Mark{M, E, M, E, E}, 3, 2},
		{"single letter", "A", "A", []Mark{E}, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(tc.secret, tc.guess)
			assert.Equal(t, tc.marks, r.Marks)
			assert.Equal(t, tc.bulls, r.Bulls, "bulls")
			assert.Equal(t, tc.cows, r.Cows, "cows")
		})
	}
}

func TestScoreLengthGuard(t *testing.T) {
	r := Score("CRANE", "CRAN")
	assert.Equal(t, []Mark{A, A, A, A, A}, r.Marks)
	assert.Zero(t, r.Bulls)
	assert.Zero(t, r.Cows)
}

// TestScoreProperties checks the counting invariants over random words drawn
// from a small alphabet so duplicates are frequent.
func TestScoreProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	word := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ABCDE"[rng.IntN(5)]
		}
		return string(b)
	}

	for i := 0; i < 2000; i++ {
		n := 1 + rng.IntN(7)
		s, g := word(n), word(n)
		r := Score(s, g)

		require.Len(t, r.Marks, n)
		assert.Equal(t, n, r.Bulls+r.Cows+r.Absent(), "%s/%s", s, g)

		// cows must equal the multiset intersection of the non-exact letters
		var cs, cg [256]int
		bulls := 0
		for j := 0; j < n; j++ {
			if s[j] == g[j] {
				bulls++
				continue
			}
			cs[s[j]]++
			cg[g[j]]++
		}
		cows := 0
		for c := range cs {
			cows += min(cs[c], cg[c])
		}
		assert.Equal(t, bulls, r.Bulls, "%s/%s", s, g)
		assert.Equal(t, cows, r.Cows, "%s/%s", s, g)

		self := Score(s, s)
		assert.Equal(t, n, self.Bulls)
		assert.Zero(t, self.Cows)
	}
}

func TestNew(t *testing.T) {
	g, err := New("  crane\n")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", g.Reveal())
	assert.Equal(t, 5, g.Len())
	assert.Zero(t, g.Attempts())
	assert.False(t, g.Won())
	assert.Equal(t, "playing", g.State())
	assert.NotEmpty(t, g.ID)

	other, err := New("crane")
	require.NoError(t, err)
	assert.NotEqual(t, g.ID, other.ID)

	_, err = New("   ")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestGuessWin(t *testing.T) {
	g, err := New("CRANE")
	require.NoError(t, err)

	r, err := g.Guess("crane")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Bulls)
	assert.Zero(t, r.Cows)
	assert.True(t, r.Solved())
	assert.True(t, g.Won())
	assert.Equal(t, 1, g.Attempts())
	assert.Equal(t, "won", g.State())

	r, err = g.Guess("CRANE")
	assert.ErrorIs(t, err, ErrAlreadyWon)
	assert.Nil(t, r.Marks)
	assert.Equal(t, 1, g.Attempts(), "no mutation after win")
	assert.True(t, g.Won())
}

func TestGuessLengthMismatch(t *testing.T) {
	g, err := New("CRANE")
	require.NoError(t, err)

	r, err := g.Guess("CRAN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	assert.Contains(t, err.Error(), "got 4, want 5")
	assert.Nil(t, r.Marks)
	assert.Zero(t, g.Attempts())
	assert.False(t, g.Won())
}

func TestGuessNoMatch(t *testing.T) {
	g, err := New("CRANE")
	require.NoError(t, err)

	r, err := g.Guess("stout")
	require.NoError(t, err)
	assert.Equal(t, []Mark{A, A, A, A, A}, r.Marks)
	assert.Zero(t, r.Bulls)
	assert.Zero(t, r.Cows)
	assert.Equal(t, 5, r.Absent())
	assert.Equal(t, 1, g.Attempts())
	assert.False(t, g.Won())
}

func TestGuessCountsEveryAttemptIncludingWin(t *testing.T) {
	g, err := New("speed")
	require.NoError(t, err)

	for _, w := range []string{"erase", "steep", "speed"} {
		_, err := g.Guess(w)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, g.Attempts())
	assert.True(t, g.Won())
}

func TestResultMisplaced(t *testing.T) {
	r := Score("SPEED", "ERASE")
	assert.Equal(t, "E  SE", r.Misplaced("ERASE"))
	assert.Equal(t, 2, r.Absent())
	assert.False(t, r.Solved())
}
