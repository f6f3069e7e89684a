// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create new games around a caller-supplied secret.
//   - Validate and apply guesses (terminal state, length).
//   - Score guesses using the two-pass multiset algorithm.
//   - Track state transitions: playing → won.
//
// Notes:
//   - Secrets come from the words package (or the daily index) via the caller.
//   - There is no attempt cap; ending a losing game is the caller's policy.
//   - The engine never logs and never performs I/O.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New constructs a new game instance for secret.
// The secret is trimmed and uppercased; it must not be empty.
func New(secret string) (*Game, error) {
	s := Fold(strings.TrimSpace(secret))
	if s == "" {
		return nil, ErrEmptySecret
	}
	return &Game{
		ID:     uuid.NewString(),
		secret: s,
	}, nil
}

// Fold applies the case folding used for both secrets and guesses.
func Fold(s string) string { return strings.ToUpper(s) }

// Guess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be won (ErrAlreadyWon).
//   - Folded guess must be exactly Len() bytes (ErrLengthMismatch).
//
// A failed validation leaves the game untouched. On success attempts is
// incremented, and an all-exact result moves the game to won.
func (g *Game) Guess(guess string) (Result, error) {
	if g.won {
		return Result{}, ErrAlreadyWon
	}
	guess = Fold(guess)
	if len(guess) != len(g.secret) {
		return Result{}, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(guess), len(g.secret))
	}

	res := Score(g.secret, guess)
	g.attempts++
	if res.Bulls == len(g.secret) {
		g.won = true
	}
	return res, nil
}

// Attempts returns how many guesses have been scored.
func (g *Game) Attempts() int { return g.attempts }

// Won reports whether the game reached its terminal state.
func (g *Game) Won() bool { return g.won }

// Len returns the secret length.
func (g *Game) Len() int { return len(g.secret) }

// Reveal returns the secret word.
func (g *Game) Reveal() string { return g.secret }

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.won {
		return "won"
	}
	return "playing"
}

// letterCounts is the per-guess multiset of unclaimed secret letters,
// indexed by byte so scoring needs no allocation beyond the marks.
type letterCounts [256]int

func countLetters(s string) letterCounts {
	var c letterCounts
	for i := 0; i < len(s); i++ {
		c[s[i]]++
	}
	return c
}

// Score implements the two-pass scoring algorithm.
// secret and guess must already be folded and of equal length.
//
// Pass 1:
//   - Mark exact matches and consume one count of their letter.
//
// Pass 2:
//   - For each remaining position: if the letter still has unclaimed count,
//     mark Misplaced and consume it; otherwise mark Absent.
//
// Pass 1 must finish before pass 2 so exact matches claim their credit first.
func Score(secret, guess string) Result {
	n := len(secret)
	res := Result{Marks: make([]Mark, n)}
	if len(guess) != n {
		for i := range res.Marks {
			res.Marks[i] = MarkAbsent
		}
		return res
	}
	counts := countLetters(secret)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res.Marks[i] = MarkExact
			counts[guess[i]]--
			res.Bulls++
		}
	}

	for i := 0; i < n; i++ {
		if res.Marks[i] == MarkExact {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			res.Marks[i] = MarkMisplaced
			counts[c]--
			res.Cows++
		} else {
			res.Marks[i] = MarkAbsent
		}
	}
	return res
}
