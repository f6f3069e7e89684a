// internal/game/types.go
//
// Core type definitions for the guessing engine.
// Defines:
//   - Mark: per-letter classification of a guess (exact/misplaced/absent).
//   - Result: the scored guess plus bulls/cows counts.
//   - Game: secret and progress for a single game.
//   - Sentinel errors returned by Guess and New.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":     letter is correct and in the correct position (a bull).
//   - "misplaced": letter is still unclaimed in the secret, wrong position (a cow).
//   - "absent":    no unclaimed occurrence of the letter remains.
type Mark string

const (
	MarkExact     Mark = "exact"
	MarkMisplaced Mark = "misplaced"
	MarkAbsent    Mark = "absent"
)

// Result is the outcome of scoring one guess.
type Result struct {
	Marks []Mark `json:"marks"` // One mark per position, same length as the secret.
	Bulls int    `json:"bulls"` // Number of MarkExact positions.
	Cows  int    `json:"cows"`  // Number of MarkMisplaced positions.
}

// Absent returns the number of MarkAbsent positions.
func (r Result) Absent() int {
	return len(r.Marks) - r.Bulls - r.Cows
}

// Solved reports whether every position is an exact match.
func (r Result) Solved() bool {
	return len(r.Marks) > 0 && r.Bulls == len(r.Marks)
}

// Misplaced returns the guess letters at misplaced positions and a space
// everywhere else. guess must be the folded guess that produced r.
func (r Result) Misplaced(guess string) string {
	b := make([]byte, len(r.Marks))
	for i, m := range r.Marks {
		if m == MarkMisplaced && i < len(guess) {
			b[i] = guess[i]
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}

// Game holds the state of a single game session.
// A Game is not safe for concurrent use; callers serialize access per game.
type Game struct {
	ID       string // Unique game identifier (uuid).
	secret   string // The solution word (always uppercase).
	attempts int    // Scored guesses so far.
	won      bool   // Sticky once a guess scores all exact.
}

var (
	// ErrEmptySecret is returned by New for a blank secret.
	ErrEmptySecret = errors.New("game: empty secret")
	// ErrLengthMismatch is returned when the guess length differs from the secret.
	ErrLengthMismatch = errors.New("game: guess length mismatch")
	// ErrAlreadyWon is returned when guessing after the game was won.
	ErrAlreadyWon = errors.New("game: already won")
)
