// internal/play/session.go
//
// Interactive line-oriented front end for one game.
// Responsibilities:
//   - Choose the secret (uniform random, or the word of the day).
//   - Register the game in the store and guess through its handle.
//   - Prompt, re-prompt on wrong length, render each scored guess.
//   - Announce victory, or reveal the word when input ends.
//
// The session owns its game for the whole run; the store is only the handle
// registry, so several sessions may share one store.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/render"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// Session bundles what one interactive game needs.
type Session struct {
	Source   *words.Source
	Store    store.Store
	Renderer render.Renderer
	Log      zerolog.Logger

	Daily bool   // use the word of the day instead of a random pick
	Salt  string // daily index salt
	Now   func() time.Time
}

// NewGame picks a secret and registers a fresh game.
func (s *Session) NewGame(ctx context.Context) (*game.Game, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}
	g, err := game.New(secret)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("play: save game: %w", err)
	}
	s.Log.Info().Str("gameId", g.ID).Int("length", g.Len()).Bool("daily", s.Daily).Msg("game started")
	s.Log.Debug().Str("gameId", g.ID).Str("word", g.Reveal()).Msg("secret chosen")
	return g, nil
}

func (s *Session) secret() (string, error) {
	if !s.Daily {
		return s.Source.Pick()
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Source.At(daily.WordIndex(now(), s.Salt, s.Source.Len()))
}

// Run plays one game reading guesses from in and writing to out.
// It returns true on a win and false when in is exhausted first.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	g, err := s.NewGame(ctx)
	if err != nil {
		return false, err
	}
	id := g.ID
	defer func() { _ = s.Store.Delete(context.WithoutCancel(ctx), id) }()

	fmt.Fprintf(out, "WORD:\n[ %s ]\n", render.Mask(g.Len()))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return false, fmt.Errorf("play: read guess: %w", err)
			}
			s.Log.Info().Str("gameId", id).Int("attempts", g.Attempts()).Str("word", g.Reveal()).Msg("game exited")
			fmt.Fprintf(out, "\n> Word was:\n> %s\n", g.Reveal())
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}

		won, err := s.guess(ctx, id, strings.TrimSpace(sc.Text()), out)
		if err != nil {
			return false, err
		}
		if won {
			fmt.Fprintln(out, "  Victory! ")
			return true, nil
		}
	}
}

// guess scores one input line through the store handle and prints the result.
func (s *Session) guess(ctx context.Context, id, line string, out io.Writer) (bool, error) {
	g, err := s.Store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	guess := game.Fold(line)
	res, err := g.Guess(guess)
	switch {
	case errors.Is(err, game.ErrLengthMismatch):
		s.Log.Warn().Str("gameId", id).Str("guess", guess).Int("expected", g.Len()).Msg("invalid input length")
		fmt.Fprintln(out, "  ERR: WRONG LENGTH")
		return false, nil
	case err != nil:
		return false, err
	}

	s.Log.Info().Str("gameId", id).Int("attempt", g.Attempts()).Str("guess", guess).
		Int("bulls", res.Bulls).Int("cows", res.Cows).Msg("guess scored")
	fmt.Fprintf(out, "> %s : %d\n", s.Renderer.Render(guess, res), g.Attempts())
	if !s.Renderer.Colored() {
		if line := render.MisplacedLine(guess, res); line != "" {
			fmt.Fprintf(out, "> %s Misplaced\n", line)
		}
	}

	if g.Won() {
		s.Log.Info().Str("gameId", id).Int("attempts", g.Attempts()).Str("word", g.Reveal()).Msg("player won")
	}
	return g.Won(), nil
}
