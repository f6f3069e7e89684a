package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/play"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/render"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// app carries the resolved configuration between PersistentPreRunE and the
// command bodies.
type app struct {
	configPath string
	flags      config.Config
	cfg        config.Config
	logCloser  io.Closer
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the secret word; letters are scored exact, misplaced or absent",
		Long: `wordle picks a secret word from a word list and scores each guess:
exact letters are in the right place, misplaced letters appear elsewhere in
the word, absent letters have no unclaimed occurrence left.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.load,
		PersistentPostRunE: a.close,
		RunE:               a.runPlay,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultPath+" if present)")
	pf.StringVar(&a.flags.WordsFile, "words", "", "word list file, one ['word'] per line (default embedded list)")
	pf.Uint64Var(&a.flags.Seed, "seed", 0, "random seed for word selection (0 seeds from the clock)")
	pf.StringVar(&a.flags.Color, "color", "", "color mode: auto, always or never")
	pf.BoolVar(&a.flags.Daily, "daily", false, "play the word of the day")
	pf.StringVar(&a.flags.DailySalt, "salt", "", "salt for the word of the day")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.flags.LogFile, "log-file", "", "also append JSON logs to this file")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play one interactive game (the default command)",
			Args:  cobra.NoArgs,
			RunE:  a.runPlay,
		},
		&cobra.Command{
			Use:   "score SECRET GUESS",
			Short: "Score a single guess against a secret",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runScore,
		},
		&cobra.Command{
			Use:   "pick",
			Short: "Print one word from the word list",
			Args:  cobra.NoArgs,
			RunE:  a.runPick,
		},
	)
	return root
}

// load resolves config file, environment and flags, then sets up logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("words") {
		cfg.WordsFile = a.flags.WordsFile
	}
	if fs.Changed("seed") {
		cfg.Seed = a.flags.Seed
	}
	if fs.Changed("color") {
		cfg.Color = a.flags.Color
	}
	if fs.Changed("daily") {
		cfg.Daily = a.flags.Daily
	}
	if fs.Changed("salt") {
		cfg.DailySalt = a.flags.DailySalt
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("log-file") {
		cfg.LogFile = a.flags.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	closer, err := setupLogging(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.logCloser = closer
	return nil
}

func (a *app) close(*cobra.Command, []string) error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// source loads the configured word list.
func (a *app) source() (*words.Source, error) {
	rng := words.NewRand(a.cfg.Seed)
	if a.cfg.WordsFile == "" {
		return words.Default(rng)
	}
	return words.Open(a.cfg.WordsFile, rng)
}

func (a *app) runPlay(cmd *cobra.Command, _ []string) error {
	src, err := a.source()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	rd, err := render.New(a.cfg.Color, out)
	if err != nil {
		return err
	}

	s := &play.Session{
		Source:   src,
		Store:    store.NewMemoryStore(),
		Renderer: rd,
		Log:      log.Logger,
		Daily:    a.cfg.Daily,
		Salt:     a.cfg.DailySalt,
		Now:      a.now,
	}
	log.Info().Int("words", src.Len()).Msg("starting wordle")
	won, err := s.Run(cmd.Context(), cmd.InOrStdin(), out)
	if err != nil {
		return err
	}
	log.Info().Bool("won", won).Msg("game ended")
	return nil
}

func (a *app) runScore(cmd *cobra.Command, args []string) error {
	g, err := game.New(args[0])
	if err != nil {
		return err
	}
	guess := game.Fold(args[1])
	res, err := g.Guess(guess)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rd, err := render.New(a.cfg.Color, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s bulls=%d cows=%d\n", rd.Render(guess, res), res.Bulls, res.Cows)
	if !rd.Colored() {
		if line := render.MisplacedLine(guess, res); line != "" {
			fmt.Fprintf(out, "%s Misplaced\n", line)
		}
	}
	return nil
}

func (a *app) runPick(cmd *cobra.Command, _ []string) error {
	src, err := a.source()
	if err != nil {
		return err
	}
	var w string
	if a.cfg.Daily {
		w, err = src.At(daily.WordIndex(a.now(), a.cfg.DailySalt, src.Len()))
	} else {
		w, err = src.Pick()
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), w)
	return nil
}
