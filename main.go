package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-checker/internal/game"
	"github.com/robalobadob/wordle/apps/go-checker/internal/words"
)

// options are the flag values shared by the commands.
type options struct {
	daily  bool
	random bool
	color  string
	salt   string
}

func main() {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel, os.Stderr)

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

// newRootCmd builds `wordle [WORD]` and its `check` subcommand.
func newRootCmd(cfg config) *cobra.Command {
	opts := options{color: cfg.Color, salt: cfg.DailySalt}

	root := &cobra.Command{
		Use:   "wordle [WORD]",
		Short: "Check guesses against a secret word",
		Long: `Reads guesses from stdin, one per line, and prints each with its clues:
green for the right letter in the right place, yellow for a letter found elsewhere.
The secret is WORD, a random answer (--random) or the answer of the day (--daily).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := resolveSecret(args, opts, time.Now())
			if err != nil {
				return err
			}
			sol, err := game.NewSolution(secret)
			if err != nil {
				return err
			}
			r, err := newRenderer(opts.color, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				fmt.Fprintf(cmd.OutOrStdout(), "Guess the %d-letter word (Ctrl-D to quit)\n", sol.Len())
			}
			return play(in, cmd.OutOrStdout(), sol, r)
		},
	}
	root.PersistentFlags().StringVar(&opts.color, "color", opts.color, "colorize output (auto|on|off)")
	root.Flags().BoolVar(&opts.daily, "daily", false, "use the answer of the day as the secret")
	root.Flags().BoolVar(&opts.random, "random", false, "use a random answer as the secret")
	root.Flags().StringVar(&opts.salt, "salt", opts.salt, "salt for --daily word selection")

	root.AddCommand(newCheckCmd(&opts))
	return root
}

// newCheckCmd builds `wordle check SECRET GUESS`, a single one-shot evaluation.
func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:           "check SECRET GUESS",
		Short:         "Print the clues for one guess",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, guess := words.Normalize(args[0]), words.Normalize(args[1])
			r, err := newRenderer(opts.color, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return checkOnce(cmd.OutOrStdout(), secret, guess, r)
		},
	}
}

// checkOnce renders one evaluation of guess against secret.
func checkOnce(out io.Writer, secret, guess string, r renderer) error {
	clues, err := game.Collect(game.CheckOnce(secret, guess))
	if err != nil {
		return fmt.Errorf("check %q against secret: %w", guess, err)
	}
	fmt.Fprintln(out, r.line(guess, clues))
	return nil
}

var errSecretSource = errors.New("exactly one of WORD, --daily or --random is required")

// resolveSecret picks the secret from the positional word or the answer list.
func resolveSecret(args []string, opts options, now time.Time) (string, error) {
	sources := 0
	for _, set := range []bool{len(args) == 1, opts.daily, opts.random} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return "", errSecretSource
	}
	if len(args) == 1 {
		return words.Normalize(args[0]), nil
	}

	if err := words.Init(); err != nil {
		return "", fmt.Errorf("load word lists: %w", err)
	}
	if opts.random {
		return words.RandomAnswer()
	}
	word, date, idx, err := words.Daily(now, opts.salt)
	if err != nil {
		return "", err
	}
	log.Info().Str("date", date).Int("index", idx).Msg("daily secret selected")
	return word, nil
}
