package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-checker/internal/game"
	"github.com/robalobadob/wordle/apps/go-checker/internal/words"
)

// play reads one guess per line from in and writes the rendered clues to out until EOF.
// Guesses of the wrong length are reported and skipped; the check itself never sees them.
func play(in io.Reader, out io.Writer, sol *game.Solution, r renderer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		guess := words.Normalize(strings.TrimSpace(sc.Text()))
		if game.RuneLen(guess) != sol.Len() {
			fmt.Fprintf(out, "Incorrect guess length, expected %d\n", sol.Len())
			continue
		}
		clues, err := game.Collect(sol.Check(guess))
		if err != nil {
			return fmt.Errorf("check %q: %w", guess, err)
		}
		fmt.Fprintln(out, r.line(guess, clues))
		if game.AllExact(clues) {
			log.Info().Str("guess", guess).Msg("solved")
		}
	}
	return sc.Err()
}
