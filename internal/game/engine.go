// internal/game/engine.go
//
// Guess checking engine.
// Responsibilities:
//   - Score a guess against a solution in a single left-to-right pass.
//   - Keep one counter map per session and reuse it across checks.
//   - Pick the reset policy that matches which word stays fixed.
//
// Notes:
//   - Words are compared as runes, so multi-byte characters are one position.
//   - Exact matches do not spend a credit. With solution "ab" and guess "aa" the second
//     'a' is still Present, because the first 'a' matched in place and left the count
//     for 'a' untouched. Existing callers depend on this; keep it.
//   - Sessions are for sequential use. A check must be finalized (drained or closed)
//     before the next one starts, otherwise Check returns ErrCheckInFlight.

package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-checker/internal/dropmap"
	"github.com/robalobadob/wordle/apps/go-checker/internal/store"
)

// Checker is implemented by both session kinds.
type Checker interface {
	Check(word string) (*Clues, error)
}

// Solution keeps a fixed secret and checks many guesses against it.
// Its counts are built once and restored to the secret's letter counts after every check.
type Solution struct {
	word   []rune
	counts *store.ResetToOriginal[rune, uint8]
	busy   bool
}

// NewSolution builds a session around the secret word.
func NewSolution(word string) (*Solution, error) {
	if word == "" {
		return nil, fmt.Errorf("solution: %w", ErrEmptyWord)
	}
	initial := make(map[rune]uint8)
	store.CountRunes(initial, word)
	return &Solution{
		word:   []rune(word),
		counts: store.NewResetToOriginal(initial),
	}, nil
}

// Word returns the secret.
func (s *Solution) Word() string { return string(s.word) }

// Len returns the secret's length in characters.
func (s *Solution) Len() int { return len(s.word) }

// Check scores guess against the secret.
func (s *Solution) Check(guess string) (*Clues, error) {
	if s.busy {
		return nil, ErrCheckInFlight
	}
	g := []rune(guess)
	if err := sameLength(s.word, g); err != nil {
		return nil, err
	}
	s.busy = true
	return check(s.word, g, s.counts, func() { s.busy = false }), nil
}

// Guess keeps a fixed guess and checks it against many solutions.
// Its counts are rebuilt from each solution and cleared afterwards.
type Guess struct {
	word   []rune
	counts *store.ResetToEmpty[rune, uint8]
	busy   bool
}

// NewGuess builds a session around the guess word.
func NewGuess(word string) (*Guess, error) {
	if word == "" {
		return nil, fmt.Errorf("guess: %w", ErrEmptyWord)
	}
	return &Guess{word: []rune(word), counts: store.NewResetToEmpty[rune, uint8]()}, nil
}

// Word returns the guess.
func (g *Guess) Word() string { return string(g.word) }

// Check scores the fixed guess against solution.
func (g *Guess) Check(solution string) (*Clues, error) {
	if g.busy {
		return nil, ErrCheckInFlight
	}
	sol := []rune(solution)
	if err := sameLength(sol, g.word); err != nil {
		return nil, err
	}
	g.busy = true
	store.CountRunes(g.counts.Map(), solution)
	return check(sol, g.word, g.counts, func() { g.busy = false }), nil
}

// CheckOnce scores guess against solution without a session.
// The counts live only as long as the returned Clues.
func CheckOnce(solution, guess string) (*Clues, error) {
	sol, g := []rune(solution), []rune(guess)
	if err := sameLength(sol, g); err != nil {
		return nil, err
	}
	c := store.NewResetToEmpty[rune, uint8]()
	store.CountRunes(c.Map(), solution)
	return check(sol, g, c, nil), nil
}

// Evaluate runs a check and hands the Clues to fn, closing them before returning even if
// fn stops early, fails, or panics.
func Evaluate(c Checker, word string, fn func(*Clues) error) error {
	clues, err := c.Check(word)
	if err != nil {
		return err
	}
	defer clues.Close()
	return fn(clues)
}

// Collect drains a check into a slice. It is meant to wrap a Check call directly:
//
//	clues, err := game.Collect(sol.Check("crane"))
func Collect(c *Clues, err error) ([]Clue, error) {
	if err != nil {
		return nil, err
	}
	return c.Collect(), nil
}

// AllExact reports whether every clue is Exact.
func AllExact(cs []Clue) bool {
	for _, c := range cs {
		if c != Exact {
			return false
		}
	}
	return true
}

// check pairs fixed[i] with variable[i] and scores each pair with score.
// release runs after the counts have been reset.
func check(fixed, variable []rune, c counts, release func()) *Clues {
	src := dropmap.Pairs(fixed, variable)
	return dropmap.New[dropmap.Pair[rune], counts, Clue](src, c, score, func(m counts) {
		if release != nil {
			defer release()
		}
		m.Reset()
	})
}

// score judges one position. Exact matches never touch the counts; any other character
// spends one credit if it has one left.
func score(c counts, p dropmap.Pair[rune]) Clue {
	if p.A == p.B {
		return Exact
	}
	m := c.Map()
	if n, ok := m[p.B]; ok && n > 0 {
		m[p.B] = n - 1
		return Present
	}
	return Absent
}

// sameLength rejects words whose character counts differ.
func sameLength(fixed, variable []rune) error {
	if len(fixed) != len(variable) {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrLengthMismatch, len(fixed), len(variable))
	}
	return nil
}

// RuneLen is the length of s in characters, the unit every check compares.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }
