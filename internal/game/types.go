// internal/game/types.go
//
// Core type definitions for the guess checker.
// Defines:
//   - Clue: per-character result of comparing a guess with a solution.
//   - Clues: the lazy, self-resetting sequence every check returns.
//   - Sentinel errors for misuse of the checking API.

package game

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-checker/internal/dropmap"
	"github.com/robalobadob/wordle/apps/go-checker/internal/store"
)

// Clue represents the evaluation result for a single character of a guess.
// Possible values:
//   - Exact:   character is correct and in the correct position.
//   - Present: character appears elsewhere and a count for it was still available.
//   - Absent:  character earned no credit at this position.
type Clue uint8

const (
	Exact Clue = iota
	Present
	Absent
)

// String returns the lowercase name of the clue.
func (c Clue) String() string {
	switch c {
	case Exact:
		return "exact"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return "unknown"
}

// Rune is a one-character rendering: G, Y or _.
func (c Clue) Rune() rune {
	switch c {
	case Exact:
		return 'G'
	case Present:
		return 'Y'
	}
	return '_'
}

// counts is the per-character credit map a check borrows.
type counts = store.Resettable[rune, uint8]

// Clues yields one Clue per character, left to right. It borrows the session's counts and
// resets them when drained or closed; callers that stop early must Close it.
type Clues = dropmap.DropMap[dropmap.Pair[rune], counts, Clue]

var (
	// ErrLengthMismatch is returned when the two words have different character counts.
	ErrLengthMismatch = errors.New("word length mismatch")

	// ErrEmptyWord is returned when a session is built around an empty word.
	ErrEmptyWord = errors.New("empty word")

	// ErrCheckInFlight is returned when a session is checked again before the Clues of its
	// previous check have been finalized.
	ErrCheckInFlight = errors.New("previous check not finished")
)
