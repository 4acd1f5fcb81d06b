// internal/words/words.go
//
// Answer list management for choosing secrets.
//
// Responsibilities:
//   - Load the answer list from an environment-provided file or fall back to the embedded default.
//   - Normalize words so that secrets and guesses compare character by character.
//   - Supply RandomAnswer, Answers and Stats.
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE is set, load answers from that file.
//   2. Otherwise use the embedded list from the assets package.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//
// Constraints:
//   • Words must be non-empty and made of letters only (any script).
//   • Lists are normalized to NFC lowercase.
//   • Initialization is run once (sync.Once).
//
// Guesses are never checked against this list.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sync"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/wordle/apps/go-checker/assets"
)

// ErrEmptyList is returned by Init when no usable answer survives loading.
var ErrEmptyList = errors.New("words: answers list is empty")

var (
	initOnce   sync.Once
	answers    []string
	initialErr error
)

// Init loads the answer list exactly once.
// Returns an error if the file cannot be read or the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var raw []string
		if path := os.Getenv("WORDS_ANSWERS_FILE"); path != "" {
			raw, initialErr = readWordFile(path)
		} else {
			raw, initialErr = assets.AnswersList()
		}
		if initialErr != nil {
			return
		}
		answers = normalizeAll(raw)
		log.Debug().Int("answers", len(answers)).Int("skipped", len(raw)-len(answers)).Msg("word list loaded")
		if len(answers) == 0 {
			initialErr = ErrEmptyList
		}
	})
	return initialErr
}

// Load reads and normalizes one word per line from r.
func Load(r io.Reader) ([]string, error) {
	lines, err := assets.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return normalizeAll(lines), nil
}

// readWordFile loads a word list from disk.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers file: %w", err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalizeAll keeps the valid words of list, normalized.
func normalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		if w := Normalize(line); IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}

var lower = cases.Lower(language.Und)

// Normalize composes w to NFC and lowercases it, so that "é" typed as e + combining
// accent is one character equal to the precomposed form.
func Normalize(w string) string {
	return lower.String(norm.NFC.String(w))
}

// IsWord reports whether w is non-empty and made of letters only.
func IsWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Answers returns the loaded answer list. Init must have succeeded.
func Answers() []string { return answers }

// RandomAnswer returns a cryptographically random answer from the answers list.
func RandomAnswer() (string, error) {
	if len(answers) == 0 {
		return "", ErrEmptyList
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	if err != nil {
		return "", fmt.Errorf("random answer: %w", err)
	}
	return answers[nBig.Int64()], nil
}

// Stats returns the number of loaded answers.
func Stats() int { return len(answers) }
