// internal/words/daily_exports.go
//
// Daily secret selection on top of the loaded answer list.
// Everyone using the same salt gets the same word for the same UTC date.

package words

import (
	"time"

	"github.com/robalobadob/wordle/apps/go-checker/internal/daily"
)

// Daily returns today's answer for salt along with its date key and list index.
func Daily(now time.Time, salt string) (word, date string, idx int, err error) {
	if len(answers) == 0 {
		return "", "", 0, ErrEmptyList
	}
	date = daily.DateKey(now)
	idx = daily.WordIndex(now, salt, len(answers))
	return answers[idx], date, idx, nil
}
