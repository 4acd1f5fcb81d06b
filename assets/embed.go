// assets/embed.go
//
// Embedded default word list, used when no answers file is configured.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed answers.txt
var FS embed.FS

// ReadLines returns the non-empty, non-comment lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// AnswersList returns the embedded answer words as written in the file.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}
