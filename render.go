package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-checker/internal/game"
)

// renderer turns a guess and its clues into one output line.
type renderer struct {
	colored bool
	exact   *color.Color
	present *color.Color
}

// newRenderer resolves the color mode ("on", "off" or "auto") for out.
// In auto mode color is used only when out is a terminal and NO_COLOR is unset.
func newRenderer(mode string, out io.Writer) (renderer, error) {
	r := renderer{
		exact:   color.New(color.BgGreen, color.FgBlack),
		present: color.New(color.BgYellow, color.FgBlack),
	}
	switch strings.ToLower(mode) {
	case "on":
		r.colored = true
	case "off":
		r.colored = false
	case "auto", "":
		f, ok := out.(*os.File)
		r.colored = ok && !color.NoColor && isatty.IsTerminal(f.Fd())
	default:
		return renderer{}, fmt.Errorf("invalid color mode %q (want auto, on or off)", mode)
	}
	if r.colored {
		r.exact.EnableColor()
		r.present.EnableColor()
	}
	return r, nil
}

// line renders guess with its clues zipped by position.
// Colored: Exact on green, Present on yellow, Absent as typed.
// Plain: the guess, a space, then one of G, Y or _ per character.
func (r renderer) line(guess string, clues []game.Clue) string {
	var b strings.Builder
	chars := []rune(guess)
	if !r.colored {
		b.WriteString(guess)
		b.WriteByte(' ')
		for _, c := range clues {
			b.WriteRune(c.Rune())
		}
		return b.String()
	}
	for i, c := range clues {
		ch := string(chars[i])
		switch c {
		case game.Exact:
			b.WriteString(r.exact.Sprint(ch))
		case game.Present:
			b.WriteString(r.present.Sprint(ch))
		default:
			b.WriteString(ch)
		}
	}
	return b.String()
}
