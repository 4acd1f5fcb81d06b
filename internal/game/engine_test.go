package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution_BasicCheck(t *testing.T) {
	sol, err := NewSolution("anise")
	require.NoError(t, err)

	got, err := Collect(sol.Check("shine"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Present, Absent, Exact, Present, Exact}, got)
}

func TestSolution_MultiCheck(t *testing.T) {
	sol, err := NewSolution("ender")
	require.NoError(t, err)

	got, err := Collect(sol.Check("peeve"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Absent, Present, Present, Absent, Absent}, got)

	got, err = Collect(sol.Check("bevel"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Absent, Present, Absent, Exact, Absent}, got)
}

func TestCheckOnce(t *testing.T) {
	got, err := Collect(CheckOnce("ender", "peeve"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Absent, Present, Present, Absent, Absent}, got)
}

func TestExactMatchDoesNotSpendCredit(t *testing.T) {
	got, err := Collect(CheckOnce("ab", "aa"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Exact, Present}, got)
}

func TestGuess_MatchesSolution(t *testing.T) {
	cases := []struct {
		solution, guess string
	}{
		{"anise", "shine"},
		{"ender", "peeve"},
		{"ender", "bevel"},
		{"ab", "aa"},
		{"crane", "crane"},
		{"xxxxx", "abcde"},
	}
	for _, tc := range cases {
		t.Run(tc.solution+"/"+tc.guess, func(t *testing.T) {
			g, err := NewGuess(tc.guess)
			require.NoError(t, err)
			sol, err := NewSolution(tc.solution)
			require.NoError(t, err)

			fromGuess, err := Collect(g.Check(tc.solution))
			require.NoError(t, err)
			fromSolution, err := Collect(sol.Check(tc.guess))
			require.NoError(t, err)
			once, err := Collect(CheckOnce(tc.solution, tc.guess))
			require.NoError(t, err)

			assert.Equal(t, fromSolution, fromGuess)
			assert.Equal(t, fromSolution, once)
		})
	}
}

func TestGuess_ReusedAcrossSolutions(t *testing.T) {
	g, err := NewGuess("peeve")
	require.NoError(t, err)

	got, err := Collect(g.Check("ender"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Absent, Present, Present, Absent, Absent}, got)
	assert.Empty(t, g.counts.Map(), "counts cleared after the check")

	got, err = Collect(g.Check("peeve"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Exact, Exact, Exact, Exact, Exact}, got)
}

func TestSolution_RepeatedCheckIsDeterministic(t *testing.T) {
	sol, err := NewSolution("ender")
	require.NoError(t, err)

	first, err := Collect(sol.Check("eerie"))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Collect(sol.Check("eerie"))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, map[rune]uint8{'e': 2, 'n': 1, 'd': 1, 'r': 1}, sol.counts.Map())
}

func TestSolution_AbandonedCheckStillResets(t *testing.T) {
	sol, err := NewSolution("eerie")
	require.NoError(t, err)

	clues, err := sol.Check("eeeee")
	require.NoError(t, err)
	for c := range clues.All() {
		if c == Present {
			break
		}
	}
	require.True(t, clues.Done())
	assert.Equal(t, map[rune]uint8{'e': 3, 'r': 1, 'i': 1}, sol.counts.Map())

	clues, err = sol.Check("rrrrr")
	require.NoError(t, err)
	_, ok := clues.Next()
	require.True(t, ok)
	clues.Close()
	assert.Equal(t, map[rune]uint8{'e': 3, 'r': 1, 'i': 1}, sol.counts.Map())

	got, err := Collect(sol.Check("rrrrr"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Present, Absent, Exact, Absent, Absent}, got)
}

func TestSolution_CheckInFlight(t *testing.T) {
	sol, err := NewSolution("anise")
	require.NoError(t, err)

	clues, err := sol.Check("shine")
	require.NoError(t, err)

	_, err = sol.Check("shine")
	assert.ErrorIs(t, err, ErrCheckInFlight)

	clues.Close()
	_, err = Collect(sol.Check("shine"))
	assert.NoError(t, err)
}

func TestGuess_CheckInFlight(t *testing.T) {
	g, err := NewGuess("shine")
	require.NoError(t, err)

	clues, err := g.Check("anise")
	require.NoError(t, err)
	_, err = g.Check("anise")
	assert.ErrorIs(t, err, ErrCheckInFlight)

	clues.Collect()
	_, err = Collect(g.Check("anise"))
	assert.NoError(t, err)
}

func TestLengthMismatch(t *testing.T) {
	sol, err := NewSolution("anise")
	require.NoError(t, err)
	_, err = sol.Check("shin")
	assert.ErrorIs(t, err, ErrLengthMismatch)

	// a rejected check leaves the session usable
	_, err = Collect(sol.Check("shine"))
	assert.NoError(t, err)

	g, err := NewGuess("shine")
	require.NoError(t, err)
	_, err = g.Check("anises")
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Empty(t, g.counts.Map(), "rejected check does not fill counts")

	_, err = CheckOnce("ab", "abc")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEmptyWord(t *testing.T) {
	_, err := NewSolution("")
	assert.ErrorIs(t, err, ErrEmptyWord)
	_, err = NewGuess("")
	assert.ErrorIs(t, err, ErrEmptyWord)
}

func TestMultiByteCharacters(t *testing.T) {
	sol, err := NewSolution("éclat")
	require.NoError(t, err)
	assert.Equal(t, 5, sol.Len())

	got, err := Collect(sol.Check("lacée"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Present, Present, Present, Present, Absent}, got)

	_, err = sol.Check("eclat!")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestClues_LengthAndExactProperty(t *testing.T) {
	pairs := [][2]string{
		{"anise", "shine"}, {"ender", "peeve"}, {"aaaaa", "aaaab"}, {"zzz", "zaz"}, {"öäü", "üäö"},
	}
	for _, p := range pairs {
		clues, err := CheckOnce(p[0], p[1])
		require.NoError(t, err)
		require.Equal(t, RuneLen(p[1]), clues.Len())

		got := clues.Collect()
		require.Len(t, got, RuneLen(p[1]))
		fixed, variable := []rune(p[0]), []rune(p[1])
		for i := range got {
			if fixed[i] == variable[i] {
				assert.Equal(t, Exact, got[i], "%s/%s position %d", p[0], p[1], i)
			} else {
				assert.NotEqual(t, Exact, got[i], "%s/%s position %d", p[0], p[1], i)
			}
		}
	}
}

func TestCredits_NeverNegative(t *testing.T) {
	sol, err := NewSolution("abcde")
	require.NoError(t, err)

	clues, err := sol.Check("eeeee")
	require.NoError(t, err)
	var presents int
	for {
		c, ok := clues.Next()
		if !ok {
			break
		}
		if c == Present {
			presents++
		}
		if !clues.Done() {
			for ch, n := range sol.counts.Map() {
				assert.LessOrEqual(t, n, uint8(1), "count for %q", ch)
			}
		}
	}
	// 'e' has one credit and matches in place at the end, so only one Present
	assert.Equal(t, 1, presents)
}

func TestEvaluate_ClosesOnEarlyReturn(t *testing.T) {
	sol, err := NewSolution("ender")
	require.NoError(t, err)

	stop := errors.New("stop")
	var seen []Clue
	err = Evaluate(sol, "peeve", func(c *Clues) error {
		for clue := range c.All() {
			seen = append(seen, clue)
			if clue == Present {
				return stop
			}
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []Clue{Absent, Present}, seen)

	got, err := Collect(sol.Check("peeve"))
	require.NoError(t, err)
	assert.Equal(t, []Clue{Absent, Present, Present, Absent, Absent}, got)
}

func TestEvaluate_ClosesWhenCallbackIgnoresClues(t *testing.T) {
	g, err := NewGuess("peeve")
	require.NoError(t, err)

	err = Evaluate(g, "ender", func(*Clues) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, g.counts.Map())
	assert.False(t, g.busy)
}

func TestEvaluate_PropagatesCheckError(t *testing.T) {
	sol, err := NewSolution("ender")
	require.NoError(t, err)
	called := false
	err = Evaluate(sol, "pee", func(*Clues) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.False(t, called)
}

func TestClueStrings(t *testing.T) {
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "GY_", string([]rune{Exact.Rune(), Present.Rune(), Absent.Rune()}))
	assert.True(t, AllExact([]Clue{Exact, Exact}))
	assert.False(t, AllExact([]Clue{Exact, Present}))
}
