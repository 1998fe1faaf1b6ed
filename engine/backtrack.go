package engine

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Backtrack is the github.com/dlclark/regexp2 engine: .NET style syntax with
// lookaround and backreferences. Named groups are numbered after the unnamed
// ones, as .NET does, so positional bindings should be avoided when mixing
// both kinds in one expression.
type Backtrack struct {
	Options regexp2.RegexOptions
	// Timeout bounds a single match attempt; zero means no limit.
	Timeout time.Duration
}

func (Backtrack) Name() string { return "regexp2" }

func (b Backtrack) Compile(expr string) (Regexp, error) {
	re, err := regexp2.Compile(expr, b.Options)
	if err != nil {
		return nil, err
	}

	if b.Timeout > 0 {
		re.MatchTimeout = b.Timeout
	}

	numbers := re.GetGroupNumbers()

	size := 0
	for _, n := range numbers {
		if n+1 > size {
			size = n + 1
		}
	}

	names := make([]string, size)
	for _, n := range numbers {
		name := re.GroupNameFromNumber(n)
		if name == strconv.Itoa(n) {
			// unnamed groups are reported by their number
			name = ""
		}
		names[n] = name
	}

	return backtrackRegexp{re: re, numbers: numbers, names: names}, nil
}

type backtrackRegexp struct {
	re      *regexp2.Regexp
	numbers []int
	names   []string
}

func (r backtrackRegexp) String() string { return r.re.String() }

func (r backtrackRegexp) SubexpNames() []string { return r.names }

func (r backtrackRegexp) FindIndex(text string) ([]int, error) {
	m, err := r.re.FindStringMatch(text)
	if err != nil || m == nil {
		return nil, err
	}

	offsets := runeOffsets(text)

	loc := make([]int, 2*len(r.names))
	for i := range loc {
		loc[i] = -1
	}

	for _, n := range r.numbers {
		g := m.GroupByNumber(n)
		if g == nil || len(g.Captures) == 0 {
			continue
		}

		loc[2*n] = offsets(g.Index)
		loc[2*n+1] = offsets(g.Index + g.Length)
	}

	return loc, nil
}

// runeOffsets maps regexp2's rune positions to byte offsets of text.
func runeOffsets(text string) func(int) int {
	if utf8.RuneCountInString(text) == len(text) {
		return func(i int) int { return i }
	}

	table := make([]int, 0, len(text)+1)
	for i := range text {
		table = append(table, i)
	}
	table = append(table, len(text))

	return func(i int) int { return table[i] }
}
