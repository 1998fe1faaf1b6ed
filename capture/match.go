package capture

import (
	"fmt"
	"strings"

	"github.com/AnickaBurova/regex-parsers/utils"
)

// Match is the span [start, end) of input matched by one group.
type Match struct {
	input      string
	start, end int
}

// NewMatch creates a span over input. It panics if the bounds are outside
// of input, which only happens when an engine adapter is broken.
func NewMatch(input string, start, end int) Match {
	if !utils.IsInRange(0, start, end) || !utils.IsInRange(start, end, len(input)) {
		panic(fmt.Sprintf("capture: span [%d, %d) is out of input bounds %d", start, end, len(input)))
	}

	return Match{input: input, start: start, end: end}
}

func (m Match) Start() int { return m.start }
func (m Match) End() int   { return m.end }
func (m Match) Len() int   { return m.end - m.start }

// Input returns the whole text the span points into.
func (m Match) Input() string { return m.input }

// Text returns the matched text. The result shares memory with the input.
func (m Match) Text() string { return m.input[m.start:m.end] }

// Owned returns a copy of the matched text that does not keep the input alive.
func (m Match) Owned() string { return strings.Clone(m.Text()) }

// Cap is a captured group: a Match, or nothing if the group did not
// participate in the match. An empty but participating group is present.
type Cap struct {
	m  Match
	ok bool
}

// Some returns a present capture of m.
func Some(m Match) Cap { return Cap{m: m, ok: true} }

// None returns an absent capture.
func None() Cap { return Cap{} }

// FromIndex builds a capture from a pair of byte offsets as reported by
// regexp.FindStringSubmatchIndex; a negative start means absent.
func FromIndex(input string, start, end int) Cap {
	if start < 0 || end < 0 {
		return None()
	}

	return Some(NewMatch(input, start, end))
}

func (c Cap) IsPresent() bool { return c.ok }

func (c Cap) Match() (Match, bool) { return c.m, c.ok }

// Text returns the borrowed text, or "" when absent.
func (c Cap) Text() string {
	if !c.ok {
		return ""
	}

	return c.m.Text()
}

func (c Cap) String() string {
	if !c.ok {
		return "<absent>"
	}

	return fmt.Sprintf("%q@%d", c.m.Text(), c.m.start)
}
