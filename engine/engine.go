// Package engine is the contract between the parsers and a regular
// expression implementation, plus adapters for the standard library's RE2
// engine and for github.com/dlclark/regexp2.
package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AnickaBurova/regex-parsers/capture"
)

var ErrUnknownEngine = errors.New("unknown regular expression engine")

// Engine compiles expressions.
type Engine interface {
	Name() string
	Compile(expr string) (Regexp, error)
}

// Regexp is a compiled expression.
type Regexp interface {
	String() string
	// SubexpNames returns the name of every group by position; index 0 is
	// the whole match and unnamed groups have an empty name.
	SubexpNames() []string
	// FindIndex searches text for the leftmost match and returns the byte
	// offsets of every group as pairs, with -1 for groups that did not
	// participate. A nil slice and nil error mean there is no match.
	FindIndex(text string) ([]int, error)
}

// Default is the engine used when none is configured.
var Default Engine = RE2{}

// ByName resolves the engine names used in configuration files.
func ByName(name string) (Engine, error) {
	switch name {
	case "", "re2", "regexp":
		return RE2{}, nil
	case "regexp2", "backtrack":
		return Backtrack{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// Names lists the canonical engine names accepted by ByName.
func Names() []string { return []string{"re2", "regexp2"} }

// Anchor wraps expr so it has to match the whole text.
func Anchor(expr string) string {
	return `\A(?:` + expr + `)\z`
}

// SubexpIndex returns the position of the group called name, or -1.
func SubexpIndex(re Regexp, name string) int {
	if name == "" {
		return -1
	}

	for i, n := range re.SubexpNames() {
		if n == name {
			return i
		}
	}

	return -1
}

// Captures are the groups of one successful match.
type Captures struct {
	input string
	loc   []int
	re    Regexp
}

// Match runs re against text. It returns nil captures when there is no match.
func Match(re Regexp, text string) (*Captures, error) {
	loc, err := re.FindIndex(text)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", re.String(), err)
	}

	if loc == nil {
		return nil, nil
	}

	return &Captures{input: text, loc: loc, re: re}, nil
}

// Len returns the number of groups including the whole match.
func (c *Captures) Len() int { return len(c.loc) / 2 }

func (c *Captures) Input() string { return c.input }

// Cap returns group i. Groups out of range are absent.
func (c *Captures) Cap(i int) capture.Cap {
	if i < 0 || 2*i+1 >= len(c.loc) {
		return capture.None()
	}

	return capture.FromIndex(c.input, c.loc[2*i], c.loc[2*i+1])
}

// Named returns the group called name. Unknown names are absent.
func (c *Captures) Named(name string) capture.Cap {
	return c.Cap(SubexpIndex(c.re, name))
}

// GroupLabel renders a group reference for error messages.
func GroupLabel(index int, name string) string {
	if name != "" {
		return strconv.Quote(name)
	}

	return strconv.Itoa(index)
}
