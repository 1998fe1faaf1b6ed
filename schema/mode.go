package schema

import "strings"

//go:generate go tool stringer -type=Mode -trimprefix=Mode -output=mode_string.go

// Mode tells how the patterns of a parser are combined.
type Mode int

const (
	_ Mode = iota

	// ModeSingle is one pattern.
	ModeSingle
	// ModeSum tries variant patterns in order; the first match wins.
	ModeSum
	// ModeChain matches its patterns against consecutive texts.
	ModeChain
)

var modes = []Mode{ModeSingle, ModeSum, ModeChain}

// Name is the spelling used in schema files.
func (m Mode) Name() string {
	return strings.ToLower(m.String())
}

// ParseMode resolves the spelling used in schema files.
func ParseMode(name string) (Mode, bool) {
	for _, m := range modes {
		if m.Name() == name {
			return m, true
		}
	}

	return 0, false
}

func modeNames() []string {
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = m.Name()
	}

	return out
}
