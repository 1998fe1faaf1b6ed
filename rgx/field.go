package rgx

import (
	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/engine"
)

// Group refers to a capture group by position or by name.
type Group struct {
	index int
	name  string
}

// Pos refers to the group at position i; 0 is the whole match.
func Pos(i int) Group { return Group{index: i} }

// Named refers to the group called name.
func Named(name string) Group { return Group{index: -1, name: name} }

func (g Group) String() string { return engine.GroupLabel(g.index, g.name) }

// Name returns the group name, or "" for positional groups.
func (g Group) Name() string { return g.name }

// Field binds one group to one field of T.
type Field[T any] struct {
	Name  string
	Group Group
	// Required fields need their group to participate in a match. Parse
	// and Advance report a contract violation otherwise; Extract skips the
	// field.
	Required bool

	resolve func(c capture.Cap) (func(*T), error)
}

// Bind converts group g with conv and stores the result with set. The field
// is required unless conv accepts absent groups.
func Bind[T, V any](name string, g Group, conv capture.Converter[V], set func(*T, V)) Field[T] {
	return Field[T]{
		Name:     name,
		Group:    g,
		Required: !capture.AcceptsAbsent(conv),
		resolve: func(c capture.Cap) (func(*T), error) {
			v, err := capture.Convert(c, conv)
			if err != nil {
				return nil, err
			}

			return func(dst *T) { set(dst, v) }, nil
		},
	}
}

// RawField is Bind for callers that build bindings dynamically: resolve
// converts the capture and returns the assignment to perform.
func RawField[T any](name string, g Group, required bool, resolve func(c capture.Cap) (func(*T), error)) Field[T] {
	return Field[T]{Name: name, Group: g, Required: required, resolve: resolve}
}
