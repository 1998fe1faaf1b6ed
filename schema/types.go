package schema

import (
	"maps"
	"time"
)

// File is the root of a schema file.
type File struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`

	Parsers []ParserDef `yaml:"parsers"`
}

// ParserDef defines one named parser.
type ParserDef struct {
	Name string `yaml:"name"`

	// Mode is "single", "sum" or "chain".
	Mode string `yaml:"mode,omitempty"`

	// Engine is "re2" or "regexp2".
	Engine string `yaml:"engine,omitempty"`

	// Anchored patterns have to match the whole text.
	Anchored bool `yaml:"anchored,omitempty"`

	// Timeout bounds a single match attempt of the regexp2 engine.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Patterns are variants for sums and steps for chains.
	Patterns []PatternDef `yaml:"patterns"`
}

// PatternDef is one expression and the fields it binds.
type PatternDef struct {
	// Variant names the record a sum variant produces.
	Variant string `yaml:"variant,omitempty"`

	Regex string `yaml:"regex"`

	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef binds a group to a record field.
type FieldDef struct {
	Name string `yaml:"name"`

	// Group is a group name or position; the field name when empty.
	Group string `yaml:"group,omitempty"`

	// Kind is a primitive kind name or one of the extra kinds.
	Kind string `yaml:"kind"`

	// Parser names the parser used by the "parser" kind.
	Parser string `yaml:"parser,omitempty"`

	// Layout is the time.Parse layout of the "time" kind.
	Layout string `yaml:"layout,omitempty"`

	// Optional fields are left out of the record when their group is absent.
	Optional bool `yaml:"optional,omitempty"`
}

// Kinds beyond the primitive ones.
const (
	KindRune   = "rune"
	KindBorrow = "borrow"
	KindBigInt = "bigint"
	KindParser = "parser"
)

// GroupName returns the group the field is bound to.
func (f FieldDef) GroupName() string {
	if f.Group != "" {
		return f.Group
	}

	return f.Name
}

// Record is the value produced by compiled parsers. Nested parsers yield
// nested Records.
type Record struct {
	Variant string         `json:"variant,omitempty" yaml:"variant,omitempty"`
	Fields  map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Get returns the value of field name.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Clone copies r so the copy can be changed without affecting r. Nested
// records are shared.
func (r Record) Clone() Record {
	return Record{Variant: r.Variant, Fields: maps.Clone(r.Fields)}
}

func (r *Record) set(name string, v any) {
	if r.Fields == nil {
		r.Fields = map[string]any{}
	}

	r.Fields[name] = v
}
