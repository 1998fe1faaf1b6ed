package schema

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/primitive"
	"github.com/AnickaBurova/regex-parsers/rgx"
)

var ErrInvalid = errors.New("invalid schema")

// Registry holds the compiled parsers of a file.
type Registry struct {
	names   []string
	modes   map[string]Mode
	parsers map[string]rgx.Parser[Record]
	chains  map[string]*rgx.Chain[Record]
}

// Names returns the parser names in file order.
func (r *Registry) Names() []string { return r.names }

// Mode returns the mode of parser name.
func (r *Registry) Mode(name string) (Mode, bool) {
	m, ok := r.modes[name]
	return m, ok
}

// Parser returns the single or sum parser called name.
func (r *Registry) Parser(name string) (rgx.Parser[Record], bool) {
	p, ok := r.parsers[name]
	return p, ok
}

// Chain returns the chain called name.
func (r *Registry) Chain(name string) (*rgx.Chain[Record], bool) {
	c, ok := r.chains[name]
	return c, ok
}

// ref lets parsers refer to each other before all of them are compiled.
type ref struct {
	target rgx.Parser[Record]
}

func (r *ref) Parse(text string) (Record, bool, error) { return r.target.Parse(text) }

// Compile validates the file and builds its parsers. opts apply to every
// pattern, sum and chain; the engine and anchoring of each parser come from
// the file.
func (f *File) Compile(opts ...rgx.Option) (*Registry, error) {
	if err := f.Validate().Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	reg := &Registry{
		modes:   map[string]Mode{},
		parsers: map[string]rgx.Parser[Record]{},
		chains:  map[string]*rgx.Chain[Record]{},
	}

	refs := map[string]*ref{}
	for _, p := range f.Parsers {
		mode, _ := modeOf(p)
		reg.names = append(reg.names, p.Name)
		reg.modes[p.Name] = mode

		if mode != ModeChain {
			refs[p.Name] = &ref{}
		}
	}

	c := compiler{refs: refs, opts: opts}

	for _, p := range f.Parsers {
		if err := c.parser(reg, p); err != nil {
			return nil, fmt.Errorf("parser %q: %w", p.Name, err)
		}
	}

	return reg, nil
}

type compiler struct {
	refs map[string]*ref
	opts []rgx.Option
}

func (c compiler) parser(reg *Registry, p ParserDef) error {
	eng, err := engineOf(p)
	if err != nil {
		return err
	}

	opts := append(append([]rgx.Option{}, c.opts...), rgx.WithEngine(eng))
	if p.Anchored {
		opts = append(opts, rgx.Anchored())
	}

	patterns := make([]*rgx.Pattern[Record], len(p.Patterns))
	for i, pd := range p.Patterns {
		if patterns[i], err = c.pattern(pd, opts); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}

	switch reg.modes[p.Name] {
	case ModeChain:
		reg.chains[p.Name], err = rgx.NewChain(patterns, opts...)
		return err
	case ModeSum:
		sum := rgx.NewSum[Record](opts...)
		for i, pd := range p.Patterns {
			sum.Add(rgx.Case(pd.Variant, patterns[i], variant(pd.Variant)))
		}

		c.register(reg, p.Name, sum)
	default:
		single, name := patterns[0], p.Patterns[0].Variant
		c.register(reg, p.Name, rgx.ParserFunc[Record](func(text string) (Record, bool, error) {
			r, ok, err := single.Parse(text)
			if ok {
				r.Variant = name
			}

			return r, ok, err
		}))
	}

	return nil
}

func (c compiler) register(reg *Registry, name string, p rgx.Parser[Record]) {
	c.refs[name].target = p
	reg.parsers[name] = p
}

func variant(name string) func(Record) Record {
	return func(r Record) Record {
		r.Variant = name
		return r
	}
}

func (c compiler) pattern(pd PatternDef, opts []rgx.Option) (*rgx.Pattern[Record], error) {
	fields := make([]rgx.Field[Record], len(pd.Fields))

	for i, fd := range pd.Fields {
		conv, err := c.converter(fd)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}

		fields[i] = field(fd, conv)
	}

	return rgx.NewPattern(pd.Regex, fields, opts...)
}

func field(fd FieldDef, conv capture.Converter[any]) rgx.Field[Record] {
	name, optional := fd.Name, fd.Optional

	var g rgx.Group
	if n, err := strconv.Atoi(fd.GroupName()); err == nil {
		g = rgx.Pos(n)
	} else {
		g = rgx.Named(fd.GroupName())
	}

	required := !optional && !capture.AcceptsAbsent(conv)

	return rgx.RawField[Record](name, g, required, func(cp capture.Cap) (func(*Record), error) {
		if optional && !cp.IsPresent() {
			return func(*Record) {}, nil
		}

		v, err := conv.FromMatch(cp)
		if err != nil {
			return nil, err
		}

		if optional && v == nil {
			return func(*Record) {}, nil
		}

		return func(r *Record) { r.set(name, v) }, nil
	})
}

func (c compiler) converter(fd FieldDef) (capture.Converter[any], error) {
	switch fd.Kind {
	case KindRune:
		return capture.Erase(capture.Char), nil
	case KindBorrow:
		return capture.Erase(capture.Str), nil
	case KindBigInt:
		return capture.Erase(capture.BigInt), nil
	case KindParser:
		r, ok := c.refs[fd.Parser]
		if !ok {
			return nil, fmt.Errorf("unknown parser %q", fd.Parser)
		}

		if fd.Optional {
			// a miss yields nil, which field leaves unset
			return rgx.NestedOptional[any](rgx.ParserFunc[any](func(text string) (any, bool, error) {
				v, ok, err := r.Parse(text)
				if !ok {
					return nil, false, err
				}

				return v, true, nil
			})), nil
		}

		return capture.Erase(rgx.Nested[Record](r)), nil
	}

	k, ok := primitive.FromName(fd.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", capture.ErrNoKind, fd.Kind)
	}

	if k == primitive.KindTime && fd.Layout != "" {
		return capture.Erase(capture.Time(fd.Layout)), nil
	}

	return capture.ForKind(k)
}
