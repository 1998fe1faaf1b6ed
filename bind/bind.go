package bind

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/rgx"
)

// binding is one tagged field of a struct.
type binding struct {
	index int
	name  string
	tag   tag
	conv  converter
}

func (cfg *config) bindings(t reflect.Type) ([]binding, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	var out []binding

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		tg, ok, err := parseTag(f)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		if !f.IsExported() {
			return nil, fmt.Errorf("%w: field %s of %s is not exported", ErrTag, f.Name, t)
		}

		conv, err := cfg.converterFor(f.Type, tg)
		if err != nil {
			return nil, fmt.Errorf("field %s of %s: %w", f.Name, t, err)
		}

		out = append(out, binding{index: i, name: f.Name, tag: tg, conv: conv})
	}

	return out, nil
}

func fieldOf[T any](b binding) rgx.Field[T] {
	return rgx.RawField[T](b.name, b.tag.group, !b.conv.lenient, func(c capture.Cap) (func(*T), error) {
		v, err := b.conv.convert(c)
		if err != nil {
			return nil, err
		}

		return func(dst *T) { reflect.ValueOf(dst).Elem().Field(b.index).Set(v) }, nil
	})
}

// Fields returns the bindings of T's tagged fields, for use with
// rgx.NewPattern directly.
func Fields[T any](opts ...Option) ([]rgx.Field[T], error) {
	bs, err := newConfig(opts).bindings(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	return fieldsOf[T](bs), nil
}

func fieldsOf[T any](bs []binding) []rgx.Field[T] {
	fields := make([]rgx.Field[T], len(bs))
	for i, b := range bs {
		fields[i] = fieldOf[T](b)
	}

	return fields
}

// Pattern compiles expr and binds every tagged field of T to it.
func Pattern[T any](expr string, opts ...Option) (*rgx.Pattern[T], error) {
	cfg := newConfig(opts)

	bs, err := cfg.bindings(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	return rgx.NewPattern(expr, fieldsOf[T](bs), cfg.rgx...)
}

// MustPattern is like Pattern but panics on error.
func MustPattern[T any](expr string, opts ...Option) *rgx.Pattern[T] {
	p, err := Pattern[T](expr, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Chain builds a chain with one step per expression. Every step binds the
// tagged fields whose group it names; fields that need a group have to be
// bound by some step.
func Chain[T any](exprs []string, opts ...Option) (*rgx.Chain[T], error) {
	cfg := newConfig(opts)

	bs, err := cfg.bindings(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	var required []string
	for _, b := range bs {
		if b.tag.positional {
			return nil, fmt.Errorf("%w: field %s", ErrPositional, b.name)
		}

		if !b.conv.lenient {
			required = append(required, b.name)
		}
	}

	steps := make([]*rgx.Pattern[T], len(exprs))
	for i, expr := range exprs {
		re, err := cfg.engine.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("chain step %d: compiling %q: %w", i, expr, err)
		}

		names := re.SubexpNames()

		var fields []rgx.Field[T]
		for _, b := range bs {
			if slices.Contains(names, b.tag.group.Name()) {
				fields = append(fields, fieldOf[T](b))
			}
		}

		if steps[i], err = rgx.NewPattern(expr, fields, cfg.rgx...); err != nil {
			return nil, fmt.Errorf("chain step %d: %w", i, err)
		}
	}

	return rgx.NewChain(steps, append(slices.Clone(cfg.rgx), rgx.WithRequired(required...))...)
}

// MustChain is like Chain but panics on error.
func MustChain[T any](exprs []string, opts ...Option) *rgx.Chain[T] {
	c, err := Chain[T](exprs, opts...)
	if err != nil {
		panic(err)
	}

	return c
}
