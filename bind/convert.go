package bind

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/primitive"
)

// converter is a type-erased capture.Converter.
type converter struct {
	lenient bool
	convert func(c capture.Cap) (reflect.Value, error)
}

func (cfg *config) converterFor(t reflect.Type, tg tag) (converter, error) {
	switch dispatch(t, cfg.nested) {
	case DispatcherPrimitive:
		return primitiveFor(t, tg)
	case DispatcherPointer:
		if parse, ok := cfg.nested[t.Elem()]; ok {
			return nestedPointer(t, parse), nil
		}

		inner, err := cfg.converterFor(t.Elem(), tg)
		if err != nil {
			return converter{}, err
		}

		return pointerTo(t, inner), nil
	case DispatcherNested:
		return nestedFor(t, cfg.nested[t]), nil
	case DispatcherUnmarshaler:
		return unmarshalerFor(t), nil
	case DispatcherText:
		return textFor(t), nil
	default:
		return converter{}, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
}

func primitiveFor(t reflect.Type, tg tag) (converter, error) {
	k := primitive.FromReflectType(t)

	if tg.borrow && k != primitive.KindString {
		return converter{}, fmt.Errorf("%w: borrow needs a string, not %s", ErrTag, t)
	}

	if tg.char && k != primitive.KindInt32 {
		return converter{}, fmt.Errorf("%w: char needs a rune, not %s", ErrTag, t)
	}

	var conv capture.Converter[any]

	switch {
	case tg.char:
		conv = capture.Erase(capture.Char)
	case tg.borrow:
		conv = capture.Erase(capture.Str)
	default:
		var err error
		if conv, err = capture.ForKind(k); err != nil {
			return converter{}, fmt.Errorf("%w: %s", ErrUnsupported, t)
		}
	}

	return converter{
		lenient: capture.AcceptsAbsent(conv),
		convert: func(c capture.Cap) (reflect.Value, error) {
			v, err := conv.FromMatch(c)
			if err != nil {
				return reflect.Value{}, err
			}

			// named types share the kind of their underlying type
			return reflect.ValueOf(v).Convert(t), nil
		},
	}, nil
}

// pointerTo makes the group optional: absent groups leave a nil pointer.
func pointerTo(t reflect.Type, inner converter) converter {
	return converter{
		lenient: true,
		convert: func(c capture.Cap) (reflect.Value, error) {
			if !c.IsPresent() {
				return reflect.Zero(t), nil
			}

			v, err := inner.convert(c)
			if err != nil {
				return reflect.Value{}, err
			}

			p := reflect.New(t.Elem())
			p.Elem().Set(v)

			return p, nil
		},
	}
}

// nestedFor parses the group with parse. Interface and pointer fields are
// optional: an absent group, or one parse does not match, leaves them nil.
// Other types need a group that parse matches.
func nestedFor(t reflect.Type, parse nestedParser) converter {
	name := t.String()
	optional := t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer

	return converter{
		lenient: optional,
		convert: func(c capture.Cap) (reflect.Value, error) {
			m, ok := c.Match()
			if !ok {
				if optional {
					return reflect.Zero(t), nil
				}

				return reflect.Value{}, capture.Missing(name)
			}

			v, ok, err := parse(m.Text())
			if err != nil {
				return reflect.Value{}, err
			}

			if !ok {
				if optional {
					return reflect.Zero(t), nil
				}

				return reflect.Value{}, &capture.ContractError{Type: name, Text: m.Text(), Err: capture.ErrNoNestedMatch}
			}

			return v, nil
		},
	}
}

// nestedPointer is nestedFor for a pointer to a registered type.
func nestedPointer(t reflect.Type, parse nestedParser) converter {
	return converter{
		lenient: true,
		convert: func(c capture.Cap) (reflect.Value, error) {
			m, ok := c.Match()
			if !ok {
				return reflect.Zero(t), nil
			}

			v, ok, err := parse(m.Text())
			if err != nil || !ok {
				return reflect.Zero(t), err
			}

			p := reflect.New(t.Elem())
			p.Elem().Set(v)

			return p, nil
		},
	}
}

func unmarshalerFor(t reflect.Type) converter {
	name := t.String()

	return converter{
		convert: func(c capture.Cap) (reflect.Value, error) {
			p := reflect.New(t)
			if err := p.Interface().(capture.Unmarshaler).UnmarshalMatch(c); err != nil {
				return reflect.Value{}, capture.Wrap(c, name, err)
			}

			return p.Elem(), nil
		},
	}
}

func textFor(t reflect.Type) converter {
	name := t.String()

	return converter{
		convert: func(c capture.Cap) (reflect.Value, error) {
			m, ok := c.Match()
			if !ok {
				return reflect.Value{}, capture.Missing(name)
			}

			p := reflect.New(t)
			if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(m.Text())); err != nil {
				return reflect.Value{}, capture.Malformed(c, name, err)
			}

			return p.Elem(), nil
		},
	}
}
