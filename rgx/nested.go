package rgx

import (
	"reflect"

	"github.com/AnickaBurova/regex-parsers/capture"
)

// Parser is implemented by Pattern, Sum and anything else that turns text
// into a T, reporting false when the text does not match.
type Parser[T any] interface {
	Parse(text string) (T, bool, error)
}

// ParserFunc adapts a function to a Parser.
type ParserFunc[T any] func(text string) (T, bool, error)

func (f ParserFunc[T]) Parse(text string) (T, bool, error) { return f(text) }

// Nested parses the text of a group with p. The group has to be present and
// p has to match it.
func Nested[T any](p Parser[T]) capture.Converter[T] {
	name := reflect.TypeFor[T]().String()

	return capture.Func[T](func(c capture.Cap) (T, error) {
		var zero T

		m, ok := c.Match()
		if !ok {
			return zero, &capture.ContractError{Type: name, Err: capture.ErrMissingGroup}
		}

		v, ok, err := p.Parse(m.Text())
		if err != nil {
			return zero, err
		}

		if !ok {
			return zero, &capture.ContractError{Type: name, Text: m.Text(), Err: capture.ErrNoNestedMatch}
		}

		return v, nil
	})
}

// NestedOptional parses the text of a group with p, returning the zero T
// when the group is absent or p does not match it. For interface and
// pointer types that zero value is nil.
func NestedOptional[T any](p Parser[T]) capture.Converter[T] {
	return capture.Lenient[T](func(c capture.Cap) (T, error) {
		var zero T

		m, ok := c.Match()
		if !ok {
			return zero, nil
		}

		v, ok, err := p.Parse(m.Text())
		if err != nil || !ok {
			return zero, err
		}

		return v, nil
	})
}
