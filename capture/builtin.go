package capture

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/AnickaBurova/regex-parsers/primitive"
	"github.com/AnickaBurova/regex-parsers/utils"
)

var (
	// String copies the matched text, so the value outlives the input.
	String Converter[string] = Func[string](func(c Cap) (string, error) {
		m, ok := c.Match()
		if !ok {
			return "", Missing("string")
		}

		return m.Owned(), nil
	})

	// Str returns the matched text as a view into the input, without copying.
	Str Converter[string] = Func[string](func(c Cap) (string, error) {
		m, ok := c.Match()
		if !ok {
			return "", Missing("string")
		}

		return m.Text(), nil
	})

	// Bool is true iff the group participated; the text is not inspected.
	Bool Converter[bool] = Lenient[bool](func(c Cap) (bool, error) {
		return c.IsPresent(), nil
	})

	// Char takes the first character of the matched text.
	Char Converter[rune] = Func[rune](func(c Cap) (rune, error) {
		m, ok := c.Match()
		if !ok {
			return 0, Missing("rune")
		}

		r, size := utf8.DecodeRuneInString(m.Text())
		if size == 0 {
			return 0, Malformed(c, "rune", errors.New("empty text"))
		}

		if r == utf8.RuneError && size == 1 {
			return 0, Malformed(c, "rune", errors.New("invalid UTF-8"))
		}

		return r, nil
	})

	// BigInt parses a base 10 integer of any size.
	BigInt Converter[*big.Int] = Func[*big.Int](func(c Cap) (*big.Int, error) {
		m, ok := c.Match()
		if !ok {
			return nil, Missing("*big.Int")
		}

		n, ok := new(big.Int).SetString(m.Text(), 10)
		if !ok {
			return nil, Malformed(c, "*big.Int", nil)
		}

		return n, nil
	})
)

// Duration parses the matched text with time.ParseDuration ("1h30m").
var Duration Converter[time.Duration] = Func[time.Duration](func(c Cap) (time.Duration, error) {
	m, ok := c.Match()
	if !ok {
		return 0, Missing("time.Duration")
	}

	d, err := time.ParseDuration(m.Text())
	if err != nil {
		return 0, Malformed(c, "time.Duration", err)
	}

	return d, nil
})

// Time parses the matched text with the given layout, e.g. time.RFC3339.
func Time(layout string) Converter[time.Time] {
	return Func[time.Time](func(c Cap) (time.Time, error) {
		m, ok := c.Match()
		if !ok {
			return time.Time{}, Missing("time.Time")
		}

		t, err := time.Parse(layout, m.Text())
		if err != nil {
			return time.Time{}, Malformed(c, "time.Time", err)
		}

		return t, nil
	})
}

// Int parses the matched text as a signed integer of T's width.
func Int[T utils.Signed]() Converter[T] {
	name := typeName[T]()
	bits := primitive.Of[T]().Bits()

	return Func[T](func(c Cap) (T, error) {
		m, ok := c.Match()
		if !ok {
			return 0, Missing(name)
		}

		v, err := strconv.ParseInt(m.Text(), 10, bits)
		if err != nil {
			return 0, Malformed(c, name, err)
		}

		return T(v), nil
	})
}

// Uint parses the matched text as an unsigned integer of T's width.
func Uint[T utils.Unsigned]() Converter[T] {
	name := typeName[T]()
	bits := primitive.Of[T]().Bits()

	return Func[T](func(c Cap) (T, error) {
		m, ok := c.Match()
		if !ok {
			return 0, Missing(name)
		}

		v, err := strconv.ParseUint(m.Text(), 10, bits)
		if err != nil {
			return 0, Malformed(c, name, err)
		}

		return T(v), nil
	})
}

// Float parses the matched text as a floating-point number of T's width.
func Float[T utils.Float]() Converter[T] {
	name := typeName[T]()
	bits := primitive.Of[T]().Bits()

	return Func[T](func(c Cap) (T, error) {
		m, ok := c.Match()
		if !ok {
			return 0, Missing(name)
		}

		v, err := strconv.ParseFloat(m.Text(), bits)
		if err != nil {
			return 0, Malformed(c, name, err)
		}

		return T(v), nil
	})
}

func sprintType(v any) string {
	return fmt.Sprintf("%T", v)
}
