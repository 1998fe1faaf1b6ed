package capture

import (
	"encoding"
	"errors"
)

type optional[T any] struct {
	inner Converter[T]
}

// Optional converts an absent group to nil and a present one to a pointer
// to the inner conversion. It never fails on its own.
func Optional[T any](inner Converter[T]) Converter[*T] {
	return optional[T]{inner: inner}
}

func (o optional[T]) FromMatch(c Cap) (*T, error) {
	if !c.IsPresent() {
		return nil, nil
	}

	v, err := o.inner.FromMatch(c)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (optional[T]) AcceptsAbsent() bool { return true }

// Pointer is the ownership wrapper: it delegates to inner and moves the
// result to the heap. The pointer may be shared between parents freely.
// Absence is handled by inner, so Pointer(Bool) accepts absent groups and
// Pointer(String) does not.
func Pointer[T any](inner Converter[T]) Converter[*T] {
	return pointer[T]{inner: inner}
}

type pointer[T any] struct {
	inner Converter[T]
}

func (p pointer[T]) FromMatch(c Cap) (*T, error) {
	v, err := p.inner.FromMatch(c)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (p pointer[T]) AcceptsAbsent() bool { return AcceptsAbsent(p.inner) }

// Default converts an absent group to def and a present one with inner.
func Default[T any](inner Converter[T], def T) Converter[T] {
	return Lenient[T](func(c Cap) (T, error) {
		if !c.IsPresent() {
			return def, nil
		}

		return inner.FromMatch(c)
	})
}

// Custom converts through T's UnmarshalMatch method.
func Custom[T any, P interface {
	*T
	Unmarshaler
}]() Converter[T] {
	name := typeName[T]()

	return Func[T](func(c Cap) (T, error) {
		var v T
		if err := P(&v).UnmarshalMatch(c); err != nil {
			return v, Wrap(c, name, err)
		}

		return v, nil
	})
}

// Text converts through T's encoding.TextUnmarshaler implementation, which
// covers net.IP, netip.Addr, big.Float and the like.
func Text[T any, P interface {
	*T
	encoding.TextUnmarshaler
}]() Converter[T] {
	name := typeName[T]()

	return Func[T](func(c Cap) (T, error) {
		var v T

		m, ok := c.Match()
		if !ok {
			return v, Missing(name)
		}

		if err := P(&v).UnmarshalText([]byte(m.Text())); err != nil {
			return v, Malformed(c, name, err)
		}

		return v, nil
	})
}

// Wrap turns an error from user conversion code into a ContractError for c.
// A ContractError already in err's chain is returned unchanged.
func Wrap(c Cap, typ string, err error) error {
	var ce *ContractError
	if errors.As(err, &ce) {
		return err
	}

	if !c.IsPresent() {
		return &ContractError{Type: typ, Err: errors.Join(ErrMissingGroup, err)}
	}

	return Malformed(c, typ, err)
}
