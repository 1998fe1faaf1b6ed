package capture

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingGroup  = errors.New("required group did not participate in the match")
	ErrMalformed     = errors.New("captured text does not parse as the declared type")
	ErrNoNestedMatch = errors.New("nested parser does not match the captured text")
)

// ContractError reports a disagreement between a binding and the expression
// feeding it. It is never used for "no match".
type ContractError struct {
	Pattern string // expression of the pattern, when known
	Field   string // target field name, when known
	Group   string // group name or position, when known
	Type    string // type the converter produces
	Text    string // offending text, if the group was present
	Err     error  // one of the Err* sentinels, possibly joined with a cause
}

func (e *ContractError) Error() string {
	var b strings.Builder

	b.WriteString("contract violation")

	if e.Field != "" {
		fmt.Fprintf(&b, " in field %q", e.Field)
	}

	if e.Group != "" {
		fmt.Fprintf(&b, " (group %s)", e.Group)
	}

	if e.Type != "" {
		fmt.Fprintf(&b, " converting to %s", e.Type)
	}

	if e.Pattern != "" {
		fmt.Fprintf(&b, " of pattern %q", e.Pattern)
	}

	if e.Text != "" {
		fmt.Fprintf(&b, " from %q", e.Text)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *ContractError) Unwrap() error { return e.Err }

// Attribute fills the pattern, field and group of the ContractError found
// in err's chain, keeping whatever a deeper binding already recorded. The
// error is updated in place and err is returned with its wrapping intact, so
// context such as a variant name survives. Other errors are returned as is.
func Attribute(err error, pattern, field, group string) error {
	var ce *ContractError
	if !errors.As(err, &ce) {
		return err
	}

	if ce.Pattern == "" {
		ce.Pattern = pattern
	}

	if ce.Field == "" {
		ce.Field = field
	}

	if ce.Group == "" {
		ce.Group = group
	}

	return err
}

// Missing reports that a group feeding a typ did not participate.
func Missing(typ string) error {
	return &ContractError{Type: typ, Err: ErrMissingGroup}
}

// Malformed reports that the text of c does not parse as a typ.
func Malformed(c Cap, typ string, cause error) error {
	err := ErrMalformed
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrMalformed, cause)
	}

	return &ContractError{Type: typ, Text: c.Text(), Err: err}
}
