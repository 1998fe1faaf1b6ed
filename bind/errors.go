package bind

import "errors"

var (
	ErrNotStruct   = errors.New("bound type is not a struct")
	ErrUnsupported = errors.New("field type has no conversion")
	ErrTag         = errors.New("malformed rgx tag")
	ErrPositional  = errors.New("positional groups cannot be used in a chain")
)
