package rgx

import "errors"

var (
	ErrUnknownGroup = errors.New("field is bound to a group the expression does not have")
	ErrEmpty        = errors.New("nothing to match against")
	ErrUncovered    = errors.New("required field is not bound by any pattern of the chain")
	ErrNilPattern   = errors.New("pattern is nil")
)
