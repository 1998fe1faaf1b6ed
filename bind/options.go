package bind

import (
	"reflect"

	"github.com/AnickaBurova/regex-parsers/engine"
	"github.com/AnickaBurova/regex-parsers/rgx"
)

// nestedParser is a type-erased rgx.Parser.
type nestedParser func(text string) (reflect.Value, bool, error)

type config struct {
	engine engine.Engine
	nested map[reflect.Type]nestedParser
	rgx    []rgx.Option
}

// Option configures Pattern and Chain.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		engine: engine.Default,
		nested: map[reflect.Type]nestedParser{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithNested converts fields of type V, and of type *V, by parsing the
// group's text with p. Interface and pointer fields are optional: when the
// group is absent or p does not match it they stay nil. Any other field needs
// a group p matches, and a miss is a contract violation.
func WithNested[V any](p rgx.Parser[V]) Option {
	t := reflect.TypeFor[V]()

	return func(c *config) {
		c.nested[t] = func(text string) (reflect.Value, bool, error) {
			v, ok, err := p.Parse(text)
			return reflect.ValueOf(&v).Elem(), ok, err
		}
	}
}

// WithEngine compiles expressions with e.
func WithEngine(e engine.Engine) Option {
	return func(c *config) {
		if e == nil {
			return
		}

		c.engine = e
		c.rgx = append(c.rgx, rgx.WithEngine(e))
	}
}

// WithOptions passes opts to the rgx constructors. Use WithEngine rather
// than rgx.WithEngine, so chains see the same group names as their steps.
func WithOptions(opts ...rgx.Option) Option {
	return func(c *config) { c.rgx = append(c.rgx, opts...) }
}
