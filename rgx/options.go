package rgx

import (
	"go.uber.org/zap"

	"github.com/AnickaBurova/regex-parsers/engine"
)

type config struct {
	engine   engine.Engine
	anchored bool
	logger   *zap.Logger
	parallel int
	required []string
}

// Option configures patterns, sums and chains. Options that do not apply to
// a constructor are ignored by it.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		engine: engine.Default,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEngine compiles pattern expressions with e instead of engine.Default.
func WithEngine(e engine.Engine) Option {
	return func(c *config) {
		if e != nil {
			c.engine = e
		}
	}
}

// Anchored makes pattern expressions match the whole input only.
func Anchored() Option {
	return func(c *config) { c.anchored = true }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallel lets a Sum match up to n variants concurrently. The result is
// the same as sequential matching.
func WithParallel(n int) Option {
	return func(c *config) { c.parallel = n }
}

// WithRequired names fields a Chain has to bind in one of its steps.
func WithRequired(fields ...string) Option {
	return func(c *config) { c.required = append(c.required, fields...) }
}
