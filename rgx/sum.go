package rgx

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AnickaBurova/regex-parsers/engine"
)

// Variant is one case of a Sum.
type Variant[T any] struct {
	name  string
	expr  string
	match func(text string) (*engine.Captures, error)
	build func(caps *engine.Captures) (T, error)
}

// Case builds the variant name of a Sum[T] from a pattern of the variant's
// own type V and the constructor wrapping a V into a T.
func Case[T, V any](name string, p *Pattern[V], wrap func(V) T) Variant[T] {
	if p == nil {
		panic(fmt.Sprintf("rgx: variant %q: %v", name, ErrNilPattern))
	}

	return Variant[T]{
		name:  name,
		expr:  p.expr,
		match: p.match,
		build: func(caps *engine.Captures) (T, error) {
			var (
				v    V
				zero T
			)

			setters, err := p.resolve(caps, false)
			if err != nil {
				return zero, err
			}

			for _, set := range setters {
				set(&v)
			}

			return wrap(v), nil
		},
	}
}

// Self is Case for patterns that build T directly.
func Self[T any](name string, p *Pattern[T]) Variant[T] {
	return Case(name, p, func(v T) T { return v })
}

// Sum parses a sum type: the first variant whose pattern matches wins.
type Sum[T any] struct {
	variants []Variant[T]
	logger   *zap.Logger
	parallel int
}

// NewSum returns an empty Sum. Variants are added with Add, which lets them
// refer to the Sum itself through Nested before it is complete.
func NewSum[T any](opts ...Option) *Sum[T] {
	cfg := newConfig(opts)

	return &Sum[T]{logger: cfg.logger, parallel: cfg.parallel}
}

// Add appends variants in priority order. It must not be called
// concurrently with Parse.
func (s *Sum[T]) Add(variants ...Variant[T]) *Sum[T] {
	s.variants = append(s.variants, variants...)
	return s
}

// Variants returns the names of the variants in priority order.
func (s *Sum[T]) Variants() []string {
	out := make([]string, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.name
	}

	return out
}

// Parse tries each variant in order and builds the first that matches. A
// variant that matches is committed to: if building it fails, the error is
// returned and later variants are not tried.
func (s *Sum[T]) Parse(text string) (T, bool, error) {
	var zero T

	if len(s.variants) == 0 {
		return zero, false, ErrEmpty
	}

	i, caps, err := s.first(text)
	if err != nil {
		return zero, false, fmt.Errorf("variant %q: %w", s.variants[i].name, err)
	}

	if caps == nil {
		s.logger.Debug("no variant matched", zap.Int("variants", len(s.variants)))
		return zero, false, nil
	}

	variant := s.variants[i]
	s.logger.Debug("variant matched",
		zap.String("variant", variant.name),
		zap.Int("index", i),
		zap.String("pattern", variant.expr))

	v, err := variant.build(caps)
	if err != nil {
		return zero, false, fmt.Errorf("variant %q: %w", variant.name, err)
	}

	return v, true, nil
}

// first returns the index of the first variant that matches or fails, with
// its captures. Captures are nil when nothing matched.
func (s *Sum[T]) first(text string) (int, *engine.Captures, error) {
	if s.parallel < 2 || len(s.variants) < 2 {
		for i, v := range s.variants {
			caps, err := v.match(text)
			if err != nil || caps != nil {
				return i, caps, err
			}
		}

		return -1, nil, nil
	}

	n := len(s.variants)
	results := make([]*engine.Captures, n)
	errs := make([]error, n)

	// best only decreases; attempts above it cannot win and are skipped.
	var best atomic.Int64
	best.Store(int64(n))

	var g errgroup.Group
	g.SetLimit(s.parallel)

	for i := range s.variants {
		if int64(i) > best.Load() {
			break
		}

		g.Go(func() error {
			if int64(i) > best.Load() {
				return nil
			}

			caps, err := s.variants[i].match(text)
			if err == nil && caps == nil {
				return nil
			}

			results[i], errs[i] = caps, err
			lower(&best, int64(i))

			return nil
		})
	}

	_ = g.Wait()

	for i := range n {
		if errs[i] != nil || results[i] != nil {
			return i, results[i], errs[i]
		}
	}

	return -1, nil, nil
}

func lower(v *atomic.Int64, to int64) {
	for {
		cur := v.Load()
		if to >= cur || v.CompareAndSwap(cur, to) {
			return
		}
	}
}
