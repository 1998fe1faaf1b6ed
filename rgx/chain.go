package rgx

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Chain builds one T from several inputs. Each input has to match the next
// pattern of the chain; the value is complete once the last one matched.
type Chain[T any] struct {
	steps  []*Pattern[T]
	logger *zap.Logger
}

// NewChain creates a chain over steps, which are matched in the given order.
// Fields named with WithRequired must be bound by at least one step.
func NewChain[T any](steps []*Pattern[T], opts ...Option) (*Chain[T], error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("chain: %w", ErrEmpty)
	}

	bound := map[string]struct{}{}
	for i, p := range steps {
		if p == nil {
			return nil, fmt.Errorf("chain step %d: %w", i, ErrNilPattern)
		}

		for _, name := range p.Fields() {
			bound[name] = struct{}{}
		}
	}

	cfg := newConfig(opts)
	for _, name := range cfg.required {
		if _, ok := bound[name]; !ok {
			return nil, fmt.Errorf("chain: %w: %q", ErrUncovered, name)
		}
	}

	return &Chain[T]{steps: steps, logger: cfg.logger}, nil
}

// MustChain is like NewChain but panics on error.
func MustChain[T any](steps []*Pattern[T], opts ...Option) *Chain[T] {
	c, err := NewChain(steps, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of steps.
func (c *Chain[T]) Len() int { return len(c.steps) }

// Start returns a fresh state, before the first pattern.
func (c *Chain[T]) Start() State[T] {
	return State[T]{chain: c}
}

// Parse advances a fresh state with text.
func (c *Chain[T]) Parse(text string) (bool, Step[T], error) {
	return c.Start().Advance(text)
}

// Assemble feeds texts to a fresh state in order. Texts that do not match
// the current step are skipped. It returns false if the texts run out
// before the chain completes.
func (c *Chain[T]) Assemble(texts ...string) (T, bool, error) {
	var zero T

	state := c.Start()
	for _, text := range texts {
		_, next, err := state.Advance(text)
		if err != nil {
			return zero, false, err
		}

		if v, done := next.Result(); done {
			return v, true, nil
		}

		state, _ = next.Pending()
	}

	return zero, false, nil
}

// Extract tries the chain's patterns in order, independently of any state,
// and returns the overlay of the first one that matches.
func (c *Chain[T]) Extract(text string) (*Overlay[T], bool, error) {
	for _, p := range c.steps {
		o, ok, err := p.Extract(text)
		if err != nil || ok {
			return o, ok, err
		}
	}

	return nil, false, nil
}

// State is a chain in progress. States are values: advancing never changes
// the receiver. Targets sharing memory between copies, such as maps, should
// implement Clone() T so each state gets its own.
type State[T any] struct {
	chain   *Chain[T]
	index   int
	partial T
	covered []string
}

// Index returns the position of the pattern the next input is matched with.
func (s State[T]) Index() int { return s.index }

// Len returns the number of patterns of the chain.
func (s State[T]) Len() int {
	if s.chain == nil {
		return 0
	}

	return len(s.chain.steps)
}

// Fresh reports whether no pattern has matched yet.
func (s State[T]) Fresh() bool { return s.index == 0 }

// Partial returns the value built so far.
func (s State[T]) Partial() T { return s.partial }

// Covered returns the names of the fields set so far, in the order they were set.
func (s State[T]) Covered() []string { return slices.Clone(s.covered) }

// Advance matches text against the current pattern.
//
// Without a match it returns false and the unchanged state. With a match it
// returns true and either the state for the next pattern or, after the last
// one, the complete value. A contract error leaves the state unchanged too.
func (s State[T]) Advance(text string) (bool, Step[T], error) {
	if s.chain == nil {
		return false, Partial[T]{State: s}, fmt.Errorf("state: %w", ErrEmpty)
	}

	step := s.chain.steps[s.index]
	logger := s.chain.logger

	caps, err := step.match(text)
	if err != nil {
		return false, Partial[T]{State: s}, fmt.Errorf("chain step %d: %w", s.index, err)
	}

	if caps == nil {
		logger.Debug("chain step did not match", zap.Int("step", s.index), zap.String("pattern", step.expr))
		return false, Partial[T]{State: s}, nil
	}

	setters, err := step.resolve(caps, false)
	if err != nil {
		return false, Partial[T]{State: s}, fmt.Errorf("chain step %d: %w", s.index, err)
	}

	next := State[T]{
		chain:   s.chain,
		index:   s.index + 1,
		partial: clone(s.partial),
		covered: slices.Clone(s.covered),
	}

	for i, set := range setters {
		set(&next.partial)

		if name := step.fields[i].Name; !slices.Contains(next.covered, name) {
			next.covered = append(next.covered, name)
		}
	}

	if next.index == len(s.chain.steps) {
		logger.Debug("chain complete", zap.Int("steps", next.index))
		return true, Complete[T]{Value: next.partial}, nil
	}

	logger.Debug("chain advanced", zap.Int("step", s.index), zap.Int("next", next.index))

	return true, Partial[T]{State: next}, nil
}

func clone[T any](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}

	return v
}

// Step is the result of advancing a chain: a Partial with the next state or
// the Complete value.
type Step[T any] interface {
	// Pending returns the next state, if the chain is not complete.
	Pending() (State[T], bool)
	// Result returns the value, if the chain is complete.
	Result() (T, bool)

	step()
}

// Partial carries the state to continue with.
type Partial[T any] struct {
	State State[T]
}

func (p Partial[T]) Pending() (State[T], bool) { return p.State, true }

func (p Partial[T]) Result() (T, bool) {
	var zero T
	return zero, false
}

func (Partial[T]) step() {}

// Complete carries the finished value.
type Complete[T any] struct {
	Value T
}

func (Complete[T]) Pending() (State[T], bool) { return State[T]{}, false }

func (c Complete[T]) Result() (T, bool) { return c.Value, true }

func (Complete[T]) step() {}
