package rgx

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/engine"
	"github.com/AnickaBurova/regex-parsers/internal/similar"
)

// Pattern is one compiled expression and its field bindings. It is
// immutable and safe for concurrent use.
type Pattern[T any] struct {
	expr   string
	re     engine.Regexp
	fields []Field[T]
	slots  []int
	logger *zap.Logger
}

// NewPattern compiles expr and checks every binding against its groups.
func NewPattern[T any](expr string, fields []Field[T], opts ...Option) (*Pattern[T], error) {
	cfg := newConfig(opts)

	source := expr
	if cfg.anchored {
		source = engine.Anchor(expr)
	}

	re, err := cfg.engine.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compiling %q with %s: %w", expr, cfg.engine.Name(), err)
	}

	p := &Pattern[T]{
		expr:   expr,
		re:     re,
		fields: fields,
		slots:  make([]int, len(fields)),
		logger: cfg.logger,
	}

	names := re.SubexpNames()
	for i, f := range fields {
		if f.resolve == nil {
			return nil, fmt.Errorf("field %q of %q has no converter", f.Name, expr)
		}

		slot, err := groupSlot(f.Group, names)
		if err != nil {
			return nil, fmt.Errorf("field %q of %q: %w", f.Name, expr, err)
		}

		p.slots[i] = slot
	}

	return p, nil
}

// MustPattern is like NewPattern but panics on error.
func MustPattern[T any](expr string, fields []Field[T], opts ...Option) *Pattern[T] {
	p, err := NewPattern(expr, fields, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

func groupSlot(g Group, names []string) (int, error) {
	if g.name == "" {
		if g.index < 0 || g.index >= len(names) {
			return 0, fmt.Errorf("%w: group %d of %d", ErrUnknownGroup, g.index, len(names)-1)
		}

		return g.index, nil
	}

	for i, n := range names {
		if n == g.name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q%s", ErrUnknownGroup, g.name, similar.Hint(g.name, names))
}

// Expr returns the expression as given, without anchoring.
func (p *Pattern[T]) Expr() string { return p.expr }

// Fields returns the names of the bound fields in declaration order.
func (p *Pattern[T]) Fields() []string {
	out := make([]string, len(p.fields))
	for i, f := range p.fields {
		out[i] = f.Name
	}

	return out
}

// Parse builds a T from the first match of the pattern in text. It returns
// false when there is no match.
func (p *Pattern[T]) Parse(text string) (T, bool, error) {
	var v T

	caps, err := p.match(text)
	if err != nil || caps == nil {
		return v, false, err
	}

	setters, err := p.resolve(caps, false)
	if err != nil {
		return v, false, err
	}

	for _, set := range setters {
		set(&v)
	}

	return v, true, nil
}

// Extract matches the pattern in isolation and returns the updates for the
// fields whose groups participated.
func (p *Pattern[T]) Extract(text string) (*Overlay[T], bool, error) {
	caps, err := p.match(text)
	if err != nil || caps == nil {
		return nil, false, err
	}

	setters, err := p.resolve(caps, true)
	if err != nil {
		return nil, false, err
	}

	o := &Overlay[T]{pattern: p.expr, logger: p.logger}
	for i, f := range p.fields {
		if setters[i] == nil {
			continue
		}

		o.fields = append(o.fields, f.Name)
		o.setters = append(o.setters, setters[i])
	}

	return o, true, nil
}

func (p *Pattern[T]) match(text string) (*engine.Captures, error) {
	return engine.Match(p.re, text)
}

// resolve converts every binding before anything is assigned, so a failing
// conversion leaves the target untouched. A required field whose group is
// absent fails even when its converter let it pass. With presentOnly, absent
// groups yield nil setters instead of being converted.
func (p *Pattern[T]) resolve(caps *engine.Captures, presentOnly bool) ([]func(*T), error) {
	setters := make([]func(*T), len(p.fields))

	for i, f := range p.fields {
		c := caps.Cap(p.slots[i])
		if presentOnly && !c.IsPresent() {
			continue
		}

		set, err := f.resolve(c)
		if err == nil && f.Required && !c.IsPresent() {
			err = &capture.ContractError{Err: capture.ErrMissingGroup}
		}

		if err != nil {
			return nil, capture.Attribute(err, p.expr, f.Name, f.Group.String())
		}

		setters[i] = set
	}

	return setters, nil
}
