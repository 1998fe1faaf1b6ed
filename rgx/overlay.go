package rgx

import "go.uber.org/zap"

// Overlay is a set of field updates produced by one isolated match.
type Overlay[T any] struct {
	pattern string
	fields  []string
	setters []func(*T)
	logger  *zap.Logger
}

// Fields returns the names of the fields Apply writes.
func (o *Overlay[T]) Fields() []string {
	return append([]string(nil), o.fields...)
}

// Apply writes the overlay's fields into dst and leaves all others alone.
// Applying the same overlay again has no further effect.
func (o *Overlay[T]) Apply(dst *T) {
	for _, set := range o.setters {
		set(dst)
	}

	o.logger.Debug("overlay applied",
		zap.String("pattern", o.pattern),
		zap.Strings("fields", o.fields))
}
