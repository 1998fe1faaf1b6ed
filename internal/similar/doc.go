// Package similar ranks identifiers by edit distance after normalisation.
// It backs the "did you mean" hints attached to unknown group names and
// unknown parser references.
package similar
