// Package rgx builds typed values from text matched by regular expressions.
//
// A Pattern binds the groups of one expression to fields of T through
// converters from the capture package. On top of patterns the package
// offers three ways to parse:
//
//   - Pattern.Parse builds a T from one match of one expression.
//   - Sum tries an ordered list of variant patterns and commits to the first
//     that matches. Variants may refer back to the Sum through Nested, which
//     is how recursive types are parsed.
//   - Chain builds one T from several inputs, one pattern per input, in a
//     fixed order. Each step returns either the next State or the Complete
//     value.
//
// Finally, Extract matches a single pattern in isolation and returns an
// Overlay holding only the fields whose groups participated, which can be
// applied to an existing value.
//
// Not matching is never an error: parsers return false. Errors are either
// configuration problems found at construction, engine failures, or
// *capture.ContractError values when a binding disagrees with the text its
// expression matched.
package rgx
