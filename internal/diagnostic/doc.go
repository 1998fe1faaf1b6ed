// Package diagnostic collects the problems found while validating a schema
// file, so that all of them can be reported at once instead of stopping on
// the first one.
package diagnostic
