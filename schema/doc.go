// Package schema loads parser definitions from YAML files and compiles them
// into rgx parsers over dynamic Record values.
//
// A file lists named parsers. A parser is a single pattern, a sum of
// variant patterns tried in order, or a chain of patterns fed one text at a
// time. Each pattern binds groups to record fields of a declared kind; the
// "parser" kind parses the group text with another parser of the same file,
// which may be the parser itself.
//
// Files are checked with Validate before use; Compile validates again and
// refuses files with errors.
package schema
