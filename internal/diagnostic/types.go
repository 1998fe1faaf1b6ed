package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds every diagnostic of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single problem.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier, for example "unknown_group".
	Code    string
	Message string
	// Parser names the parser definition the problem belongs to, if any.
	Parser string
	// Location is a path inside the file, e.g. "parsers[0].patterns[1].fields[0]".
	Location string
}

type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, parser, location string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Parser:   parser,
		Location: location,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, parser, location string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Parser:   parser,
		Location: location,
	})
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	out = append(out, d.Errors...)
	return append(out, d.Warnings...)
}

// Err combines all error diagnostics into one error, or returns nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats a diagnostic as "parser location: [code] message".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Parser != "" {
		prefix = append(prefix, d.Parser)
	}

	if d.Location != "" {
		prefix = append(prefix, d.Location)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
