package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnickaBurova/regex-parsers/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}

	return out
}

func TestValidateValidFile(t *testing.T) {
	f, err := LoadFile("testdata/parsers.yaml")
	require.NoError(t, err)

	res := f.Validate()
	assert.False(t, res.HasErrors(), res.Err())
	assert.Empty(t, res.Warnings)
}

func TestValidateNil(t *testing.T) {
	var f *File

	res := f.Validate()
	assert.Equal(t, []string{"file_is_nil"}, codes(res.Errors))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errors  []string
		warning string
		hint    string
	}{
		{
			name: "unknown mode",
			yaml: `
parsers:
  - name: a
    mode: summ
    patterns:
      - regex: 'x'
`,
			errors: []string{"unknown_mode"},
			hint:   `did you mean "sum"?`,
		},
		{
			name: "unknown engine",
			yaml: `
parsers:
  - name: a
    engine: regexp3
    patterns:
      - regex: 'x'
`,
			errors: []string{"unknown_engine"},
			hint:   `did you mean "regexp2"?`,
		},
		{
			name: "bad regex",
			yaml: `
parsers:
  - name: a
    patterns:
      - regex: '(?P<x>'
`,
			errors: []string{"bad_regex"},
		},
		{
			name: "unknown group",
			yaml: `
parsers:
  - name: a
    patterns:
      - regex: '(?P<name>\w+)'
        fields:
          - name: nam
            kind: string
`,
			errors: []string{"unknown_group"},
			hint:   `did you mean "name"?`,
		},
		{
			name: "positional group out of range",
			yaml: `
parsers:
  - name: a
    patterns:
      - regex: '(\w+)'
        fields:
          - name: word
            group: 2
            kind: string
`,
			errors: []string{"unknown_group"},
		},
		{
			name: "unknown kind",
			yaml: `
parsers:
  - name: a
    patterns:
      - regex: '(?P<n>\d+)'
        fields:
          - name: n
            kind: uint88
`,
			errors: []string{"unknown_kind"},
			hint:   `did you mean "uint8"?`,
		},
		{
			name: "unknown parser",
			yaml: `
parsers:
  - name: animal
    patterns:
      - regex: '(?P<pet>\w+)'
        fields:
          - name: pet
            kind: parser
            parser: animl
`,
			errors: []string{"unknown_parser"},
			hint:   `did you mean "animal"?`,
		},
		{
			name: "nested chain and missing reference",
			yaml: `
parsers:
  - name: steps
    mode: chain
    patterns:
      - regex: '(?P<a>\w+)'
  - name: a
    patterns:
      - regex: '(?P<s>\w+) (?P<t>\w+)'
        fields:
          - name: s
            kind: parser
            parser: steps
          - name: t
            kind: parser
`,
			errors: []string{"nested_chain", "missing_parser_reference"},
		},
		{
			name: "structure",
			yaml: `
version: "2"
parsers:
  - name: a
    patterns:
      - regex: 'x'
      - regex: 'y'
  - name: a
    patterns:
      - regex: 'z'
  - name: b
    patterns: []
  - name: c
    patterns:
      - regex: '(?P<x>\w)'
        fields:
          - name: x
            kind: rune
          - name: x
            kind: rune
          - kind: rune
`,
			errors: []string{
				"unsupported_version", "duplicate_parser", "single_with_many_patterns",
				"no_patterns", "duplicate_field", "field_without_name",
			},
		},
		{
			name: "ignored settings",
			yaml: `
parsers:
  - name: a
    timeout: 1s
    patterns:
      - regex: '(?P<x>\w+)'
        fields:
          - name: x
            kind: string
            layout: '2006'
`,
			warning: "timeout_ignored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := f.Validate()
			assert.Equal(t, tt.errors, nilIfEmpty(codes(res.Errors)), res.Err())

			if tt.warning != "" {
				assert.Contains(t, codes(res.Warnings), tt.warning)
			}

			if tt.hint != "" {
				require.NotEmpty(t, res.Errors)
				assert.Contains(t, res.Errors[0].Message, tt.hint)
			}
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}
