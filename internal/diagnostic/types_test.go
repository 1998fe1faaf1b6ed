package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddWarning("unused_group", `group "x" is not bound`, "animal", "patterns[0]")
	assert.False(t, d.HasErrors())

	d.AddError("unknown_kind", `unknown kind "strin"`, "animal", "patterns[0].fields[1]")
	require.True(t, d.HasErrors())

	other := &Diagnostics{}
	other.AddError("duplicate_parser", `duplicate parser "animal"`, "", "parsers[2]")
	d.Merge(other)
	d.Merge(nil)

	require.Len(t, d.Errors, 2)
	require.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, "warning", d.All()[2].Severity.String())

	assert.EqualError(t, d.Err(),
		`animal patterns[0].fields[1]: [unknown_kind] unknown kind "strin"; parsers[2]: [duplicate_parser] duplicate parser "animal"`)
}

func TestDiagnosticString(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] m", Diagnostic{Code: "c", Message: "m"}.String())
	assert.Equal(t, "unknown", Severity(0).String())
}
