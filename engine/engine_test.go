package engine_test

import (
	"testing"
	"time"

	"github.com/dlclark/regexp2"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnickaBurova/regex-parsers/engine"
)

var engines = []engine.Engine{engine.RE2{}, engine.Backtrack{}}

func TestGroups(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			re, err := e.Compile(`^(?<name>[A-Z][a-z]+)(?:\s+(?<age>\d+))?(x*)$`)
			require.NoError(t, err)

			caps, err := engine.Match(re, "Fero 31")
			require.NoError(t, err)
			require.NotNil(t, caps)

			assert.Equal(t, "Fero 31", caps.Cap(0).Text())
			assert.Equal(t, "Fero", caps.Named("name").Text())
			assert.Equal(t, "31", caps.Named("age").Text())

			// unnamed, participating, empty
			idx := -1
			for i, n := range re.SubexpNames() {
				if i > 0 && n == "" {
					idx = i
				}
			}
			require.Positive(t, idx)
			assert.True(t, caps.Cap(idx).IsPresent())
			assert.Equal(t, "", caps.Cap(idx).Text())

			caps, err = engine.Match(re, "Anca")
			require.NoError(t, err)
			require.NotNil(t, caps)
			assert.False(t, caps.Named("age").IsPresent())

			assert.False(t, caps.Named("missing").IsPresent())
			assert.False(t, caps.Cap(42).IsPresent())

			caps, err = engine.Match(re, "nope")
			require.NoError(t, err)
			assert.Nil(t, caps)
		})
	}
}

func TestNonASCIIOffsets(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			re, err := e.Compile(`(?<who>\S+) má (?<n>\d+)`)
			require.NoError(t, err)

			text := "Žofia má 3 žaby"
			caps, err := engine.Match(re, text)
			require.NoError(t, err)
			require.NotNil(t, caps)

			who, ok := caps.Named("who").Match()
			require.True(t, ok)
			assert.Equal(t, "Žofia", who.Text())
			assert.Equal(t, 0, who.Start())

			n, ok := caps.Named("n").Match()
			require.True(t, ok)
			assert.Equal(t, "3", n.Text())
			assert.Equal(t, len("Žofia má "), n.Start())
		})
	}
}

func TestBacktrackFeatures(t *testing.T) {
	t.Parallel()

	re, err := engine.Backtrack{}.Compile(`(?<word>\w+)\s+\k<word>`)
	require.NoError(t, err)

	caps, err := engine.Match(re, "say hello hello")
	require.NoError(t, err)
	require.NotNil(t, caps)
	assert.Equal(t, "hello", caps.Named("word").Text())

	_, err = engine.RE2{}.Compile(`(?<word>\w+)\s+\k<word>`)
	assert.Error(t, err)

	re, err = engine.Backtrack{Options: regexp2.IgnoreCase, Timeout: time.Second}.Compile(`^wolf$`)
	require.NoError(t, err)
	caps, err = engine.Match(re, "WOLF")
	require.NoError(t, err)
	assert.NotNil(t, caps)
}

func TestAnchor(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		re, err := e.Compile(engine.Anchor(`\d+`))
		require.NoError(t, err, e.Name())

		caps, err := engine.Match(re, "a12")
		require.NoError(t, err)
		assert.Nil(t, caps, e.Name())

		caps, err = engine.Match(re, "12")
		require.NoError(t, err)
		assert.NotNil(t, caps, e.Name())
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range engine.Names() {
		e, err := engine.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())
	}

	e, err := engine.ByName("")
	require.NoError(t, err)
	assert.Equal(t, engine.Default, e)

	_, err = engine.ByName("pcre")
	assert.ErrorIs(t, err, engine.ErrUnknownEngine)
}

func TestGroupLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"name"`, engine.GroupLabel(1, "name"))
	assert.Equal(t, "2", engine.GroupLabel(2, ""))
}

func TestFuzzEnginesAgree(t *testing.T) {
	ranges := fuzz.UnicodeRanges{
		{First: 0x20, Last: 0x7E},     // ASCII
		{First: 0x0100, Last: 0x017F}, // Latin Extended-A
	}

	f := fuzz.New().NilChance(0).Funcs(ranges.CustomStringFuzzFunc())

	const expr = `([a-z]+) *([0-9]+)?`

	re2, err := engine.RE2{}.Compile(expr)
	require.NoError(t, err)

	backtrack, err := engine.Backtrack{}.Compile(expr)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		var s string
		f.Fuzz(&s)

		want, err := re2.FindIndex(s)
		require.NoError(t, err)

		got, err := backtrack.FindIndex(s)
		require.NoError(t, err)

		assert.Equal(t, want, got, "%q", s)
	}
}
