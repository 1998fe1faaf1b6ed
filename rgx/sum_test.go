package rgx_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/rgx"
)

type Special interface{ special() }

type One struct {
	Name string
	Age  uint16
}

type Two struct {
	Name *string
	Age  *uint8
}

type Three struct {
	Name *string
	Age  *uint32
}

func (One) special()   {}
func (Two) special()   {}
func (Three) special() {}

func specials(opts ...rgx.Option) *rgx.Sum[Special] {
	return rgx.NewSum[Special](opts...).Add(
		rgx.Case("One", rgx.MustPattern(`One\(\s*(\w+),\s+(\d+)\)`, []rgx.Field[One]{
			rgx.Bind("name", rgx.Pos(1), capture.String, func(o *One, v string) { o.Name = v }),
			rgx.Bind("age", rgx.Pos(2), capture.Uint[uint16](), func(o *One, v uint16) { o.Age = v }),
		}), func(o One) Special { return o }),
		rgx.Case("Two", rgx.MustPattern(`Two\((\w+)?,\s+(\d+)?\)`, []rgx.Field[Two]{
			rgx.Bind("name", rgx.Pos(1), capture.Optional(capture.String), func(o *Two, v *string) { o.Name = v }),
			rgx.Bind("age", rgx.Pos(2), capture.Optional(capture.Uint[uint8]()), func(o *Two, v *uint8) { o.Age = v }),
		}), func(o Two) Special { return o }),
		rgx.Case("Three", rgx.MustPattern(`Three\((?P<name>\w+)?,\s+(?P<age>\d+)?\)`, []rgx.Field[Three]{
			rgx.Bind("name", rgx.Named("name"), capture.Optional(capture.String), func(o *Three, v *string) { o.Name = v }),
			rgx.Bind("age", rgx.Named("age"), capture.Optional(capture.Uint[uint32]()), func(o *Three, v *uint32) { o.Age = v }),
		}), func(o Three) Special { return o }),
	)
}

func ptr[T any](v T) *T { return &v }

func TestSumVariants(t *testing.T) {
	t.Parallel()

	s := specials()
	assert.Equal(t, []string{"One", "Two", "Three"}, s.Variants())

	tests := []struct {
		input string
		want  Special
	}{
		{"One(Jozo, 14)", One{Name: "Jozo", Age: 14}},
		{"Two(Jozo, )", Two{Name: ptr("Jozo")}},
		{"Two(, )", Two{}},
		{"Three(, 30)", Three{Age: ptr(uint32(30))}},
		{"Three(Fero, 30)", Three{Name: ptr("Fero"), Age: ptr(uint32(30))}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok, err := s.Parse(tt.input)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	got, ok, err := s.Parse("Four(Jozo, 14)")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSumFirstMatchWins(t *testing.T) {
	t.Parallel()

	word := rgx.MustPattern(`(\w+)`, []rgx.Field[string]{
		rgx.Bind("word", rgx.Pos(1), capture.String, func(s *string, v string) { *s = "word:" + v }),
	})
	digits := rgx.MustPattern(`(\d+)`, []rgx.Field[string]{
		rgx.Bind("digits", rgx.Pos(1), capture.String, func(s *string, v string) { *s = "digits:" + v }),
	})

	for _, opts := range [][]rgx.Option{nil, {rgx.WithParallel(2)}} {
		got, ok, err := rgx.NewSum[string](opts...).Add(rgx.Self("word", word), rgx.Self("digits", digits)).Parse("42")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "word:42", got)

		got, ok, err = rgx.NewSum[string](opts...).Add(rgx.Self("digits", digits), rgx.Self("word", word)).Parse("42")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "digits:42", got)

		got, ok, err = rgx.NewSum[string](opts...).Add(rgx.Self("digits", digits), rgx.Self("word", word)).Parse("abc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "word:abc", got)
	}
}

func TestSumCommitsToMatchedVariant(t *testing.T) {
	t.Parallel()

	small := rgx.MustPattern(`(\d+)`, []rgx.Field[uint8]{
		rgx.Bind("n", rgx.Pos(1), capture.Uint[uint8](), func(n *uint8, v uint8) { *n = v }),
	})
	any8 := rgx.MustPattern(`(.+)`, []rgx.Field[uint8]{
		rgx.Bind("n", rgx.Pos(0), capture.Bool, func(n *uint8, v bool) { *n = 255 }),
	})

	s := rgx.NewSum[uint8]().Add(rgx.Self("small", small), rgx.Self("any", any8))

	_, ok, err := s.Parse("300")
	require.ErrorIs(t, err, capture.ErrMalformed)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), `variant "small"`)

	_, _, err = rgx.NewSum[uint8]().Parse("1")
	assert.ErrorIs(t, err, rgx.ErrEmpty)
}

type Animal interface{ animal() }

type Wolf struct {
	Name  string
	Enemy Animal
}

type Sheep struct {
	Name   string
	Colour uint8
	Enemy  Animal
}

type Human struct {
	Name  string
	Likes Animal
}

func (*Wolf) animal()  {}
func (*Sheep) animal() {}
func (*Human) animal() {}

func animals(opts ...rgx.Option) *rgx.Sum[Animal] {
	s := rgx.NewSum[Animal](opts...)
	nested := rgx.NestedOptional[Animal](s)

	return s.Add(
		rgx.Case("Wolf", rgx.MustPattern(`^Wolf\s+(?P<name>[A-Z][a-z]+)(\s+(?P<enemy>.+))?`, []rgx.Field[Wolf]{
			rgx.Bind("name", rgx.Named("name"), capture.String, func(w *Wolf, v string) { w.Name = v }),
			rgx.Bind("enemy", rgx.Named("enemy"), nested, func(w *Wolf, v Animal) { w.Enemy = v }),
		}), func(w Wolf) Animal { return &w }),
		rgx.Case("Sheep", rgx.MustPattern(`^Sheep\s+(?P<name>[A-Z][a-z]+)\s+(?P<colour>\d+)(\s+(?P<enemy>.+))?`, []rgx.Field[Sheep]{
			rgx.Bind("name", rgx.Named("name"), capture.String, func(s *Sheep, v string) { s.Name = v }),
			rgx.Bind("colour", rgx.Named("colour"), capture.Uint[uint8](), func(s *Sheep, v uint8) { s.Colour = v }),
			rgx.Bind("enemy", rgx.Named("enemy"), nested, func(s *Sheep, v Animal) { s.Enemy = v }),
		}), func(s Sheep) Animal { return &s }),
		rgx.Case("Human", rgx.MustPattern(`^(?P<name>[A-Z][a-z]+)(\s+(?P<likes>.+))?`, []rgx.Field[Human]{
			rgx.Bind("name", rgx.Named("name"), capture.String, func(h *Human, v string) { h.Name = v }),
			rgx.Bind("likes", rgx.Named("likes"), nested, func(h *Human, v Animal) { h.Likes = v }),
		}), func(h Human) Animal { return &h }),
	)
}

func TestSumRecursive(t *testing.T) {
	t.Parallel()

	want := &Human{
		Name: "Fero",
		Likes: &Sheep{
			Name:   "Mara",
			Colour: 3,
			Enemy: &Wolf{
				Name:  "Martin",
				Enemy: &Human{Name: "Anca"},
			},
		},
	}

	got, ok, err := animals().Parse("Fero Sheep Mara 3 Wolf Martin Anca")
	require.NoError(t, err)
	require.True(t, ok)

	if diff := cmp.Diff(Animal(want), got); diff != "" {
		t.Errorf("unexpected animals (-want +got):\n%s\n%s", diff, spew.Sdump(got))
	}
}

func TestSumNestedMiss(t *testing.T) {
	t.Parallel()

	// the nested text matches no variant, so the optional reference is empty
	got, ok, err := animals().Parse("Sheep Mara 3 nobody")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, &Sheep{Name: "Mara", Colour: 3}, got)

	strict := rgx.NewSum[Animal]()
	strict.Add(rgx.Case("Wolf", rgx.MustPattern(`^Wolf (?P<name>[A-Z][a-z]+) (?P<enemy>.+)$`, []rgx.Field[Wolf]{
		rgx.Bind("name", rgx.Named("name"), capture.String, func(w *Wolf, v string) { w.Name = v }),
		rgx.Bind("enemy", rgx.Named("enemy"), rgx.Nested[Animal](animals()), func(w *Wolf, v Animal) { w.Enemy = v }),
	}), func(w Wolf) Animal { return &w }))

	got, ok, err = strict.Parse("Wolf Martin Anca")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, &Wolf{Name: "Martin", Enemy: &Human{Name: "Anca"}}, got)

	_, ok, err = strict.Parse("Wolf Martin nobody")
	require.ErrorIs(t, err, capture.ErrNoNestedMatch)
	assert.False(t, ok)

	var ce *capture.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "enemy", ce.Field)
	assert.Equal(t, "nobody", ce.Text)

	// failures inside the nested sum keep the inner variant and field
	_, ok, err = strict.Parse("Wolf Martin Sheep Mara 300")
	require.ErrorIs(t, err, capture.ErrMalformed)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), `variant "Wolf": variant "Sheep": `)

	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "colour", ce.Field)
	assert.Equal(t, "300", ce.Text)
}

func TestSumParallelAgrees(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Fero Sheep Mara 3 Wolf Martin Anca",
		"Wolf Martin",
		"Sheep Mara 300",
		"nobody",
		"Anca",
	}

	sequential := animals()
	parallel := animals(rgx.WithParallel(3))

	for _, input := range inputs {
		want, wantOK, wantErr := sequential.Parse(input)
		got, gotOK, gotErr := parallel.Parse(input)

		assert.Equal(t, wantOK, gotOK, input)
		assert.Equal(t, wantErr == nil, gotErr == nil, input)
		assert.Empty(t, cmp.Diff(want, got), input)
	}
}
