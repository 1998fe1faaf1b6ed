package rgx_test

import (
	"fmt"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/rgx"
)

func ExampleSum() {
	type Shape interface{}
	type Circle struct{ R float64 }
	type Rect struct{ W, H int }

	shapes := rgx.NewSum[Shape]().Add(
		rgx.Case("Circle", rgx.MustPattern(`^circle (\d+(?:\.\d+)?)$`, []rgx.Field[Circle]{
			rgx.Bind("r", rgx.Pos(1), capture.Float[float64](), func(c *Circle, v float64) { c.R = v }),
		}), func(c Circle) Shape { return c }),
		rgx.Case("Rect", rgx.MustPattern(`^rect (?P<w>\d+)x(?P<h>\d+)$`, []rgx.Field[Rect]{
			rgx.Bind("w", rgx.Named("w"), capture.Int[int](), func(r *Rect, v int) { r.W = v }),
			rgx.Bind("h", rgx.Named("h"), capture.Int[int](), func(r *Rect, v int) { r.H = v }),
		}), func(r Rect) Shape { return r }),
	)

	for _, line := range []string{"circle 1.5", "rect 3x4", "triangle"} {
		shape, ok, err := shapes.Parse(line)
		fmt.Printf("%+v %v %v\n", shape, ok, err)
	}
	// Output:
	// {R:1.5} true <nil>
	// {W:3 H:4} true <nil>
	// <nil> false <nil>
}

func ExampleChain() {
	type Login struct {
		User string
		Port uint16
	}

	chain := rgx.MustChain([]*rgx.Pattern[Login]{
		rgx.MustPattern(`^user (\w+)$`, []rgx.Field[Login]{
			rgx.Bind("user", rgx.Pos(1), capture.String, func(l *Login, v string) { l.User = v }),
		}),
		rgx.MustPattern(`^port (\d+)$`, []rgx.Field[Login]{
			rgx.Bind("port", rgx.Pos(1), capture.Uint[uint16](), func(l *Login, v uint16) { l.Port = v }),
		}),
	})

	state := chain.Start()
	for _, line := range []string{"user root", "hello", "port 22"} {
		matched, next, _ := state.Advance(line)

		switch step := next.(type) {
		case rgx.Partial[Login]:
			fmt.Println(line, matched, "next step", step.State.Index())
			state = step.State
		case rgx.Complete[Login]:
			fmt.Printf("%s %v done %+v\n", line, matched, step.Value)
		}
	}
	// Output:
	// user root true next step 1
	// hello false next step 1
	// port 22 true done {User:root Port:22}
}
