package parse_test

import (
	"errors"
	"fmt"

	"github.com/yaklabco/parsekit/pkg/parse"
)

func ExampleStar() {
	res := parse.Star(parse.Digit)("123abc")
	fmt.Println(res.OK, res.Value, res.Rest)
	// Output: true [1 2 3] abc
}

func ExampleInt() {
	res := parse.Int("-50 dollars")
	fmt.Printf("%v %v %q\n", res.OK, res.Value, res.Rest)

	res = parse.Int("what?")
	fmt.Printf("%v %v %q\n", res.OK, res.HasValue, res.Rest)
	// Output:
	// true -50 " dollars"
	// false false "what?"
}

func ExampleFinalize() {
	strict := parse.Finalize(parse.Int)
	_, err := strict("3_junk")
	fmt.Println(errors.Is(err, parse.ErrUnparsedInput))

	lenient := parse.Finalize(parse.Int, parse.AllowRemaining())
	n, err := lenient("3_junk")
	fmt.Println(n, err)
	// Output:
	// true
	// 3 <nil>
}

func ExampleIgnoreWhitespace() {
	res := parse.IgnoreWhitespace(parse.Literal("test"), parse.Around)("  test  x")
	fmt.Printf("%q %q\n", res.Value, res.Rest)
	// Output: "test" "x"
}
