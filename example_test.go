package automata_test

import (
	"fmt"

	"github.com/coregx/automata"
)

func Example() {
	// (cat|dog)s*
	m := automata.MustCompile(automata.Concat(
		automata.Union(automata.Literal("cat"), automata.Literal("dog")),
		automata.Star(automata.Literal("s")),
	))

	for _, s := range []string{"cat", "dogs", "cats", "cow"} {
		fmt.Printf("%s: %v\n", s, m.Matches(s))
	}
	// Output:
	// cat: true
	// dogs: true
	// cats: true
	// cow: false
}

func ExampleUnion() {
	m := automata.MustCompile(automata.Union(
		automata.Literal("red"),
		automata.Literal("green"),
		automata.Literal("blue"),
	))

	fmt.Println(m.Matches("green"))
	fmt.Println(m.Matches("teal"))
	// Output:
	// true
	// false
}
