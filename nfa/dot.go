package nfa

import (
	"fmt"
	"strings"
)

// dotVisitor renders the Walk traversal as a Graphviz digraph. Accepting
// states take the customary double circle.
type dotVisitor[S comparable, E comparable] struct {
	b strings.Builder
}

func (d *dotVisitor[S, E]) State(id int, tag S, accepting bool) {
	shape := "circle"
	if accepting {
		shape = "doublecircle"
	}
	fmt.Fprintf(&d.b, "\ts%d [label=%q shape=%s];\n", id, fmt.Sprint(tag), shape)
}

func (d *dotVisitor[S, E]) Edge(fromID int, tag E, to []int) {
	for _, dst := range to {
		fmt.Fprintf(&d.b, "\ts%d -> s%d [label=%q];\n", fromID, dst, fmt.Sprint(tag))
	}
}

// DOT emits the automaton in Graphviz dot form, built purely on the Walk
// traversal hook.
func DOT[S comparable, E comparable](n *NFA[S, E]) string {
	d := &dotVisitor[S, E]{}
	d.b.WriteString("digraph nfa {\n\trankdir=LR;\n")
	n.Walk(d)
	d.b.WriteString("}\n")
	return d.b.String()
}
