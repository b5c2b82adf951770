package nfa

// Combination operators. All three splice fresh epsilon transitions into
// graphs shared with their operands: the results alias the operands' State
// and Edge objects, and the epsilon edges added to accepting states are
// visible through every automaton sharing those states.

// addEpsilon links from to dst with an edge tagged epsilon, reusing an
// existing epsilon edge that already reaches dst.
func addEpsilon[S comparable, E comparable](from, dst *State[S, E], epsilon E) {
	for _, e := range from.TaggedEdges(epsilon) {
		if e.Contains(dst) {
			return
		}
	}
	from.AddEdge(NewEdge(epsilon, dst))
}

// Concatenate returns an automaton accepting exactly the sequences that
// split into a prefix accepted by n followed by a suffix accepted by
// other. Every accepting state of n grows an epsilon edge to other's
// initial state; the result's accepting states are other's, its initial
// state is n's. A nil other yields a plain shallow clone of n.
func (n *NFA[S, E]) Concatenate(other *NFA[S, E], epsilon E) *NFA[S, E] {
	res := n.Clone()
	if other == nil {
		return res
	}

	bridgeFrom := res.accepting.Items()
	res.accepting = newStateRegister[S, E]()
	res.absorb(other)

	for _, s := range bridgeFrom {
		addEpsilon(s, other.initial, epsilon)
	}
	for _, s := range other.accepting.Items() {
		res.RegisterAcceptingState(s)
	}
	return res
}

// Disjunction returns an automaton accepting the sequences accepted by n
// or by other. A fresh state tagged newStart becomes the initial state,
// epsilon-linked to both operands' initial states; the result's accepting
// states are the union of both operands'. A nil other yields a plain
// shallow clone of n. newStart must not collide with a tag already used
// for a state; dispatcher-backed automata can synthesize it.
func (n *NFA[S, E]) Disjunction(other *NFA[S, E], epsilon E, newStart S) *NFA[S, E] {
	if other == nil {
		return n.Clone()
	}

	res := &NFA[S, E]{
		states:    newStateRegister[S, E](),
		accepting: newStateRegister[S, E](),
	}
	start := NewState[S, E](newStart)
	res.states.Add(start)
	res.initial = start
	res.absorb(n)
	res.absorb(other)

	addEpsilon(start, n.initial, epsilon)
	addEpsilon(start, other.initial, epsilon)

	for _, s := range n.accepting.Items() {
		res.RegisterAcceptingState(s)
	}
	for _, s := range other.accepting.Items() {
		res.RegisterAcceptingState(s)
	}
	return res
}

// KleeneStar returns an automaton accepting zero or more concatenations
// of sequences accepted by n. A fresh state tagged newStart is both
// initial and accepting; it is epsilon-linked to n's initial state, and
// every accepting state of n is epsilon-linked back to it, enabling
// repetition. The fresh state alone being accepting covers the empty
// sequence.
func (n *NFA[S, E]) KleeneStar(epsilon E, newStart S) *NFA[S, E] {
	res := &NFA[S, E]{
		states:    newStateRegister[S, E](),
		accepting: newStateRegister[S, E](),
	}
	start := NewState[S, E](newStart)
	res.states.Add(start)
	res.initial = start
	res.absorb(n)

	addEpsilon(start, n.initial, epsilon)
	for _, s := range n.accepting.Items() {
		addEpsilon(s, start, epsilon)
	}
	res.RegisterAcceptingState(start)
	return res
}
