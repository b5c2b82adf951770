package nfa

// NullTagNFA binds one edge tag as "the" epsilon at construction so the
// combination operators need not be handed the epsilon tag per call.
type NullTagNFA[S comparable, E comparable] struct {
	*NFA[S, E]
	epsilon E
}

// NewNullTagNFA builds an automaton with epsilon bound as the
// nothing-consumed edge tag.
func NewNullTagNFA[S comparable, E comparable](d Descriptor[S, E], epsilon E) *NullTagNFA[S, E] {
	return &NullTagNFA[S, E]{NFA: New(d), epsilon: epsilon}
}

// Epsilon returns the bound epsilon tag.
func (n *NullTagNFA[S, E]) Epsilon() E {
	return n.epsilon
}

func (n *NullTagNFA[S, E]) rewrap(base *NFA[S, E]) *NullTagNFA[S, E] {
	return &NullTagNFA[S, E]{NFA: base, epsilon: n.epsilon}
}

// Concatenate forwards to the base operator with the bound epsilon tag.
func (n *NullTagNFA[S, E]) Concatenate(other *NullTagNFA[S, E]) *NullTagNFA[S, E] {
	if other == nil {
		return n.rewrap(n.NFA.Clone())
	}
	return n.rewrap(n.NFA.Concatenate(other.NFA, n.epsilon))
}

// Disjunction forwards to the base operator with the bound epsilon tag.
func (n *NullTagNFA[S, E]) Disjunction(other *NullTagNFA[S, E], newStart S) *NullTagNFA[S, E] {
	if other == nil {
		return n.rewrap(n.NFA.Clone())
	}
	return n.rewrap(n.NFA.Disjunction(other.NFA, n.epsilon, newStart))
}

// KleeneStar forwards to the base operator with the bound epsilon tag.
func (n *NullTagNFA[S, E]) KleeneStar(newStart S) *NullTagNFA[S, E] {
	return n.rewrap(n.NFA.KleeneStar(n.epsilon, newStart))
}

// NullTagDispatcherNFA binds an epsilon tag and a tag dispatcher, making
// every combination operator fully implicit. This is the variant a
// regex-like builder composes with.
type NullTagDispatcherNFA[S comparable, E comparable] struct {
	*DispatcherNFA[S, E]
	epsilon E
}

// NewNullTagDispatcherNFA builds a dispatcher-backed automaton with a
// bound epsilon tag. Returns ErrNilDispatcher if dispatcher is nil.
func NewNullTagDispatcherNFA[S comparable, E comparable](d Descriptor[S, E], dispatcher TagDispatcher[S], epsilon E) (*NullTagDispatcherNFA[S, E], error) {
	base, err := NewDispatcherNFA(d, dispatcher)
	if err != nil {
		return nil, err
	}
	return &NullTagDispatcherNFA[S, E]{DispatcherNFA: base, epsilon: epsilon}, nil
}

// Epsilon returns the bound epsilon tag.
func (n *NullTagDispatcherNFA[S, E]) Epsilon() E {
	return n.epsilon
}

func (n *NullTagDispatcherNFA[S, E]) rewrap(base *DispatcherNFA[S, E]) *NullTagDispatcherNFA[S, E] {
	return &NullTagDispatcherNFA[S, E]{DispatcherNFA: base, epsilon: n.epsilon}
}

// Concatenate appends other's language to the receiver's.
func (n *NullTagDispatcherNFA[S, E]) Concatenate(other *NullTagDispatcherNFA[S, E]) *NullTagDispatcherNFA[S, E] {
	if other == nil {
		return n.rewrap(n.DispatcherNFA.Clone())
	}
	return n.rewrap(n.DispatcherNFA.Concatenate(other.NFA, n.epsilon))
}

// Disjunction unions other's language with the receiver's.
func (n *NullTagDispatcherNFA[S, E]) Disjunction(other *NullTagDispatcherNFA[S, E]) *NullTagDispatcherNFA[S, E] {
	if other == nil {
		return n.rewrap(n.DispatcherNFA.Clone())
	}
	return n.rewrap(n.DispatcherNFA.Disjunction(other.NFA, n.epsilon))
}

// KleeneStar closes the receiver's language under repetition.
func (n *NullTagDispatcherNFA[S, E]) KleeneStar() *NullTagDispatcherNFA[S, E] {
	return n.rewrap(n.DispatcherNFA.KleeneStar(n.epsilon))
}
