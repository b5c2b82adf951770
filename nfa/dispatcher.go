package nfa

// TagDispatcher hands out fresh state tags on demand. Implementations must
// never return a tag already used as a state tag in any automaton sharing
// the dispatcher: correctness of the combination operators depends on the
// synthesized states being collision-free.
type TagDispatcher[S comparable] interface {
	NextTag() S
}

// IntDispatcher dispatches monotonically increasing int tags. Seed it above
// every tag already in use.
type IntDispatcher struct {
	next int
}

// NewIntDispatcher returns a dispatcher whose first tag is start.
func NewIntDispatcher(start int) *IntDispatcher {
	return &IntDispatcher{next: start}
}

// NextTag returns the next unused tag.
func (d *IntDispatcher) NextTag() int {
	t := d.next
	d.next++
	return t
}

// DispatcherNFA is an NFA that synthesizes fresh, collision-free state tags
// through an injected dispatcher whenever a combination operator needs a
// new state the caller did not name.
type DispatcherNFA[S comparable, E comparable] struct {
	*NFA[S, E]
	dispatcher TagDispatcher[S]
}

// NewDispatcherNFA builds a dispatcher-backed automaton from a bulk
// descriptor. Returns ErrNilDispatcher if dispatcher is nil.
func NewDispatcherNFA[S comparable, E comparable](d Descriptor[S, E], dispatcher TagDispatcher[S]) (*DispatcherNFA[S, E], error) {
	if dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	return &DispatcherNFA[S, E]{
		NFA:        New(d),
		dispatcher: dispatcher,
	}, nil
}

// wrap pairs a combination result with the receiver's dispatcher.
func (n *DispatcherNFA[S, E]) wrap(base *NFA[S, E]) *DispatcherNFA[S, E] {
	return &DispatcherNFA[S, E]{NFA: base, dispatcher: n.dispatcher}
}

// Dispatcher returns the injected tag dispatcher.
func (n *DispatcherNFA[S, E]) Dispatcher() TagDispatcher[S] {
	return n.dispatcher
}

// Clone returns a shallow clone sharing the dispatcher.
func (n *DispatcherNFA[S, E]) Clone() *DispatcherNFA[S, E] {
	return n.wrap(n.NFA.Clone())
}

// Concatenate forwards to the base operator; concatenation synthesizes no
// states, so no tag is dispatched.
func (n *DispatcherNFA[S, E]) Concatenate(other *NFA[S, E], epsilon E) *DispatcherNFA[S, E] {
	return n.wrap(n.NFA.Concatenate(other, epsilon))
}

// Disjunction forwards to the base operator with a dispatcher-synthesized
// start tag.
func (n *DispatcherNFA[S, E]) Disjunction(other *NFA[S, E], epsilon E) *DispatcherNFA[S, E] {
	if other == nil {
		return n.Clone()
	}
	return n.wrap(n.NFA.Disjunction(other, epsilon, n.dispatcher.NextTag()))
}

// KleeneStar forwards to the base operator with a dispatcher-synthesized
// start tag.
func (n *DispatcherNFA[S, E]) KleeneStar(epsilon E) *DispatcherNFA[S, E] {
	return n.wrap(n.NFA.KleeneStar(epsilon, n.dispatcher.NextTag()))
}
