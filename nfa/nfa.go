package nfa

// Transition is one (from, label, to) triple of a bulk descriptor.
type Transition[S comparable, E comparable] struct {
	From  S
	Label E
	To    S
}

// Descriptor is the bulk construction input consumed by every automaton
// constructor: an optional list of pre-built states, the edge triples, the
// initial-state tag and a best-effort list of accepting-state tags.
type Descriptor[S comparable, E comparable] struct {
	// States are inserted verbatim, with whatever edges they carry.
	States []*State[S, E]

	// Transitions are registered in order via RegisterEdge; endpoint
	// states are created on demand.
	Transitions []Transition[S, E]

	// Initial names the single initial state, auto-created if absent.
	Initial S

	// Accepting tags are applied with RegisterAccepting semantics:
	// unknown tags are silently skipped.
	Accepting []S
}

// NFA is a nondeterministic finite automaton over state tags S and edge
// tags E. It owns a tag-keyed table of states, a tag-keyed table of
// accepting states (a subset of the former, by reference) and exactly one
// initial state fixed at construction.
//
// The automaton stays mutable for its whole life; there is no sealed
// phase. Edge destinations reached through registered states are expected
// to be registered in the same table for traversal operations to see them;
// the registration helpers maintain this, but hand-built Edge objects
// pointing at unregistered states are a caller error (traversal silently
// skips such destinations).
type NFA[S comparable, E comparable] struct {
	states    *Register[S, *State[S, E]]
	accepting *Register[S, *State[S, E]]
	initial   *State[S, E]
}

func newStateRegister[S comparable, E comparable]() *Register[S, *State[S, E]] {
	r, _ := NewRegister[S, *State[S, E]]((*State[S, E]).Tag)
	return r
}

// New builds an automaton from a bulk descriptor.
func New[S comparable, E comparable](d Descriptor[S, E]) *NFA[S, E] {
	n := &NFA[S, E]{
		states:    newStateRegister[S, E](),
		accepting: newStateRegister[S, E](),
	}
	for _, s := range d.States {
		n.RegisterStateObject(s)
	}
	for _, t := range d.Transitions {
		n.RegisterEdge(t.From, t.Label, t.To)
	}
	n.initial = n.RegisterState(d.Initial)
	for _, tag := range d.Accepting {
		n.RegisterAccepting(tag)
	}
	return n
}

// Initial returns the designated initial state.
func (n *NFA[S, E]) Initial() *State[S, E] {
	return n.initial
}

// RegisterState returns the state registered under tag, creating, storing
// and returning a fresh one if none exists. Idempotent; when several
// states share the tag the first registered wins.
func (n *NFA[S, E]) RegisterState(tag S) *State[S, E] {
	if s, ok := n.states.TryGet(tag); ok {
		return s
	}
	s := NewState[S, E](tag)
	n.states.Add(s)
	return s
}

// RegisterStateObject unconditionally inserts an already-constructed state,
// including whatever edges it carries. A nil state is a no-op.
func (n *NFA[S, E]) RegisterStateObject(s *State[S, E]) {
	if s == nil {
		return
	}
	n.states.Add(s)
}

// RegisterEdge resolves or creates both endpoint states, then returns an
// edge labeled label from the "from" state to the "to" state. If an edge
// with that label already leads from "from" to the resolved "to" state it
// is returned unchanged: registering the same triple twice never grows
// the graph.
func (n *NFA[S, E]) RegisterEdge(from S, label E, to S) *Edge[S, E] {
	src := n.RegisterState(from)
	dst := n.RegisterState(to)
	for _, e := range src.TaggedEdges(label) {
		if e.Contains(dst) {
			return e
		}
	}
	e := NewEdge(label, dst)
	src.AddEdge(e)
	return e
}

// RegisterAccepting marks the state registered under tag as accepting.
// Returns false, without error, when the tag is unknown to this automaton.
func (n *NFA[S, E]) RegisterAccepting(tag S) bool {
	s, ok := n.states.TryGet(tag)
	if !ok {
		return false
	}
	return n.RegisterAcceptingState(s)
}

// RegisterAcceptingState marks s accepting if it is a member of this
// automaton's state table (tag plus reference equality). Unknown or nil
// states are silently rejected. Marking twice is a no-op.
func (n *NFA[S, E]) RegisterAcceptingState(s *State[S, E]) bool {
	if s == nil || !n.states.Contains(s.Tag(), s) {
		return false
	}
	if n.accepting.Contains(s.Tag(), s) {
		return true
	}
	n.accepting.Add(s)
	return true
}

// IsAccepting reports whether any state registered under tag is accepting.
func (n *NFA[S, E]) IsAccepting(tag S) bool {
	return n.accepting.Has(tag)
}

// IsAcceptingState reports whether s itself is in the accepting table.
func (n *NFA[S, E]) IsAcceptingState(s *State[S, E]) bool {
	if s == nil {
		return false
	}
	return n.accepting.Contains(s.Tag(), s)
}

// EdgeTags returns the distinct tags of edges originating from the
// state(s) registered under stateTag, in first-seen order.
func (n *NFA[S, E]) EdgeTags(stateTag S) []E {
	var out []E
	seen := make(map[E]bool)
	for _, s := range n.states.Get(stateTag) {
		for _, tag := range s.EdgeTags() {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}

// States returns every registered state, grouped by first-seen tag order.
func (n *NFA[S, E]) States() []*State[S, E] {
	return n.states.Items()
}

// StateTags returns the distinct registered state tags in first-seen order.
func (n *NFA[S, E]) StateTags() []S {
	return n.states.Tags()
}

// AcceptingStates returns the accepting states in registration order.
func (n *NFA[S, E]) AcceptingStates() []*State[S, E] {
	return n.accepting.Items()
}

// AcceptingStateTags returns the distinct accepting tags in registration
// order.
func (n *NFA[S, E]) AcceptingStateTags() []S {
	return n.accepting.Tags()
}

// NumStates returns the number of entries in the state table.
func (n *NFA[S, E]) NumStates() int {
	return n.states.Len()
}

// NumEdges returns the total number of edge entries across all registered
// states. An edge object shared by two states counts once per state.
func (n *NFA[S, E]) NumEdges() int {
	total := 0
	for _, s := range n.states.Items() {
		total += s.NumEdges()
	}
	return total
}

// Clone returns an automaton with fresh state and accepting tables holding
// the same State and Edge objects. Registering states in the clone does
// not affect the original, but mutating a shared state's edges is visible
// in both; this sharing is the deliberate memory-saving design of the
// graph model, not an accident.
func (n *NFA[S, E]) Clone() *NFA[S, E] {
	c := &NFA[S, E]{
		states:    newStateRegister[S, E](),
		accepting: newStateRegister[S, E](),
		initial:   n.initial,
	}
	for _, s := range n.states.Items() {
		c.states.Add(s)
	}
	for _, s := range n.accepting.Items() {
		c.accepting.Add(s)
	}
	return c
}

// absorb merges o's state table into n, skipping entries already present.
func (n *NFA[S, E]) absorb(o *NFA[S, E]) {
	for _, s := range o.states.Items() {
		if !n.states.Contains(s.Tag(), s) {
			n.states.Add(s)
		}
	}
}
