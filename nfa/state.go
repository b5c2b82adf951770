package nfa

// State is a tagged vertex owning a tag-indexed multimap of outgoing edges.
// The tag is the state's identity key inside a Register, not a globally
// unique handle: several State objects may carry the same tag and are then
// enumerated together. States are created once per distinct tag when first
// referenced and are shared by reference across automata.
type State[S comparable, E comparable] struct {
	tag      S
	tagOrder []E
	edges    map[E][]*Edge[S, E]
}

// NewState returns a state with no outgoing edges.
func NewState[S comparable, E comparable](tag S) *State[S, E] {
	return &State[S, E]{
		tag:   tag,
		edges: make(map[E][]*Edge[S, E]),
	}
}

// Tag returns the state's immutable tag.
func (s *State[S, E]) Tag() S {
	return s.tag
}

// AddEdge registers edge under its own tag. A nil edge is ignored. Edges
// are appended, never deduplicated by identity: two distinct edges sharing
// a tag is the nondeterministic case, and adding the same edge object twice
// genuinely duplicates the entry.
func (s *State[S, E]) AddEdge(edge *Edge[S, E]) {
	if edge == nil {
		return
	}
	tag := edge.Tag()
	if _, ok := s.edges[tag]; !ok {
		s.tagOrder = append(s.tagOrder, tag)
	}
	s.edges[tag] = append(s.edges[tag], edge)
}

// TaggedEdges returns the edges registered under exactly tag, in insertion
// order; empty if none. The slice aliases internal storage.
func (s *State[S, E]) TaggedEdges(tag E) []*Edge[S, E] {
	return s.edges[tag]
}

// EdgeTags returns the distinct outgoing edge tags in first-seen order.
func (s *State[S, E]) EdgeTags() []E {
	out := make([]E, len(s.tagOrder))
	copy(out, s.tagOrder)
	return out
}

// Edges returns every outgoing edge, grouped by tag order.
func (s *State[S, E]) Edges() []*Edge[S, E] {
	var out []*Edge[S, E]
	for _, tag := range s.tagOrder {
		out = append(out, s.edges[tag]...)
	}
	return out
}

// NumEdges returns the number of registered outgoing edge entries.
func (s *State[S, E]) NumEdges() int {
	n := 0
	for _, bucket := range s.edges {
		n += len(bucket)
	}
	return n
}

// Edge is a tagged transition with a set of destination states. A single
// edge may fan out to several destinations, which is what makes the
// automaton nondeterministic even for one tag. Edge objects are
// intentionally shareable: the same edge may be referenced by several
// origin states and several automata, trading aliasing risk for memory.
type Edge[S comparable, E comparable] struct {
	tag E
	to  []*State[S, E]
}

// NewEdge returns an edge labeled tag leading to the given states.
// Duplicate destinations are merged.
func NewEdge[S comparable, E comparable](tag E, to ...*State[S, E]) *Edge[S, E] {
	e := &Edge[S, E]{tag: tag}
	for _, s := range to {
		e.Add(s)
	}
	return e
}

// Tag returns the edge's immutable tag.
func (e *Edge[S, E]) Tag() E {
	return e.tag
}

// Add inserts a destination and reports whether the set changed. Adding an
// already-present state or nil is a no-op.
func (e *Edge[S, E]) Add(s *State[S, E]) bool {
	if s == nil || e.Contains(s) {
		return false
	}
	e.to = append(e.to, s)
	return true
}

// Contains reports whether s is among the destinations.
func (e *Edge[S, E]) Contains(s *State[S, E]) bool {
	for _, d := range e.to {
		if d == s {
			return true
		}
	}
	return false
}

// Remove deletes a destination and reports whether the set changed.
func (e *Edge[S, E]) Remove(s *State[S, E]) bool {
	for i, d := range e.to {
		if d == s {
			e.to = append(e.to[:i], e.to[i+1:]...)
			return true
		}
	}
	return false
}

// States returns the destinations in insertion order. The slice aliases
// internal storage and is valid until the next mutation.
func (e *Edge[S, E]) States() []*State[S, E] {
	return e.to
}

// Len returns the number of destinations.
func (e *Edge[S, E]) Len() int {
	return len(e.to)
}
