package nfa

// Visitor receives a read-only traversal of an automaton's graph, the hook
// a graph-emission collaborator consumes. States are announced first, each
// with a stable sequential identifier assigned in first-seen state-table
// order, its tag and its accepting status; edges follow, with the origin's
// identifier, the edge tag and the identifiers of every resolved
// destination.
type Visitor[S comparable, E comparable] interface {
	State(id int, tag S, accepting bool)
	Edge(fromID int, tag E, to []int)
}

// Walk traverses the automaton's state table and feeds v. Destinations
// that were never registered in the state table are silently omitted, and
// an edge whose destinations all dangle is not announced at all.
func (n *NFA[S, E]) Walk(v Visitor[S, E]) {
	ids := make(map[*State[S, E]]int)
	var order []*State[S, E]
	for _, s := range n.states.Items() {
		if _, seen := ids[s]; seen {
			continue
		}
		ids[s] = len(order)
		order = append(order, s)
	}

	for _, s := range order {
		v.State(ids[s], s.Tag(), n.IsAcceptingState(s))
	}
	for _, s := range order {
		for _, tag := range s.EdgeTags() {
			for _, e := range s.TaggedEdges(tag) {
				var to []int
				for _, dst := range e.States() {
					if id, ok := ids[dst]; ok {
						to = append(to, id)
					}
				}
				if len(to) > 0 {
					v.Edge(ids[s], tag, to)
				}
			}
		}
	}
}
