// Package match runs automata built by package nfa against input
// sequences.
//
// A Runner freezes an automaton's state table into a dense index and
// simulates the subset construction on the fly: the current frontier is an
// epsilon-closed set of state indices, advanced one input token at a time.
// No determinized machine is materialized, so construction is linear in the
// graph and matching is bounded by states times input length.
package match

import (
	"errors"

	"github.com/coregx/automata/bitvec"
	"github.com/coregx/automata/internal/sparse"
	"github.com/coregx/automata/nfa"
)

// ErrNilAutomaton is returned by NewRunner when no automaton is supplied.
var ErrNilAutomaton = errors.New("match: nil automaton")

// Runner simulates a nondeterministic automaton. It captures the automaton's
// graph at construction time; combination operators applied to the automaton
// afterwards are not reflected. A Runner is not safe for concurrent use.
type Runner[S comparable, E comparable] struct {
	epsilon E
	states  []*nfa.State[S, E]
	index   map[*nfa.State[S, E]]int
	initial int

	accepting *bitvec.Vector
	frontier  *sparse.Pair
	scratch   *bitvec.Vector
}

// NewRunner indexes the automaton's states in first-seen table order and
// prepares the simulation buffers. The epsilon tag names the edges the
// closure follows without consuming input.
func NewRunner[S comparable, E comparable](n *nfa.NFA[S, E], epsilon E) (*Runner[S, E], error) {
	if n == nil {
		return nil, ErrNilAutomaton
	}

	r := &Runner[S, E]{
		epsilon: epsilon,
		index:   make(map[*nfa.State[S, E]]int),
	}
	for _, s := range n.States() {
		if _, seen := r.index[s]; seen {
			continue
		}
		r.index[s] = len(r.states)
		r.states = append(r.states, s)
	}
	r.initial = r.index[n.Initial()]

	r.accepting = bitvec.New(len(r.states))
	for _, s := range n.AcceptingStates() {
		if i, ok := r.index[s]; ok {
			r.accepting.Set(i, true)
		}
	}
	r.frontier = sparse.NewPair(len(r.states))
	r.scratch = bitvec.New(len(r.states))
	return r, nil
}

// NumStates returns the number of indexed states.
func (r *Runner[S, E]) NumStates() int {
	return len(r.states)
}

// Initial returns the index of the automaton's initial state.
func (r *Runner[S, E]) Initial() int {
	return r.initial
}

// Index resolves a state tag to its index, following the table's
// first-match policy for co-resident tags.
func (r *Runner[S, E]) Index(tag S) (int, bool) {
	for i, s := range r.states {
		if s.Tag() == tag {
			return i, true
		}
	}
	return 0, false
}

// IsAccepting reports whether the state at index i accepts.
func (r *Runner[S, E]) IsAccepting(i int) bool {
	return r.accepting.Get(i)
}

// Closure returns the epsilon closure of the given state indices, in
// discovery order starting from the seeds. Panics if an index is out of
// range.
func (r *Runner[S, E]) Closure(states []int) []int {
	set := sparse.New(len(r.states))
	for _, i := range states {
		set.Insert(uint32(i))
	}
	r.close(set)
	out := make([]int, 0, set.Len())
	for _, v := range set.Values() {
		out = append(out, int(v))
	}
	return out
}

// close expands set in place to its epsilon closure. Members appended
// during the scan are scanned in turn.
func (r *Runner[S, E]) close(set *sparse.Set) {
	for i := 0; i < set.Len(); i++ {
		s := r.states[set.Values()[i]]
		for _, e := range s.TaggedEdges(r.epsilon) {
			for _, dst := range e.States() {
				if j, ok := r.index[dst]; ok {
					set.Insert(uint32(j))
				}
			}
		}
	}
}

// Accepts reports whether the automaton accepts the full input sequence.
// The epsilon tag consumes nothing, so an input containing it is rejected
// as soon as it is reached.
func (r *Runner[S, E]) Accepts(input []E) bool {
	p := r.frontier
	p.Cur.Clear()
	p.Next.Clear()
	p.Cur.Insert(uint32(r.initial))
	r.close(p.Cur)

	for _, tok := range input {
		if tok == r.epsilon || p.Cur.IsEmpty() {
			return false
		}
		for _, v := range p.Cur.Values() {
			s := r.states[v]
			for _, e := range s.TaggedEdges(tok) {
				for _, dst := range e.States() {
					if j, ok := r.index[dst]; ok {
						p.Next.Insert(uint32(j))
					}
				}
			}
		}
		r.close(p.Next)
		p.Swap()
	}
	return r.anyAccepting(p.Cur)
}

// anyAccepting intersects the frontier with the accepting-index vector.
func (r *Runner[S, E]) anyAccepting(set *sparse.Set) bool {
	r.scratch.ResetRange(0, r.scratch.Len()-1)
	for _, v := range set.Values() {
		r.scratch.Set(int(v), true)
	}
	return r.scratch.OverlapsContainer(r.accepting)
}
