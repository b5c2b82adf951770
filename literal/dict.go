// Package literal maintains byte-literal dictionaries and compiles them
// into automata or multi-pattern matchers.
//
// A Dict is an ordered, duplicate-free collection of byte literals. It can
// be lowered two ways: into a nondeterministic automaton over bytes, one
// chain per literal joined by disjunction, or into an Aho-Corasick Matcher
// for substring scanning.
package literal

import (
	"errors"
	"fmt"

	"github.com/coregx/automata/nfa"
)

var (
	// ErrEmptyLiteral rejects zero-length literals.
	ErrEmptyLiteral = errors.New("literal: empty literal")

	// ErrDuplicateLiteral rejects a literal already in the dictionary.
	ErrDuplicateLiteral = errors.New("literal: duplicate literal")

	// ErrEmptyDict rejects compiling a dictionary with no literals.
	ErrEmptyDict = errors.New("literal: empty dictionary")

	// ErrEpsilonInLiteral rejects lowering a literal that contains the
	// byte chosen as the epsilon tag.
	ErrEpsilonInLiteral = errors.New("literal: literal contains the epsilon byte")
)

// Dict is an insertion-ordered set of byte literals.
// The zero value is not usable; call NewDict.
type Dict struct {
	order [][]byte
	seen  map[string]struct{}
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{seen: make(map[string]struct{})}
}

// Add copies lit into the dictionary. Returns ErrEmptyLiteral for a
// zero-length literal and ErrDuplicateLiteral when the bytes are already
// present.
func (d *Dict) Add(lit []byte) error {
	if len(lit) == 0 {
		return ErrEmptyLiteral
	}
	key := string(lit)
	if _, dup := d.seen[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateLiteral, lit)
	}
	d.seen[key] = struct{}{}
	d.order = append(d.order, []byte(key))
	return nil
}

// AddString adds s's bytes to the dictionary.
func (d *Dict) AddString(s string) error {
	return d.Add([]byte(s))
}

// Len returns the number of literals.
func (d *Dict) Len() int {
	return len(d.order)
}

// Get returns the i-th literal in insertion order. The slice aliases
// dictionary storage. Panics if i is out of range.
func (d *Dict) Get(i int) []byte {
	return d.order[i]
}

// Contains reports whether the exact byte sequence is in the dictionary.
func (d *Dict) Contains(lit []byte) bool {
	_, ok := d.seen[string(lit)]
	return ok
}

// Literals returns the literals in insertion order. The outer slice is
// fresh; the byte slices alias dictionary storage.
func (d *Dict) Literals() [][]byte {
	out := make([][]byte, len(d.order))
	copy(out, d.order)
	return out
}

// NFA lowers the dictionary into a byte automaton accepting exactly the
// literal set: one linear chain per literal, folded together with
// disjunction. State tags come from the dispatcher, so several dictionaries
// sharing one dispatcher compose without collisions. The epsilon byte is
// reserved for the join edges and must not occur in any literal.
func (d *Dict) NFA(dispatcher nfa.TagDispatcher[int], epsilon byte) (*nfa.NullTagDispatcherNFA[int, byte], error) {
	if len(d.order) == 0 {
		return nil, ErrEmptyDict
	}
	if dispatcher == nil {
		return nil, nfa.ErrNilDispatcher
	}

	var acc *nfa.NullTagDispatcherNFA[int, byte]
	for _, lit := range d.order {
		cur, err := d.chain(lit, dispatcher, epsilon)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = cur
			continue
		}
		acc = acc.Disjunction(cur)
	}
	return acc, nil
}

// chain lowers one literal into a linear automaton with dispatched tags.
func (d *Dict) chain(lit []byte, dispatcher nfa.TagDispatcher[int], epsilon byte) (*nfa.NullTagDispatcherNFA[int, byte], error) {
	tags := make([]int, len(lit)+1)
	for i := range tags {
		tags[i] = dispatcher.NextTag()
	}

	trs := make([]nfa.Transition[int, byte], len(lit))
	for i, b := range lit {
		if b == epsilon {
			return nil, fmt.Errorf("%w: %q", ErrEpsilonInLiteral, lit)
		}
		trs[i] = nfa.Transition[int, byte]{From: tags[i], Label: b, To: tags[i+1]}
	}
	return nfa.NewNullTagDispatcherNFA(nfa.Descriptor[int, byte]{
		Transitions: trs,
		Initial:     tags[0],
		Accepting:   []int{tags[len(lit)]},
	}, dispatcher, epsilon)
}
