// Package nfa implements a nondeterministic finite automaton over generic
// state and edge tags, together with the classic automata-combination
// operators (concatenation, disjunction, Kleene star) built on epsilon
// transitions.
//
// The graph model is deliberately shared-state: State and Edge objects are
// identified by tag inside tag-keyed multimaps, and automata derived through
// Clone or the combination operators reference the same underlying objects
// rather than deep copies. Mutating a shared state's edge set is visible in
// every automaton holding it. Nothing in this package is safe for concurrent
// use.
package nfa

import "errors"

// Common construction errors.
var (
	// ErrNilDispatcher indicates a dispatcher-backed automaton was
	// constructed without a tag dispatcher.
	ErrNilDispatcher = errors.New("nfa: nil tag dispatcher")

	// ErrNilTagFunc indicates a Register was constructed without a
	// tag-extractor function.
	ErrNilTagFunc = errors.New("nfa: nil tag function")
)
