// Package automata builds and runs nondeterministic finite automata.
//
// The package is organized in layers:
//   - nfa: the shared-state graph model and its combination operators
//     (concatenation, disjunction, Kleene star)
//   - match: subset simulation of an nfa graph against input sequences
//   - literal: byte-literal dictionaries, lowered to automata or to an
//     Aho-Corasick matcher
//   - bitvec: the compact bit-vector and bit-kernel layer the simulator
//     is built on
//
// This root package ties the layers into a small pattern API over bytes:
//
//	m, err := automata.Compile(
//	    automata.Concat(
//	        automata.Union(automata.Literal("cat"), automata.Literal("dog")),
//	        automata.Star(automata.Literal("s")),
//	    ),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Matches("cats") // true
//
// Patterns compile to an epsilon-NFA with the NUL byte reserved as the
// epsilon edge tag, so literals must not contain NUL. Unions of plain
// literals are additionally backed by an Aho-Corasick dictionary and
// bypass the simulation entirely.
package automata

import (
	"errors"
	"sync"

	"github.com/coregx/automata/literal"
	"github.com/coregx/automata/match"
	"github.com/coregx/automata/nfa"
)

// epsilonByte is the edge tag reserved for nothing-consumed transitions.
const epsilonByte = 0

// ErrEmptyPattern is returned by Compile for an operator with no operands.
var ErrEmptyPattern = errors.New("automata: operator needs at least one operand")

// Pattern is a byte-language expression tree built from Literal, Concat,
// Union and Star.
type Pattern interface {
	compile(dispatcher nfa.TagDispatcher[int]) (*nfa.NullTagDispatcherNFA[int, byte], error)
}

type literalPattern string

type concatPattern []Pattern

type unionPattern []Pattern

type starPattern struct{ operand Pattern }

// Literal matches exactly the given bytes. The empty string matches the
// empty input.
func Literal(s string) Pattern {
	return literalPattern(s)
}

// Concat matches its operands' languages in sequence.
func Concat(ps ...Pattern) Pattern {
	return concatPattern(ps)
}

// Union matches any one of its operands' languages.
func Union(ps ...Pattern) Pattern {
	return unionPattern(ps)
}

// Star matches zero or more repetitions of its operand's language.
func Star(p Pattern) Pattern {
	return starPattern{operand: p}
}

func (p literalPattern) compile(dispatcher nfa.TagDispatcher[int]) (*nfa.NullTagDispatcherNFA[int, byte], error) {
	if p == "" {
		// A single state that is both initial and accepting.
		tag := dispatcher.NextTag()
		return nfa.NewNullTagDispatcherNFA(nfa.Descriptor[int, byte]{
			Initial:   tag,
			Accepting: []int{tag},
		}, dispatcher, epsilonByte)
	}
	d := literal.NewDict()
	if err := d.AddString(string(p)); err != nil {
		return nil, err
	}
	return d.NFA(dispatcher, epsilonByte)
}

func (p concatPattern) compile(dispatcher nfa.TagDispatcher[int]) (*nfa.NullTagDispatcherNFA[int, byte], error) {
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	acc, err := p[0].compile(dispatcher)
	if err != nil {
		return nil, err
	}
	for _, sub := range p[1:] {
		cur, err := sub.compile(dispatcher)
		if err != nil {
			return nil, err
		}
		acc = acc.Concatenate(cur)
	}
	return acc, nil
}

func (p unionPattern) compile(dispatcher nfa.TagDispatcher[int]) (*nfa.NullTagDispatcherNFA[int, byte], error) {
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	acc, err := p[0].compile(dispatcher)
	if err != nil {
		return nil, err
	}
	for _, sub := range p[1:] {
		cur, err := sub.compile(dispatcher)
		if err != nil {
			return nil, err
		}
		acc = acc.Disjunction(cur)
	}
	return acc, nil
}

func (p starPattern) compile(dispatcher nfa.TagDispatcher[int]) (*nfa.NullTagDispatcherNFA[int, byte], error) {
	if p.operand == nil {
		return nil, ErrEmptyPattern
	}
	inner, err := p.operand.compile(dispatcher)
	if err != nil {
		return nil, err
	}
	return inner.KleeneStar(), nil
}

// Machine is a compiled pattern. It is safe for concurrent use.
type Machine struct {
	mu     sync.Mutex
	runner *match.Runner[int, byte]
	graph  *nfa.NFA[int, byte]
	lits   *literal.Matcher // set when the pattern is a plain literal union
}

// Compile lowers the pattern to an epsilon-NFA and prepares its simulator.
func Compile(p Pattern) (*Machine, error) {
	if p == nil {
		return nil, ErrEmptyPattern
	}
	n, err := p.compile(nfa.NewIntDispatcher(0))
	if err != nil {
		return nil, err
	}
	runner, err := match.NewRunner(n.NFA, epsilonByte)
	if err != nil {
		return nil, err
	}
	m := &Machine{runner: runner, graph: n.NFA}

	if lits, ok := plainLiterals(p); ok {
		d := literal.NewDict()
		for _, lit := range lits {
			if err := d.AddString(lit); err != nil {
				// Duplicate alternatives collapse; the language is unchanged.
				if errors.Is(err, literal.ErrDuplicateLiteral) {
					continue
				}
				return nil, err
			}
		}
		matcher, err := literal.NewMatcher(d)
		if err != nil {
			return nil, err
		}
		m.lits = matcher
	}
	return m, nil
}

// MustCompile is Compile, panicking on error.
func MustCompile(p Pattern) *Machine {
	m, err := Compile(p)
	if err != nil {
		panic("automata: Compile: " + err.Error())
	}
	return m
}

// plainLiterals reports whether p is a non-empty literal or a union of
// such, the shapes the dictionary matcher can serve directly.
func plainLiterals(p Pattern) ([]string, bool) {
	switch p := p.(type) {
	case literalPattern:
		if p == "" {
			return nil, false
		}
		return []string{string(p)}, true
	case unionPattern:
		var all []string
		for _, sub := range p {
			lits, ok := plainLiterals(sub)
			if !ok {
				return nil, false
			}
			all = append(all, lits...)
		}
		return all, len(all) > 0
	default:
		return nil, false
	}
}

// Matches reports whether the machine's language contains s.
func (m *Machine) Matches(s string) bool {
	return m.MatchesBytes([]byte(s))
}

// MatchesBytes reports whether the machine's language contains input.
func (m *Machine) MatchesBytes(input []byte) bool {
	if m.lits != nil {
		return m.lits.MatchesWhole(input)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runner.Accepts(input)
}

// DOT renders the machine's automaton in Graphviz dot form.
func (m *Machine) DOT() string {
	return nfa.DOT(m.graph)
}

// NumStates returns the number of states in the machine's automaton.
func (m *Machine) NumStates() int {
	return m.runner.NumStates()
}
