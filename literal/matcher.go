package literal

import (
	"github.com/coregx/ahocorasick"
)

// Matcher scans haystacks for dictionary literals using an Aho-Corasick
// automaton. Matching is O(haystack) regardless of dictionary size, with
// leftmost-first semantics. A Matcher is immutable after construction and
// safe for concurrent use.
type Matcher struct {
	auto  *ahocorasick.Automaton
	whole map[string]struct{}
}

// NewMatcher compiles the dictionary's literals. Returns ErrEmptyDict when
// there is nothing to match.
func NewMatcher(d *Dict) (*Matcher, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDict
	}

	builder := ahocorasick.NewBuilder()
	whole := make(map[string]struct{}, d.Len())
	for _, lit := range d.order {
		builder.AddPattern(lit)
		whole[string(lit)] = struct{}{}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Matcher{auto: auto, whole: whole}, nil
}

// Matcher compiles the dictionary's current literals into a Matcher.
func (d *Dict) Matcher() (*Matcher, error) {
	return NewMatcher(d)
}

// IsMatch reports whether any literal occurs in haystack.
func (m *Matcher) IsMatch(haystack []byte) bool {
	return m.auto.IsMatch(haystack)
}

// Find returns the first literal occurrence at or after position at, as a
// [start, end) byte range. ok is false when nothing matches.
func (m *Matcher) Find(haystack []byte, at int) (start, end int, ok bool) {
	if at >= len(haystack) {
		return -1, -1, false
	}
	match := m.auto.Find(haystack, at)
	if match == nil {
		return -1, -1, false
	}
	return match.Start, match.End, true
}

// MatchesWhole reports whether input is exactly one of the dictionary's
// literals, the same language the dictionary's NFA accepts.
func (m *Matcher) MatchesWhole(input []byte) bool {
	_, ok := m.whole[string(input)]
	return ok
}
