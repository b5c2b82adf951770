// Package sparse provides a sparse set over small integer universes.
//
// The set keeps a dense list of members next to a sparse position index,
// giving O(1) insert, membership and clear without zeroing storage. The
// automaton simulator uses it for closure frontiers, where sets are filled
// and discarded once per input token and iteration order must follow
// insertion order.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The zero value is not usable; call New.
type Set struct {
	sparse []uint32 // value -> position in dense, unvalidated until checked
	dense  []uint32 // members in insertion order
}

// New returns an empty set able to hold values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether the set changed.
// Panics if value is outside the capacity.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports membership. Values outside the capacity are absent.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	pos := s.sparse[value]
	return pos < uint32(len(s.dense)) && s.dense[pos] == value
}

// Clear empties the set in O(1); the sparse index keeps stale entries that
// the dense cross-check invalidates.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Capacity returns the exclusive upper bound on storable values.
func (s *Set) Capacity() int {
	return len(s.sparse)
}

// Values returns the members in insertion order. The slice aliases internal
// storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Pair is a current/next set pair for frontier stepping: fill Next while
// draining Cur, then Swap.
type Pair struct {
	Cur  *Set
	Next *Set
}

// NewPair returns two empty sets of the same capacity.
func NewPair(capacity int) *Pair {
	return &Pair{Cur: New(capacity), Next: New(capacity)}
}

// Swap exchanges Cur and Next and clears the new Next.
func (p *Pair) Swap() {
	p.Cur, p.Next = p.Next, p.Cur
	p.Next.Clear()
}
