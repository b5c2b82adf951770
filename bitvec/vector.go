package bitvec

import (
	"fmt"
	"strings"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = 63
)

// Vector is a fixed-length ordered set of booleans over indices [0, Len()),
// packed into 64-bit words. The length is declared at construction and never
// changes.
//
// Bits at index >= Len() inside the last storage word ("tail bits") are
// logically absent. In-place operations may leave garbage there; every
// length-sensitive read (Count, AllSet, Equal, GetLowest, enumeration, the
// set-style predicates) re-masks the last word before using it, so tail
// garbage never leaks into results.
//
// A Vector is not safe for concurrent use. Enumerating while mutating has
// best-effort semantics only: indices already yielded are never yielded
// again, but bits changed ahead of the cursor may or may not be observed.
type Vector struct {
	n     int
	words []uint64
}

// wordsFor returns the number of 64-bit words needed for n bits.
func wordsFor(n int) int {
	return (n + wordMask) >> wordShift
}

// New returns a zeroed vector of length n. n must be non-negative.
func New(n int) *Vector {
	if n < 0 {
		panic("bitvec: negative length")
	}
	return &Vector{n: n, words: make([]uint64, wordsFor(n))}
}

// FromWords returns a vector of length n backed by words. The slice is
// aliased, not copied: mutations through either reference are visible to
// both. words must provide at least wordsFor(n) entries.
func FromWords(n int, words []uint64) *Vector {
	if n < 0 {
		panic("bitvec: negative length")
	}
	if len(words) < wordsFor(n) {
		panic(fmt.Sprintf("bitvec: %d words cannot back %d bits", len(words), n))
	}
	return &Vector{n: n, words: words}
}

// FromIndices returns a vector of length n with exactly the given indices
// set. Indices must be in [0, n).
func FromIndices(n int, indices []int) *Vector {
	v := New(n)
	for _, i := range indices {
		if i < 0 || i >= n {
			panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, n))
		}
		v.words[i>>wordShift] |= 1 << (i & wordMask)
	}
	return v
}

// FromBools returns a vector whose length and contents mirror bools.
func FromBools(bools []bool) *Vector {
	v := New(len(bools))
	for i, b := range bools {
		if b {
			v.words[i>>wordShift] |= 1 << (i & wordMask)
		}
	}
	return v
}

// Len returns the declared length in bits.
func (v *Vector) Len() int {
	return v.n
}

// WordLen returns the number of storage words covering [0, Len()).
func (v *Vector) WordLen() int {
	return wordsFor(v.n)
}

// tailMask returns the mask selecting the live bits of the last word,
// or all ones when the length is word-aligned.
func (v *Vector) tailMask() uint64 {
	if r := uint(v.n) & wordMask; r != 0 {
		return ^uint64(0) >> (wordBits - r)
	}
	return ^uint64(0)
}

// word returns storage word i with the tail masked off when i is the
// last live word. Reading past the live words yields zero.
func (v *Vector) word(i int) uint64 {
	last := wordsFor(v.n) - 1
	if i > last {
		return 0
	}
	w := v.words[i]
	if i == last {
		w &= v.tailMask()
	}
	return w
}

// Get reports whether bit i is set. The index is checked against the
// backing storage, not the declared length; reading a tail bit sees
// whatever garbage is stored there.
func (v *Vector) Get(i int) bool {
	return v.words[i>>wordShift]>>(uint(i)&wordMask)&1 == 1
}

// Set writes bit i. Like Get, the index is only bounded by storage:
// writing a tail bit plants garbage that the masked readers ignore.
func (v *Vector) Set(i int, b bool) {
	bit := uint64(1) << (uint(i) & wordMask)
	if b {
		v.words[i>>wordShift] |= bit
	} else {
		v.words[i>>wordShift] &^= bit
	}
}

// AllSet reports whether every bit in [0, Len()) is set.
func (v *Vector) AllSet() bool {
	if v.n == 0 {
		return true
	}
	last := wordsFor(v.n) - 1
	for i := 0; i < last; i++ {
		if v.words[i] != ^uint64(0) {
			return false
		}
	}
	return v.words[last]&v.tailMask() == v.tailMask()
}

// Count returns the number of set bits in [0, Len()).
func (v *Vector) Count() int {
	if v.n == 0 {
		return 0
	}
	last := wordsFor(v.n) - 1
	c := 0
	for i := 0; i < last; i++ {
		c += count64(v.words[i])
	}
	return c + count64(v.words[last]&v.tailMask())
}

// Equal reports whether the two vectors have the same length and the
// same bits within it.
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || v.n != o.n {
		return false
	}
	for i := 0; i < wordsFor(v.n); i++ {
		if v.word(i) != o.word(i) {
			return false
		}
	}
	return true
}

// Clone returns a copy of v with freshly allocated words.
func (v *Vector) Clone() *Vector {
	c := New(v.n)
	copy(c.words, v.words[:wordsFor(v.n)])
	return c
}

// And returns a new vector of length max(v.Len(), o.Len()) holding the
// bitwise AND. The shorter operand is treated as zero-extended.
func (v *Vector) And(o *Vector) *Vector {
	r := New(max(v.n, o.n))
	for i := range r.words {
		r.words[i] = v.word(i) & o.word(i)
	}
	return r
}

// Or returns a new vector of length max(v.Len(), o.Len()) holding the
// bitwise OR. The shorter operand is treated as zero-extended.
func (v *Vector) Or(o *Vector) *Vector {
	r := New(max(v.n, o.n))
	for i := range r.words {
		r.words[i] = v.word(i) | o.word(i)
	}
	return r
}

// Xor returns a new vector of length max(v.Len(), o.Len()) holding the
// bitwise XOR. The shorter operand is treated as zero-extended.
func (v *Vector) Xor(o *Vector) *Vector {
	r := New(max(v.n, o.n))
	for i := range r.words {
		r.words[i] = v.word(i) ^ o.word(i)
	}
	return r
}

// Not returns a new vector of the receiver's length with every bit in
// [0, Len()) inverted. The result's tail bits are left zero.
func (v *Vector) Not() *Vector {
	r := New(v.n)
	for i := range r.words {
		r.words[i] = ^v.word(i)
	}
	// Inverting the masked tail turned it all-ones; zero it again.
	if len(r.words) > 0 {
		r.words[len(r.words)-1] &= v.tailMask()
	}
	return r
}

// AndLocal ANDs the overlapping word range of o into v in place. Words of
// v beyond the overlap are untouched, and the tail is not re-masked; the
// masked readers compensate.
func (v *Vector) AndLocal(o *Vector) {
	for i, n := 0, min(wordsFor(v.n), wordsFor(o.n)); i < n; i++ {
		v.words[i] &= o.words[i]
	}
}

// OrLocal ORs the overlapping word range of o into v in place without
// re-masking the tail.
func (v *Vector) OrLocal(o *Vector) {
	for i, n := 0, min(wordsFor(v.n), wordsFor(o.n)); i < n; i++ {
		v.words[i] |= o.words[i]
	}
}

// XorLocal XORs the overlapping word range of o into v in place without
// re-masking the tail.
func (v *Vector) XorLocal(o *Vector) {
	for i, n := 0, min(wordsFor(v.n), wordsFor(o.n)); i < n; i++ {
		v.words[i] ^= o.words[i]
	}
}

// NotLocal inverts every storage word of v in place, tail bits included.
// Masked readers still report correct results afterwards.
func (v *Vector) NotLocal() {
	for i := 0; i < wordsFor(v.n); i++ {
		v.words[i] = ^v.words[i]
	}
}

// SetRange sets every bit in the inclusive range [lower, upper].
// Both bounds must lie in [0, Len()).
func (v *Vector) SetRange(lower, upper int) {
	v.rangeCheck(lower, upper)
	loW, hiW := lower>>wordShift, upper>>wordShift
	loMask := ^uint64(0) << (uint(lower) & wordMask)
	hiMask := ^uint64(0) >> (wordMask - uint(upper)&wordMask)
	if loW == hiW {
		v.words[loW] |= loMask & hiMask
		return
	}
	v.words[loW] |= loMask
	for i := loW + 1; i < hiW; i++ {
		v.words[i] = ^uint64(0)
	}
	v.words[hiW] |= hiMask
}

// ResetRange clears every bit in the inclusive range [lower, upper].
// Both bounds must lie in [0, Len()).
func (v *Vector) ResetRange(lower, upper int) {
	v.rangeCheck(lower, upper)
	loW, hiW := lower>>wordShift, upper>>wordShift
	loMask := ^uint64(0) << (uint(lower) & wordMask)
	hiMask := ^uint64(0) >> (wordMask - uint(upper)&wordMask)
	if loW == hiW {
		v.words[loW] &^= loMask & hiMask
		return
	}
	v.words[loW] &^= loMask
	for i := loW + 1; i < hiW; i++ {
		v.words[i] = 0
	}
	v.words[hiW] &^= hiMask
}

func (v *Vector) rangeCheck(lower, upper int) {
	if lower < 0 || upper >= v.n || lower > upper {
		panic(fmt.Sprintf("bitvec: bad range [%d, %d] for length %d", lower, upper, v.n))
	}
}

// GetLowest returns the smallest set index >= lowerBound, or -1 if no such
// bit exists below Len(). A negative bound is treated as zero.
func (v *Vector) GetLowest(lowerBound int) int {
	if lowerBound < 0 {
		lowerBound = 0
	}
	if lowerBound >= v.n {
		return -1
	}
	x := lowerBound >> wordShift
	// Drop bits below the bound in the first word.
	w := v.word(x) & (^uint64(0) << (uint(lowerBound) & wordMask))
	if w != 0 {
		return x<<wordShift + Lowest64(w)
	}
	for i := x + 1; i < wordsFor(v.n); i++ {
		if w := v.word(i); w != 0 {
			return i<<wordShift + Lowest64(w)
		}
	}
	return -1
}

// Block64 returns storage word i, unmasked. It exposes the raw packed
// representation for word-level interop; see Block64Container.
func (v *Vector) Block64(i int) uint64 {
	if i < 0 || i >= wordsFor(v.n) {
		panic(fmt.Sprintf("bitvec: block %d out of range [0, %d)", i, wordsFor(v.n)))
	}
	return v.words[i]
}

// SetBlock64 overwrites storage word i.
func (v *Vector) SetBlock64(i int, w uint64) {
	if i < 0 || i >= wordsFor(v.n) {
		panic(fmt.Sprintf("bitvec: block %d out of range [0, %d)", i, wordsFor(v.n)))
	}
	v.words[i] = w
}

// Words returns the backing word slice, aliased.
func (v *Vector) Words() []uint64 {
	return v.words
}

// AppendTo appends the indices of all set bits in ascending order to buf
// and returns the extended slice.
func (v *Vector) AppendTo(buf []int) []int {
	for i := 0; i < wordsFor(v.n); i++ {
		w := v.word(i)
		for w != 0 {
			buf = append(buf, i<<wordShift+Lowest64(w))
			w &= w - 1
		}
	}
	return buf
}

// Iter returns a fresh ascending iterator over the set bits.
type Iter struct {
	v    *Vector
	next int
}

// Iter returns an iterator positioned before the first set bit. Each call
// starts a fresh enumeration.
func (v *Vector) Iter() *Iter {
	return &Iter{v: v}
}

// Next returns the next set index in ascending order. ok is false once the
// enumeration is exhausted.
func (it *Iter) Next() (i int, ok bool) {
	i = it.v.GetLowest(it.next)
	if i < 0 {
		return -1, false
	}
	it.next = i + 1
	return i, true
}

// String renders the vector as Len() characters of '0'/'1', index 0 first:
// FromWords(7, []uint64{0x09}).String() == "1001000".
func (v *Vector) String() string {
	var b strings.Builder
	b.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.word(i>>wordShift)>>(uint(i)&wordMask)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Parse builds a vector from the String form: one '0' or '1' per bit,
// index 0 first. Any other character is an error.
func Parse(s string) (*Vector, error) {
	v := New(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.words[i>>wordShift] |= 1 << (uint(i) & wordMask)
		case '0':
		default:
			return nil, fmt.Errorf("bitvec: invalid character %q at index %d", s[i], i)
		}
	}
	return v, nil
}
