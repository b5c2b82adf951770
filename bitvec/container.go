package bitvec

// Block64Container is the minimal capability for word-addressable bit
// containers: a declared bit length plus raw 64-bit block access. Any
// same-shaped type can participate in mixed-type boolean algebra against a
// Vector through it. Vector itself implements the interface.
//
// Block i covers bit indices [i*64, i*64+64); bits at index >= Len() in the
// final block are ignored by every consumer here.
type Block64Container interface {
	Len() int
	Block64(i int) uint64
}

// containerWord reads block i of c with the container's own tail masked
// off, zero-extending past its last block.
func containerWord(c Block64Container, i int) uint64 {
	n := c.Len()
	last := wordsFor(n) - 1
	if i > last {
		return 0
	}
	w := c.Block64(i)
	if i == last {
		if r := uint(n) & wordMask; r != 0 {
			w &= ^uint64(0) >> (wordBits - r)
		}
	}
	return w
}

// AndContainer returns a new vector of length max(v.Len(), c.Len()) holding
// the bitwise AND of v and any block-addressable container.
func (v *Vector) AndContainer(c Block64Container) *Vector {
	if c == nil {
		panic("bitvec: nil container")
	}
	r := New(max(v.n, c.Len()))
	for i := range r.words {
		r.words[i] = v.word(i) & containerWord(c, i)
	}
	return r
}

// OrContainer returns a new vector of length max(v.Len(), c.Len()) holding
// the bitwise OR of v and any block-addressable container.
func (v *Vector) OrContainer(c Block64Container) *Vector {
	if c == nil {
		panic("bitvec: nil container")
	}
	r := New(max(v.n, c.Len()))
	for i := range r.words {
		r.words[i] = v.word(i) | containerWord(c, i)
	}
	return r
}

// XorContainer returns a new vector of length max(v.Len(), c.Len()) holding
// the bitwise XOR of v and any block-addressable container.
func (v *Vector) XorContainer(c Block64Container) *Vector {
	if c == nil {
		panic("bitvec: nil container")
	}
	r := New(max(v.n, c.Len()))
	for i := range r.words {
		r.words[i] = v.word(i) ^ containerWord(c, i)
	}
	return r
}

// OverlapsContainer reports whether v and c share at least one set bit.
func (v *Vector) OverlapsContainer(c Block64Container) bool {
	if c == nil {
		panic("bitvec: nil container")
	}
	for i, n := 0, min(wordsFor(v.n), wordsFor(c.Len())); i < n; i++ {
		if v.word(i)&containerWord(c, i) != 0 {
			return true
		}
	}
	return false
}
