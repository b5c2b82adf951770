package bitvec

import "fmt"

// Set-style operations over arbitrary finite index collections. Each method
// materializes the collection into a same-length temporary vector and applies
// word-wise boolean combination; when the other operand is already a Vector,
// use the *Local methods or the Block64Container algebra instead, which skip
// the materialization.
//
// All methods reject a nil collection. Negative indices always panic.
// Indices >= Len() are handled per method: ignored where they cannot affect
// the result, rejected where they would have to be representable.

// indexVector builds a temporary vector of v's shape from indices.
// Out-of-range indices panic when strict, and are dropped otherwise.
func (v *Vector) indexVector(indices []int, strict bool, op string) *Vector {
	if indices == nil {
		panic("bitvec: nil index collection passed to " + op)
	}
	t := New(v.n)
	for _, i := range indices {
		if i < 0 {
			panic(fmt.Sprintf("bitvec: negative index %d passed to %s", i, op))
		}
		if i >= v.n {
			if strict {
				panic(fmt.Sprintf("bitvec: index %d out of range [0, %d) in %s", i, v.n, op))
			}
			continue
		}
		t.words[i>>wordShift] |= 1 << (uint(i) & wordMask)
	}
	return t
}

// UnionWith sets every index of the collection in v. Indices must fit in
// [0, Len()) since the vector cannot grow.
func (v *Vector) UnionWith(indices []int) {
	v.OrLocal(v.indexVector(indices, true, "UnionWith"))
}

// IntersectWith clears every bit of v not present in the collection.
// Indices >= Len() are ignored.
func (v *Vector) IntersectWith(indices []int) {
	t := v.indexVector(indices, false, "IntersectWith")
	for i := 0; i < wordsFor(v.n); i++ {
		v.words[i] &= t.words[i]
	}
}

// ExceptWith clears every index of the collection in v. Indices >= Len()
// are ignored.
func (v *Vector) ExceptWith(indices []int) {
	t := v.indexVector(indices, false, "ExceptWith")
	for i := 0; i < wordsFor(v.n); i++ {
		v.words[i] &^= t.words[i]
	}
}

// SymmetricExceptWith toggles every index of the collection in v. Indices
// must fit in [0, Len()).
func (v *Vector) SymmetricExceptWith(indices []int) {
	v.XorLocal(v.indexVector(indices, true, "SymmetricExceptWith"))
}

// Overlaps reports whether v has at least one of the collection's indices
// set. Indices >= Len() cannot overlap and are ignored.
func (v *Vector) Overlaps(indices []int) bool {
	t := v.indexVector(indices, false, "Overlaps")
	for i := 0; i < wordsFor(v.n); i++ {
		if v.word(i)&t.words[i] != 0 {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every set bit of v appears in the collection.
// Extra indices >= Len() are ignored.
func (v *Vector) IsSubsetOf(indices []int) bool {
	t := v.indexVector(indices, false, "IsSubsetOf")
	for i := 0; i < wordsFor(v.n); i++ {
		if v.word(i)&^t.words[i] != 0 {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every index of the collection is set in v.
// Any index >= Len() makes the result false.
func (v *Vector) IsSupersetOf(indices []int) bool {
	if indices == nil {
		panic("bitvec: nil index collection passed to IsSupersetOf")
	}
	for _, i := range indices {
		if i < 0 {
			panic(fmt.Sprintf("bitvec: negative index %d passed to IsSupersetOf", i))
		}
		if i >= v.n || v.word(i>>wordShift)>>(uint(i)&wordMask)&1 == 0 {
			return false
		}
	}
	return true
}

// SetEquals reports whether v's set bits are exactly the collection.
// Any index >= Len() makes the result false.
func (v *Vector) SetEquals(indices []int) bool {
	if indices == nil {
		panic("bitvec: nil index collection passed to SetEquals")
	}
	for _, i := range indices {
		if i < 0 {
			panic(fmt.Sprintf("bitvec: negative index %d passed to SetEquals", i))
		}
		if i >= v.n {
			return false
		}
	}
	t := v.indexVector(indices, true, "SetEquals")
	return v.Equal(t)
}
