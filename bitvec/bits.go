// Package bitvec implements word-packed bit vectors and the bit-level
// kernels they are built from.
//
// The package has two layers. The kernel layer (Count64, Lowest64, Parity64,
// GrayNext and the 8x8 Tile operations) consists of pure, allocation-free
// functions over fixed-width integers. The Vector layer packs a fixed-length
// ordered set of booleans into 64-bit words and provides boolean algebra,
// range updates, ascending enumeration and set-style operations over index
// collections.
package bitvec

// deBruijn64 is a de Bruijn sequence used to locate the lowest set bit
// without a loop. The multiply moves a unique 6-bit window to the top.
const deBruijn64 = 0x03f79d71b4ca8b09

var deBruijn64tab = [64]int{
	0, 1, 56, 2, 57, 49, 28, 3, 61, 58, 42, 50, 38, 29, 17, 4,
	62, 47, 59, 36, 45, 43, 51, 22, 53, 39, 33, 30, 24, 18, 12, 5,
	63, 55, 48, 27, 60, 41, 37, 16, 46, 35, 44, 21, 52, 32, 23, 11,
	54, 26, 40, 15, 34, 20, 31, 10, 25, 14, 19, 9, 13, 8, 7, 6,
}

// Count64 returns the number of set bits in x.
//
// On amd64 with POPCNT support this dispatches to the hardware-backed
// implementation; elsewhere it uses the portable parallel-count kernel.
func Count64(x uint64) int {
	return count64(x)
}

// count64Generic is the portable parallel bit count.
// Pairs, then nibbles, then a byte-sum multiply.
func count64Generic(x uint64) int {
	x -= (x >> 1) & 0x5555555555555555
	x = x&0x3333333333333333 + (x>>2)&0x3333333333333333
	x = (x + x>>4) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}

// Lowest64 returns the index of the lowest set bit of x, or -1 if x is zero.
func Lowest64(x uint64) int {
	if x == 0 {
		return -1
	}
	return deBruijn64tab[((x&-x)*deBruijn64)>>58]
}

// Parity64 returns 1 if x has an odd number of set bits, 0 otherwise.
// Implemented as a folding XOR reduction.
func Parity64(x uint64) uint64 {
	x ^= x >> 32
	x ^= x >> 16
	x ^= x >> 8
	x ^= x >> 4
	x ^= x >> 2
	x ^= x >> 1
	return x & 1
}

// Gray returns the reflected Gray code of b.
func Gray(b uint64) uint64 {
	return b ^ (b >> 1)
}

// GrayDecode returns the binary value whose Gray code is g.
func GrayDecode(g uint64) uint64 {
	b := g
	for s := uint(1); s < 64; s <<= 1 {
		b ^= b >> s
	}
	return b
}

// GrayNext returns the Gray code following g in a cycle of width bits.
// After 2^bits increments the sequence wraps back to zero. bits must be
// in [1, 64]; GrayNext panics otherwise.
func GrayNext(g uint64, bits uint) uint64 {
	if bits == 0 || bits > 64 {
		panic("bitvec: GrayNext width out of range")
	}
	mask := ^uint64(0)
	if bits < 64 {
		mask = 1<<bits - 1
	}
	b := (GrayDecode(g) + 1) & mask
	return Gray(b)
}
