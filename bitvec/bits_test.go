package bitvec

import (
	"math/bits"
	"testing"
)

func TestCount64(t *testing.T) {
	cases := []uint64{
		0, 1, 2, 3, 0xff, 0x8000000000000000, ^uint64(0),
		0x5555555555555555, 0xaaaaaaaaaaaaaaaa, 0x0123456789abcdef,
	}
	for _, x := range cases {
		if got, want := Count64(x), bits.OnesCount64(x); got != want {
			t.Errorf("Count64(%#x) = %d, want %d", x, got, want)
		}
		if got, want := count64Generic(x), bits.OnesCount64(x); got != want {
			t.Errorf("count64Generic(%#x) = %d, want %d", x, got, want)
		}
	}
}

func TestLowest64(t *testing.T) {
	if got := Lowest64(0); got != -1 {
		t.Errorf("Lowest64(0) = %d, want -1", got)
	}
	for i := 0; i < 64; i++ {
		x := uint64(1) << i
		if got := Lowest64(x); got != i {
			t.Errorf("Lowest64(1<<%d) = %d, want %d", i, got, i)
		}
		// Higher bits must not matter.
		if i < 63 {
			if got := Lowest64(x | 1<<63); got != i {
				t.Errorf("Lowest64(1<<%d | 1<<63) = %d, want %d", i, got, i)
			}
		}
	}
}

func TestParity64(t *testing.T) {
	cases := []struct {
		x    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{3, 0},
		{7, 1},
		{^uint64(0), 0},
		{0x8000000000000001, 0},
		{0x8000000000000000, 1},
	}
	for _, tc := range cases {
		if got := Parity64(tc.x); got != tc.want {
			t.Errorf("Parity64(%#x) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestGrayRoundTrip(t *testing.T) {
	for b := uint64(0); b < 256; b++ {
		if got := GrayDecode(Gray(b)); got != b {
			t.Errorf("GrayDecode(Gray(%d)) = %d", b, got)
		}
	}
}

func TestGrayNextCycle(t *testing.T) {
	const width = 4
	seen := make(map[uint64]bool)
	g := uint64(0)
	for i := 0; i < 1<<width; i++ {
		if seen[g] {
			t.Fatalf("value %#x repeated after %d increments", g, i)
		}
		seen[g] = true
		next := GrayNext(g, width)
		if d := Count64(g ^ next); d != 1 {
			t.Errorf("step %d: %#x -> %#x flips %d bits, want 1", i, g, next, d)
		}
		g = next
	}
	if g != 0 {
		t.Errorf("cycle of width %d did not wrap to zero, ended at %#x", width, g)
	}
}

func TestGrayNextWidthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GrayNext(0, 0) should panic")
		}
	}()
	GrayNext(0, 0)
}

func BenchmarkCount64(b *testing.B) {
	x := uint64(0x0123456789abcdef)
	for i := 0; i < b.N; i++ {
		_ = Count64(x)
	}
}

func BenchmarkCount64Generic(b *testing.B) {
	x := uint64(0x0123456789abcdef)
	for i := 0; i < b.N; i++ {
		_ = count64Generic(x)
	}
}
