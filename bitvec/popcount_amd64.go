//go:build amd64

package bitvec

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasPopcnt reports whether the CPU provides the POPCNT instruction.
// When it does, math/bits.OnesCount64 compiles to a single instruction
// and beats the portable parallel-count kernel.
var hasPopcnt = cpu.X86.HasPOPCNT

func count64(x uint64) int {
	if hasPopcnt {
		return bits.OnesCount64(x)
	}
	return count64Generic(x)
}
