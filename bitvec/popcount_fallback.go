//go:build !amd64

package bitvec

func count64(x uint64) int {
	return count64Generic(x)
}
