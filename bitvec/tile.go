package bitvec

// Tile is an 8x8 boolean matrix packed into a single uint64.
// Row r occupies byte r (row 0 is the low byte) and bit (r*8 + c) holds
// cell (r, c). All operations are pure and allocation-free.
type Tile uint64

const (
	tileColumn0 = 0x0101010101010101 // one bit per row, column 0
	tileGather  = 0x0102040810204080 // moves column-0 bits into the top byte
	tileRowTop  = 0x8080808080808080 // top bit of every byte
	tileDiagHi  = 0x00AA00AA00AA00AA
	tileDiagMid = 0x0000CCCC0000CCCC
	tileDiagLow = 0x00000000F0F0F0F0
	tileKeepHi  = 0xAA55AA55AA55AA55
	tileKeepMid = 0xCCCC3333CCCC3333
	tileKeepLow = 0xF0F0F0F00F0F0F0F
)

// Get returns cell (r, c). Both coordinates must be in [0, 8).
func (t Tile) Get(r, c int) bool {
	return t>>(uint(r)*8+uint(c))&1 == 1
}

// Set returns the tile with cell (r, c) set to v.
func (t Tile) Set(r, c int, v bool) Tile {
	bit := Tile(1) << (uint(r)*8 + uint(c))
	if v {
		return t | bit
	}
	return t &^ bit
}

// Row returns row r as a byte, column 0 in the low bit.
func (t Tile) Row(r int) byte {
	return byte(t >> (uint(r) * 8))
}

// SetRow returns the tile with row r replaced by b.
func (t Tile) SetRow(r int, b byte) Tile {
	sh := uint(r) * 8
	return t&^(Tile(0xff)<<sh) | Tile(b)<<sh
}

// Column compresses column c into a byte, row 0 in the low bit.
func (t Tile) Column(c int) byte {
	return byte(((uint64(t) >> uint(c) & tileColumn0) * tileGather) >> 56)
}

// SetColumn returns the tile with column c replaced by b (bit r of b
// becomes cell (r, c)).
func (t Tile) SetColumn(c int, b byte) Tile {
	spread := Tile(spreadColumn0(b)) << uint(c)
	return t&^(Tile(tileColumn0)<<uint(c)) | spread
}

// spreadColumn0 places bit r of b at bit position r*8.
func spreadColumn0(b byte) uint64 {
	return (uint64(b) * tileGather & tileRowTop) >> 7
}

// SpreadRow returns the tile in which every row equals b.
func SpreadRow(b byte) Tile {
	return Tile(uint64(b) * tileColumn0)
}

// SpreadColumn returns the tile in which every column equals b:
// row r is all ones when bit r of b is set, all zeros otherwise.
func SpreadColumn(b byte) Tile {
	return Tile(spreadColumn0(b) * 0xff)
}

// Transpose returns the matrix transpose of t, exchanging rows and
// columns with three delta swaps.
func (t Tile) Transpose() Tile {
	x := uint64(t)
	x = x&tileKeepHi | x&tileDiagHi<<7 | x>>7&tileDiagHi
	x = x&tileKeepMid | x&tileDiagMid<<14 | x>>14&tileDiagMid
	x = x&tileKeepLow | x&tileDiagLow<<28 | x>>28&tileDiagLow
	return Tile(x)
}

// Count returns the number of set cells.
func (t Tile) Count() int {
	return Count64(uint64(t))
}
