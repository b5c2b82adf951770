package bitvec

import "testing"

func TestTileGetSet(t *testing.T) {
	var tl Tile
	tl = tl.Set(0, 0, true)
	tl = tl.Set(3, 5, true)
	tl = tl.Set(7, 7, true)

	if !tl.Get(0, 0) || !tl.Get(3, 5) || !tl.Get(7, 7) {
		t.Error("set cells should read back true")
	}
	if tl.Get(5, 3) {
		t.Error("(5,3) was never set")
	}
	if tl.Count() != 3 {
		t.Errorf("count = %d, want 3", tl.Count())
	}

	tl = tl.Set(3, 5, false)
	if tl.Get(3, 5) {
		t.Error("(3,5) should be clear after reset")
	}
}

func TestTileRowColumn(t *testing.T) {
	var tl Tile
	tl = tl.SetRow(2, 0b10110001)
	if got := tl.Row(2); got != 0b10110001 {
		t.Errorf("row 2 = %#08b, want 10110001", got)
	}
	// Row bits land in the matching columns.
	for c := 0; c < 8; c++ {
		want := 0b10110001>>c&1 == 1
		if tl.Get(2, c) != want {
			t.Errorf("cell (2,%d) = %v, want %v", c, tl.Get(2, c), want)
		}
	}

	tl = 0
	tl = tl.SetColumn(4, 0b01100101)
	if got := tl.Column(4); got != 0b01100101 {
		t.Errorf("column 4 = %#08b, want 01100101", got)
	}
	for r := 0; r < 8; r++ {
		want := 0b01100101>>r&1 == 1
		if tl.Get(r, 4) != want {
			t.Errorf("cell (%d,4) = %v, want %v", r, tl.Get(r, 4), want)
		}
	}

	// SetColumn replaces, never merges.
	tl = tl.SetColumn(4, 0)
	if tl != 0 {
		t.Errorf("clearing column 4 should empty the tile, got %#016x", uint64(tl))
	}
}

func TestTileSpread(t *testing.T) {
	rt := SpreadRow(0b00001111)
	for r := 0; r < 8; r++ {
		if rt.Row(r) != 0b00001111 {
			t.Errorf("SpreadRow: row %d = %#08b", r, rt.Row(r))
		}
	}

	ct := SpreadColumn(0b00000101)
	for r := 0; r < 8; r++ {
		want := byte(0)
		if 0b00000101>>r&1 == 1 {
			want = 0xff
		}
		if ct.Row(r) != want {
			t.Errorf("SpreadColumn: row %d = %#08b, want %#08b", r, ct.Row(r), want)
		}
	}
}

func TestTileTranspose(t *testing.T) {
	var tl Tile
	cells := [][2]int{{0, 1}, {2, 7}, {4, 4}, {6, 0}, {7, 3}}
	for _, rc := range cells {
		tl = tl.Set(rc[0], rc[1], true)
	}

	tr := tl.Transpose()
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if tr.Get(c, r) != tl.Get(r, c) {
				t.Errorf("transpose mismatch at (%d,%d)", r, c)
			}
		}
	}

	// Involution.
	if tr.Transpose() != tl {
		t.Error("double transpose should restore the tile")
	}

	// Rows become columns.
	if tr.Column(2) != tl.Row(2) {
		t.Errorf("column 2 of transpose = %#08b, want row 2 = %#08b", tr.Column(2), tl.Row(2))
	}
}
