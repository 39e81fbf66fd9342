package dict

import "testing"

func TestConnectionTableTransposed(t *testing.T) {
	// 2x3 matrix, stored column-major (transposed)
	ct := ConnectionTable{
		Row: 2,
		Col: 3,
		Vec: []int16{
			10, 11, // column 0
			20, 21, // column 1
			30, 31, // column 2
		},
	}
	cases := []struct {
		row, col int
		want     int16
	}{
		{0, 0, 10}, {1, 0, 11},
		{0, 1, 20}, {1, 1, 21},
		{0, 2, 30}, {1, 2, 31},
	}
	for _, c := range cases {
		if got := ct.At(c.row, c.col); got != c.want {
			t.Errorf("At(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestConnectionTableOutOfRange(t *testing.T) {
	ct := ConnectionTable{Row: 2, Col: 2, Vec: []int16{1, 2, 3, 4}}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		if got := ct.At(c[0], c[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0 for out-of-range", c[0], c[1], got)
		}
	}
}

func TestConnectionTableEmpty(t *testing.T) {
	var ct ConnectionTable
	if got := ct.At(0, 0); got != 0 {
		t.Errorf("At on empty table = %d, want 0", got)
	}
}
