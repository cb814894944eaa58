package gridmenu

import (
	"testing"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
)

func TestGridPositionRowsUnbounded(t *testing.T) {
	for k := 1; k <= 6; k++ {
		for i := 0; i < 40; i++ {
			row, col := gridPosition(i, constants.Unbounded, k)
			if row != i/k || col != i%k {
				t.Fatalf("columns=%d index=%d: got (%d,%d), want (%d,%d)", k, i, row, col, i/k, i%k)
			}
			if back := gridIndex(row, col, constants.Unbounded, k); back != i {
				t.Fatalf("columns=%d: gridIndex(%d,%d) = %d, want %d", k, row, col, back, i)
			}
		}
	}
}

func TestGridPositionColumnsUnbounded(t *testing.T) {
	for k := 1; k <= 6; k++ {
		for i := 0; i < 40; i++ {
			row, col := gridPosition(i, k, constants.Unbounded)
			if col != i/k || row != i%k {
				t.Fatalf("rows=%d index=%d: got (%d,%d), want (%d,%d)", k, i, row, col, i%k, i/k)
			}
			if back := gridIndex(row, col, k, constants.Unbounded); back != i {
				t.Fatalf("rows=%d: gridIndex(%d,%d) = %d, want %d", k, row, col, back, i)
			}
		}
	}
}

func TestGridExtent(t *testing.T) {
	tests := []struct {
		name               string
		n, rows, cols      int
		wantRows, wantCols int
	}{
		{"empty", 0, constants.Unbounded, 3, 0, 0},
		{"partial row", 2, constants.Unbounded, 3, 1, 2},
		{"full rows", 6, constants.Unbounded, 3, 2, 3},
		{"partial last row", 7, constants.Unbounded, 3, 3, 3},
		{"single row strip", 5, 1, constants.Unbounded, 1, 5},
		{"partial column", 3, 4, constants.Unbounded, 3, 1},
		{"columns wrap", 9, 4, constants.Unbounded, 4, 3},
		{"both bounded", 5, 2, 3, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := gridExtent(tt.n, tt.rows, tt.cols)
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("gridExtent(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.n, tt.rows, tt.cols, rows, cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestVisibleAndItemBounds(t *testing.T) {
	m, _ := newTestMenu(t, menuSpec{
		rows: 1, cols: constants.Unbounded,
		itemW: 100, itemH: 50,
		surfW: 250, surfH: 60,
		items: 5,
	})

	rows, cols := m.visible()
	if rows != 1 || cols != 2 {
		t.Fatalf("visible() = (%d, %d), want (1, 2)", rows, cols)
	}

	tests := []struct {
		index  int
		wantX  int
		wantOK bool
	}{
		{0, 3, true},
		{1, 109, true},
		{2, 215, true},
		{3, 321, false},
	}
	for _, tt := range tests {
		box, ok := m.ItemBounds(tt.index)
		if ok != tt.wantOK {
			t.Errorf("ItemBounds(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
		}
		if box.Min.X != tt.wantX || box.Min.Y != 2 || box.Dx() != 100 || box.Dy() != 50 {
			t.Errorf("ItemBounds(%d) = %v, want x=%d y=2 100x50", tt.index, box, tt.wantX)
		}
	}
}
