package gridmenu

import (
	"image"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
)

// A menu whose columns are unbounded fills each column top to bottom and
// grows to the right. Every other shape fills rows left to right.

func gridPosition(index, rows, columns int) (row, col int) {
	if columns == constants.Unbounded {
		return index % rows, index / rows
	}
	return index / columns, index % columns
}

func gridIndex(row, col, rows, columns int) int {
	if columns == constants.Unbounded {
		return col*rows + row
	}
	return row*columns + col
}

func gridExtent(n, rows, columns int) (maxRows, maxCols int) {
	if n == 0 {
		return 0, 0
	}
	if columns == constants.Unbounded {
		return min(n, rows), ceilDiv(n, rows)
	}
	return ceilDiv(n, columns), min(n, columns)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (m *Menu) position(index int) (int, int) {
	return gridPosition(index, m.cfg.Rows, m.cfg.Columns)
}

func (m *Menu) indexAt(row, col int) int {
	return gridIndex(row, col, m.cfg.Rows, m.cfg.Columns)
}

func (m *Menu) extent() (int, int) {
	return gridExtent(len(m.items), m.cfg.Rows, m.cfg.Columns)
}

func (m *Menu) cellSize() image.Point {
	return image.Pt(m.cfg.ItemWidth+2*m.cfg.PadX, m.cfg.ItemHeight+2*m.cfg.PadY)
}

// visible is the number of whole rows and columns that fit in the surface,
// never less than one.
func (m *Menu) visible() (rows, cols int) {
	cell := m.cellSize()
	b := m.dst.Bounds()
	return max(1, b.Dy()/cell.Y), max(1, b.Dx()/cell.X)
}

// ItemBounds is where the item at index is drawn in the current scroll
// position. ok is false if it lies outside the surface.
func (m *Menu) ItemBounds(index int) (image.Rectangle, bool) {
	m.mustBeAlive()

	item, err := m.item(index)
	if err != nil {
		return image.Rectangle{}, false
	}
	row, col := m.position(index)
	startRow, startCol := m.position(m.startItem)
	if row < startRow || col < startCol {
		return image.Rectangle{}, false
	}
	origin := m.cellOrigin(row-startRow, col-startCol)
	box := image.Rect(origin.X, origin.Y, origin.X+item.width, origin.Y+item.height)
	if !origin.In(m.dst.Bounds()) {
		return box, false
	}
	return box, true
}

// cellOrigin is the top left of the cell row/col places after the start.
func (m *Menu) cellOrigin(row, col int) image.Point {
	cell := m.cellSize()
	o := m.dst.Bounds().Min
	return image.Pt(
		o.X+m.cfg.PadX+col*cell.X,
		o.Y+m.cfg.PadY+row*cell.Y,
	)
}
