package gridmenu

import (
	"fmt"
	"image"
	"time"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
)

type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

func DirectionFromButton(button constants.VirtualButton) (Direction, bool) {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp, true
	case constants.VirtualButtonDown:
		return DirectionDown, true
	case constants.VirtualButtonLeft:
		return DirectionLeft, true
	case constants.VirtualButtonRight:
		return DirectionRight, true
	}
	return 0, false
}

// HandleInput moves the selection one item in dir, skipping disabled items.
// If only disabled items lie between the selection and the edge of the
// grid nothing changes. The menu is redrawn either way and the returned
// rectangle is the region of the surface that needs presenting.
func (m *Menu) HandleInput(dir Direction) (int, image.Rectangle) {
	m.mustBeAlive()

	if len(m.items) == 0 {
		m.Redraw()
		return InvalidItem, m.dst.Bounds()
	}

	prevSelection, prevStart := m.selection, m.startItem
	for {
		if !m.step(dir) {
			if m.selection != prevSelection {
				m.logger.Debug("Only disabled items ahead, reverting",
					"direction", dir.String(),
					"selection", prevSelection)
			}
			m.selection, m.startItem = prevSelection, prevStart
			break
		}
		if m.items[m.selection].enabled {
			break
		}
	}

	m.Redraw()
	return m.selection, m.dst.Bounds()
}

// step performs one raw move and keeps the selection inside the viewport.
// It reports false when the move would leave the grid.
func (m *Menu) step(dir Direction) bool {
	row, col := m.position(m.selection)
	switch dir {
	case DirectionUp:
		row--
	case DirectionDown:
		row++
	case DirectionLeft:
		col--
	case DirectionRight:
		col++
	default:
		return false
	}

	maxRows, maxCols := m.extent()
	if row < 0 || col < 0 || row >= maxRows || col >= maxCols {
		return false
	}
	index := m.indexAt(row, col)
	if index >= len(m.items) {
		return false
	}

	m.selection = index

	startRow, startCol := m.position(m.startItem)
	visRows, visCols := m.visible()
	switch {
	case row < startRow:
		startRow--
	case row >= startRow+visRows:
		startRow++
	}
	switch {
	case col < startCol:
		startCol--
	case col >= startCol+visCols:
		startCol++
	}
	m.startItem = m.indexAt(startRow, startCol)
	return true
}

// SetSelection selects the item at index and scrolls the least amount
// needed to show it.
func (m *Menu) SetSelection(index int) error {
	m.mustBeAlive()

	item, err := m.item(index)
	if err != nil {
		return err
	}
	if !item.enabled {
		return fmt.Errorf("%w: %d", ErrItemDisabled, index)
	}

	m.selectIndex(index)
	m.Redraw()
	return nil
}

// SelectByID selects the first item whose ID is id.
func (m *Menu) SelectByID(id string) error {
	m.mustBeAlive()

	for _, item := range m.items {
		if item.ID == id {
			return m.SetSelection(item.index)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

func (m *Menu) selectIndex(index int) {
	row, col := m.position(index)
	startRow, startCol := m.position(m.startItem)
	visRows, visCols := m.visible()

	if row < startRow {
		startRow = row
	} else if row >= startRow+visRows {
		startRow = row - visRows + 1
	}
	if col < startCol {
		startCol = col
	} else if col >= startCol+visCols {
		startCol = col - visCols + 1
	}

	m.selection = index
	m.startItem = m.indexAt(startRow, startCol)
}

// ensureEnabledSelection moves a selection resting on a disabled item to
// the first enabled one.
func (m *Menu) ensureEnabledSelection() {
	if len(m.items) == 0 || m.items[m.selection].enabled {
		return
	}
	for _, item := range m.items {
		if item.enabled {
			m.selectIndex(item.index)
			return
		}
	}
}

// Navigator turns held directional buttons into repeated menu moves.
// All timing state lives in its fields so several menus can each own one.
type Navigator struct {
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	InputDelay     time.Duration

	held          Direction
	holding       bool
	pressedAt     time.Time
	lastRepeat    time.Time
	lastInput     time.Time
	lastDirection Direction
}

func NewNavigator() *Navigator {
	return &Navigator{
		RepeatDelay:    constants.DefaultRepeatDelay,
		RepeatInterval: constants.DefaultRepeatInterval,
		InputDelay:     constants.DefaultInputDelay,
	}
}

// Press reports whether a fresh press of dir at now should move the menu.
// Repeated presses of the same direction inside InputDelay are dropped.
func (n *Navigator) Press(now time.Time, dir Direction) bool {
	debounced := !n.lastInput.IsZero() &&
		dir == n.lastDirection &&
		now.Sub(n.lastInput) < n.InputDelay

	n.held = dir
	n.holding = true
	n.pressedAt = now
	n.lastRepeat = now

	if debounced {
		return false
	}
	n.lastInput = now
	n.lastDirection = dir
	return true
}

// Release stops repeating dir.
func (n *Navigator) Release(dir Direction) {
	if n.holding && n.held == dir {
		n.holding = false
	}
}

// Tick returns the direction to move when a held button is due to repeat.
func (n *Navigator) Tick(now time.Time) (Direction, bool) {
	if !n.holding {
		return 0, false
	}
	if now.Sub(n.pressedAt) < n.RepeatDelay {
		return 0, false
	}
	if now.Sub(n.lastRepeat) < n.RepeatInterval {
		return 0, false
	}
	n.lastRepeat = now
	n.lastInput = now
	n.lastDirection = n.held
	return n.held, true
}

// Holding reports the direction currently held, if any.
func (n *Navigator) Holding() (Direction, bool) {
	return n.held, n.holding
}
