package gridmenu

import "errors"

// InvalidItem is returned in place of an item index when there is none.
const InvalidItem = -1

var (
	ErrBothAxesUnbounded = errors.New("rows and columns cannot both be unbounded")
	ErrInvalidDimensions = errors.New("invalid menu dimensions")
	ErrMenuFull          = errors.New("menu grid is full")
	ErrItemIndex         = errors.New("item index out of range")
	ErrItemDisabled      = errors.New("item is disabled")
	ErrUnknownItem       = errors.New("no item with that id")
	ErrMenuDestroyed     = errors.New("menu used after Destroy")
	ErrCancelled         = errors.New("operation cancelled by user")
)
