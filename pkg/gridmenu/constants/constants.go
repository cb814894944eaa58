package constants

import (
	"os"
	"time"
)

// Unbounded marks a grid axis that grows with the number of items.
const Unbounded = -1

// Default geometry of a menu and its items, in pixels.
const (
	DefaultPadX = 3
	DefaultPadY = 2

	DefaultItemPadX = 10
	DefaultItemPadY = 5

	ButtonArcInset  = 10
	ButtonArcRadius = 7
)

// Input timing used by the navigator and the run loop.
const (
	DefaultInputDelay     = 20 * time.Millisecond
	DefaultRepeatDelay    = 150 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
	FrameDelay            = 16 * time.Millisecond
)

const (
	DevModeEnvVar        = "ENVIRONMENT"
	DebugEnvVar          = "GRIDMENU_DEBUG"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	FallbackFontEnvVar   = "FALLBACK_FONT"
)

func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) == "DEV"
}
