package internal

import (
	"image/color"
	"sync"
)

// Theme holds the colors menus are generated from.
type Theme struct {
	NormalColor   color.RGBA  // base of the unselected button gradient
	SelectedColor color.RGBA  // base of the selected button gradient
	TextColor     color.NRGBA // label color, alpha included
	DisabledColor color.NRGBA // overlay on disabled items
	PageFromColor color.RGBA  // page background, top left
	PageToColor   color.RGBA  // page background, bottom right

	FontPath            string
	BackgroundImagePath string
}

var DefaultTheme = Theme{
	NormalColor:   color.RGBA{A: 255},
	SelectedColor: color.RGBA{R: 13, G: 77, B: 153, A: 255},
	TextColor:     color.NRGBA{R: 255, G: 255, B: 255, A: 204},
	DisabledColor: color.NRGBA{R: 128, G: 128, B: 128, A: 160},
	PageFromColor: HexToColor(0x1A1A2E),
	PageToColor:   HexToColor(0x000000),
}

var (
	themeMu      sync.RWMutex
	currentTheme Theme
)

func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func (t Theme) IsZero() bool {
	return t == Theme{}
}
