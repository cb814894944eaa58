package cannoli

import (
	"image/color"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

// FontPath is where the Cannoli system font lives on the SD card.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		NormalColor:   internal.HexToColor(0x1E2329),
		SelectedColor: internal.HexToColor(0x008080),
		TextColor:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		DisabledColor: color.NRGBA{R: 128, G: 128, B: 128, A: 160},
		PageFromColor: internal.HexToColor(0xFFFFFF),
		PageToColor:   internal.HexToColor(0xB0D8D8),
		FontPath:      fontPath,
	}
}
