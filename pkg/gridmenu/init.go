package gridmenu

import (
	"log/slog"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform/cannoli"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform/nextui"
)

// ApplyTheme makes ThemedMenuConfig, FontBook and the page background
// follow the given preset. Presenters call it before building menus.
func ApplyTheme(isNextUI, isCannoli bool) {
	switch {
	case isNextUI:
		internal.SetTheme(nextui.InitNextUITheme())
	case isCannoli:
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.FontPath))
	default:
		internal.SetTheme(internal.DefaultTheme)
	}
}

// FontBook returns the label font for the active theme.
func FontBook() *canvas.FontBook {
	return internal.LoadFontBook()
}

// ScaledTextSize adapts a text size picked for a 1024 pixel wide screen.
func ScaledTextSize(base float64, screenWidth int) float64 {
	return internal.CalculateFontSizeForResolution(base, screenWidth)
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

// SetLogDir sets where the log file goes; "" logs to stdout only.
func SetLogDir(dir string) {
	internal.SetLogDir(dir)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
