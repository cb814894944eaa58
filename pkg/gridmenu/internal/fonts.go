package internal

import (
	"os"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
)

// LoadFontBook picks the label font: FALLBACK_FONT first, then the theme
// font, then the bundled one.
func LoadFontBook() *canvas.FontBook {
	for _, path := range []string{os.Getenv(constants.FallbackFontEnvVar), GetTheme().FontPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			GetInternalLogger().Debug("Failed to read font, trying next", "path", path, "error", err)
			continue
		}
		book, err := canvas.NewFontBook(data)
		if err != nil {
			GetInternalLogger().Debug("Failed to parse font, trying next", "path", path, "error", err)
			continue
		}
		return book
	}
	return canvas.DefaultFontBook()
}

// CalculateFontSizeForResolution scales a size chosen for a 1024 pixel wide
// screen. Growth above that width is damped.
func CalculateFontSizeForResolution(baseSize float64, screenWidth int) float64 {
	const referenceWidth = 1024
	scaleFactor := float64(screenWidth) / referenceWidth

	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return baseSize * scaleFactor
}
