package nextui

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"strings"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

// NextVal is the settings dump printed by nextval.elf.
type NextVal struct {
	Font     int    `json:"font"`
	FontPath string `json:"fontPath"`
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
}

var defaultTheme = internal.Theme{
	NormalColor:         internal.HexToColor(0x1E2329),
	SelectedColor:       internal.HexToColor(0x9B2257),
	TextColor:           color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	DisabledColor:       color.NRGBA{R: 128, G: 128, B: 128, A: 160},
	PageFromColor:       internal.HexToColor(0x000000),
	PageToColor:         internal.HexToColor(0x1E2329),
	BackgroundImagePath: "/mnt/SDCARD/bg.png",
}

func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = InitStaticNextVal(os.Getenv("NEXTVAL_PATH"))
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		return defaultTheme
	}
	return ThemeFromNextVal(nv)
}

// ThemeFromNextVal maps the NextUI palette onto menu colors: color2 is the
// accent used for selection, color4 the text.
func ThemeFromNextVal(nv *NextVal) internal.Theme {
	text := parseHexColor(nv.Color4)

	theme := internal.Theme{
		NormalColor:   parseHexColor(nv.Color3),
		SelectedColor: parseHexColor(nv.Color2),
		TextColor:     color.NRGBA{R: text.R, G: text.G, B: text.B, A: 255},
		DisabledColor: defaultTheme.DisabledColor,
		PageFromColor: parseHexColor(nv.BGColor),
		PageToColor:   parseHexColor(nv.Color3),
		FontPath:      nv.FontPath,
	}

	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	} else {
		theme.BackgroundImagePath = "/mnt/SDCARD/bg.png"
	}
	return theme
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var nextval NextVal
	if err := json.Unmarshal(data, &nextval); err != nil {
		return nil, fmt.Errorf("error parsing JSON from file: %w", err)
	}
	return &nextval, nil
}

func loadNextVal() (*NextVal, error) {
	output, err := exec.Command("/mnt/SDCARD/.system/tg5040/bin/nextval.elf").Output()
	if err != nil {
		internal.GetInternalLogger().Error("Error executing command!", "error", err)
		return nil, err
	}

	var nextval NextVal
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(output))), &nextval); err != nil {
		internal.GetInternalLogger().Error("Error parsing JSON", "error", err)
		return nil, err
	}
	return &nextval, nil
}

// parseHexColor falls back to red so a bad palette entry is obvious.
func parseHexColor(hexStr string) color.RGBA {
	c, err := internal.ParseHexColor(hexStr)
	if err != nil {
		return color.RGBA{R: 255, A: 255}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
