package nextui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFromNextVal(t *testing.T) {
	theme := ThemeFromNextVal(&NextVal{
		Color2:  "0x9B2257",
		Color3:  "0x1E2329",
		Color4:  "0xFFFFFF",
		BGColor: "not-a-color",
	})

	if want := (color.RGBA{R: 0x9B, G: 0x22, B: 0x57, A: 255}); theme.SelectedColor != want {
		t.Errorf("SelectedColor = %v, want %v", theme.SelectedColor, want)
	}
	if theme.TextColor.A != 255 || theme.TextColor.R != 255 {
		t.Errorf("TextColor = %v, want opaque white", theme.TextColor)
	}
	if want := (color.RGBA{R: 255, A: 255}); theme.PageFromColor != want {
		t.Errorf("bad palette entry = %v, want red fallback", theme.PageFromColor)
	}
}

func TestInitStaticNextVal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nextval.json")
	if err := os.WriteFile(path, []byte(`{"font": 2, "color2": "0x00FF00"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	nv, err := InitStaticNextVal(path)
	if err != nil {
		t.Fatalf("InitStaticNextVal() error = %v", err)
	}
	if nv.Font != 2 || nv.Color2 != "0x00FF00" {
		t.Errorf("InitStaticNextVal() = %+v", nv)
	}

	if _, err := InitStaticNextVal(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}
