package definition

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

func TestMain(m *testing.M) {
	internal.SetLogDir("")
	os.Exit(m.Run())
}

const tomlMenu = `
title = "Main"
rows = 2
columns = -1
item_width = 120
item_height = 80

[theme]
selected = "#FF8800"

[[items]]
id = "play"
message_id = "menu_play"
label = "Play"
alignment = "middle-center"

[[items]]
id = "settings"
label = "Settings"
disabled = true
`

const yamlMenu = `
title: Main
rows: 2
columns: -1
item_width: 120
item_height: 80
theme:
  selected: "#FF8800"
items:
  - id: play
    message_id: menu_play
    label: Play
    alignment: middle-center
  - id: settings
    label: Settings
    disabled: true
`

const jsonMenu = `{
  "title": "Main",
  "rows": 2,
  "columns": -1,
  "item_width": 120,
  "item_height": 80,
  "theme": {"selected": "#FF8800"},
  "items": [
    {"id": "play", "message_id": "menu_play", "label": "Play", "alignment": "middle-center"},
    {"id": "settings", "label": "Settings", "disabled": true}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"menu.toml", tomlMenu},
		{"menu.yaml", yamlMenu},
		{"menu.yml", yamlMenu},
		{"menu.json", jsonMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Load(writeFile(t, dir, tt.name, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if def.Title != "Main" || def.Rows != 2 || def.Columns != constants.Unbounded {
				t.Errorf("grid = %q %dx%d", def.Title, def.Rows, def.Columns)
			}
			if def.ItemWidth != 120 || def.ItemHeight != 80 {
				t.Errorf("item size = %dx%d, want 120x80", def.ItemWidth, def.ItemHeight)
			}
			// not in the file, so the defaults stay
			if def.PadX != constants.DefaultPadX || def.Surface.Width != 640 || def.Surface.Height != 480 {
				t.Errorf("defaults lost: pad_x=%d surface=%+v", def.PadX, def.Surface)
			}
			if len(def.Items) != 2 || def.Items[0].MessageID != "menu_play" || !def.Items[1].Disabled {
				t.Errorf("items = %+v", def.Items)
			}
			if errs := def.Validate(); len(errs) != 0 {
				t.Errorf("Validate() = %v", errs)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(writeFile(t, dir, "menu.ini", "rows=1")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(.ini) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not exist", err)
	}
	if _, err := Load(writeFile(t, dir, "broken.json", "{")); err == nil {
		t.Error("Load(broken json) succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *Definition)
		wantField string
		wantErr   error
	}{
		{"both unbounded", func(d *Definition) { d.Rows, d.Columns = -1, -1 }, "rows", gridmenu.ErrBothAxesUnbounded},
		{"zero columns", func(d *Definition) { d.Columns = 0 }, "columns", gridmenu.ErrInvalidDimensions},
		{"item size", func(d *Definition) { d.ItemHeight = 0 }, "item_width", gridmenu.ErrInvalidDimensions},
		{"surface", func(d *Definition) { d.Surface.Width = 0 }, "surface", gridmenu.ErrInvalidDimensions},
		{"too many items", func(d *Definition) {
			d.Rows, d.Columns = 1, 1
			d.Items = []Item{{Label: "a"}, {Label: "b"}}
		}, "items", gridmenu.ErrMenuFull},
		{"bad color", func(d *Definition) { d.Theme.Normal = "#12" }, "theme.normal", nil},
		{"bad alignment", func(d *Definition) { d.Items = []Item{{Label: "a", Alignment: "sideways"}} }, "items[0].alignment", nil},
		{"bad image position", func(d *Definition) { d.Items = []Item{{Label: "a", ImagePosition: "behind"}} }, "items[0].image_position", nil},
		{"empty item", func(d *Definition) { d.Items = []Item{{ID: "x"}} }, "items[0]", nil},
		{"duplicate id", func(d *Definition) { d.Items = []Item{{ID: "x", Label: "a"}, {ID: "x", Label: "b"}} }, "items[1].id", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Default()
			tt.mutate(&def)

			errs := def.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate() found nothing")
			}

			var found bool
			for _, err := range errs {
				var fe *FieldError
				if errors.As(err, &fe) && fe.Field == tt.wantField {
					found = true
					if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
						t.Errorf("%s error = %v, want %v", fe.Field, err, tt.wantErr)
					}
				}
			}
			if !found {
				t.Errorf("no error for %s in %v", tt.wantField, errs)
			}
		})
	}
}

func TestParseNames(t *testing.T) {
	aligns := map[string]gridmenu.Alignment{
		"":              gridmenu.AlignMiddleLeft,
		"Top-Left":      gridmenu.AlignTopLeft,
		"center":        gridmenu.AlignMiddleCenter,
		"bottom-right ": gridmenu.AlignBottomRight,
	}
	for in, want := range aligns {
		if got, err := ParseAlignment(in); err != nil || got != want {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if got, _ := ParseImagePosition("BOTTOM"); got != gridmenu.ImageBottom {
		t.Errorf("ParseImagePosition(BOTTOM) = %v", got)
	}
	if got, _ := ParseWrap("clip"); got != gridmenu.WrapNone {
		t.Errorf("ParseWrap(clip) = %v", got)
	}
	if _, err := ParseWrap("wrap"); err == nil {
		t.Error("ParseWrap(wrap) accepted")
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "icon.png"), 16, 16)
	path := writeFile(t, dir, "menu.toml", tomlMenu+`
[[items]]
id = "icon"
label = "Icon"
image = "icon.png"
image_position = "top"

[[items]]
id = "broken"
label = "Broken"
image = "missing.png"
`)

	def, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	dst := def.NewSurface()
	defer dst.Release()

	var asked []string
	menu, err := def.Build(dst, BuildOptions{
		Localize: func(id, fallback string) string {
			asked = append(asked, id)
			return "Jugar"
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer menu.Destroy()

	if menu.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", menu.Len())
	}
	if got := menu.Item(0).Label; got != "Jugar" || len(asked) != 1 || asked[0] != "menu_play" {
		t.Errorf("label = %q asked %v, want the menu_play translation", got, asked)
	}
	if got := menu.Item(0).Alignment; got != gridmenu.AlignMiddleCenter {
		t.Errorf("alignment = %v", got)
	}
	if menu.Item(1).Enabled() {
		t.Error("settings should be disabled")
	}
	if menu.Item(2).Image() == nil || menu.Item(2).ImagePosition() != gridmenu.ImageTop {
		t.Error("icon image not attached at the top")
	}
	if menu.Item(3).Image() != nil {
		t.Error("missing image should leave the item without one")
	}

	selected := menu.Config().SelectedColor
	if r, g, b, _ := selected.RGBA(); r>>8 != 0xFF || g>>8 != 0x88 || b != 0 {
		t.Errorf("selected color = %v, want #FF8800", selected)
	}

	if err := menu.SelectByID("icon"); err != nil {
		t.Errorf("SelectByID(icon) error = %v", err)
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	def := Default()
	def.Rows, def.Columns = constants.Unbounded, constants.Unbounded

	dst := canvas.NewSurface(10, 10)
	defer dst.Release()

	if _, err := def.Build(dst, BuildOptions{}); !errors.Is(err, gridmenu.ErrBothAxesUnbounded) {
		t.Errorf("Build() error = %v, want ErrBothAxesUnbounded", err)
	}
}
