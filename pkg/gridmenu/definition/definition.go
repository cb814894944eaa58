// Package definition reads menus described in TOML, YAML or JSON files.
package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown definition format")

// Definition is a whole menu. Rows or Columns of -1 leave that axis
// unbounded.
type Definition struct {
	Title        string `toml:"title" yaml:"title" json:"title"`
	Rows         int    `toml:"rows" yaml:"rows" json:"rows"`
	Columns      int    `toml:"columns" yaml:"columns" json:"columns"`
	ItemWidth    int    `toml:"item_width" yaml:"item_width" json:"item_width"`
	ItemHeight   int    `toml:"item_height" yaml:"item_height" json:"item_height"`
	PadX         int    `toml:"pad_x" yaml:"pad_x" json:"pad_x"`
	PadY         int    `toml:"pad_y" yaml:"pad_y" json:"pad_y"`
	ShadowRadius int    `toml:"shadow_radius" yaml:"shadow_radius" json:"shadow_radius"`

	Surface Size   `toml:"surface" yaml:"surface" json:"surface"`
	Theme   Theme  `toml:"theme" yaml:"theme" json:"theme"`
	Items   []Item `toml:"items" yaml:"items" json:"items"`

	// dir is where relative image paths are resolved from.
	dir string
}

type Size struct {
	Width  int `toml:"width" yaml:"width" json:"width"`
	Height int `toml:"height" yaml:"height" json:"height"`
}

// Theme colors are hex strings. Empty keeps the menu default.
type Theme struct {
	Normal   string `toml:"normal" yaml:"normal" json:"normal"`
	Selected string `toml:"selected" yaml:"selected" json:"selected"`
	Text     string `toml:"text" yaml:"text" json:"text"`
	Disabled string `toml:"disabled" yaml:"disabled" json:"disabled"`
}

type Item struct {
	ID string `toml:"id" yaml:"id" json:"id"`
	// MessageID, when set, looks the label up in the loaded translations
	// and falls back to Label.
	MessageID     string  `toml:"message_id" yaml:"message_id" json:"message_id"`
	Label         string  `toml:"label" yaml:"label" json:"label"`
	TextSize      float64 `toml:"text_size" yaml:"text_size" json:"text_size"`
	TextColor     string  `toml:"text_color" yaml:"text_color" json:"text_color"`
	Alignment     string  `toml:"alignment" yaml:"alignment" json:"alignment"`
	Wrap          string  `toml:"wrap" yaml:"wrap" json:"wrap"`
	Image         string  `toml:"image" yaml:"image" json:"image"`
	ImagePosition string  `toml:"image_position" yaml:"image_position" json:"image_position"`
	Disabled      bool    `toml:"disabled" yaml:"disabled" json:"disabled"`
	Width         int     `toml:"width" yaml:"width" json:"width"`
	Height        int     `toml:"height" yaml:"height" json:"height"`
}

// Default is a single column list that fills a 640x480 screen.
func Default() Definition {
	return Definition{
		Rows:       constants.Unbounded,
		Columns:    1,
		ItemWidth:  600,
		ItemHeight: 60,
		PadX:       constants.DefaultPadX,
		PadY:       constants.DefaultPadY,
		Surface:    Size{Width: 640, Height: 480},
	}
}

// Load reads path, picking the format from its extension. Values missing
// from the file keep their Default.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu definition: %w", err)
	}

	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.dir = filepath.Dir(path)

	internal.GetInternalLogger().Debug("Loaded menu definition",
		"path", path,
		"format", string(format),
		"items", len(def.Items))
	return def, nil
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func Parse(data []byte, format Format) (*Definition, error) {
	def := Default()

	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &def)
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	case FormatJSON:
		err = json.Unmarshal(data, &def)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s menu definition: %w", format, err)
	}
	return &def, nil
}

// FieldError names the field a Validate problem was found in.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate reports every problem with the definition, or nil.
func (d *Definition) Validate() []error {
	var errs []error
	add := func(field string, err error) {
		errs = append(errs, &FieldError{Field: field, Err: err})
	}

	if !validAxis(d.Rows) {
		add("rows", fmt.Errorf("%w: %d", gridmenu.ErrInvalidDimensions, d.Rows))
	}
	if !validAxis(d.Columns) {
		add("columns", fmt.Errorf("%w: %d", gridmenu.ErrInvalidDimensions, d.Columns))
	}
	if d.Rows == constants.Unbounded && d.Columns == constants.Unbounded {
		add("rows", gridmenu.ErrBothAxesUnbounded)
	}
	if d.ItemWidth <= 0 || d.ItemHeight <= 0 {
		add("item_width", fmt.Errorf("%w: item %dx%d", gridmenu.ErrInvalidDimensions, d.ItemWidth, d.ItemHeight))
	}
	if d.PadX < 0 || d.PadY < 0 || d.ShadowRadius < 0 {
		add("pad_x", fmt.Errorf("%w: negative padding", gridmenu.ErrInvalidDimensions))
	}
	if d.Surface.Width <= 0 || d.Surface.Height <= 0 {
		add("surface", fmt.Errorf("%w: surface %dx%d", gridmenu.ErrInvalidDimensions, d.Surface.Width, d.Surface.Height))
	}

	for field, hex := range map[string]string{
		"theme.normal":   d.Theme.Normal,
		"theme.selected": d.Theme.Selected,
		"theme.text":     d.Theme.Text,
		"theme.disabled": d.Theme.Disabled,
	} {
		if hex == "" {
			continue
		}
		if _, err := internal.ParseHexColor(hex); err != nil {
			add(field, err)
		}
	}

	if d.Rows > 0 && d.Columns > 0 && len(d.Items) > d.Rows*d.Columns {
		add("items", fmt.Errorf("%w: %d items for %d cells", gridmenu.ErrMenuFull, len(d.Items), d.Rows*d.Columns))
	}

	ids := map[string]int{}
	for i, item := range d.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.ID != "" {
			if prev, ok := ids[item.ID]; ok {
				add(field+".id", fmt.Errorf("duplicate id %q, first used by items[%d]", item.ID, prev))
			}
			ids[item.ID] = i
		}
		if item.Label == "" && item.MessageID == "" && item.Image == "" {
			add(field, errors.New("needs a label, message_id or image"))
		}
		if _, err := ParseAlignment(item.Alignment); err != nil {
			add(field+".alignment", err)
		}
		if _, err := ParseImagePosition(item.ImagePosition); err != nil {
			add(field+".image_position", err)
		}
		if _, err := ParseWrap(item.Wrap); err != nil {
			add(field+".wrap", err)
		}
		if item.TextColor != "" {
			if _, err := internal.ParseHexColor(item.TextColor); err != nil {
				add(field+".text_color", err)
			}
		}
		if item.Width < 0 || item.Height < 0 {
			add(field, fmt.Errorf("%w: item %dx%d", gridmenu.ErrInvalidDimensions, item.Width, item.Height))
		}
	}
	return errs
}

func validAxis(n int) bool {
	return n == constants.Unbounded || n > 0
}

var alignmentNames = map[string]gridmenu.Alignment{
	"":              gridmenu.AlignMiddleLeft,
	"top-left":      gridmenu.AlignTopLeft,
	"top-center":    gridmenu.AlignTopCenter,
	"top-right":     gridmenu.AlignTopRight,
	"middle-left":   gridmenu.AlignMiddleLeft,
	"middle-center": gridmenu.AlignMiddleCenter,
	"center":        gridmenu.AlignMiddleCenter,
	"middle-right":  gridmenu.AlignMiddleRight,
	"bottom-left":   gridmenu.AlignBottomLeft,
	"bottom-center": gridmenu.AlignBottomCenter,
	"bottom-right":  gridmenu.AlignBottomRight,
}

func ParseAlignment(s string) (gridmenu.Alignment, error) {
	a, ok := alignmentNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
	return a, nil
}

func ParseImagePosition(s string) (gridmenu.ImagePosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return gridmenu.ImageLeft, nil
	case "right":
		return gridmenu.ImageRight, nil
	case "top":
		return gridmenu.ImageTop, nil
	case "bottom":
		return gridmenu.ImageBottom, nil
	}
	return 0, fmt.Errorf("unknown image position %q", s)
}

func ParseWrap(s string) (gridmenu.WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate":
		return gridmenu.WrapTruncate, nil
	case "none", "clip":
		return gridmenu.WrapNone, nil
	}
	return 0, fmt.Errorf("unknown wrap mode %q", s)
}
