package definition

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/i18n"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

// BuildOptions supplies what Build needs from outside the file. Nil
// fields use i18n, canvas.LoadImage and the theme font.
type BuildOptions struct {
	Localize  func(messageID, fallback string) string
	LoadImage func(path string) (*canvas.Surface, error)
	Text      canvas.TextRenderer
	Cache     *gridmenu.BackgroundCache
}

// NewSurface allocates a destination surface of the definition's size.
func (d *Definition) NewSurface() *canvas.Surface {
	return canvas.NewSurface(d.Surface.Width, d.Surface.Height)
}

// Config turns the definition into a MenuConfig on top of the active theme.
func (d *Definition) Config() (gridmenu.MenuConfig, error) {
	cfg := gridmenu.ThemedMenuConfig(d.Rows, d.Columns, d.ItemWidth, d.ItemHeight)
	cfg.PadX, cfg.PadY = d.PadX, d.PadY
	cfg.ShadowRadius = d.ShadowRadius

	if d.Theme.Normal != "" {
		c, err := internal.ParseHexColor(d.Theme.Normal)
		if err != nil {
			return cfg, err
		}
		cfg.NormalColor = c
	}
	if d.Theme.Selected != "" {
		c, err := internal.ParseHexColor(d.Theme.Selected)
		if err != nil {
			return cfg, err
		}
		cfg.SelectedColor = c
	}
	if d.Theme.Text != "" {
		c, err := internal.ParseHexColor(d.Theme.Text)
		if err != nil {
			return cfg, err
		}
		cfg.TextColor = c
	}
	if d.Theme.Disabled != "" {
		c, err := internal.ParseHexColor(d.Theme.Disabled)
		if err != nil {
			return cfg, err
		}
		cfg.DisabledColor = c
	}
	return cfg, nil
}

// Build validates the definition and creates its menu drawing into dst.
// Items whose image cannot be loaded are kept without one.
func (d *Definition) Build(dst *canvas.Surface, opts BuildOptions) (*gridmenu.Menu, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid menu definition: %w", errors.Join(errs...))
	}

	if opts.Localize == nil {
		opts.Localize = i18n.GetStringOr
	}
	if opts.LoadImage == nil {
		opts.LoadImage = canvas.LoadImage
	}

	cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	cfg.Text = opts.Text
	cfg.Cache = opts.Cache

	menu, err := gridmenu.NewMenu(cfg, dst)
	if err != nil {
		return nil, err
	}

	logger := internal.GetInternalLogger()
	for i, item := range d.Items {
		itemOpts, err := d.itemOptions(item, opts)
		if err != nil {
			menu.Destroy()
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		_, err = menu.AddItemWithOptions(itemOpts)
		if itemOpts.Image != nil {
			itemOpts.Image.Release()
		}
		if err != nil {
			menu.Destroy()
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	logger.Debug("Built menu from definition", "title", d.Title, "items", menu.Len())
	return menu, nil
}

func (d *Definition) itemOptions(item Item, opts BuildOptions) (gridmenu.ItemOptions, error) {
	align, err := ParseAlignment(item.Alignment)
	if err != nil {
		return gridmenu.ItemOptions{}, err
	}
	pos, err := ParseImagePosition(item.ImagePosition)
	if err != nil {
		return gridmenu.ItemOptions{}, err
	}
	wrap, err := ParseWrap(item.Wrap)
	if err != nil {
		return gridmenu.ItemOptions{}, err
	}

	label := item.Label
	if item.MessageID != "" {
		label = opts.Localize(item.MessageID, item.Label)
	}

	out := gridmenu.ItemOptions{
		ID:            item.ID,
		Label:         label,
		TextSize:      item.TextSize,
		Alignment:     align,
		Wrap:          wrap,
		ImagePosition: pos,
		Disabled:      item.Disabled,
		Width:         item.Width,
		Height:        item.Height,
		Metadata:      item,
	}
	if item.TextColor != "" {
		c, err := internal.ParseHexColor(item.TextColor)
		if err != nil {
			return gridmenu.ItemOptions{}, err
		}
		out.TextColor = &c
	}

	if item.Image != "" {
		path := item.Image
		if !filepath.IsAbs(path) && d.dir != "" {
			path = filepath.Join(d.dir, path)
		}
		img, err := opts.LoadImage(path)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load item image", "id", item.ID, "path", path, "error", err)
		} else {
			out.Image = img
		}
	}
	return out, nil
}
