package gridmenu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

// MenuConfig is fixed when the menu is created. Rows or Columns may be
// constants.Unbounded, but not both.
type MenuConfig struct {
	Rows       int
	Columns    int
	ItemWidth  int
	ItemHeight int
	PadX       int
	PadY       int

	// ShadowRadius > 0 draws a blurred drop shadow under every item.
	ShadowRadius int
	ShadowColor  color.NRGBA

	NormalColor   color.Color
	SelectedColor color.Color
	DisabledColor color.NRGBA
	TextColor     color.NRGBA

	// Optional replacements for the generated surfaces.
	NormalBackground   *canvas.Surface
	SelectedBackground *canvas.Surface
	DisabledOverlay    *canvas.Surface

	// Text defaults to the bundled font.
	Text canvas.TextRenderer
	// Cache may be shared between menus. When nil the menu owns a private one.
	Cache *BackgroundCache
}

func DefaultMenuConfig(rows, columns, itemWidth, itemHeight int) MenuConfig {
	return MenuConfig{
		Rows:          rows,
		Columns:       columns,
		ItemWidth:     itemWidth,
		ItemHeight:    itemHeight,
		PadX:          constants.DefaultPadX,
		PadY:          constants.DefaultPadY,
		ShadowColor:   DefaultShadowColor,
		NormalColor:   DefaultNormalColor,
		SelectedColor: DefaultSelectedColor,
		DisabledColor: DefaultDisabledColor,
		TextColor:     DefaultTextColor,
	}
}

// ThemedMenuConfig is DefaultMenuConfig with the colors of the active theme.
func ThemedMenuConfig(rows, columns, itemWidth, itemHeight int) MenuConfig {
	cfg := DefaultMenuConfig(rows, columns, itemWidth, itemHeight)
	theme := internal.GetTheme()
	if theme.IsZero() {
		return cfg
	}
	cfg.NormalColor = theme.NormalColor
	cfg.SelectedColor = theme.SelectedColor
	cfg.TextColor = theme.TextColor
	if theme.DisabledColor.A != 0 {
		cfg.DisabledColor = theme.DisabledColor
	}
	return cfg
}

func (c MenuConfig) validate() error {
	if c.Rows == constants.Unbounded && c.Columns == constants.Unbounded {
		return ErrBothAxesUnbounded
	}
	if !validAxis(c.Rows) || !validAxis(c.Columns) {
		return fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidDimensions, c.Rows, c.Columns)
	}
	if c.ItemWidth <= 0 || c.ItemHeight <= 0 {
		return fmt.Errorf("%w: item size %dx%d", ErrInvalidDimensions, c.ItemWidth, c.ItemHeight)
	}
	if c.PadX < 0 || c.PadY < 0 || c.ShadowRadius < 0 {
		return fmt.Errorf("%w: negative padding or shadow", ErrInvalidDimensions)
	}
	return nil
}

func validAxis(n int) bool {
	return n == constants.Unbounded || n > 0
}

// Menu is a grid of selectable items drawn into a destination surface.
// It is not safe for concurrent use.
type Menu struct {
	cfg    MenuConfig
	dst    *canvas.Surface
	items  []*Item
	text   canvas.TextRenderer
	logger *slog.Logger

	selection int
	startItem int

	cache      *BackgroundCache
	ownsCache  bool
	normalBg   *canvas.Surface
	selectedBg *canvas.Surface
	disabled   *canvas.Surface
	shadow     *canvas.Surface

	destroyed bool
}

// NewMenu creates an empty menu drawing into dst. The menu holds a
// reference on dst until Destroy.
func NewMenu(cfg MenuConfig, dst *canvas.Surface) (*Menu, error) {
	logger := internal.GetInternalLogger()

	if err := cfg.validate(); err != nil {
		logger.Debug("Rejected menu configuration", "rows", cfg.Rows, "columns", cfg.Columns, "error", err)
		return nil, err
	}
	if dst == nil || dst.Released() {
		return nil, fmt.Errorf("%w: no destination surface", ErrInvalidDimensions)
	}

	defaults := DefaultMenuConfig(cfg.Rows, cfg.Columns, cfg.ItemWidth, cfg.ItemHeight)
	if cfg.NormalColor == nil {
		cfg.NormalColor = defaults.NormalColor
	}
	if cfg.SelectedColor == nil {
		cfg.SelectedColor = defaults.SelectedColor
	}
	if cfg.DisabledColor == (color.NRGBA{}) {
		cfg.DisabledColor = defaults.DisabledColor
	}
	if cfg.ShadowColor == (color.NRGBA{}) {
		cfg.ShadowColor = defaults.ShadowColor
	}
	if cfg.TextColor == (color.NRGBA{}) {
		cfg.TextColor = defaults.TextColor
	}

	m := &Menu{
		cfg:    cfg,
		dst:    dst.Ref(),
		text:   cfg.Text,
		logger: logger,
		cache:  cfg.Cache,
	}
	if m.text == nil {
		m.text = canvas.DefaultFontBook()
	}
	if m.cache == nil {
		m.cache = NewBackgroundCache()
		m.ownsCache = true
	}
	m.normalBg = fitSurface(cfg.NormalBackground, cfg.ItemWidth, cfg.ItemHeight)
	m.selectedBg = fitSurface(cfg.SelectedBackground, cfg.ItemWidth, cfg.ItemHeight)
	m.disabled = fitSurface(cfg.DisabledOverlay, cfg.ItemWidth, cfg.ItemHeight)

	logger.Debug("Created menu",
		"rows", cfg.Rows,
		"columns", cfg.Columns,
		"item_width", cfg.ItemWidth,
		"item_height", cfg.ItemHeight,
		"surface", dst.Bounds().String())

	return m, nil
}

func (m *Menu) mustBeAlive() {
	if m.destroyed {
		panic(ErrMenuDestroyed)
	}
}

func (m *Menu) capacity() int {
	if m.cfg.Rows == constants.Unbounded || m.cfg.Columns == constants.Unbounded {
		return -1
	}
	return m.cfg.Rows * m.cfg.Columns
}

// AddItem appends a text item and returns its index, or InvalidItem when
// the grid is full.
func (m *Menu) AddItem(label string, textSize float64) int {
	idx, err := m.AddItemWithOptions(ItemOptions{Label: label, TextSize: textSize})
	if err != nil {
		return InvalidItem
	}
	return idx
}

func (m *Menu) AddItemWithOptions(opts ItemOptions) (int, error) {
	m.mustBeAlive()

	if c := m.capacity(); c >= 0 && len(m.items) >= c {
		m.logger.Debug("Menu full, item rejected", "label", opts.Label, "capacity", c)
		return InvalidItem, fmt.Errorf("%w: capacity %d", ErrMenuFull, c)
	}

	item := &Item{
		ID:        opts.ID,
		Label:     opts.Label,
		TextSize:  opts.TextSize,
		TextColor: m.cfg.TextColor,
		Alignment: opts.Alignment,
		Wrap:      opts.Wrap,
		width:     m.cfg.ItemWidth,
		height:    m.cfg.ItemHeight,
		padX:      constants.DefaultItemPadX,
		padY:      constants.DefaultItemPadY,
		Metadata:  opts.Metadata,
		index:     len(m.items),
		enabled:   !opts.Disabled,
		drawer:    opts.Drawer,
	}
	if opts.TextColor != nil {
		item.TextColor = *opts.TextColor
	}
	if opts.Width > 0 {
		item.width = opts.Width
	}
	if opts.Height > 0 {
		item.height = opts.Height
	}
	if opts.Padding != nil {
		item.padX, item.padY = opts.Padding.X, opts.Padding.Y
	}
	item.normalBg = fitSurface(opts.NormalBackground, item.width, item.height)
	item.selectedBg = fitSurface(opts.SelectedBackground, item.width, item.height)

	m.items = append(m.items, item)

	if opts.Image != nil {
		if err := m.SetItemImage(item.index, opts.Image, opts.ImagePosition); err != nil {
			return item.index, err
		}
	}

	m.ensureEnabledSelection()
	return item.index, nil
}

// SetItemImage attaches img to the item, replacing any previous image.
// The image is scaled once here to fit the item's content box.
func (m *Menu) SetItemImage(index int, img *canvas.Surface, pos ImagePosition) error {
	m.mustBeAlive()

	item, err := m.item(index)
	if err != nil {
		return err
	}
	if item.image != nil {
		item.image.Release()
		item.image = nil
	}
	item.imagePos = pos
	if img == nil || img.Width() == 0 || img.Height() == 0 {
		return nil
	}

	cb := item.ContentBox(image.Rect(0, 0, item.width, item.height))
	w, h := fitImage(img.Width(), img.Height(), cb.Dx(), cb.Dy(), pos)
	if w == img.Width() && h == img.Height() {
		item.image = img.Ref()
	} else {
		item.image = img.Scaled(w, h)
	}
	return nil
}

// fitImage scales so the side perpendicular to the anchoring edge spans
// the content box, keeping the aspect ratio.
func fitImage(iw, ih, cw, ch int, pos ImagePosition) (int, int) {
	switch pos {
	case ImageTop, ImageBottom:
		if cw <= 0 {
			return 0, 0
		}
		return cw, max(1, ih*cw/iw)
	default:
		if ch <= 0 {
			return 0, 0
		}
		return max(1, iw*ch/ih), ch
	}
}

func (m *Menu) SetItemEnabled(index int, enabled bool) error {
	m.mustBeAlive()

	item, err := m.item(index)
	if err != nil {
		return err
	}
	item.enabled = enabled
	m.ensureEnabledSelection()
	return nil
}

func (m *Menu) item(index int) (*Item, error) {
	if index < 0 || index >= len(m.items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrItemIndex, index, len(m.items))
	}
	return m.items[index], nil
}

// Item returns the item at index, or nil.
func (m *Menu) Item(index int) *Item {
	item, err := m.item(index)
	if err != nil {
		return nil
	}
	return item
}

func (m *Menu) Len() int {
	return len(m.items)
}

// Selection is the selected item index, or InvalidItem for an empty menu.
func (m *Menu) Selection() int {
	if len(m.items) == 0 {
		return InvalidItem
	}
	return m.selection
}

func (m *Menu) StartItem() int {
	return m.startItem
}

func (m *Menu) Config() MenuConfig {
	return m.cfg
}

func (m *Menu) Cache() *BackgroundCache {
	return m.cache
}

// Surface returns the destination surface with a new reference that the
// caller must Release.
func (m *Menu) Surface() *canvas.Surface {
	m.mustBeAlive()
	return m.dst.Ref()
}

// Destroy releases the destination surface and every image and background
// the menu holds. Using the menu afterwards panics.
func (m *Menu) Destroy() {
	if m.destroyed {
		return
	}
	for _, item := range m.items {
		item.release()
	}
	for _, s := range []*canvas.Surface{m.normalBg, m.selectedBg, m.disabled, m.shadow} {
		if s != nil {
			s.Release()
		}
	}
	m.normalBg, m.selectedBg, m.disabled, m.shadow = nil, nil, nil, nil

	if m.ownsCache {
		stats := m.cache.Stats()
		m.logger.Debug("Releasing background cache", "generated", stats.Generated, "hits", stats.Hits)
		m.cache.Release()
	}
	m.dst.Release()
	m.destroyed = true
}

// ensureBackgrounds resolves the shared surfaces on first use. Every
// surface the menu keeps is referenced, whether it came from the config
// or from the cache.
func (m *Menu) ensureBackgrounds() {
	w, h := m.cfg.ItemWidth, m.cfg.ItemHeight

	if m.normalBg == nil {
		m.normalBg = m.cache.Button(w, h, m.cfg.NormalColor).Ref()
	}
	if m.selectedBg == nil {
		m.selectedBg = m.cache.Button(w, h, m.cfg.SelectedColor).Ref()
	}
	if m.disabled == nil {
		m.disabled = m.cache.Disabled(w, h, m.cfg.DisabledColor).Ref()
	}
	if m.cfg.ShadowRadius > 0 && m.shadow == nil {
		if m.cfg.NormalBackground != nil {
			m.shadow = CreateShadow(m.normalBg, m.cfg.ShadowRadius, m.cfg.ShadowColor)
		} else {
			m.shadow = m.cache.Shadow(w, h, m.cfg.NormalColor, m.cfg.ShadowRadius, m.cfg.ShadowColor).Ref()
		}
	}
}

// fitSurface references s when it already has the given size and scales a
// copy once otherwise, so drawing never resamples.
func fitSurface(s *canvas.Surface, width, height int) *canvas.Surface {
	if s == nil {
		return nil
	}
	if s.Width() == width && s.Height() == height {
		return s.Ref()
	}
	return s.Scaled(width, height)
}

// itemSurfaces are the menu's shared backgrounds at one item size.
type itemSurfaces struct {
	normal   *canvas.Surface
	selected *canvas.Surface
	disabled *canvas.Surface
	shadow   *canvas.Surface
}

func (s *itemSurfaces) release() {
	for _, surface := range []*canvas.Surface{s.normal, s.selected, s.disabled, s.shadow} {
		if surface != nil {
			surface.Release()
		}
	}
	*s = itemSurfaces{}
}

// surfacesFor returns the backgrounds to draw item with. Items of the
// default size share the menu's surfaces; any other size gets its own set,
// resolved through the cache the first time the item is drawn.
func (m *Menu) surfacesFor(item *Item) itemSurfaces {
	m.ensureBackgrounds()

	if item.width == m.cfg.ItemWidth && item.height == m.cfg.ItemHeight {
		return itemSurfaces{normal: m.normalBg, selected: m.selectedBg, disabled: m.disabled, shadow: m.shadow}
	}
	if item.sized != nil {
		return *item.sized
	}

	w, h := item.width, item.height
	sized := &itemSurfaces{}
	if m.cfg.NormalBackground != nil {
		sized.normal = m.cfg.NormalBackground.Scaled(w, h)
	} else {
		sized.normal = m.cache.Button(w, h, m.cfg.NormalColor).Ref()
	}
	if m.cfg.SelectedBackground != nil {
		sized.selected = m.cfg.SelectedBackground.Scaled(w, h)
	} else {
		sized.selected = m.cache.Button(w, h, m.cfg.SelectedColor).Ref()
	}
	if m.cfg.DisabledOverlay != nil {
		sized.disabled = m.cfg.DisabledOverlay.Scaled(w, h)
	} else {
		sized.disabled = m.cache.Disabled(w, h, m.cfg.DisabledColor).Ref()
	}
	if m.cfg.ShadowRadius > 0 {
		if m.cfg.NormalBackground != nil {
			sized.shadow = CreateShadow(sized.normal, m.cfg.ShadowRadius, m.cfg.ShadowColor)
		} else {
			sized.shadow = m.cache.Shadow(w, h, m.cfg.NormalColor, m.cfg.ShadowRadius, m.cfg.ShadowColor).Ref()
		}
	}

	m.logger.Debug("Resolved backgrounds for item size", "index", item.index, "width", w, "height", h)
	item.sized = sized
	return *sized
}
