package gridmenu

import (
	"image"
	"image/draw"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
)

// ItemDrawer draws one item. Items without their own drawer use DefaultDrawer.
type ItemDrawer interface {
	DrawItem(ctx DrawContext)
}

type ItemDrawerFunc func(ctx DrawContext)

func (f ItemDrawerFunc) DrawItem(ctx DrawContext) {
	f(ctx)
}

// DrawContext is what a drawer gets for one item. Target is clipped to Box.
type DrawContext struct {
	Menu     *Menu
	Item     *Item
	Selected bool
	Target   *canvas.Surface
	Box      image.Rectangle
	Text     canvas.TextRenderer
}

// DefaultDrawer paints background, image, label and, for disabled items,
// the disabled overlay, in that order.
type DefaultDrawer struct{}

func (DefaultDrawer) DrawItem(ctx DrawContext) {
	ctx.DrawBackground()
	ctx.DrawImage()
	ctx.DrawLabel()
	ctx.DrawDisabledOverlay()
}

func (ctx DrawContext) DrawBackground() {
	surfaces := ctx.Menu.surfacesFor(ctx.Item)
	bg := surfaces.normal
	if ctx.Selected {
		bg = surfaces.selected
		if ctx.Item.selectedBg != nil {
			bg = ctx.Item.selectedBg
		}
	} else if ctx.Item.normalBg != nil {
		bg = ctx.Item.normalBg
	}
	ctx.Target.Paint(bg, ctx.Box, draw.Over)
}

func (ctx DrawContext) DrawImage() {
	img := ctx.Item.image
	if img == nil {
		return
	}
	cb := ctx.Item.ContentBox(ctx.Box)
	content := ctx.Target.SubSurface(cb)
	defer content.Release()

	content.PaintAt(img, imageOrigin(cb, img.Bounds().Size(), ctx.Item.imagePos), draw.Over)
}

func (ctx DrawContext) DrawLabel() {
	item := ctx.Item
	if item.Label == "" {
		return
	}

	area := textArea(item.ContentBox(ctx.Box), item)
	if area.Empty() {
		return
	}

	size := item.textSize()
	label := item.Label
	if item.Wrap == WrapTruncate {
		label = canvas.Truncate(ctx.Text, label, size, area.Dx())
		if label == "" {
			return
		}
	}

	ext := ctx.Text.Measure(label, size)

	var baseline int
	switch item.Alignment.Vertical() {
	case VerticalTop:
		baseline = area.Min.Y + ext.Ascent
	case VerticalBottom:
		baseline = area.Max.Y - ext.Descent
	default:
		baseline = area.Min.Y + (area.Dy()-ext.Height())/2 + ext.Ascent
	}

	var x int
	switch item.Alignment.Horizontal() {
	case HorizontalCenter:
		x = area.Min.X + (area.Dx()-ext.Width)/2
	case HorizontalRight:
		x = area.Max.X - ext.Width
	default:
		x = area.Min.X
	}

	content := ctx.Target.SubSurface(area)
	defer content.Release()
	ctx.Text.DrawText(content, label, size, x, baseline, item.TextColor)
}

func (ctx DrawContext) DrawDisabledOverlay() {
	if ctx.Item.enabled {
		return
	}
	ctx.Target.Paint(ctx.Menu.surfacesFor(ctx.Item).disabled, ctx.Box, draw.Over)
}

func imageOrigin(cb image.Rectangle, size image.Point, pos ImagePosition) image.Point {
	switch pos {
	case ImageRight:
		return image.Pt(cb.Max.X-size.X, cb.Min.Y)
	case ImageBottom:
		return image.Pt(cb.Min.X, cb.Max.Y-size.Y)
	default:
		return cb.Min
	}
}

// textArea is the content box less the band taken by the item image.
func textArea(cb image.Rectangle, item *Item) image.Rectangle {
	if item.image == nil {
		return cb
	}
	size := item.image.Bounds().Size()
	gap := item.padX
	switch item.imagePos {
	case ImageLeft:
		cb.Min.X = min(cb.Max.X, cb.Min.X+size.X+gap)
	case ImageRight:
		cb.Max.X = max(cb.Min.X, cb.Max.X-size.X-gap)
	case ImageTop:
		cb.Min.Y = min(cb.Max.Y, cb.Min.Y+size.Y+item.padY)
	case ImageBottom:
		cb.Max.Y = max(cb.Min.Y, cb.Max.Y-size.Y-item.padY)
	}
	return cb
}

// Redraw clears the surface and draws every item that falls inside it,
// starting from the scroll position. Shadows go down first so no shadow
// covers a neighbouring item.
func (m *Menu) Redraw() {
	m.mustBeAlive()
	m.ensureBackgrounds()

	bounds := m.dst.Bounds()
	m.dst.Clear(bounds)

	type placed struct {
		item *Item
		box  image.Rectangle
	}
	var visible []placed

	maxRows, maxCols := m.extent()
	startRow, startCol := m.position(m.startItem)
	for row := startRow; row < maxRows; row++ {
		origin := m.cellOrigin(row-startRow, 0)
		if origin.Y >= bounds.Max.Y {
			break
		}
		for col := startCol; col < maxCols; col++ {
			origin = m.cellOrigin(row-startRow, col-startCol)
			if origin.X >= bounds.Max.X {
				break
			}
			index := m.indexAt(row, col)
			if index >= len(m.items) {
				continue
			}
			item := m.items[index]
			visible = append(visible, placed{item, image.Rect(origin.X, origin.Y, origin.X+item.width, origin.Y+item.height)})
		}
	}

	if r := m.cfg.ShadowRadius; r > 0 {
		for _, p := range visible {
			shadow := m.surfacesFor(p.item).shadow
			if shadow == nil {
				continue
			}
			shadowBox := image.Rect(p.box.Min.X-r, p.box.Min.Y-r, p.box.Max.X+r, p.box.Max.Y+r).Add(image.Pt(r/2, r/2))
			m.dst.Paint(shadow, shadowBox, draw.Over)
		}
	}

	for _, p := range visible {
		clip := p.box.Intersect(bounds)
		if clip.Empty() {
			continue
		}
		target := m.dst.SubSurface(clip)

		drawer := p.item.drawer
		if drawer == nil {
			drawer = DefaultDrawer{}
		}
		drawer.DrawItem(DrawContext{
			Menu:     m,
			Item:     p.item,
			Selected: p.item.index == m.selection,
			Target:   target,
			Box:      p.box,
			Text:     m.text,
		})

		target.Release()
	}
}
