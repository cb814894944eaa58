package gridmenu

import (
	"image/color"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

// FooterHelpItem is a button hint drawn at the bottom of the frame.
// ButtonName goes in the inner pill and HelpText to its right.
type FooterHelpItem struct {
	HelpText   string
	ButtonName string
}

const (
	footerHeight      = 30
	footerPillMargin  = 4
	footerEdgePadding = 10
	footerItemGap     = 20
	footerLabelGap    = 8
	footerTextSize    = 14
)

// splitFooterItems puts up to two hints on the left and two on the right.
func splitFooterItems(items []FooterHelpItem) (left, right []FooterHelpItem) {
	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		return items[0:1], nil
	case 2:
		return items[0:1], items[1:2]
	case 3:
		return items[0:2], items[2:3]
	default:
		return items[0:2], items[2:4]
	}
}

func innerPillWidth(text canvas.TextRenderer, name string, innerHeight int) int {
	w := text.Measure(name, footerTextSize).Width
	if w <= innerHeight-10 {
		return innerHeight
	}
	return w + 10
}

func footerGroupWidth(text canvas.TextRenderer, items []FooterHelpItem) int {
	inner := footerHeight - 2*footerPillMargin
	total := 2 * footerEdgePadding
	for i, item := range items {
		total += innerPillWidth(text, item.ButtonName, inner) + footerLabelGap
		total += text.Measure(item.HelpText, footerTextSize).Width
		if i < len(items)-1 {
			total += footerItemGap
		}
	}
	return total
}

// drawFooter renders the hints as one or two pills along the bottom edge.
// A single hint is centred.
func drawFooter(dst *canvas.Surface, text canvas.TextRenderer, items []FooterHelpItem, theme internal.Theme) {
	left, right := splitFooterItems(items)
	if len(left) == 0 {
		return
	}

	b := dst.Bounds()
	y := b.Max.Y - footerEdgePadding - footerHeight

	if len(right) == 0 {
		x := b.Min.X + (b.Dx()-footerGroupWidth(text, left))/2
		drawFooterGroup(dst, text, left, x, y, theme)
		return
	}

	drawFooterGroup(dst, text, left, b.Min.X+footerEdgePadding, y, theme)
	drawFooterGroup(dst, text, right, b.Max.X-footerEdgePadding-footerGroupWidth(text, right), y, theme)
}

func drawFooterGroup(dst *canvas.Surface, text canvas.TextRenderer, items []FooterHelpItem, x, y int, theme internal.Theme) {
	width := footerGroupWidth(text, items)
	dst.FillRoundRect(float64(x), float64(y), float64(x+width), float64(y+footerHeight), footerHeight/2, theme.SelectedColor)

	inner := footerHeight - 2*footerPillMargin
	innerColor := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	cx := x + footerEdgePadding
	for _, item := range items {
		pill := innerPillWidth(text, item.ButtonName, inner)
		top := y + footerPillMargin
		if pill == inner {
			dst.FillCircle(float64(cx)+float64(inner)/2, float64(top)+float64(inner)/2, float64(inner)/2, innerColor)
		} else {
			dst.FillRoundRect(float64(cx), float64(top), float64(cx+pill), float64(top+inner), float64(inner)/2, innerColor)
		}

		ext := text.Measure(item.ButtonName, footerTextSize)
		baseline := y + (footerHeight-ext.Height())/2 + ext.Ascent
		text.DrawText(dst, item.ButtonName, footerTextSize, cx+(pill-ext.Width)/2, baseline, theme.SelectedColor)

		cx += pill + footerLabelGap
		text.DrawText(dst, item.HelpText, footerTextSize, cx, baseline, theme.TextColor)
		cx += text.Measure(item.HelpText, footerTextSize).Width + footerItemGap
	}
}
