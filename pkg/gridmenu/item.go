package gridmenu

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
)

// Alignment places the label inside an item's content box.
// The zero value is AlignMiddleLeft.
type Alignment int

const (
	AlignMiddleLeft Alignment = iota
	AlignTopLeft
	AlignTopCenter
	AlignTopRight
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

type VerticalAlign int

const (
	VerticalTop VerticalAlign = iota
	VerticalMiddle
	VerticalBottom
)

type HorizontalAlign int

const (
	HorizontalLeft HorizontalAlign = iota
	HorizontalCenter
	HorizontalRight
)

var alignments = map[Alignment]struct {
	v VerticalAlign
	h HorizontalAlign
}{
	AlignTopLeft:      {VerticalTop, HorizontalLeft},
	AlignTopCenter:    {VerticalTop, HorizontalCenter},
	AlignTopRight:     {VerticalTop, HorizontalRight},
	AlignMiddleLeft:   {VerticalMiddle, HorizontalLeft},
	AlignMiddleCenter: {VerticalMiddle, HorizontalCenter},
	AlignMiddleRight:  {VerticalMiddle, HorizontalRight},
	AlignBottomLeft:   {VerticalBottom, HorizontalLeft},
	AlignBottomCenter: {VerticalBottom, HorizontalCenter},
	AlignBottomRight:  {VerticalBottom, HorizontalRight},
}

func (a Alignment) Vertical() VerticalAlign {
	return alignments[a].v
}

func (a Alignment) Horizontal() HorizontalAlign {
	return alignments[a].h
}

// ImagePosition is the content box edge an item image is anchored to.
type ImagePosition int

const (
	ImageLeft ImagePosition = iota
	ImageRight
	ImageTop
	ImageBottom
)

// WrapMode controls labels wider than the content box.
type WrapMode int

const (
	WrapTruncate WrapMode = iota
	WrapNone
)

// Item is one entry of a Menu. Its index is fixed when it is added.
type Item struct {
	ID        string
	Label     string
	TextSize  float64
	TextColor color.NRGBA
	Alignment Alignment
	Wrap      WrapMode
	Metadata  interface{}

	// geometry is fixed when the item is added; the scaled image and the
	// sized backgrounds are derived from it
	width  int
	height int
	padX   int
	padY   int

	index      int
	enabled    bool
	image      *canvas.Surface
	imagePos   ImagePosition
	normalBg   *canvas.Surface
	selectedBg *canvas.Surface
	sized      *itemSurfaces
	drawer     ItemDrawer
}

// ItemOptions describes an item for AddItemWithOptions. Zero values pick
// the menu defaults.
type ItemOptions struct {
	ID        string
	Label     string
	TextSize  float64 // <= 0 sizes the text from the content height
	TextColor *color.NRGBA
	Alignment Alignment
	Wrap      WrapMode

	Image         *canvas.Surface
	ImagePosition ImagePosition

	Disabled bool

	Width   int
	Height  int
	Padding *image.Point

	NormalBackground   *canvas.Surface
	SelectedBackground *canvas.Surface

	Drawer   ItemDrawer
	Metadata interface{}
}

func (i *Item) Width() int {
	return i.width
}

func (i *Item) Height() int {
	return i.height
}

// Padding is the inset of the content box from the item's edges.
func (i *Item) Padding() image.Point {
	return image.Pt(i.padX, i.padY)
}

func (i *Item) Index() int {
	return i.index
}

func (i *Item) Enabled() bool {
	return i.enabled
}

func (i *Item) Image() *canvas.Surface {
	return i.image
}

func (i *Item) ImagePosition() ImagePosition {
	return i.imagePos
}

// ContentBox is box inset by the item's internal padding.
func (i *Item) ContentBox(box image.Rectangle) image.Rectangle {
	cb := image.Rect(box.Min.X+i.padX, box.Min.Y+i.padY, box.Max.X-i.padX, box.Max.Y-i.padY)
	if cb.Dx() < 0 || cb.Dy() < 0 {
		return image.Rectangle{Min: cb.Min, Max: cb.Min}
	}
	return cb
}

// textSize resolves an automatic size to 60% of the content height.
func (i *Item) textSize() float64 {
	if i.TextSize > 0 {
		return i.TextSize
	}
	h := i.height - 2*i.padY
	if h <= 0 {
		return 1
	}
	return float64(h) * 0.6
}

func (i *Item) release() {
	for _, s := range []*canvas.Surface{i.image, i.normalBg, i.selectedBg} {
		if s != nil {
			s.Release()
		}
	}
	i.image, i.normalBg, i.selectedBg = nil, nil, nil
	if i.sized != nil {
		i.sized.release()
		i.sized = nil
	}
}
