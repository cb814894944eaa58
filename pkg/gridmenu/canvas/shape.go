package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
)

// ColorFunc colors a filled shape per pixel, in surface coordinates.
type ColorFunc func(x, y int) color.Color

// FillRoundRect fills the rectangle (minX,minY)-(maxX,maxY) with corners of
// the given radius. paint is a color.Color or a ColorFunc.
func (s *Surface) FillRoundRect(minX, minY, maxX, maxY, radius float64, paint interface{}) {
	s.fillPath(paint, func(p rasterx.Adder) {
		rasterx.AddRoundRect(minX, minY, maxX, maxY, radius, radius, 0, rasterx.RoundGap, p)
	})
}

func (s *Surface) FillCircle(cx, cy, r float64, paint interface{}) {
	s.fillPath(paint, func(p rasterx.Adder) {
		rasterx.AddCircle(cx, cy, r, p)
	})
}

func (s *Surface) fillPath(paint interface{}, add func(p rasterx.Adder)) {
	if s.img == nil {
		return
	}
	b := s.img.Bounds()
	if b.Empty() {
		return
	}

	// rasterx works in the coordinate space of a zero based target
	target := s.img
	if b.Min != (image.Point{}) {
		target = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}

	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), target, target.Bounds())
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)

	switch p := paint.(type) {
	case ColorFunc:
		filler.SetColor(rasterx.ColorFunc(p))
	case color.Color:
		filler.SetColor(p)
	default:
		return
	}

	add(filler)
	filler.Draw()

	if target != s.img {
		draw.Draw(s.img, b, target, image.Point{}, draw.Over)
	}
}

// BlurAlpha returns a copy of s where every pixel takes the color c with an
// alpha equal to the box-blurred alpha of s. It is used to build soft shadows.
func (s *Surface) BlurAlpha(radius int, c color.NRGBA) *Surface {
	b := s.Bounds()
	w, h := b.Dx(), b.Dy()
	out := NewSurface(w, h)
	if w == 0 || h == 0 {
		return out
	}

	alpha := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alpha[y*w+x] = int(s.img.RGBAAt(b.Min.X+x, b.Min.Y+y).A)
		}
	}
	if radius > 0 {
		alpha = boxBlur(alpha, w, h, radius)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := alpha[y*w+x] * int(c.A) / 255
			out.img.Set(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)})
		}
	}
	return out
}

// boxBlur runs a horizontal then a vertical running-sum pass.
func boxBlur(src []int, w, h, r int) []int {
	tmp := make([]int, len(src))
	dst := make([]int, len(src))
	span := 2*r + 1

	for y := 0; y < h; y++ {
		sum := 0
		for x := -r; x <= r; x++ {
			sum += src[y*w+clampInt(x, 0, w-1)]
		}
		for x := 0; x < w; x++ {
			tmp[y*w+x] = sum / span
			sum += src[y*w+clampInt(x+r+1, 0, w-1)] - src[y*w+clampInt(x-r, 0, w-1)]
		}
	}

	for x := 0; x < w; x++ {
		sum := 0
		for y := -r; y <= r; y++ {
			sum += tmp[clampInt(y, 0, h-1)*w+x]
		}
		for y := 0; y < h; y++ {
			dst[y*w+x] = sum / span
			sum += tmp[clampInt(y+r+1, 0, h-1)*w+x] - tmp[clampInt(y-r, 0, h-1)*w+x]
		}
	}
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
