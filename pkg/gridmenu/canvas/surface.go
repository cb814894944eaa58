// Package canvas provides the pixel surfaces the menu draws into.
//
// A Surface is an RGBA buffer with shared ownership: every holder takes a
// reference with Ref and gives it back with Release. The pixels are dropped
// when the last reference goes away.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"go.uber.org/atomic"
	xdraw "golang.org/x/image/draw"
)

type Surface struct {
	img    *image.RGBA
	refs   *atomic.Int32
	parent *Surface
}

// NewSurface creates a transparent surface holding one reference.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		refs: atomic.NewInt32(1),
	}
}

// FromImage copies any decoded image into a new surface.
func FromImage(src image.Image) *Surface {
	b := src.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	draw.Draw(s.img, s.img.Bounds(), src, b.Min, draw.Src)
	return s
}

// SubSurface returns a surface sharing pixels with s, restricted to r.
// The sub-surface keeps s alive until it is released.
func (s *Surface) SubSurface(r image.Rectangle) *Surface {
	sub, ok := s.img.SubImage(r).(*image.RGBA)
	if !ok {
		sub = image.NewRGBA(image.Rectangle{})
	}
	return &Surface{
		img:    sub,
		refs:   atomic.NewInt32(1),
		parent: s.Ref(),
	}
}

func (s *Surface) Ref() *Surface {
	s.refs.Inc()
	return s
}

// Release drops one reference and reports whether the surface was freed.
func (s *Surface) Release() bool {
	n := s.refs.Dec()
	if n > 0 {
		return false
	}
	if n < 0 {
		panic("canvas: surface released more times than referenced")
	}
	s.img = nil
	if s.parent != nil {
		s.parent.Release()
		s.parent = nil
	}
	return true
}

func (s *Surface) Refs() int32 {
	return s.refs.Load()
}

func (s *Surface) Released() bool {
	return s.img == nil
}

// RGBA exposes the backing image. It is nil once the surface is released.
func (s *Surface) RGBA() *image.RGBA {
	return s.img
}

func (s *Surface) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

func (s *Surface) Width() int {
	return s.Bounds().Dx()
}

func (s *Surface) Height() int {
	return s.Bounds().Dy()
}

func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Clear makes r fully transparent.
func (s *Surface) Clear(r image.Rectangle) {
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Fill composites a solid color over r.
func (s *Surface) Fill(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// Paint scales src to exactly cover dr and composites it with op.
// Sampling is clamped to the source edges, so partially covered border
// pixels keep the source's alpha instead of fading out.
func (s *Surface) Paint(src *Surface, dr image.Rectangle, op draw.Op) {
	if src == nil || src.img == nil || dr.Empty() {
		return
	}

	sr := src.img.Bounds()
	if sr.Empty() {
		return
	}
	if sr.Dx() == dr.Dx() && sr.Dy() == dr.Dy() {
		draw.Draw(s.img, dr, src.img, sr.Min, op)
		return
	}
	xdraw.ApproxBiLinear.Scale(s.img, dr, src.img, sr, op, nil)
}

// PaintAt composites src unscaled with its origin at p.
func (s *Surface) PaintAt(src *Surface, p image.Point, op draw.Op) {
	if src == nil || src.img == nil {
		return
	}
	sr := src.img.Bounds()
	draw.Draw(s.img, image.Rectangle{Min: p, Max: p.Add(sr.Size())}, src.img, sr.Min, op)
}

// Scaled returns a new surface holding src resampled to width x height.
// Use it to pay for high quality scaling once instead of every frame.
func (s *Surface) Scaled(width, height int) *Surface {
	out := NewSurface(width, height)
	if s.img == nil || width <= 0 || height <= 0 {
		return out
	}
	xdraw.CatmullRom.Scale(out.img, out.img.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
	return out
}
