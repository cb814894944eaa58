package canvas

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const Ellipsis = "..."

type TextExtents struct {
	Width   int
	Ascent  int
	Descent int
}

func (e TextExtents) Height() int {
	return e.Ascent + e.Descent
}

// TextRenderer measures and draws single lines of text at a pixel size.
type TextRenderer interface {
	Measure(text string, size float64) TextExtents
	DrawText(dst *Surface, text string, size float64, x, baseline int, c color.Color)
}

// FontBook is a TextRenderer over one OpenType font. Faces are created
// lazily per size and kept for the life of the book.
type FontBook struct {
	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

var (
	defaultBook     *FontBook
	defaultBookOnce sync.Once
)

// DefaultFontBook returns a shared book backed by the bundled Go Bold font.
func DefaultFontBook() *FontBook {
	defaultBookOnce.Do(func() {
		book, err := NewFontBook(gobold.TTF)
		if err != nil {
			panic(fmt.Sprintf("canvas: bundled font failed to parse: %v", err))
		}
		defaultBook = book
	})
	return defaultBook
}

func NewFontBook(data []byte) (*FontBook, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontBook{font: f, faces: make(map[float64]font.Face)}, nil
}

func (b *FontBook) face(size float64) font.Face {
	if size <= 0 {
		size = 1
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if f, ok := b.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(b.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	b.faces[size] = f
	return f
}

func (b *FontBook) Measure(text string, size float64) TextExtents {
	f := b.face(size)
	if f == nil {
		return TextExtents{}
	}
	m := f.Metrics()
	return TextExtents{
		Width:   font.MeasureString(f, text).Ceil(),
		Ascent:  m.Ascent.Ceil(),
		Descent: m.Descent.Ceil(),
	}
}

func (b *FontBook) DrawText(dst *Surface, text string, size float64, x, baseline int, c color.Color) {
	f := b.face(size)
	if f == nil || dst == nil || dst.img == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst.img,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

// Truncate shortens text until it fits maxWidth, appending an ellipsis
// when anything was cut. It returns "" if not even the ellipsis fits.
func Truncate(r TextRenderer, text string, size float64, maxWidth int) string {
	if r.Measure(text, size).Width <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		candidate := string(runes[:n]) + Ellipsis
		if r.Measure(candidate, size).Width <= maxWidth {
			return candidate
		}
	}
	return ""
}
