package gridmenu

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/atomic"
)

var (
	DefaultNormalColor   = color.RGBA{A: 255}
	DefaultSelectedColor = color.RGBA{R: 13, G: 77, B: 153, A: 255}
	DefaultDisabledColor = color.NRGBA{R: 128, G: 128, B: 128, A: 160}
	DefaultShadowColor   = color.NRGBA{A: 140}
	DefaultTextColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
)

// gradientStops are the lightness steps applied going down the button.
var gradientStops = []struct {
	at      float64
	valueUp float64
}{
	{0.0, 0},
	{0.3, 0.10},
	{0.7, 0.15},
	{1.0, 0.25},
}

const glareAlpha = 0.2

// CreateDefaultBackground draws a glossy button: a rounded rectangle with
// a vertical gradient that lightens toward the bottom, under a large soft
// highlight covering the top half.
func CreateDefaultBackground(width, height int, base color.Color) *canvas.Surface {
	s := canvas.NewSurface(width, height)
	if width <= 0 || height <= 0 {
		return s
	}

	ramp := gradientRamp(base, height)

	w, h := float64(width), float64(height)
	glareR := 4 * w
	glareCX, glareCY := w/2, -glareR+h/2
	white := colorful.Color{R: 1, G: 1, B: 1}

	paint := canvas.ColorFunc(func(x, y int) color.Color {
		c := ramp[clampIndex(y, len(ramp))]
		dx, dy := float64(x)+0.5-glareCX, float64(y)+0.5-glareCY
		if dx*dx+dy*dy <= glareR*glareR {
			c = c.BlendRgb(white, glareAlpha)
		}
		r, g, b := c.Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	})

	fillButtonShape(s, paint)
	return s
}

// CreateDisabledOverlay is the button shape filled with a flat translucent color.
func CreateDisabledOverlay(width, height int, c color.NRGBA) *canvas.Surface {
	s := canvas.NewSurface(width, height)
	if width > 0 && height > 0 {
		fillButtonShape(s, c)
	}
	return s
}

// CreateShadow blurs the alpha of bg into a shadow padded by radius on
// every side.
func CreateShadow(bg *canvas.Surface, radius int, c color.NRGBA) *canvas.Surface {
	padded := canvas.NewSurface(bg.Width()+2*radius, bg.Height()+2*radius)
	defer padded.Release()

	padded.PaintAt(bg, image.Pt(radius, radius), draw.Over)
	return padded.BlurAlpha(radius, c)
}

// CreatePageBackground is a diagonal gradient from the top left corner to
// the bottom right one.
func CreatePageBackground(width, height int, from, to color.Color) *canvas.Surface {
	s := canvas.NewSurface(width, height)
	if width <= 0 || height <= 0 {
		return s
	}

	cf, _ := colorful.MakeColor(opaque(from))
	ct, _ := colorful.MakeColor(opaque(to))
	span := float64(width + height - 2)
	if span <= 0 {
		span = 1
	}

	img := s.RGBA()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := cf.BlendRgb(ct, float64(x+y)/span).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return s
}

func fillButtonShape(s *canvas.Surface, paint interface{}) {
	inset := float64(constants.ButtonArcInset - constants.ButtonArcRadius)
	w, h := float64(s.Width()), float64(s.Height())
	s.FillRoundRect(inset, inset, w-inset, h-inset, constants.ButtonArcRadius, paint)
}

// gradientRamp computes one color per row, piecewise linear between stops.
func gradientRamp(base color.Color, height int) []colorful.Color {
	c, _ := colorful.MakeColor(opaque(base))
	hue, sat, val := c.Hsv()

	stops := make([]colorful.Color, len(gradientStops))
	for i, stop := range gradientStops {
		val += stop.valueUp
		stops[i] = colorful.Hsv(hue, sat, val)
	}

	ramp := make([]colorful.Color, height)
	for y := range ramp {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		j := 1
		for j < len(gradientStops)-1 && t > gradientStops[j].at {
			j++
		}
		lo, hi := gradientStops[j-1], gradientStops[j]
		f := (t - lo.at) / (hi.at - lo.at)
		ramp[y] = stops[j-1].BlendRgb(stops[j], f)
	}
	return ramp
}

func opaque(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.Black
	}
	return color.RGBA64{
		R: uint16(r * 0xffff / a),
		G: uint16(g * 0xffff / a),
		B: uint16(b * 0xffff / a),
		A: 0xffff,
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

type backgroundKind int

const (
	kindButton backgroundKind = iota
	kindDisabled
	kindShadow
	kindPage
)

func (k backgroundKind) String() string {
	switch k {
	case kindButton:
		return "button"
	case kindDisabled:
		return "disabled"
	case kindShadow:
		return "shadow"
	case kindPage:
		return "page"
	}
	return "unknown"
}

type backgroundKey struct {
	kind          backgroundKind
	width, height int
	from, to      color.RGBA
	radius        int
}

type CacheStats struct {
	Generated int64
	Hits      int64
	Entries   int
}

// BackgroundCache generates each gradient surface once and hands out the
// same surface for every later request with identical parameters. Surfaces
// returned by the cache stay owned by it; callers that keep one past the
// cache's lifetime must Ref it.
type BackgroundCache struct {
	mu        sync.Mutex
	entries   map[backgroundKey]*canvas.Surface
	generated *atomic.Int64
	hits      *atomic.Int64
	released  bool
}

func NewBackgroundCache() *BackgroundCache {
	return &BackgroundCache{
		entries:   make(map[backgroundKey]*canvas.Surface),
		generated: atomic.NewInt64(0),
		hits:      atomic.NewInt64(0),
	}
}

func (c *BackgroundCache) Button(width, height int, base color.Color) *canvas.Surface {
	key := backgroundKey{kind: kindButton, width: width, height: height, from: toRGBA(base)}
	return c.get(key, func() *canvas.Surface {
		return CreateDefaultBackground(width, height, base)
	})
}

func (c *BackgroundCache) Disabled(width, height int, overlay color.NRGBA) *canvas.Surface {
	key := backgroundKey{kind: kindDisabled, width: width, height: height, from: toRGBA(overlay)}
	return c.get(key, func() *canvas.Surface {
		return CreateDisabledOverlay(width, height, overlay)
	})
}

// Shadow returns the blurred shadow of the button background for base.
func (c *BackgroundCache) Shadow(width, height int, base color.Color, radius int, shadow color.NRGBA) *canvas.Surface {
	key := backgroundKey{kind: kindShadow, width: width, height: height, from: toRGBA(base), to: toRGBA(shadow), radius: radius}
	return c.get(key, func() *canvas.Surface {
		return CreateShadow(c.Button(width, height, base), radius, shadow)
	})
}

func (c *BackgroundCache) Page(width, height int, from, to color.Color) *canvas.Surface {
	key := backgroundKey{kind: kindPage, width: width, height: height, from: toRGBA(from), to: toRGBA(to)}
	return c.get(key, func() *canvas.Surface {
		return CreatePageBackground(width, height, from, to)
	})
}

func (c *BackgroundCache) get(key backgroundKey, generate func() *canvas.Surface) *canvas.Surface {
	c.mu.Lock()
	if s, ok := c.entries[key]; ok {
		c.mu.Unlock()
		c.hits.Inc()
		return s
	}
	if c.released {
		c.mu.Unlock()
		panic("gridmenu: background cache used after Release")
	}
	c.mu.Unlock()

	// generate may recurse into the cache, so it runs unlocked
	s := generate()
	c.generated.Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		s.Release()
		return existing
	}
	c.entries[key] = s

	internal.GetInternalLogger().Debug("Generated background",
		"kind", key.kind.String(),
		"width", key.width,
		"height", key.height)

	return s
}

func (c *BackgroundCache) Stats() CacheStats {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()
	return CacheStats{
		Generated: c.generated.Load(),
		Hits:      c.hits.Load(),
		Entries:   n,
	}
}

// Release drops the cache's reference on every surface it generated.
func (c *BackgroundCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, s := range c.entries {
		s.Release()
		delete(c.entries, k)
	}
	c.released = true
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
