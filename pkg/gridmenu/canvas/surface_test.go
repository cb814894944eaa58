package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestSurfaceRefCounting(t *testing.T) {
	s := NewSurface(4, 4)
	if s.Refs() != 1 {
		t.Fatalf("new surface refs = %d, want 1", s.Refs())
	}

	s.Ref()
	if s.Release() {
		t.Fatal("Release() freed a surface that still had a holder")
	}
	if s.Released() {
		t.Fatal("surface reports released while referenced")
	}
	if !s.Release() {
		t.Fatal("Release() of last reference did not free")
	}
	if !s.Released() {
		t.Fatal("surface not released after last Release()")
	}
}

func TestSurfaceOverRelease(t *testing.T) {
	s := NewSurface(1, 1)
	s.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on over-release")
		}
	}()
	s.Release()
}

func TestSubSurfaceKeepsParentAlive(t *testing.T) {
	parent := NewSurface(10, 10)
	sub := parent.SubSurface(image.Rect(2, 2, 6, 6))

	if parent.Refs() != 2 {
		t.Fatalf("parent refs = %d, want 2", parent.Refs())
	}
	if parent.Release() {
		t.Fatal("parent freed while sub-surface alive")
	}

	sub.Fill(sub.Bounds(), color.RGBA{R: 255, A: 255})
	if got := parent.At(3, 3); got.R != 255 {
		t.Errorf("parent pixel = %v, want red through shared pixels", got)
	}
	if got := parent.At(0, 0); got.A != 0 {
		t.Errorf("pixel outside sub-surface = %v, want transparent", got)
	}

	sub.Release()
	if !parent.Released() {
		t.Error("parent not freed once sub-surface released")
	}
}

func TestPaintScalesToDestination(t *testing.T) {
	src := NewSurface(2, 2)
	src.Fill(src.Bounds(), color.RGBA{G: 200, A: 255})

	dst := NewSurface(20, 20)
	dst.Paint(src, image.Rect(5, 5, 15, 15), draw.Over)

	tests := []struct {
		name  string
		x, y  int
		wantA uint8
	}{
		{"inside top-left", 5, 5, 255},
		{"inside centre", 10, 10, 255},
		{"inside bottom-right", 14, 14, 255},
		{"outside left", 4, 10, 0},
		{"outside below", 10, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dst.At(tt.x, tt.y).A; got != tt.wantA {
				t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.wantA)
			}
		})
	}
}

func TestScaledSize(t *testing.T) {
	src := NewSurface(8, 4)
	out := src.Scaled(3, 5)
	if out.Width() != 3 || out.Height() != 5 {
		t.Errorf("Scaled() size = %dx%d, want 3x5", out.Width(), out.Height())
	}
	if src.Refs() != 1 {
		t.Errorf("Scaled() changed source refs to %d", src.Refs())
	}
}

func TestClear(t *testing.T) {
	s := NewSurface(4, 4)
	s.Fill(s.Bounds(), color.White)
	s.Clear(image.Rect(0, 0, 2, 4))

	if s.At(1, 1).A != 0 {
		t.Error("cleared pixel still opaque")
	}
	if s.At(3, 1).A != 255 {
		t.Error("pixel outside cleared area changed")
	}
}
