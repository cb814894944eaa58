package canvas

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// LoadImage reads a PNG, JPEG or SVG file into a new surface.
func LoadImage(path string) (*Surface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	s, err := DecodeImage(data, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return s, nil
}

// DecodeImage decodes raster or SVG data. SVGs are rasterized at
// width x height, or at their view box size when either is zero.
func DecodeImage(data []byte, width, height int) (*Surface, error) {
	if isSVG(data) {
		return rasterizeSVG(data, width, height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s := FromImage(img)
	if width > 0 && height > 0 && (s.Width() != width || s.Height() != height) {
		scaled := s.Scaled(width, height)
		s.Release()
		return scaled, nil
	}
	return s, nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

func rasterizeSVG(data []byte, width, height int) (*Surface, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width <= 0 || height <= 0 {
		width = int(icon.ViewBox.W)
		height = int(icon.ViewBox.H)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("SVG has no usable size")
	}

	s := NewSurface(width, height)
	scanner := rasterx.NewScannerGV(width, height, s.img, s.img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	return s, nil
}
