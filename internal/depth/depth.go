// Package depth handles per-pixel depth maps: decoding, normalization,
// resampling and the sampling strategies used during mesh synthesis.
package depth

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Map is an immutable W×H grid of normalized depth values in [0, 1],
// where 1.0 is nearest to camera. Row 0 is the top of the source image.
type Map struct {
	W, H int
	data []float32
	flat bool
}

// FromImage builds a depth map from a grayscale (or color, luminance-reduced)
// image. Values are normalized by the maximum sample so the brightest pixel
// maps to 1.0. An all-black input produces a flat map; IsFlat reports this.
func FromImage(img image.Image) *Map {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	m := &Map{W: w, H: h, data: make([]float32, w*h)}

	var max float32
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			v := float32(g.Y)
			m.data[y*w+x] = v
			if v > max {
				max = v
			}
		}
	}

	if max == 0 {
		m.flat = true
		return m
	}
	for i := range m.data {
		m.data[i] /= max
	}
	return m
}

// Decode reads an encoded grayscale image and builds a depth map from it.
// Image formats must be registered by the caller (png/jpeg/bmp in the CLIs).
func Decode(r io.Reader) (*Map, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding depth image: %w", err)
	}
	return FromImage(img), nil
}

// At returns the depth value at the given pixel, clamping out-of-range
// coordinates to the map edges.
func (m *Map) At(x, y int) float32 {
	if x < 0 {
		x = 0
	} else if x >= m.W {
		x = m.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.H {
		y = m.H - 1
	}
	return m.data[y*m.W+x]
}

// IsFlat reports whether the source image was all black, meaning every
// depth value is zero and the synthesized relief will be a plane.
func (m *Map) IsFlat() bool {
	return m.flat
}

// FromValues builds a depth map directly from normalized values in row-major
// order. Values are used as-is; len(values) must equal w*h.
func FromValues(w, h int, values []float32) (*Map, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", w, h)
	}
	if len(values) != w*h {
		return nil, fmt.Errorf("expected %d values, got %d", w*h, len(values))
	}
	data := make([]float32, len(values))
	copy(data, values)
	return &Map{W: w, H: h, data: data}, nil
}

// Uniform builds a depth map where every sample has the same value.
func Uniform(w, h int, value float32) *Map {
	data := make([]float32, w*h)
	for i := range data {
		data[i] = value
	}
	return &Map{W: w, H: h, data: data}
}
