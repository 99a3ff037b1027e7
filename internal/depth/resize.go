package depth

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ResizeTo returns a bilinearly resampled copy with the given dimensions.
// Used to reconcile a depth map whose size differs from the source image;
// the synthesizer itself rejects mismatched inputs, so callers opt in to
// this explicitly.
func (m *Map) ResizeTo(w, h int) *Map {
	if w == m.W && h == m.H {
		return m
	}

	src := image.NewGray16(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			src.SetGray16(x, y, gray16(m.data[y*m.W+x]))
		}
	}

	dst := image.NewGray16(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := &Map{W: w, H: h, data: make([]float32, w*h), flat: m.flat}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.data[y*w+x] = float32(dst.Gray16At(x, y).Y) / 65535.0
		}
	}
	return out
}

func gray16(v float32) color.Gray16 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return color.Gray16{Y: uint16(v*65535.0 + 0.5)}
}
