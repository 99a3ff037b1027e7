// Package views generates synthetic parallax views by shifting image
// pixels horizontally in proportion to their depth, so nearer content
// moves further than the background.
package views

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/relievo/relievo/internal/depth"
	"github.com/relievo/relievo/internal/mesh"
)

// Shift remaps the image horizontally: each output pixel samples the
// source at srcX = x + shift*depth(x, y), linearly interpolating between
// neighboring columns and replicating the border at the edges.
func Shift(img image.Image, dm *depth.Map, shift float64) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if dm.W != w || dm.H != h {
		return nil, fmt.Errorf("%w: image %dx%d, depth map %dx%d",
			mesh.ErrShapeMismatch, w, h, dm.W, dm.H)
	}

	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x) + shift*float64(dm.At(x, y))

			x0 := int(math.Floor(fx))
			t := fx - float64(x0)
			x1 := x0 + 1

			// Border replication.
			if x0 < 0 {
				x0 = 0
			} else if x0 >= w {
				x0 = w - 1
			}
			if x1 < 0 {
				x1 = 0
			} else if x1 >= w {
				x1 = w - 1
			}

			p0 := src.PixOffset(x0, y)
			p1 := src.PixOffset(x1, y)
			o := out.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				v0 := float64(src.Pix[p0+c])
				v1 := float64(src.Pix[p1+c])
				out.Pix[o+c] = uint8(v0 + (v1-v0)*t + 0.5)
			}
		}
	}
	return out, nil
}

// ShiftAll generates one view per shift amount.
func ShiftAll(img image.Image, dm *depth.Map, shifts []float64) ([]*image.NRGBA, error) {
	views := make([]*image.NRGBA, 0, len(shifts))
	for _, s := range shifts {
		v, err := Shift(img, dm, s)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
