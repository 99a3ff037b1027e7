package mesh

import (
	"fmt"
	"image"

	"github.com/relievo/relievo/internal/depth"
)

// maxGridDensity keeps density^2 and the face count inside int32 range,
// so indices survive a downcast to 32-bit GPU index buffers.
const maxGridDensity = 46340

// Options control mesh synthesis.
type Options struct {
	GridDensity int           // Vertices along each lattice dimension, >= 2
	DepthScale  float64       // Z displacement factor; negative inverts relief
	Sampler     depth.Sampler // Depth sampling strategy
}

// DefaultOptions returns the reference synthesis parameters.
func DefaultOptions() Options {
	return Options{
		GridDensity: 150,
		DepthScale:  0.1,
		Sampler:     depth.SamplerNearest,
	}
}

// Synthesize builds a displaced mesh from an image and its depth map.
// Pure and deterministic: identical inputs produce identical output.
//
// The lattice spans x in [-aspect, aspect] and y in [-1, 1] with
// aspect = W/H, row-major from y=-1. Each lattice point maps back to
// image pixel space (flipping vertically, since image row 0 is the top
// while lattice y=+1 is up), samples the depth map there, and displaces
// z = (depth - 0.5) * scale so relief is centered on the lattice plane.
func Synthesize(img image.Image, dm *depth.Map, opts Options) (*Data, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d", ErrInvalidParameter, w, h)
	}
	if dm.W != w || dm.H != h {
		return nil, fmt.Errorf("%w: image %dx%d, depth map %dx%d",
			ErrShapeMismatch, w, h, dm.W, dm.H)
	}
	if opts.GridDensity < 2 {
		return nil, fmt.Errorf("%w: grid density %d, need >= 2", ErrInvalidParameter, opts.GridDensity)
	}
	if opts.GridDensity > maxGridDensity {
		return nil, fmt.Errorf("%w: grid density %d exceeds index range (max %d)",
			ErrInvalidParameter, opts.GridDensity, maxGridDensity)
	}

	n := opts.GridDensity
	aspect := float64(w) / float64(h)

	d := &Data{
		Vertices: make([][3]float64, n*n),
		UVs:      make([][2]float64, n*n),
		Faces:    make([][3]int, 0, 2*(n-1)*(n-1)),
	}

	for row := 0; row < n; row++ {
		y := linspace(-1, 1, n, row)
		v := (-y + 1) / 2
		for col := 0; col < n; col++ {
			x := linspace(-aspect, aspect, n, col)
			u := (x/aspect + 1) / 2

			sampled := opts.Sampler.Sample(dm, u, v)
			z := (sampled - 0.5) * opts.DepthScale

			i := row*n + col
			d.Vertices[i] = [3]float64{x, y, z}
			d.UVs[i] = [2]float64{u, v}
		}
	}

	// Two triangles per quad, split along the same diagonal every run so
	// the crease direction under steep depth gradients is stable.
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			v0 := row*n + col
			v1 := v0 + 1
			v2 := v0 + n
			v3 := v2 + 1
			d.Faces = append(d.Faces, [3]int{v0, v1, v2}, [3]int{v1, v3, v2})
		}
	}

	return d, nil
}

// linspace returns the i-th of n evenly spaced values from a to b inclusive.
func linspace(a, b float64, n, i int) float64 {
	return a + (b-a)*float64(i)/float64(n-1)
}
