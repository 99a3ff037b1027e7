package depth

import (
	"fmt"
	"math"
)

// Sampler selects how a depth map is sampled at continuous coordinates.
// Nearest is the reproducibility baseline; bilinear smooths relief near
// steep depth gradients but produces different output values.
type Sampler int

// Sampling strategies.
const (
	SamplerNearest Sampler = iota
	SamplerBilinear
)

// ParseSampler converts a config/flag string to a Sampler.
func ParseSampler(s string) (Sampler, error) {
	switch s {
	case "", "nearest":
		return SamplerNearest, nil
	case "bilinear":
		return SamplerBilinear, nil
	default:
		return SamplerNearest, fmt.Errorf("unknown sampler %q", s)
	}
}

// String returns the config-friendly name.
func (s Sampler) String() string {
	switch s {
	case SamplerBilinear:
		return "bilinear"
	default:
		return "nearest"
	}
}

// Sample reads the map at normalized coordinates u, v in [0, 1], where
// (0, 0) is the top-left pixel. Coordinates outside the range clamp to
// the map edges.
func (s Sampler) Sample(m *Map, u, v float64) float64 {
	if s == SamplerBilinear {
		return sampleBilinear(m, u, v)
	}
	return sampleNearest(m, u, v)
}

// sampleNearest rounds to the closest pixel: clamp(round(u*W), 0, W-1).
func sampleNearest(m *Map, u, v float64) float64 {
	x := int(math.Round(u * float64(m.W)))
	y := int(math.Round(v * float64(m.H)))
	return float64(m.At(x, y))
}

// sampleBilinear interpolates between the four surrounding pixels.
func sampleBilinear(m *Map, u, v float64) float64 {
	px := u * float64(m.W-1)
	py := v * float64(m.H-1)

	x0 := int(math.Floor(px))
	y0 := int(math.Floor(py))
	fx := px - float64(x0)
	fy := py - float64(y0)

	d00 := float64(m.At(x0, y0))
	d10 := float64(m.At(x0+1, y0))
	d01 := float64(m.At(x0, y0+1))
	d11 := float64(m.At(x0+1, y0+1))

	top := d00 + (d10-d00)*fx
	bottom := d01 + (d11-d01)*fx
	return top + (bottom-top)*fy
}
