// Package mesh implements depth-displaced mesh synthesis and the JSON
// interchange format consumed by viewers.
package mesh

import (
	"errors"
	"fmt"
)

// Synthesis and interchange errors.
var (
	ErrShapeMismatch    = errors.New("image and depth map dimensions differ")
	ErrInvalidParameter = errors.New("invalid synthesis parameter")
	ErrMalformedMesh    = errors.New("malformed mesh document")
)

// Data is the mesh interchange contract: a displaced vertex lattice with
// one UV per vertex and a fixed-diagonal triangulation. Vertices are
// row-major, index i = row*density + col.
type Data struct {
	Vertices [][3]float64 `json:"vertices"`
	UVs      [][2]float64 `json:"uvs"`
	Faces    [][3]int     `json:"faces"`
}

// GridDensity returns the lattice dimension the vertex count implies,
// or 0 if the count is not a perfect square.
func (d *Data) GridDensity() int {
	n := 0
	for n*n < len(d.Vertices) {
		n++
	}
	if n*n != len(d.Vertices) {
		return 0
	}
	return n
}

// Validate checks the interchange invariants: a square vertex lattice,
// one UV per vertex, the grid's triangle count, in-range face indices,
// and no unreferenced vertices.
func (d *Data) Validate() error {
	n := d.GridDensity()
	if n < 2 {
		return fmt.Errorf("%w: vertex count %d is not a square lattice of density >= 2",
			ErrMalformedMesh, len(d.Vertices))
	}
	if len(d.UVs) != len(d.Vertices) {
		return fmt.Errorf("%w: %d uvs for %d vertices", ErrMalformedMesh, len(d.UVs), len(d.Vertices))
	}
	if want := 2 * (n - 1) * (n - 1); len(d.Faces) != want {
		return fmt.Errorf("%w: %d faces, want %d for density %d", ErrMalformedMesh, len(d.Faces), want, n)
	}

	referenced := make([]bool, len(d.Vertices))
	for fi, f := range d.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(d.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d",
					ErrMalformedMesh, fi, idx, len(d.Vertices))
			}
			referenced[idx] = true
		}
	}
	for i, ok := range referenced {
		if !ok {
			return fmt.Errorf("%w: vertex %d has no referencing face", ErrMalformedMesh, i)
		}
	}
	return nil
}
