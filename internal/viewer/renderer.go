package viewer

import (
	"image"

	"github.com/relievo/relievo/internal/mesh"
)

// Renderer is the graphics backend contract. The session only produces
// geometry and material data; rasterization lives behind this interface.
type Renderer interface {
	// Upload creates the render surface resources for the mesh and its
	// texture. Called once, after both assets have loaded successfully.
	Upload(d *mesh.Data, tex image.Image) error

	// Draw renders one frame with the given pitch and yaw (radians).
	Draw(rotX, rotY float32) error

	// Resize adjusts the output surface and projection aspect ratio.
	Resize(width, height int)
}
