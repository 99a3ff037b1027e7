// Package assets resolves asset identifiers to mesh and texture files
// and loads them for the viewer.
package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/relievo/relievo/internal/mesh"
)

// textureExtensions lists the texture file extensions tried in order.
var textureExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Catalog maps asset identifiers to files under a root directory using
// the fixed naming convention: "{id}_mesh.json" for mesh data and
// "{id}.png" (or another known image extension) for the texture.
type Catalog struct {
	dir string
}

// NewCatalog creates a catalog rooted at dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// MeshPath returns the mesh data path for an identifier.
func (c *Catalog) MeshPath(id string) string {
	return filepath.Join(c.dir, id+"_mesh.json")
}

// TexturePath returns the texture path for an identifier, trying known
// image extensions in order.
func (c *Catalog) TexturePath(id string) (string, error) {
	for _, ext := range textureExtensions {
		path := filepath.Join(c.dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("texture not found for %q in %s", id, c.dir)
}

// FetchMesh loads and validates the mesh data for an identifier.
func (c *Catalog) FetchMesh(id string) (*mesh.Data, error) {
	path := c.MeshPath(id)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh %s: %w", path, err)
	}
	defer f.Close()

	d, err := mesh.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}
	return d, nil
}

// FetchTexture loads and decodes the texture image for an identifier.
func (c *Catalog) FetchTexture(id string) (image.Image, error) {
	path, err := c.TexturePath(id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	return img, nil
}
