package assets

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/relievo/relievo/internal/mesh"
)

const validMeshDoc = `{
	"vertices": [[-1,-1,0],[1,-1,0],[-1,1,0],[1,1,0]],
	"uvs": [[0,1],[1,1],[0,0],[1,0]],
	"faces": [[0,1,2],[1,3,2]]
}`

func writeTestAssets(t *testing.T, dir, id string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, id+"_mesh.json"), []byte(validMeshDoc), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	f, err := os.Create(filepath.Join(dir, id+".png"))
	if err != nil {
		t.Fatalf("failed to create texture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode texture: %v", err)
	}
}

func TestMeshPath(t *testing.T) {
	c := NewCatalog("/data")
	want := filepath.Join("/data", "scene_mesh.json")
	if got := c.MeshPath("scene"); got != want {
		t.Errorf("MeshPath = %s, want %s", got, want)
	}
}

func TestFetchMesh(t *testing.T) {
	dir := t.TempDir()
	writeTestAssets(t, dir, "scene")

	c := NewCatalog(dir)
	d, err := c.FetchMesh("scene")
	if err != nil {
		t.Fatalf("FetchMesh failed: %v", err)
	}
	if len(d.Vertices) != 4 || len(d.Faces) != 2 {
		t.Errorf("fetched %d vertices, %d faces, want 4, 2", len(d.Vertices), len(d.Faces))
	}
}

func TestFetchMeshMissing(t *testing.T) {
	c := NewCatalog(t.TempDir())
	if _, err := c.FetchMesh("nope"); err == nil {
		t.Error("expected error for missing mesh, got nil")
	}
}

func TestFetchMeshMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad_mesh.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}

	c := NewCatalog(dir)
	_, err := c.FetchMesh("bad")
	if !errors.Is(err, mesh.ErrMalformedMesh) {
		t.Errorf("expected ErrMalformedMesh, got %v", err)
	}
}

func TestFetchTexture(t *testing.T) {
	dir := t.TempDir()
	writeTestAssets(t, dir, "scene")

	c := NewCatalog(dir)
	img, err := c.FetchTexture("scene")
	if err != nil {
		t.Fatalf("FetchTexture failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("texture bounds %v, want 4x4", img.Bounds())
	}
}

func TestFetchTextureMissing(t *testing.T) {
	c := NewCatalog(t.TempDir())
	if _, err := c.FetchTexture("nope"); err == nil {
		t.Error("expected error for missing texture, got nil")
	}
}

func TestFetchTextureUndecodable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not a png"), 0644); err != nil {
		t.Fatalf("failed to write texture: %v", err)
	}

	c := NewCatalog(dir)
	if _, err := c.FetchTexture("junk"); err == nil {
		t.Error("expected error for undecodable texture, got nil")
	}
}

func TestTexturePathExtensionFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte{0xff}, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	c := NewCatalog(dir)
	path, err := c.TexturePath("photo")
	if err != nil {
		t.Fatalf("TexturePath failed: %v", err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("expected .jpg fallback, got %s", path)
	}
}
