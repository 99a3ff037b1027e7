// Package glbackend renders mesh interchange data with OpenGL. It is the
// concrete Renderer behind the viewer session; everything above it stays
// graphics-API free.
package glbackend

import (
	"fmt"
	"image"
	"image/draw"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/relievo/relievo/internal/mesh"
	"github.com/relievo/relievo/pkg/math"
)

const (
	fovY     = float32(gomath.Pi / 4)
	nearClip = 0.1
	farClip  = 100.0
)

// Backend owns the GL resources for one uploaded mesh. All methods must
// run on the thread that owns the GL context.
type Backend struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	texID   uint32

	locMVP     int32
	locTexture int32

	indexCount int32
	projection math.Mat4
	view       math.Mat4
}

// New initializes GL state and compiles the mesh shader. The GL context
// must already be current.
func New(width, height int) (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	program, err := compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	b := &Backend{
		program: program,
		view:    math.LookAt(math.Vec3{Z: 2}, math.Vec3{}, math.Vec3{Y: 1}),
	}
	b.locMVP = gl.GetUniformLocation(program, gl.Str("uMVP\x00"))
	b.locTexture = gl.GetUniformLocation(program, gl.Str("uTexture\x00"))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.FRAMEBUFFER_SRGB) // texture is decoded as sRGB
	b.Resize(width, height)

	return b, nil
}

// Upload creates the vertex/index buffers and the sRGB texture for the
// mesh. Interchange float64 data narrows to float32 for the GPU.
func (b *Backend) Upload(d *mesh.Data, tex image.Image) error {
	if len(d.Faces) == 0 {
		return fmt.Errorf("mesh has no faces")
	}

	// Interleaved position + uv.
	vertices := make([]float32, 0, len(d.Vertices)*5)
	for i, v := range d.Vertices {
		uv := d.UVs[i]
		vertices = append(vertices,
			float32(v[0]), float32(v[1]), float32(v[2]),
			float32(uv[0]), float32(uv[1]))
	}

	indices := make([]uint32, 0, len(d.Faces)*3)
	for _, f := range d.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}
	b.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)

	b.uploadTexture(tex)
	return nil
}

// uploadTexture converts the image to NRGBA and uploads it as sRGB.
func (b *Backend) uploadTexture(img image.Image) {
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)

	gl.GenTextures(1, &b.texID)
	gl.BindTexture(gl.TEXTURE_2D, b.texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	w := int32(nrgba.Bounds().Dx())
	h := int32(nrgba.Bounds().Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, w, h, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw renders one frame with the given pitch and yaw.
func (b *Backend) Draw(rotX, rotY float32) error {
	gl.ClearColor(0.05, 0.05, 0.08, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if b.indexCount == 0 {
		return fmt.Errorf("no mesh uploaded")
	}

	model := math.RotateY(rotY).Mul(math.RotateX(rotX))
	mvp := b.projection.Mul(b.view).Mul(model)

	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.locMVP, 1, false, mvp.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texID)
	gl.Uniform1i(b.locTexture, 0)

	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	return nil
}

// Resize updates the viewport and recomputes the projection aspect.
func (b *Backend) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	b.projection = math.Perspective(fovY, float32(width)/float32(height), nearClip, farClip)
}

// Close releases GL resources.
func (b *Backend) Close() {
	if b.texID != 0 {
		gl.DeleteTextures(1, &b.texID)
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
}
