package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/quarterfold/foldwall/internal/engine/scene/shaders"
	"github.com/quarterfold/foldwall/internal/engine/shader"
)

// Backdrop draws a fullscreen vertical gradient behind the wall.
type Backdrop struct {
	program uint32

	locTop    int32
	locBottom int32

	vao uint32
	vbo uint32
}

// NewBackdrop creates the gradient quad.
func NewBackdrop() (*Backdrop, error) {
	b := &Backdrop{}

	program, err := shader.CompileProgram(shaders.BackdropVertexShader, shaders.BackdropFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("backdrop shader: %w", err)
	}
	b.program = program
	b.locTop = shader.GetUniform(program, "uTopColor")
	b.locBottom = shader.GetUniform(program, "uBottomColor")

	// Fullscreen quad in clip space, two triangles.
	vertices := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return b, nil
}

// Draw renders the gradient. Depth writes are off so the backdrop never
// occludes the wall.
func (b *Backdrop) Draw() {
	gl.UseProgram(b.program)
	gl.Uniform3f(b.locTop, 0.16, 0.17, 0.24)
	gl.Uniform3f(b.locBottom, 0.05, 0.05, 0.08)

	gl.DepthMask(false)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// Close releases GL resources.
func (b *Backdrop) Close() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.program)
}
