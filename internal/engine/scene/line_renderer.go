package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/quarterfold/foldwall/internal/engine/scene/shaders"
	"github.com/quarterfold/foldwall/internal/engine/shader"
	"github.com/quarterfold/foldwall/pkg/math"
)

// lineBufferCapacity is sized for the bounds wireframe (24 vertices) with
// headroom for other debug overlays.
const lineBufferCapacity = 256

// LineRenderer draws debug line sets such as the wall bounds wireframe.
type LineRenderer struct {
	program uint32

	locMVP   int32
	locColor int32

	vao uint32
	vbo uint32
}

// NewLineRenderer creates the debug line pipeline.
func NewLineRenderer() (*LineRenderer, error) {
	lr := &LineRenderer{}

	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	lr.program = program
	lr.locMVP = shader.GetUniform(program, "uMVP")
	lr.locColor = shader.GetUniform(program, "uColor")

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, lineBufferCapacity*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return lr, nil
}

// Draw renders line segment vertices (x,y,z pairs per segment).
func (lr *LineRenderer) Draw(mvp math.Mat4, vertices []float32, r, g, b, a float32) {
	if len(vertices) == 0 {
		return
	}
	count := len(vertices) / 3
	if count > lineBufferCapacity {
		count = lineBufferCapacity
		vertices = vertices[:count*3]
	}

	gl.UseProgram(lr.program)
	gl.UniformMatrix4fv(lr.locMVP, 1, false, mvp.Ptr())
	gl.Uniform4f(lr.locColor, r, g, b, a)

	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, int32(count))
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (lr *LineRenderer) Close() {
	gl.DeleteBuffers(1, &lr.vbo)
	gl.DeleteVertexArrays(1, &lr.vao)
	gl.DeleteProgram(lr.program)
}
