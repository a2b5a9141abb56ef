package hud

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/quarterfold/foldwall/internal/engine/scene/shaders"
	"github.com/quarterfold/foldwall/internal/engine/shader"
	"github.com/quarterfold/foldwall/pkg/math"
)

// floatsPerVertex is x, y plus RGBA.
const floatsPerVertex = 6

// vertexCapacity covers the full overlay with headroom.
const vertexCapacity = 1024

// HUD draws the overlay with a pixel-space orthographic projection.
type HUD struct {
	State State

	program       uint32
	locProjection int32

	vao uint32
	vbo uint32

	verts []float32
}

// New creates the HUD renderer for the given drawable size.
func New(width, height int) (*HUD, error) {
	h := &HUD{
		State: State{Width: width, Height: height},
		verts: make([]float32, 0, vertexCapacity*floatsPerVertex),
	}

	program, err := shader.CompileProgram(shaders.HUDVertexShader, shaders.HUDFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("hud shader: %w", err)
	}
	h.program = program
	h.locProjection = shader.GetUniform(program, "uProjection")

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vertexCapacity*floatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, floatsPerVertex*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, floatsPerVertex*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return h, nil
}

// Resize updates the overlay for a new drawable size.
func (h *HUD) Resize(width, height int) {
	h.State.Width = width
	h.State.Height = height
}

// Draw renders the overlay on top of the scene.
func (h *HUD) Draw(compression, pointerX, pointerY float32) {
	h.verts = h.State.BuildQuads(h.verts[:0], compression, pointerX, pointerY)
	if len(h.verts) == 0 {
		return
	}

	count := len(h.verts) / floatsPerVertex
	if count > vertexCapacity {
		count = vertexCapacity
		h.verts = h.verts[:count*floatsPerVertex]
	}

	// Pixel coordinates with the origin at the top-left, like the layout.
	proj := math.Ortho(0, float32(h.State.Width), float32(h.State.Height), 0, -1, 1)

	gl.UseProgram(h.program)
	gl.UniformMatrix4fv(h.locProjection, 1, false, proj.Ptr())

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(h.verts)*4, unsafe.Pointer(&h.verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (h *HUD) Close() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteProgram(h.program)
}
