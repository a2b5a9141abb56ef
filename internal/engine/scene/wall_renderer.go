// Package scene renders the folding wall and its backdrop.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/quarterfold/foldwall/internal/engine/lighting"
	"github.com/quarterfold/foldwall/internal/engine/scene/shaders"
	"github.com/quarterfold/foldwall/internal/engine/shader"
	"github.com/quarterfold/foldwall/pkg/math"
)

// WallRenderer draws the wall mesh from the solver's vertex buffer.
// Positions are dynamic and re-uploaded every frame; UVs and indices are
// fixed by the strip topology and uploaded once.
type WallRenderer struct {
	program uint32

	locModel    int32
	locViewProj int32
	locLightDir int32
	locAmbient  int32
	locTexture  int32

	vao    uint32
	posVBO uint32
	uvVBO  uint32
	ebo    uint32

	indexCount  int32
	vertexCount int
	texture     uint32
	lightDir    [3]float32
}

// NewWallRenderer creates GL resources for a wall with the given column
// count (strips + 1). texture is the GL texture to map across the wall.
func NewWallRenderer(columns int, texture uint32) (*WallRenderer, error) {
	if columns < 2 {
		return nil, fmt.Errorf("wall needs at least 2 columns, got %d", columns)
	}

	wr := &WallRenderer{
		vertexCount: columns * 2,
		texture:     texture,
		lightDir:    lighting.DefaultKeyDirection(),
	}

	program, err := shader.CompileProgram(shaders.WallVertexShader, shaders.WallFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("wall shader: %w", err)
	}
	wr.program = program

	wr.locModel = shader.GetUniform(program, "uModel")
	wr.locViewProj = shader.GetUniform(program, "uViewProj")
	wr.locLightDir = shader.GetUniform(program, "uLightDir")
	wr.locAmbient = shader.GetUniform(program, "uAmbient")
	wr.locTexture = shader.GetUniform(program, "uTexture")

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	// Dynamic positions, sized once, streamed with BufferSubData.
	gl.GenBuffers(1, &wr.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, wr.vertexCount*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// Static UVs: u = column/strips across the wall, v = 1 on the top row.
	uvs := buildWallUVs(columns)
	gl.GenBuffers(1, &wr.uvVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.uvVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(uvs)*4, unsafe.Pointer(&uvs[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(1)

	// Static indices: two triangles per strip quad.
	indices := buildWallIndices(columns)
	wr.indexCount = int32(len(indices))
	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return wr, nil
}

// buildWallUVs returns texture coordinates for both vertex rows.
func buildWallUVs(columns int) []float32 {
	uvs := make([]float32, 0, columns*2*2)
	for row := 0; row < 2; row++ {
		v := float32(1 - row) // top row v=1, bottom row v=0
		for i := 0; i < columns; i++ {
			u := float32(i) / float32(columns-1)
			uvs = append(uvs, u, v)
		}
	}
	return uvs
}

// buildWallIndices returns triangle indices for the strip quads.
func buildWallIndices(columns int) []uint32 {
	indices := make([]uint32, 0, (columns-1)*6)
	for i := 0; i < columns-1; i++ {
		top := uint32(i)
		topNext := uint32(i + 1)
		bot := uint32(i + columns)
		botNext := uint32(i + columns + 1)
		indices = append(indices,
			top, bot, topNext,
			topNext, bot, botNext,
		)
	}
	return indices
}

// UpdatePositions streams the solver's vertex buffer to the GPU.
func (wr *WallRenderer) UpdatePositions(positions []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.posVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, unsafe.Pointer(&positions[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders the wall with the smoothed tilt applied as a whole-mesh
// rotation around the X axis.
func (wr *WallRenderer) Draw(viewProj math.Mat4, tilt float32) {
	model := math.RotateX(tilt)

	gl.UseProgram(wr.program)
	gl.UniformMatrix4fv(wr.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(wr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(wr.locLightDir, wr.lightDir[0], wr.lightDir[1], wr.lightDir[2])
	gl.Uniform1f(wr.locAmbient, lighting.DefaultAmbient)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, wr.texture)
	gl.Uniform1i(wr.locTexture, 0)

	// Both sides of the paper are visible while folding.
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(wr.vao)
	gl.DrawElements(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (wr *WallRenderer) Close() {
	gl.DeleteBuffers(1, &wr.posVBO)
	gl.DeleteBuffers(1, &wr.uvVBO)
	gl.DeleteBuffers(1, &wr.ebo)
	gl.DeleteVertexArrays(1, &wr.vao)
	gl.DeleteProgram(wr.program)
}
