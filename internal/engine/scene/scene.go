package scene

import (
	gomath "math"

	"github.com/quarterfold/foldwall/internal/engine/debug"
	"github.com/quarterfold/foldwall/internal/engine/fold"
	"github.com/quarterfold/foldwall/pkg/math"
)

// Projection constants.
const (
	fovY = float32(gomath.Pi / 4)
	near = 0.1
	far  = 500.0
)

// Scene composes the backdrop and the wall, and owns projection state.
type Scene struct {
	wall     *WallRenderer
	backdrop *Backdrop
	lines    *LineRenderer

	projection math.Mat4
	width      int
	height     int

	// ShowBounds toggles the wall bounding box wireframe.
	ShowBounds bool
}

// New creates the scene. columns is strips+1; texture is the wall texture.
func New(width, height, columns int, texture uint32) (*Scene, error) {
	s := &Scene{
		width:  width,
		height: height,
	}
	s.updateProjection()

	var err error
	if s.backdrop, err = NewBackdrop(); err != nil {
		return nil, err
	}
	if s.wall, err = NewWallRenderer(columns, texture); err != nil {
		s.backdrop.Close()
		return nil, err
	}
	if s.lines, err = NewLineRenderer(); err != nil {
		s.wall.Close()
		s.backdrop.Close()
		return nil, err
	}

	return s, nil
}

// Resize updates the projection for a new drawable size.
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height
	s.updateProjection()
}

func (s *Scene) updateProjection() {
	aspect := float32(1)
	if s.height > 0 {
		aspect = float32(s.width) / float32(s.height)
	}
	s.projection = math.Perspective(fovY, aspect, near, far)
}

// Draw renders one frame from the solver's output: backdrop first, then
// the wall, then optional debug lines.
func (s *Scene) Draw(view math.Mat4, solver *fold.Solver) {
	viewProj := s.projection.Mul(view)

	s.backdrop.Draw()

	s.wall.UpdatePositions(solver.Positions())
	s.wall.Draw(viewProj, solver.Tilt())

	if s.ShowBounds {
		b := solver.Bounds()
		wire := debug.BBoxWireframeVertices(b.Min, b.Max)
		// Bounds are computed pre-tilt, so apply the same model rotation.
		mvp := viewProj.Mul(math.RotateX(solver.Tilt()))
		s.lines.Draw(mvp, wire, 1, 0.6, 0.1, 1)
	}
}

// Close releases all scene resources.
func (s *Scene) Close() {
	if s.lines != nil {
		s.lines.Close()
	}
	if s.wall != nil {
		s.wall.Close()
	}
	if s.backdrop != nil {
		s.backdrop.Close()
	}
}
