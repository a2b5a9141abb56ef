// Package fold implements the accordion fold solver for the paper wall.
//
// The solver is a per-frame mapping from (time, pointer) to a centered 3D
// vertex buffer: strip angles are shaped from pointer compression, a
// traveling wave and static per-strip noise, integrated into a 2D skeleton,
// then expanded into two vertex rows sharing x/z per column.
package fold

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/quarterfold/foldwall/pkg/math"
)

// Shaping constants for the per-strip fold angle.
const (
	// MaxFoldAngle is the exclusive bound on fold angle magnitude,
	// slightly under 90 degrees so strips never fold past vertical.
	MaxFoldAngle = float32(gomath.Pi / 2.1)

	compressionGain   = 0.8  // pointer |x| to global compression
	compressionWeight = 1.2  // compression contribution to base angle
	waveSpeed         = 1.5  // wave phase advance per second
	wavePhaseStep     = 0.3  // wave phase offset per strip index
	waveAmplitude     = 0.15 // wave magnitude before weighting
	waveWeight        = 0.2  // wave contribution to base angle
	proximityGain     = 0.5  // extra fold sharpness near the pointer
	jitterGain        = 0.1  // static per-strip noise contribution
)

// Tilt response constants.
const (
	tiltGain      = 0.1 // pointer Y to target tilt (radians)
	tiltSmoothing = 0.1 // exponential smoothing factor per frame
)

// Config describes the wall dimensions and subdivision.
// It is immutable after the solver is constructed.
type Config struct {
	Width  float32 // world units
	Height float32 // world units
	Strips int     // number of vertical strips, >= 1
}

// Validate checks the configuration for construction.
func (c Config) Validate() error {
	if c.Strips < 1 {
		return fmt.Errorf("strip count must be >= 1, got %d", c.Strips)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be > 0, got %g", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be > 0, got %g", c.Height)
	}
	return nil
}

// SegmentWidth returns the flat width of one strip.
func (c Config) SegmentWidth() float32 {
	return c.Width / float32(c.Strips)
}

// Bounds is an axis-aligned bounding box in world space.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Frame holds the input signals for one solve.
type Frame struct {
	Time     float32 // elapsed seconds, monotonic
	PointerX float32 // normalized [-1, 1]
	PointerY float32 // normalized [-1, 1]
}

// Solver owns the noise table, the vertex buffer and the smoothed tilt.
// It is not safe for concurrent use; the caller runs it once per frame on
// the thread that owns the render target.
type Solver struct {
	cfg   Config
	noise []float32 // per-strip, [0,1), fixed for the solver's lifetime

	// Scratch skeleton, reused every frame. Index i maps to vertex
	// columns {i, i + Strips + 1}.
	skelX []float32
	skelZ []float32

	// Flat position buffer: x,y,z per vertex, top row then bottom row.
	positions []float32

	bounds Bounds
	tilt   float32
}

// New creates a solver with a freshly generated noise table.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("wall config: %w", err)
	}
	noise := make([]float32, cfg.Strips)
	for i := range noise {
		noise[i] = rand.Float32()
	}
	return NewWithNoise(cfg, noise)
}

// NewWithNoise creates a solver with a caller-supplied noise table.
// The table must hold one value in [0,1) per strip.
func NewWithNoise(cfg Config, noise []float32) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("wall config: %w", err)
	}
	if len(noise) != cfg.Strips {
		return nil, fmt.Errorf("noise table length %d does not match strip count %d", len(noise), cfg.Strips)
	}

	cols := cfg.Strips + 1
	s := &Solver{
		cfg:       cfg,
		noise:     append([]float32(nil), noise...),
		skelX:     make([]float32, cols),
		skelZ:     make([]float32, cols),
		positions: make([]float32, cols*2*3),
	}

	// Start from the neutral flat pose: columns evenly spaced, centered,
	// zero depth. This is also what non-finite input falls back to before
	// the first valid solve.
	w := cfg.SegmentWidth()
	for i := 0; i < cols; i++ {
		s.skelX[i] = float32(i)*w - cfg.Width/2
		s.skelZ[i] = 0
	}
	s.expand()
	s.updateBounds()

	return s, nil
}

// Solve recomputes the vertex buffer and tilt for the given frame.
// Non-finite inputs leave the previous pose and tilt untouched.
func (s *Solver) Solve(f Frame) {
	if !finite(f.Time) || !finite(f.PointerX) || !finite(f.PointerY) {
		return
	}
	px := math.Clamp(f.PointerX, -1, 1)
	py := math.Clamp(f.PointerY, -1, 1)

	n := s.cfg.Strips
	w := s.cfg.SegmentWidth()

	// Integrate the angle chain into the skeleton. Depth accumulates
	// across strips: each fold point is relative to the previous one.
	s.skelX[0], s.skelZ[0] = 0, 0
	for i := 0; i < n; i++ {
		a := float64(s.stripAngle(i, f.Time, px))
		s.skelX[i+1] = s.skelX[i] + w*float32(gomath.Cos(a))
		s.skelZ[i+1] = s.skelZ[i] + w*float32(gomath.Sin(a))
	}

	// Center horizontally regardless of net compression.
	offset := -s.skelX[n] / 2
	for i := 0; i <= n; i++ {
		s.skelX[i] += offset
	}

	s.expand()
	s.updateBounds()

	s.tilt += tiltSmoothing * (py*tiltGain - s.tilt)
}

// stripAngle computes the signed fold angle for strip i.
func (s *Solver) stripAngle(i int, t, px float32) float32 {
	compression := math.Abs(px) * compressionGain
	wave := sinf(t*waveSpeed+float32(i)*wavePhaseStep) * waveAmplitude

	// Approximate the strip's screen-space X and amplify folds near the
	// pointer.
	stripX := (float32(i)/float32(s.cfg.Strips) - 0.5) * 2
	proximity := 1 - math.Abs(stripX-px)
	if proximity < 0 {
		proximity = 0
	}

	a := (compression*compressionWeight + wave*waveWeight) * (1 + proximity*proximityGain)
	a += s.noise[i] * jitterGain
	if a > MaxFoldAngle {
		a = MaxFoldAngle
	}

	// Alternate direction by parity for the accordion zig-zag.
	if i%2 == 1 {
		return -a
	}
	return a
}

// expand writes the skeleton into both vertex rows.
func (s *Solver) expand() {
	cols := s.cfg.Strips + 1
	h2 := s.cfg.Height / 2
	for i := 0; i < cols; i++ {
		x, z := s.skelX[i], s.skelZ[i]
		top := i * 3
		bot := (i + cols) * 3
		s.positions[top+0] = x
		s.positions[top+1] = h2
		s.positions[top+2] = z
		s.positions[bot+0] = x
		s.positions[bot+1] = -h2
		s.positions[bot+2] = z
	}
}

// updateBounds rescans the vertex buffer for the bounding box.
func (s *Solver) updateBounds() {
	b := Bounds{
		Min: [3]float32{s.positions[0], s.positions[1], s.positions[2]},
		Max: [3]float32{s.positions[0], s.positions[1], s.positions[2]},
	}
	for i := 3; i < len(s.positions); i += 3 {
		for a := 0; a < 3; a++ {
			v := s.positions[i+a]
			if v < b.Min[a] {
				b.Min[a] = v
			}
			if v > b.Max[a] {
				b.Max[a] = v
			}
		}
	}
	s.bounds = b
}

// Positions returns the flat vertex buffer (x,y,z per vertex, top row then
// bottom row). The slice is owned by the solver and overwritten by Solve.
func (s *Solver) Positions() []float32 {
	return s.positions
}

// VertexCount returns the fixed vertex count 2*(Strips+1).
func (s *Solver) VertexCount() int {
	return (s.cfg.Strips + 1) * 2
}

// Columns returns the number of skeleton columns, Strips+1.
func (s *Solver) Columns() int {
	return s.cfg.Strips + 1
}

// Tilt returns the smoothed whole-object tilt in radians.
func (s *Solver) Tilt() float32 {
	return s.tilt
}

// Bounds returns the bounding box of the current pose.
func (s *Solver) Bounds() Bounds {
	return s.bounds
}

// Config returns the wall configuration.
func (s *Solver) Config() Config {
	return s.cfg
}

func finite(v float32) bool {
	f := float64(v)
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}

func sinf(v float32) float32 {
	return float32(gomath.Sin(float64(v)))
}
