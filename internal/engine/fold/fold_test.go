package fold

import (
	gomath "math"
	"testing"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= epsilon
}

func newTestSolver(t *testing.T, cfg Config) *Solver {
	t.Helper()
	s, err := NewWithNoise(cfg, make([]float32, cfg.Strips))
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}
	return s
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Width: 8, Height: 4, Strips: 4}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid config: %v", err)
	}

	bad := []Config{
		{Width: 8, Height: 4, Strips: 0},
		{Width: 8, Height: 4, Strips: -1},
		{Width: 0, Height: 4, Strips: 4},
		{Width: -8, Height: 4, Strips: 4},
		{Width: 8, Height: 0, Strips: 4},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() accepted invalid config %+v", cfg)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{Width: 8, Height: 4, Strips: 0}); err == nil {
		t.Error("New() accepted zero strips")
	}
}

func TestNewWithNoiseLengthMismatch(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 4}
	if _, err := NewWithNoise(cfg, make([]float32, 3)); err == nil {
		t.Error("NewWithNoise() accepted short noise table")
	}
}

func TestVertexCount(t *testing.T) {
	for _, n := range []int{1, 2, 4, 32} {
		s := newTestSolver(t, Config{Width: 8, Height: 4, Strips: n})
		if got, want := s.VertexCount(), 2*(n+1); got != want {
			t.Errorf("VertexCount() with %d strips = %d, want %d", n, got, want)
		}
		if got, want := len(s.Positions()), 2*(n+1)*3; got != want {
			t.Errorf("len(Positions()) with %d strips = %d, want %d", n, got, want)
		}
	}
}

// The neutral pose is exactly flat: columns evenly spaced by width/N,
// centered around zero, zero depth.
func TestFlatBaselinePose(t *testing.T) {
	s := newTestSolver(t, Config{Width: 8, Height: 4, Strips: 4})

	wantX := []float32{-4, -2, 0, 2, 4}
	pos := s.Positions()
	for i, want := range wantX {
		if got := pos[i*3]; !approxEqual(got, want) {
			t.Errorf("column %d x = %v, want %v", i, got, want)
		}
		if got := pos[i*3+2]; !approxEqual(got, 0) {
			t.Errorf("column %d z = %v, want 0", i, got)
		}
	}
	if s.Tilt() != 0 {
		t.Errorf("initial Tilt() = %v, want 0", s.Tilt())
	}
}

func TestRowCorrespondence(t *testing.T) {
	cfg := Config{Width: 10, Height: 6, Strips: 7}
	noise := make([]float32, cfg.Strips)
	for i := range noise {
		noise[i] = float32(i) / float32(cfg.Strips)
	}
	s, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}
	s.Solve(Frame{Time: 3.7, PointerX: 0.4, PointerY: -0.2})

	pos := s.Positions()
	cols := s.Columns()
	for i := 0; i < cols; i++ {
		top := i * 3
		bot := (i + cols) * 3
		if pos[top] != pos[bot] || pos[top+2] != pos[bot+2] {
			t.Errorf("column %d rows diverge: top (%v,%v) bottom (%v,%v)",
				i, pos[top], pos[top+2], pos[bot], pos[bot+2])
		}
		if pos[top+1] != cfg.Height/2 {
			t.Errorf("column %d top y = %v, want %v", i, pos[top+1], cfg.Height/2)
		}
		if pos[bot+1] != -cfg.Height/2 {
			t.Errorf("column %d bottom y = %v, want %v", i, pos[bot+1], -cfg.Height/2)
		}
	}
}

func TestCentering(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 9}
	noise := []float32{0.1, 0.9, 0.3, 0.7, 0.5, 0.2, 0.8, 0.4, 0.6}
	s, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}

	frames := []Frame{
		{Time: 0, PointerX: 0, PointerY: 0},
		{Time: 1.3, PointerX: 0.8, PointerY: 0.1},
		{Time: 2.6, PointerX: -1, PointerY: 0.9},
		{Time: 100.0, PointerX: 0.33, PointerY: -1},
	}
	for _, f := range frames {
		s.Solve(f)
		pos := s.Positions()
		first := pos[0]
		last := pos[(s.Columns()-1)*3]
		if mid := (first + last) / 2; !approxEqual(mid, 0) {
			t.Errorf("frame %+v: skeleton midpoint = %v, want 0", f, mid)
		}
	}
}

func TestAngleClamp(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 16}
	noise := make([]float32, cfg.Strips)
	for i := range noise {
		noise[i] = 0.999
	}
	s, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}

	for _, px := range []float32{-1, -0.5, 0, 0.5, 1} {
		for _, tm := range []float32{0, 0.7, 2.1, 50, 10000} {
			for i := 0; i < cfg.Strips; i++ {
				a := s.stripAngle(i, tm, px)
				if mag := float32(gomath.Abs(float64(a))); mag > MaxFoldAngle {
					t.Fatalf("stripAngle(%d, %v, %v) magnitude = %v, exceeds %v",
						i, tm, px, mag, MaxFoldAngle)
				}
			}
		}
	}
}

func TestAngleParity(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 6}
	noise := make([]float32, cfg.Strips)
	for i := range noise {
		noise[i] = 0.5
	}
	s, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}
	for i := 0; i < cfg.Strips; i++ {
		a := s.stripAngle(i, 0.25, 0.6)
		if i%2 == 0 && a <= 0 {
			t.Errorf("even strip %d angle = %v, want > 0", i, a)
		}
		if i%2 == 1 && a >= 0 {
			t.Errorf("odd strip %d angle = %v, want < 0", i, a)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := Config{Width: 12, Height: 5, Strips: 8}
	noise := []float32{0.12, 0.87, 0.45, 0.33, 0.91, 0.02, 0.66, 0.54}

	a, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}
	b, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}

	frames := []Frame{
		{Time: 0.016, PointerX: 0.1, PointerY: 0.2},
		{Time: 0.033, PointerX: 0.5, PointerY: -0.4},
		{Time: 0.050, PointerX: -0.9, PointerY: 1},
	}
	for _, f := range frames {
		a.Solve(f)
		b.Solve(f)
	}

	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("position %d diverged: %v vs %v", i, pa[i], pb[i])
		}
	}
	if a.Tilt() != b.Tilt() {
		t.Errorf("tilt diverged: %v vs %v", a.Tilt(), b.Tilt())
	}
}

// Two consecutive solves with identical inputs must be identical: the noise
// table is never resampled mid-session.
func TestNoisePersistence(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 5}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := Frame{Time: 1.5, PointerX: 0.3, PointerY: 0.3}

	s.Solve(f)
	first := append([]float32(nil), s.Positions()...)
	s.Solve(f)
	for i, v := range s.Positions() {
		if v != first[i] {
			t.Fatalf("position %d changed on repeat solve: %v vs %v", i, v, first[i])
		}
	}
}

func TestTiltSmoothing(t *testing.T) {
	s := newTestSolver(t, Config{Width: 8, Height: 4, Strips: 4})

	py := float32(1.0)
	target := py * 0.1
	prev := float32(0)
	for frame := 0; frame < 10; frame++ {
		s.Solve(Frame{Time: float32(frame) * 0.016, PointerX: 0, PointerY: py})
		want := prev + 0.1*(target-prev)
		if got := s.Tilt(); !approxEqual(got, want) {
			t.Fatalf("frame %d: Tilt() = %v, want %v", frame, got, want)
		}
		prev = s.Tilt()
	}
	if !(prev > 0 && prev < target) {
		t.Errorf("tilt after 10 frames = %v, want converging toward %v", prev, target)
	}
}

func TestPointerClamped(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 4}
	noise := []float32{0.2, 0.4, 0.6, 0.8}

	a, _ := NewWithNoise(cfg, noise)
	b, _ := NewWithNoise(cfg, noise)
	a.Solve(Frame{Time: 1, PointerX: 5, PointerY: -3})
	b.Solve(Frame{Time: 1, PointerX: 1, PointerY: -1})

	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("position %d: out-of-range pointer not clamped: %v vs %v", i, pa[i], pb[i])
		}
	}
	if a.Tilt() != b.Tilt() {
		t.Errorf("tilt: out-of-range pointer not clamped: %v vs %v", a.Tilt(), b.Tilt())
	}
}

func TestNonFiniteInputKeepsPose(t *testing.T) {
	s := newTestSolver(t, Config{Width: 8, Height: 4, Strips: 4})
	s.Solve(Frame{Time: 2, PointerX: 0.5, PointerY: 0.5})
	want := append([]float32(nil), s.Positions()...)
	wantTilt := s.Tilt()

	nan := float32(gomath.NaN())
	inf := float32(gomath.Inf(1))
	bad := []Frame{
		{Time: nan, PointerX: 0, PointerY: 0},
		{Time: 3, PointerX: nan, PointerY: 0},
		{Time: 3, PointerX: 0, PointerY: inf},
	}
	for _, f := range bad {
		s.Solve(f)
		for i, v := range s.Positions() {
			if v != want[i] {
				t.Fatalf("frame %+v: position %d changed to %v, want %v", f, i, v, want[i])
			}
		}
		if s.Tilt() != wantTilt {
			t.Fatalf("frame %+v: tilt changed to %v, want %v", f, s.Tilt(), wantTilt)
		}
	}

	// Recovery: a valid frame after a faulty one solves normally.
	s.Solve(Frame{Time: 4, PointerX: 0.9, PointerY: 0})
	changed := false
	for i, v := range s.Positions() {
		if v != want[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("solver did not recover after non-finite input")
	}
}

func TestBoundsEnclosePose(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 6}
	noise := []float32{0.9, 0.1, 0.8, 0.2, 0.7, 0.3}
	s, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}
	s.Solve(Frame{Time: 5, PointerX: 0.7, PointerY: 0.2})

	b := s.Bounds()
	pos := s.Positions()
	for i := 0; i < len(pos); i += 3 {
		for a := 0; a < 3; a++ {
			if pos[i+a] < b.Min[a] || pos[i+a] > b.Max[a] {
				t.Fatalf("vertex %d axis %d = %v outside bounds [%v, %v]",
					i/3, a, pos[i+a], b.Min[a], b.Max[a])
			}
		}
	}
	if b.Min[1] != -cfg.Height/2 || b.Max[1] != cfg.Height/2 {
		t.Errorf("bounds y = [%v, %v], want [%v, %v]",
			b.Min[1], b.Max[1], -cfg.Height/2, cfg.Height/2)
	}
}

// Depth accumulates across strips rather than resetting per fold; with all
// angles folding the same magnitude the ribbon still zig-zags around z=0,
// but asymmetric noise produces net drift. Both are accepted behavior.
func TestDepthAccumulation(t *testing.T) {
	cfg := Config{Width: 8, Height: 4, Strips: 2}
	noise := []float32{0, 0}
	s, err := NewWithNoise(cfg, noise)
	if err != nil {
		t.Fatalf("NewWithNoise() error: %v", err)
	}
	s.Solve(Frame{Time: 0, PointerX: 1, PointerY: 0})

	pos := s.Positions()
	z0, z1, z2 := pos[2], pos[5], pos[8]
	if z0 != 0 {
		t.Errorf("first column z = %v, want 0", z0)
	}
	if z1 <= 0 {
		t.Errorf("middle column z = %v, want > 0 for even-strip fold", z1)
	}
	// Strip 1 folds opposite, stepping back down relative to column 1.
	if !(z2 < z1) {
		t.Errorf("last column z = %v, want < middle %v", z2, z1)
	}
}
