package hud

// Overlay layout constants, in pixels.
const (
	margin       = 16
	buttonWidth  = 96
	buttonHeight = 36
	meterWidth   = 200
	meterHeight  = 10
	borderSize   = 2
	crosshairArm = 9
	crosshairGap = 2
)

// Rect is a pixel-space rectangle with origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// State holds the overlay's screen size and widget interaction state.
// It is pure pixel-space logic with no GL dependency.
type State struct {
	Width  int
	Height int

	resetHover   bool
	resetPressed bool
}

// ResetButton returns the reset button rectangle (top-right corner).
func (s *State) ResetButton() Rect {
	return Rect{
		X: float32(s.Width) - buttonWidth - margin,
		Y: margin,
		W: buttonWidth,
		H: buttonHeight,
	}
}

// MeterRect returns the compression meter background rectangle
// (bottom-left corner).
func (s *State) MeterRect() Rect {
	return Rect{
		X: margin,
		Y: float32(s.Height) - meterHeight - margin,
		W: meterWidth,
		H: meterHeight,
	}
}

// HandleMouseMove updates hover state.
func (s *State) HandleMouseMove(x, y int) {
	s.resetHover = s.ResetButton().Contains(float32(x), float32(y))
}

// HandleMouseDown begins a press if the pointer is on the reset button.
// Returns true if the press started on the button.
func (s *State) HandleMouseDown(x, y int) bool {
	if s.ResetButton().Contains(float32(x), float32(y)) {
		s.resetPressed = true
		return true
	}
	return false
}

// HandleMouseUp ends a press. Returns true if the reset button was
// activated: pressed earlier and released while still on it.
func (s *State) HandleMouseUp(x, y int) bool {
	wasPressed := s.resetPressed
	s.resetPressed = false
	return wasPressed && s.ResetButton().Contains(float32(x), float32(y))
}

// BuildQuads appends the overlay's quad vertices to buf and returns it.
// compression is the current fold intensity in [0, 1]; pointerX/pointerY
// are the normalized pointer sample in [-1, 1].
// Vertex format: x, y, r, g, b, a.
func (s *State) BuildQuads(buf []float32, compression, pointerX, pointerY float32) []float32 {
	// Reset button: border behind fill, small glyph square inside.
	btn := s.ResetButton()
	fill := colorButtonNormal
	if s.resetPressed {
		fill = colorButtonActive
	} else if s.resetHover {
		fill = colorButtonHover
	}
	buf = appendQuad(buf, Rect{btn.X - borderSize, btn.Y - borderSize, btn.W + 2*borderSize, btn.H + 2*borderSize}, colorPanelBorder)
	buf = appendQuad(buf, btn, fill)
	glyph := float32(12)
	buf = appendQuad(buf, Rect{
		X: btn.X + (btn.W-glyph)/2,
		Y: btn.Y + (btn.H-glyph)/2,
		W: glyph,
		H: glyph,
	}, colorResetGlyph)

	// Compression meter: background plus proportional fill.
	if compression < 0 {
		compression = 0
	}
	if compression > 1 {
		compression = 1
	}
	meter := s.MeterRect()
	buf = appendQuad(buf, Rect{meter.X - borderSize, meter.Y - borderSize, meter.W + 2*borderSize, meter.H + 2*borderSize}, colorPanelBg)
	if compression > 0 {
		buf = appendQuad(buf, Rect{meter.X, meter.Y, meter.W * compression, meter.H}, colorMeterFill)
	}

	// Crosshair at the pointer, normalized [-1,1] mapped back to pixels.
	cx := (pointerX + 1) / 2 * float32(s.Width)
	cy := (1 - pointerY) / 2 * float32(s.Height)
	buf = appendQuad(buf, Rect{cx - crosshairArm, cy - 1, crosshairArm - crosshairGap, 2}, colorCrosshair)
	buf = appendQuad(buf, Rect{cx + crosshairGap, cy - 1, crosshairArm - crosshairGap, 2}, colorCrosshair)
	buf = appendQuad(buf, Rect{cx - 1, cy - crosshairArm, 2, crosshairArm - crosshairGap}, colorCrosshair)
	buf = appendQuad(buf, Rect{cx - 1, cy + crosshairGap, 2, crosshairArm - crosshairGap}, colorCrosshair)

	return buf
}

// appendQuad appends two triangles for a rectangle.
func appendQuad(buf []float32, r Rect, c Color) []float32 {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	return append(buf,
		x0, y0, c.R, c.G, c.B, c.A,
		x1, y0, c.R, c.G, c.B, c.A,
		x1, y1, c.R, c.G, c.B, c.A,
		x0, y0, c.R, c.G, c.B, c.A,
		x1, y1, c.R, c.G, c.B, c.A,
		x0, y1, c.R, c.G, c.B, c.A,
	)
}
