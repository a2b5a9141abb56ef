// Package hud renders the 2D overlay: reset button, compression meter and
// pointer crosshair. Solid-color quads only; diagnostics that would need
// text go to the log instead.
package hud

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Overlay theme colors.
var (
	colorPanelBg      = Color{0.08, 0.08, 0.12, 0.85}
	colorPanelBorder  = Color{0.3, 0.3, 0.4, 1}
	colorButtonNormal = Color{0.15, 0.15, 0.2, 0.9}
	colorButtonHover  = Color{0.25, 0.25, 0.35, 0.95}
	colorButtonActive = Color{0.1, 0.3, 0.5, 1}
	colorMeterFill    = Color{0.2, 0.6, 0.9, 1}
	colorCrosshair    = Color{0.9, 0.9, 0.9, 0.6}
	colorResetGlyph   = Color{0.85, 0.85, 0.9, 1}
)
