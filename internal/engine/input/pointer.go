package input

// NormalizePointer maps a window-space pointer position to [-1, 1] on both
// axes with the origin at the viewport center and +Y up (window Y grows
// downward). Out-of-window positions are clamped rather than rejected so a
// stray sample never faults the frame loop.
func NormalizePointer(x, y, width, height int) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	nx := float32(x)/float32(width)*2 - 1
	ny := 1 - float32(y)/float32(height)*2
	return clampUnit(nx), clampUnit(ny)
}

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
