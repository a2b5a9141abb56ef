// Package lighting provides light direction utilities for the wall shader.
package lighting

import "math"

// Default key light placement: high and slightly to the right, so fold
// faces alternate light/dark as they angle toward or away from it.
const (
	DefaultAzimuth   = 35.0
	DefaultElevation = 55.0
	DefaultAmbient   = 0.35
)

// KeyDirection converts azimuth/elevation angles in degrees to a normalized
// direction vector pointing toward the light. Azimuth rotates around the Y
// axis, elevation rises from the horizon.
func KeyDirection(azimuth, elevation float64) [3]float32 {
	azRad := azimuth * math.Pi / 180.0
	elRad := elevation * math.Pi / 180.0

	return [3]float32{
		float32(math.Cos(elRad) * math.Sin(azRad)),
		float32(math.Sin(elRad)),
		float32(math.Cos(elRad) * math.Cos(azRad)),
	}
}

// DefaultKeyDirection returns the standard key light direction.
func DefaultKeyDirection() [3]float32 {
	return KeyDirection(DefaultAzimuth, DefaultElevation)
}
